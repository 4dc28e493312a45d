package models

type Category struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Type string `gorm:"size:255;not null" json:"type"`
}

// CategoryTypes projects categories into the id -> type mapping clients
// render as a category picker.
func CategoryTypes(categories []Category) map[uint]string {
	types := make(map[uint]string, len(categories))
	for _, c := range categories {
		types[c.ID] = c.Type
	}
	return types
}
