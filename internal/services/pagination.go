package services

const QuestionsPerPage = 10

// Paginate returns the 1-based page of items. Pages outside the data,
// including page numbers below 1, are empty.
func Paginate[T any](items []T, page int) []T {
	if page < 1 || page > PageCount(len(items)) {
		return []T{}
	}
	start := (page - 1) * QuestionsPerPage
	end := min(start+QuestionsPerPage, len(items))
	return items[start:end]
}

func PageCount(total int) int {
	return (total + QuestionsPerPage - 1) / QuestionsPerPage
}
