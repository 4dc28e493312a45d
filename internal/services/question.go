package services

import (
	"context"
	"errors"
	"strings"

	"trivia-api/internal/models"

	"gorm.io/gorm"
)

type QuestionService struct {
	db *gorm.DB
}

func NewQuestionService(db *gorm.DB) *QuestionService {
	return &QuestionService{db: db}
}

// QuestionInput carries the fields of a new question. Callers bind and
// validate it before Create; text is stored as sent.
type QuestionInput struct {
	Question   string
	Answer     string
	Difficulty int
	Category   uint
}

// List returns every question ordered by id.
func (s *QuestionService) List(ctx context.Context) ([]models.Question, error) {
	var questions []models.Question
	if err := s.db.WithContext(ctx).Order("id ASC").Find(&questions).Error; err != nil {
		return nil, storage("list questions", err)
	}
	return questions, nil
}

func (s *QuestionService) ListByCategory(ctx context.Context, categoryID uint) ([]models.Question, error) {
	var questions []models.Question
	err := s.db.WithContext(ctx).
		Where("category = ?", categoryID).
		Order("id ASC").
		Find(&questions).Error
	if err != nil {
		return nil, storage("list questions by category", err)
	}
	return questions, nil
}

func (s *QuestionService) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := s.db.WithContext(ctx).Model(&models.Question{}).Count(&count).Error; err != nil {
		return 0, storage("count questions", err)
	}
	return count, nil
}

// Search returns the questions whose text contains term, ignoring case,
// ordered by id. The database folds case on both sides.
func (s *QuestionService) Search(ctx context.Context, term string) ([]models.Question, error) {
	if term == "" {
		return nil, invalid("search term is required")
	}

	var questions []models.Question
	err := s.db.WithContext(ctx).
		Where(`LOWER(question) LIKE LOWER(?) ESCAPE '\'`, containsPattern(term)).
		Order("id ASC").
		Find(&questions).Error
	if err != nil {
		return nil, storage("search questions", err)
	}
	return questions, nil
}

func (s *QuestionService) Create(ctx context.Context, input QuestionInput) (*models.Question, error) {
	question := models.Question{
		Question:   input.Question,
		Answer:     input.Answer,
		Difficulty: input.Difficulty,
		Category:   input.Category,
	}
	if err := s.db.WithContext(ctx).Create(&question).Error; err != nil {
		return nil, storage("create question", err)
	}
	return &question, nil
}

// Delete removes the question and returns it as it was before deletion.
func (s *QuestionService) Delete(ctx context.Context, id uint) (*models.Question, error) {
	db := s.db.WithContext(ctx)

	var question models.Question
	err := db.First(&question, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, notFound("question %d", id)
	}
	if err != nil {
		return nil, storage("get question", err)
	}

	result := db.Delete(&question)
	if result.Error != nil {
		return nil, storage("delete question", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, notFound("question %d", id)
	}
	return &question, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func containsPattern(term string) string {
	return "%" + likeEscaper.Replace(term) + "%"
}
