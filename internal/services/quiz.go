package services

import (
	"context"
	"errors"

	"trivia-api/internal/models"

	"gorm.io/gorm"
)

type QuizService struct {
	db *gorm.DB
}

func NewQuizService(db *gorm.DB) *QuizService {
	return &QuizService{db: db}
}

// NextQuestion picks a random question whose id is not in previous. A
// categoryID of zero or less means any category. It returns nil without an
// error when every candidate has already been asked.
func (s *QuizService) NextQuestion(ctx context.Context, previous []uint, categoryID int) (*models.Question, error) {
	query := s.db.WithContext(ctx).Model(&models.Question{})
	if categoryID > 0 {
		query = query.Where("category = ?", categoryID)
	}
	if len(previous) > 0 {
		query = query.Where("id NOT IN ?", previous)
	}

	var question models.Question
	err := query.Order("RANDOM()").Limit(1).Take(&question).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, storage("pick quiz question", err)
	}
	return &question, nil
}
