package handlers

import (
	"net/http"

	"trivia-api/internal/metrics"
	"trivia-api/internal/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type QuizHandler struct {
	quizzes *services.QuizService
	log     *zap.Logger
}

func NewQuizHandler(quizzes *services.QuizService, log *zap.Logger) *QuizHandler {
	return &QuizHandler{quizzes: quizzes, log: log}
}

type QuizCategory struct {
	ID   *flexInt `json:"id" binding:"required" swaggertype:"integer" example:"0"`
	Type string   `json:"type" example:"click"`
}

type QuizRequest struct {
	PreviousQuestions []uint        `json:"previous_questions" example:"1,4,20"`
	QuizCategory      *QuizCategory `json:"quiz_category" binding:"required"`
}

type QuizResponse struct {
	Success  bool      `json:"success" example:"true"`
	Question *Question `json:"question"`
}

// PlayQuiz godoc
// @Summary      Next quiz question
// @Description  A random question not in previous_questions, optionally limited to quiz_category.id (0 means all). question is null once the pool is exhausted.
// @Tags         quizzes
// @Accept       json
// @Produce      json
// @Param        request body QuizRequest true "Quiz state"
// @Success      200 {object} QuizResponse
// @Failure      400 {object} ErrorResponse
// @Failure      422 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Router       /quizzes [post]
func (h *QuizHandler) PlayQuiz(c *gin.Context) {
	var req QuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Abort(c, bindStatus(err))
		return
	}

	question, err := h.quizzes.NextQuestion(c.Request.Context(), req.PreviousQuestions, int(*req.QuizCategory.ID))
	if err != nil {
		abortWithError(c, h.log, err)
		return
	}

	if question == nil {
		metrics.QuizServed(metrics.QuizResultExhausted)
	} else {
		metrics.QuizServed(metrics.QuizResultQuestion)
	}

	c.JSON(http.StatusOK, QuizResponse{Success: true, Question: question})
}
