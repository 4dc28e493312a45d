package handlers

import (
	"net/http"

	"trivia-api/internal/models"
	"trivia-api/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"go.uber.org/zap"
)

type QuestionHandler struct {
	questions  *services.QuestionService
	categories *services.CategoryService
	log        *zap.Logger
}

func NewQuestionHandler(questions *services.QuestionService, categories *services.CategoryService, log *zap.Logger) *QuestionHandler {
	return &QuestionHandler{questions: questions, categories: categories, log: log}
}

type NewQuestion struct {
	Question   string   `json:"question" binding:"required" example:"Who discovered penicillin?"`
	Answer     string   `json:"answer" binding:"required" example:"Alexander Fleming"`
	Difficulty *flexInt `json:"difficulty" binding:"required,min=1,max=5" swaggertype:"integer" example:"3"`
	Category   *flexInt `json:"category" binding:"required,min=1" swaggertype:"integer" example:"1"`
}

// QuestionRequest is the body of POST /questions. A non-empty SearchTerm
// selects the search branch; otherwise the NewQuestion fields are validated
// and stored.
type QuestionRequest struct {
	NewQuestion `binding:"-"`
	SearchTerm  *string `json:"searchTerm" example:"title"`
}

type SearchRequest struct {
	SearchTerm *string `json:"searchTerm" example:"title"`
}

type QuestionListResponse struct {
	Success         bool            `json:"success" example:"true"`
	Questions       []Question      `json:"questions"`
	TotalQuestions  int             `json:"total_questions" example:"19"`
	CurrentCategory []uint          `json:"current_category"`
	Categories      map[uint]string `json:"categories"`
}

type QuestionCreatedResponse struct {
	Success        bool       `json:"success" example:"true"`
	Created        uint       `json:"created" example:"24"`
	Questions      []Question `json:"questions"`
	TotalQuestions int64      `json:"total_questions" example:"20"`
}

type QuestionPageSearchResponse struct {
	Success         bool       `json:"success" example:"true"`
	Questions       []Question `json:"questions"`
	TotalQuestions  int64      `json:"total_questions" example:"19"`
	CurrentCategory []uint     `json:"current_category"`
}

type QuestionSearchResponse struct {
	Success         bool       `json:"success" example:"true"`
	Questions       []Question `json:"questions"`
	TotalQuestions  int        `json:"total_questions" example:"2"`
	CurrentCategory *Category  `json:"current_category"`
}

type QuestionDeletedResponse struct {
	Success        bool     `json:"success" example:"true"`
	Question       Question `json:"question"`
	Deleted        uint     `json:"deleted" example:"5"`
	TotalQuestions int64    `json:"total_questions" example:"18"`
}

// ListQuestions godoc
// @Summary      List questions
// @Description  Questions ordered by id, ten per page, with every category
// @Tags         questions
// @Produce      json
// @Param        page query int false "Page number" default(1)
// @Success      200 {object} QuestionListResponse
// @Failure      404 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Router       /questions [get]
func (h *QuestionHandler) ListQuestions(c *gin.Context) {
	ctx := c.Request.Context()

	questions, err := h.questions.List(ctx)
	if err != nil {
		abortWithError(c, h.log, err)
		return
	}
	current := services.Paginate(questions, pageParam(c))
	if len(current) == 0 {
		Abort(c, http.StatusNotFound)
		return
	}

	categories, err := h.categories.List(ctx)
	if err != nil {
		abortWithError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, QuestionListResponse{
		Success:         true,
		Questions:       current,
		TotalQuestions:  len(questions),
		CurrentCategory: []uint{},
		Categories:      models.CategoryTypes(categories),
	})
}

// DeleteQuestion godoc
// @Summary      Delete a question
// @Tags         questions
// @Produce      json
// @Param        id path int true "Question ID"
// @Success      200 {object} QuestionDeletedResponse
// @Failure      404 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Router       /questions/{id} [delete]
func (h *QuestionHandler) DeleteQuestion(c *gin.Context) {
	questionID, ok := idParam(c, "id")
	if !ok {
		Abort(c, http.StatusNotFound)
		return
	}
	ctx := c.Request.Context()

	deleted, err := h.questions.Delete(ctx, questionID)
	if err != nil {
		abortWithError(c, h.log, err)
		return
	}

	total, err := h.questions.Count(ctx)
	if err != nil {
		abortWithError(c, h.log, err)
		return
	}

	h.log.Info("question deleted", zap.Uint("question_id", deleted.ID))
	c.JSON(http.StatusOK, QuestionDeletedResponse{
		Success:        true,
		Question:       *deleted,
		Deleted:        deleted.ID,
		TotalQuestions: total,
	})
}

// CreateOrSearchQuestions godoc
// @Summary      Create a question or search questions
// @Description  With a non-empty searchTerm, returns a page of questions containing it (case-insensitive). Otherwise creates a question from question, answer, difficulty and category.
// @Tags         questions
// @Accept       json
// @Produce      json
// @Param        page    query int             false "Page number" default(1)
// @Param        request body  QuestionRequest true  "New question or search term"
// @Success      200 {object} QuestionCreatedResponse
// @Success      200 {object} QuestionPageSearchResponse
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Failure      422 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Router       /questions [post]
func (h *QuestionHandler) CreateOrSearchQuestions(c *gin.Context) {
	var req QuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Abort(c, bindStatus(err))
		return
	}

	if req.SearchTerm != nil && *req.SearchTerm != "" {
		h.searchPage(c, *req.SearchTerm)
		return
	}
	if err := binding.Validator.ValidateStruct(&req.NewQuestion); err != nil {
		Abort(c, bindStatus(err))
		return
	}
	h.create(c, req.NewQuestion)
}

func (h *QuestionHandler) searchPage(c *gin.Context, term string) {
	ctx := c.Request.Context()

	matches, err := h.questions.Search(ctx, term)
	if err != nil {
		abortWithError(c, h.log, err)
		return
	}
	current := services.Paginate(matches, pageParam(c))
	if len(current) == 0 {
		Abort(c, http.StatusNotFound)
		return
	}

	total, err := h.questions.Count(ctx)
	if err != nil {
		abortWithError(c, h.log, err)
		return
	}

	currentCategories := make([]uint, 0, len(current))
	for _, q := range current {
		currentCategories = append(currentCategories, q.Category)
	}

	c.JSON(http.StatusOK, QuestionPageSearchResponse{
		Success:         true,
		Questions:       current,
		TotalQuestions:  total,
		CurrentCategory: currentCategories,
	})
}

func (h *QuestionHandler) create(c *gin.Context, req NewQuestion) {
	ctx := c.Request.Context()

	question, err := h.questions.Create(ctx, services.QuestionInput{
		Question:   req.Question,
		Answer:     req.Answer,
		Difficulty: int(*req.Difficulty),
		Category:   uint(*req.Category),
	})
	if err != nil {
		abortWithError(c, h.log, err)
		return
	}
	h.log.Info("question created",
		zap.Uint("question_id", question.ID),
		zap.Uint("category", question.Category),
	)

	questions, err := h.questions.List(ctx)
	if err != nil {
		abortWithError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, QuestionCreatedResponse{
		Success:        true,
		Created:        question.ID,
		Questions:      services.Paginate(questions, pageParam(c)),
		TotalQuestions: int64(len(questions)),
	})
}

// SearchQuestions godoc
// @Summary      Search questions
// @Description  Every question whose text contains searchTerm (case-insensitive), unpaginated
// @Tags         questions
// @Accept       json
// @Produce      json
// @Param        request body SearchRequest true "Search term"
// @Success      200 {object} QuestionSearchResponse
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Router       /questions/search [post]
func (h *QuestionHandler) SearchQuestions(c *gin.Context) {
	var req SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Abort(c, bindStatus(err))
		return
	}
	if req.SearchTerm == nil || *req.SearchTerm == "" {
		Abort(c, http.StatusNotFound)
		return
	}

	matches, err := h.questions.Search(c.Request.Context(), *req.SearchTerm)
	if err != nil {
		abortWithError(c, h.log, err)
		return
	}
	if matches == nil {
		matches = []Question{}
	}

	c.JSON(http.StatusOK, QuestionSearchResponse{
		Success:        true,
		Questions:      matches,
		TotalQuestions: len(matches),
	})
}
