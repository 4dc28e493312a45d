package handlers

import (
	"net/http"

	"trivia-api/internal/models"
	"trivia-api/internal/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type CategoryHandler struct {
	categories *services.CategoryService
	questions  *services.QuestionService
	log        *zap.Logger
}

func NewCategoryHandler(categories *services.CategoryService, questions *services.QuestionService, log *zap.Logger) *CategoryHandler {
	return &CategoryHandler{categories: categories, questions: questions, log: log}
}

type CategoriesResponse struct {
	Success         bool            `json:"success" example:"true"`
	Categories      map[uint]string `json:"categories"`
	TotalCategories int             `json:"total_categories" example:"6"`
}

type CategoryQuestionsResponse struct {
	Success         bool              `json:"success" example:"true"`
	Questions       []Question `json:"questions"`
	TotalQuestions  int64      `json:"total_questions" example:"19"`
	CurrentCategory Category   `json:"current_category"`
}

// GetCategories godoc
// @Summary      List categories
// @Description  All categories as an id to type mapping
// @Tags         categories
// @Produce      json
// @Success      200 {object} CategoriesResponse
// @Failure      404 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Router       /categories [get]
func (h *CategoryHandler) GetCategories(c *gin.Context) {
	categories, err := h.categories.List(c.Request.Context())
	if err != nil {
		abortWithError(c, h.log, err)
		return
	}
	if len(categories) == 0 {
		Abort(c, http.StatusNotFound)
		return
	}

	c.JSON(http.StatusOK, CategoriesResponse{
		Success:         true,
		Categories:      models.CategoryTypes(categories),
		TotalCategories: len(categories),
	})
}

// GetCategoryQuestions godoc
// @Summary      List questions of a category
// @Tags         categories
// @Produce      json
// @Param        id   path  int true  "Category ID"
// @Param        page query int false "Page number" default(1)
// @Success      200 {object} CategoryQuestionsResponse
// @Failure      404 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Router       /categories/{id}/questions [get]
func (h *CategoryHandler) GetCategoryQuestions(c *gin.Context) {
	categoryID, ok := idParam(c, "id")
	if !ok {
		Abort(c, http.StatusNotFound)
		return
	}
	ctx := c.Request.Context()

	category, err := h.categories.Get(ctx, categoryID)
	if err != nil {
		abortWithError(c, h.log, err)
		return
	}

	questions, err := h.questions.ListByCategory(ctx, category.ID)
	if err != nil {
		abortWithError(c, h.log, err)
		return
	}
	current := services.Paginate(questions, pageParam(c))
	if len(current) == 0 {
		Abort(c, http.StatusNotFound)
		return
	}

	total, err := h.questions.Count(ctx)
	if err != nil {
		abortWithError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, CategoryQuestionsResponse{
		Success:         true,
		Questions:       current,
		TotalQuestions:  total,
		CurrentCategory: *category,
	})
}
