package server

import (
	"net/http"

	"trivia-api/internal/handlers"
	"trivia-api/internal/metrics"
	"trivia-api/internal/middleware"
	"trivia-api/internal/services"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// NewRouter wires services and handlers over db and registers every route.
func NewRouter(db *gorm.DB, log *zap.Logger) *gin.Engine {
	categoryService := services.NewCategoryService(db)
	questionService := services.NewQuestionService(db)
	quizService := services.NewQuizService(db)

	categoryHandler := handlers.NewCategoryHandler(categoryService, questionService, log)
	questionHandler := handlers.NewQuestionHandler(questionService, categoryService, log)
	quizHandler := handlers.NewQuizHandler(quizService, log)
	healthHandler := handlers.NewHealthHandler(db, log)

	r := gin.New()
	r.HandleMethodNotAllowed = true
	// Recovery sits inside the logger and metrics so a panicking request
	// is still logged and counted with its 500.
	r.Use(
		middleware.RequestLogger(log),
		metrics.Middleware(),
		middleware.Recovery(log, func(c *gin.Context) { handlers.Abort(c, http.StatusInternalServerError) }),
		middleware.CORS(),
	)
	r.NoRoute(handlers.NotFound)
	r.NoMethod(handlers.MethodNotAllowed)

	r.GET("/healthz", healthHandler.Health)
	r.GET("/metrics", metrics.Handler())
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	categories := r.Group("/categories")
	{
		categories.GET("", categoryHandler.GetCategories)
		categories.GET("/:id/questions", categoryHandler.GetCategoryQuestions)
	}

	questions := r.Group("/questions")
	{
		questions.GET("", questionHandler.ListQuestions)
		questions.POST("", questionHandler.CreateOrSearchQuestions)
		questions.POST("/search", questionHandler.SearchQuestions)
		questions.DELETE("/:id", questionHandler.DeleteQuestion)
	}

	r.POST("/quizzes", quizHandler.PlayQuiz)

	return r
}
