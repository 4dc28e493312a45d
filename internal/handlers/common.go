package handlers

import (
	"errors"
	"fmt"
	"math"
	"net/http"
	"strconv"
	"strings"

	"trivia-api/internal/models"
	"trivia-api/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

type ErrorResponse struct {
	Success bool   `json:"success" example:"false"`
	Error   int    `json:"error" example:"404"`
	Message string `json:"message" example:"resource not found"`
}

// Type aliases so swag can resolve models in annotations.
type Question = models.Question
type Category = models.Category

var statusMessages = map[int]string{
	http.StatusBadRequest:          "bad request",
	http.StatusNotFound:            "resource not found",
	http.StatusMethodNotAllowed:    "method not allowed",
	http.StatusUnprocessableEntity: "unprocessable",
	http.StatusInternalServerError: "internal server error",
}

func StatusMessage(status int) string {
	if msg, ok := statusMessages[status]; ok {
		return msg
	}
	return strings.ToLower(http.StatusText(status))
}

// Abort stops the handler chain and writes the error envelope for status.
func Abort(c *gin.Context, status int) {
	c.AbortWithStatusJSON(status, ErrorResponse{
		Success: false,
		Error:   status,
		Message: StatusMessage(status),
	})
}

// NotFound and MethodNotAllowed back the router's NoRoute and NoMethod hooks.
func NotFound(c *gin.Context) {
	Abort(c, http.StatusNotFound)
}

func MethodNotAllowed(c *gin.Context) {
	Abort(c, http.StatusMethodNotAllowed)
}

// abortWithError maps a service error to its status. Only storage failures
// are logged; the cause never reaches the client.
func abortWithError(c *gin.Context, log *zap.Logger, err error) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		Abort(c, http.StatusNotFound)
	case errors.Is(err, services.ErrValidation):
		Abort(c, http.StatusUnprocessableEntity)
	default:
		log.Error("request failed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.Error(err),
		)
		Abort(c, http.StatusInternalServerError)
	}
}

// bindStatus maps a binding error: a body that decoded but broke a
// binding rule is 422, anything else is a malformed request.
func bindStatus(err error) int {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		return http.StatusUnprocessableEntity
	}
	return http.StatusBadRequest
}

// pageParam reads ?page, falling back to 1 when it is absent or not an
// integer. A number too large for int still names a page past the end.
func pageParam(c *gin.Context) int {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if errors.Is(err, strconv.ErrRange) {
		if page < 0 {
			return math.MinInt
		}
		return math.MaxInt
	}
	if err != nil {
		return 1
	}
	return page
}

// idParam parses a positive integer path parameter. ok is false when the
// value is not one, which the routes treat as an unknown resource.
func idParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

// flexInt accepts a JSON number or a string holding one, since browser forms
// post select values as strings.
type flexInt int

func (v *flexInt) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(strings.Trim(string(data), `"`))
	if n, err := strconv.Atoi(raw); err == nil {
		*v = flexInt(n)
		return nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || f != math.Trunc(f) || math.Abs(f) > math.MaxInt32 {
		return fmt.Errorf("expected an integer, got %s", data)
	}
	*v = flexInt(f)
	return nil
}
