package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"trivia-api/internal/database"
	"trivia-api/internal/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type errorBody struct {
	Success bool   `json:"success"`
	Error   int    `json:"error"`
	Message string `json:"message"`
}

func newTestServer(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := database.OpenSQLite(filepath.Join(t.TempDir(), "trivia.db"))
	if err != nil {
		t.Fatalf("open db failed: %v", err)
	}
	t.Cleanup(func() { database.Close(db) })
	if err := database.AutoMigrate(db); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}
	return NewRouter(db, zap.NewNop()), db
}

// seedTrivia inserts three categories and n questions spread over them.
// Every third question mentions "title".
func seedTrivia(t *testing.T, db *gorm.DB, n int) ([]models.Category, []models.Question) {
	t.Helper()
	if _, err := database.Seed(db); err != nil {
		t.Fatalf("seed categories failed: %v", err)
	}
	var categories []models.Category
	if err := db.Order("id").Find(&categories).Error; err != nil {
		t.Fatalf("load categories failed: %v", err)
	}

	questions := make([]models.Question, 0, n)
	for i := 0; i < n; i++ {
		text := "Question number " + string(rune('A'+i%26))
		if i%3 == 0 {
			text = "What is the Title of book " + string(rune('A'+i%26)) + "?"
		}
		q := models.Question{
			Question:   text,
			Answer:     "answer",
			Category:   categories[i%3].ID,
			Difficulty: i%5 + 1,
		}
		if err := db.Create(&q).Error; err != nil {
			t.Fatalf("seed question failed: %v", err)
		}
		questions = append(questions, q)
	}
	return categories, questions
}

func doRequest(t *testing.T, router http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		raw, err := json.Marshal(b)
		if err != nil {
			t.Fatalf("marshal body failed: %v", err)
		}
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response failed: %v (body %s)", err, rec.Body.String())
	}
	return out
}

func expectError(t *testing.T, rec *httptest.ResponseRecorder, status int, message string) {
	t.Helper()
	if rec.Code != status {
		t.Fatalf("status = %d, want %d (body %s)", rec.Code, status, rec.Body.String())
	}
	body := decode[errorBody](t, rec)
	if body.Success || body.Error != status || body.Message != message {
		t.Fatalf("unexpected error envelope: %+v", body)
	}
}

func doRequestWithHeaders(router http.Handler, method, path string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	for key, value := range headers {
		req.Header.Set(key, value)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}
