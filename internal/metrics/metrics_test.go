package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMiddlewareCountsRequests(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(Middleware())
	router.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })
	router.GET("/metrics", Handler())

	before := testutil.ToFloat64(httpRequests.WithLabelValues(http.MethodGet, "/ping", "200"))
	for i := 0; i < 3; i++ {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))
		if rec.Code != http.StatusOK {
			t.Fatalf("unexpected status: %d", rec.Code)
		}
	}
	after := testutil.ToFloat64(httpRequests.WithLabelValues(http.MethodGet, "/ping", "200"))
	if after-before != 3 {
		t.Fatalf("counter advanced by %v, want 3", after-before)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nowhere", nil))
	if got := testutil.ToFloat64(httpRequests.WithLabelValues(http.MethodGet, "unmatched", "404")); got < 1 {
		t.Fatalf("unmatched route not counted")
	}

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("metrics endpoint status: %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "trivia_http_requests_total") {
		t.Fatalf("metrics output missing request counter")
	}
}

func TestQuizServed(t *testing.T) {
	before := testutil.ToFloat64(quizQuestionsServed.WithLabelValues(QuizResultExhausted))
	QuizServed(QuizResultExhausted)
	after := testutil.ToFloat64(quizQuestionsServed.WithLabelValues(QuizResultExhausted))
	if after-before != 1 {
		t.Fatalf("counter advanced by %v, want 1", after-before)
	}
}
