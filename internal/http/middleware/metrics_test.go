package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMetrics_CountersByRoute_UnmatchedAndInflight(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(Metrics())
	r.GET("/answers/:question_uuid", func(c *gin.Context) {
		c.String(http.StatusOK, "[]")
	})
	r.DELETE("/question", func(c *gin.Context) {
		c.Status(http.StatusOK) // no body, size stays -1
	})

	baseRoute := testutil.ToFloat64(httpReqs.WithLabelValues("GET", "/answers/:question_uuid", "200"))
	baseMiss := testutil.ToFloat64(httpReqs.WithLabelValues("GET", unmatchedRoute, "404"))
	baseDel := testutil.ToFloat64(httpReqs.WithLabelValues("DELETE", "/question", "200"))

	for _, p := range []string{"/answers/a", "/answers/b"} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, p, nil))
		if w.Code != http.StatusOK {
			t.Fatalf("GET %s -> %d", p, w.Code)
		}
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/does-not-exist", nil))
	if w.Code != http.StatusNotFound {
		t.Fatalf("GET /does-not-exist -> %d", w.Code)
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/question", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("DELETE /question -> %d", w.Code)
	}

	// Both concrete paths collapse into the route pattern.
	if got := testutil.ToFloat64(httpReqs.WithLabelValues("GET", "/answers/:question_uuid", "200")); got != baseRoute+2 {
		t.Fatalf("route counter = %v; want %v", got, baseRoute+2)
	}
	if got := testutil.ToFloat64(httpReqs.WithLabelValues("GET", unmatchedRoute, "404")); got != baseMiss+1 {
		t.Fatalf("unmatched counter = %v; want %v", got, baseMiss+1)
	}
	if got := testutil.ToFloat64(httpReqs.WithLabelValues("DELETE", "/question", "200")); got != baseDel+1 {
		t.Fatalf("delete counter = %v; want %v", got, baseDel+1)
	}
	if n := testutil.CollectAndCount(httpReqs, "qa_http_requests_total"); n == 0 {
		t.Fatalf("expected collected series")
	}
	if inFlight := testutil.ToFloat64(httpInflight); inFlight != 0 {
		t.Fatalf("httpInflight = %v; want 0", inFlight)
	}
}
