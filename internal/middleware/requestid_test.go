package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func TestRequestID_HeaderIsSet(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestID())
	r.GET("/", func(c *gin.Context) { c.String(200, "ok") })
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	if w.Code != 200 {
		t.Fatalf("code=%d", w.Code)
	}
	if _, err := uuid.Parse(w.Header().Get(RequestIDHeader)); err != nil {
		t.Fatalf("request id is not a uuid: %v", err)
	}
}

func TestRequestID_ReusesIncoming(t *testing.T) {
	cases := []struct {
		name     string
		incoming string
		reused   bool
	}{
		{"valid uuid reused", "123e4567-e89b-12d3-a456-426614174000", true},
		{"garbage replaced", "not-a-uuid", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			gin.SetMode(gin.TestMode)
			r := gin.New()
			r.Use(RequestID())
			var inCtx string
			r.GET("/", func(c *gin.Context) { inCtx = c.GetString(RequestIDKey) })

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.Header.Set(RequestIDHeader, tc.incoming)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			got := w.Header().Get(RequestIDHeader)
			if (got == tc.incoming) != tc.reused {
				t.Fatalf("header=%q, incoming=%q, reused want %v", got, tc.incoming, tc.reused)
			}
			if inCtx != got {
				t.Fatalf("context id %q differs from header %q", inCtx, got)
			}
		})
	}
}
