package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestHealthHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name string
		ping func(ctx context.Context) error
		path string
		want int
	}{
		{name: "healthz ok", path: "/healthz", want: 200},
		{name: "healthz ignores ping", ping: func(context.Context) error { return assertErr{} }, path: "/healthz", want: 200},
		{name: "readyz without deps", path: "/readyz", want: 200},
		{name: "readyz ok", ping: func(context.Context) error { return nil }, path: "/readyz", want: 200},
		{name: "readyz degraded", ping: func(context.Context) error { return assertErr{} }, path: "/readyz", want: 503},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := gin.New()
			NewHealthHandler(tc.ping).Register(r)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tc.path, nil))
			if w.Code != tc.want {
				t.Fatalf("want %d got %d", tc.want, w.Code)
			}
		})
	}
}

func TestHealthHandler_PingHasDeadline(t *testing.T) {
	gin.SetMode(gin.TestMode)
	var hasDeadline bool
	r := gin.New()
	NewHealthHandler(func(ctx context.Context) error {
		_, hasDeadline = ctx.Deadline()
		return nil
	}).Register(r)
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/readyz", nil))
	if !hasDeadline {
		t.Fatalf("readiness ping must be bounded")
	}
}

type assertErr struct{}

func (assertErr) Error() string { return "err" }
