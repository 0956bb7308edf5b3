package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"domainscout/internal/middleware"
)

const pprofSecret = "s3cret"

func newPprofServer(secret string) *echo.Echo {
	e := echo.New()
	g := e.Group("/debug/pprof", middleware.PprofAuth(secret))
	middleware.RegisterPprof(g)
	return e
}

func TestPprofAuth(t *testing.T) {
	tests := []struct {
		name     string
		secret   string
		header   string
		expected int
	}{
		{name: "open without secret", secret: "", header: "", expected: http.StatusOK},
		{name: "matching header", secret: pprofSecret, header: pprofSecret, expected: http.StatusOK},
		{name: "wrong header", secret: pprofSecret, header: "nope", expected: http.StatusUnauthorized},
		{name: "prefix of secret", secret: pprofSecret, header: "s3cre", expected: http.StatusUnauthorized},
		{name: "missing header", secret: pprofSecret, header: "", expected: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newPprofServer(tt.secret)

			req := httptest.NewRequest(http.MethodGet, "/debug/pprof/heap", nil)
			if tt.header != "" {
				req.Header.Set("X-Pprof-Secret", tt.header)
			}
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			assert.Equal(t, tt.expected, rec.Code)
			if tt.expected == http.StatusUnauthorized {
				assert.JSONEq(t, `{"error":"unauthorized"}`, rec.Body.String())
			}
		})
	}
}

func TestRegisterPprof_Routes(t *testing.T) {
	e := newPprofServer("")

	registered := make(map[string]bool)
	for _, r := range e.Routes() {
		registered[r.Method+" "+r.Path] = true
	}

	for _, route := range []string{
		"GET /debug/pprof/",
		"GET /debug/pprof/cmdline",
		"GET /debug/pprof/profile",
		"GET /debug/pprof/symbol",
		"POST /debug/pprof/symbol",
		"GET /debug/pprof/trace",
		"GET /debug/pprof/allocs",
		"GET /debug/pprof/block",
		"GET /debug/pprof/goroutine",
		"GET /debug/pprof/heap",
		"GET /debug/pprof/mutex",
		"GET /debug/pprof/threadcreate",
	} {
		assert.True(t, registered[route], "route %s not registered", route)
	}
}

func TestRegisterPprof_NamedProfilesServe(t *testing.T) {
	e := newPprofServer(pprofSecret)

	for _, name := range []string{"allocs", "block", "goroutine", "heap", "mutex", "threadcreate"} {
		t.Run(name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/debug/pprof/"+name+"?debug=1", nil)
			req.Header.Set("X-Pprof-Secret", pprofSecret)
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.NotEmpty(t, rec.Body.String())
		})
	}
}
