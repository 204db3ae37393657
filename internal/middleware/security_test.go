package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serveWithSecurityHeaders(t *testing.T, target string, next echo.HandlerFunc) (*httptest.ResponseRecorder, error) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	return rec, SecurityHeaders()(next)(c)
}

func okHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func TestSecurityHeaders(t *testing.T) {
	rec, err := serveWithSecurityHeaders(t, "/api/transactions", okHandler)
	require.NoError(t, err)

	headers := rec.Header()
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "nosniff", headers.Get("X-Content-Type-Options"))
	assert.Equal(t, "DENY", headers.Get("X-Frame-Options"))
	assert.Equal(t, "default-src 'none'; frame-ancestors 'none'", headers.Get("Content-Security-Policy"))
	assert.Equal(t, "no-referrer", headers.Get("Referrer-Policy"))
	assert.Equal(t, "no-store", headers.Get("Cache-Control"))
	assert.Equal(t, "no-cache", headers.Get("Pragma"))
}

func TestSecurityHeaders_OutsideAPI(t *testing.T) {
	for _, target := range []string{"/health", "/metrics", "/apis"} {
		t.Run(target, func(t *testing.T) {
			rec, err := serveWithSecurityHeaders(t, target, okHandler)
			require.NoError(t, err)

			assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
			assert.Empty(t, rec.Header().Get("Cache-Control"))
		})
	}
}

func TestSecurityHeaders_PassesErrorsThrough(t *testing.T) {
	want := errors.New("handler failed")

	rec, err := serveWithSecurityHeaders(t, "/api/transactions/export", func(echo.Context) error {
		return want
	})

	assert.ErrorIs(t, err, want)
	assert.Equal(t, "no-store", rec.Header().Get("Cache-Control"))
}
