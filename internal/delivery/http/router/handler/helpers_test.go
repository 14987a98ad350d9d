package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"vita/internal/delivery/http/middleware"
	"vita/internal/delivery/http/validator"

	"github.com/labstack/echo/v4"
)

// newTestEcho builds an Echo instance with the same validator and error
// handler the real server uses, so tests exercise binding, validation and
// error mapping end to end.
func newTestEcho(t *testing.T) *echo.Echo {
	t.Helper()

	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(
		slog.New(slog.NewTextHandler(io.Discard, nil)),
	).HandleHTTPError

	return e
}

func doJSON(e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func doGet(e *echo.Echo, target string) *httptest.ResponseRecorder {
	return doJSON(e, http.MethodGet, target, "")
}
