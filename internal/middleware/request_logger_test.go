package middleware

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/dafibh/kasboek/kasboek-backend/internal/logger"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
)

func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	prev := log.Logger
	log.Logger = zerolog.New(buf)
	t.Cleanup(func() { log.Logger = prev })
	return buf
}

func TestRequestLogger_LogsRequest(t *testing.T) {
	buf := captureLog(t)
	e := echo.New()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/budget/2024/3", nil)
	rec := httptest.NewRecorder()
	err := RequestLogger()(func(c echo.Context) error {
		return c.String(http.StatusOK, "OK")
	})(e.NewContext(req, rec))

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), `"path":"/api/v1/budget/2024/3"`)
	assert.Contains(t, buf.String(), `"status":200`)
	assert.Contains(t, buf.String(), `"level":"info"`)
}

func TestRequestLogger_HandlesErrors(t *testing.T) {
	buf := captureLog(t)
	e := echo.New()

	req := httptest.NewRequest(http.MethodGet, "/boom", nil)
	rec := httptest.NewRecorder()
	err := RequestLogger()(func(c echo.Context) error {
		return errors.New("boom")
	})(e.NewContext(req, rec))

	assert.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, buf.String(), `"level":"error"`)
}

func TestRequestLogger_ContextLoggerCarriesRequestID(t *testing.T) {
	buf := captureLog(t)
	e := echo.New()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/backups", nil)
	rec := httptest.NewRecorder()
	rec.Header().Set(echo.HeaderXRequestID, "req-42")
	err := RequestLogger()(func(c echo.Context) error {
		l := logger.FromContext(c.Request().Context())
		l.Info().Msg("inside handler")
		return c.NoContent(http.StatusCreated)
	})(e.NewContext(req, rec))

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "inside handler")
	assert.Equal(t, 2, strings.Count(buf.String(), `"request_id":"req-42"`))
}
