package middleware

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"poison/internal/delivery/http/response"
	domainerrors "poison/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func handleError(t *testing.T, err error) (*httptest.ResponseRecorder, response.Response) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mw := NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))
	mw.HandleHTTPError(err, c)

	var body response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return rec, body
}

func TestErrorMiddleware_MapsAppError(t *testing.T) {
	rec, body := handleError(t, errors.Wrap(domainerrors.ErrDuplicateIdentity, "registration"))

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.False(t, body.Success)
	require.NotNil(t, body.Error)
	assert.Equal(t, "DUPLICATE_IDENTITY", body.Error.Code)
}

func TestErrorMiddleware_MapsEchoHTTPError(t *testing.T) {
	rec, body := handleError(t, echo.NewHTTPError(http.StatusNotFound, "Not Found"))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	require.NotNil(t, body.Error)
	assert.Equal(t, "HTTP_ERROR", body.Error.Code)
}

func TestErrorMiddleware_HidesUnexpectedErrors(t *testing.T) {
	rec, body := handleError(t, errors.New("pq: connection refused"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	require.NotNil(t, body.Error)
	assert.Equal(t, "INTERNAL_ERROR", body.Error.Code)
	assert.NotContains(t, body.Message, "connection refused")
	assert.NotContains(t, body.Error.Details, "connection refused")
}
