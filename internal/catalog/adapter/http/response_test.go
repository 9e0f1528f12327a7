package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	apperrors "shop-ledger/internal/shared/errors"
	"shop-ledger/internal/shared/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serveError(t *testing.T, handlerErr error) (int, string) {
	t.Helper()
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler(logger.NewNopLogger())})
	app.Get("/", func(c *fiber.Ctx) error { return handlerErr })

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var out map[string]string
	require.NoError(t, json.Unmarshal(raw, &out))
	return resp.StatusCode, out["error"]
}

func TestErrorHandler_AppErrorHidesCause(t *testing.T) {
	appErr := apperrors.NewInfrastructureError("Store unavailable").
		WithCause(errors.New("dial tcp 10.0.0.7:27017: connection refused"))

	status, message := serveError(t, appErr)

	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, "Store unavailable", message)
}

func TestErrorHandler_WrappedValidationError(t *testing.T) {
	appErr := apperrors.NewValidationError("Invalid id").WithCause(apperrors.ErrInvalidID)

	status, message := serveError(t, fmt.Errorf("route: %w", appErr))

	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Invalid id", message)
}

func TestErrorHandler_PlainErrors(t *testing.T) {
	status, message := serveError(t, fmt.Errorf("parse: %w", apperrors.ErrInvalidID))
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Bad Request", message)

	status, message = serveError(t, errors.New("secret driver detail"))
	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, "Server error", message)
}

func TestErrorHandler_FiberError(t *testing.T) {
	status, message := serveError(t, fiber.NewError(fiber.StatusMethodNotAllowed, "nope"))

	assert.Equal(t, http.StatusMethodNotAllowed, status)
	assert.Equal(t, "nope", message)
}

func TestLogRejection_Levels(t *testing.T) {
	cases := []struct {
		name  string
		err   error
		level string
	}{
		{"server failure", apperrors.NewInfrastructureError("down"), "error"},
		{"validation", apperrors.NewValidationError("bad"), "debug"},
		{"invalid id sentinel", fmt.Errorf("parse: %w", apperrors.ErrInvalidID), "debug"},
		{"not found", apperrors.NewNotFoundError("Product not found"), "debug"},
		{"other client error", apperrors.NewAppError(apperrors.ErrorTypeInternal, "slow down", http.StatusTooManyRequests), "warn"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := newRecordingLogger()
			logRejection(rec, apperrors.HTTPStatus(tc.err), tc.err)

			entries := rec.entries()
			require.Len(t, entries, 1)
			assert.Equal(t, tc.level, entries[0].level)
		})
	}
}

func TestRequestLogger_UnwrapsFiberError(t *testing.T) {
	rec := newRecordingLogger()
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler(logger.NewNopLogger())})
	app.Use(RequestLogger(rec))
	app.Get("/", func(c *fiber.Ctx) error {
		return fmt.Errorf("lookup: %w", fiber.ErrNotFound)
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	entries := rec.entries()
	require.Len(t, entries, 1)
	assert.Equal(t, "request handled", entries[0].msg)
	assert.Equal(t, fiber.StatusNotFound, entries[0].fields["status"])
}
