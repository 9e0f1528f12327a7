package http

import (
	stderrors "errors"

	"shop-ledger/internal/shared/errors"
	"shop-ledger/internal/shared/logger"

	"github.com/gofiber/fiber/v2"
)

// respondError writes {error: message} with the status carried by err.
// Errors that are not AppErrors are reported with fallback.
func (h *CatalogHandler) respondError(c *fiber.Ctx, err error, fallback string) error {
	status := errors.HTTPStatus(err)
	message := fallback
	var appErr *errors.AppError
	if stderrors.As(err, &appErr) && appErr.Message != "" {
		message = appErr.Message
	}

	entry := h.Log.WithContext(c.UserContext()).WithFields(map[string]interface{}{
		"method": c.Method(),
		"path":   c.Path(),
		"status": status,
	})
	logRejection(entry, status, err)
	return c.Status(status).JSON(fiber.Map{"error": message})
}

// logRejection logs server failures as errors. Bad input and missing
// documents are routine and go to debug; anything else is a warning.
func logRejection(log logger.Logger, status int, err error) {
	switch {
	case status >= fiber.StatusInternalServerError:
		log.Errorf("request failed: %v", err)
	case errors.IsValidation(err) || errors.IsNotFound(err):
		log.Debugf("request rejected: %v", err)
	default:
		log.Warnf("request rejected: %v", err)
	}
}

// ErrorHandler is the app-level fallback for errors returned by handlers and
// middleware, including unknown routes and recovered panics. Only the
// client-facing message of an AppError is sent, never its cause.
func ErrorHandler(log logger.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status := errors.HTTPStatus(err)
		message := "Server error"
		var fe *fiber.Error
		var appErr *errors.AppError
		switch {
		case stderrors.As(err, &fe):
			status = fe.Code
			message = fe.Message
		case stderrors.As(err, &appErr) && appErr.Message != "":
			message = appErr.Message
		case status != fiber.StatusInternalServerError:
			message = fiber.NewError(status).Message
		}
		if status >= fiber.StatusInternalServerError {
			log.Errorf("unhandled error on %s %s: %v", c.Method(), c.Path(), err)
		}
		return c.Status(status).JSON(fiber.Map{"error": message})
	}
}
