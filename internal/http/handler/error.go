package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"adgenie/internal/http/middleware"
)

// errorPayload is the body of every non-2xx JSON response.
type errorPayload struct {
	RequestID string        `json:"request_id"`
	Error     errorEnvelope `json:"error"`
}

type errorEnvelope struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

var internalError = errorEnvelope{Code: "INTERNAL_ERROR", Message: "internal server error"}

// clientErrors maps the statuses surfaced to callers verbatim. Anything else
// is reported as internalError.
var clientErrors = map[int]errorEnvelope{
	fiber.StatusBadRequest:       {Code: "BAD_REQUEST", Message: "bad request"},
	fiber.StatusNotFound:         {Code: "NOT_FOUND", Message: "resource not found"},
	fiber.StatusMethodNotAllowed: {Code: "METHOD_NOT_ALLOWED", Message: "method not allowed"},
}

// writeError sends the error envelope; message must be safe to show to clients.
func writeError(c *fiber.Ctx, status int, code, message string) error {
	return c.Status(status).JSON(errorPayload{
		RequestID: middleware.RequestIDFromCtx(c),
		Error:     errorEnvelope{Code: code, Message: message},
	})
}

// ErrorHandler returns the app-wide Fiber error handler. The status of a
// *fiber.Error is kept; any other error becomes a 500.
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status := fiber.StatusInternalServerError
		var fe *fiber.Error
		if errors.As(err, &fe) {
			status = fe.Code
		}

		env, ok := clientErrors[status]
		if !ok {
			env = internalError
		}
		return writeError(c, status, env.Code, env.Message)
	}
}
