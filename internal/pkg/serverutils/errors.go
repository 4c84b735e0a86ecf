package serverutils

import (
	"errors"

	"notes-api/internal/pkg/logger"

	"github.com/gofiber/fiber/v2"
)

type ErrorKind int

const (
	KindValidation ErrorKind = iota
	KindUnauthorized
	KindRateLimited
	KindUnavailable
	KindInternal
)

// AppError carries an error kind that maps to a fixed HTTP status and a
// client-safe message. Internal causes stay in the log, never in the body.
type AppError struct {
	Kind    ErrorKind
	Message string
	cause   error
}

func (e *AppError) Error() string {
	if e.cause != nil {
		return e.Message + ": " + e.cause.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.cause
}

func ValidationError(message string) *AppError {
	return &AppError{Kind: KindValidation, Message: message}
}

func UnauthorizedError() *AppError {
	return &AppError{Kind: KindUnauthorized, Message: "unauthorized"}
}

func RateLimitedError() *AppError {
	return &AppError{Kind: KindRateLimited, Message: "rate limit exceeded"}
}

func UnavailableError(message string, cause error) *AppError {
	return &AppError{Kind: KindUnavailable, Message: message, cause: cause}
}

func InternalError(cause error) *AppError {
	return &AppError{Kind: KindInternal, Message: "internal server error", cause: cause}
}

func (k ErrorKind) StatusCode() int {
	switch k {
	case KindValidation:
		return fiber.StatusBadRequest
	case KindUnauthorized:
		return fiber.StatusUnauthorized
	case KindRateLimited:
		return fiber.StatusTooManyRequests
	case KindUnavailable:
		return fiber.StatusServiceUnavailable
	default:
		return fiber.StatusInternalServerError
	}
}

// ErrorHandlerMiddleware turns errors returned by handlers into JSON error
// responses. Every kind has a fixed status and body; raw causes are logged.
func ErrorHandlerMiddleware(log logger.ILogger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		err := c.Next()
		if err == nil {
			return nil
		}

		var appErr *AppError
		if errors.As(err, &appErr) {
			if appErr.Kind == KindInternal || appErr.Kind == KindUnavailable {
				log.Error("http", "request failed", map[string]interface{}{
					"method": c.Method(),
					"path":   c.Path(),
					"error":  err.Error(),
				})
			}
			return c.Status(appErr.Kind.StatusCode()).JSON(fiber.Map{"error": appErr.Message})
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return c.Status(fiberErr.Code).JSON(fiber.Map{"error": fiberErr.Message})
		}

		log.Error("http", "unhandled error", map[string]interface{}{
			"method": c.Method(),
			"path":   c.Path(),
			"error":  err.Error(),
		})
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal server error"})
	}
}
