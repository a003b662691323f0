package middleware

import (
	"errors"
	"log"

	"jedx-skills/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

// AppError lets handlers attach an HTTP status and client-facing detail to
// an underlying cause.
type AppError struct {
	StatusCode int
	Detail     string
	Cause      error
}

func (e *AppError) Error() string {
	if e == nil {
		return ""
	}
	if e.Cause != nil {
		return e.Detail + ": " + e.Cause.Error()
	}
	return e.Detail
}

func (e *AppError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

func NewAppError(statusCode int, detail string, cause error) *AppError {
	return &AppError{StatusCode: statusCode, Detail: detail, Cause: cause}
}

type ErrorMiddleware struct{}

func NewErrorMiddleware() *ErrorMiddleware {
	return &ErrorMiddleware{}
}

// Middleware renders any error escaping a handler as a detail envelope and
// recovers panics into a 500.
func (m *ErrorMiddleware) Middleware() fiber.Handler {
	return func(c fiber.Ctx) (err error) {
		defer func() {
			if r := recover(); r != nil {
				log.Printf("panic recovered: %v", r)
				err = response.Detail(c, fiber.StatusInternalServerError, response.DetailInternalServerError)
			}
		}()

		err = c.Next()
		if err == nil {
			return nil
		}

		status, detail := normalizeError(err)
		return response.Detail(c, status, detail)
	}
}

func normalizeError(err error) (int, string) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		status := appErr.StatusCode
		if status <= 0 || status >= 500 {
			return fiber.StatusInternalServerError, response.DetailInternalServerError
		}
		return status, appErr.Detail
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		status := fiberErr.Code
		if status <= 0 || status >= 500 {
			return fiber.StatusInternalServerError, response.DetailInternalServerError
		}
		return status, fiberErr.Message
	}

	return fiber.StatusInternalServerError, response.DetailInternalServerError
}
