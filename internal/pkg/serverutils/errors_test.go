package serverutils

import (
	"errors"
	"io"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// nopLogger satisfies logger.ILogger for middleware tests.
type nopLogger struct{}

func (nopLogger) Debug(string, string, map[string]interface{}) {}
func (nopLogger) Info(string, string, map[string]interface{})  {}
func (nopLogger) Warn(string, string, map[string]interface{})  {}
func (nopLogger) Error(string, string, map[string]interface{}) {}
func (nopLogger) Sync() error                                  { return nil }

func TestErrorKindStatusCodes(t *testing.T) {
	cases := []struct {
		kind   ErrorKind
		status int
	}{
		{KindValidation, fiber.StatusBadRequest},
		{KindUnauthorized, fiber.StatusUnauthorized},
		{KindRateLimited, fiber.StatusTooManyRequests},
		{KindUnavailable, fiber.StatusServiceUnavailable},
		{KindInternal, fiber.StatusInternalServerError},
	}
	for _, c := range cases {
		assert.Equal(t, c.status, c.kind.StatusCode())
	}
}

func TestInternalErrorHidesCause(t *testing.T) {
	cause := errors.New("pq: relation does not exist")
	err := InternalError(cause)

	assert.Equal(t, "internal server error", err.Message)
	assert.ErrorIs(t, err, cause)
}

func errorApp(h fiber.Handler) *fiber.App {
	app := fiber.New()
	app.Use(ErrorHandlerMiddleware(nopLogger{}))
	app.Get("/boom", h)
	return app
}

func TestErrorHandlerMapsAppError(t *testing.T) {
	app := errorApp(func(c *fiber.Ctx) error {
		return ValidationError("Content cannot be empty")
	})

	resp, err := app.Test(newGetRequest("/boom"))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.JSONEq(t, `{"error":"Content cannot be empty"}`, string(body))
}

func TestErrorHandlerNeverLeaksInternalCause(t *testing.T) {
	app := errorApp(func(c *fiber.Ctx) error {
		return InternalError(errors.New("password=hunter2 dial failed"))
	})

	resp, err := app.Test(newGetRequest("/boom"))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.JSONEq(t, `{"error":"internal server error"}`, string(body))
	assert.NotContains(t, string(body), "hunter2")
}

func TestErrorHandlerMapsFiberError(t *testing.T) {
	app := errorApp(func(c *fiber.Ctx) error {
		return fiber.ErrNotFound
	})

	resp, err := app.Test(newGetRequest("/boom"))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestErrorHandlerMapsUnknownErrorTo500(t *testing.T) {
	app := errorApp(func(c *fiber.Ctx) error {
		return errors.New("something odd")
	})

	resp, err := app.Test(newGetRequest("/boom"))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.JSONEq(t, `{"error":"internal server error"}`, string(body))
}

func newGetRequest(target string) *http.Request {
	req, _ := http.NewRequest(http.MethodGet, target, nil)
	return req
}
