package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/shafran-admin/internal/apperrors"
	"github.com/example/shafran-admin/internal/handlers"
)

type sessionStub struct {
	ready, authenticated bool
}

func (s *sessionStub) Ready() bool           { return s.ready }
func (s *sessionStub) IsAuthenticated() bool { return s.authenticated }

func statusOf(t *testing.T, app *fiber.App, req *http.Request) int {
	t.Helper()
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	resp.Body.Close()
	return resp.StatusCode
}

func TestSessionGate(t *testing.T) {
	state := &sessionStub{}
	app := fiber.New(fiber.Config{ErrorHandler: handlers.ErrorHandler})
	app.Get("/protected", SessionGate(state), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusNoContent)
	})

	assert.Equal(t, http.StatusServiceUnavailable, statusOf(t, app, httptest.NewRequest(http.MethodGet, "/protected", nil)))

	state.ready = true
	assert.Equal(t, http.StatusUnauthorized, statusOf(t, app, httptest.NewRequest(http.MethodGet, "/protected", nil)))

	state.authenticated = true
	assert.Equal(t, http.StatusNoContent, statusOf(t, app, httptest.NewRequest(http.MethodGet, "/protected", nil)))
}

func TestRequireConfirmation(t *testing.T) {
	app := fiber.New(fiber.Config{ErrorHandler: handlers.ErrorHandler})
	app.Delete("/items/:id", RequireConfirmation("Sure?"), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusNoContent)
	})

	assert.Equal(t, http.StatusPreconditionRequired, statusOf(t, app, httptest.NewRequest(http.MethodDelete, "/items/1", nil)))
	assert.Equal(t, http.StatusPreconditionRequired, statusOf(t, app, httptest.NewRequest(http.MethodDelete, "/items/1?confirm=false", nil)))
	assert.Equal(t, http.StatusNoContent, statusOf(t, app, httptest.NewRequest(http.MethodDelete, "/items/1?confirm=true", nil)))

	req := httptest.NewRequest(http.MethodDelete, "/items/1", nil)
	req.Header.Set(ConfirmHeader, "TRUE")
	assert.Equal(t, http.StatusNoContent, statusOf(t, app, req))
}

func TestMiddlewareReturnsSentinels(t *testing.T) {
	app := fiber.New()
	var gateErr, confirmErr error
	app.Get("/gate", func(c *fiber.Ctx) error {
		gateErr = SessionGate(&sessionStub{ready: true})(c)
		return nil
	})
	app.Get("/confirm", func(c *fiber.Ctx) error {
		confirmErr = RequireConfirmation("Sure?")(c)
		return nil
	})

	statusOf(t, app, httptest.NewRequest(http.MethodGet, "/gate", nil))
	statusOf(t, app, httptest.NewRequest(http.MethodGet, "/confirm", nil))

	assert.ErrorIs(t, gateErr, apperrors.ErrUnauthenticated)
	assert.ErrorIs(t, confirmErr, apperrors.ErrConfirmationRequired)
	assert.EqualError(t, confirmErr, "Sure?")
}
