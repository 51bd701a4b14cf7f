package common

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/amirasaad/networth/pkg/domain"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorToStatusCode(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{fmt.Errorf("%w: bad", domain.ErrValidation), fiber.StatusBadRequest},
		{domain.ErrUnauthorized, fiber.StatusUnauthorized},
		{fmt.Errorf("%w: nope", domain.ErrForbidden), fiber.StatusForbidden},
		{fmt.Errorf("%w: gone", domain.ErrNotFound), fiber.StatusNotFound},
		{fmt.Errorf("%w: twice", domain.ErrConflict), fiber.StatusConflict},
		{fmt.Errorf("%w: down", domain.ErrGateway), fiber.StatusBadGateway},
		{errors.New("boom"), fiber.StatusInternalServerError},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ErrorToStatusCode(tt.err), tt.err.Error())
	}
}

type input struct {
	Name  string `json:"name" validate:"required,max=5"`
	Email string `json:"email" validate:"omitempty,email"`
}

func bindApp() *fiber.App {
	app := fiber.New()
	app.Post("/", func(c *fiber.Ctx) error {
		in, err := BindAndValidate[input](c)
		if in == nil {
			return err
		}
		return SuccessResponseJSON(c, fiber.StatusCreated, "ok", in)
	})
	return app
}

func post(t *testing.T, app *fiber.App, body string) (*http.Response, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	resp, err := app.Test(req)
	require.NoError(t, err)
	var out map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return resp, out
}

func TestBindAndValidate(t *testing.T) {
	app := bindApp()

	resp, out := post(t, app, `{"name":"abc"}`)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
	assert.Equal(t, "ok", out["message"])

	resp, out = post(t, app, `{"name":"toolongname","email":"x"}`)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "application/problem+json", resp.Header.Get(fiber.HeaderContentType))
	assert.Equal(t, map[string]any{"name": "max", "email": "email"}, out["errors"])

	resp, out = post(t, app, `{"name":`)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Invalid request body", out["title"])
}

func TestProblemDetailsJSON_HidesInternalDetail(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		return ProblemDetailsJSON(c, "Failed", errors.New("pq: connection refused"))
	})
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
	var pd ProblemDetails
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&pd))
	assert.Empty(t, pd.Detail)
	assert.Equal(t, "/", pd.Instance)
}

func TestWithSession_Missing(t *testing.T) {
	app := fiber.New()
	app.Get("/", WithSession(nil))
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}
