package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/amirasaad/networth/pkg/config"
	authsvc "github.com/amirasaad/networth/pkg/service/auth"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testJwt = &config.Jwt{Secret: "middleware-secret", Expiry: time.Hour}

func sign(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func protectedApp() *fiber.App {
	app := fiber.New()
	app.Get("/", JwtProtected(testJwt), func(c *fiber.Ctx) error {
		sess, err := Session(c)
		if err != nil {
			return c.SendStatus(fiber.StatusUnauthorized)
		}
		return c.SendString(sess.Email)
	})
	return app
}

func TestJwtError_Malformed(t *testing.T) {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		return jwtError(c, errors.New("Missing or malformed JWT"))
	})
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	resp, _ := app.Test(req)
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Errorf("expected %d, got %d", fiber.StatusBadRequest, resp.StatusCode)
	}
}

func TestJwtError_Invalid(t *testing.T) {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		return jwtError(c, errors.New("any other error"))
	})
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	resp, _ := app.Test(req)
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Errorf("expected %d, got %d", fiber.StatusUnauthorized, resp.StatusCode)
	}
}

func TestJwtProtected(t *testing.T) {
	userID := uuid.New()
	valid := jwt.MapClaims{
		authsvc.ClaimUserID: userID.String(),
		authsvc.ClaimEmail:  "a@b.com",
		"exp":               time.Now().Add(time.Hour).Unix(),
	}
	expired := jwt.MapClaims{
		authsvc.ClaimUserID: userID.String(),
		authsvc.ClaimEmail:  "a@b.com",
		"exp":               time.Now().Add(-time.Hour).Unix(),
	}
	noEmail := jwt.MapClaims{
		authsvc.ClaimUserID: userID.String(),
		"exp":               time.Now().Add(time.Hour).Unix(),
	}

	tests := []struct {
		name   string
		header string
		status int
	}{
		{name: "missing", header: "", status: fiber.StatusBadRequest},
		{name: "valid", header: "Bearer " + sign(t, testJwt.Secret, valid), status: fiber.StatusOK},
		{name: "wrong secret", header: "Bearer " + sign(t, "other", valid), status: fiber.StatusUnauthorized},
		{name: "expired", header: "Bearer " + sign(t, testJwt.Secret, expired), status: fiber.StatusUnauthorized},
		{name: "no session claims", header: "Bearer " + sign(t, testJwt.Secret, noEmail), status: fiber.StatusUnauthorized},
	}
	app := protectedApp()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set(fiber.HeaderAuthorization, tt.header)
			}
			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.status, resp.StatusCode)
		})
	}
}
