package testutils

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/amirasaad/networth/infra"
	"github.com/amirasaad/networth/infra/eventbus"
	"github.com/amirasaad/networth/internal/testdb"
	"github.com/amirasaad/networth/pkg/app"
	"github.com/amirasaad/networth/pkg/config"
	"github.com/amirasaad/networth/webapi"
	"github.com/amirasaad/networth/webapi/common"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// TestPassword is the password of every user made by CreateTestUser.
const TestPassword = "password123"

// TestUser is a registered user and a token for it.
type TestUser struct {
	ID    uuid.UUID
	Email string
	Token string
}

// E2ETestSuite runs the HTTP application against a private in-memory sqlite database.
type E2ETestSuite struct {
	suite.Suite
	DB  *gorm.DB
	App *fiber.App
	Bus *eventbus.MemoryEventBus
	Cfg *config.App
	// Metrics, when set before SetupTest, is mounted at /metrics.
	Metrics http.Handler
	// OnBus runs against the fresh bus before the application is built.
	OnBus func(*eventbus.MemoryEventBus)
}

// TestConfig is the configuration the suite builds its application from.
func TestConfig() *config.App {
	return &config.App{
		Env: "test",
		Auth: &config.Auth{
			Strategy: "jwt",
			Jwt:      &config.Jwt{Secret: "e2e-secret", Expiry: time.Hour},
		},
		RateLimit:  &config.RateLimit{MaxRequests: 1000, Window: time.Minute},
		Invitation: &config.Invitation{TTL: 24 * time.Hour},
	}
}

// SetupTest gives every test a fresh database and application.
func (s *E2ETestSuite) SetupTest() {
	if s.Cfg == nil {
		s.Cfg = TestConfig()
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s.DB = testdb.Open(s.T(), infra.Models()...)
	s.Bus = eventbus.NewWithMemory(logger)
	if s.OnBus != nil {
		s.OnBus(s.Bus)
	}
	a := app.New(&app.Deps{
		Uow:      infra.NewUoW(s.DB),
		EventBus: s.Bus,
		Logger:   logger,
		Metrics:  s.Metrics,
	}, s.Cfg)
	s.App = webapi.NewApp(a)
}

// MakeRequest is a helper for making HTTP requests in tests
func (s *E2ETestSuite) MakeRequest(method, path, body, token string) *http.Response {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := s.App.Test(req, -1)
	s.Require().NoError(err)
	return resp
}

// Decode reads the success envelope of resp into data.
func (s *E2ETestSuite) Decode(resp *http.Response, data any) {
	defer resp.Body.Close() //nolint:errcheck
	var envelope struct {
		common.Response
		Data json.RawMessage `json:"data"`
	}
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(&envelope))
	if data != nil {
		s.Require().NoError(json.Unmarshal(envelope.Data, data))
	}
}

// Problem reads a problem+json body.
func (s *E2ETestSuite) Problem(resp *http.Response) common.ProblemDetails {
	defer resp.Body.Close() //nolint:errcheck
	var pd common.ProblemDetails
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(&pd))
	return pd
}

// LoginUser exchanges credentials for a token over HTTP.
func (s *E2ETestSuite) LoginUser(email, password string) string {
	body := fmt.Sprintf(`{"email":%q,"password":%q}`, email, password)
	resp := s.MakeRequest(http.MethodPost, "/auth/login", body, "")
	s.Require().Equal(fiber.StatusOK, resp.StatusCode)
	var data struct {
		Token string `json:"token"`
	}
	s.Decode(resp, &data)
	s.Require().NotEmpty(data.Token)
	return data.Token
}

// CreateTestUser registers a user with a random email and logs it in.
func (s *E2ETestSuite) CreateTestUser() TestUser {
	email := fmt.Sprintf("test_%s@example.com", uuid.NewString()[:8])
	return s.CreateUser(email)
}

// CreateUser registers email with TestPassword and logs it in.
func (s *E2ETestSuite) CreateUser(email string) TestUser {
	body := fmt.Sprintf(`{"email":%q,"password":%q}`, email, TestPassword)
	resp := s.MakeRequest(http.MethodPost, "/auth/register", body, "")
	s.Require().Equal(fiber.StatusCreated, resp.StatusCode)
	var data struct {
		ID string `json:"id"`
	}
	s.Decode(resp, &data)
	id, err := uuid.Parse(data.ID)
	s.Require().NoError(err)
	return TestUser{ID: id, Email: email, Token: s.LoginUser(email, TestPassword)}
}
