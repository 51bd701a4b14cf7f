package main_test

import (
	"io"
	"log/slog"
	"net/http"
	"os"
	"testing"

	"github.com/amirasaad/networth/webapi/testutils"
	"github.com/stretchr/testify/suite"
)

// TestMain runs before any tests and applies globally for all tests in the package.
func TestMain(m *testing.M) {
	slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
	os.Exit(m.Run())
}

type MainTestSuite struct {
	testutils.E2ETestSuite
}

func TestMainTestSuite(t *testing.T) {
	suite.Run(t, new(MainTestSuite))
}

func (s *MainTestSuite) TestStartServer_RootRoute() {
	resp := s.MakeRequest(http.MethodGet, "/", "", "")
	defer resp.Body.Close() //nolint:errcheck
	s.Equal(http.StatusOK, resp.StatusCode)
}

func (s *MainTestSuite) TestNetWorthJourney() {
	u := s.CreateTestUser()
	resp := s.MakeRequest(http.MethodPost, "/accounts/assets", `{"category":"deposit","name":"Savings","amount":"500"}`, u.Token)
	s.Require().Equal(http.StatusCreated, resp.StatusCode)
	resp = s.MakeRequest(http.MethodPost, "/snapshots", "", u.Token)
	s.Require().Equal(http.StatusCreated, resp.StatusCode)

	var history []map[string]any
	s.Decode(s.MakeRequest(http.MethodGet, "/snapshots", "", u.Token), &history)
	s.Require().Len(history, 1)
	s.Equal("500", history[0]["netWorth"])
}
