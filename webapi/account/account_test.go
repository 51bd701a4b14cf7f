package account_test

import (
	"net/http"
	"testing"

	"github.com/amirasaad/networth/webapi/account"
	"github.com/amirasaad/networth/webapi/testutils"
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type AccountTestSuite struct {
	testutils.E2ETestSuite
	user testutils.TestUser
}

func (s *AccountTestSuite) SetupTest() {
	s.E2ETestSuite.SetupTest()
	s.user = s.CreateTestUser()
}

func TestAccountTestSuite(t *testing.T) {
	suite.Run(t, new(AccountTestSuite))
}

func (s *AccountTestSuite) add(path, body string) account.AccountDTO {
	resp := s.MakeRequest(http.MethodPost, path, body, s.user.Token)
	s.Require().Equal(fiber.StatusCreated, resp.StatusCode)
	var a account.AccountDTO
	s.Decode(resp, &a)
	return a
}

func (s *AccountTestSuite) TestRequiresToken() {
	resp := s.MakeRequest(http.MethodGet, "/accounts", "", "")
	s.Equal(fiber.StatusBadRequest, resp.StatusCode)

	resp = s.MakeRequest(http.MethodGet, "/accounts", "", "not-a-token")
	s.Equal(fiber.StatusUnauthorized, resp.StatusCode)
}

func (s *AccountTestSuite) TestAddAndSummarize() {
	cash := s.add("/accounts/assets", `{"category":"cash","name":"Wallet","amount":"1000"}`)
	s.Equal("cash", string(cash.Category))
	s.Equal("asset", string(cash.Kind))
	s.NotEmpty(cash.Icon)

	s.add("/accounts/assets", `{"category":"stock","name":"Brokerage","amount":"3000"}`)
	loan := s.add("/accounts/liabilities",
		`{"category":"car_loan","name":"Car","amount":"1500","interestRate":"4.5","dueDate":"2030-01-31"}`)
	s.Equal("2030-01-31", loan.DueDate)

	resp := s.MakeRequest(http.MethodGet, "/accounts/summary", "", s.user.Token)
	s.Require().Equal(fiber.StatusOK, resp.StatusCode)
	var summary account.SummaryDTO
	s.Decode(resp, &summary)
	s.True(decimal.NewFromInt(4000).Equal(summary.TotalAssets))
	s.True(decimal.NewFromInt(1500).Equal(summary.TotalLiabilities))
	s.True(decimal.NewFromInt(2500).Equal(summary.NetWorth))

	resp = s.MakeRequest(http.MethodGet, "/accounts?category=stock", "", s.user.Token)
	var filtered account.AccountListDTO
	s.Decode(resp, &filtered)
	s.Require().Len(filtered.Accounts, 1)
	s.Equal("Brokerage", filtered.Accounts[0].Name)
	s.Len(filtered.Categories, 3, "tabs ignore the filter")

	resp = s.MakeRequest(http.MethodGet, "/accounts", "", s.user.Token)
	var all account.AccountListDTO
	s.Decode(resp, &all)
	s.Len(all.Accounts, 3)
	var tabs []string
	for _, d := range all.Categories {
		tabs = append(tabs, string(d.Key))
	}
	s.Equal([]string{"cash", "stock", "car_loan"}, tabs)
}

func (s *AccountTestSuite) TestRejectsInvalidAccounts() {
	cases := []struct {
		name string
		path string
		body string
	}{
		{"missing amount", "/accounts/assets", `{"category":"cash","name":"Wallet"}`},
		{"zero amount", "/accounts/assets", `{"category":"cash","name":"Wallet","amount":"0"}`},
		{"negative amount", "/accounts/assets", `{"category":"cash","name":"Wallet","amount":"-5"}`},
		{"liability category as asset", "/accounts/assets", `{"category":"mortgage","name":"Home","amount":"5"}`},
		{"unknown category", "/accounts/liabilities", `{"category":"yacht","name":"Boat","amount":"5"}`},
		{"blank name", "/accounts/assets", `{"category":"cash","name":"","amount":"5"}`},
		{"too many decimals", "/accounts/assets", `{"category":"cash","name":"Wallet","amount":"0.001"}`},
		{"too large", "/accounts/assets", `{"category":"cash","name":"Wallet","amount":"10000000000000000000"}`},
		{"bad date", "/accounts/liabilities", `{"category":"mortgage","name":"Home","amount":"5","dueDate":"31/01/2030"}`},
	}
	for _, tc := range cases {
		s.Run(tc.name, func() {
			resp := s.MakeRequest(http.MethodPost, tc.path, tc.body, s.user.Token)
			s.Equal(fiber.StatusBadRequest, resp.StatusCode)
		})
	}
}

func (s *AccountTestSuite) TestUpdateAndDelete() {
	a := s.add("/accounts/assets", `{"category":"cash","name":"Wallet","amount":"100"}`)

	resp := s.MakeRequest(http.MethodPatch, "/accounts/"+a.ID, `{"amount":"250","note":"topped up"}`, s.user.Token)
	s.Require().Equal(fiber.StatusOK, resp.StatusCode)
	var updated account.AccountDTO
	s.Decode(resp, &updated)
	s.True(decimal.NewFromInt(250).Equal(updated.Amount))
	s.Equal("Wallet", updated.Name)
	s.Equal("topped up", updated.Note)

	resp = s.MakeRequest(http.MethodPatch, "/accounts/"+a.ID, `{"category":"mortgage"}`, s.user.Token)
	s.Equal(fiber.StatusBadRequest, resp.StatusCode)

	resp = s.MakeRequest(http.MethodDelete, "/accounts/"+a.ID, "", s.user.Token)
	s.Equal(fiber.StatusNoContent, resp.StatusCode)
	resp = s.MakeRequest(http.MethodDelete, "/accounts/"+a.ID, "", s.user.Token)
	s.Equal(fiber.StatusNoContent, resp.StatusCode)

	resp = s.MakeRequest(http.MethodPatch, "/accounts/"+a.ID, `{"amount":"1"}`, s.user.Token)
	s.Equal(fiber.StatusNotFound, resp.StatusCode)

	resp = s.MakeRequest(http.MethodDelete, "/accounts/not-a-uuid", "", s.user.Token)
	s.Equal(fiber.StatusBadRequest, resp.StatusCode)
}

func (s *AccountTestSuite) TestAccountsArePrivate() {
	a := s.add("/accounts/assets", `{"category":"cash","name":"Wallet","amount":"100"}`)
	other := s.CreateTestUser()

	resp := s.MakeRequest(http.MethodGet, "/accounts", "", other.Token)
	var list account.AccountListDTO
	s.Decode(resp, &list)
	s.Empty(list.Accounts)
	s.NotNil(list.Categories)
	s.Empty(list.Categories)

	resp = s.MakeRequest(http.MethodPatch, "/accounts/"+a.ID, `{"amount":"1"}`, other.Token)
	s.Equal(fiber.StatusNotFound, resp.StatusCode)
}

func (s *AccountTestSuite) TestAllocation() {
	s.add("/accounts/assets", `{"category":"cash","name":"Wallet","amount":"100"}`)
	s.add("/accounts/assets", `{"category":"cash","name":"Bank","amount":"100"}`)
	s.add("/accounts/assets", `{"category":"gold","name":"Bar","amount":"200"}`)

	resp := s.MakeRequest(http.MethodGet, "/accounts/allocation?kind=asset", "", s.user.Token)
	s.Require().Equal(fiber.StatusOK, resp.StatusCode)
	var slices []struct {
		Key     string          `json:"key"`
		Total   decimal.Decimal `json:"total"`
		Percent decimal.Decimal `json:"percent"`
	}
	s.Decode(resp, &slices)
	s.Require().Len(slices, 2)
	for _, sl := range slices {
		s.True(decimal.NewFromInt(200).Equal(sl.Total), sl.Key)
		s.True(decimal.NewFromInt(50).Equal(sl.Percent), sl.Key)
	}

	resp = s.MakeRequest(http.MethodGet, "/accounts/allocation?kind=equity", "", s.user.Token)
	s.Equal(fiber.StatusBadRequest, resp.StatusCode)
}

func (s *AccountTestSuite) TestClearAll() {
	s.add("/accounts/assets", `{"category":"cash","name":"Wallet","amount":"100"}`)
	resp := s.MakeRequest(http.MethodPost, "/snapshots", "", s.user.Token)
	s.Require().Equal(fiber.StatusCreated, resp.StatusCode)

	resp = s.MakeRequest(http.MethodDelete, "/data", "", s.user.Token)
	s.Require().Equal(fiber.StatusNoContent, resp.StatusCode)

	resp = s.MakeRequest(http.MethodGet, "/accounts", "", s.user.Token)
	var list account.AccountListDTO
	s.Decode(resp, &list)
	s.Empty(list.Accounts)

	resp = s.MakeRequest(http.MethodGet, "/snapshots", "", s.user.Token)
	var snaps []map[string]any
	s.Decode(resp, &snaps)
	s.Empty(snaps)
}

func (s *AccountTestSuite) TestClearLiabilityFields() {
	loan := s.add("/accounts/liabilities",
		`{"category":"mortgage","name":"Home","amount":"900","interestRate":"4.2","dueDate":"2031-05-01"}`)
	s.Require().NotNil(loan.InterestRate)

	resp := s.MakeRequest(http.MethodPatch, "/accounts/"+loan.ID, `{"name":"House"}`, s.user.Token)
	s.Require().Equal(fiber.StatusOK, resp.StatusCode)
	var kept account.AccountDTO
	s.Decode(resp, &kept)
	s.NotNil(kept.InterestRate, "absent fields are kept")
	s.Equal("2031-05-01", kept.DueDate)

	resp = s.MakeRequest(http.MethodPatch, "/accounts/"+loan.ID, `{"interestRate":null,"dueDate":""}`, s.user.Token)
	s.Require().Equal(fiber.StatusOK, resp.StatusCode)
	var cleared account.AccountDTO
	s.Decode(resp, &cleared)
	s.Nil(cleared.InterestRate)
	s.Empty(cleared.DueDate)

	resp = s.MakeRequest(http.MethodGet, "/accounts?category=mortgage", "", s.user.Token)
	var list account.AccountListDTO
	s.Decode(resp, &list)
	s.Require().Len(list.Accounts, 1)
	s.Nil(list.Accounts[0].InterestRate)
	s.Empty(list.Accounts[0].DueDate)

	resp = s.MakeRequest(http.MethodPatch, "/accounts/"+loan.ID, `{"dueDate":"01/05/2031"}`, s.user.Token)
	s.Equal(fiber.StatusBadRequest, resp.StatusCode)
}

func (s *AccountTestSuite) TestEmptyPatchIsRejected() {
	a := s.add("/accounts/assets", `{"category":"cash","name":"Wallet","amount":"100"}`)
	resp := s.MakeRequest(http.MethodPatch, "/accounts/"+a.ID, `{}`, s.user.Token)
	s.Equal(fiber.StatusBadRequest, resp.StatusCode)
}

func (s *AccountTestSuite) TestLoadDemo() {
	s.add("/accounts/assets", `{"category":"gold","name":"Bar","amount":"5"}`)

	resp := s.MakeRequest(http.MethodPost, "/data/demo", "", s.user.Token)
	s.Require().Equal(fiber.StatusOK, resp.StatusCode)
	var seeded account.AccountListDTO
	s.Decode(resp, &seeded)
	s.Len(seeded.Accounts, 10)
	for _, a := range seeded.Accounts {
		s.NotEqual("Bar", a.Name)
	}

	resp = s.MakeRequest(http.MethodGet, "/accounts/summary", "", s.user.Token)
	var summary account.SummaryDTO
	s.Decode(resp, &summary)
	s.True(decimal.NewFromInt(1698500).Equal(summary.NetWorth))

	resp = s.MakeRequest(http.MethodPost, "/data/demo", "", "")
	s.Equal(fiber.StatusBadRequest, resp.StatusCode)
}
