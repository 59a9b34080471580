package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SscSPs/general_ledger/internal/apperrors"
	"github.com/SscSPs/general_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/general_ledger/internal/core/ports/services"
	"github.com/SscSPs/general_ledger/internal/dto"
	"github.com/SscSPs/general_ledger/internal/handlers"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock BalanceService ---
type MockBalanceService struct {
	mock.Mock
}

func (m *MockBalanceService) GetAccountBalance(ctx context.Context, tenantID string, accountID string, asOf time.Time) (*domain.AccountBalance, error) {
	args := m.Called(ctx, tenantID, accountID, asOf)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AccountBalance), args.Error(1)
}

var _ portssvc.BalanceSvc = (*MockBalanceService)(nil)

type AccountHandlerTestSuite struct {
	suite.Suite
	router             *gin.Engine
	mockBalanceService *MockBalanceService
	now                time.Time
}

func (suite *AccountHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.Require().NoError(handlers.RegisterValidators())

	suite.router = gin.New()
	suite.mockBalanceService = new(MockBalanceService)
	suite.now = time.Date(2024, 2, 29, 23, 10, 0, 0, time.UTC)

	v1 := suite.router.Group("/api/v1")
	handlers.RegisterAccountRoutes(v1, suite.mockBalanceService, func() time.Time { return suite.now })
}

func TestAccountHandler(t *testing.T) {
	suite.Run(t, new(AccountHandlerTestSuite))
}

func (suite *AccountHandlerTestSuite) get(url string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(http.MethodGet, url, nil)
	req.Header.Set("Accept", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *AccountHandlerTestSuite) cashBalance(asOf time.Time, amount string) *domain.AccountBalance {
	return &domain.AccountBalance{
		Account: domain.ChartOfAccount{TenantID: "acme", AccountID: "cash", AccountCode: "1000", Name: "Cash", AccountType: domain.Asset, NormalBalance: domain.Debit, IsActive: true},
		Balance: decimal.RequireFromString(amount),
		AsOf:    asOf,
	}
}

func (suite *AccountHandlerTestSuite) TestBalance_DefaultsToToday() {
	today := time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC)
	suite.mockBalanceService.On("GetAccountBalance", mock.Anything, "acme", "cash", today).
		Return(suite.cashBalance(today, "100"), nil).Once()

	w := suite.get("/api/v1/accounts/cash/balance?tenantId=acme")

	suite.Equal(http.StatusOK, w.Code, w.Body.String())
	var resp dto.AccountBalanceResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("100.00", resp.Balance)
	suite.Equal("2024-02-29", resp.AsOfDate)
	suite.Equal(domain.Debit, resp.NormalBalance)
	suite.Equal("1000", resp.AccountCode)
	suite.mockBalanceService.AssertExpectations(suite.T())
}

func (suite *AccountHandlerTestSuite) TestBalance_UsesAsOfDate() {
	asOf := time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC)
	suite.mockBalanceService.On("GetAccountBalance", mock.Anything, "acme", "cash", asOf).
		Return(suite.cashBalance(asOf, "-12.5"), nil).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/accounts/cash/balance?asOfDate=2023-12-31", nil)
	req.Header.Set(handlers.TenantHeader, "acme")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code, w.Body.String())
	var resp dto.AccountBalanceResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("-12.50", resp.Balance)
	suite.mockBalanceService.AssertExpectations(suite.T())
}

func (suite *AccountHandlerTestSuite) TestBalance_RejectsMalformedDate() {
	w := suite.get("/api/v1/accounts/cash/balance?tenantId=acme&asOfDate=31-12-2023")

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockBalanceService.AssertNotCalled(suite.T(), "GetAccountBalance", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *AccountHandlerTestSuite) TestBalance_UnknownAccount() {
	suite.mockBalanceService.On("GetAccountBalance", mock.Anything, "acme", "ghost", mock.Anything).
		Return(nil, &apperrors.NotFoundError{Resource: "account", TenantID: "acme", ID: "ghost"}).Once()

	w := suite.get("/api/v1/accounts/ghost/balance?tenantId=acme")

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *AccountHandlerTestSuite) TestBalance_MissingTenant() {
	w := suite.get("/api/v1/accounts/cash/balance")

	suite.Equal(http.StatusBadRequest, w.Code)
	var resp dto.ErrorResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(string(apperrors.KindMissingTenant), resp.Error)
}
