package handlers

import (
	"net/http"
	"time"

	"github.com/SscSPs/general_ledger/internal/apperrors"
	"github.com/SscSPs/general_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/general_ledger/internal/core/ports/services"
	"github.com/SscSPs/general_ledger/internal/dto"
	"github.com/gin-gonic/gin"
)

// accountHandler handles HTTP requests related to accounts.
type accountHandler struct {
	balanceService portssvc.BalanceSvc
	now            func() time.Time
}

// newAccountHandler creates a new accountHandler.
func newAccountHandler(bs portssvc.BalanceSvc, now func() time.Time) *accountHandler {
	return &accountHandler{
		balanceService: bs,
		now:            now,
	}
}

// RegisterAccountRoutes registers routes related to accounts.
// now supplies "today" when a balance request has no asOfDate.
func RegisterAccountRoutes(rg *gin.RouterGroup, balanceService portssvc.BalanceSvc, now func() time.Time) {
	h := newAccountHandler(balanceService, now)

	accounts := rg.Group("/accounts")
	{
		accounts.GET("/:accountID/balance", h.getAccountBalance)
	}
}

// getAccountBalance godoc
// @Summary Get an account balance
// @Description Folds every posted line of the account with an entry date on or before asOfDate. Positive means the account sits on its normal side.
// @Tags accounts
// @Produce  json
// @Param   accountID path string true "Chart of account ID"
// @Param   tenantId query string false "Tenant ID (or X-Tenant-ID header)"
// @Param   asOfDate query string false "Cutoff date (YYYY-MM-DD), defaults to today (UTC)"
// @Success 200 {object} dto.AccountBalanceResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid query"
// @Failure 404 {object} dto.ErrorResponse "Account not found"
// @Security BearerAuth
// @Router /accounts/{accountID}/balance [get]
func (h *accountHandler) getAccountBalance(c *gin.Context) {
	tenantID, err := tenantFromRequest(c)
	if err != nil {
		respondError(c, err)
		return
	}

	var query dto.AccountBalanceQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondBindError(c, err)
		return
	}

	asOf := domain.TruncateToDate(h.now())
	if query.AsOfDate != "" {
		asOf, err = domain.ParseDate(query.AsOfDate)
		if err != nil {
			respondError(c, apperrors.NewValidationError(apperrors.KindInvalidDate, "asOfDate must be formatted as "+domain.DateLayout))
			return
		}
	}

	balance, err := h.balanceService.GetAccountBalance(c.Request.Context(), tenantID, c.Param("accountID"), asOf)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToAccountBalanceResponse(balance))
}
