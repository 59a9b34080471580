package dto

import (
	"github.com/SscSPs/general_ledger/internal/core/domain"
)

// AccountBalanceQuery defines the query parameters of a balance request.
type AccountBalanceQuery struct {
	TenantID string `form:"tenantId"`
	AsOfDate string `form:"asOfDate" binding:"omitempty,datetime=2006-01-02"` // Defaults to today (UTC)
}

// AccountBalanceResponse defines the data returned for a balance query.
type AccountBalanceResponse struct {
	AccountID     string             `json:"accountId"`
	AccountName   string             `json:"accountName"`
	AccountCode   string             `json:"accountCode"`
	AccountType   domain.AccountType `json:"accountType"`
	NormalBalance domain.Side        `json:"normalBalance"`
	Balance       string             `json:"balance" example:"100.00"`
	AsOfDate      string             `json:"asOfDate" example:"2024-01-31"`
	TenantID      string             `json:"tenantId"`
}

// ToAccountBalanceResponse converts a derived balance to its response DTO.
func ToAccountBalanceResponse(b *domain.AccountBalance) AccountBalanceResponse {
	return AccountBalanceResponse{
		AccountID:     b.Account.AccountID,
		AccountName:   b.Account.Name,
		AccountCode:   b.Account.AccountCode,
		AccountType:   b.Account.AccountType,
		NormalBalance: b.Account.NormalBalance,
		Balance:       b.Balance.StringFixed(domain.MinorUnitPlaces),
		AsOfDate:      b.AsOf.Format(domain.DateLayout),
		TenantID:      b.Account.TenantID,
	}
}
