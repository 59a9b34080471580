package services

import (
	"context"
	"time"

	"github.com/SscSPs/general_ledger/internal/core/domain"
)

// BalanceSvc derives account balances from posted history.
type BalanceSvc interface {
	// GetAccountBalance folds every posted line touching the account with an entry date on or before asOf.
	GetAccountBalance(ctx context.Context, tenantID string, accountID string, asOf time.Time) (*domain.AccountBalance, error)
}
