package repositories

import (
	"context"

	"github.com/SscSPs/general_ledger/internal/core/domain"
)

// ChartOfAccountReader defines read-only access to chart-of-accounts data.
// Accounts are maintained by an external administrative process; no writer is exposed.
type ChartOfAccountReader interface {
	// FindAccountByID returns apperrors.ErrNotFound when the account does not exist for the tenant.
	FindAccountByID(ctx context.Context, tenantID, accountID string) (*domain.ChartOfAccount, error)
	// FindAccountsByIDs returns the subset of accountIDs that exist, keyed by account ID.
	FindAccountsByIDs(ctx context.Context, tenantID string, accountIDs []string) (map[string]domain.ChartOfAccount, error)
}

// ChartOfAccountRepositoryFacade combines all chart-of-accounts repository interfaces.
type ChartOfAccountRepositoryFacade interface {
	ChartOfAccountReader
}
