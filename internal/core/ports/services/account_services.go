package services

import (
	"context"

	"github.com/SscSPs/general_ledger/internal/core/domain"
)

// AccountResolver resolves a batch of account references for validation.
// Accounts missing for the tenant are simply absent from the result.
type AccountResolver interface {
	ResolveAccounts(ctx context.Context, tenantID string, accountIDs []string) (map[string]domain.ChartOfAccount, error)
}

// AccountLookupSvc is the read-only chart-of-accounts lookup.
type AccountLookupSvc interface {
	AccountResolver
	// ResolveAccount returns apperrors.ErrNotFound for unknown accounts.
	ResolveAccount(ctx context.Context, tenantID string, accountID string) (*domain.ChartOfAccount, error)
}
