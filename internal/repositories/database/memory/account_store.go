package memory

import (
	"context"
	"sync"

	"github.com/SscSPs/general_ledger/internal/apperrors"
	"github.com/SscSPs/general_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/general_ledger/internal/core/ports/repositories"
)

// ChartOfAccountStore is an in-memory chart of accounts.
type ChartOfAccountStore struct {
	mu       sync.RWMutex
	accounts map[accountKey]domain.ChartOfAccount
}

// NewChartOfAccountStore creates a store holding accounts.
func NewChartOfAccountStore(accounts ...domain.ChartOfAccount) *ChartOfAccountStore {
	s := &ChartOfAccountStore{accounts: make(map[accountKey]domain.ChartOfAccount, len(accounts))}
	for _, a := range accounts {
		s.Upsert(a)
	}
	return s
}

var _ portsrepo.ChartOfAccountRepositoryFacade = (*ChartOfAccountStore)(nil)

// Upsert adds or replaces an account. It stands in for the external
// administration process and is not part of the repository interface.
func (s *ChartOfAccountStore) Upsert(account domain.ChartOfAccount) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accounts[accountKey{TenantID: account.TenantID, AccountID: account.AccountID}] = account
}

// FindAccountByID returns apperrors.ErrNotFound for unknown accounts.
func (s *ChartOfAccountStore) FindAccountByID(_ context.Context, tenantID, accountID string) (*domain.ChartOfAccount, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	a, ok := s.accounts[accountKey{TenantID: tenantID, AccountID: accountID}]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &a, nil
}

// FindAccountsByIDs returns the accounts that exist among accountIDs.
func (s *ChartOfAccountStore) FindAccountsByIDs(_ context.Context, tenantID string, accountIDs []string) (map[string]domain.ChartOfAccount, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	found := make(map[string]domain.ChartOfAccount, len(accountIDs))
	for _, id := range accountIDs {
		if a, ok := s.accounts[accountKey{TenantID: tenantID, AccountID: id}]; ok {
			found[id] = a
		}
	}
	return found, nil
}
