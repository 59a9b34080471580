package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SscSPs/general_ledger/internal/apperrors"
	"github.com/SscSPs/general_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/general_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/general_ledger/internal/core/ports/services"
)

// accountLookupService resolves chart-of-accounts metadata for a tenant.
type accountLookupService struct {
	BaseService
	accountRepo portsrepo.ChartOfAccountReader
}

// NewAccountLookupService creates the read-only chart-of-accounts lookup.
func NewAccountLookupService(accountRepo portsrepo.ChartOfAccountReader) portssvc.AccountLookupSvc {
	return &accountLookupService{accountRepo: accountRepo}
}

var _ portssvc.AccountLookupSvc = (*accountLookupService)(nil)

// ResolveAccount returns a NotFoundError for accounts unknown to the tenant and a
// ReferenceError when the account's normal balance contradicts its type.
func (s *accountLookupService) ResolveAccount(ctx context.Context, tenantID string, accountID string) (*domain.ChartOfAccount, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, tenantID, accountID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, &apperrors.NotFoundError{Resource: "account", TenantID: tenantID, ID: accountID}
		}
		s.LogError(ctx, err, "Failed to find account", slog.String("tenant_id", tenantID), slog.String("account_id", accountID))
		return nil, fmt.Errorf("failed to find account %s: %w", accountID, err)
	}

	resolved, err := s.normalize(ctx, *account)
	if err != nil {
		return nil, err
	}
	return &resolved, nil
}

// ResolveAccounts resolves the distinct accounts referenced by accountIDs in one store read.
func (s *accountLookupService) ResolveAccounts(ctx context.Context, tenantID string, accountIDs []string) (map[string]domain.ChartOfAccount, error) {
	ids := uniqueStrings(accountIDs)
	if len(ids) == 0 {
		return map[string]domain.ChartOfAccount{}, nil
	}

	found, err := s.accountRepo.FindAccountsByIDs(ctx, tenantID, ids)
	if err != nil {
		s.LogError(ctx, err, "Failed to find accounts", slog.String("tenant_id", tenantID), slog.Int("count", len(ids)))
		return nil, fmt.Errorf("failed to find accounts: %w", err)
	}

	resolved := make(map[string]domain.ChartOfAccount, len(found))
	for id, account := range found {
		normalized, err := s.normalize(ctx, account)
		if err != nil {
			return nil, err
		}
		resolved[id] = normalized
	}
	return resolved, nil
}

// normalize fills the normal balance from the account type and refuses accounts whose
// stored side disagrees with it, so balances are never folded on the wrong side.
func (s *accountLookupService) normalize(ctx context.Context, account domain.ChartOfAccount) (domain.ChartOfAccount, error) {
	if !account.HasConsistentNormalBalance() {
		err := &apperrors.ReferenceError{
			Kind:        apperrors.KindAccountMisconfigured,
			TenantID:    account.TenantID,
			AccountID:   account.AccountID,
			AccountCode: account.AccountCode,
			LineIndex:   -1,
		}
		s.LogWarn(ctx, err, "Account normal balance does not match its type",
			slog.String("account_type", string(account.AccountType)),
			slog.String("normal_balance", string(account.NormalBalance)))
		return domain.ChartOfAccount{}, err
	}
	account.NormalBalance, _ = account.AccountType.NormalBalance()
	return account, nil
}

// uniqueStrings returns the distinct non-empty values of input in first-seen order.
func uniqueStrings(input []string) []string {
	seen := make(map[string]struct{}, len(input))
	result := make([]string, 0, len(input))
	for _, str := range input {
		if str == "" {
			continue
		}
		if _, ok := seen[str]; !ok {
			seen[str] = struct{}{}
			result = append(result, str)
		}
	}
	return result
}
