package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/general_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/general_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/general_ledger/internal/core/ports/services"
	"github.com/SscSPs/general_ledger/internal/utils/accounting"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/singleflight"
)

// balanceService derives balances by folding posted lines; nothing is stored.
type balanceService struct {
	BaseService
	accountSvc  portssvc.AccountLookupSvc
	journalRepo portsrepo.JournalReader
	group       singleflight.Group
}

// NewBalanceService creates the ledger balance calculator.
func NewBalanceService(journalRepo portsrepo.JournalReader, accountSvc portssvc.AccountLookupSvc) portssvc.BalanceSvc {
	return &balanceService{
		accountSvc:  accountSvc,
		journalRepo: journalRepo,
	}
}

var _ portssvc.BalanceSvc = (*balanceService)(nil)

// GetAccountBalance folds every line touching the account from entries that have been
// posted with EntryDate <= asOf. Lines on the account's normal side add; the others subtract.
// Reversed entries are included because their compensating entries carry the offset.
func (s *balanceService) GetAccountBalance(ctx context.Context, tenantID string, accountID string, asOf time.Time) (*domain.AccountBalance, error) {
	account, err := s.accountSvc.ResolveAccount(ctx, tenantID, accountID)
	if err != nil {
		return nil, err
	}

	cutoff := domain.TruncateToDate(asOf)

	// The key carries the tenant's commit sequence read now, so a call can only join
	// a read that started after every write committed before it.
	seq, err := s.journalRepo.LedgerSequence(ctx, tenantID)
	if err != nil {
		s.LogError(ctx, err, "Failed to read ledger sequence", slog.String("tenant_id", tenantID))
		return nil, fmt.Errorf("failed to calculate balance for account %s: %w", accountID, err)
	}
	key := fmt.Sprintf("%s|%s|%s|%d", tenantID, accountID, cutoff.Format(domain.DateLayout), seq)

	// Identical concurrent queries share one store read. The read is detached from
	// any single caller's cancellation; a cancelled caller just stops waiting.
	readCtx := context.WithoutCancel(ctx)
	ch := s.group.DoChan(key, func() (interface{}, error) {
		lines, err := s.journalRepo.ListPostedLinesByAccount(readCtx, tenantID, accountID, cutoff)
		if err != nil {
			return nil, err
		}
		return accounting.FoldBalance(lines, account.NormalBalance), nil
	})

	var res singleflight.Result
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res = <-ch:
	}
	if res.Err != nil {
		s.LogError(ctx, res.Err, "Failed to load posted lines",
			slog.String("tenant_id", tenantID),
			slog.String("account_id", accountID))
		return nil, fmt.Errorf("failed to calculate balance for account %s: %w", accountID, res.Err)
	}

	s.LogDebug(ctx, "Account balance calculated",
		slog.String("account_id", accountID),
		slog.String("as_of", cutoff.Format(domain.DateLayout)),
		slog.Bool("shared", res.Shared))

	return &domain.AccountBalance{
		Account: *account,
		Balance: res.Val.(decimal.Decimal),
		AsOf:    cutoff,
	}, nil
}
