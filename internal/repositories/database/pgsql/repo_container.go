package pgsql

import (
	portsrepo "github.com/SscSPs/general_ledger/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	accountRepo := newPgxChartOfAccountRepository(dbPool)
	journalRepo := newPgxJournalRepository(dbPool)

	return portsrepo.RepositoryProvider{
		AccountRepo: accountRepo,
		JournalRepo: journalRepo,
	}
}

// NewChartOfAccountRepository exposes the account repository for seeding at startup.
func NewChartOfAccountRepository(dbPool *pgxpool.Pool) *PgxChartOfAccountRepository {
	return &PgxChartOfAccountRepository{BaseRepository: BaseRepository{Pool: dbPool}}
}
