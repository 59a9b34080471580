package memory

import (
	portsrepo "github.com/SscSPs/general_ledger/internal/core/ports/repositories"
)

// NewRepositoryProvider wires an empty journal store to the given chart of accounts.
func NewRepositoryProvider(accounts *ChartOfAccountStore) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		AccountRepo: accounts,
		JournalRepo: NewJournalStore(),
	}
}
