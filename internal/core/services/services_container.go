package services

import (
	portsrepo "github.com/SscSPs/general_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/general_ledger/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(repos portsrepo.RepositoryProvider, journalOptions ...JournalServiceOption) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// The lookup is shared: the validator and the balance calculator both resolve through it.
	container.Account = NewAccountLookupService(repos.AccountRepo)
	container.Journal = NewJournalService(repos.JournalRepo, container.Account, journalOptions...)
	container.Balance = NewBalanceService(repos.JournalRepo, container.Account)

	return container
}
