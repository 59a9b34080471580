package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/general_ledger/internal/core/domain"
)

// ListJournalEntriesParams filters and pages a tenant's journal entries.
// Results are ordered by entry number, newest first.
type ListJournalEntriesParams struct {
	Status    *domain.JournalStatus
	Limit     int
	NextToken *string
}

// JournalTransition describes a compare-and-transition write. It is applied only if
// the stored entry still has ExpectedStatus and ExpectedVersion.
type JournalTransition struct {
	TenantID        string
	EntryID         string
	ExpectedStatus  domain.JournalStatus
	ExpectedVersion int64
	NewStatus       domain.JournalStatus
	Description     *string    // nil leaves the description unchanged
	PostedDate      *time.Time // nil leaves the posted date unchanged
	UpdatedAt       time.Time
	UpdatedBy       string
}

// JournalReader defines read operations for journal entries.
type JournalReader interface {
	// FindJournalEntryByID returns the entry with its lines, or apperrors.ErrNotFound.
	FindJournalEntryByID(ctx context.Context, tenantID, entryID string) (*domain.JournalEntry, error)
	ListJournalEntries(ctx context.Context, tenantID string, params ListJournalEntriesParams) ([]domain.JournalEntry, *string, error)
	// ListPostedLinesByAccount returns every line touching accountID from entries that
	// have been posted (POSTED or REVERSED) with EntryDate on or before asOf, read
	// from a single consistent snapshot.
	ListPostedLinesByAccount(ctx context.Context, tenantID, accountID string, asOf time.Time) ([]domain.JournalEntryLine, error)
	// LedgerSequence returns a per-tenant counter that increases with every committed write.
	LedgerSequence(ctx context.Context, tenantID string) (int64, error)
}

// JournalWriter defines write operations for journal entries. There is no delete.
type JournalWriter interface {
	// CreateJournalEntry persists a new entry and its lines, assigning the tenant's next entry number.
	CreateJournalEntry(ctx context.Context, entry domain.JournalEntry) (*domain.JournalEntry, error)
	// TransitionJournalEntry applies t atomically. It returns apperrors.ErrConcurrentModification
	// when the expected status or version no longer match.
	TransitionJournalEntry(ctx context.Context, t JournalTransition) (*domain.JournalEntry, error)
	// ReverseJournalEntry applies t to the original entry and inserts the compensating entry
	// in the same atomic step, linking both. It returns the updated original and the stored compensating entry.
	ReverseJournalEntry(ctx context.Context, t JournalTransition, compensating domain.JournalEntry) (*domain.JournalEntry, *domain.JournalEntry, error)
}

// JournalRepositoryFacade combines all journal-related repository interfaces.
type JournalRepositoryFacade interface {
	JournalReader
	JournalWriter
}
