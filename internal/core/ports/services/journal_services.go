package services

import (
	"context"

	"github.com/SscSPs/general_ledger/internal/core/domain"
	"github.com/SscSPs/general_ledger/internal/dto"
)

// JournalReaderSvc defines read operations for journal entries
type JournalReaderSvc interface {
	// GetJournalEntry retrieves a journal entry with its lines.
	GetJournalEntry(ctx context.Context, tenantID string, entryID string) (*domain.JournalEntry, error)

	// ListJournalEntries retrieves a paginated list of a tenant's journal entries.
	ListJournalEntries(ctx context.Context, tenantID string, params dto.ListJournalEntriesParams) (*dto.ListJournalEntriesResponse, error)
}

// JournalWriterSvc defines the lifecycle operations for journal entries
type JournalWriterSvc interface {
	// CreateJournalEntry validates the structure of a new entry and stores it as DRAFT.
	CreateJournalEntry(ctx context.Context, req dto.CreateJournalEntryRequest, actorID string) (*domain.JournalEntry, error)

	// UpdateJournalEntry edits a draft's description and/or moves the entry to a new status.
	UpdateJournalEntry(ctx context.Context, tenantID string, entryID string, req dto.UpdateJournalEntryRequest, actorID string) (*domain.JournalEntry, error)
}

// JournalSvcFacade combines all journal-related service interfaces
type JournalSvcFacade interface {
	JournalReaderSvc
	JournalWriterSvc
}
