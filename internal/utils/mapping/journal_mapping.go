package mapping

import (
	"github.com/SscSPs/general_ledger/internal/core/domain"
	"github.com/SscSPs/general_ledger/internal/models"
)

// ToModelJournalEntry converts a domain JournalEntry header to a model JournalEntry.
// Lines are mapped separately with ToModelJournalEntryLine.
func ToModelJournalEntry(d domain.JournalEntry) models.JournalEntry {
	return models.JournalEntry{
		ID:           d.ID,
		TenantID:     d.TenantID,
		EntryNumber:  d.EntryNumber,
		EntryDate:    d.EntryDate,
		Description:  d.Description,
		Reference:    d.Reference,
		Status:       models.JournalStatus(d.Status),
		PostedDate:   d.PostedDate,
		ReversalOfID: d.ReversalOfID,
		ReversedByID: d.ReversedByID,
		Version:      d.Version,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainJournalEntry converts a model JournalEntry and its lines to a domain JournalEntry
func ToDomainJournalEntry(m models.JournalEntry, lines []models.JournalEntryLine) domain.JournalEntry {
	d := domain.JournalEntry{
		ID:           m.ID,
		TenantID:     m.TenantID,
		EntryNumber:  m.EntryNumber,
		EntryDate:    domain.TruncateToDate(m.EntryDate),
		Description:  m.Description,
		Reference:    m.Reference,
		Status:       domain.JournalStatus(m.Status),
		PostedDate:   m.PostedDate,
		ReversalOfID: m.ReversalOfID,
		ReversedByID: m.ReversedByID,
		Version:      m.Version,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
		Lines:        make([]domain.JournalEntryLine, len(lines)),
	}
	for i, l := range lines {
		d.Lines[i] = ToDomainJournalEntryLine(l)
	}
	return d
}

// ToModelJournalEntryLine converts a domain line to a model line for the given tenant.
func ToModelJournalEntryLine(tenantID string, d domain.JournalEntryLine) models.JournalEntryLine {
	return models.JournalEntryLine{
		ID:               d.ID,
		TenantID:         tenantID,
		JournalEntryID:   d.JournalEntryID,
		LineNumber:       d.LineNumber,
		ChartOfAccountID: d.ChartOfAccountID,
		Debit:            d.Debit,
		Credit:           d.Credit,
		Description:      d.Description,
	}
}

// ToDomainJournalEntryLine converts a model line to a domain line
func ToDomainJournalEntryLine(m models.JournalEntryLine) domain.JournalEntryLine {
	return domain.JournalEntryLine{
		ID:               m.ID,
		JournalEntryID:   m.JournalEntryID,
		LineNumber:       m.LineNumber,
		ChartOfAccountID: m.ChartOfAccountID,
		Debit:            m.Debit,
		Credit:           m.Credit,
		Description:      m.Description,
	}
}

// ToDomainJournalEntryLineSlice converts a slice of model lines to domain lines
func ToDomainJournalEntryLineSlice(ms []models.JournalEntryLine) []domain.JournalEntryLine {
	ds := make([]domain.JournalEntryLine, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainJournalEntryLine(m)
	}
	return ds
}
