package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// JournalStatus indicates the state of a journal entry.
type JournalStatus string

const (
	Draft    JournalStatus = "DRAFT"
	Posted   JournalStatus = "POSTED"
	Reversed JournalStatus = "REVERSED"
)

// JournalEntry is a row of journal_entries.
type JournalEntry struct {
	ID           string        `db:"id"`
	TenantID     string        `db:"tenant_id"`
	EntryNumber  int64         `db:"entry_number"`
	EntryDate    time.Time     `db:"entry_date"`
	Description  string        `db:"description"`
	Reference    string        `db:"reference"`
	Status       JournalStatus `db:"status"`
	PostedDate   *time.Time    `db:"posted_date"`    // Nullable
	ReversalOfID *string       `db:"reversal_of_id"` // Nullable
	ReversedByID *string       `db:"reversed_by_id"` // Nullable
	Version      int64         `db:"version"`
	AuditFields
}

// JournalEntryLine is a row of journal_entry_lines.
type JournalEntryLine struct {
	ID               string          `db:"id"`
	TenantID         string          `db:"tenant_id"`
	JournalEntryID   string          `db:"journal_entry_id"`
	LineNumber       int             `db:"line_number"`
	ChartOfAccountID string          `db:"chart_of_account_id"`
	Debit            decimal.Decimal `db:"debit"`
	Credit           decimal.Decimal `db:"credit"`
	Description      string          `db:"description"`
}
