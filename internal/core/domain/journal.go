package domain

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

// Valid reports whether s is a known status.
func (s JournalStatus) Valid() bool {
	return s == Draft || s == Posted || s == Reversed
}

// CanTransition reports whether a status change from -> to is permitted.
// DRAFT -> POSTED and POSTED -> REVERSED are the only legal moves; REVERSED is terminal.
func CanTransition(from, to JournalStatus) bool {
	return (from == Draft && to == Posted) || (from == Posted && to == Reversed)
}

// HasBeenPosted reports whether the entry is part of the booked history.
// Reversed entries stay in history; their compensating entry offsets them.
func (s JournalStatus) HasBeenPosted() bool {
	return s == Posted || s == Reversed
}

// JournalEntry is a set of debit/credit lines recorded against a date.
type JournalEntry struct {
	ID           string             `json:"id"`          // Primary Key (UUID)
	TenantID     string             `json:"tenantId"`    // Scopes the entry and its number sequence
	EntryNumber  int64              `json:"entryNumber"` // Monotonic per tenant, assigned by the store
	EntryDate    time.Time          `json:"entryDate"`   // Transaction date (UTC midnight), the balance cutoff field
	Description  string             `json:"description"`
	Reference    string             `json:"reference"`
	Status       JournalStatus      `json:"status"`
	PostedDate   *time.Time         `json:"postedDate,omitempty"`   // Set only when posted
	ReversalOfID *string            `json:"reversalOfId,omitempty"` // Set on compensating entries
	ReversedByID *string            `json:"reversedById,omitempty"` // Set on reversed entries
	Version      int64              `json:"version"`                // Incremented on every stored change
	Lines        []JournalEntryLine `json:"lines"`
	AuditFields
}

// JournalEntryLine is one leg of a journal entry. Exactly one of Debit/Credit is non-zero.
type JournalEntryLine struct {
	ID               string          `json:"id"`
	JournalEntryID   string          `json:"journalEntryId"`
	LineNumber       int             `json:"lineNumber"` // 1-based, in submission order
	ChartOfAccountID string          `json:"chartOfAccountId"`
	Debit            decimal.Decimal `json:"debit"`
	Credit           decimal.Decimal `json:"credit"`
	Description      string          `json:"description"`
}

// Side returns the side the line's amount falls on. Lines without any amount report Debit.
func (l JournalEntryLine) Side() Side {
	if l.Credit.IsPositive() {
		return Credit
	}
	return Debit
}

// Amount returns the non-zero leg of the line.
func (l JournalEntryLine) Amount() decimal.Decimal {
	if l.Credit.IsPositive() {
		return l.Credit
	}
	return l.Debit
}

// Totals sums the debit and credit columns.
func (e JournalEntry) Totals() (debit, credit decimal.Decimal) {
	debit, credit = decimal.Zero, decimal.Zero
	for _, line := range e.Lines {
		debit = debit.Add(line.Debit)
		credit = credit.Add(line.Credit)
	}
	return debit, credit
}

// Clone returns a deep copy so stored entries are never aliased by callers.
func (e JournalEntry) Clone() JournalEntry {
	c := e
	if e.PostedDate != nil {
		pd := *e.PostedDate
		c.PostedDate = &pd
	}
	if e.ReversalOfID != nil {
		id := *e.ReversalOfID
		c.ReversalOfID = &id
	}
	if e.ReversedByID != nil {
		id := *e.ReversedByID
		c.ReversedByID = &id
	}
	c.Lines = make([]JournalEntryLine, len(e.Lines))
	copy(c.Lines, e.Lines)
	return c
}

// AccountBalance is a derived balance of one account at a cutoff date.
type AccountBalance struct {
	Account ChartOfAccount
	Balance decimal.Decimal
	AsOf    time.Time
}
