package dto

import (
	"time"

	"github.com/SscSPs/general_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateJournalEntryLineRequest is one proposed line of a new journal entry.
// Amounts accept JSON numbers or strings and are rounded half-even to 2 places.
type CreateJournalEntryLineRequest struct {
	ChartOfAccountID string          `json:"chartOfAccountId"`
	Debit            decimal.Decimal `json:"debit" swaggertype:"string" example:"100.00"`
	Credit           decimal.Decimal `json:"credit" swaggertype:"string" example:"0"`
	Description      string          `json:"description"`
}

// CreateJournalEntryRequest defines the data needed to create a DRAFT journal entry.
// Tenant, date and line rules are enforced by the service so the failure kind can be reported.
type CreateJournalEntryRequest struct {
	TenantID    string                          `json:"tenantId"`
	EntryDate   string                          `json:"entryDate" example:"2024-01-31"`
	Description string                          `json:"description"`
	Reference   string                          `json:"reference"`
	Lines       []CreateJournalEntryLineRequest `json:"lines"`
}

// UpdateJournalEntryRequest defines the changes allowed on an existing entry.
// Pointers distinguish "not provided" from zero values.
type UpdateJournalEntryRequest struct {
	Description  *string               `json:"description"`
	Status       *domain.JournalStatus `json:"status" binding:"omitempty,journal_status" swaggertype:"string" enums:"DRAFT,POSTED,REVERSED"`
	ReversalDate *string               `json:"reversalDate" binding:"omitempty,datetime=2006-01-02" example:"2024-02-01"` // Only used when reversing; defaults to today (UTC)
}

// ListJournalEntriesParams defines the query parameters for listing journal entries.
type ListJournalEntriesParams struct {
	Status    *domain.JournalStatus `form:"status" binding:"omitempty,journal_status"`
	Limit     int                   `form:"limit" binding:"omitempty,min=1,max=100"`
	NextToken *string               `form:"nextToken"`
}

// JournalEntryLineResponse defines the data returned for a journal entry line.
type JournalEntryLineResponse struct {
	ID               string `json:"id"`
	LineNumber       int    `json:"lineNumber"`
	ChartOfAccountID string `json:"chartOfAccountId"`
	Debit            string `json:"debit"`
	Credit           string `json:"credit"`
	Description      string `json:"description"`
}

// JournalEntryResponse defines the data returned for a journal entry.
type JournalEntryResponse struct {
	ID            string                     `json:"id"`
	TenantID      string                     `json:"tenantId"`
	EntryNumber   int64                      `json:"entryNumber"`
	EntryDate     string                     `json:"entryDate"`
	Description   string                     `json:"description"`
	Reference     string                     `json:"reference"`
	Status        domain.JournalStatus       `json:"status"`
	PostedDate    *time.Time                 `json:"postedDate,omitempty"`
	ReversalOfID  *string                    `json:"reversalOfId,omitempty"`
	ReversedByID  *string                    `json:"reversedById,omitempty"`
	Version       int64                      `json:"version"`
	TotalDebit    string                     `json:"totalDebit"`
	TotalCredit   string                     `json:"totalCredit"`
	Lines         []JournalEntryLineResponse `json:"lines"`
	CreatedAt     time.Time                  `json:"createdAt"`
	CreatedBy     string                     `json:"createdBy"`
	LastUpdatedAt time.Time                  `json:"lastUpdatedAt"`
	LastUpdatedBy string                     `json:"lastUpdatedBy"`
}

// ListJournalEntriesResponse wraps a page of journal entries.
type ListJournalEntriesResponse struct {
	Entries   []JournalEntryResponse `json:"entries"`
	NextToken *string                `json:"nextToken,omitempty"`
}

// ToJournalEntryResponse converts a domain.JournalEntry to its response DTO.
func ToJournalEntryResponse(e *domain.JournalEntry) JournalEntryResponse {
	debit, credit := e.Totals()
	lines := make([]JournalEntryLineResponse, len(e.Lines))
	for i, l := range e.Lines {
		lines[i] = JournalEntryLineResponse{
			ID:               l.ID,
			LineNumber:       l.LineNumber,
			ChartOfAccountID: l.ChartOfAccountID,
			Debit:            l.Debit.StringFixed(domain.MinorUnitPlaces),
			Credit:           l.Credit.StringFixed(domain.MinorUnitPlaces),
			Description:      l.Description,
		}
	}
	return JournalEntryResponse{
		ID:            e.ID,
		TenantID:      e.TenantID,
		EntryNumber:   e.EntryNumber,
		EntryDate:     e.EntryDate.Format(domain.DateLayout),
		Description:   e.Description,
		Reference:     e.Reference,
		Status:        e.Status,
		PostedDate:    e.PostedDate,
		ReversalOfID:  e.ReversalOfID,
		ReversedByID:  e.ReversedByID,
		Version:       e.Version,
		TotalDebit:    debit.StringFixed(domain.MinorUnitPlaces),
		TotalCredit:   credit.StringFixed(domain.MinorUnitPlaces),
		Lines:         lines,
		CreatedAt:     e.CreatedAt,
		CreatedBy:     e.CreatedBy,
		LastUpdatedAt: e.LastUpdatedAt,
		LastUpdatedBy: e.LastUpdatedBy,
	}
}

// ToJournalEntryResponses converts a slice of domain.JournalEntry to []JournalEntryResponse.
func ToJournalEntryResponses(entries []domain.JournalEntry) []JournalEntryResponse {
	responses := make([]JournalEntryResponse, len(entries))
	for i := range entries {
		responses[i] = ToJournalEntryResponse(&entries[i])
	}
	return responses
}
