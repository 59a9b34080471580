package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/SscSPs/general_ledger/internal/apperrors"
	"github.com/SscSPs/general_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/general_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/general_ledger/internal/core/ports/services"
	"github.com/SscSPs/general_ledger/internal/dto"
	"github.com/SscSPs/general_ledger/internal/utils/accounting"
)

const (
	defaultListLimit = 20
	maxListLimit     = 100
)

// journalService implements the journal entry lifecycle: DRAFT -> POSTED -> REVERSED.
type journalService struct {
	BaseService
	journalRepo portsrepo.JournalRepositoryFacade
	accountSvc  portssvc.AccountLookupSvc
	now         func() time.Time
}

// JournalServiceOption is a functional option for configuring the journal service
type JournalServiceOption func(*journalService)

// WithClock overrides the time source used for audit fields, posted dates and default reversal dates.
func WithClock(now func() time.Time) JournalServiceOption {
	return func(s *journalService) {
		s.now = now
	}
}

// NewJournalService creates a new JournalService.
func NewJournalService(journalRepo portsrepo.JournalRepositoryFacade, accountSvc portssvc.AccountLookupSvc, options ...JournalServiceOption) portssvc.JournalSvcFacade {
	svc := &journalService{
		journalRepo: journalRepo,
		accountSvc:  accountSvc,
		now:         time.Now,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

// Ensure journalService implements the portssvc.JournalSvcFacade interface
var _ portssvc.JournalSvcFacade = (*journalService)(nil)

// CreateJournalEntry checks structure and account existence, then stores the entry as DRAFT.
// Balance and account activity are not required until posting.
func (s *journalService) CreateJournalEntry(ctx context.Context, req dto.CreateJournalEntryRequest, actorID string) (*domain.JournalEntry, error) {
	logger := s.GetLogger(ctx).With(slog.String("tenant_id", req.TenantID))

	// An empty date is left zero for CheckStructure to report after the tenant check.
	var entryDate time.Time
	if strings.TrimSpace(req.EntryDate) != "" {
		parsed, err := parseRequestDate(req.EntryDate, apperrors.KindMissingEntryDate, "entryDate")
		if err != nil {
			return nil, err
		}
		entryDate = parsed
	}

	now := s.now().UTC()
	entryID := uuid.NewString()
	lines := make([]domain.JournalEntryLine, len(req.Lines))
	for i, l := range req.Lines {
		lines[i] = domain.JournalEntryLine{
			ID:               uuid.NewString(),
			JournalEntryID:   entryID,
			LineNumber:       i + 1,
			ChartOfAccountID: strings.TrimSpace(l.ChartOfAccountID),
			Debit:            normalizeInRange(l.Debit),
			Credit:           normalizeInRange(l.Credit),
			Description:      l.Description,
		}
	}

	entry := domain.JournalEntry{
		ID:          entryID,
		TenantID:    strings.TrimSpace(req.TenantID),
		EntryDate:   entryDate,
		Description: req.Description,
		Reference:   req.Reference,
		Status:      domain.Draft,
		Version:     1,
		Lines:       lines,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actorID,
			LastUpdatedAt: now,
			LastUpdatedBy: actorID,
		},
	}

	if err := CheckStructure(entry); err != nil {
		logger.Warn("Journal entry rejected", slog.String("error", err.Error()))
		return nil, err
	}
	if err := checkAccountsUsable(ctx, entry.TenantID, entry.Lines, s.accountSvc, false); err != nil {
		logger.Warn("Journal entry references unusable account", slog.String("error", err.Error()))
		return nil, err
	}

	created, err := s.journalRepo.CreateJournalEntry(ctx, entry)
	if err != nil {
		logger.Error("Failed to save journal entry", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save journal entry: %w", err)
	}

	logger.Info("Journal entry created",
		slog.String("journal_entry_id", created.ID),
		slog.Int64("entry_number", created.EntryNumber))
	return created, nil
}

// normalizeInRange rounds d unless it is out of range, which CheckStructure then reports.
func normalizeInRange(d decimal.Decimal) decimal.Decimal {
	if !domain.AmountInRange(d) {
		return d
	}
	return domain.NormalizeAmount(d)
}

// GetJournalEntry retrieves a journal entry with its lines.
func (s *journalService) GetJournalEntry(ctx context.Context, tenantID string, entryID string) (*domain.JournalEntry, error) {
	entry, err := s.journalRepo.FindJournalEntryByID(ctx, tenantID, entryID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, &apperrors.NotFoundError{Resource: "journal entry", TenantID: tenantID, ID: entryID}
		}
		s.LogError(ctx, err, "Failed to find journal entry", slog.String("journal_entry_id", entryID))
		return nil, fmt.Errorf("failed to find journal entry %s: %w", entryID, err)
	}
	return entry, nil
}

// ListJournalEntries lists a tenant's entries newest first.
func (s *journalService) ListJournalEntries(ctx context.Context, tenantID string, params dto.ListJournalEntriesParams) (*dto.ListJournalEntriesResponse, error) {
	limit := params.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}

	entries, nextToken, err := s.journalRepo.ListJournalEntries(ctx, tenantID, portsrepo.ListJournalEntriesParams{
		Status:    params.Status,
		Limit:     limit,
		NextToken: params.NextToken,
	})
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			return nil, err
		}
		s.LogError(ctx, err, "Failed to list journal entries", slog.String("tenant_id", tenantID))
		return nil, fmt.Errorf("failed to list journal entries: %w", err)
	}

	return &dto.ListJournalEntriesResponse{
		Entries:   dto.ToJournalEntryResponses(entries),
		NextToken: nextToken,
	}, nil
}

// UpdateJournalEntry applies a description edit and/or a status transition.
// Description edits are only allowed on drafts. A description sent together with
// status POSTED is written in the same atomic step as the posting.
func (s *journalService) UpdateJournalEntry(ctx context.Context, tenantID string, entryID string, req dto.UpdateJournalEntryRequest, actorID string) (*domain.JournalEntry, error) {
	if req.Description == nil && req.Status == nil {
		return nil, apperrors.NewValidationError(apperrors.KindEmptyUpdate, "provide a description and/or a status")
	}

	entry, err := s.GetJournalEntry(ctx, tenantID, entryID)
	if err != nil {
		return nil, err
	}

	if req.Description != nil && entry.Status != domain.Draft {
		err := &apperrors.StateError{Kind: apperrors.KindEditNotAllowed, EntryID: entry.ID, From: string(entry.Status)}
		s.LogWarn(ctx, err, "Description edit rejected", slog.String("journal_entry_id", entry.ID))
		return nil, err
	}

	if req.Status == nil {
		return s.editDescription(ctx, entry, *req.Description, actorID)
	}

	target := *req.Status
	if !domain.CanTransition(entry.Status, target) {
		err := &apperrors.StateError{Kind: apperrors.KindInvalidTransition, EntryID: entry.ID, From: string(entry.Status), To: string(target)}
		s.LogWarn(ctx, err, "Status transition rejected", slog.String("journal_entry_id", entry.ID))
		return nil, err
	}

	switch target {
	case domain.Posted:
		return s.post(ctx, entry, req.Description, actorID)
	case domain.Reversed:
		return s.reverse(ctx, entry, req.ReversalDate, actorID)
	default:
		// CanTransition admits no other targets.
		return nil, fmt.Errorf("unhandled transition to %s", target)
	}
}

func (s *journalService) editDescription(ctx context.Context, entry *domain.JournalEntry, description string, actorID string) (*domain.JournalEntry, error) {
	updated, err := s.journalRepo.TransitionJournalEntry(ctx, portsrepo.JournalTransition{
		TenantID:        entry.TenantID,
		EntryID:         entry.ID,
		ExpectedStatus:  domain.Draft,
		ExpectedVersion: entry.Version,
		NewStatus:       domain.Draft,
		Description:     &description,
		UpdatedAt:       s.now().UTC(),
		UpdatedBy:       actorID,
	})
	if err != nil {
		return nil, s.wrapWriteError(ctx, err, "update", entry.ID)
	}

	s.LogInfo(ctx, "Journal entry description updated", slog.String("journal_entry_id", entry.ID))
	return updated, nil
}

// post re-validates the lines against current account state and commits DRAFT -> POSTED
// only if the entry is unchanged since it was read. A failed validation writes nothing.
func (s *journalService) post(ctx context.Context, entry *domain.JournalEntry, description *string, actorID string) (*domain.JournalEntry, error) {
	if err := ValidateForPosting(ctx, entry.TenantID, entry.Lines, s.accountSvc); err != nil {
		s.LogWarn(ctx, err, "Journal entry failed posting validation", slog.String("journal_entry_id", entry.ID))
		return nil, err
	}

	now := s.now().UTC()
	posted, err := s.journalRepo.TransitionJournalEntry(ctx, portsrepo.JournalTransition{
		TenantID:        entry.TenantID,
		EntryID:         entry.ID,
		ExpectedStatus:  domain.Draft,
		ExpectedVersion: entry.Version,
		NewStatus:       domain.Posted,
		Description:     description,
		PostedDate:      &now,
		UpdatedAt:       now,
		UpdatedBy:       actorID,
	})
	if err != nil {
		return nil, s.wrapWriteError(ctx, err, "post", entry.ID)
	}

	s.LogInfo(ctx, "Journal entry posted",
		slog.String("journal_entry_id", posted.ID),
		slog.Int64("entry_number", posted.EntryNumber))
	return posted, nil
}

// reverse marks a posted entry REVERSED and books a compensating entry with mirrored
// lines dated at the reversal date. History before that date is left untouched.
func (s *journalService) reverse(ctx context.Context, entry *domain.JournalEntry, reversalDateStr *string, actorID string) (*domain.JournalEntry, error) {
	now := s.now().UTC()

	reversalDate := domain.TruncateToDate(now)
	if reversalDateStr != nil && *reversalDateStr != "" {
		parsed, err := parseRequestDate(*reversalDateStr, apperrors.KindInvalidDate, "reversalDate")
		if err != nil {
			return nil, err
		}
		reversalDate = parsed
	}
	if reversalDate.Before(entry.EntryDate) {
		return nil, apperrors.NewValidationError(apperrors.KindReversalBeforeDate,
			fmt.Sprintf("reversalDate %s is before entryDate %s", reversalDate.Format(domain.DateLayout), entry.EntryDate.Format(domain.DateLayout)))
	}

	compensatingID := uuid.NewString()
	lines := accounting.MirrorLines(entry.Lines)
	for i := range lines {
		lines[i].ID = uuid.NewString()
		lines[i].JournalEntryID = compensatingID
	}

	description := fmt.Sprintf("Reversal of entry #%d", entry.EntryNumber)
	if entry.Description != "" {
		description += ": " + entry.Description
	}
	originalID := entry.ID

	compensating := domain.JournalEntry{
		ID:           compensatingID,
		TenantID:     entry.TenantID,
		EntryDate:    reversalDate,
		Description:  description,
		Reference:    entry.Reference,
		Status:       domain.Posted,
		PostedDate:   &now,
		ReversalOfID: &originalID,
		Version:      1,
		Lines:        lines,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actorID,
			LastUpdatedAt: now,
			LastUpdatedBy: actorID,
		},
	}

	reversed, stored, err := s.journalRepo.ReverseJournalEntry(ctx, portsrepo.JournalTransition{
		TenantID:        entry.TenantID,
		EntryID:         entry.ID,
		ExpectedStatus:  domain.Posted,
		ExpectedVersion: entry.Version,
		NewStatus:       domain.Reversed,
		UpdatedAt:       now,
		UpdatedBy:       actorID,
	}, compensating)
	if err != nil {
		return nil, s.wrapWriteError(ctx, err, "reverse", entry.ID)
	}

	s.LogInfo(ctx, "Journal entry reversed",
		slog.String("journal_entry_id", reversed.ID),
		slog.String("compensating_entry_id", stored.ID),
		slog.Int64("compensating_entry_number", stored.EntryNumber))
	return reversed, nil
}

// wrapWriteError logs a failed store write at the right level and wraps it.
func (s *journalService) wrapWriteError(ctx context.Context, err error, action string, entryID string) error {
	if errors.Is(err, apperrors.ErrConflict) || errors.Is(err, apperrors.ErrNotFound) {
		s.LogWarn(ctx, err, "Journal entry changed before "+action+" could commit", slog.String("journal_entry_id", entryID))
	} else {
		s.LogError(ctx, err, "Failed to "+action+" journal entry", slog.String("journal_entry_id", entryID))
	}
	return fmt.Errorf("failed to %s journal entry %s: %w", action, entryID, err)
}

// parseRequestDate parses a YYYY-MM-DD request field into a UTC date.
func parseRequestDate(value string, missingKind apperrors.ValidationKind, field string) (time.Time, error) {
	if strings.TrimSpace(value) == "" {
		return time.Time{}, apperrors.NewValidationError(missingKind, field+" is required")
	}
	parsed, err := domain.ParseDate(value)
	if err != nil {
		return time.Time{}, apperrors.NewValidationError(apperrors.KindInvalidDate, fmt.Sprintf("%s must be formatted as %s", field, domain.DateLayout))
	}
	return parsed, nil
}
