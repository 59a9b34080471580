package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/SscSPs/general_ledger/internal/apperrors"
	"github.com/SscSPs/general_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/general_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/general_ledger/internal/utils/pagination"
)

// defaultPageSize applies when a list call carries no limit.
const defaultPageSize = 20

type accountKey struct {
	TenantID  string
	AccountID string
}

// lineRef points at one line of a stored entry from the per-account index.
type lineRef struct {
	entryID   string
	lineIndex int
	entryDate time.Time
}

// JournalStore is an in-memory journal entry store.
// A single RWMutex makes every write one atomic step and every read a consistent snapshot.
type JournalStore struct {
	mu        sync.RWMutex
	entries   map[string]*domain.JournalEntry // primary index by entry ID
	byTenant  map[string][]string             // entry IDs in entry-number order
	byAccount map[accountKey][]lineRef        // sorted by entry date
	counters  map[string]int64                // last entry number per tenant
	commits   map[string]int64                // committed writes per tenant
}

// NewJournalStore creates an empty store.
func NewJournalStore() *JournalStore {
	return &JournalStore{
		entries:   make(map[string]*domain.JournalEntry),
		byTenant:  make(map[string][]string),
		byAccount: make(map[accountKey][]lineRef),
		counters:  make(map[string]int64),
		commits:   make(map[string]int64),
	}
}

var _ portsrepo.JournalRepositoryFacade = (*JournalStore)(nil)

// CreateJournalEntry stores a copy of entry with the tenant's next entry number.
func (s *JournalStore) CreateJournalEntry(ctx context.Context, entry domain.JournalEntry) (*domain.JournalEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if _, exists := s.entries[entry.ID]; exists {
		return nil, fmt.Errorf("%w: journal entry %s already exists", apperrors.ErrConflict, entry.ID)
	}

	stored := s.insertLocked(entry).Clone()
	return &stored, nil
}

// FindJournalEntryByID returns a copy of the entry, or apperrors.ErrNotFound.
func (s *JournalStore) FindJournalEntryByID(_ context.Context, tenantID, entryID string) (*domain.JournalEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.entries[entryID]
	if !ok || e.TenantID != tenantID {
		return nil, apperrors.ErrNotFound
	}
	found := e.Clone()
	return &found, nil
}

// ListJournalEntries pages through a tenant's entries, newest entry number first.
func (s *JournalStore) ListJournalEntries(_ context.Context, tenantID string, params portsrepo.ListJournalEntriesParams) ([]domain.JournalEntry, *string, error) {
	if params.Limit <= 0 {
		params.Limit = defaultPageSize
	}
	var before int64
	if params.NextToken != nil && *params.NextToken != "" {
		n, err := pagination.DecodeEntryNumberToken(tenantID, *params.NextToken)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
		}
		before = n
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := s.byTenant[tenantID]
	page := make([]domain.JournalEntry, 0, params.Limit+1)
	for i := len(ids) - 1; i >= 0 && len(page) <= params.Limit; i-- {
		e := s.entries[ids[i]]
		if before > 0 && e.EntryNumber >= before {
			continue
		}
		if params.Status != nil && e.Status != *params.Status {
			continue
		}
		page = append(page, e.Clone())
	}

	if len(page) > params.Limit {
		page = page[:params.Limit]
		token := pagination.EncodeEntryNumberToken(tenantID, page[len(page)-1].EntryNumber)
		return page, &token, nil
	}
	return page, nil, nil
}

// ListPostedLinesByAccount walks the per-account index up to asOf.
func (s *JournalStore) ListPostedLinesByAccount(_ context.Context, tenantID, accountID string, asOf time.Time) ([]domain.JournalEntryLine, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	refs := s.byAccount[accountKey{TenantID: tenantID, AccountID: accountID}]
	lines := make([]domain.JournalEntryLine, 0, len(refs))
	for _, ref := range refs {
		if ref.entryDate.After(asOf) {
			break
		}
		e := s.entries[ref.entryID]
		if !e.Status.HasBeenPosted() {
			continue
		}
		lines = append(lines, e.Lines[ref.lineIndex])
	}
	return lines, nil
}

// LedgerSequence returns the number of writes committed for the tenant.
func (s *JournalStore) LedgerSequence(_ context.Context, tenantID string) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.commits[tenantID], nil
}

// TransitionJournalEntry applies t if the stored status and version still match.
func (s *JournalStore) TransitionJournalEntry(ctx context.Context, t portsrepo.JournalTransition) (*domain.JournalEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	e, err := s.checkLocked(t)
	if err != nil {
		return nil, err
	}
	s.applyLocked(e, t)

	updated := e.Clone()
	return &updated, nil
}

// ReverseJournalEntry flips the original to REVERSED and inserts the compensating entry
// under one lock hold, so readers see both or neither.
func (s *JournalStore) ReverseJournalEntry(ctx context.Context, t portsrepo.JournalTransition, compensating domain.JournalEntry) (*domain.JournalEntry, *domain.JournalEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}
	original, err := s.checkLocked(t)
	if err != nil {
		return nil, nil, err
	}
	if _, exists := s.entries[compensating.ID]; exists {
		return nil, nil, fmt.Errorf("%w: journal entry %s already exists", apperrors.ErrConflict, compensating.ID)
	}

	stored := s.insertLocked(compensating)
	s.applyLocked(original, t)
	reversedBy := stored.ID
	original.ReversedByID = &reversedBy

	o, c := original.Clone(), stored.Clone()
	return &o, &c, nil
}

// checkLocked is the compare half of compare-and-transition.
func (s *JournalStore) checkLocked(t portsrepo.JournalTransition) (*domain.JournalEntry, error) {
	e, ok := s.entries[t.EntryID]
	if !ok || e.TenantID != t.TenantID {
		return nil, apperrors.ErrNotFound
	}
	if e.Status != t.ExpectedStatus || e.Version != t.ExpectedVersion {
		return nil, apperrors.ErrConcurrentModification
	}
	return e, nil
}

func (s *JournalStore) applyLocked(e *domain.JournalEntry, t portsrepo.JournalTransition) {
	s.commits[e.TenantID]++
	e.Status = t.NewStatus
	if t.Description != nil {
		e.Description = *t.Description
	}
	if t.PostedDate != nil {
		posted := *t.PostedDate
		e.PostedDate = &posted
	}
	e.Version++
	e.LastUpdatedAt = t.UpdatedAt
	e.LastUpdatedBy = t.UpdatedBy
}

func (s *JournalStore) insertLocked(entry domain.JournalEntry) *domain.JournalEntry {
	s.counters[entry.TenantID]++
	s.commits[entry.TenantID]++
	e := entry.Clone()
	e.EntryNumber = s.counters[entry.TenantID]

	s.entries[e.ID] = &e
	s.byTenant[e.TenantID] = append(s.byTenant[e.TenantID], e.ID)
	for i, line := range e.Lines {
		s.indexLineLocked(accountKey{TenantID: e.TenantID, AccountID: line.ChartOfAccountID},
			lineRef{entryID: e.ID, lineIndex: i, entryDate: e.EntryDate})
	}
	return &e
}

func (s *JournalStore) indexLineLocked(k accountKey, ref lineRef) {
	refs := s.byAccount[k]

	// Binary search for insertion point after any refs with the same date
	i := sort.Search(len(refs), func(i int) bool {
		return refs[i].entryDate.After(ref.entryDate)
	})

	refs = append(refs, lineRef{})
	copy(refs[i+1:], refs[i:])
	refs[i] = ref
	s.byAccount[k] = refs
}
