package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/SscSPs/general_ledger/internal/apperrors"
	"github.com/SscSPs/general_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/general_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/general_ledger/internal/models"
	"github.com/SscSPs/general_ledger/internal/utils/mapping"
	"github.com/SscSPs/general_ledger/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const entryColumns = `
	id, tenant_id, entry_number, entry_date, description, reference, status,
	posted_date, reversal_of_id, reversed_by_id, version,
	created_at, created_by, last_updated_at, last_updated_by
`

const lineColumns = `
	id, tenant_id, journal_entry_id, line_number, chart_of_account_id, debit, credit, description
`

type PgxJournalRepository struct {
	BaseRepository
}

// newPgxJournalRepository creates a new repository for journal entry data.
func newPgxJournalRepository(pool *pgxpool.Pool) portsrepo.JournalRepositoryFacade {
	return &PgxJournalRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.JournalRepositoryFacade = (*PgxJournalRepository)(nil)

func scanEntry(row pgx.Row) (models.JournalEntry, error) {
	var m models.JournalEntry
	err := row.Scan(
		&m.ID,
		&m.TenantID,
		&m.EntryNumber,
		&m.EntryDate,
		&m.Description,
		&m.Reference,
		&m.Status,
		&m.PostedDate,
		&m.ReversalOfID,
		&m.ReversedByID,
		&m.Version,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

func scanLine(row pgx.Row) (models.JournalEntryLine, error) {
	var l models.JournalEntryLine
	err := row.Scan(
		&l.ID,
		&l.TenantID,
		&l.JournalEntryID,
		&l.LineNumber,
		&l.ChartOfAccountID,
		&l.Debit,
		&l.Credit,
		&l.Description,
	)
	return l, err
}

// CreateJournalEntry inserts the entry and its lines in one transaction,
// taking the next number from the tenant's counter row.
func (r *PgxJournalRepository) CreateJournalEntry(ctx context.Context, entry domain.JournalEntry) (*domain.JournalEntry, error) {
	var created *domain.JournalEntry
	err := r.WithTx(ctx, func(tx pgx.Tx) error {
		var err error
		created, err = insertEntry(ctx, tx, entry)
		return err
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func insertEntry(ctx context.Context, tx pgx.Tx, entry domain.JournalEntry) (*domain.JournalEntry, error) {
	counterQuery := `
		INSERT INTO journal_entry_counters (tenant_id, last_number, commit_seq)
		VALUES ($1, 1, 1)
		ON CONFLICT (tenant_id) DO UPDATE
		SET last_number = journal_entry_counters.last_number + 1,
		    commit_seq = journal_entry_counters.commit_seq + 1
		RETURNING last_number;
	`
	if err := tx.QueryRow(ctx, counterQuery, entry.TenantID).Scan(&entry.EntryNumber); err != nil {
		return nil, apperrors.NewAppError(500, "failed to allocate entry number for tenant "+entry.TenantID, err)
	}

	m := mapping.ToModelJournalEntry(entry)
	entryQuery := `
		INSERT INTO journal_entries (` + entryColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15);
	`
	_, err := tx.Exec(ctx, entryQuery,
		m.ID,
		m.TenantID,
		m.EntryNumber,
		m.EntryDate,
		m.Description,
		m.Reference,
		m.Status,
		m.PostedDate,
		m.ReversalOfID,
		m.ReversedByID,
		m.Version,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("%w: journal entry %s already exists", apperrors.ErrConflict, m.ID)
		}
		return nil, apperrors.NewAppError(500, "failed to insert journal entry "+m.ID, err)
	}

	lineQuery := `
		INSERT INTO journal_entry_lines (` + lineColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	batch := &pgx.Batch{}
	for _, line := range entry.Lines {
		l := mapping.ToModelJournalEntryLine(entry.TenantID, line)
		batch.Queue(lineQuery, l.ID, l.TenantID, l.JournalEntryID, l.LineNumber, l.ChartOfAccountID, l.Debit, l.Credit, l.Description)
	}
	// Closing the batch surfaces the first failed insert.
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return nil, apperrors.NewAppError(500, "failed to insert lines for journal entry "+m.ID, err)
	}

	created := entry.Clone()
	return &created, nil
}

// FindJournalEntryByID retrieves an entry and its lines.
func (r *PgxJournalRepository) FindJournalEntryByID(ctx context.Context, tenantID, entryID string) (*domain.JournalEntry, error) {
	return findEntry(ctx, r.Pool, tenantID, entryID)
}

type rowQuerier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func findEntry(ctx context.Context, q rowQuerier, tenantID, entryID string) (*domain.JournalEntry, error) {
	query := `SELECT ` + entryColumns + ` FROM journal_entries WHERE tenant_id = $1 AND id = $2;`

	m, err := scanEntry(q.QueryRow(ctx, query, tenantID, entryID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find journal entry "+entryID, err)
	}

	lines, err := findLines(ctx, q, tenantID, []string{entryID})
	if err != nil {
		return nil, err
	}

	entry := mapping.ToDomainJournalEntry(m, lines[entryID])
	return &entry, nil
}

// findLines loads the lines of entryIDs grouped by entry, in line-number order.
func findLines(ctx context.Context, q rowQuerier, tenantID string, entryIDs []string) (map[string][]models.JournalEntryLine, error) {
	query := `
		SELECT ` + lineColumns + `
		FROM journal_entry_lines
		WHERE tenant_id = $1 AND journal_entry_id = ANY($2)
		ORDER BY journal_entry_id, line_number;
	`
	rows, err := q.Query(ctx, query, tenantID, entryIDs)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query journal entry lines", err)
	}
	defer rows.Close()

	grouped := make(map[string][]models.JournalEntryLine, len(entryIDs))
	for rows.Next() {
		l, err := scanLine(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan journal entry line", err)
		}
		grouped[l.JournalEntryID] = append(grouped[l.JournalEntryID], l)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating journal entry lines", err)
	}
	return grouped, nil
}

// ListJournalEntries retrieves a page of entries ordered by entry number, newest first.
func (r *PgxJournalRepository) ListJournalEntries(ctx context.Context, tenantID string, params portsrepo.ListJournalEntriesParams) ([]domain.JournalEntry, *string, error) {
	limit := params.Limit
	if limit <= 0 {
		limit = 20
	}
	// One extra row tells us whether another page exists.
	fetchLimit := limit + 1

	query := `SELECT ` + entryColumns + ` FROM journal_entries WHERE tenant_id = $1`
	args := []any{tenantID}

	if params.Status != nil {
		args = append(args, string(*params.Status))
		query += ` AND status = $` + strconv.Itoa(len(args))
	}
	if params.NextToken != nil && *params.NextToken != "" {
		before, err := pagination.DecodeEntryNumberToken(tenantID, *params.NextToken)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: invalid nextToken: %v", apperrors.ErrValidation, err)
		}
		args = append(args, before)
		query += ` AND entry_number < $` + strconv.Itoa(len(args))
	}
	args = append(args, fetchLimit)
	query += ` ORDER BY entry_number DESC LIMIT $` + strconv.Itoa(len(args)) + `;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to query journal entries for tenant "+tenantID, err)
	}
	defer rows.Close()

	headers := make([]models.JournalEntry, 0, fetchLimit)
	for rows.Next() {
		m, err := scanEntry(rows)
		if err != nil {
			return nil, nil, apperrors.NewAppError(500, "failed to scan journal entry row for tenant "+tenantID, err)
		}
		headers = append(headers, m)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, apperrors.NewAppError(500, "error iterating journal entry rows for tenant "+tenantID, err)
	}

	var nextToken *string
	if len(headers) > limit {
		headers = headers[:limit]
		token := pagination.EncodeEntryNumberToken(tenantID, headers[limit-1].EntryNumber)
		nextToken = &token
	}
	if len(headers) == 0 {
		return []domain.JournalEntry{}, nil, nil
	}

	ids := make([]string, len(headers))
	for i, h := range headers {
		ids[i] = h.ID
	}
	lines, err := findLines(ctx, r.Pool, tenantID, ids)
	if err != nil {
		return nil, nil, err
	}

	entries := make([]domain.JournalEntry, len(headers))
	for i, h := range headers {
		entries[i] = mapping.ToDomainJournalEntry(h, lines[h.ID])
	}
	return entries, nextToken, nil
}

// ListPostedLinesByAccount reads every posted line of an account up to asOf in one statement,
// so the result is a single MVCC snapshot.
func (r *PgxJournalRepository) ListPostedLinesByAccount(ctx context.Context, tenantID, accountID string, asOf time.Time) ([]domain.JournalEntryLine, error) {
	query := `
		SELECT l.id, l.tenant_id, l.journal_entry_id, l.line_number, l.chart_of_account_id, l.debit, l.credit, l.description
		FROM journal_entry_lines l
		JOIN journal_entries e ON e.tenant_id = l.tenant_id AND e.id = l.journal_entry_id
		WHERE l.tenant_id = $1
		  AND l.chart_of_account_id = $2
		  AND e.status IN ('POSTED', 'REVERSED')
		  AND e.entry_date <= $3
		ORDER BY e.entry_date, e.entry_number, l.line_number;
	`
	rows, err := r.Pool.Query(ctx, query, tenantID, accountID, asOf)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query posted lines for account "+accountID, err)
	}
	defer rows.Close()

	lines := []models.JournalEntryLine{}
	for rows.Next() {
		l, err := scanLine(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan posted line for account "+accountID, err)
		}
		lines = append(lines, l)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating posted lines for account "+accountID, err)
	}
	return mapping.ToDomainJournalEntryLineSlice(lines), nil
}

// LedgerSequence reads the tenant's commit counter. A tenant with no entries reads 0.
func (r *PgxJournalRepository) LedgerSequence(ctx context.Context, tenantID string) (int64, error) {
	query := `SELECT COALESCE((SELECT commit_seq FROM journal_entry_counters WHERE tenant_id = $1), 0);`

	var seq int64
	if err := r.Pool.QueryRow(ctx, query, tenantID).Scan(&seq); err != nil {
		return 0, apperrors.NewAppError(500, "failed to read ledger sequence for tenant "+tenantID, err)
	}
	return seq, nil
}

// TransitionJournalEntry applies t with a guarded UPDATE.
func (r *PgxJournalRepository) TransitionJournalEntry(ctx context.Context, t portsrepo.JournalTransition) (*domain.JournalEntry, error) {
	var updated *domain.JournalEntry
	err := r.WithTx(ctx, func(tx pgx.Tx) error {
		if err := compareAndTransition(ctx, tx, t); err != nil {
			return err
		}
		var err error
		updated, err = findEntry(ctx, tx, t.TenantID, t.EntryID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// ReverseJournalEntry flips the original to REVERSED, inserts the compensating entry
// and links the two, all in one transaction.
func (r *PgxJournalRepository) ReverseJournalEntry(ctx context.Context, t portsrepo.JournalTransition, compensating domain.JournalEntry) (*domain.JournalEntry, *domain.JournalEntry, error) {
	var original, stored *domain.JournalEntry
	err := r.WithTx(ctx, func(tx pgx.Tx) error {
		// The guarded update takes the row lock first, so a losing writer never allocates a number.
		if err := compareAndTransition(ctx, tx, t); err != nil {
			return err
		}

		var err error
		if stored, err = insertEntry(ctx, tx, compensating); err != nil {
			return err
		}

		linkQuery := `UPDATE journal_entries SET reversed_by_id = $3 WHERE tenant_id = $1 AND id = $2;`
		if _, err := tx.Exec(ctx, linkQuery, t.TenantID, t.EntryID, stored.ID); err != nil {
			return apperrors.NewAppError(500, "failed to link reversal of journal entry "+t.EntryID, err)
		}

		original, err = findEntry(ctx, tx, t.TenantID, t.EntryID)
		return err
	})
	if err != nil {
		return nil, nil, err
	}
	return original, stored, nil
}

// rowExecer is the part of pgx.Tx the compare-and-transition step needs.
type rowExecer interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// compareAndTransition updates the entry only if status and version still match,
// and bumps the tenant's commit sequence in the same transaction.
func compareAndTransition(ctx context.Context, tx rowExecer, t portsrepo.JournalTransition) error {
	query := `
		UPDATE journal_entries
		SET status = $5,
		    description = COALESCE($6, description),
		    posted_date = COALESCE($7, posted_date),
		    version = version + 1,
		    last_updated_at = $8,
		    last_updated_by = $9
		WHERE tenant_id = $1 AND id = $2 AND status = $3 AND version = $4;
	`
	cmdTag, err := tx.Exec(ctx, query,
		t.TenantID,
		t.EntryID,
		string(t.ExpectedStatus),
		t.ExpectedVersion,
		string(t.NewStatus),
		t.Description,
		t.PostedDate,
		t.UpdatedAt,
		t.UpdatedBy,
	)
	if err != nil {
		if isConflict(err) {
			return apperrors.ErrConcurrentModification
		}
		return apperrors.NewAppError(500, "failed to transition journal entry "+t.EntryID, err)
	}
	if cmdTag.RowsAffected() != 1 {
		return explainTransitionMiss(ctx, tx, t.TenantID, t.EntryID)
	}

	seqQuery := `
		INSERT INTO journal_entry_counters (tenant_id, last_number, commit_seq)
		VALUES ($1, 0, 1)
		ON CONFLICT (tenant_id) DO UPDATE
		SET commit_seq = journal_entry_counters.commit_seq + 1;
	`
	if _, err := tx.Exec(ctx, seqQuery, t.TenantID); err != nil {
		if isConflict(err) {
			return apperrors.ErrConcurrentModification
		}
		return apperrors.NewAppError(500, "failed to bump ledger sequence for tenant "+t.TenantID, err)
	}
	return nil
}

// explainTransitionMiss tells a missing entry apart from a lost race once the guarded update matched nothing.
func explainTransitionMiss(ctx context.Context, q rowExecer, tenantID, entryID string) error {
	var exists bool
	existsQuery := `SELECT EXISTS (SELECT 1 FROM journal_entries WHERE tenant_id = $1 AND id = $2);`
	if err := q.QueryRow(ctx, existsQuery, tenantID, entryID).Scan(&exists); err != nil {
		return apperrors.NewAppError(500, "failed to check journal entry "+entryID, err)
	}
	if !exists {
		return apperrors.ErrNotFound
	}
	return apperrors.ErrConcurrentModification
}
