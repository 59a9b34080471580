package pgsql

import (
	"context"
	"errors"

	"github.com/SscSPs/general_ledger/internal/apperrors"
	"github.com/SscSPs/general_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/general_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/general_ledger/internal/models"
	"github.com/SscSPs/general_ledger/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const selectAccountColumns = `
	SELECT tenant_id, account_id, account_code, name, account_type, normal_balance, is_active,
	       created_at, created_by, last_updated_at, last_updated_by
	FROM chart_of_accounts
`

// PgxChartOfAccountRepository reads the chart of accounts. Rows are maintained
// by an external administration process.
type PgxChartOfAccountRepository struct {
	BaseRepository
}

// newPgxChartOfAccountRepository creates a new repository for chart-of-accounts data.
func newPgxChartOfAccountRepository(pool *pgxpool.Pool) portsrepo.ChartOfAccountRepositoryFacade {
	return &PgxChartOfAccountRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ChartOfAccountRepositoryFacade = (*PgxChartOfAccountRepository)(nil)

func scanAccount(row pgx.Row) (models.ChartOfAccount, error) {
	var m models.ChartOfAccount
	err := row.Scan(
		&m.TenantID,
		&m.AccountID,
		&m.AccountCode,
		&m.Name,
		&m.AccountType,
		&m.NormalBalance,
		&m.IsActive,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// FindAccountByID retrieves an account by its ID.
func (r *PgxChartOfAccountRepository) FindAccountByID(ctx context.Context, tenantID, accountID string) (*domain.ChartOfAccount, error) {
	query := selectAccountColumns + `WHERE tenant_id = $1 AND account_id = $2;`

	m, err := scanAccount(r.Pool.QueryRow(ctx, query, tenantID, accountID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find account "+accountID, err)
	}

	account := mapping.ToDomainChartOfAccount(m)
	return &account, nil
}

// FindAccountsByIDs retrieves multiple accounts by their IDs.
func (r *PgxChartOfAccountRepository) FindAccountsByIDs(ctx context.Context, tenantID string, accountIDs []string) (map[string]domain.ChartOfAccount, error) {
	if len(accountIDs) == 0 {
		return map[string]domain.ChartOfAccount{}, nil
	}

	query := selectAccountColumns + `WHERE tenant_id = $1 AND account_id = ANY($2);`

	rows, err := r.Pool.Query(ctx, query, tenantID, accountIDs)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query accounts by IDs", err)
	}
	defer rows.Close()

	accounts := make(map[string]domain.ChartOfAccount, len(accountIDs))
	for rows.Next() {
		m, err := scanAccount(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan account row during batch fetch", err)
		}
		accounts[m.AccountID] = mapping.ToDomainChartOfAccount(m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating account rows during batch fetch", err)
	}

	// Missing IDs are simply absent; the validator reports them.
	return accounts, nil
}

// UpsertAccount writes an account row. Used to load a chart-of-accounts seed file
// into an empty database; the ledger itself never changes accounts.
func (r *PgxChartOfAccountRepository) UpsertAccount(ctx context.Context, account domain.ChartOfAccount) error {
	m := mapping.ToModelChartOfAccount(account)
	query := `
		INSERT INTO chart_of_accounts (tenant_id, account_id, account_code, name, account_type, normal_balance, is_active,
		                               created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (tenant_id, account_id) DO UPDATE
		SET account_code = EXCLUDED.account_code,
		    name = EXCLUDED.name,
		    account_type = EXCLUDED.account_type,
		    normal_balance = EXCLUDED.normal_balance,
		    is_active = EXCLUDED.is_active,
		    last_updated_at = EXCLUDED.last_updated_at,
		    last_updated_by = EXCLUDED.last_updated_by;
	`
	_, err := r.Pool.Exec(ctx, query,
		m.TenantID,
		m.AccountID,
		m.AccountCode,
		m.Name,
		m.AccountType,
		m.NormalBalance,
		m.IsActive,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to upsert account "+m.AccountID, err)
	}
	return nil
}
