package models

// AccountType defines the fundamental accounting type of an account.
type AccountType string

const (
	Asset     AccountType = "ASSET"
	Liability AccountType = "LIABILITY"
	Equity    AccountType = "EQUITY"
	Revenue   AccountType = "REVENUE"
	Expense   AccountType = "EXPENSE"
)

// ChartOfAccount is a row of chart_of_accounts.
type ChartOfAccount struct {
	TenantID      string      `db:"tenant_id"`
	AccountID     string      `db:"account_id"`
	AccountCode   string      `db:"account_code"`
	Name          string      `db:"name"`
	AccountType   AccountType `db:"account_type"`
	NormalBalance string      `db:"normal_balance"` // DEBIT or CREDIT
	IsActive      bool        `db:"is_active"`
	AuditFields
}
