package domain

// AccountType defines the fundamental accounting type of an account.
type AccountType string

const (
	Asset     AccountType = "ASSET"
	Liability AccountType = "LIABILITY"
	Equity    AccountType = "EQUITY"
	Revenue   AccountType = "REVENUE"
	Expense   AccountType = "EXPENSE"
)

// Side is one side of the ledger, used both for line legs and for an account's normal balance.
type Side string

const (
	Debit  Side = "DEBIT"
	Credit Side = "CREDIT"
)

// NormalBalance returns the side on which increases to an account of this type are recorded.
// The second result is false for unknown types.
func (t AccountType) NormalBalance() (Side, bool) {
	switch t {
	case Asset, Expense:
		return Debit, true
	case Liability, Equity, Revenue:
		return Credit, true
	default:
		return "", false
	}
}

// Opposite returns the other side of the ledger.
func (s Side) Opposite() Side {
	if s == Debit {
		return Credit
	}
	return Debit
}

// ChartOfAccount is the read-only view of a ledger account for a tenant.
// Accounts are administered outside this service.
type ChartOfAccount struct {
	TenantID      string      `json:"tenantId"`      // Part of identity
	AccountID     string      `json:"accountId"`     // Part of identity
	AccountCode   string      `json:"accountCode"`   // Display code, e.g. "1000"
	Name          string      `json:"name"`
	AccountType   AccountType `json:"accountType"`
	NormalBalance Side        `json:"normalBalance"` // Implied by AccountType
	IsActive      bool        `json:"isActive"`
	AuditFields
}

// HasConsistentNormalBalance reports whether the stored normal balance agrees with the type.
// An empty NormalBalance is consistent; it is filled from the type on resolve.
func (a ChartOfAccount) HasConsistentNormalBalance() bool {
	implied, ok := a.AccountType.NormalBalance()
	if !ok {
		return false
	}
	return a.NormalBalance == "" || a.NormalBalance == implied
}
