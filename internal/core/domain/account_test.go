package domain_test

import (
	"testing"
	"time"

	"github.com/SscSPs/general_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestAccountType_NormalBalance(t *testing.T) {
	tests := []struct {
		accountType domain.AccountType
		want        domain.Side
		ok          bool
	}{
		{domain.Asset, domain.Debit, true},
		{domain.Expense, domain.Debit, true},
		{domain.Liability, domain.Credit, true},
		{domain.Equity, domain.Credit, true},
		{domain.Revenue, domain.Credit, true},
		{domain.AccountType("INCOME"), "", false},
	}

	for _, tt := range tests {
		t.Run(string(tt.accountType), func(t *testing.T) {
			got, ok := tt.accountType.NormalBalance()
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestChartOfAccount_HasConsistentNormalBalance(t *testing.T) {
	assert.True(t, domain.ChartOfAccount{AccountType: domain.Asset}.HasConsistentNormalBalance())
	assert.True(t, domain.ChartOfAccount{AccountType: domain.Revenue, NormalBalance: domain.Credit}.HasConsistentNormalBalance())
	assert.False(t, domain.ChartOfAccount{AccountType: domain.Revenue, NormalBalance: domain.Debit}.HasConsistentNormalBalance())
	assert.False(t, domain.ChartOfAccount{AccountType: "UNKNOWN"}.HasConsistentNormalBalance())
}

func TestSide_Opposite(t *testing.T) {
	assert.Equal(t, domain.Credit, domain.Debit.Opposite())
	assert.Equal(t, domain.Debit, domain.Credit.Opposite())
}

func TestNormalizeAmount_RoundsHalfEven(t *testing.T) {
	tests := map[string]string{
		"10.125":  "10.12",
		"10.135":  "10.14",
		"10.1251": "10.13",
		"-0.005":  "0",
		"7":       "7",
	}
	for in, want := range tests {
		got := domain.NormalizeAmount(decimal.RequireFromString(in))
		assert.True(t, got.Equal(decimal.RequireFromString(want)), "%s rounded to %s, want %s", in, got, want)
	}
}

func TestTruncateToDate(t *testing.T) {
	loc := time.FixedZone("UTC+5", 5*60*60)
	in := time.Date(2024, 6, 1, 2, 30, 0, 0, loc) // 2024-05-31T21:30Z

	assert.Equal(t, time.Date(2024, 5, 31, 0, 0, 0, 0, time.UTC), domain.TruncateToDate(in))

	parsed, err := domain.ParseDate("2024-02-29")
	assert.NoError(t, err)
	assert.Equal(t, time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), parsed)

	_, err = domain.ParseDate("2023-02-29")
	assert.Error(t, err)
}
