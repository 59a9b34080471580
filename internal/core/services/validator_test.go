package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/SscSPs/general_ledger/internal/apperrors"
	"github.com/SscSPs/general_ledger/internal/core/domain"
	"github.com/SscSPs/general_ledger/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func line(account, debit, credit string) domain.JournalEntryLine {
	return domain.JournalEntryLine{
		ChartOfAccountID: account,
		Debit:            decimal.RequireFromString(debit),
		Credit:           decimal.RequireFromString(credit),
	}
}

func validatorAccounts() map[string]domain.ChartOfAccount {
	return map[string]domain.ChartOfAccount{
		"cash":    {AccountID: "cash", AccountCode: "1000", AccountType: domain.Asset, NormalBalance: domain.Debit, IsActive: true},
		"sales":   {AccountID: "sales", AccountCode: "4000", AccountType: domain.Revenue, NormalBalance: domain.Credit, IsActive: true},
		"dormant": {AccountID: "dormant", AccountCode: "1999", AccountType: domain.Asset, NormalBalance: domain.Debit, IsActive: false},
	}
}

func kindOf(err error) string {
	var vErr *apperrors.ValidationError
	if errors.As(err, &vErr) {
		return string(vErr.Kind)
	}
	var refErr *apperrors.ReferenceError
	if errors.As(err, &refErr) {
		return string(refErr.Kind)
	}
	if err != nil {
		return err.Error()
	}
	return ""
}

func TestValidateForPosting_FirstFailureWins(t *testing.T) {
	testCases := []struct {
		name      string
		lines     []domain.JournalEntryLine
		wantKind  string
		wantIndex int
	}{
		{
			name:     "balanced",
			lines:    []domain.JournalEntryLine{line("cash", "100", "0"), line("sales", "0", "100")},
			wantKind: "",
		},
		{
			name:      "no lines",
			lines:     nil,
			wantKind:  string(apperrors.KindEmptyLines),
			wantIndex: -1,
		},
		{
			name:      "single line",
			lines:     []domain.JournalEntryLine{line("cash", "100", "0")},
			wantKind:  string(apperrors.KindEmptyLines),
			wantIndex: -1,
		},
		{
			name:      "missing account beats unknown account",
			lines:     []domain.JournalEntryLine{line("ghost", "100", "0"), line("", "0", "100")},
			wantKind:  string(apperrors.KindMissingAccount),
			wantIndex: 1,
		},
		{
			name:      "unknown account beats negative amount",
			lines:     []domain.JournalEntryLine{line("cash", "-1", "0"), line("ghost", "0", "100")},
			wantKind:  string(apperrors.KindAccountNotFound),
			wantIndex: 1,
		},
		{
			name:      "inactive account",
			lines:     []domain.JournalEntryLine{line("dormant", "100", "0"), line("sales", "0", "100")},
			wantKind:  string(apperrors.KindAccountInactive),
			wantIndex: 0,
		},
		{
			name:      "negative beats both sides",
			lines:     []domain.JournalEntryLine{line("cash", "5", "5"), line("sales", "0", "-5")},
			wantKind:  string(apperrors.KindNegativeAmount),
			wantIndex: 1,
		},
		{
			name:      "both sides",
			lines:     []domain.JournalEntryLine{line("cash", "5", "5"), line("sales", "0", "0")},
			wantKind:  string(apperrors.KindBothSidesOnOneLine),
			wantIndex: 0,
		},
		{
			name:      "unbalanced",
			lines:     []domain.JournalEntryLine{line("cash", "150", "0"), line("sales", "0", "100")},
			wantKind:  string(apperrors.KindUnbalanced),
			wantIndex: -1,
		},
		{
			name:      "all zero",
			lines:     []domain.JournalEntryLine{line("cash", "0", "0"), line("sales", "0", "0")},
			wantKind:  string(apperrors.KindZeroTotal),
			wantIndex: -1,
		},
		{
			name:      "balanced with an empty line",
			lines:     []domain.JournalEntryLine{line("cash", "100", "0"), line("sales", "0", "100"), line("cash", "0", "0")},
			wantKind:  string(apperrors.KindNoAmountOnLine),
			wantIndex: 2,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			resolver := new(MockAccountLookupSvc)
			resolver.On("ResolveAccounts", mock.Anything, "t1", mock.Anything).Return(validatorAccounts(), nil).Maybe()

			err := services.ValidateForPosting(context.Background(), "t1", tc.lines, resolver)

			assert.Equal(t, tc.wantKind, kindOf(err))
			if tc.wantKind == "" {
				return
			}
			var vErr *apperrors.ValidationError
			var refErr *apperrors.ReferenceError
			switch {
			case errors.As(err, &vErr):
				assert.Equal(t, tc.wantIndex, vErr.LineIndex)
			case errors.As(err, &refErr):
				assert.Equal(t, tc.wantIndex, refErr.LineIndex)
			}
		})
	}
}

func TestValidateForPosting_UnbalancedReportsTotals(t *testing.T) {
	resolver := new(MockAccountLookupSvc)
	resolver.On("ResolveAccounts", mock.Anything, "t1", mock.Anything).Return(validatorAccounts(), nil)

	err := services.ValidateForPosting(context.Background(), "t1",
		[]domain.JournalEntryLine{line("cash", "0.10", "0"), line("cash", "0.20", "0"), line("sales", "0", "0.31")}, resolver)

	var vErr *apperrors.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, apperrors.KindUnbalanced, vErr.Kind)
	assert.Equal(t, "0.30", vErr.TotalDebit.StringFixed(2))
	assert.Equal(t, "0.31", vErr.TotalCredit.StringFixed(2))
}

func TestValidateForPosting_InactiveErrorNamesAccountCode(t *testing.T) {
	resolver := new(MockAccountLookupSvc)
	resolver.On("ResolveAccounts", mock.Anything, "t1", mock.Anything).Return(validatorAccounts(), nil)

	err := services.ValidateForPosting(context.Background(), "t1",
		[]domain.JournalEntryLine{line("dormant", "10", "0"), line("sales", "0", "10")}, resolver)

	var refErr *apperrors.ReferenceError
	require.ErrorAs(t, err, &refErr)
	assert.Equal(t, "1999", refErr.AccountCode)
	assert.Contains(t, err.Error(), "1999")
}

func TestValidateForPosting_ResolverFailurePropagates(t *testing.T) {
	storeErr := errors.New("connection reset")
	resolver := new(MockAccountLookupSvc)
	resolver.On("ResolveAccounts", mock.Anything, "t1", mock.Anything).Return(nil, storeErr)

	err := services.ValidateForPosting(context.Background(), "t1",
		[]domain.JournalEntryLine{line("cash", "10", "0"), line("sales", "0", "10")}, resolver)

	assert.ErrorIs(t, err, storeErr)
	assert.False(t, apperrors.IsClientError(err))
}

func TestCheckStructure_NeedsNoAccounts(t *testing.T) {
	entry := domain.JournalEntry{
		TenantID:  "t1",
		EntryDate: time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC),
		Lines:     []domain.JournalEntryLine{line("anything", "150", "0"), line("else", "0", "100")},
	}
	assert.NoError(t, services.CheckStructure(entry), "balance is only checked at posting")

	entry.TenantID = ""
	assert.Equal(t, string(apperrors.KindMissingTenant), kindOf(services.CheckStructure(entry)))
}
