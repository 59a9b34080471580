package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/SscSPs/general_ledger/internal/apperrors"
	"github.com/SscSPs/general_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/general_ledger/internal/core/ports/services"
)

// MinJournalLines is the minimum number of lines in a journal entry: one debit leg and one credit leg.
const MinJournalLines = 2

// CheckStructure runs the checks that need no account metadata. A failing entry is not persisted.
func CheckStructure(entry domain.JournalEntry) error {
	if strings.TrimSpace(entry.TenantID) == "" {
		return apperrors.NewValidationError(apperrors.KindMissingTenant, "tenantId is required")
	}
	if entry.EntryDate.IsZero() {
		return apperrors.NewValidationError(apperrors.KindMissingEntryDate, "entryDate is required")
	}
	if err := checkLineCount(entry.Lines); err != nil {
		return err
	}
	if err := checkAccountsPresent(entry.Lines); err != nil {
		return err
	}
	if err := checkAmountRange(entry.Lines); err != nil {
		return err
	}
	if err := checkLineAmounts(entry.Lines); err != nil {
		return err
	}
	return checkEveryLineHasAmount(entry.Lines)
}

// ValidateForPosting checks lines for posting and returns the first failure, in order:
// EmptyLines, MissingAccount, AccountNotFound/AccountInactive, NegativeAmount,
// BothSidesOnOneLine, Unbalanced, ZeroTotal, NoAmountOnLine.
// Apart from the account lookup it has no side effects.
func ValidateForPosting(ctx context.Context, tenantID string, lines []domain.JournalEntryLine, resolver portssvc.AccountResolver) error {
	if err := checkLineCount(lines); err != nil {
		return err
	}
	if err := checkAccountsPresent(lines); err != nil {
		return err
	}
	if err := checkAccountsUsable(ctx, tenantID, lines, resolver, true); err != nil {
		return err
	}
	if err := checkLineAmounts(lines); err != nil {
		return err
	}
	if err := checkBalanced(lines); err != nil {
		return err
	}
	return checkEveryLineHasAmount(lines)
}

func checkLineCount(lines []domain.JournalEntryLine) error {
	if len(lines) < MinJournalLines {
		return apperrors.NewValidationError(apperrors.KindEmptyLines,
			fmt.Sprintf("a journal entry needs at least %d lines, got %d", MinJournalLines, len(lines)))
	}
	return nil
}

func checkAccountsPresent(lines []domain.JournalEntryLine) error {
	for i, line := range lines {
		if strings.TrimSpace(line.ChartOfAccountID) == "" {
			return apperrors.NewLineValidationError(apperrors.KindMissingAccount, i, "chartOfAccountId is required")
		}
	}
	return nil
}

// checkAccountsUsable resolves every referenced account. Activity is only enforced when
// requireActive is set, since an account can be deactivated between creation and posting.
func checkAccountsUsable(ctx context.Context, tenantID string, lines []domain.JournalEntryLine, resolver portssvc.AccountResolver, requireActive bool) error {
	ids := make([]string, len(lines))
	for i, line := range lines {
		ids[i] = line.ChartOfAccountID
	}

	accounts, err := resolver.ResolveAccounts(ctx, tenantID, ids)
	if err != nil {
		return err
	}

	for i, line := range lines {
		account, ok := accounts[line.ChartOfAccountID]
		if !ok {
			return &apperrors.ReferenceError{
				Kind:      apperrors.KindAccountNotFound,
				TenantID:  tenantID,
				AccountID: line.ChartOfAccountID,
				LineIndex: i,
			}
		}
		if requireActive && !account.IsActive {
			return &apperrors.ReferenceError{
				Kind:        apperrors.KindAccountInactive,
				TenantID:    tenantID,
				AccountID:   account.AccountID,
				AccountCode: account.AccountCode,
				LineIndex:   i,
			}
		}
	}
	return nil
}

func checkAmountRange(lines []domain.JournalEntryLine) error {
	for i, line := range lines {
		if !domain.AmountInRange(line.Debit) || !domain.AmountInRange(line.Credit) {
			return apperrors.NewLineValidationError(apperrors.KindAmountOutOfRange, i,
				fmt.Sprintf("amounts are limited to %d integer digits and %d decimal places",
					domain.MaxAmountIntegerDigits, domain.MaxAmountScale))
		}
	}
	return nil
}

func checkLineAmounts(lines []domain.JournalEntryLine) error {
	for i, line := range lines {
		if line.Debit.IsNegative() || line.Credit.IsNegative() {
			return apperrors.NewLineValidationError(apperrors.KindNegativeAmount, i,
				fmt.Sprintf("debit %s and credit %s must not be negative", line.Debit, line.Credit))
		}
	}
	for i, line := range lines {
		if line.Debit.IsPositive() && line.Credit.IsPositive() {
			return apperrors.NewLineValidationError(apperrors.KindBothSidesOnOneLine, i,
				"a line carries either a debit or a credit, not both")
		}
	}
	return nil
}

func checkBalanced(lines []domain.JournalEntryLine) error {
	debit, credit := domain.JournalEntry{Lines: lines}.Totals()
	if !debit.Equal(credit) {
		return &apperrors.ValidationError{Kind: apperrors.KindUnbalanced, LineIndex: -1, TotalDebit: debit, TotalCredit: credit}
	}
	if debit.IsZero() {
		return &apperrors.ValidationError{Kind: apperrors.KindZeroTotal, LineIndex: -1, TotalDebit: debit, TotalCredit: credit}
	}
	return nil
}

func checkEveryLineHasAmount(lines []domain.JournalEntryLine) error {
	for i, line := range lines {
		if line.Debit.IsZero() && line.Credit.IsZero() {
			return apperrors.NewLineValidationError(apperrors.KindNoAmountOnLine, i, "a line must carry a non-zero debit or credit")
		}
	}
	return nil
}
