package accounting

import (
	"github.com/SscSPs/general_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SignedLineAmount applies the correct sign to a line amount for an account's normal balance.
// A leg on the normal side increases the balance; a leg on the opposite side decreases it.
//
//	DEBIT to ASSET/EXPENSE (debit-normal)          -> +
//	CREDIT to ASSET/EXPENSE                        -> -
//	CREDIT to LIABILITY/EQUITY/REVENUE (credit-normal) -> +
//	DEBIT to LIABILITY/EQUITY/REVENUE              -> -
func SignedLineAmount(line domain.JournalEntryLine, normalBalance domain.Side) decimal.Decimal {
	if normalBalance == domain.Debit {
		return line.Debit.Sub(line.Credit)
	}
	return line.Credit.Sub(line.Debit)
}

// FoldBalance sums the signed amounts of lines for an account with the given normal balance.
func FoldBalance(lines []domain.JournalEntryLine, normalBalance domain.Side) decimal.Decimal {
	balance := decimal.Zero
	for _, line := range lines {
		balance = balance.Add(SignedLineAmount(line, normalBalance))
	}
	return balance
}

// MirrorLines swaps the debit and credit of every line, producing the legs of a compensating entry.
// IDs and parent references are cleared for the caller to assign.
func MirrorLines(lines []domain.JournalEntryLine) []domain.JournalEntryLine {
	mirrored := make([]domain.JournalEntryLine, len(lines))
	for i, line := range lines {
		mirrored[i] = domain.JournalEntryLine{
			LineNumber:       line.LineNumber,
			ChartOfAccountID: line.ChartOfAccountID,
			Debit:            line.Credit,
			Credit:           line.Debit,
			Description:      line.Description,
		}
	}
	return mirrored
}
