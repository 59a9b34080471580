package apperrors

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// ValidationKind identifies which journal entry check failed.
type ValidationKind string

const (
	KindMissingTenant      ValidationKind = "MissingTenant"
	KindMissingEntryDate   ValidationKind = "MissingEntryDate"
	KindEmptyLines         ValidationKind = "EmptyLines"
	KindMissingAccount     ValidationKind = "MissingAccount"
	KindNegativeAmount     ValidationKind = "NegativeAmount"
	KindAmountOutOfRange   ValidationKind = "AmountOutOfRange"
	KindBothSidesOnOneLine ValidationKind = "BothSidesOnOneLine"
	KindNoAmountOnLine     ValidationKind = "NoAmountOnLine"
	KindUnbalanced         ValidationKind = "Unbalanced"
	KindZeroTotal          ValidationKind = "ZeroTotal"
	KindEmptyUpdate        ValidationKind = "EmptyUpdate"
	KindInvalidDate        ValidationKind = "InvalidDate"
	KindReversalBeforeDate ValidationKind = "ReversalBeforeEntryDate"
)

// ValidationError is a structural or balance failure of a journal entry.
type ValidationError struct {
	Kind ValidationKind
	// LineIndex is the zero-based offending line, or -1 when the failure is entry-wide.
	LineIndex   int
	TotalDebit  decimal.Decimal
	TotalCredit decimal.Decimal
	Detail      string
}

// NewValidationError creates an entry-wide ValidationError.
func NewValidationError(kind ValidationKind, detail string) *ValidationError {
	return &ValidationError{Kind: kind, LineIndex: -1, Detail: detail}
}

// NewLineValidationError creates a ValidationError pointing at a single line.
func NewLineValidationError(kind ValidationKind, lineIndex int, detail string) *ValidationError {
	return &ValidationError{Kind: kind, LineIndex: lineIndex, Detail: detail}
}

func (e *ValidationError) Error() string {
	switch {
	case e.Kind == KindUnbalanced || e.Kind == KindZeroTotal:
		return fmt.Sprintf("%s: debits sum is %s and credits sum is %s", e.Kind, e.TotalDebit.StringFixed(2), e.TotalCredit.StringFixed(2))
	case e.LineIndex >= 0:
		return fmt.Sprintf("%s: line %d: %s", e.Kind, e.LineIndex+1, e.Detail)
	default:
		return fmt.Sprintf("%s: %s", e.Kind, e.Detail)
	}
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// ReferenceKind identifies why an account reference could not be used.
type ReferenceKind string

const (
	KindAccountNotFound      ReferenceKind = "AccountNotFound"
	KindAccountInactive      ReferenceKind = "AccountInactive"
	KindAccountMisconfigured ReferenceKind = "AccountMisconfigured"
)

// ReferenceError is raised when a line's chart-of-accounts reference is unusable.
type ReferenceError struct {
	Kind        ReferenceKind
	TenantID    string
	AccountID   string
	AccountCode string
	LineIndex   int
}

func (e *ReferenceError) Error() string {
	if e.AccountCode != "" {
		return fmt.Sprintf("%s: account %s (%s)", e.Kind, e.AccountCode, e.AccountID)
	}
	return fmt.Sprintf("%s: account %s", e.Kind, e.AccountID)
}

func (e *ReferenceError) Unwrap() error {
	return ErrReference
}

// StateKind identifies the kind of lifecycle violation.
type StateKind string

const (
	KindInvalidTransition StateKind = "InvalidTransition"
	KindEditNotAllowed    StateKind = "EditNotAllowed"
)

// StateError is raised when a change is not legal for the entry's current status.
type StateError struct {
	Kind    StateKind
	EntryID string
	From    string
	To      string
}

func (e *StateError) Error() string {
	if e.Kind == KindEditNotAllowed {
		return fmt.Sprintf("%s: journal entry %s is %s and can no longer be edited", e.Kind, e.EntryID, e.From)
	}
	return fmt.Sprintf("%s: journal entry %s cannot move from %s to %s", e.Kind, e.EntryID, e.From, e.To)
}

// Unwrap yields ErrState, plus ErrForbidden for edits on closed entries.
func (e *StateError) Unwrap() []error {
	if e.Kind == KindEditNotAllowed {
		return []error{ErrState, ErrForbidden}
	}
	return []error{ErrState}
}
