package valueobject

import (
	"errors"
	"fmt"
)

// ---------------------------------------------------------------------------
// LoanStatus – immutable value object
// ---------------------------------------------------------------------------

// LoanStatus represents the lifecycle stage of a loan.
type LoanStatus struct {
	value string
}

const (
	loanStatusPending   = "PENDING"
	loanStatusApproved  = "APPROVED"
	loanStatusRejected  = "REJECTED"
	loanStatusDisbursed = "DISBURSED"
	loanStatusCompleted = "COMPLETED"
	loanStatusDefaulted = "DEFAULTED"
)

var (
	LoanStatusPending   = LoanStatus{value: loanStatusPending}
	LoanStatusApproved  = LoanStatus{value: loanStatusApproved}
	LoanStatusRejected  = LoanStatus{value: loanStatusRejected}
	LoanStatusDisbursed = LoanStatus{value: loanStatusDisbursed}
	LoanStatusCompleted = LoanStatus{value: loanStatusCompleted}
	LoanStatusDefaulted = LoanStatus{value: loanStatusDefaulted}
)

var validLoanStatuses = map[string]LoanStatus{
	loanStatusPending:   LoanStatusPending,
	loanStatusApproved:  LoanStatusApproved,
	loanStatusRejected:  LoanStatusRejected,
	loanStatusDisbursed: LoanStatusDisbursed,
	loanStatusCompleted: LoanStatusCompleted,
	loanStatusDefaulted: LoanStatusDefaulted,
}

// NewLoanStatus creates a LoanStatus from a raw string.
func NewLoanStatus(s string) (LoanStatus, error) {
	v, ok := validLoanStatuses[s]
	if !ok {
		return LoanStatus{}, fmt.Errorf("invalid loan status: %q", s)
	}
	return v, nil
}

// String returns the string representation of the status.
func (s LoanStatus) String() string { return s.value }

// IsZero returns true if the status has not been initialised.
func (s LoanStatus) IsZero() bool { return s.value == "" }

// Equal returns true when both statuses carry the same value.
func (s LoanStatus) Equal(other LoanStatus) bool { return s.value == other.value }

// IsTerminal returns true for statuses from which no further transition is defined.
func (s LoanStatus) IsTerminal() bool {
	switch s.value {
	case loanStatusRejected, loanStatusCompleted, loanStatusDefaulted:
		return true
	}
	return false
}

// IsPayable returns true when a loan in this status may accept repayments.
func (s LoanStatus) IsPayable() bool {
	return s.value == loanStatusApproved || s.value == loanStatusDisbursed
}

// ---------------------------------------------------------------------------
// Sentinel errors
// ---------------------------------------------------------------------------

var (
	// ErrInvalidStatusTransition is returned by lifecycle operations that are
	// illegal for the loan's current status. The loan is left unchanged.
	ErrInvalidStatusTransition = errors.New("invalid status transition")

	// ErrLoanNotPayable is returned when a repayment targets a loan whose
	// status does not accept repayments.
	ErrLoanNotPayable = errors.New("loan does not accept repayments in its current status")

	// ErrDuplicateReceipt is returned when a repayment carries a receipt
	// reference that was already recorded. Callers should treat it as
	// "already applied", not as a failure.
	ErrDuplicateReceipt = errors.New("receipt reference already recorded")

	// ErrLoanNotFound is returned by repositories when no loan matches.
	ErrLoanNotFound = errors.New("loan not found")

	// ErrVersionConflict signals a lost optimistic-locking race; the caller
	// may reload the aggregate and retry.
	ErrVersionConflict = errors.New("aggregate version conflict")

	// ErrOpenLoanExists is returned when a borrower with a loan still in
	// flight submits another application.
	ErrOpenLoanExists = errors.New("borrower already has an open loan")
)
