package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/kopacap/lending/internal/domain/valueobject"
)

// Repayment is an immutable record of money applied to a loan. The receipt
// reference comes from the collection gateway and is unique across all
// repayments; it is the idempotency key for retried payment callbacks.
type Repayment struct {
	id         string
	loanID     string
	amount     decimal.Decimal
	receiptRef string
	recordedAt time.Time
}

// NewRepayment validates and creates a repayment record.
func NewRepayment(loanID string, amount decimal.Decimal, receiptRef string, now time.Time) (Repayment, error) {
	if loanID == "" {
		return Repayment{}, valueobject.NewValidationError("loan_id", "is required")
	}
	if amount.LessThanOrEqual(decimal.Zero) {
		return Repayment{}, valueobject.NewValidationError("amount", "must be positive")
	}
	if receiptRef == "" {
		return Repayment{}, valueobject.NewValidationError("receipt_ref", "is required")
	}

	return Repayment{
		id:         uuid.New().String(),
		loanID:     loanID,
		amount:     amount,
		receiptRef: receiptRef,
		recordedAt: now,
	}, nil
}

// ReconstructRepayment rebuilds a repayment from persistence.
func ReconstructRepayment(id, loanID string, amount decimal.Decimal, receiptRef string, recordedAt time.Time) Repayment {
	return Repayment{
		id:         id,
		loanID:     loanID,
		amount:     amount,
		receiptRef: receiptRef,
		recordedAt: recordedAt,
	}
}

func (r Repayment) ID() string              { return r.id }
func (r Repayment) LoanID() string          { return r.loanID }
func (r Repayment) Amount() decimal.Decimal { return r.amount }
func (r Repayment) ReceiptRef() string      { return r.receiptRef }
func (r Repayment) RecordedAt() time.Time   { return r.recordedAt }
