package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/kopacap/lending/internal/domain/event"
	"github.com/kopacap/lending/internal/domain/valueobject"
)

// ---------------------------------------------------------------------------
// Loan aggregate root
// ---------------------------------------------------------------------------

var oneHundred = decimal.NewFromInt(100)

// Loan is an immutable aggregate. Mutations return a new copy; an operation
// that is illegal for the current status returns the receiver unchanged
// together with ErrInvalidStatusTransition.
type Loan struct {
	id                  string
	borrowerID          string
	principal           decimal.Decimal
	interestRatePercent decimal.Decimal
	termDays            int
	purpose             string
	status              valueobject.LoanStatus
	appliedAt           time.Time
	approvedAt          *time.Time
	disbursedAt         *time.Time
	dueDate             *time.Time
	repaidAmount        decimal.Decimal
	creditScore         int
	riskLevel           valueobject.RiskLevel
	decisionReason      string
	version             int
	createdAt           time.Time
	updatedAt           time.Time
	domainEvents        []event.DomainEvent
}

// ---------------------------------------------------------------------------
// Constructors
// ---------------------------------------------------------------------------

// NewLoan creates a loan application in PENDING status. The credit score and
// risk level computed at application time are stamped on the aggregate; the
// interest rate is assigned later, by the approval decision.
func NewLoan(
	borrowerID string,
	principal decimal.Decimal,
	termDays int,
	purpose string,
	creditScore int,
	riskLevel valueobject.RiskLevel,
	now time.Time,
) (Loan, error) {
	if borrowerID == "" {
		return Loan{}, valueobject.NewValidationError("borrower_id", "is required")
	}
	if principal.LessThanOrEqual(decimal.Zero) {
		return Loan{}, valueobject.NewValidationError("principal", "must be positive")
	}
	if termDays <= 0 {
		return Loan{}, valueobject.NewValidationError("term_days", "must be positive")
	}
	if creditScore < 0 || creditScore > 100 {
		return Loan{}, valueobject.NewValidationError("credit_score", "must be within [0,100]")
	}

	id := uuid.New().String()
	loan := Loan{
		id:           id,
		borrowerID:   borrowerID,
		principal:    principal,
		termDays:     termDays,
		purpose:      purpose,
		status:       valueobject.LoanStatusPending,
		appliedAt:    now,
		repaidAmount: decimal.Zero,
		creditScore:  creditScore,
		riskLevel:    riskLevel,
		version:      1,
		createdAt:    now,
		updatedAt:    now,
	}

	loan.domainEvents = append(loan.domainEvents, event.NewLoanApplied(
		id, borrowerID, principal, termDays, creditScore, riskLevel.String(),
	))

	return loan, nil
}

// ReconstructLoan rebuilds a Loan aggregate from persistence without side-effects.
func ReconstructLoan(
	id, borrowerID string,
	principal, interestRatePercent decimal.Decimal,
	termDays int,
	purpose string,
	status valueobject.LoanStatus,
	appliedAt time.Time,
	approvedAt, disbursedAt, dueDate *time.Time,
	repaidAmount decimal.Decimal,
	creditScore int,
	riskLevel valueobject.RiskLevel,
	decisionReason string,
	version int,
	createdAt, updatedAt time.Time,
) Loan {
	return Loan{
		id:                  id,
		borrowerID:          borrowerID,
		principal:           principal,
		interestRatePercent: interestRatePercent,
		termDays:            termDays,
		purpose:             purpose,
		status:              status,
		appliedAt:           appliedAt,
		approvedAt:          approvedAt,
		disbursedAt:         disbursedAt,
		dueDate:             dueDate,
		repaidAmount:        repaidAmount,
		creditScore:         creditScore,
		riskLevel:           riskLevel,
		decisionReason:      decisionReason,
		version:             version,
		createdAt:           createdAt,
		updatedAt:           updatedAt,
	}
}

// ---------------------------------------------------------------------------
// State transitions (each returns a new copy)
// ---------------------------------------------------------------------------

// Approve transitions PENDING -> APPROVED. The due date is fixed at approval
// time plus the loan term.
func (l Loan) Approve(
	interestRatePercent decimal.Decimal,
	creditScore int,
	riskLevel valueobject.RiskLevel,
	reason string,
	now time.Time,
) (Loan, error) {
	if !l.status.Equal(valueobject.LoanStatusPending) {
		return l, valueobject.ErrInvalidStatusTransition
	}

	due := now.AddDate(0, 0, l.termDays)
	next := l
	next.status = valueobject.LoanStatusApproved
	next.interestRatePercent = interestRatePercent
	next.approvedAt = &now
	next.dueDate = &due
	next.creditScore = creditScore
	next.riskLevel = riskLevel
	next.decisionReason = reason
	next.updatedAt = now
	next.domainEvents = copyEvents(l.domainEvents)
	next.domainEvents = append(next.domainEvents, event.NewLoanApproved(
		l.id, l.borrowerID, interestRatePercent, due, creditScore, reason,
	))
	return next, nil
}

// Reject transitions PENDING -> REJECTED.
func (l Loan) Reject(reason string, now time.Time) (Loan, error) {
	if !l.status.Equal(valueobject.LoanStatusPending) {
		return l, valueobject.ErrInvalidStatusTransition
	}
	next := l
	next.status = valueobject.LoanStatusRejected
	next.decisionReason = reason
	next.updatedAt = now
	next.domainEvents = copyEvents(l.domainEvents)
	next.domainEvents = append(next.domainEvents, event.NewLoanRejected(l.id, l.borrowerID, reason))
	return next, nil
}

// Disburse transitions APPROVED -> DISBURSED.
func (l Loan) Disburse(now time.Time) (Loan, error) {
	if !l.status.Equal(valueobject.LoanStatusApproved) {
		return l, valueobject.ErrInvalidStatusTransition
	}
	next := l
	next.status = valueobject.LoanStatusDisbursed
	next.disbursedAt = &now
	next.updatedAt = now
	next.domainEvents = copyEvents(l.domainEvents)
	next.domainEvents = append(next.domainEvents, event.NewLoanDisbursed(l.id, l.borrowerID, l.principal))
	return next, nil
}

// MarkDefaulted transitions DISBURSED -> DEFAULTED. This is an explicit
// operator decision; an overdue loan is never defaulted automatically.
func (l Loan) MarkDefaulted(now time.Time) (Loan, error) {
	if !l.status.Equal(valueobject.LoanStatusDisbursed) {
		return l, valueobject.ErrInvalidStatusTransition
	}
	next := l
	next.status = valueobject.LoanStatusDefaulted
	next.updatedAt = now
	next.domainEvents = copyEvents(l.domainEvents)
	next.domainEvents = append(next.domainEvents, event.NewLoanDefaulted(l.id, l.borrowerID, l.RemainingBalance()))
	return next, nil
}

// ApplyRepayment accumulates a recorded repayment into the running balance.
// When the repaid total reaches the total repayable the loan transitions to
// COMPLETED in the same operation; completion is an arithmetic fact, not a
// separate decision. Overpayment is accepted and not refunded.
func (l Loan) ApplyRepayment(rep Repayment, now time.Time) (Loan, error) {
	if rep.LoanID() != l.id {
		return l, valueobject.NewValidationError("loan_id", "repayment does not belong to this loan")
	}
	if !l.status.IsPayable() {
		return l, valueobject.ErrLoanNotPayable
	}

	next := l
	next.repaidAmount = l.repaidAmount.Add(rep.Amount())
	next.updatedAt = now
	next.domainEvents = copyEvents(l.domainEvents)
	next.domainEvents = append(next.domainEvents, event.NewRepaymentRecorded(
		l.id, rep.ID(), rep.ReceiptRef(), rep.Amount(), next.repaidAmount,
	))

	if next.repaidAmount.GreaterThanOrEqual(next.TotalRepayable()) {
		next.status = valueobject.LoanStatusCompleted
		next.domainEvents = append(next.domainEvents, event.NewLoanCompleted(l.id, l.borrowerID, next.repaidAmount))
	}

	return next, nil
}

// ---------------------------------------------------------------------------
// Derived values
// ---------------------------------------------------------------------------

// TotalRepayable is principal plus simple interest over the loan term.
func (l Loan) TotalRepayable() decimal.Decimal {
	interest := l.principal.Mul(l.interestRatePercent).Div(oneHundred)
	return l.principal.Add(interest)
}

// RemainingBalance is the amount still owed, clamped at zero for display.
func (l Loan) RemainingBalance() decimal.Decimal {
	remaining := l.TotalRepayable().Sub(l.repaidAmount)
	if remaining.IsNegative() {
		return decimal.Zero
	}
	return remaining
}

// IsOverdue reports whether the loan has an unpaid balance past its due date.
// It is a pure predicate; it never mutates status.
func (l Loan) IsOverdue(now time.Time) bool {
	if l.dueDate == nil {
		return false
	}
	if !l.status.IsPayable() {
		return false
	}
	return now.After(*l.dueDate) && l.RemainingBalance().IsPositive()
}

// ---------------------------------------------------------------------------
// Accessors
// ---------------------------------------------------------------------------

func (l Loan) ID() string                            { return l.id }
func (l Loan) BorrowerID() string                    { return l.borrowerID }
func (l Loan) Principal() decimal.Decimal            { return l.principal }
func (l Loan) InterestRatePercent() decimal.Decimal  { return l.interestRatePercent }
func (l Loan) TermDays() int                         { return l.termDays }
func (l Loan) Purpose() string                       { return l.purpose }
func (l Loan) Status() valueobject.LoanStatus        { return l.status }
func (l Loan) AppliedAt() time.Time                  { return l.appliedAt }
func (l Loan) ApprovedAt() *time.Time                { return l.approvedAt }
func (l Loan) DisbursedAt() *time.Time               { return l.disbursedAt }
func (l Loan) DueDate() *time.Time                   { return l.dueDate }
func (l Loan) RepaidAmount() decimal.Decimal         { return l.repaidAmount }
func (l Loan) CreditScore() int                      { return l.creditScore }
func (l Loan) RiskLevel() valueobject.RiskLevel      { return l.riskLevel }
func (l Loan) DecisionReason() string                { return l.decisionReason }
func (l Loan) Version() int                          { return l.version }
func (l Loan) CreatedAt() time.Time                  { return l.createdAt }
func (l Loan) UpdatedAt() time.Time                  { return l.updatedAt }
func (l Loan) DomainEvents() []event.DomainEvent     { return l.domainEvents }

// ClearEvents returns a copy with an empty event list.
func (l Loan) ClearEvents() Loan {
	next := l
	next.domainEvents = nil
	return next
}

func copyEvents(evts []event.DomainEvent) []event.DomainEvent {
	if evts == nil {
		return nil
	}
	out := make([]event.DomainEvent, len(evts))
	copy(out, evts)
	return out
}
