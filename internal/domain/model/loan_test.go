package model_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kopacap/lending/internal/domain/model"
	"github.com/kopacap/lending/internal/domain/valueobject"
)

var testTime = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func newPendingLoan(t *testing.T) model.Loan {
	t.Helper()
	loan, err := model.NewLoan(
		"borrower-1",
		decimal.NewFromInt(10_000),
		90,
		"inventory purchase",
		75,
		valueobject.RiskLevelMedium,
		testTime,
	)
	require.NoError(t, err)
	return loan
}

func approveLoan(t *testing.T, loan model.Loan) model.Loan {
	t.Helper()
	approved, err := loan.Approve(
		decimal.NewFromFloat(9.9), 75, valueobject.RiskLevelMedium, "good credit history", testTime,
	)
	require.NoError(t, err)
	return approved
}

func disburseLoan(t *testing.T, loan model.Loan) model.Loan {
	t.Helper()
	disbursed, err := loan.Disburse(testTime)
	require.NoError(t, err)
	return disbursed
}

func newTestRepayment(t *testing.T, loanID string, amount int64, ref string) model.Repayment {
	t.Helper()
	rep, err := model.NewRepayment(loanID, decimal.NewFromInt(amount), ref, testTime)
	require.NoError(t, err)
	return rep
}

func TestNewLoan(t *testing.T) {
	loan := newPendingLoan(t)

	assert.NotEmpty(t, loan.ID())
	assert.Equal(t, "borrower-1", loan.BorrowerID())
	assert.Equal(t, valueobject.LoanStatusPending, loan.Status())
	assert.Equal(t, 90, loan.TermDays())
	assert.Equal(t, 75, loan.CreditScore())
	assert.Equal(t, 1, loan.Version())
	assert.Nil(t, loan.ApprovedAt())
	assert.Nil(t, loan.DueDate())
	assert.True(t, loan.RepaidAmount().IsZero())

	events := loan.DomainEvents()
	require.Len(t, events, 1)
	assert.Equal(t, "lending.loan.applied", events[0].EventType())
}

func TestNewLoanValidation(t *testing.T) {
	tests := []struct {
		name       string
		borrowerID string
		principal  decimal.Decimal
		termDays   int
		score      int
		field      string
	}{
		{"empty borrower", "", decimal.NewFromInt(1000), 30, 50, "borrower_id"},
		{"zero principal", "b-1", decimal.Zero, 30, 50, "principal"},
		{"negative principal", "b-1", decimal.NewFromInt(-5), 30, 50, "principal"},
		{"zero term", "b-1", decimal.NewFromInt(1000), 0, 50, "term_days"},
		{"score above range", "b-1", decimal.NewFromInt(1000), 30, 101, "credit_score"},
		{"score below range", "b-1", decimal.NewFromInt(1000), 30, -1, "credit_score"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := model.NewLoan(
				tt.borrowerID, tt.principal, tt.termDays, "", tt.score,
				valueobject.RiskLevelMedium, testTime,
			)
			var verr *valueobject.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.field, verr.Field)
		})
	}
}

func TestApprove(t *testing.T) {
	loan := newPendingLoan(t).ClearEvents()

	approved, err := loan.Approve(
		decimal.NewFromFloat(9.9), 80, valueobject.RiskLevelLow, "excellent credit profile", testTime,
	)
	require.NoError(t, err)

	assert.Equal(t, valueobject.LoanStatusApproved, approved.Status())
	assert.True(t, decimal.NewFromFloat(9.9).Equal(approved.InterestRatePercent()))
	assert.Equal(t, 80, approved.CreditScore())
	assert.Equal(t, valueobject.RiskLevelLow, approved.RiskLevel())
	assert.Equal(t, "excellent credit profile", approved.DecisionReason())

	require.NotNil(t, approved.ApprovedAt())
	require.NotNil(t, approved.DueDate())
	assert.Equal(t, testTime.AddDate(0, 0, 90), *approved.DueDate())

	// the receiver is untouched
	assert.Equal(t, valueobject.LoanStatusPending, loan.Status())
	assert.Nil(t, loan.DueDate())

	events := approved.DomainEvents()
	require.Len(t, events, 1)
	assert.Equal(t, "lending.loan.approved", events[0].EventType())
}

func TestReject(t *testing.T) {
	loan := newPendingLoan(t).ClearEvents()

	rejected, err := loan.Reject("credit score below minimum threshold", testTime)
	require.NoError(t, err)

	assert.Equal(t, valueobject.LoanStatusRejected, rejected.Status())
	assert.Equal(t, "credit score below minimum threshold", rejected.DecisionReason())
	assert.Equal(t, valueobject.LoanStatusPending, loan.Status())

	events := rejected.DomainEvents()
	require.Len(t, events, 1)
	assert.Equal(t, "lending.loan.rejected", events[0].EventType())
}

func TestDisburse(t *testing.T) {
	approved := approveLoan(t, newPendingLoan(t)).ClearEvents()

	disbursed, err := approved.Disburse(testTime)
	require.NoError(t, err)

	assert.Equal(t, valueobject.LoanStatusDisbursed, disbursed.Status())
	require.NotNil(t, disbursed.DisbursedAt())

	events := disbursed.DomainEvents()
	require.Len(t, events, 1)
	assert.Equal(t, "lending.loan.disbursed", events[0].EventType())
}

func TestMarkDefaulted(t *testing.T) {
	disbursed := disburseLoan(t, approveLoan(t, newPendingLoan(t))).ClearEvents()

	defaulted, err := disbursed.MarkDefaulted(testTime)
	require.NoError(t, err)

	assert.Equal(t, valueobject.LoanStatusDefaulted, defaulted.Status())

	events := defaulted.DomainEvents()
	require.Len(t, events, 1)
	assert.Equal(t, "lending.loan.defaulted", events[0].EventType())
}

func TestInvalidTransitions(t *testing.T) {
	pending := newPendingLoan(t)
	approved := approveLoan(t, pending)
	disbursed := disburseLoan(t, approved)

	tests := []struct {
		name string
		run  func() (model.Loan, error)
		from model.Loan
	}{
		{"approve twice", func() (model.Loan, error) {
			return approved.Approve(decimal.NewFromFloat(9.9), 75, valueobject.RiskLevelMedium, "", testTime)
		}, approved},
		{"reject approved", func() (model.Loan, error) {
			return approved.Reject("too late", testTime)
		}, approved},
		{"disburse pending", func() (model.Loan, error) {
			return pending.Disburse(testTime)
		}, pending},
		{"disburse twice", func() (model.Loan, error) {
			return disbursed.Disburse(testTime)
		}, disbursed},
		{"default pending", func() (model.Loan, error) {
			return pending.MarkDefaulted(testTime)
		}, pending},
		{"default approved", func() (model.Loan, error) {
			return approved.MarkDefaulted(testTime)
		}, approved},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.run()
			require.ErrorIs(t, err, valueobject.ErrInvalidStatusTransition)
			assert.Equal(t, tt.from.Status(), got.Status())
			assert.Equal(t, tt.from.UpdatedAt(), got.UpdatedAt())
		})
	}
}

func TestApplyRepaymentPartial(t *testing.T) {
	disbursed := disburseLoan(t, approveLoan(t, newPendingLoan(t))).ClearEvents()
	rep := newTestRepayment(t, disbursed.ID(), 4_000, "rcpt-001")

	updated, err := disbursed.ApplyRepayment(rep, testTime)
	require.NoError(t, err)

	// total repayable = 10000 * 1.099 = 10990
	assert.Equal(t, valueobject.LoanStatusDisbursed, updated.Status())
	assert.True(t, decimal.NewFromInt(4_000).Equal(updated.RepaidAmount()))
	assert.True(t, decimal.NewFromInt(6_990).Equal(updated.RemainingBalance()))

	events := updated.DomainEvents()
	require.Len(t, events, 1)
	assert.Equal(t, "lending.repayment.recorded", events[0].EventType())
}

func TestApplyRepaymentCompletes(t *testing.T) {
	disbursed := disburseLoan(t, approveLoan(t, newPendingLoan(t))).ClearEvents()
	rep := newTestRepayment(t, disbursed.ID(), 10_990, "rcpt-full")

	updated, err := disbursed.ApplyRepayment(rep, testTime)
	require.NoError(t, err)

	assert.Equal(t, valueobject.LoanStatusCompleted, updated.Status())
	assert.True(t, updated.RemainingBalance().IsZero())

	events := updated.DomainEvents()
	require.Len(t, events, 2)
	assert.Equal(t, "lending.repayment.recorded", events[0].EventType())
	assert.Equal(t, "lending.loan.completed", events[1].EventType())
}

func TestApplyRepaymentOverpayment(t *testing.T) {
	disbursed := disburseLoan(t, approveLoan(t, newPendingLoan(t))).ClearEvents()
	rep := newTestRepayment(t, disbursed.ID(), 12_000, "rcpt-over")

	updated, err := disbursed.ApplyRepayment(rep, testTime)
	require.NoError(t, err)

	assert.Equal(t, valueobject.LoanStatusCompleted, updated.Status())
	assert.True(t, decimal.NewFromInt(12_000).Equal(updated.RepaidAmount()))
	// remaining balance never goes negative
	assert.True(t, updated.RemainingBalance().IsZero())
}

func TestApplyRepaymentFromApproved(t *testing.T) {
	// repayments before disbursement are allowed; an early full repayment
	// completes the loan directly from APPROVED
	approved := approveLoan(t, newPendingLoan(t)).ClearEvents()
	rep := newTestRepayment(t, approved.ID(), 10_990, "rcpt-early")

	updated, err := approved.ApplyRepayment(rep, testTime)
	require.NoError(t, err)
	assert.Equal(t, valueobject.LoanStatusCompleted, updated.Status())
}

func TestApplyRepaymentRejectsNonPayableStatus(t *testing.T) {
	pending := newPendingLoan(t).ClearEvents()
	rep := newTestRepayment(t, pending.ID(), 1_000, "rcpt-x")

	_, err := pending.ApplyRepayment(rep, testTime)
	require.ErrorIs(t, err, valueobject.ErrLoanNotPayable)

	rejected, err := pending.Reject("no", testTime)
	require.NoError(t, err)
	_, err = rejected.ApplyRepayment(rep, testTime)
	require.ErrorIs(t, err, valueobject.ErrLoanNotPayable)
}

func TestApplyRepaymentRejectsForeignLoan(t *testing.T) {
	disbursed := disburseLoan(t, approveLoan(t, newPendingLoan(t))).ClearEvents()
	rep := newTestRepayment(t, "some-other-loan", 1_000, "rcpt-y")

	_, err := disbursed.ApplyRepayment(rep, testTime)
	var verr *valueobject.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "loan_id", verr.Field)
}

func TestIsOverdue(t *testing.T) {
	disbursed := disburseLoan(t, approveLoan(t, newPendingLoan(t))).ClearEvents()
	due := *disbursed.DueDate()

	assert.False(t, disbursed.IsOverdue(due), "not overdue on the due date itself")
	assert.True(t, disbursed.IsOverdue(due.Add(24*time.Hour)))

	// a fully repaid loan is never overdue
	rep := newTestRepayment(t, disbursed.ID(), 10_990, "rcpt-paid")
	completed, err := disbursed.ApplyRepayment(rep, testTime)
	require.NoError(t, err)
	assert.False(t, completed.IsOverdue(due.Add(24*time.Hour)))

	// a pending loan has no due date yet
	assert.False(t, newPendingLoan(t).IsOverdue(testTime))
}

func TestClearEvents(t *testing.T) {
	loan := newPendingLoan(t)
	require.NotEmpty(t, loan.DomainEvents())
	assert.Empty(t, loan.ClearEvents().DomainEvents())
	// ClearEvents is itself non-mutating
	assert.NotEmpty(t, loan.DomainEvents())
}
