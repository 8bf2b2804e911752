package event

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/kopacap/lending/pkg/events"
)

// DomainEvent is an alias for the shared pkg/events.DomainEvent interface.
type DomainEvent = events.DomainEvent

// ---------------------------------------------------------------------------
// Loan lifecycle events
// ---------------------------------------------------------------------------

// LoanApplied is raised when a new application enters the system.
type LoanApplied struct {
	events.BaseEvent
	BorrowerID      string          `json:"borrower_id"`
	RequestedAmount decimal.Decimal `json:"requested_amount"`
	TermDays        int             `json:"term_days"`
	CreditScore     int             `json:"credit_score"`
	RiskLevel       string          `json:"risk_level"`
}

func NewLoanApplied(loanID, borrowerID string, amount decimal.Decimal, termDays, creditScore int, riskLevel string) LoanApplied {
	return LoanApplied{
		BaseEvent:       events.NewBaseEvent("lending.loan.applied", loanID, "Loan"),
		BorrowerID:      borrowerID,
		RequestedAmount: amount,
		TermDays:        termDays,
		CreditScore:     creditScore,
		RiskLevel:       riskLevel,
	}
}

// LoanApproved is raised when a pending loan is approved.
type LoanApproved struct {
	events.BaseEvent
	BorrowerID          string          `json:"borrower_id"`
	InterestRatePercent decimal.Decimal `json:"interest_rate_percent"`
	DueDate             time.Time       `json:"due_date"`
	CreditScore         int             `json:"credit_score"`
	Reason              string          `json:"reason"`
}

func NewLoanApproved(loanID, borrowerID string, rate decimal.Decimal, dueDate time.Time, creditScore int, reason string) LoanApproved {
	return LoanApproved{
		BaseEvent:           events.NewBaseEvent("lending.loan.approved", loanID, "Loan"),
		BorrowerID:          borrowerID,
		InterestRatePercent: rate,
		DueDate:             dueDate,
		CreditScore:         creditScore,
		Reason:              reason,
	}
}

// LoanRejected is raised when a pending loan is rejected.
type LoanRejected struct {
	events.BaseEvent
	BorrowerID string `json:"borrower_id"`
	Reason     string `json:"reason"`
}

func NewLoanRejected(loanID, borrowerID, reason string) LoanRejected {
	return LoanRejected{
		BaseEvent:  events.NewBaseEvent("lending.loan.rejected", loanID, "Loan"),
		BorrowerID: borrowerID,
		Reason:     reason,
	}
}

// LoanDisbursed is raised when funds are released to the borrower.
type LoanDisbursed struct {
	events.BaseEvent
	BorrowerID string          `json:"borrower_id"`
	Principal  decimal.Decimal `json:"principal"`
}

func NewLoanDisbursed(loanID, borrowerID string, principal decimal.Decimal) LoanDisbursed {
	return LoanDisbursed{
		BaseEvent:  events.NewBaseEvent("lending.loan.disbursed", loanID, "Loan"),
		BorrowerID: borrowerID,
		Principal:  principal,
	}
}

// LoanCompleted is raised when the running balance reaches the total repayable.
type LoanCompleted struct {
	events.BaseEvent
	BorrowerID   string          `json:"borrower_id"`
	RepaidAmount decimal.Decimal `json:"repaid_amount"`
}

func NewLoanCompleted(loanID, borrowerID string, repaid decimal.Decimal) LoanCompleted {
	return LoanCompleted{
		BaseEvent:    events.NewBaseEvent("lending.loan.completed", loanID, "Loan"),
		BorrowerID:   borrowerID,
		RepaidAmount: repaid,
	}
}

// LoanDefaulted is raised on an explicit operator default decision.
type LoanDefaulted struct {
	events.BaseEvent
	BorrowerID       string          `json:"borrower_id"`
	RemainingBalance decimal.Decimal `json:"remaining_balance"`
}

func NewLoanDefaulted(loanID, borrowerID string, remaining decimal.Decimal) LoanDefaulted {
	return LoanDefaulted{
		BaseEvent:        events.NewBaseEvent("lending.loan.defaulted", loanID, "Loan"),
		BorrowerID:       borrowerID,
		RemainingBalance: remaining,
	}
}

// RepaymentRecorded is raised when the ledger accepts a repayment.
type RepaymentRecorded struct {
	events.BaseEvent
	RepaymentID string          `json:"repayment_id"`
	ReceiptRef  string          `json:"receipt_ref"`
	Amount      decimal.Decimal `json:"amount"`
	RepaidTotal decimal.Decimal `json:"repaid_total"`
}

func NewRepaymentRecorded(loanID, repaymentID, receiptRef string, amount, repaidTotal decimal.Decimal) RepaymentRecorded {
	return RepaymentRecorded{
		BaseEvent:   events.NewBaseEvent("lending.repayment.recorded", loanID, "Loan"),
		RepaymentID: repaymentID,
		ReceiptRef:  receiptRef,
		Amount:      amount,
		RepaidTotal: repaidTotal,
	}
}
