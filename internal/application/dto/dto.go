package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ---------------------------------------------------------------------------
// Request DTOs
// ---------------------------------------------------------------------------

// FeatureSetRequest carries raw behavioural signals for scoring. Optional
// fields use pointers so absence is distinguishable from zero.
type FeatureSetRequest struct {
	AvgMonthlyVolume       decimal.Decimal `json:"avg_monthly_volume"`
	TransactionConsistency float64         `json:"transaction_consistency"`
	BusinessAgeMonths      int             `json:"business_age_months"`
	SavingsRatio           float64         `json:"savings_ratio"`
	LoanHistoryCount       int             `json:"loan_history_count"`
	DefaultRate            float64         `json:"default_rate"`
	ActivityLevel          string          `json:"activity_level"`
	CustomerRating         *float64        `json:"customer_rating,omitempty"`
	TransactionCount30d    int             `json:"transaction_count_30d"`
	IncomeConsistency      float64         `json:"income_consistency_score"`
	HasRegularIncome       bool            `json:"has_regular_income"`
	NegativeBalanceDays    int             `json:"negative_balance_days"`
}

// ScoreBorrowerRequest asks for a credit score for a borrower.
type ScoreBorrowerRequest struct {
	BorrowerID string             `json:"borrower_id"`
	Features   *FeatureSetRequest `json:"features,omitempty"`
}

// CheckEligibilityRequest asks whether a borrower qualifies for an amount.
type CheckEligibilityRequest struct {
	BorrowerID      string             `json:"borrower_id"`
	RequestedAmount decimal.Decimal    `json:"requested_amount"`
	Features        *FeatureSetRequest `json:"features,omitempty"`
}

// SubmitLoanRequest carries the data needed to open a new loan application.
type SubmitLoanRequest struct {
	BorrowerID      string             `json:"borrower_id"`
	RequestedAmount decimal.Decimal    `json:"requested_amount"`
	TermDays        int                `json:"term_days"`
	Purpose         string             `json:"purpose"`
	Features        *FeatureSetRequest `json:"features,omitempty"`
}

// DecideLoanRequest triggers the approve-or-reject decision on a pending loan.
type DecideLoanRequest struct {
	LoanID string `json:"loan_id"`
}

// DisburseLoanRequest releases funds for an approved loan.
type DisburseLoanRequest struct {
	LoanID string `json:"loan_id"`
}

// RecordRepaymentRequest applies a repayment against a loan. ReceiptRef is
// the external idempotency key; retried callbacks reuse it.
type RecordRepaymentRequest struct {
	LoanID     string          `json:"loan_id"`
	Amount     decimal.Decimal `json:"amount"`
	ReceiptRef string          `json:"receipt_ref"`
}

// MarkDefaultRequest marks a disbursed loan as defaulted.
type MarkDefaultRequest struct {
	LoanID string `json:"loan_id"`
	Reason string `json:"reason"`
}

// GetLoanRequest identifies a loan to retrieve.
type GetLoanRequest struct {
	LoanID string `json:"loan_id"`
}

// QuoteRepaymentRequest asks for a what-if repayment schedule without
// creating a loan.
type QuoteRepaymentRequest struct {
	BorrowerID      string             `json:"borrower_id"`
	RequestedAmount decimal.Decimal    `json:"requested_amount"`
	TermMonths      int                `json:"term_months"`
	Features        *FeatureSetRequest `json:"features,omitempty"`
}

// ---------------------------------------------------------------------------
// Response DTOs
// ---------------------------------------------------------------------------

// ScoreFactorResponse is one named delta in a score breakdown.
type ScoreFactorResponse struct {
	Name   string `json:"name"`
	Points int    `json:"points"`
}

// ScoreResponse is the external representation of a scoring pass.
type ScoreResponse struct {
	BorrowerID  string                `json:"borrower_id"`
	RuleVersion string                `json:"rule_version"`
	Base        int                   `json:"base"`
	Factors     []ScoreFactorResponse `json:"factors"`
	RuleScore   int                   `json:"rule_score"`
	ModelScore  float64               `json:"model_score,omitempty"`
	ModelUsed   bool                  `json:"model_used"`
	FinalScore  int                   `json:"final_score"`
	RiskLevel   string                `json:"risk_level"`
}

// EligibilityResponse is the external representation of an eligibility check.
type EligibilityResponse struct {
	BorrowerID          string          `json:"borrower_id"`
	Approved            bool            `json:"approved"`
	Score               int             `json:"score"`
	MaxAmount           decimal.Decimal `json:"max_amount"`
	InterestRatePercent decimal.Decimal `json:"interest_rate_percent"`
	TermMonths          int             `json:"term_months"`
	RiskLevel           string          `json:"risk_level"`
	Reason              string          `json:"reason"`
	SuggestedAmount     decimal.Decimal `json:"suggested_amount"`
}

// LoanResponse is the external representation of a loan.
type LoanResponse struct {
	ID                  string          `json:"id"`
	BorrowerID          string          `json:"borrower_id"`
	Principal           decimal.Decimal `json:"principal"`
	InterestRatePercent decimal.Decimal `json:"interest_rate_percent"`
	TermDays            int             `json:"term_days"`
	Purpose             string          `json:"purpose,omitempty"`
	Status              string          `json:"status"`
	CreditScore         int             `json:"credit_score"`
	RiskLevel           string          `json:"risk_level"`
	DecisionReason      string          `json:"decision_reason,omitempty"`
	RepaidAmount        decimal.Decimal `json:"repaid_amount"`
	TotalRepayable      decimal.Decimal `json:"total_repayable"`
	RemainingBalance    decimal.Decimal `json:"remaining_balance"`
	Overdue             bool            `json:"overdue"`
	AppliedAt           time.Time       `json:"applied_at"`
	ApprovedAt          *time.Time      `json:"approved_at,omitempty"`
	DisbursedAt         *time.Time      `json:"disbursed_at,omitempty"`
	DueDate             *time.Time      `json:"due_date,omitempty"`
}

// RepaymentResponse is the external representation of a recorded repayment.
type RepaymentResponse struct {
	ID               string          `json:"id"`
	LoanID           string          `json:"loan_id"`
	Amount           decimal.Decimal `json:"amount"`
	ReceiptRef       string          `json:"receipt_ref"`
	RecordedAt       time.Time       `json:"recorded_at"`
	LoanStatus       string          `json:"loan_status"`
	RepaidAmount     decimal.Decimal `json:"repaid_amount"`
	RemainingBalance decimal.Decimal `json:"remaining_balance"`
}

// QuoteResponse is the external representation of a what-if repayment quote.
type QuoteResponse struct {
	BorrowerID          string          `json:"borrower_id"`
	Score               int             `json:"score"`
	InterestRatePercent decimal.Decimal `json:"interest_rate_percent"`
	TermMonths          int             `json:"term_months"`
	MonthlyInstalment   decimal.Decimal `json:"monthly_instalment"`
	TotalRepayable      decimal.Decimal `json:"total_repayable"`
}
