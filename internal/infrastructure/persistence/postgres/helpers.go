package postgres

import (
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"

	"github.com/kopacap/lending/internal/domain/model"
	"github.com/kopacap/lending/internal/domain/valueobject"
)

// scannable abstracts pgx.Row and pgx.Rows for shared scan helpers.
type scannable interface {
	Scan(dest ...any) error
}

const loanColumns = `
	id, borrower_id, principal, interest_rate_percent, term_days, purpose,
	status, applied_at, approved_at, disbursed_at, due_date,
	repaid_amount, credit_score, risk_level, decision_reason,
	version, created_at, updated_at`

func scanLoanRow(s scannable) (model.Loan, error) {
	var (
		id, borrowerID                   string
		principal, interestRatePercent   decimal.Decimal
		termDays                         int
		purpose, statusStr               string
		appliedAt                        time.Time
		approvedAt, disbursedAt, dueDate *time.Time
		repaidAmount                     decimal.Decimal
		creditScore                      int
		riskLevelStr, decisionReason     string
		version                          int
		createdAt, updatedAt             time.Time
	)

	err := s.Scan(
		&id, &borrowerID, &principal, &interestRatePercent, &termDays, &purpose,
		&statusStr, &appliedAt, &approvedAt, &disbursedAt, &dueDate,
		&repaidAmount, &creditScore, &riskLevelStr, &decisionReason,
		&version, &createdAt, &updatedAt,
	)
	if err != nil {
		return model.Loan{}, fmt.Errorf("scan loan: %w", err)
	}

	status, err := valueobject.NewLoanStatus(statusStr)
	if err != nil {
		return model.Loan{}, fmt.Errorf("parse loan status: %w", err)
	}
	riskLevel, err := valueobject.NewRiskLevel(riskLevelStr)
	if err != nil {
		return model.Loan{}, fmt.Errorf("parse risk level: %w", err)
	}

	return model.ReconstructLoan(
		id, borrowerID,
		principal, interestRatePercent,
		termDays, purpose,
		status, appliedAt,
		approvedAt, disbursedAt, dueDate,
		repaidAmount, creditScore, riskLevel, decisionReason,
		version, createdAt, updatedAt,
	), nil
}

func scanRepaymentRow(s scannable) (model.Repayment, error) {
	var (
		id, loanID string
		amount     decimal.Decimal
		receiptRef string
		recordedAt time.Time
	)
	if err := s.Scan(&id, &loanID, &amount, &receiptRef, &recordedAt); err != nil {
		return model.Repayment{}, fmt.Errorf("scan repayment: %w", err)
	}
	return model.ReconstructRepayment(id, loanID, amount, receiptRef, recordedAt), nil
}

// isUniqueViolation reports whether err is a PostgreSQL unique constraint
// violation (SQLSTATE 23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
