package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kopacap/lending/internal/domain/model"
	"github.com/kopacap/lending/internal/domain/valueobject"
)

// LoanRepo implements port.LoanRepository.
type LoanRepo struct {
	pool *pgxpool.Pool
}

// NewLoanRepo creates a new PostgreSQL-backed loan repository.
func NewLoanRepo(pool *pgxpool.Pool) *LoanRepo {
	return &LoanRepo{pool: pool}
}

// Save upserts a loan under optimistic locking. The update only lands when
// the stored version matches the version the aggregate was loaded at; a
// stale write returns ErrVersionConflict.
func (r *LoanRepo) Save(ctx context.Context, loan model.Loan) error {
	query := `
		INSERT INTO loans (
			id, borrower_id, principal, interest_rate_percent, term_days, purpose,
			status, applied_at, approved_at, disbursed_at, due_date,
			repaid_amount, credit_score, risk_level, decision_reason,
			version, created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18)
		ON CONFLICT (id) DO UPDATE SET
			status                = EXCLUDED.status,
			interest_rate_percent = EXCLUDED.interest_rate_percent,
			approved_at           = EXCLUDED.approved_at,
			disbursed_at          = EXCLUDED.disbursed_at,
			due_date              = EXCLUDED.due_date,
			repaid_amount         = EXCLUDED.repaid_amount,
			credit_score          = EXCLUDED.credit_score,
			risk_level            = EXCLUDED.risk_level,
			decision_reason       = EXCLUDED.decision_reason,
			version               = loans.version + 1,
			updated_at            = EXCLUDED.updated_at
		WHERE loans.version = $16
	`
	tag, err := r.pool.Exec(ctx, query,
		loan.ID(), loan.BorrowerID(), loan.Principal(), loan.InterestRatePercent(),
		loan.TermDays(), loan.Purpose(),
		loan.Status().String(), loan.AppliedAt(), loan.ApprovedAt(), loan.DisbursedAt(), loan.DueDate(),
		loan.RepaidAmount(), loan.CreditScore(), loan.RiskLevel().String(), loan.DecisionReason(),
		loan.Version(), loan.CreatedAt(), loan.UpdatedAt(),
	)
	if err != nil {
		return fmt.Errorf("save loan: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return valueobject.ErrVersionConflict
	}
	return nil
}

// FindByID retrieves a loan by id.
func (r *LoanRepo) FindByID(ctx context.Context, id string) (model.Loan, error) {
	query := `SELECT` + loanColumns + ` FROM loans WHERE id = $1`
	loan, err := scanLoanRow(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Loan{}, valueobject.ErrLoanNotFound
		}
		return model.Loan{}, err
	}
	return loan, nil
}

// FindByBorrowerID retrieves all loans for a borrower, newest first.
func (r *LoanRepo) FindByBorrowerID(ctx context.Context, borrowerID string) ([]model.Loan, error) {
	query := `SELECT` + loanColumns + ` FROM loans WHERE borrower_id = $1 ORDER BY created_at DESC`
	return r.queryLoans(ctx, query, borrowerID)
}

// FindOpenByBorrowerID retrieves the borrower's loans still in flight.
func (r *LoanRepo) FindOpenByBorrowerID(ctx context.Context, borrowerID string) ([]model.Loan, error) {
	query := `SELECT` + loanColumns + `
		FROM loans
		WHERE borrower_id = $1 AND status IN ('PENDING','APPROVED','DISBURSED')
		ORDER BY created_at DESC`
	return r.queryLoans(ctx, query, borrowerID)
}

func (r *LoanRepo) queryLoans(ctx context.Context, query string, args ...any) ([]model.Loan, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query loans: %w", err)
	}
	defer rows.Close()

	var loans []model.Loan
	for rows.Next() {
		loan, err := scanLoanRow(rows)
		if err != nil {
			return nil, err
		}
		loans = append(loans, loan)
	}
	return loans, rows.Err()
}
