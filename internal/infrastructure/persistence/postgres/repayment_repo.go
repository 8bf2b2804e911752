package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kopacap/lending/internal/domain/model"
	"github.com/kopacap/lending/internal/domain/valueobject"
	pgutil "github.com/kopacap/lending/pkg/postgres"
)

// RepaymentRepo implements port.RepaymentRepository.
type RepaymentRepo struct {
	pool *pgxpool.Pool
}

// NewRepaymentRepo creates a new PostgreSQL-backed repayment repository.
func NewRepaymentRepo(pool *pgxpool.Pool) *RepaymentRepo {
	return &RepaymentRepo{pool: pool}
}

// Record writes the repayment and the updated loan in one transaction. The
// unique index on receipt_ref is the idempotency guarantee; the version
// check on loans serializes concurrent repayments against the same loan.
func (r *RepaymentRepo) Record(ctx context.Context, rep model.Repayment, loan model.Loan) error {
	return pgutil.WithTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		insert := `
			INSERT INTO repayments (id, loan_id, amount, receipt_ref, recorded_at)
			VALUES ($1, $2, $3, $4, $5)
		`
		if _, err := tx.Exec(ctx, insert,
			rep.ID(), rep.LoanID(), rep.Amount(), rep.ReceiptRef(), rep.RecordedAt(),
		); err != nil {
			if isUniqueViolation(err) {
				return valueobject.ErrDuplicateReceipt
			}
			return fmt.Errorf("insert repayment: %w", err)
		}

		update := `
			UPDATE loans SET
				status        = $2,
				repaid_amount = $3,
				version       = loans.version + 1,
				updated_at    = $4
			WHERE id = $1 AND version = $5
		`
		tag, err := tx.Exec(ctx, update,
			loan.ID(), loan.Status().String(), loan.RepaidAmount(), loan.UpdatedAt(), loan.Version(),
		)
		if err != nil {
			return fmt.Errorf("update loan balance: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return valueobject.ErrVersionConflict
		}
		return nil
	})
}

// FindByReceiptRef looks up a repayment by its external receipt reference.
func (r *RepaymentRepo) FindByReceiptRef(ctx context.Context, receiptRef string) (model.Repayment, bool, error) {
	query := `
		SELECT id, loan_id, amount, receipt_ref, recorded_at
		FROM repayments
		WHERE receipt_ref = $1
	`
	rep, err := scanRepaymentRow(r.pool.QueryRow(ctx, query, receiptRef))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Repayment{}, false, nil
		}
		return model.Repayment{}, false, err
	}
	return rep, true, nil
}

// ListByLoanID returns all repayments for a loan in recording order.
func (r *RepaymentRepo) ListByLoanID(ctx context.Context, loanID string) ([]model.Repayment, error) {
	query := `
		SELECT id, loan_id, amount, receipt_ref, recorded_at
		FROM repayments
		WHERE loan_id = $1
		ORDER BY recorded_at, id
	`
	rows, err := r.pool.Query(ctx, query, loanID)
	if err != nil {
		return nil, fmt.Errorf("query repayments: %w", err)
	}
	defer rows.Close()

	var reps []model.Repayment
	for rows.Next() {
		rep, err := scanRepaymentRow(rows)
		if err != nil {
			return nil, err
		}
		reps = append(reps, rep)
	}
	return reps, rows.Err()
}
