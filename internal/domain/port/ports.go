package port

import (
	"context"

	"github.com/kopacap/lending/internal/domain/event"
	"github.com/kopacap/lending/internal/domain/model"
	"github.com/kopacap/lending/internal/domain/valueobject"
)

// ---------------------------------------------------------------------------
// Repository ports (driven/secondary adapters)
// ---------------------------------------------------------------------------

// LoanRepository persists and retrieves loans. Save enforces optimistic
// locking: a write against a stale version returns ErrVersionConflict.
type LoanRepository interface {
	Save(ctx context.Context, loan model.Loan) error
	FindByID(ctx context.Context, id string) (model.Loan, error)
	FindByBorrowerID(ctx context.Context, borrowerID string) ([]model.Loan, error)
	// FindOpenByBorrowerID returns loans still in flight (PENDING, APPROVED
	// or DISBURSED) for the borrower.
	FindOpenByBorrowerID(ctx context.Context, borrowerID string) ([]model.Loan, error)
}

// RepaymentRepository persists repayments. Record writes the repayment and
// the updated loan atomically; a duplicate receipt reference returns
// ErrDuplicateReceipt, a stale loan version ErrVersionConflict.
type RepaymentRepository interface {
	Record(ctx context.Context, rep model.Repayment, loan model.Loan) error
	FindByReceiptRef(ctx context.Context, receiptRef string) (model.Repayment, bool, error)
	ListByLoanID(ctx context.Context, loanID string) ([]model.Repayment, error)
}

// ---------------------------------------------------------------------------
// Event publisher port
// ---------------------------------------------------------------------------

// EventPublisher publishes domain events to external consumers.
type EventPublisher interface {
	Publish(ctx context.Context, events ...event.DomainEvent) error
}

// ---------------------------------------------------------------------------
// External service ports
// ---------------------------------------------------------------------------

// FeatureSource supplies the already-validated FeatureSet for a borrower.
// The core never fetches transaction data itself.
type FeatureSource interface {
	Fetch(ctx context.Context, borrowerID string) (valueobject.FeatureSet, error)
}

// ScoreEstimator produces a statistical score estimate in [0,100] for a
// feature set. Implementations may fail; the scoring engine degrades to
// rule-based scoring when they do.
type ScoreEstimator interface {
	Estimate(features valueobject.FeatureSet) (float64, error)
}
