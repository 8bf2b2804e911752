package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/kopacap/lending/internal/application/dto"
	"github.com/kopacap/lending/internal/domain/model"
	"github.com/kopacap/lending/internal/domain/port"
	"github.com/kopacap/lending/internal/domain/valueobject"
	"github.com/kopacap/lending/pkg/observability"
)

// maxRecordAttempts bounds the optimistic-lock retry loop. Two concurrent
// repayments against the same loan serialize through the version column; the
// loser re-reads and retries.
const maxRecordAttempts = 3

// RecordRepaymentUseCase applies a repayment against a loan, with receipt
// idempotency and ledger-driven completion.
type RecordRepaymentUseCase struct {
	loanRepo      port.LoanRepository
	repaymentRepo port.RepaymentRepository
	publisher     port.EventPublisher
}

// NewRecordRepaymentUseCase wires dependencies.
func NewRecordRepaymentUseCase(
	loanRepo port.LoanRepository,
	repaymentRepo port.RepaymentRepository,
	publisher port.EventPublisher,
) *RecordRepaymentUseCase {
	return &RecordRepaymentUseCase{
		loanRepo:      loanRepo,
		repaymentRepo: repaymentRepo,
		publisher:     publisher,
	}
}

// Execute records the repayment. The same receipt reference recorded twice
// yields exactly one stored repayment; the second call fails with
// ErrDuplicateReceipt. A repayment that clears the balance completes the
// loan in the same write.
func (uc *RecordRepaymentUseCase) Execute(
	ctx context.Context,
	req dto.RecordRepaymentRequest,
) (dto.RepaymentResponse, error) {
	now := time.Now().UTC()

	// Fast-path duplicate check. The unique index on receipt_ref is the
	// real guarantee; this only avoids burning a write on obvious retries.
	if _, found, err := uc.repaymentRepo.FindByReceiptRef(ctx, req.ReceiptRef); err != nil {
		return dto.RepaymentResponse{}, fmt.Errorf("check receipt: %w", err)
	} else if found {
		observability.DuplicateReceipts.Inc()
		return dto.RepaymentResponse{}, valueobject.ErrDuplicateReceipt
	}

	var (
		loan model.Loan
		rep  model.Repayment
	)
	for attempt := 1; ; attempt++ {
		var err error
		loan, err = uc.loanRepo.FindByID(ctx, req.LoanID)
		if err != nil {
			return dto.RepaymentResponse{}, fmt.Errorf("find loan: %w", err)
		}

		rep, err = model.NewRepayment(loan.ID(), req.Amount, req.ReceiptRef, now)
		if err != nil {
			return dto.RepaymentResponse{}, fmt.Errorf("create repayment: %w", err)
		}

		loan, err = loan.ApplyRepayment(rep, now)
		if err != nil {
			return dto.RepaymentResponse{}, fmt.Errorf("apply repayment: %w", err)
		}

		err = uc.repaymentRepo.Record(ctx, rep, loan)
		if err == nil {
			break
		}
		if errors.Is(err, valueobject.ErrDuplicateReceipt) {
			observability.DuplicateReceipts.Inc()
			return dto.RepaymentResponse{}, valueobject.ErrDuplicateReceipt
		}
		if errors.Is(err, valueobject.ErrVersionConflict) && attempt < maxRecordAttempts {
			observability.VersionConflictRetries.Inc()
			continue
		}
		return dto.RepaymentResponse{}, fmt.Errorf("record repayment: %w", err)
	}

	observability.RepaymentsRecorded.Inc()

	if err := uc.publisher.Publish(ctx, loan.DomainEvents()...); err != nil {
		return dto.RepaymentResponse{}, fmt.Errorf("publish events: %w", err)
	}

	return dto.RepaymentResponse{
		ID:               rep.ID(),
		LoanID:           loan.ID(),
		Amount:           rep.Amount(),
		ReceiptRef:       rep.ReceiptRef(),
		RecordedAt:       rep.RecordedAt(),
		LoanStatus:       loan.Status().String(),
		RepaidAmount:     loan.RepaidAmount(),
		RemainingBalance: loan.RemainingBalance(),
	}, nil
}
