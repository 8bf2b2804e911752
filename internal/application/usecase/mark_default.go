package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/kopacap/lending/internal/application/dto"
	"github.com/kopacap/lending/internal/domain/port"
)

// MarkDefaultUseCase marks a disbursed loan as defaulted. Overdue detection
// is advisory; default is an explicit operator or collections decision and
// never fires automatically.
type MarkDefaultUseCase struct {
	loanRepo  port.LoanRepository
	publisher port.EventPublisher
}

// NewMarkDefaultUseCase wires dependencies.
func NewMarkDefaultUseCase(
	loanRepo port.LoanRepository,
	publisher port.EventPublisher,
) *MarkDefaultUseCase {
	return &MarkDefaultUseCase{
		loanRepo:  loanRepo,
		publisher: publisher,
	}
}

// Execute transitions DISBURSED -> DEFAULTED.
func (uc *MarkDefaultUseCase) Execute(
	ctx context.Context,
	req dto.MarkDefaultRequest,
) (dto.LoanResponse, error) {
	now := time.Now().UTC()

	loan, err := uc.loanRepo.FindByID(ctx, req.LoanID)
	if err != nil {
		return dto.LoanResponse{}, fmt.Errorf("find loan: %w", err)
	}

	loan, err = loan.MarkDefaulted(now)
	if err != nil {
		return dto.LoanResponse{}, fmt.Errorf("mark defaulted: %w", err)
	}

	if err := uc.loanRepo.Save(ctx, loan); err != nil {
		return dto.LoanResponse{}, fmt.Errorf("save loan: %w", err)
	}

	if err := uc.publisher.Publish(ctx, loan.DomainEvents()...); err != nil {
		return dto.LoanResponse{}, fmt.Errorf("publish events: %w", err)
	}

	return loanToResponse(loan, now), nil
}
