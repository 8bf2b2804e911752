package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/kopacap/lending/internal/application/dto"
	"github.com/kopacap/lending/internal/domain/model"
	"github.com/kopacap/lending/internal/domain/port"
	"github.com/kopacap/lending/internal/domain/service"
	"github.com/kopacap/lending/internal/domain/valueobject"
)

// SubmitLoanUseCase opens a new loan application in PENDING status. The
// application is scored and risk-classified on the spot; approval is a
// separate decision.
type SubmitLoanUseCase struct {
	loanRepo   port.LoanRepository
	publisher  port.EventPublisher
	engine     *service.ScoringEngine
	classifier *service.RiskClassifier
	features   port.FeatureSource
}

// NewSubmitLoanUseCase wires dependencies.
func NewSubmitLoanUseCase(
	loanRepo port.LoanRepository,
	publisher port.EventPublisher,
	engine *service.ScoringEngine,
	classifier *service.RiskClassifier,
	features port.FeatureSource,
) *SubmitLoanUseCase {
	return &SubmitLoanUseCase{
		loanRepo:   loanRepo,
		publisher:  publisher,
		engine:     engine,
		classifier: classifier,
		features:   features,
	}
}

// Execute creates the pending loan. A borrower may hold at most one loan in
// flight; a second application while one is open fails with ErrOpenLoanExists.
func (uc *SubmitLoanUseCase) Execute(
	ctx context.Context,
	req dto.SubmitLoanRequest,
) (dto.LoanResponse, error) {
	now := time.Now().UTC()

	// 1. Enforce the single-open-loan rule.
	open, err := uc.loanRepo.FindOpenByBorrowerID(ctx, req.BorrowerID)
	if err != nil && !errors.Is(err, valueobject.ErrLoanNotFound) {
		return dto.LoanResponse{}, fmt.Errorf("find open loans: %w", err)
	}
	if len(open) > 0 {
		return dto.LoanResponse{}, valueobject.ErrOpenLoanExists
	}

	// 2. Score the applicant.
	features, err := resolveFeatures(ctx, uc.features, req.BorrowerID, req.Features)
	if err != nil {
		return dto.LoanResponse{}, err
	}
	breakdown := uc.engine.Score(features)
	assessment := uc.classifier.Classify(breakdown.FinalScore)

	// 3. Create the pending loan.
	loan, err := model.NewLoan(
		req.BorrowerID,
		req.RequestedAmount,
		req.TermDays,
		req.Purpose,
		breakdown.FinalScore,
		assessment.Level,
		now,
	)
	if err != nil {
		return dto.LoanResponse{}, fmt.Errorf("create loan: %w", err)
	}

	// 4. Persist.
	if err := uc.loanRepo.Save(ctx, loan); err != nil {
		return dto.LoanResponse{}, fmt.Errorf("save loan: %w", err)
	}

	// 5. Publish events.
	if err := uc.publisher.Publish(ctx, loan.DomainEvents()...); err != nil {
		return dto.LoanResponse{}, fmt.Errorf("publish events: %w", err)
	}

	return loanToResponse(loan, now), nil
}
