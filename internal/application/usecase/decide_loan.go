package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/kopacap/lending/internal/application/dto"
	"github.com/kopacap/lending/internal/domain/port"
	"github.com/kopacap/lending/internal/domain/service"
	"github.com/kopacap/lending/pkg/observability"
)

// DecideLoanUseCase runs the approve-or-reject decision on a pending loan.
// The decision re-scores the applicant so stale application-time scores do
// not leak into approvals.
type DecideLoanUseCase struct {
	loanRepo  port.LoanRepository
	publisher port.EventPublisher
	engine    *service.ScoringEngine
	evaluator *service.EligibilityEvaluator
	features  port.FeatureSource
}

// NewDecideLoanUseCase wires dependencies.
func NewDecideLoanUseCase(
	loanRepo port.LoanRepository,
	publisher port.EventPublisher,
	engine *service.ScoringEngine,
	evaluator *service.EligibilityEvaluator,
	features port.FeatureSource,
) *DecideLoanUseCase {
	return &DecideLoanUseCase{
		loanRepo:  loanRepo,
		publisher: publisher,
		engine:    engine,
		evaluator: evaluator,
		features:  features,
	}
}

// Execute evaluates eligibility for the loan's principal and applies the
// resulting transition. Only a PENDING loan can be decided.
func (uc *DecideLoanUseCase) Execute(
	ctx context.Context,
	req dto.DecideLoanRequest,
) (dto.LoanResponse, error) {
	now := time.Now().UTC()

	loan, err := uc.loanRepo.FindByID(ctx, req.LoanID)
	if err != nil {
		return dto.LoanResponse{}, fmt.Errorf("find loan: %w", err)
	}

	features, err := resolveFeatures(ctx, uc.features, loan.BorrowerID(), nil)
	if err != nil {
		return dto.LoanResponse{}, err
	}
	breakdown := uc.engine.Score(features)
	decision := uc.evaluator.Evaluate(features, breakdown.FinalScore, loan.Principal())

	if decision.Approved {
		loan, err = loan.Approve(
			decision.InterestRatePercent,
			breakdown.FinalScore,
			decision.RiskLevel,
			decision.Reason,
			now,
		)
	} else {
		loan, err = loan.Reject(decision.Reason, now)
	}
	if err != nil {
		return dto.LoanResponse{}, fmt.Errorf("decide loan: %w", err)
	}

	if err := uc.loanRepo.Save(ctx, loan); err != nil {
		return dto.LoanResponse{}, fmt.Errorf("save loan: %w", err)
	}

	if err := uc.publisher.Publish(ctx, loan.DomainEvents()...); err != nil {
		return dto.LoanResponse{}, fmt.Errorf("publish events: %w", err)
	}

	if decision.Approved {
		observability.LoanDecisions.WithLabelValues("approved").Inc()
	} else {
		observability.LoanDecisions.WithLabelValues("rejected").Inc()
	}

	return loanToResponse(loan, now), nil
}
