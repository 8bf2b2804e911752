package usecase

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/kopacap/lending/internal/application/dto"
	"github.com/kopacap/lending/internal/domain/port"
	"github.com/kopacap/lending/internal/domain/service"
	"github.com/kopacap/lending/internal/domain/valueobject"
)

// CheckEligibilityUseCase answers whether a borrower qualifies for an amount
// without creating a loan.
type CheckEligibilityUseCase struct {
	engine    *service.ScoringEngine
	evaluator *service.EligibilityEvaluator
	features  port.FeatureSource
}

// NewCheckEligibilityUseCase wires dependencies.
func NewCheckEligibilityUseCase(
	engine *service.ScoringEngine,
	evaluator *service.EligibilityEvaluator,
	features port.FeatureSource,
) *CheckEligibilityUseCase {
	return &CheckEligibilityUseCase{
		engine:    engine,
		evaluator: evaluator,
		features:  features,
	}
}

// Execute scores the borrower and evaluates the requested amount against the
// offer bands and affordability cap.
func (uc *CheckEligibilityUseCase) Execute(
	ctx context.Context,
	req dto.CheckEligibilityRequest,
) (dto.EligibilityResponse, error) {
	if req.RequestedAmount.LessThanOrEqual(decimal.Zero) {
		return dto.EligibilityResponse{}, valueobject.NewValidationError("requested_amount", "must be positive")
	}

	features, err := resolveFeatures(ctx, uc.features, req.BorrowerID, req.Features)
	if err != nil {
		return dto.EligibilityResponse{}, err
	}

	breakdown := uc.engine.Score(features)
	decision := uc.evaluator.Evaluate(features, breakdown.FinalScore, req.RequestedAmount)

	return dto.EligibilityResponse{
		BorrowerID:          req.BorrowerID,
		Approved:            decision.Approved,
		Score:               breakdown.FinalScore,
		MaxAmount:           decision.MaxAmount,
		InterestRatePercent: decision.InterestRatePercent,
		TermMonths:          decision.TermMonths,
		RiskLevel:           decision.RiskLevel.String(),
		Reason:              decision.Reason,
		SuggestedAmount:     decision.SuggestedAmount,
	}, nil
}
