package usecase

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/kopacap/lending/internal/application/dto"
	"github.com/kopacap/lending/internal/domain/port"
	"github.com/kopacap/lending/internal/domain/service"
	"github.com/kopacap/lending/internal/domain/valueobject"
)

// QuoteRepaymentUseCase produces a what-if repayment schedule for an amount
// and term without creating a loan. The rate comes from base-rate refinement
// rather than the offer bands.
type QuoteRepaymentUseCase struct {
	engine   *service.ScoringEngine
	rates    *service.RateCalculator
	features port.FeatureSource
}

// NewQuoteRepaymentUseCase wires dependencies.
func NewQuoteRepaymentUseCase(
	engine *service.ScoringEngine,
	rates *service.RateCalculator,
	features port.FeatureSource,
) *QuoteRepaymentUseCase {
	return &QuoteRepaymentUseCase{
		engine:   engine,
		rates:    rates,
		features: features,
	}
}

// Execute scores the borrower, refines a rate and computes the instalment.
func (uc *QuoteRepaymentUseCase) Execute(
	ctx context.Context,
	req dto.QuoteRepaymentRequest,
) (dto.QuoteResponse, error) {
	if req.RequestedAmount.LessThanOrEqual(decimal.Zero) {
		return dto.QuoteResponse{}, valueobject.NewValidationError("requested_amount", "must be positive")
	}
	if req.TermMonths <= 0 {
		return dto.QuoteResponse{}, valueobject.NewValidationError("term_months", "must be positive")
	}

	features, err := resolveFeatures(ctx, uc.features, req.BorrowerID, req.Features)
	if err != nil {
		return dto.QuoteResponse{}, err
	}

	breakdown := uc.engine.Score(features)
	rate := uc.rates.RefineRate(breakdown.FinalScore, req.RequestedAmount, features)
	instalment := uc.rates.MonthlyInstalment(req.RequestedAmount, rate, req.TermMonths)
	total := instalment.Mul(decimal.NewFromInt(int64(req.TermMonths)))

	return dto.QuoteResponse{
		BorrowerID:          req.BorrowerID,
		Score:               breakdown.FinalScore,
		InterestRatePercent: rate,
		TermMonths:          req.TermMonths,
		MonthlyInstalment:   instalment,
		TotalRepayable:      total,
	}, nil
}
