package usecase

import (
	"context"
	"log/slog"

	"github.com/kopacap/lending/internal/application/dto"
	"github.com/kopacap/lending/internal/domain/port"
	"github.com/kopacap/lending/internal/domain/service"
	"github.com/kopacap/lending/pkg/observability"
)

// ScoreBorrowerUseCase runs a scoring pass for a borrower.
type ScoreBorrowerUseCase struct {
	engine     *service.ScoringEngine
	classifier *service.RiskClassifier
	features   port.FeatureSource
}

// NewScoreBorrowerUseCase wires dependencies.
func NewScoreBorrowerUseCase(
	engine *service.ScoringEngine,
	classifier *service.RiskClassifier,
	features port.FeatureSource,
) *ScoreBorrowerUseCase {
	return &ScoreBorrowerUseCase{
		engine:     engine,
		classifier: classifier,
		features:   features,
	}
}

// Execute scores the borrower's features and classifies the result.
func (uc *ScoreBorrowerUseCase) Execute(
	ctx context.Context,
	req dto.ScoreBorrowerRequest,
) (dto.ScoreResponse, error) {
	features, err := resolveFeatures(ctx, uc.features, req.BorrowerID, req.Features)
	if err != nil {
		return dto.ScoreResponse{}, err
	}

	breakdown := uc.engine.Score(features)
	observability.ScoringRequests.Inc()
	if breakdown.ModelErr != "" {
		observability.ScoringModelFallbacks.Inc()
		slog.Warn("score estimator unavailable, using rule score",
			"borrower_id", req.BorrowerID,
			"error", breakdown.ModelErr,
		)
	}

	assessment := uc.classifier.Classify(breakdown.FinalScore)
	return breakdownToResponse(req.BorrowerID, breakdown, assessment.Level.String()), nil
}
