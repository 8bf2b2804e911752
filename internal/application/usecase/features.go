package usecase

import (
	"context"
	"fmt"

	"github.com/kopacap/lending/internal/application/dto"
	"github.com/kopacap/lending/internal/domain/port"
	"github.com/kopacap/lending/internal/domain/valueobject"
)

// featureSetFromRequest validates an inline feature payload.
func featureSetFromRequest(req dto.FeatureSetRequest) (valueobject.FeatureSet, error) {
	activity := valueobject.ActivityLevel{}
	if req.ActivityLevel != "" {
		var err error
		activity, err = valueobject.NewActivityLevel(req.ActivityLevel)
		if err != nil {
			return valueobject.FeatureSet{}, valueobject.NewValidationError("activity_level", err.Error())
		}
	}

	return valueobject.NewFeatureSet(valueobject.FeatureSetParams{
		AvgMonthlyVolume:       req.AvgMonthlyVolume,
		TransactionConsistency: req.TransactionConsistency,
		BusinessAgeMonths:      req.BusinessAgeMonths,
		SavingsRatio:           req.SavingsRatio,
		LoanHistoryCount:       req.LoanHistoryCount,
		DefaultRate:            req.DefaultRate,
		ActivityLevel:          activity,
		CustomerRating:         req.CustomerRating,
		TransactionCount30d:    req.TransactionCount30d,
		IncomeConsistency:      req.IncomeConsistency,
		HasRegularIncome:       req.HasRegularIncome,
		NegativeBalanceDays:    req.NegativeBalanceDays,
	})
}

// resolveFeatures prefers an inline payload and otherwise fetches from the
// configured feature source.
func resolveFeatures(
	ctx context.Context,
	source port.FeatureSource,
	borrowerID string,
	inline *dto.FeatureSetRequest,
) (valueobject.FeatureSet, error) {
	if inline != nil {
		return featureSetFromRequest(*inline)
	}
	if borrowerID == "" {
		return valueobject.FeatureSet{}, valueobject.NewValidationError("borrower_id", "is required")
	}
	features, err := source.Fetch(ctx, borrowerID)
	if err != nil {
		return valueobject.FeatureSet{}, fmt.Errorf("fetch features: %w", err)
	}
	return features, nil
}
