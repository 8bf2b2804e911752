package service

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/kopacap/lending/internal/domain/valueobject"
)

func newEvaluator() *EligibilityEvaluator {
	return NewEligibilityEvaluator(NewRiskClassifier())
}

func volumeFeatures(t *testing.T, volume int64) valueobject.FeatureSet {
	t.Helper()
	return mustFeatures(t, valueobject.FeatureSetParams{
		AvgMonthlyVolume: decimal.NewFromInt(volume),
	})
}

func TestEligibilityEvaluator_DeclinesBelowScoreFloor(t *testing.T) {
	evaluator := newEvaluator()

	decision := evaluator.Evaluate(volumeFeatures(t, 1_000_000), 49, decimal.NewFromInt(100))

	assert.False(t, decision.Approved)
	assert.Equal(t, "credit score below minimum threshold", decision.Reason)
	assert.True(t, decision.SuggestedAmount.IsZero())
	assert.True(t, decision.MaxAmount.IsZero())
	assert.True(t, decision.RiskLevel.Equal(valueobject.RiskLevelVeryHigh))
}

func TestEligibilityEvaluator_ApprovesWithinCeiling(t *testing.T) {
	evaluator := newEvaluator()

	// Band >=80 allows 100000; affordability 200000*0.3 = 60000.
	decision := evaluator.Evaluate(volumeFeatures(t, 200_000), 85, decimal.NewFromInt(50_000))

	assert.True(t, decision.Approved)
	assert.True(t, decision.MaxAmount.Equal(decimal.NewFromInt(60_000)))
	assert.True(t, decision.InterestRatePercent.Equal(decimal.NewFromFloat(7.9)))
	assert.Equal(t, 24, decision.TermMonths)
	assert.True(t, decision.RiskLevel.Equal(valueobject.RiskLevelLow))
}

func TestEligibilityEvaluator_AffordabilityCapsBandMax(t *testing.T) {
	evaluator := newEvaluator()

	// Affordability 10000*0.3 = 3000 is the binding constraint.
	decision := evaluator.Evaluate(volumeFeatures(t, 10_000), 85, decimal.NewFromInt(5_000))

	assert.False(t, decision.Approved)
	assert.Equal(t, "requested amount exceeds affordable limit based on monthly volume", decision.Reason)
	assert.True(t, decision.SuggestedAmount.Equal(decimal.NewFromInt(3_000)))
}

func TestEligibilityEvaluator_BandCapBinds(t *testing.T) {
	evaluator := newEvaluator()

	// Band >=50 allows 10000; affordability 100000*0.3 = 30000.
	decision := evaluator.Evaluate(volumeFeatures(t, 100_000), 55, decimal.NewFromInt(20_000))

	assert.False(t, decision.Approved)
	assert.Equal(t, "requested amount exceeds maximum for credit band", decision.Reason)
	assert.True(t, decision.SuggestedAmount.Equal(decimal.NewFromInt(10_000)))
	assert.True(t, decision.InterestRatePercent.Equal(decimal.NewFromFloat(15.9)))
	assert.Equal(t, 6, decision.TermMonths)
}

func TestEligibilityEvaluator_ApprovalImpliesWithinCeiling(t *testing.T) {
	evaluator := newEvaluator()

	for score := 0; score <= 100; score += 5 {
		for _, requested := range []int64{500, 5_000, 25_000, 80_000, 150_000} {
			decision := evaluator.Evaluate(volumeFeatures(t, 90_000), score, decimal.NewFromInt(requested))
			if decision.Approved {
				assert.True(t, decimal.NewFromInt(requested).LessThanOrEqual(decision.MaxAmount),
					"score %d requested %d", score, requested)
				assert.GreaterOrEqual(t, score, 50)
			}
		}
	}
}

func TestEligibilityEvaluator_BandTerms(t *testing.T) {
	evaluator := newEvaluator()
	features := volumeFeatures(t, 1_000_000)

	tests := []struct {
		score      int
		maxAmount  int64
		rate       float64
		termMonths int
	}{
		{80, 100_000, 7.9, 24},
		{79, 50_000, 9.9, 18},
		{70, 50_000, 9.9, 18},
		{60, 25_000, 12.9, 12},
		{50, 10_000, 15.9, 6},
	}

	for _, tt := range tests {
		decision := evaluator.Evaluate(features, tt.score, decimal.NewFromInt(1))
		assert.True(t, decision.Approved, "score %d", tt.score)
		assert.True(t, decision.MaxAmount.Equal(decimal.NewFromInt(tt.maxAmount)), "score %d", tt.score)
		assert.True(t, decision.InterestRatePercent.Equal(decimal.NewFromFloat(tt.rate)), "score %d", tt.score)
		assert.Equal(t, tt.termMonths, decision.TermMonths, "score %d", tt.score)
	}
}
