package adapter

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kopacap/lending/internal/domain/valueobject"
)

func TestStubFeatureSource_Deterministic(t *testing.T) {
	source := NewStubFeatureSource()
	ctx := context.Background()

	first, err := source.Fetch(ctx, "borrower-001")
	require.NoError(t, err)
	second, err := source.Fetch(ctx, "borrower-001")
	require.NoError(t, err)

	assert.Equal(t, first, second)

	other, err := source.Fetch(ctx, "borrower-002")
	require.NoError(t, err)
	assert.NotEqual(t, first, other)
}

func TestStubFeatureSource_RequiresBorrowerID(t *testing.T) {
	_, err := NewStubFeatureSource().Fetch(context.Background(), "")
	assert.Error(t, err)
}

func TestLinearScoreEstimator_BoundedOutput(t *testing.T) {
	est := NewLinearScoreEstimator()
	rating := 5.0

	extremes := []valueobject.FeatureSetParams{
		{},
		{DefaultRate: 1.0, SavingsRatio: -5, NegativeBalanceDays: 30},
		{
			AvgMonthlyVolume:       decimal.NewFromInt(1_000_000),
			TransactionConsistency: 1.0,
			BusinessAgeMonths:      120,
			SavingsRatio:           0.9,
			LoanHistoryCount:       20,
			ActivityLevel:          valueobject.ActivityLevelVeryHigh,
			CustomerRating:         &rating,
			IncomeConsistency:      1.0,
			HasRegularIncome:       true,
		},
	}

	for _, params := range extremes {
		fs, err := valueobject.NewFeatureSet(params)
		require.NoError(t, err)
		score, err := est.Estimate(fs)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, score, 0.0)
		assert.LessOrEqual(t, score, 100.0)
	}
}

func TestLinearScoreEstimator_OrdersProfiles(t *testing.T) {
	est := NewLinearScoreEstimator()

	strong, err := valueobject.NewFeatureSet(valueobject.FeatureSetParams{
		AvgMonthlyVolume:       decimal.NewFromInt(80_000),
		TransactionConsistency: 0.9,
		BusinessAgeMonths:      36,
		SavingsRatio:           0.3,
		LoanHistoryCount:       4,
		HasRegularIncome:       true,
	})
	require.NoError(t, err)
	weak, err := valueobject.NewFeatureSet(valueobject.FeatureSetParams{
		AvgMonthlyVolume: decimal.NewFromInt(2_000),
		DefaultRate:      0.5,
		SavingsRatio:     -0.2,
	})
	require.NoError(t, err)

	strongScore, err := est.Estimate(strong)
	require.NoError(t, err)
	weakScore, err := est.Estimate(weak)
	require.NoError(t, err)

	assert.Greater(t, strongScore, weakScore)
}
