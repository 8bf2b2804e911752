package valueobject_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kopacap/lending/internal/domain/valueobject"
)

func TestNewFeatureSetDefaults(t *testing.T) {
	fs, err := valueobject.NewFeatureSet(valueobject.FeatureSetParams{
		AvgMonthlyVolume: decimal.NewFromInt(10_000),
	})
	require.NoError(t, err)

	assert.InDelta(t, 3.0, fs.CustomerRating(), 1e-9)
	assert.Equal(t, valueobject.ActivityLevelLow, fs.ActivityLevel())
}

func TestNewFeatureSetExplicitZeroRating(t *testing.T) {
	zero := 0.0
	fs, err := valueobject.NewFeatureSet(valueobject.FeatureSetParams{
		AvgMonthlyVolume: decimal.NewFromInt(10_000),
		CustomerRating:   &zero,
	})
	require.NoError(t, err)

	// explicit zero is kept, not replaced by the default
	assert.InDelta(t, 0.0, fs.CustomerRating(), 1e-9)
}

func TestNewFeatureSetNegativeSavingsRatio(t *testing.T) {
	fs, err := valueobject.NewFeatureSet(valueobject.FeatureSetParams{
		AvgMonthlyVolume: decimal.NewFromInt(10_000),
		SavingsRatio:     -0.1,
	})
	require.NoError(t, err)
	assert.InDelta(t, -0.1, fs.SavingsRatio(), 1e-9)
}

func TestNewFeatureSetValidation(t *testing.T) {
	badRating := 5.1
	tests := []struct {
		name   string
		params valueobject.FeatureSetParams
		field  string
	}{
		{
			"negative volume",
			valueobject.FeatureSetParams{AvgMonthlyVolume: decimal.NewFromInt(-1)},
			"avg_monthly_volume",
		},
		{
			"consistency above one",
			valueobject.FeatureSetParams{TransactionConsistency: 1.1},
			"transaction_consistency",
		},
		{
			"negative business age",
			valueobject.FeatureSetParams{BusinessAgeMonths: -1},
			"business_age_months",
		},
		{
			"negative loan history",
			valueobject.FeatureSetParams{LoanHistoryCount: -1},
			"loan_history_count",
		},
		{
			"default rate above one",
			valueobject.FeatureSetParams{DefaultRate: 2},
			"default_rate",
		},
		{
			"rating above five",
			valueobject.FeatureSetParams{CustomerRating: &badRating},
			"customer_rating",
		},
		{
			"negative transaction count",
			valueobject.FeatureSetParams{TransactionCount30d: -1},
			"transaction_count_30d",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := valueobject.NewFeatureSet(tt.params)
			var verr *valueobject.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.field, verr.Field)
		})
	}
}

func TestNewActivityLevel(t *testing.T) {
	for _, s := range []string{"LOW", "MEDIUM", "HIGH", "VERY_HIGH"} {
		lvl, err := valueobject.NewActivityLevel(s)
		require.NoError(t, err)
		assert.Equal(t, s, lvl.String())
	}

	_, err := valueobject.NewActivityLevel("EXTREME")
	assert.Error(t, err)
}
