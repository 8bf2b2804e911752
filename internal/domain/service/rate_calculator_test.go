package service

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/kopacap/lending/internal/domain/valueobject"
)

func TestRateCalculator_RefineRate(t *testing.T) {
	calc := NewRateCalculator()

	tests := []struct {
		name       string
		score      int
		amount     int64
		ageMonths  int
		wantRate   float64
	}{
		{"base case", 60, 10_000, 12, 8.5},
		{"high signal discount", 85, 10_000, 12, 6.5},
		{"low signal surcharge", 40, 10_000, 12, 11.5},
		{"large amount surcharge", 60, 60_000, 12, 10.0},
		{"mature business discount", 60, 10_000, 36, 7.5},
		{"all discounts", 85, 10_000, 36, 5.5},
		{"all surcharges", 40, 60_000, 12, 13.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			features := mustFeatures(t, valueobject.FeatureSetParams{
				BusinessAgeMonths: tt.ageMonths,
			})
			rate := calc.RefineRate(tt.score, decimal.NewFromInt(tt.amount), features)
			assert.True(t, rate.Equal(decimal.NewFromFloat(tt.wantRate)),
				"got %s want %v", rate, tt.wantRate)
		})
	}
}

func TestRateCalculator_RefineRateClamped(t *testing.T) {
	calc := NewRateCalculator()

	for score := 0; score <= 100; score += 10 {
		for _, amount := range []int64{1_000, 60_000} {
			for _, age := range []int{0, 36} {
				features := mustFeatures(t, valueobject.FeatureSetParams{BusinessAgeMonths: age})
				rate := calc.RefineRate(score, decimal.NewFromInt(amount), features)
				assert.True(t, rate.GreaterThanOrEqual(decimal.NewFromFloat(5.0)))
				assert.True(t, rate.LessThanOrEqual(decimal.NewFromFloat(15.0)))
			}
		}
	}
}

func TestRateCalculator_TotalRepayable(t *testing.T) {
	calc := NewRateCalculator()

	total := calc.TotalRepayable(decimal.NewFromInt(10_000), decimal.NewFromFloat(9.9))

	assert.True(t, total.Equal(decimal.NewFromInt(10_990)), "got %s", total)
}

func TestRateCalculator_MonthlyInstalment(t *testing.T) {
	calc := NewRateCalculator()

	// 12000 at 12% over 12 months: monthly rate 1%, payment ~1066.19.
	payment := calc.MonthlyInstalment(decimal.NewFromInt(12_000), decimal.NewFromInt(12), 12)
	assert.True(t, payment.Equal(decimal.NewFromFloat(1066.19)), "got %s", payment)

	// Zero rate degenerates to straight division.
	flat := calc.MonthlyInstalment(decimal.NewFromInt(12_000), decimal.Zero, 12)
	assert.True(t, flat.Equal(decimal.NewFromInt(1_000)))

	// Invalid term.
	assert.True(t, calc.MonthlyInstalment(decimal.NewFromInt(12_000), decimal.NewFromInt(12), 0).IsZero())
}

func TestRateCalculator_DailyRepayment(t *testing.T) {
	calc := NewRateCalculator()

	daily := calc.DailyRepayment(decimal.NewFromInt(10_000), decimal.NewFromFloat(9.9), 30)

	assert.True(t, daily.Equal(decimal.NewFromFloat(366.33)), "got %s", daily)
	assert.True(t, calc.DailyRepayment(decimal.NewFromInt(10_000), decimal.NewFromFloat(9.9), 0).IsZero())
}
