package service

import (
	"github.com/shopspring/decimal"

	"github.com/kopacap/lending/internal/domain/valueobject"
)

// ---------------------------------------------------------------------------
// RateCalculator – base-rate refinement and instalment arithmetic
// ---------------------------------------------------------------------------

// Base-rate refinement bounds and thresholds. Used for what-if quotes where
// a rate must be derived without a score-band offer.
var (
	baseRatePercent = decimal.NewFromFloat(8.5)
	minRatePercent  = decimal.NewFromFloat(5.0)
	maxRatePercent  = decimal.NewFromFloat(15.0)

	largeAmountThreshold = decimal.NewFromInt(50_000)
)

const (
	highSignalScore        = 80
	lowSignalScore         = 50
	maturedBusinessMonths  = 24
	monthlyRateDivisor     = 1200 // annual percent to monthly fraction
	instalmentRoundingDP   = 2
)

// RateCalculator derives interest rates and instalment amounts for
// hypothetical quotes.
type RateCalculator struct{}

// NewRateCalculator creates a calculator.
func NewRateCalculator() *RateCalculator {
	return &RateCalculator{}
}

// RefineRate starts from the base rate and adjusts for credit signal, loan
// size and business maturity, clamping the result to [5.0, 15.0].
// A score of 80 or above counts as a high credit signal, below 50 as low.
func (c *RateCalculator) RefineRate(score int, requestedAmount decimal.Decimal, features valueobject.FeatureSet) decimal.Decimal {
	rate := baseRatePercent

	if score >= highSignalScore {
		rate = rate.Sub(decimal.NewFromFloat(2.0))
	} else if score < lowSignalScore {
		rate = rate.Add(decimal.NewFromFloat(3.0))
	}
	if requestedAmount.GreaterThan(largeAmountThreshold) {
		rate = rate.Add(decimal.NewFromFloat(1.5))
	}
	if features.BusinessAgeMonths() > maturedBusinessMonths {
		rate = rate.Sub(decimal.NewFromFloat(1.0))
	}

	if rate.LessThan(minRatePercent) {
		return minRatePercent
	}
	if rate.GreaterThan(maxRatePercent) {
		return maxRatePercent
	}
	return rate
}

// MonthlyInstalment computes the level payment P*r*(1+r)^n / ((1+r)^n - 1)
// for an annual rate and a term in months, rounded to two decimal places.
// A zero rate degenerates to straight-line principal division.
func (c *RateCalculator) MonthlyInstalment(principal, annualRatePercent decimal.Decimal, termMonths int) decimal.Decimal {
	if termMonths <= 0 {
		return decimal.Zero
	}
	if annualRatePercent.IsZero() {
		return principal.DivRound(decimal.NewFromInt(int64(termMonths)), instalmentRoundingDP)
	}

	monthlyRate := annualRatePercent.Div(decimal.NewFromInt(monthlyRateDivisor))
	growth := decimal.NewFromInt(1).Add(monthlyRate).Pow(decimal.NewFromInt(int64(termMonths)))
	numerator := principal.Mul(monthlyRate).Mul(growth)
	denominator := growth.Sub(decimal.NewFromInt(1))
	return numerator.DivRound(denominator, instalmentRoundingDP)
}

// TotalRepayable applies the flat interest formula used by the loan ledger,
// principal * (1 + rate/100).
func (c *RateCalculator) TotalRepayable(principal, ratePercent decimal.Decimal) decimal.Decimal {
	multiplier := decimal.NewFromInt(1).Add(ratePercent.Div(decimal.NewFromInt(100)))
	return principal.Mul(multiplier)
}

// DailyRepayment spreads the total repayable evenly across the term in days,
// rounded to two decimal places.
func (c *RateCalculator) DailyRepayment(principal, ratePercent decimal.Decimal, termDays int) decimal.Decimal {
	if termDays <= 0 {
		return decimal.Zero
	}
	total := c.TotalRepayable(principal, ratePercent)
	return total.DivRound(decimal.NewFromInt(int64(termDays)), instalmentRoundingDP)
}
