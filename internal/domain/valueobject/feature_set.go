package valueobject

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// ---------------------------------------------------------------------------
// ActivityLevel – immutable value object
// ---------------------------------------------------------------------------

// ActivityLevel buckets a borrower's mobile-money activity.
type ActivityLevel struct {
	value string
}

const (
	activityLow      = "LOW"
	activityMedium   = "MEDIUM"
	activityHigh     = "HIGH"
	activityVeryHigh = "VERY_HIGH"
)

var (
	ActivityLevelLow      = ActivityLevel{value: activityLow}
	ActivityLevelMedium   = ActivityLevel{value: activityMedium}
	ActivityLevelHigh     = ActivityLevel{value: activityHigh}
	ActivityLevelVeryHigh = ActivityLevel{value: activityVeryHigh}
)

var validActivityLevels = map[string]ActivityLevel{
	activityLow:      ActivityLevelLow,
	activityMedium:   ActivityLevelMedium,
	activityHigh:     ActivityLevelHigh,
	activityVeryHigh: ActivityLevelVeryHigh,
}

// NewActivityLevel creates an ActivityLevel from a raw string.
func NewActivityLevel(s string) (ActivityLevel, error) {
	v, ok := validActivityLevels[s]
	if !ok {
		return ActivityLevel{}, fmt.Errorf("invalid activity level: %q", s)
	}
	return v, nil
}

// String returns the string representation of the level.
func (a ActivityLevel) String() string { return a.value }

// IsZero returns true if the level has not been initialised.
func (a ActivityLevel) IsZero() bool { return a.value == "" }

// Equal returns true when both levels carry the same value.
func (a ActivityLevel) Equal(other ActivityLevel) bool { return a.value == other.value }

// ---------------------------------------------------------------------------
// FeatureSet – immutable value object
// ---------------------------------------------------------------------------

// Default values applied by NewFeatureSet when an input is absent. Missing
// data is resolved here, at the boundary, and nowhere else: scoring code may
// assume every field is populated and in range.
const (
	defaultCustomerRating = 3.0
)

// FeatureSet holds the normalized behavioural signals consumed by scoring.
// Construct it with NewFeatureSet; a FeatureSet obtained any other way is
// not guaranteed to satisfy the field invariants.
type FeatureSet struct {
	avgMonthlyVolume       decimal.Decimal
	transactionConsistency float64
	businessAgeMonths      int
	savingsRatio           float64
	loanHistoryCount       int
	defaultRate            float64
	activityLevel          ActivityLevel
	customerRating         float64
	transactionCount30d    int
	incomeConsistency      float64
	hasRegularIncome       bool
	negativeBalanceDays    int
}

// FeatureSetParams carries raw inputs into NewFeatureSet. Optional fields use
// pointers so that "absent" is distinguishable from a legitimate zero.
type FeatureSetParams struct {
	AvgMonthlyVolume       decimal.Decimal
	TransactionConsistency float64
	BusinessAgeMonths      int
	SavingsRatio           float64
	LoanHistoryCount       int
	DefaultRate            float64
	ActivityLevel          ActivityLevel
	CustomerRating         *float64
	TransactionCount30d    int
	IncomeConsistency      float64
	HasRegularIncome       bool
	NegativeBalanceDays    int
}

// NewFeatureSet validates raw inputs and applies the documented defaults:
// customer rating 3.0 when absent, activity level LOW when unset. Ratio
// fields must be within [0,1], the rating within [0,5], counts non-negative.
// The savings ratio may be negative (net outflow).
func NewFeatureSet(p FeatureSetParams) (FeatureSet, error) {
	if p.AvgMonthlyVolume.IsNegative() {
		return FeatureSet{}, NewValidationError("avg_monthly_volume", "must not be negative")
	}
	if p.TransactionConsistency < 0 || p.TransactionConsistency > 1 {
		return FeatureSet{}, NewValidationError("transaction_consistency", "must be within [0,1]")
	}
	if p.BusinessAgeMonths < 0 {
		return FeatureSet{}, NewValidationError("business_age_months", "must not be negative")
	}
	if p.LoanHistoryCount < 0 {
		return FeatureSet{}, NewValidationError("loan_history_count", "must not be negative")
	}
	if p.DefaultRate < 0 || p.DefaultRate > 1 {
		return FeatureSet{}, NewValidationError("default_rate", "must be within [0,1]")
	}
	if p.IncomeConsistency < 0 || p.IncomeConsistency > 1 {
		return FeatureSet{}, NewValidationError("income_consistency_score", "must be within [0,1]")
	}
	if p.TransactionCount30d < 0 {
		return FeatureSet{}, NewValidationError("transaction_count_30d", "must not be negative")
	}
	if p.NegativeBalanceDays < 0 {
		return FeatureSet{}, NewValidationError("negative_balance_days", "must not be negative")
	}

	rating := defaultCustomerRating
	if p.CustomerRating != nil {
		rating = *p.CustomerRating
		if rating < 0 || rating > 5 {
			return FeatureSet{}, NewValidationError("customer_rating", "must be within [0,5]")
		}
	}

	activity := p.ActivityLevel
	if activity.IsZero() {
		activity = ActivityLevelLow
	}

	return FeatureSet{
		avgMonthlyVolume:       p.AvgMonthlyVolume,
		transactionConsistency: p.TransactionConsistency,
		businessAgeMonths:      p.BusinessAgeMonths,
		savingsRatio:           p.SavingsRatio,
		loanHistoryCount:       p.LoanHistoryCount,
		defaultRate:            p.DefaultRate,
		activityLevel:          activity,
		customerRating:         rating,
		transactionCount30d:    p.TransactionCount30d,
		incomeConsistency:      p.IncomeConsistency,
		hasRegularIncome:       p.HasRegularIncome,
		negativeBalanceDays:    p.NegativeBalanceDays,
	}, nil
}

func (f FeatureSet) AvgMonthlyVolume() decimal.Decimal { return f.avgMonthlyVolume }
func (f FeatureSet) TransactionConsistency() float64   { return f.transactionConsistency }
func (f FeatureSet) BusinessAgeMonths() int            { return f.businessAgeMonths }
func (f FeatureSet) SavingsRatio() float64             { return f.savingsRatio }
func (f FeatureSet) LoanHistoryCount() int             { return f.loanHistoryCount }
func (f FeatureSet) DefaultRate() float64              { return f.defaultRate }
func (f FeatureSet) ActivityLevel() ActivityLevel      { return f.activityLevel }
func (f FeatureSet) CustomerRating() float64           { return f.customerRating }
func (f FeatureSet) TransactionCount30d() int          { return f.transactionCount30d }
func (f FeatureSet) IncomeConsistency() float64        { return f.incomeConsistency }
func (f FeatureSet) HasRegularIncome() bool            { return f.hasRegularIncome }
func (f FeatureSet) NegativeBalanceDays() int          { return f.negativeBalanceDays }
