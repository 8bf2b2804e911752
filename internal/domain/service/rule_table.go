package service

import (
	"github.com/shopspring/decimal"

	"github.com/kopacap/lending/internal/domain/valueobject"
)

// ---------------------------------------------------------------------------
// Versioned scoring rule tables
// ---------------------------------------------------------------------------

// decimalTier awards points when the input exceeds Above.
type decimalTier struct {
	Above  decimal.Decimal
	Points int
}

// intTier awards points when the input exceeds Above.
type intTier struct {
	Above  int
	Points int
}

// floatTier awards points when the input exceeds Above.
type floatTier struct {
	Above  float64
	Points int
}

// ratingTier awards points when the input is at least AtLeast (inclusive).
type ratingTier struct {
	AtLeast float64
	Points  int
}

// RuleTable is one version of the tiered point allocation. Tiers are listed
// highest-first and are exclusive: the first matching tier wins, no stacking.
type RuleTable struct {
	Version        string
	Base           int
	Volume         []decimalTier
	BusinessAge    []intTier
	Consistency    []floatTier
	Savings        []floatTier
	Activity       map[valueobject.ActivityLevel]int
	LoanHistory    []intTier
	DefaultPenalty []floatTier
	Rating         []ratingTier
}

// RuleTableV2 is the canonical scoring law.
func RuleTableV2() RuleTable {
	return RuleTable{
		Version: "v2",
		Base:    50,
		Volume: []decimalTier{
			{Above: decimal.NewFromInt(100_000), Points: 20},
			{Above: decimal.NewFromInt(50_000), Points: 15},
			{Above: decimal.NewFromInt(25_000), Points: 10},
			{Above: decimal.NewFromInt(10_000), Points: 5},
		},
		BusinessAge: []intTier{
			{Above: 24, Points: 15},
			{Above: 12, Points: 10},
			{Above: 6, Points: 5},
		},
		Consistency: []floatTier{
			{Above: 0.8, Points: 15},
			{Above: 0.6, Points: 10},
			{Above: 0.4, Points: 5},
		},
		Savings: []floatTier{
			{Above: 0.2, Points: 10},
			{Above: 0.1, Points: 5},
		},
		Activity: map[valueobject.ActivityLevel]int{
			valueobject.ActivityLevelVeryHigh: 10,
			valueobject.ActivityLevelHigh:     7,
			valueobject.ActivityLevelMedium:   4,
			valueobject.ActivityLevelLow:      0,
		},
		LoanHistory: []intTier{
			{Above: 5, Points: 10},
			{Above: 2, Points: 7},
			{Above: 0, Points: 4},
		},
		DefaultPenalty: []floatTier{
			{Above: 0.5, Points: -20},
			{Above: 0.3, Points: -15},
			{Above: 0.1, Points: -10},
			{Above: 0, Points: -5},
		},
		Rating: []ratingTier{
			{AtLeast: 4.5, Points: 10},
			{AtLeast: 4.0, Points: 7},
			{AtLeast: 3.5, Points: 4},
			{AtLeast: 3.0, Points: 2},
		},
	}
}

// RuleTableV1 is the earlier, coarser table. Superseded by v2 for live
// scoring; kept as a named fixture so regression tests can pin its output.
func RuleTableV1() RuleTable {
	return RuleTable{
		Version: "v1",
		Base:    50,
		Volume: []decimalTier{
			{Above: decimal.NewFromInt(50_000), Points: 20},
			{Above: decimal.NewFromInt(20_000), Points: 15},
			{Above: decimal.NewFromInt(10_000), Points: 10},
			{Above: decimal.NewFromInt(5_000), Points: 5},
		},
		BusinessAge: []intTier{
			{Above: 24, Points: 15},
			{Above: 12, Points: 10},
			{Above: 6, Points: 5},
		},
		Consistency: []floatTier{
			{Above: 0.8, Points: 15},
			{Above: 0.6, Points: 10},
			{Above: 0.4, Points: 5},
		},
		Savings: []floatTier{
			{Above: 0.2, Points: 10},
			{Above: 0.1, Points: 5},
		},
		Activity:       map[valueobject.ActivityLevel]int{},
		LoanHistory:    nil,
		DefaultPenalty: nil,
		Rating:         nil,
	}
}

// RuleTables maps a version id to its table. The latest version is the
// engine default.
func RuleTables() map[string]RuleTable {
	return map[string]RuleTable{
		"v1": RuleTableV1(),
		"v2": RuleTableV2(),
	}
}
