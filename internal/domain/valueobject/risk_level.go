package valueobject

import "fmt"

// ---------------------------------------------------------------------------
// RiskLevel – immutable value object
// ---------------------------------------------------------------------------

// RiskLevel represents the risk category assigned to a credit score.
type RiskLevel struct {
	value string
}

const (
	riskLevelLow        = "LOW"
	riskLevelMedium     = "MEDIUM"
	riskLevelMediumHigh = "MEDIUM_HIGH"
	riskLevelHigh       = "HIGH"
	riskLevelVeryHigh   = "VERY_HIGH"
)

var (
	RiskLevelLow        = RiskLevel{value: riskLevelLow}
	RiskLevelMedium     = RiskLevel{value: riskLevelMedium}
	RiskLevelMediumHigh = RiskLevel{value: riskLevelMediumHigh}
	RiskLevelHigh       = RiskLevel{value: riskLevelHigh}
	RiskLevelVeryHigh   = RiskLevel{value: riskLevelVeryHigh}
)

var validRiskLevels = map[string]RiskLevel{
	riskLevelLow:        RiskLevelLow,
	riskLevelMedium:     RiskLevelMedium,
	riskLevelMediumHigh: RiskLevelMediumHigh,
	riskLevelHigh:       RiskLevelHigh,
	riskLevelVeryHigh:   RiskLevelVeryHigh,
}

// NewRiskLevel creates a RiskLevel from a raw string.
func NewRiskLevel(s string) (RiskLevel, error) {
	v, ok := validRiskLevels[s]
	if !ok {
		return RiskLevel{}, fmt.Errorf("invalid risk level: %q", s)
	}
	return v, nil
}

// String returns the string representation of the risk level.
func (r RiskLevel) String() string { return r.value }

// IsZero returns true if the risk level has not been initialised.
func (r RiskLevel) IsZero() bool { return r.value == "" }

// Equal returns true when both levels carry the same value.
func (r RiskLevel) Equal(other RiskLevel) bool { return r.value == other.value }
