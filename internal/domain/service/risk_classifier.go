package service

import "github.com/kopacap/lending/internal/domain/valueobject"

// ---------------------------------------------------------------------------
// RiskClassifier – maps a credit score onto a risk band
// ---------------------------------------------------------------------------

// RiskAssessment pairs a risk level with the human-readable reason attached
// to loan decisions and eligibility responses.
type RiskAssessment struct {
	Level  valueobject.RiskLevel
	Reason string
}

// RiskClassifier partitions the score range [0,100] into five bands. Band
// boundaries are inclusive at the lower edge.
type RiskClassifier struct{}

// NewRiskClassifier creates a classifier.
func NewRiskClassifier() *RiskClassifier {
	return &RiskClassifier{}
}

// Classify returns the risk band for a score. Every score in [0,100] lands
// in exactly one band.
func (c *RiskClassifier) Classify(score int) RiskAssessment {
	switch {
	case score >= 80:
		return RiskAssessment{Level: valueobject.RiskLevelLow, Reason: "excellent credit profile"}
	case score >= 70:
		return RiskAssessment{Level: valueobject.RiskLevelMedium, Reason: "good credit history"}
	case score >= 60:
		return RiskAssessment{Level: valueobject.RiskLevelMediumHigh, Reason: "acceptable credit score"}
	case score >= 50:
		return RiskAssessment{Level: valueobject.RiskLevelHigh, Reason: "basic eligibility met"}
	default:
		return RiskAssessment{Level: valueobject.RiskLevelVeryHigh, Reason: "credit score below minimum threshold"}
	}
}
