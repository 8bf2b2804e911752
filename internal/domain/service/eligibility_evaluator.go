package service

import (
	"github.com/shopspring/decimal"

	"github.com/kopacap/lending/internal/domain/valueobject"
)

// ---------------------------------------------------------------------------
// EligibilityEvaluator – score bands, affordability cap, offer terms
// ---------------------------------------------------------------------------

// scoreFloor is the minimum score for any offer. Below it the evaluator
// declines unconditionally.
const scoreFloor = 50

// affordabilityFactor caps the offer at a share of monthly volume.
var affordabilityFactor = decimal.NewFromFloat(0.3)

// offerBand is one score band's standing offer terms.
type offerBand struct {
	MinScore            int
	MaxAmount           decimal.Decimal
	InterestRatePercent decimal.Decimal
	TermMonths          int
}

// offerBands is ordered highest band first; the first band whose MinScore the
// score meets applies.
var offerBands = []offerBand{
	{MinScore: 80, MaxAmount: decimal.NewFromInt(100_000), InterestRatePercent: decimal.NewFromFloat(7.9), TermMonths: 24},
	{MinScore: 70, MaxAmount: decimal.NewFromInt(50_000), InterestRatePercent: decimal.NewFromFloat(9.9), TermMonths: 18},
	{MinScore: 60, MaxAmount: decimal.NewFromInt(25_000), InterestRatePercent: decimal.NewFromFloat(12.9), TermMonths: 12},
	{MinScore: 50, MaxAmount: decimal.NewFromInt(10_000), InterestRatePercent: decimal.NewFromFloat(15.9), TermMonths: 6},
}

// EligibilityDecision is the evaluator's verdict on a requested amount.
// MaxAmount is the effective ceiling (band cap bounded by affordability).
// SuggestedAmount is what the borrower could be approved for instead; zero
// when the score floor failed.
type EligibilityDecision struct {
	Approved            bool
	MaxAmount           decimal.Decimal
	InterestRatePercent decimal.Decimal
	TermMonths          int
	RiskLevel           valueobject.RiskLevel
	Reason              string
	SuggestedAmount     decimal.Decimal
}

// EligibilityEvaluator decides pass/fail eligibility and computes the offer
// terms from score and borrower profile.
type EligibilityEvaluator struct {
	classifier *RiskClassifier
}

// NewEligibilityEvaluator creates an evaluator.
func NewEligibilityEvaluator(classifier *RiskClassifier) *EligibilityEvaluator {
	return &EligibilityEvaluator{classifier: classifier}
}

// Evaluate applies the score bands and the volume affordability cap. The
// effective ceiling is min(band max, avgMonthlyVolume * 0.3); approval
// requires score >= 50 and requestedAmount <= ceiling. The reason names the
// constraint that failed.
func (e *EligibilityEvaluator) Evaluate(features valueobject.FeatureSet, score int, requestedAmount decimal.Decimal) EligibilityDecision {
	assessment := e.classifier.Classify(score)

	if score < scoreFloor {
		return EligibilityDecision{
			Approved:        false,
			MaxAmount:       decimal.Zero,
			RiskLevel:       assessment.Level,
			Reason:          "credit score below minimum threshold",
			SuggestedAmount: decimal.Zero,
		}
	}

	band := bandForScore(score)
	affordable := features.AvgMonthlyVolume().Mul(affordabilityFactor)
	ceiling := decimal.Min(band.MaxAmount, affordable)

	decision := EligibilityDecision{
		MaxAmount:           ceiling,
		InterestRatePercent: band.InterestRatePercent,
		TermMonths:          band.TermMonths,
		RiskLevel:           assessment.Level,
		SuggestedAmount:     ceiling,
	}

	if requestedAmount.LessThanOrEqual(ceiling) {
		decision.Approved = true
		decision.Reason = assessment.Reason
		return decision
	}

	if affordable.LessThan(band.MaxAmount) {
		decision.Reason = "requested amount exceeds affordable limit based on monthly volume"
	} else {
		decision.Reason = "requested amount exceeds maximum for credit band"
	}
	return decision
}

func bandForScore(score int) offerBand {
	for _, band := range offerBands {
		if score >= band.MinScore {
			return band
		}
	}
	return offerBands[len(offerBands)-1]
}
