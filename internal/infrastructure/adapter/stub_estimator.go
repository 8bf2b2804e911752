package adapter

import (
	"math"

	"github.com/kopacap/lending/internal/domain/valueobject"
)

// LinearScoreEstimator is a fixed-weight stand-in for an externally trained
// scoring model. It implements port.ScoreEstimator and exists so the blended
// scoring path can run end to end without a model service.
type LinearScoreEstimator struct{}

// NewLinearScoreEstimator creates the estimator.
func NewLinearScoreEstimator() *LinearScoreEstimator {
	return &LinearScoreEstimator{}
}

// Estimate maps the features through a logistic curve onto [0,100].
func (e *LinearScoreEstimator) Estimate(f valueobject.FeatureSet) (float64, error) {
	volume, _ := f.AvgMonthlyVolume().Float64()

	z := -1.5
	z += math.Min(volume/50_000, 2.0) * 1.2
	z += f.TransactionConsistency() * 1.5
	z += math.Min(float64(f.BusinessAgeMonths())/24, 2.0) * 0.8
	z += f.SavingsRatio() * 2.0
	z += math.Min(float64(f.LoanHistoryCount())/5, 1.0) * 0.6
	z -= f.DefaultRate() * 4.0
	z += (f.CustomerRating() - 3.0) * 0.5
	z += f.IncomeConsistency() * 0.7
	if f.HasRegularIncome() {
		z += 0.4
	}
	z -= math.Min(float64(f.NegativeBalanceDays())/10, 1.0) * 0.8

	return 100 / (1 + math.Exp(-z)), nil
}
