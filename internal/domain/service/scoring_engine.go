package service

import (
	"math"
	"sync"

	"github.com/kopacap/lending/internal/domain/port"
	"github.com/kopacap/lending/internal/domain/valueobject"
)

// ---------------------------------------------------------------------------
// ScoringEngine – tiered rule-based credit scoring with optional model blend
// ---------------------------------------------------------------------------

// Blend weighting applied when a model estimate is available.
const (
	modelWeight = 0.70
	ruleWeight  = 0.30
)

// ScoreFactor is one named delta in a score breakdown.
type ScoreFactor struct {
	Name   string
	Points int
}

// ScoreBreakdown is the full output of a scoring pass. Base plus the factor
// points, clamped to [0,100] only at the end, equals RuleScore. FinalScore
// is RuleScore unless a model estimate was blended in.
type ScoreBreakdown struct {
	RuleVersion string
	Base        int
	Factors     []ScoreFactor
	RuleScore   int
	ModelScore  float64
	ModelUsed   bool
	// ModelErr carries the estimator failure that forced rule-only scoring.
	// Degrading to rules is designed behaviour, not an error; the field
	// exists so callers can tell the degraded mode apart in telemetry.
	ModelErr   string
	FinalScore int
}

// ScoringEngine converts a FeatureSet into a bounded score. Scoring itself is
// a pure function of the features and the active rule table; the engine
// struct only carries the table and the optional estimator handle, which can
// be swapped at runtime via Reload.
type ScoringEngine struct {
	mu        sync.RWMutex
	table     RuleTable
	estimator port.ScoreEstimator
}

// Option configures a ScoringEngine.
type Option func(*ScoringEngine)

// WithRuleTable selects a non-default rule table version.
func WithRuleTable(table RuleTable) Option {
	return func(e *ScoringEngine) {
		e.table = table
	}
}

// WithEstimator attaches a statistical score estimator to blend with the
// rule-based score.
func WithEstimator(est port.ScoreEstimator) Option {
	return func(e *ScoringEngine) {
		e.estimator = est
	}
}

// NewScoringEngine creates an engine with the canonical rule table.
func NewScoringEngine(opts ...Option) *ScoringEngine {
	e := &ScoringEngine{table: RuleTableV2()}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Reload replaces the estimator handle. Passing nil disables blending.
func (e *ScoringEngine) Reload(est port.ScoreEstimator) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.estimator = est
}

// Score evaluates the features against the active rule table and, when an
// estimator is attached and succeeds, blends its estimate at 70% model /
// 30% rules. Estimator failure falls back silently to the rule score.
func (e *ScoringEngine) Score(features valueobject.FeatureSet) ScoreBreakdown {
	e.mu.RLock()
	table := e.table
	estimator := e.estimator
	e.mu.RUnlock()

	breakdown := scoreWithTable(features, table)

	if estimator == nil {
		return breakdown
	}

	estimate, err := estimator.Estimate(features)
	if err != nil {
		breakdown.ModelErr = err.Error()
		return breakdown
	}

	breakdown.ModelScore = estimate
	breakdown.ModelUsed = true
	blended := modelWeight*estimate + ruleWeight*float64(breakdown.RuleScore)
	breakdown.FinalScore = clampScore(int(math.Round(blended)))
	return breakdown
}

// scoreWithTable is the pure rule evaluation: base plus one exclusive tier
// per factor, clamped at the very end.
func scoreWithTable(f valueobject.FeatureSet, t RuleTable) ScoreBreakdown {
	factors := make([]ScoreFactor, 0, 8)
	total := t.Base

	add := func(name string, points int) {
		factors = append(factors, ScoreFactor{Name: name, Points: points})
		total += points
	}

	volumePoints := 0
	for _, tier := range t.Volume {
		if f.AvgMonthlyVolume().GreaterThan(tier.Above) {
			volumePoints = tier.Points
			break
		}
	}
	add("volume", volumePoints)

	agePoints := 0
	for _, tier := range t.BusinessAge {
		if f.BusinessAgeMonths() > tier.Above {
			agePoints = tier.Points
			break
		}
	}
	add("business_age", agePoints)

	consistencyPoints := 0
	for _, tier := range t.Consistency {
		if f.TransactionConsistency() > tier.Above {
			consistencyPoints = tier.Points
			break
		}
	}
	add("consistency", consistencyPoints)

	savingsPoints := 0
	for _, tier := range t.Savings {
		if f.SavingsRatio() > tier.Above {
			savingsPoints = tier.Points
			break
		}
	}
	add("savings", savingsPoints)

	if len(t.Activity) > 0 {
		add("activity", t.Activity[f.ActivityLevel()])
	}

	if t.LoanHistory != nil {
		historyPoints := 0
		for _, tier := range t.LoanHistory {
			if f.LoanHistoryCount() > tier.Above {
				historyPoints = tier.Points
				break
			}
		}
		add("loan_history", historyPoints)
	}

	if t.DefaultPenalty != nil {
		penalty := 0
		for _, tier := range t.DefaultPenalty {
			if f.DefaultRate() > tier.Above {
				penalty = tier.Points
				break
			}
		}
		add("default_penalty", penalty)
	}

	if t.Rating != nil {
		ratingPoints := 0
		for _, tier := range t.Rating {
			if f.CustomerRating() >= tier.AtLeast {
				ratingPoints = tier.Points
				break
			}
		}
		add("rating", ratingPoints)
	}

	final := clampScore(total)
	return ScoreBreakdown{
		RuleVersion: t.Version,
		Base:        t.Base,
		Factors:     factors,
		RuleScore:   final,
		FinalScore:  final,
	}
}

func clampScore(s int) int {
	if s < 0 {
		return 0
	}
	if s > 100 {
		return 100
	}
	return s
}
