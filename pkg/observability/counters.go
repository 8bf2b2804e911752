package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Domain counters. Registered on the default registry and served by the
// metrics endpoint from InitMetrics.
var (
	ScoringRequests = promauto.NewCounter(prometheus.CounterOpts{
		Name: "lending_scoring_requests_total",
		Help: "Total credit scoring passes.",
	})

	ScoringModelFallbacks = promauto.NewCounter(prometheus.CounterOpts{
		Name: "lending_scoring_model_fallbacks_total",
		Help: "Scoring passes that degraded to rule-only after an estimator failure.",
	})

	LoanDecisions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "lending_loan_decisions_total",
		Help: "Loan decisions by outcome.",
	}, []string{"outcome"})

	RepaymentsRecorded = promauto.NewCounter(prometheus.CounterOpts{
		Name: "lending_repayments_recorded_total",
		Help: "Successfully recorded repayments.",
	})

	DuplicateReceipts = promauto.NewCounter(prometheus.CounterOpts{
		Name: "lending_repayment_duplicate_receipts_total",
		Help: "Repayment attempts rejected as duplicate receipt references.",
	})

	VersionConflictRetries = promauto.NewCounter(prometheus.CounterOpts{
		Name: "lending_version_conflict_retries_total",
		Help: "Optimistic lock conflicts that triggered a retry.",
	})
)
