package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kopacap/lending/internal/domain/valueobject"
)

func TestRiskClassifier_Bands(t *testing.T) {
	classifier := NewRiskClassifier()

	tests := []struct {
		name  string
		score int
		want  valueobject.RiskLevel
	}{
		{"perfect score", 100, valueobject.RiskLevelLow},
		{"low band floor", 80, valueobject.RiskLevelLow},
		{"just below low band", 79, valueobject.RiskLevelMedium},
		{"medium band floor", 70, valueobject.RiskLevelMedium},
		{"medium high band", 65, valueobject.RiskLevelMediumHigh},
		{"medium high floor", 60, valueobject.RiskLevelMediumHigh},
		{"high band floor", 50, valueobject.RiskLevelHigh},
		{"just below floor", 49, valueobject.RiskLevelVeryHigh},
		{"zero score", 0, valueobject.RiskLevelVeryHigh},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := classifier.Classify(tt.score)
			assert.True(t, got.Level.Equal(tt.want), "score %d: got %s", tt.score, got.Level)
			assert.NotEmpty(t, got.Reason)
		})
	}
}

func TestRiskClassifier_EveryScoreLandsInABand(t *testing.T) {
	classifier := NewRiskClassifier()

	for score := 0; score <= 100; score++ {
		got := classifier.Classify(score)
		assert.False(t, got.Level.IsZero(), "score %d", score)
	}
}
