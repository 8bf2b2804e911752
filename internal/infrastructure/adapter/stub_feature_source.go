package adapter

import (
	"context"
	"crypto/sha256"
	"encoding/binary"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/kopacap/lending/internal/domain/valueobject"
)

// StubFeatureSource is a development/test adapter that derives a
// deterministic FeatureSet from a hash of the borrower ID, so the same
// borrower always scores the same. It implements port.FeatureSource.
type StubFeatureSource struct{}

// NewStubFeatureSource creates a new stub adapter.
func NewStubFeatureSource() *StubFeatureSource {
	return &StubFeatureSource{}
}

var stubActivityLevels = []valueobject.ActivityLevel{
	valueobject.ActivityLevelLow,
	valueobject.ActivityLevelMedium,
	valueobject.ActivityLevelHigh,
	valueobject.ActivityLevelVeryHigh,
}

// Fetch returns repeatable pseudo-random features for the borrower.
func (s *StubFeatureSource) Fetch(_ context.Context, borrowerID string) (valueobject.FeatureSet, error) {
	if borrowerID == "" {
		return valueobject.FeatureSet{}, fmt.Errorf("borrower ID is required")
	}

	h := sha256.Sum256([]byte(borrowerID))
	draw := func(i int) uint32 {
		return binary.BigEndian.Uint32(h[i*4 : i*4+4])
	}

	rating := 2.5 + float64(draw(5)%26)/10 // [2.5, 5.0]
	return valueobject.NewFeatureSet(valueobject.FeatureSetParams{
		AvgMonthlyVolume:       decimal.NewFromInt(int64(draw(0) % 120_000)),
		TransactionConsistency: float64(draw(1)%101) / 100,
		BusinessAgeMonths:      int(draw(2) % 48),
		SavingsRatio:           float64(draw(3)%41)/100 - 0.1, // [-0.1, 0.3]
		LoanHistoryCount:       int(draw(4) % 8),
		DefaultRate:            float64(draw(6)%21) / 100, // [0, 0.2]
		ActivityLevel:          stubActivityLevels[draw(7)%4],
		CustomerRating:         &rating,
		TransactionCount30d:    int(draw(0) % 400),
		IncomeConsistency:      float64(draw(1)%101) / 100,
		HasRegularIncome:       draw(2)%2 == 0,
		NegativeBalanceDays:    int(draw(3) % 10),
	})
}
