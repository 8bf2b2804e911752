package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"

	"github.com/kopacap/lending/internal/domain/port"
	"github.com/kopacap/lending/internal/domain/valueobject"
)

// cachedFeatures is the Redis serialisation of a FeatureSet.
type cachedFeatures struct {
	AvgMonthlyVolume       decimal.Decimal `json:"avg_monthly_volume"`
	TransactionConsistency float64         `json:"transaction_consistency"`
	BusinessAgeMonths      int             `json:"business_age_months"`
	SavingsRatio           float64         `json:"savings_ratio"`
	LoanHistoryCount       int             `json:"loan_history_count"`
	DefaultRate            float64         `json:"default_rate"`
	ActivityLevel          string          `json:"activity_level"`
	CustomerRating         float64         `json:"customer_rating"`
	TransactionCount30d    int             `json:"transaction_count_30d"`
	IncomeConsistency      float64         `json:"income_consistency_score"`
	HasRegularIncome       bool            `json:"has_regular_income"`
	NegativeBalanceDays    int             `json:"negative_balance_days"`
}

// CachedFeatureSource is a read-through Redis cache in front of another
// FeatureSource. Cache failures degrade to the underlying source; a stale or
// unreachable cache never blocks scoring.
type CachedFeatureSource struct {
	next   port.FeatureSource
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

// NewCachedFeatureSource wraps next with a Redis cache.
func NewCachedFeatureSource(next port.FeatureSource, client *redis.Client, ttl time.Duration, logger *slog.Logger) *CachedFeatureSource {
	return &CachedFeatureSource{
		next:   next,
		client: client,
		ttl:    ttl,
		logger: logger,
	}
}

// Fetch returns cached features when present, otherwise falls through and
// populates the cache.
func (c *CachedFeatureSource) Fetch(ctx context.Context, borrowerID string) (valueobject.FeatureSet, error) {
	key := cacheKey(borrowerID)

	raw, err := c.client.Get(ctx, key).Bytes()
	if err == nil {
		features, decodeErr := decodeFeatures(raw)
		if decodeErr == nil {
			return features, nil
		}
		c.logger.Warn("discarding undecodable feature cache entry", "borrower_id", borrowerID, "error", decodeErr)
	} else if !errors.Is(err, redis.Nil) {
		c.logger.Warn("feature cache read failed", "borrower_id", borrowerID, "error", err)
	}

	features, err := c.next.Fetch(ctx, borrowerID)
	if err != nil {
		return valueobject.FeatureSet{}, err
	}

	if raw, err := encodeFeatures(features); err == nil {
		if err := c.client.Set(ctx, key, raw, c.ttl).Err(); err != nil {
			c.logger.Warn("feature cache write failed", "borrower_id", borrowerID, "error", err)
		}
	}

	return features, nil
}

func cacheKey(borrowerID string) string {
	return fmt.Sprintf("lending:features:%s", borrowerID)
}

func encodeFeatures(f valueobject.FeatureSet) ([]byte, error) {
	return json.Marshal(cachedFeatures{
		AvgMonthlyVolume:       f.AvgMonthlyVolume(),
		TransactionConsistency: f.TransactionConsistency(),
		BusinessAgeMonths:      f.BusinessAgeMonths(),
		SavingsRatio:           f.SavingsRatio(),
		LoanHistoryCount:       f.LoanHistoryCount(),
		DefaultRate:            f.DefaultRate(),
		ActivityLevel:          f.ActivityLevel().String(),
		CustomerRating:         f.CustomerRating(),
		TransactionCount30d:    f.TransactionCount30d(),
		IncomeConsistency:      f.IncomeConsistency(),
		HasRegularIncome:       f.HasRegularIncome(),
		NegativeBalanceDays:    f.NegativeBalanceDays(),
	})
}

func decodeFeatures(raw []byte) (valueobject.FeatureSet, error) {
	var c cachedFeatures
	if err := json.Unmarshal(raw, &c); err != nil {
		return valueobject.FeatureSet{}, err
	}
	activity, err := valueobject.NewActivityLevel(c.ActivityLevel)
	if err != nil {
		return valueobject.FeatureSet{}, err
	}
	return valueobject.NewFeatureSet(valueobject.FeatureSetParams{
		AvgMonthlyVolume:       c.AvgMonthlyVolume,
		TransactionConsistency: c.TransactionConsistency,
		BusinessAgeMonths:      c.BusinessAgeMonths,
		SavingsRatio:           c.SavingsRatio,
		LoanHistoryCount:       c.LoanHistoryCount,
		DefaultRate:            c.DefaultRate,
		ActivityLevel:          activity,
		CustomerRating:         &c.CustomerRating,
		TransactionCount30d:    c.TransactionCount30d,
		IncomeConsistency:      c.IncomeConsistency,
		HasRegularIncome:       c.HasRegularIncome,
		NegativeBalanceDays:    c.NegativeBalanceDays,
	})
}
