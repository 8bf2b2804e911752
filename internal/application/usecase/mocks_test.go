package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/kopacap/lending/internal/domain/event"
	"github.com/kopacap/lending/internal/domain/model"
	"github.com/kopacap/lending/internal/domain/valueobject"
)

// --- Mock implementations ---

type mockLoanRepository struct {
	saveFunc                 func(ctx context.Context, loan model.Loan) error
	findByIDFunc             func(ctx context.Context, id string) (model.Loan, error)
	findByBorrowerIDFunc     func(ctx context.Context, borrowerID string) ([]model.Loan, error)
	findOpenByBorrowerIDFunc func(ctx context.Context, borrowerID string) ([]model.Loan, error)
	savedLoans               []model.Loan
}

func (m *mockLoanRepository) Save(ctx context.Context, loan model.Loan) error {
	if m.saveFunc != nil {
		return m.saveFunc(ctx, loan)
	}
	m.savedLoans = append(m.savedLoans, loan)
	return nil
}

func (m *mockLoanRepository) FindByID(ctx context.Context, id string) (model.Loan, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(ctx, id)
	}
	return model.Loan{}, valueobject.ErrLoanNotFound
}

func (m *mockLoanRepository) FindByBorrowerID(ctx context.Context, borrowerID string) ([]model.Loan, error) {
	if m.findByBorrowerIDFunc != nil {
		return m.findByBorrowerIDFunc(ctx, borrowerID)
	}
	return nil, nil
}

func (m *mockLoanRepository) FindOpenByBorrowerID(ctx context.Context, borrowerID string) ([]model.Loan, error) {
	if m.findOpenByBorrowerIDFunc != nil {
		return m.findOpenByBorrowerIDFunc(ctx, borrowerID)
	}
	return nil, nil
}

type mockRepaymentRepository struct {
	recordFunc           func(ctx context.Context, rep model.Repayment, loan model.Loan) error
	findByReceiptRefFunc func(ctx context.Context, receiptRef string) (model.Repayment, bool, error)
	recorded             []model.Repayment
	recordedLoans        []model.Loan
}

func (m *mockRepaymentRepository) Record(ctx context.Context, rep model.Repayment, loan model.Loan) error {
	if m.recordFunc != nil {
		return m.recordFunc(ctx, rep, loan)
	}
	m.recorded = append(m.recorded, rep)
	m.recordedLoans = append(m.recordedLoans, loan)
	return nil
}

func (m *mockRepaymentRepository) FindByReceiptRef(ctx context.Context, receiptRef string) (model.Repayment, bool, error) {
	if m.findByReceiptRefFunc != nil {
		return m.findByReceiptRefFunc(ctx, receiptRef)
	}
	return model.Repayment{}, false, nil
}

func (m *mockRepaymentRepository) ListByLoanID(_ context.Context, _ string) ([]model.Repayment, error) {
	return nil, nil
}

type mockEventPublisher struct {
	publishFunc     func(ctx context.Context, events ...event.DomainEvent) error
	publishedEvents []event.DomainEvent
}

func (m *mockEventPublisher) Publish(ctx context.Context, evts ...event.DomainEvent) error {
	if m.publishFunc != nil {
		return m.publishFunc(ctx, evts...)
	}
	m.publishedEvents = append(m.publishedEvents, evts...)
	return nil
}

type mockFeatureSource struct {
	fetchFunc func(ctx context.Context, borrowerID string) (valueobject.FeatureSet, error)
}

func (m *mockFeatureSource) Fetch(ctx context.Context, borrowerID string) (valueobject.FeatureSet, error) {
	if m.fetchFunc != nil {
		return m.fetchFunc(ctx, borrowerID)
	}
	return strongBorrowerFeatures(), nil
}

// --- Fixtures ---

func strongBorrowerFeatures() valueobject.FeatureSet {
	rating := 4.6
	fs, err := valueobject.NewFeatureSet(valueobject.FeatureSetParams{
		AvgMonthlyVolume:       decimal.NewFromInt(60_000),
		TransactionConsistency: 0.85,
		BusinessAgeMonths:      30,
		SavingsRatio:           0.25,
		ActivityLevel:          valueobject.ActivityLevelHigh,
		CustomerRating:         &rating,
	})
	if err != nil {
		panic(err)
	}
	return fs
}

func weakBorrowerFeatures() valueobject.FeatureSet {
	fs, err := valueobject.NewFeatureSet(valueobject.FeatureSetParams{
		AvgMonthlyVolume:       decimal.NewFromInt(3_000),
		TransactionConsistency: 0.2,
		BusinessAgeMonths:      2,
		SavingsRatio:           -0.1,
		DefaultRate:            0.6,
	})
	if err != nil {
		panic(err)
	}
	return fs
}

func pendingLoan(t *testing.T, borrowerID string, principal int64) model.Loan {
	t.Helper()
	loan, err := model.NewLoan(
		borrowerID,
		decimal.NewFromInt(principal),
		90,
		"working capital",
		85,
		valueobject.RiskLevelLow,
		testNow(),
	)
	require.NoError(t, err)
	return loan.ClearEvents()
}

func approvedLoan(t *testing.T, borrowerID string, principal int64) model.Loan {
	t.Helper()
	loan, err := pendingLoan(t, borrowerID, principal).Approve(
		decimal.NewFromFloat(9.9),
		85,
		valueobject.RiskLevelLow,
		"excellent credit profile",
		testNow(),
	)
	require.NoError(t, err)
	return loan.ClearEvents()
}

func disbursedLoan(t *testing.T, borrowerID string, principal int64) model.Loan {
	t.Helper()
	loan, err := approvedLoan(t, borrowerID, principal).Disburse(testNow())
	require.NoError(t, err)
	return loan.ClearEvents()
}

func testNow() time.Time {
	return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
}
