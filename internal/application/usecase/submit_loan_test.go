package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kopacap/lending/internal/application/dto"
	"github.com/kopacap/lending/internal/application/usecase"
	"github.com/kopacap/lending/internal/domain/model"
	"github.com/kopacap/lending/internal/domain/service"
	"github.com/kopacap/lending/internal/domain/valueobject"
)

func newSubmitUseCase(
	loanRepo *mockLoanRepository,
	publisher *mockEventPublisher,
	features *mockFeatureSource,
) *usecase.SubmitLoanUseCase {
	return usecase.NewSubmitLoanUseCase(
		loanRepo,
		publisher,
		service.NewScoringEngine(),
		service.NewRiskClassifier(),
		features,
	)
}

func TestSubmitLoan_CreatesPendingLoan(t *testing.T) {
	loanRepo := &mockLoanRepository{}
	publisher := &mockEventPublisher{}
	uc := newSubmitUseCase(loanRepo, publisher, &mockFeatureSource{})

	resp, err := uc.Execute(context.Background(), dto.SubmitLoanRequest{
		BorrowerID:      "borrower-001",
		RequestedAmount: decimal.NewFromInt(10_000),
		TermDays:        90,
		Purpose:         "stock purchase",
	})

	require.NoError(t, err)
	assert.Equal(t, "PENDING", resp.Status)
	assert.Equal(t, 100, resp.CreditScore)
	assert.Equal(t, "LOW", resp.RiskLevel)
	require.Len(t, loanRepo.savedLoans, 1)
	require.Len(t, publisher.publishedEvents, 1)
	assert.Equal(t, "lending.loan.applied", publisher.publishedEvents[0].EventType())
}

func TestSubmitLoan_RejectsSecondOpenLoan(t *testing.T) {
	loanRepo := &mockLoanRepository{
		findOpenByBorrowerIDFunc: func(_ context.Context, borrowerID string) ([]model.Loan, error) {
			return []model.Loan{pendingLoan(t, borrowerID, 5_000)}, nil
		},
	}
	uc := newSubmitUseCase(loanRepo, &mockEventPublisher{}, &mockFeatureSource{})

	_, err := uc.Execute(context.Background(), dto.SubmitLoanRequest{
		BorrowerID:      "borrower-001",
		RequestedAmount: decimal.NewFromInt(10_000),
		TermDays:        90,
	})

	assert.ErrorIs(t, err, valueobject.ErrOpenLoanExists)
	assert.Empty(t, loanRepo.savedLoans)
}

func TestSubmitLoan_ScoresWeakBorrowerWithoutDeclining(t *testing.T) {
	// Submission never decides; a weak borrower still gets a pending loan
	// carrying a low score.
	features := &mockFeatureSource{
		fetchFunc: func(_ context.Context, _ string) (valueobject.FeatureSet, error) {
			return weakBorrowerFeatures(), nil
		},
	}
	uc := newSubmitUseCase(&mockLoanRepository{}, &mockEventPublisher{}, features)

	resp, err := uc.Execute(context.Background(), dto.SubmitLoanRequest{
		BorrowerID:      "borrower-002",
		RequestedAmount: decimal.NewFromInt(2_000),
		TermDays:        30,
	})

	require.NoError(t, err)
	assert.Equal(t, "PENDING", resp.Status)
	assert.Equal(t, 32, resp.CreditScore)
	assert.Equal(t, "VERY_HIGH", resp.RiskLevel)
}

func TestSubmitLoan_PropagatesFeatureSourceError(t *testing.T) {
	features := &mockFeatureSource{
		fetchFunc: func(_ context.Context, _ string) (valueobject.FeatureSet, error) {
			return valueobject.FeatureSet{}, errors.New("feature store down")
		},
	}
	uc := newSubmitUseCase(&mockLoanRepository{}, &mockEventPublisher{}, features)

	_, err := uc.Execute(context.Background(), dto.SubmitLoanRequest{
		BorrowerID:      "borrower-003",
		RequestedAmount: decimal.NewFromInt(1_000),
		TermDays:        30,
	})

	assert.ErrorContains(t, err, "feature store down")
}

func TestSubmitLoan_ValidatesPrincipal(t *testing.T) {
	uc := newSubmitUseCase(&mockLoanRepository{}, &mockEventPublisher{}, &mockFeatureSource{})

	_, err := uc.Execute(context.Background(), dto.SubmitLoanRequest{
		BorrowerID:      "borrower-004",
		RequestedAmount: decimal.Zero,
		TermDays:        30,
	})

	var vErr *valueobject.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "principal", vErr.Field)
}
