package grpc

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/kopacap/lending/internal/application/dto"
	"github.com/kopacap/lending/internal/application/usecase"
	"github.com/kopacap/lending/internal/domain/valueobject"
)

// LendingHandler implements LendingServiceServer on top of the use cases.
type LendingHandler struct {
	UnimplementedLendingServiceServer

	score       *usecase.ScoreBorrowerUseCase
	eligibility *usecase.CheckEligibilityUseCase
	submit      *usecase.SubmitLoanUseCase
	decide      *usecase.DecideLoanUseCase
	disburse    *usecase.DisburseLoanUseCase
	repay       *usecase.RecordRepaymentUseCase
	markDefault *usecase.MarkDefaultUseCase
	getLoan     *usecase.GetLoanUseCase
	quote       *usecase.QuoteRepaymentUseCase
}

// NewLendingHandler creates a new handler with all use-case dependencies.
func NewLendingHandler(
	score *usecase.ScoreBorrowerUseCase,
	eligibility *usecase.CheckEligibilityUseCase,
	submit *usecase.SubmitLoanUseCase,
	decide *usecase.DecideLoanUseCase,
	disburse *usecase.DisburseLoanUseCase,
	repay *usecase.RecordRepaymentUseCase,
	markDefault *usecase.MarkDefaultUseCase,
	getLoan *usecase.GetLoanUseCase,
	quote *usecase.QuoteRepaymentUseCase,
) *LendingHandler {
	return &LendingHandler{
		score:       score,
		eligibility: eligibility,
		submit:      submit,
		decide:      decide,
		disburse:    disburse,
		repay:       repay,
		markDefault: markDefault,
		getLoan:     getLoan,
		quote:       quote,
	}
}

// ScoreBorrower runs a scoring pass.
func (h *LendingHandler) ScoreBorrower(ctx context.Context, req *ScoreBorrowerRequest) (*ScoreBorrowerResponse, error) {
	features, err := featuresFromMessage(req.Features)
	if err != nil {
		return nil, err
	}
	resp, err := h.score.Execute(ctx, dto.ScoreBorrowerRequest{
		BorrowerID: req.BorrowerID,
		Features:   features,
	})
	if err != nil {
		return nil, grpcError(err)
	}
	factors := make([]ScoreFactorMessage, 0, len(resp.Factors))
	for _, f := range resp.Factors {
		factors = append(factors, ScoreFactorMessage{Name: f.Name, Points: f.Points})
	}
	return &ScoreBorrowerResponse{
		BorrowerID:  resp.BorrowerID,
		RuleVersion: resp.RuleVersion,
		Base:        resp.Base,
		Factors:     factors,
		RuleScore:   resp.RuleScore,
		ModelScore:  resp.ModelScore,
		ModelUsed:   resp.ModelUsed,
		FinalScore:  resp.FinalScore,
		RiskLevel:   resp.RiskLevel,
	}, nil
}

// CheckEligibility evaluates a requested amount.
func (h *LendingHandler) CheckEligibility(ctx context.Context, req *CheckEligibilityRequest) (*CheckEligibilityResponse, error) {
	amount, err := parseAmount(req.RequestedAmount)
	if err != nil {
		return nil, err
	}
	features, err := featuresFromMessage(req.Features)
	if err != nil {
		return nil, err
	}
	resp, err := h.eligibility.Execute(ctx, dto.CheckEligibilityRequest{
		BorrowerID:      req.BorrowerID,
		RequestedAmount: amount,
		Features:        features,
	})
	if err != nil {
		return nil, grpcError(err)
	}
	return &CheckEligibilityResponse{
		BorrowerID:          resp.BorrowerID,
		Approved:            resp.Approved,
		Score:               resp.Score,
		MaxAmount:           resp.MaxAmount.String(),
		InterestRatePercent: resp.InterestRatePercent.String(),
		TermMonths:          resp.TermMonths,
		RiskLevel:           resp.RiskLevel,
		Reason:              resp.Reason,
		SuggestedAmount:     resp.SuggestedAmount.String(),
	}, nil
}

// SubmitLoan opens a pending loan application.
func (h *LendingHandler) SubmitLoan(ctx context.Context, req *SubmitLoanRequest) (*LoanResponse, error) {
	amount, err := parseAmount(req.RequestedAmount)
	if err != nil {
		return nil, err
	}
	features, err := featuresFromMessage(req.Features)
	if err != nil {
		return nil, err
	}
	resp, err := h.submit.Execute(ctx, dto.SubmitLoanRequest{
		BorrowerID:      req.BorrowerID,
		RequestedAmount: amount,
		TermDays:        req.TermDays,
		Purpose:         req.Purpose,
		Features:        features,
	})
	if err != nil {
		return nil, grpcError(err)
	}
	return loanToMessage(resp), nil
}

// DecideLoan approves or rejects a pending loan.
func (h *LendingHandler) DecideLoan(ctx context.Context, req *DecideLoanRequest) (*LoanResponse, error) {
	resp, err := h.decide.Execute(ctx, dto.DecideLoanRequest{LoanID: req.LoanID})
	if err != nil {
		return nil, grpcError(err)
	}
	return loanToMessage(resp), nil
}

// DisburseLoan releases funds for an approved loan.
func (h *LendingHandler) DisburseLoan(ctx context.Context, req *DisburseLoanRequest) (*LoanResponse, error) {
	resp, err := h.disburse.Execute(ctx, dto.DisburseLoanRequest{LoanID: req.LoanID})
	if err != nil {
		return nil, grpcError(err)
	}
	return loanToMessage(resp), nil
}

// RecordRepayment applies a repayment.
func (h *LendingHandler) RecordRepayment(ctx context.Context, req *RecordRepaymentRequest) (*RecordRepaymentResponse, error) {
	amount, err := parseAmount(req.Amount)
	if err != nil {
		return nil, err
	}
	resp, err := h.repay.Execute(ctx, dto.RecordRepaymentRequest{
		LoanID:     req.LoanID,
		Amount:     amount,
		ReceiptRef: req.ReceiptRef,
	})
	if err != nil {
		return nil, grpcError(err)
	}
	return &RecordRepaymentResponse{
		ID:               resp.ID,
		LoanID:           resp.LoanID,
		Amount:           resp.Amount.String(),
		ReceiptRef:       resp.ReceiptRef,
		RecordedAt:       resp.RecordedAt.Format(time.RFC3339),
		LoanStatus:       resp.LoanStatus,
		RepaidAmount:     resp.RepaidAmount.String(),
		RemainingBalance: resp.RemainingBalance.String(),
	}, nil
}

// MarkDefault marks a disbursed loan as defaulted.
func (h *LendingHandler) MarkDefault(ctx context.Context, req *MarkDefaultRequest) (*LoanResponse, error) {
	resp, err := h.markDefault.Execute(ctx, dto.MarkDefaultRequest{
		LoanID: req.LoanID,
		Reason: req.Reason,
	})
	if err != nil {
		return nil, grpcError(err)
	}
	return loanToMessage(resp), nil
}

// GetLoan retrieves a loan by id.
func (h *LendingHandler) GetLoan(ctx context.Context, req *GetLoanRequest) (*LoanResponse, error) {
	resp, err := h.getLoan.Execute(ctx, dto.GetLoanRequest{LoanID: req.LoanID})
	if err != nil {
		return nil, grpcError(err)
	}
	return loanToMessage(resp), nil
}

// QuoteRepayment computes a what-if repayment schedule.
func (h *LendingHandler) QuoteRepayment(ctx context.Context, req *QuoteRepaymentRequest) (*QuoteRepaymentResponse, error) {
	amount, err := parseAmount(req.RequestedAmount)
	if err != nil {
		return nil, err
	}
	features, err := featuresFromMessage(req.Features)
	if err != nil {
		return nil, err
	}
	resp, err := h.quote.Execute(ctx, dto.QuoteRepaymentRequest{
		BorrowerID:      req.BorrowerID,
		RequestedAmount: amount,
		TermMonths:      req.TermMonths,
		Features:        features,
	})
	if err != nil {
		return nil, grpcError(err)
	}
	return &QuoteRepaymentResponse{
		BorrowerID:          resp.BorrowerID,
		Score:               resp.Score,
		InterestRatePercent: resp.InterestRatePercent.String(),
		TermMonths:          resp.TermMonths,
		MonthlyInstalment:   resp.MonthlyInstalment.String(),
		TotalRepayable:      resp.TotalRepayable.String(),
	}, nil
}

// ---------------------------------------------------------------------------
// mapping helpers
// ---------------------------------------------------------------------------

func parseAmount(raw string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Decimal{}, status.Errorf(codes.InvalidArgument, "invalid amount: %v", err)
	}
	return amount, nil
}

func featuresFromMessage(m *FeatureSetMessage) (*dto.FeatureSetRequest, error) {
	if m == nil {
		return nil, nil
	}
	volume := decimal.Zero
	if m.AvgMonthlyVolume != "" {
		var err error
		volume, err = decimal.NewFromString(m.AvgMonthlyVolume)
		if err != nil {
			return nil, status.Errorf(codes.InvalidArgument, "invalid avg_monthly_volume: %v", err)
		}
	}
	return &dto.FeatureSetRequest{
		AvgMonthlyVolume:       volume,
		TransactionConsistency: m.TransactionConsistency,
		BusinessAgeMonths:      m.BusinessAgeMonths,
		SavingsRatio:           m.SavingsRatio,
		LoanHistoryCount:       m.LoanHistoryCount,
		DefaultRate:            m.DefaultRate,
		ActivityLevel:          m.ActivityLevel,
		CustomerRating:         m.CustomerRating,
		TransactionCount30d:    m.TransactionCount30d,
		IncomeConsistency:      m.IncomeConsistency,
		HasRegularIncome:       m.HasRegularIncome,
		NegativeBalanceDays:    m.NegativeBalanceDays,
	}, nil
}

func loanToMessage(resp dto.LoanResponse) *LoanResponse {
	msg := &LoanResponse{
		ID:                  resp.ID,
		BorrowerID:          resp.BorrowerID,
		Principal:           resp.Principal.String(),
		InterestRatePercent: resp.InterestRatePercent.String(),
		TermDays:            resp.TermDays,
		Purpose:             resp.Purpose,
		Status:              resp.Status,
		CreditScore:         resp.CreditScore,
		RiskLevel:           resp.RiskLevel,
		DecisionReason:      resp.DecisionReason,
		RepaidAmount:        resp.RepaidAmount.String(),
		TotalRepayable:      resp.TotalRepayable.String(),
		RemainingBalance:    resp.RemainingBalance.String(),
		Overdue:             resp.Overdue,
		AppliedAt:           resp.AppliedAt.Format(time.RFC3339),
	}
	if resp.ApprovedAt != nil {
		msg.ApprovedAt = resp.ApprovedAt.Format(time.RFC3339)
	}
	if resp.DisbursedAt != nil {
		msg.DisbursedAt = resp.DisbursedAt.Format(time.RFC3339)
	}
	if resp.DueDate != nil {
		msg.DueDate = resp.DueDate.Format(time.RFC3339)
	}
	return msg
}

// grpcError maps domain errors onto gRPC status codes.
func grpcError(err error) error {
	var vErr *valueobject.ValidationError
	switch {
	case errors.As(err, &vErr):
		return status.Error(codes.InvalidArgument, vErr.Error())
	case errors.Is(err, valueobject.ErrLoanNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, valueobject.ErrDuplicateReceipt):
		return status.Error(codes.AlreadyExists, err.Error())
	case errors.Is(err, valueobject.ErrOpenLoanExists):
		return status.Error(codes.FailedPrecondition, err.Error())
	case errors.Is(err, valueobject.ErrInvalidStatusTransition),
		errors.Is(err, valueobject.ErrLoanNotPayable):
		return status.Error(codes.FailedPrecondition, err.Error())
	case errors.Is(err, valueobject.ErrVersionConflict):
		return status.Error(codes.Aborted, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}
