package usecase

import (
	"time"

	"github.com/kopacap/lending/internal/application/dto"
	"github.com/kopacap/lending/internal/domain/model"
	"github.com/kopacap/lending/internal/domain/service"
)

func loanToResponse(loan model.Loan, now time.Time) dto.LoanResponse {
	return dto.LoanResponse{
		ID:                  loan.ID(),
		BorrowerID:          loan.BorrowerID(),
		Principal:           loan.Principal(),
		InterestRatePercent: loan.InterestRatePercent(),
		TermDays:            loan.TermDays(),
		Purpose:             loan.Purpose(),
		Status:              loan.Status().String(),
		CreditScore:         loan.CreditScore(),
		RiskLevel:           loan.RiskLevel().String(),
		DecisionReason:      loan.DecisionReason(),
		RepaidAmount:        loan.RepaidAmount(),
		TotalRepayable:      loan.TotalRepayable(),
		RemainingBalance:    loan.RemainingBalance(),
		Overdue:             loan.IsOverdue(now),
		AppliedAt:           loan.AppliedAt(),
		ApprovedAt:          loan.ApprovedAt(),
		DisbursedAt:         loan.DisbursedAt(),
		DueDate:             loan.DueDate(),
	}
}

func breakdownToResponse(borrowerID string, b service.ScoreBreakdown, riskLevel string) dto.ScoreResponse {
	factors := make([]dto.ScoreFactorResponse, 0, len(b.Factors))
	for _, f := range b.Factors {
		factors = append(factors, dto.ScoreFactorResponse{Name: f.Name, Points: f.Points})
	}
	return dto.ScoreResponse{
		BorrowerID:  borrowerID,
		RuleVersion: b.RuleVersion,
		Base:        b.Base,
		Factors:     factors,
		RuleScore:   b.RuleScore,
		ModelScore:  b.ModelScore,
		ModelUsed:   b.ModelUsed,
		FinalScore:  b.FinalScore,
		RiskLevel:   riskLevel,
	}
}
