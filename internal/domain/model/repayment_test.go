package model_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kopacap/lending/internal/domain/model"
	"github.com/kopacap/lending/internal/domain/valueobject"
)

func TestNewRepayment(t *testing.T) {
	rep, err := model.NewRepayment("loan-1", decimal.NewFromInt(500), "rcpt-123", testTime)
	require.NoError(t, err)

	assert.NotEmpty(t, rep.ID())
	assert.Equal(t, "loan-1", rep.LoanID())
	assert.True(t, decimal.NewFromInt(500).Equal(rep.Amount()))
	assert.Equal(t, "rcpt-123", rep.ReceiptRef())
	assert.Equal(t, testTime, rep.RecordedAt())
}

func TestNewRepaymentValidation(t *testing.T) {
	tests := []struct {
		name   string
		loanID string
		amount decimal.Decimal
		ref    string
		field  string
	}{
		{"empty loan id", "", decimal.NewFromInt(100), "rcpt", "loan_id"},
		{"zero amount", "loan-1", decimal.Zero, "rcpt", "amount"},
		{"negative amount", "loan-1", decimal.NewFromInt(-10), "rcpt", "amount"},
		{"empty receipt", "loan-1", decimal.NewFromInt(100), "", "receipt_ref"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := model.NewRepayment(tt.loanID, tt.amount, tt.ref, testTime)
			var verr *valueobject.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.field, verr.Field)
		})
	}
}
