package grpc

// proto.go defines the gRPC service interface and message types derived
// from kopacap/lending/v1/lending.proto. This file is a stand-in for
// buf-generated code; messages travel over the registered json codec until
// `buf generate` output replaces it.

import (
	"context"

	grpclib "google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ---------------------------------------------------------------------------
// Messages
// ---------------------------------------------------------------------------

// FeatureSetMessage carries inline behavioural signals.
type FeatureSetMessage struct {
	AvgMonthlyVolume       string   `json:"avg_monthly_volume"`
	TransactionConsistency float64  `json:"transaction_consistency"`
	BusinessAgeMonths      int      `json:"business_age_months"`
	SavingsRatio           float64  `json:"savings_ratio"`
	LoanHistoryCount       int      `json:"loan_history_count"`
	DefaultRate            float64  `json:"default_rate"`
	ActivityLevel          string   `json:"activity_level"`
	CustomerRating         *float64 `json:"customer_rating,omitempty"`
	TransactionCount30d    int      `json:"transaction_count_30d"`
	IncomeConsistency      float64  `json:"income_consistency_score"`
	HasRegularIncome       bool     `json:"has_regular_income"`
	NegativeBalanceDays    int      `json:"negative_balance_days"`
}

type ScoreBorrowerRequest struct {
	BorrowerID string             `json:"borrower_id"`
	Features   *FeatureSetMessage `json:"features,omitempty"`
}

type ScoreFactorMessage struct {
	Name   string `json:"name"`
	Points int    `json:"points"`
}

type ScoreBorrowerResponse struct {
	BorrowerID  string               `json:"borrower_id"`
	RuleVersion string               `json:"rule_version"`
	Base        int                  `json:"base"`
	Factors     []ScoreFactorMessage `json:"factors"`
	RuleScore   int                  `json:"rule_score"`
	ModelScore  float64              `json:"model_score,omitempty"`
	ModelUsed   bool                 `json:"model_used"`
	FinalScore  int                  `json:"final_score"`
	RiskLevel   string               `json:"risk_level"`
}

type CheckEligibilityRequest struct {
	BorrowerID      string             `json:"borrower_id"`
	RequestedAmount string             `json:"requested_amount"`
	Features        *FeatureSetMessage `json:"features,omitempty"`
}

type CheckEligibilityResponse struct {
	BorrowerID          string `json:"borrower_id"`
	Approved            bool   `json:"approved"`
	Score               int    `json:"score"`
	MaxAmount           string `json:"max_amount"`
	InterestRatePercent string `json:"interest_rate_percent"`
	TermMonths          int    `json:"term_months"`
	RiskLevel           string `json:"risk_level"`
	Reason              string `json:"reason"`
	SuggestedAmount     string `json:"suggested_amount"`
}

type SubmitLoanRequest struct {
	BorrowerID      string             `json:"borrower_id"`
	RequestedAmount string             `json:"requested_amount"`
	TermDays        int                `json:"term_days"`
	Purpose         string             `json:"purpose"`
	Features        *FeatureSetMessage `json:"features,omitempty"`
}

type DecideLoanRequest struct {
	LoanID string `json:"loan_id"`
}

type DisburseLoanRequest struct {
	LoanID string `json:"loan_id"`
}

type RecordRepaymentRequest struct {
	LoanID     string `json:"loan_id"`
	Amount     string `json:"amount"`
	ReceiptRef string `json:"receipt_ref"`
}

type RecordRepaymentResponse struct {
	ID               string `json:"id"`
	LoanID           string `json:"loan_id"`
	Amount           string `json:"amount"`
	ReceiptRef       string `json:"receipt_ref"`
	RecordedAt       string `json:"recorded_at"`
	LoanStatus       string `json:"loan_status"`
	RepaidAmount     string `json:"repaid_amount"`
	RemainingBalance string `json:"remaining_balance"`
}

type MarkDefaultRequest struct {
	LoanID string `json:"loan_id"`
	Reason string `json:"reason"`
}

type GetLoanRequest struct {
	LoanID string `json:"loan_id"`
}

type QuoteRepaymentRequest struct {
	BorrowerID      string             `json:"borrower_id"`
	RequestedAmount string             `json:"requested_amount"`
	TermMonths      int                `json:"term_months"`
	Features        *FeatureSetMessage `json:"features,omitempty"`
}

type QuoteRepaymentResponse struct {
	BorrowerID          string `json:"borrower_id"`
	Score               int    `json:"score"`
	InterestRatePercent string `json:"interest_rate_percent"`
	TermMonths          int    `json:"term_months"`
	MonthlyInstalment   string `json:"monthly_instalment"`
	TotalRepayable      string `json:"total_repayable"`
}

type LoanResponse struct {
	ID                  string `json:"id"`
	BorrowerID          string `json:"borrower_id"`
	Principal           string `json:"principal"`
	InterestRatePercent string `json:"interest_rate_percent"`
	TermDays            int    `json:"term_days"`
	Purpose             string `json:"purpose,omitempty"`
	Status              string `json:"status"`
	CreditScore         int    `json:"credit_score"`
	RiskLevel           string `json:"risk_level"`
	DecisionReason      string `json:"decision_reason,omitempty"`
	RepaidAmount        string `json:"repaid_amount"`
	TotalRepayable      string `json:"total_repayable"`
	RemainingBalance    string `json:"remaining_balance"`
	Overdue             bool   `json:"overdue"`
	AppliedAt           string `json:"applied_at"`
	ApprovedAt          string `json:"approved_at,omitempty"`
	DisbursedAt         string `json:"disbursed_at,omitempty"`
	DueDate             string `json:"due_date,omitempty"`
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// LendingServiceServer is the server API for LendingService.
// It mirrors the proto-generated interface from kopacap.lending.v1.LendingService.
type LendingServiceServer interface {
	ScoreBorrower(context.Context, *ScoreBorrowerRequest) (*ScoreBorrowerResponse, error)
	CheckEligibility(context.Context, *CheckEligibilityRequest) (*CheckEligibilityResponse, error)
	SubmitLoan(context.Context, *SubmitLoanRequest) (*LoanResponse, error)
	DecideLoan(context.Context, *DecideLoanRequest) (*LoanResponse, error)
	DisburseLoan(context.Context, *DisburseLoanRequest) (*LoanResponse, error)
	RecordRepayment(context.Context, *RecordRepaymentRequest) (*RecordRepaymentResponse, error)
	MarkDefault(context.Context, *MarkDefaultRequest) (*LoanResponse, error)
	GetLoan(context.Context, *GetLoanRequest) (*LoanResponse, error)
	QuoteRepayment(context.Context, *QuoteRepaymentRequest) (*QuoteRepaymentResponse, error)
	mustEmbedUnimplementedLendingServiceServer()
}

// UnimplementedLendingServiceServer provides forward-compatible default implementations.
type UnimplementedLendingServiceServer struct{}

func (UnimplementedLendingServiceServer) ScoreBorrower(context.Context, *ScoreBorrowerRequest) (*ScoreBorrowerResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ScoreBorrower not implemented")
}
func (UnimplementedLendingServiceServer) CheckEligibility(context.Context, *CheckEligibilityRequest) (*CheckEligibilityResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CheckEligibility not implemented")
}
func (UnimplementedLendingServiceServer) SubmitLoan(context.Context, *SubmitLoanRequest) (*LoanResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SubmitLoan not implemented")
}
func (UnimplementedLendingServiceServer) DecideLoan(context.Context, *DecideLoanRequest) (*LoanResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method DecideLoan not implemented")
}
func (UnimplementedLendingServiceServer) DisburseLoan(context.Context, *DisburseLoanRequest) (*LoanResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method DisburseLoan not implemented")
}
func (UnimplementedLendingServiceServer) RecordRepayment(context.Context, *RecordRepaymentRequest) (*RecordRepaymentResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method RecordRepayment not implemented")
}
func (UnimplementedLendingServiceServer) MarkDefault(context.Context, *MarkDefaultRequest) (*LoanResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method MarkDefault not implemented")
}
func (UnimplementedLendingServiceServer) GetLoan(context.Context, *GetLoanRequest) (*LoanResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetLoan not implemented")
}
func (UnimplementedLendingServiceServer) QuoteRepayment(context.Context, *QuoteRepaymentRequest) (*QuoteRepaymentResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method QuoteRepayment not implemented")
}
func (UnimplementedLendingServiceServer) mustEmbedUnimplementedLendingServiceServer() {}

// RegisterLendingServiceServer registers the LendingServiceServer with the gRPC server.
func RegisterLendingServiceServer(s *grpclib.Server, srv LendingServiceServer) {
	s.RegisterService(&_LendingService_serviceDesc, srv) //nolint:revive // gRPC handler registration
}

//nolint:revive // gRPC handler registration
var _LendingService_serviceDesc = grpclib.ServiceDesc{
	ServiceName: "kopacap.lending.v1.LendingService",
	HandlerType: (*LendingServiceServer)(nil),
	Methods: []grpclib.MethodDesc{
		{MethodName: "ScoreBorrower", Handler: _LendingService_ScoreBorrower_Handler},       //nolint:revive // gRPC handler registration
		{MethodName: "CheckEligibility", Handler: _LendingService_CheckEligibility_Handler}, //nolint:revive // gRPC handler registration
		{MethodName: "SubmitLoan", Handler: _LendingService_SubmitLoan_Handler},             //nolint:revive // gRPC handler registration
		{MethodName: "DecideLoan", Handler: _LendingService_DecideLoan_Handler},             //nolint:revive // gRPC handler registration
		{MethodName: "DisburseLoan", Handler: _LendingService_DisburseLoan_Handler},         //nolint:revive // gRPC handler registration
		{MethodName: "RecordRepayment", Handler: _LendingService_RecordRepayment_Handler},   //nolint:revive // gRPC handler registration
		{MethodName: "MarkDefault", Handler: _LendingService_MarkDefault_Handler},           //nolint:revive // gRPC handler registration
		{MethodName: "GetLoan", Handler: _LendingService_GetLoan_Handler},                   //nolint:revive // gRPC handler registration
		{MethodName: "QuoteRepayment", Handler: _LendingService_QuoteRepayment_Handler},     //nolint:revive // gRPC handler registration
	},
	Streams: []grpclib.StreamDesc{},
}

//nolint:revive,errcheck // gRPC handler registration
func _LendingService_ScoreBorrower_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(ScoreBorrowerRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LendingServiceServer).ScoreBorrower(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/kopacap.lending.v1.LendingService/ScoreBorrower",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(LendingServiceServer).ScoreBorrower(ctx, req.(*ScoreBorrowerRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _LendingService_CheckEligibility_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(CheckEligibilityRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LendingServiceServer).CheckEligibility(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/kopacap.lending.v1.LendingService/CheckEligibility",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(LendingServiceServer).CheckEligibility(ctx, req.(*CheckEligibilityRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _LendingService_SubmitLoan_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(SubmitLoanRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LendingServiceServer).SubmitLoan(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/kopacap.lending.v1.LendingService/SubmitLoan",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(LendingServiceServer).SubmitLoan(ctx, req.(*SubmitLoanRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _LendingService_DecideLoan_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(DecideLoanRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LendingServiceServer).DecideLoan(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/kopacap.lending.v1.LendingService/DecideLoan",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(LendingServiceServer).DecideLoan(ctx, req.(*DecideLoanRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _LendingService_DisburseLoan_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(DisburseLoanRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LendingServiceServer).DisburseLoan(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/kopacap.lending.v1.LendingService/DisburseLoan",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(LendingServiceServer).DisburseLoan(ctx, req.(*DisburseLoanRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _LendingService_RecordRepayment_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(RecordRepaymentRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LendingServiceServer).RecordRepayment(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/kopacap.lending.v1.LendingService/RecordRepayment",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(LendingServiceServer).RecordRepayment(ctx, req.(*RecordRepaymentRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _LendingService_MarkDefault_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(MarkDefaultRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LendingServiceServer).MarkDefault(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/kopacap.lending.v1.LendingService/MarkDefault",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(LendingServiceServer).MarkDefault(ctx, req.(*MarkDefaultRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _LendingService_GetLoan_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetLoanRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LendingServiceServer).GetLoan(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/kopacap.lending.v1.LendingService/GetLoan",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(LendingServiceServer).GetLoan(ctx, req.(*GetLoanRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _LendingService_QuoteRepayment_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(QuoteRepaymentRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LendingServiceServer).QuoteRepayment(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/kopacap.lending.v1.LendingService/QuoteRepayment",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(LendingServiceServer).QuoteRepayment(ctx, req.(*QuoteRepaymentRequest))
	}
	return interceptor(ctx, in, info, handler)
}
