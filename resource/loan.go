package resource

import (
	"context"
	"net/http"

	"github.com/viant/policyadmin/client"
)

const (
	pathLoans           = "/loans/"
	pathLoanRepayments  = "/loan-repayments/"
	pathPremiumPayments = "/premium-payments/"
	pathKYC             = "/kyc/"
	pathClaimRequests   = "/claim-requests/"
	pathClaimProcessing = "/claim-processing/"
	pathUnderwriting    = "/underwriting/"
)

func (s *Service) Loans(ctx context.Context) *client.Envelope[[]Loan] {
	return list[Loan](ctx, s, pathLoans)
}

func (s *Service) Loan(ctx context.Context, id int) *client.Envelope[*Loan] {
	return get[Loan](ctx, s, itemPath(pathLoans, id))
}

// CreateLoan creates a loan, server managed fields are not sent.
func (s *Service) CreateLoan(ctx context.Context, loan *Loan) *client.Envelope[*Loan] {
	payload := *loan
	payload.ID, payload.CreatedAt, payload.UpdatedAt = 0, "", ""
	return send[Loan](ctx, s, http.MethodPost, pathLoans, &payload)
}

func (s *Service) UpdateLoan(ctx context.Context, id int, fields Record) *client.Envelope[*Loan] {
	return send[Loan](ctx, s, http.MethodPatch, itemPath(pathLoans, id), fields)
}

func (s *Service) DeleteLoan(ctx context.Context, id int) *client.Envelope[bool] {
	return remove(ctx, s, itemPath(pathLoans, id))
}

func (s *Service) LoanRepayments(ctx context.Context) *client.Envelope[[]LoanRepayment] {
	return list[LoanRepayment](ctx, s, pathLoanRepayments)
}

func (s *Service) LoanRepayment(ctx context.Context, id int) *client.Envelope[*LoanRepayment] {
	return get[LoanRepayment](ctx, s, itemPath(pathLoanRepayments, id))
}

func (s *Service) CreateLoanRepayment(ctx context.Context, repayment *LoanRepayment) *client.Envelope[*LoanRepayment] {
	payload := *repayment
	payload.ID = 0
	return send[LoanRepayment](ctx, s, http.MethodPost, pathLoanRepayments, &payload)
}

func (s *Service) PremiumPayments(ctx context.Context) *client.Envelope[[]Record] {
	return list[Record](ctx, s, pathPremiumPayments)
}

func (s *Service) CreatePremiumPayment(ctx context.Context, payment Record) *client.Envelope[*Record] {
	return send[Record](ctx, s, http.MethodPost, pathPremiumPayments, payment)
}

// UpdatePremiumPayment replaces the payment
func (s *Service) UpdatePremiumPayment(ctx context.Context, id int, payment Record) *client.Envelope[*Record] {
	return send[Record](ctx, s, http.MethodPut, itemPath(pathPremiumPayments, id), payment)
}

func (s *Service) KYC(ctx context.Context) *client.Envelope[[]Record] {
	return list[Record](ctx, s, pathKYC)
}

func (s *Service) ClaimRequests(ctx context.Context) *client.Envelope[[]Record] {
	return list[Record](ctx, s, pathClaimRequests)
}

func (s *Service) ClaimProcessing(ctx context.Context) *client.Envelope[[]Record] {
	return list[Record](ctx, s, pathClaimProcessing)
}

func (s *Service) Underwriting(ctx context.Context) *client.Envelope[[]Record] {
	return list[Record](ctx, s, pathUnderwriting)
}
