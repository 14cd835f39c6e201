package interfaces

import (
	"context"

	"paychangu_service/internal/infrastructure/payments"
)

// IPaymentGateway abstracts the PayChangu client so use cases can be tested
// without network access.
//
// Gateway operations do not return errors: transport and business failures
// are folded into the result envelope (Success flag + message), matching the
// provider contract.
type IPaymentGateway interface {
	CreatePayment(ctx context.Context, p payments.CheckoutParams) payments.CheckoutResult
	VerifyPayment(ctx context.Context, txRef string) payments.VerifyPaymentResult
	GetBanks(ctx context.Context, currency string) []payments.Bank
	CreateBankPayout(ctx context.Context, p payments.BankPayoutParams) payments.PayoutResult
	CreateMobilePayout(ctx context.Context, p payments.MobilePayoutParams) payments.PayoutResult
	VerifyPayout(ctx context.Context, refID string) payments.VerifyPayoutResult
}
