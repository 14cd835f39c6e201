package request

import "strings"

// CreatePaymentRequest is the payload accepted by POST /v1/payments.
//
// Amount stays numeric on the wire here; the PayChangu client is responsible
// for serializing it as text when talking to the provider.
type CreatePaymentRequest struct {
	Amount      float64 `json:"amount" binding:"required,gt=0"`
	Email       string  `json:"email" binding:"required,email"`
	FirstName   string  `json:"first_name" binding:"required"`
	LastName    string  `json:"last_name" binding:"required"`
	CallbackURL string  `json:"callback_url" binding:"required,url"`
	ReturnURL   string  `json:"return_url" binding:"required,url"`
	Currency    string  `json:"currency"`
	Description string  `json:"description"`
}

// ResolveCurrency returns the requested currency or the MWK default.
func (r CreatePaymentRequest) ResolveCurrency() string {
	if v := strings.TrimSpace(r.Currency); v != "" {
		return strings.ToUpper(v)
	}
	return "MWK"
}
