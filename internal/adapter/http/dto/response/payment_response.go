package response

import (
	"time"

	"paychangu_service/internal/domain/entities"
)

type PaymentResponse struct {
	TxRef       string    `json:"tx_ref"`
	Email       string    `json:"email"`
	FirstName   string    `json:"first_name,omitempty"`
	LastName    string    `json:"last_name,omitempty"`
	Amount      float64   `json:"amount"`
	Currency    string    `json:"currency"`
	Description string    `json:"description,omitempty"`
	Status      string    `json:"status"`
	CheckoutURL string    `json:"checkout_url,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	ProviderPayload map[string]interface{} `json:"provider_payload,omitempty"`
}

func FromPayment(p entities.Payment) PaymentResponse {
	return PaymentResponse{
		TxRef:           p.TxRef,
		Email:           p.Email,
		FirstName:       p.FirstName,
		LastName:        p.LastName,
		Amount:          p.Amount,
		Currency:        p.Currency,
		Description:     p.Description,
		Status:          string(p.Status),
		CheckoutURL:     p.CheckoutURL,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
		ProviderPayload: p.ProviderPayload,
	}
}

func FromPayments(ps []entities.Payment) []PaymentResponse {
	out := make([]PaymentResponse, 0, len(ps))
	for _, p := range ps {
		out = append(out, FromPayment(p))
	}
	return out
}
