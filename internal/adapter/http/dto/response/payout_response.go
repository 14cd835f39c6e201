package response

import (
	"time"

	"paychangu_service/internal/domain/entities"
	"paychangu_service/internal/infrastructure/payments"
)

type PayoutResponse struct {
	ChargeID      string    `json:"charge_id"`
	Method        string    `json:"method"`
	Amount        float64   `json:"amount"`
	BankUUID      string    `json:"bank_uuid,omitempty"`
	AccountName   string    `json:"account_name,omitempty"`
	AccountNumber string    `json:"account_number,omitempty"`
	MobileNumber  string    `json:"mobile_number,omitempty"`
	RefID         string    `json:"ref_id,omitempty"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`

	ProviderPayload map[string]interface{} `json:"provider_payload,omitempty"`
}

func FromPayout(p entities.Payout) PayoutResponse {
	return PayoutResponse{
		ChargeID:        p.ChargeID,
		Method:          string(p.Method),
		Amount:          p.Amount,
		BankUUID:        p.BankUUID,
		AccountName:     p.AccountName,
		AccountNumber:   p.AccountNumber,
		MobileNumber:    p.MobileNumber,
		RefID:           p.RefID,
		Status:          string(p.Status),
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
		ProviderPayload: p.ProviderPayload,
	}
}

type BankResponse struct {
	UUID string `json:"uuid"`
	Name string `json:"name"`
}

type BankListResponse struct {
	Currency string         `json:"currency"`
	Banks    []BankResponse `json:"banks"`
}

func FromBanks(currency string, banks []payments.Bank) BankListResponse {
	out := make([]BankResponse, 0, len(banks))
	for _, b := range banks {
		out = append(out, BankResponse{UUID: b.UUID, Name: b.Name})
	}
	return BankListResponse{Currency: currency, Banks: out}
}
