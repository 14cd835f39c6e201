package entities

import (
	"encoding/json"
	"time"
)

// PaymentStatus mirrors the checkout status reported by PayChangu.
//
// A payment starts pending when the checkout session is created and moves to
// success/failed when verification reflects the customer's outcome.
type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusSuccess PaymentStatus = "success"
	PaymentStatusFailed  PaymentStatus = "failed"
)

// Payment is a checkout attempt persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: tx_ref (the locally generated PayChangu correlation token)
//   - GSI1 (email-index): email
//
// Provider payload:
//   - ProviderPayloadRaw keeps the last verification body (JSON) for audit.
//   - ProviderPayload is an optional parsed representation for debugging.
type Payment struct {
	TxRef       string        `json:"tx_ref"`
	Email       string        `json:"email"`
	FirstName   string        `json:"first_name"`
	LastName    string        `json:"last_name"`
	Amount      float64       `json:"amount"`
	Currency    string        `json:"currency"`
	Description string        `json:"description,omitempty"`
	Status      PaymentStatus `json:"status"`
	CheckoutURL string        `json:"checkout_url,omitempty"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`

	ProviderPayloadRaw json.RawMessage        `json:"provider_payload_raw,omitempty"`
	ProviderPayload    map[string]interface{} `json:"provider_payload,omitempty"`
}
