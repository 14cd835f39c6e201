package entities

import (
	"encoding/json"
	"time"
)

// PayoutMethod is the disbursement channel accepted by PayChangu.
type PayoutMethod string

const (
	PayoutMethodBankTransfer PayoutMethod = "bank_transfer"
	PayoutMethodMobileMoney  PayoutMethod = "mobile_money"
)

// PayoutStatus mirrors the payout status reported by PayChangu.
type PayoutStatus string

const (
	PayoutStatusPending   PayoutStatus = "pending"
	PayoutStatusCompleted PayoutStatus = "completed"
	PayoutStatusFailed    PayoutStatus = "failed"
)

// Payout is an outbound transfer persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: charge_id (the locally generated correlation token)
//   - GSI1 (ref_id-index): ref_id (the provider's transaction reference)
//
// Bank transfers carry the bank/account fields; mobile money payouts carry
// the mobile number and the resolved provider uuid.
type Payout struct {
	ChargeID      string       `json:"charge_id"`
	Method        PayoutMethod `json:"method"`
	Amount        float64      `json:"amount"`
	BankUUID      string       `json:"bank_uuid,omitempty"`
	AccountName   string       `json:"account_name,omitempty"`
	AccountNumber string       `json:"account_number,omitempty"`
	MobileNumber  string       `json:"mobile_number,omitempty"`
	RefID         string       `json:"ref_id,omitempty"`
	Status        PayoutStatus `json:"status"`
	CreatedAt     time.Time    `json:"created_at"`
	UpdatedAt     time.Time    `json:"updated_at"`

	ProviderPayloadRaw json.RawMessage        `json:"provider_payload_raw,omitempty"`
	ProviderPayload    map[string]interface{} `json:"provider_payload,omitempty"`
}
