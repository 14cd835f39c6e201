package request

// BankPayoutRequest is the payload accepted by POST /v1/payouts/bank.
type BankPayoutRequest struct {
	Amount        float64 `json:"amount" binding:"required,gt=0"`
	BankUUID      string  `json:"bank_uuid" binding:"required"`
	AccountName   string  `json:"account_name" binding:"required"`
	AccountNumber string  `json:"account_number" binding:"required"`
}

// MobilePayoutRequest is the payload accepted by POST /v1/payouts/mobile.
// The mobile money provider is resolved server-side from the number prefix.
type MobilePayoutRequest struct {
	Amount       float64 `json:"amount" binding:"required,gt=0"`
	MobileNumber string  `json:"mobile_number" binding:"required"`
}
