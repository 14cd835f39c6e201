package payments

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"math/rand"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const defaultBaseURL = "https://api.paychangu.com"

// Known mobile money providers for Malawi payouts. PayChangu identifies the
// provider by the same uuid field used for banks.
const (
	AirtelMoneyUUID = "e8d5fca0-e5ac-4714-a518-484be9011326"
	TNMMpambaUUID   = "5e9946ae-76ed-43f5-ad59-63e09096006a"
)

// MobileProviderRoute maps mobile-number prefixes to a payout provider uuid.
// Routes are checked in order; the first matching prefix wins.
type MobileProviderRoute struct {
	Prefixes     []string
	ProviderUUID string
}

func defaultMobileRoutes() []MobileProviderRoute {
	return []MobileProviderRoute{
		{Prefixes: []string{"088", "+26588"}, ProviderUUID: AirtelMoneyUUID},
	}
}

// PayChanguClient is a thin wrapper around the PayChangu HTTP API.
//
// All operations return a result struct with a Success flag instead of an
// error: network-level failures are folded into the result envelope and
// business failures are judged from the response body (status == "success").
// Note that HTTP 4xx/5xx responses count as transport-successful; whether
// they should instead be treated as transport failures is a pending product
// decision, so the original classification is kept.
type PayChanguClient struct {
	secretKey  string
	baseURL    string
	httpClient *http.Client

	now  func() time.Time
	intn func(n int) int

	mobileRoutes       []MobileProviderRoute
	fallbackProviderID string
}

// Option configures a PayChanguClient.
type Option func(*PayChanguClient)

// WithBaseURL overrides the PayChangu API base URL (tests, sandboxes).
func WithBaseURL(base string) Option {
	return func(c *PayChanguClient) { c.baseURL = strings.TrimRight(base, "/") }
}

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *PayChanguClient) { c.httpClient = hc }
}

// WithClock overrides the time source used for reference generation.
func WithClock(now func() time.Time) Option {
	return func(c *PayChanguClient) { c.now = now }
}

// WithRand overrides the random source used for reference generation.
func WithRand(intn func(n int) int) Option {
	return func(c *PayChanguClient) { c.intn = intn }
}

// WithMobileProviders replaces the prefix routing table used to pick a
// mobile money provider. Numbers matching no route go to fallback.
func WithMobileProviders(routes []MobileProviderRoute, fallback string) Option {
	return func(c *PayChanguClient) {
		c.mobileRoutes = routes
		c.fallbackProviderID = fallback
	}
}

// NewPayChanguClient builds a client for the given secret key. The key format
// is not validated; a bad key surfaces as a business failure from the API.
func NewPayChanguClient(secretKey string, opts ...Option) *PayChanguClient {
	c := &PayChanguClient{
		secretKey:          secretKey,
		baseURL:            defaultBaseURL,
		httpClient:         &http.Client{Timeout: 30 * time.Second},
		now:                time.Now,
		intn:               rand.Intn,
		mobileRoutes:       defaultMobileRoutes(),
		fallbackProviderID: TNMMpambaUUID,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// generateReference builds a correlation token: {prefix}_{unix}_{6 digits}.
// Not guaranteed unique; the remote system does not enforce uniqueness either.
func (c *PayChanguClient) generateReference(prefix string) string {
	return fmt.Sprintf("%s_%d_%d", prefix, c.now().Unix(), 100000+c.intn(900000))
}

// formatAmount serializes an amount as decimal text. PayChangu expects
// numeric-as-string in request payloads.
func formatAmount(amount float64) string {
	return strconv.FormatFloat(amount, 'f', -1, 64)
}

// truncateBody caps response text for log lines.
func truncateBody(raw string) string {
	if len(raw) > 256 {
		return raw[:256]
	}
	return raw
}

// apiEnvelope is the common top-level shape of PayChangu responses. Data
// varies per endpoint and is decoded separately by each operation.
type apiEnvelope struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type transportResult struct {
	Success    bool
	StatusCode int
	Body       apiEnvelope
	Raw        string
	Err        string
}

// sendRequest issues a GET or POST against the API. Any HTTP response,
// including 4xx/5xx, yields Success = (status in {200,201}); only
// network-level failures produce Err. Unsupported methods are rejected
// before any I/O.
func (c *PayChanguClient) sendRequest(ctx context.Context, method, path string, payload any) (transportResult, error) {
	if method != http.MethodGet && method != http.MethodPost {
		return transportResult{}, fmt.Errorf("unsupported method: %s", method)
	}

	var body io.Reader
	if method == http.MethodPost && payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return transportResult{}, fmt.Errorf("marshal payload: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return transportResult{Err: err.Error()}, nil
	}
	req.Header.Set("Authorization", "Bearer "+c.secretKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return transportResult{Err: err.Error()}, nil
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(resp.Body)
	res := transportResult{
		Success:    resp.StatusCode == http.StatusOK || resp.StatusCode == http.StatusCreated,
		StatusCode: resp.StatusCode,
		Raw:        string(raw),
	}
	// Empty or unparsable bodies leave the envelope at its zero value.
	if len(raw) > 0 {
		_ = json.Unmarshal(raw, &res.Body)
	}
	return res, nil
}

// CheckoutParams carries the inputs for a hosted checkout session.
type CheckoutParams struct {
	Amount      float64
	Email       string
	FirstName   string
	LastName    string
	CallbackURL string
	ReturnURL   string
	Currency    string // defaults to MWK
	Description string
}

// CheckoutResult is the outcome of CreatePayment. TxRef is populated on
// failure too so callers can correlate the attempt.
type CheckoutResult struct {
	Success     bool   `json:"success"`
	CheckoutURL string `json:"checkout_url,omitempty"`
	TxRef       string `json:"tx_ref"`
	Message     string `json:"message"`
}

type checkoutCustomization struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type checkoutPayload struct {
	Amount        string                 `json:"amount"`
	Currency      string                 `json:"currency"`
	Email         string                 `json:"email"`
	FirstName     string                 `json:"first_name"`
	LastName      string                 `json:"last_name"`
	CallbackURL   string                 `json:"callback_url"`
	ReturnURL     string                 `json:"return_url"`
	TxRef         string                 `json:"tx_ref"`
	Customization *checkoutCustomization `json:"customization,omitempty"`
}

type checkoutData struct {
	CheckoutURL string `json:"checkout_url"`
}

// CreatePayment creates a hosted checkout session.
func (c *PayChanguClient) CreatePayment(ctx context.Context, p CheckoutParams) CheckoutResult {
	txRef := c.generateReference("payment")

	currency := p.Currency
	if currency == "" {
		currency = "MWK"
	}
	payload := checkoutPayload{
		Amount:      formatAmount(p.Amount),
		Currency:    currency,
		Email:       p.Email,
		FirstName:   p.FirstName,
		LastName:    p.LastName,
		CallbackURL: p.CallbackURL,
		ReturnURL:   p.ReturnURL,
		TxRef:       txRef,
	}
	if p.Description != "" {
		payload.Customization = &checkoutCustomization{Title: "Payment", Description: p.Description}
	}

	res, err := c.sendRequest(ctx, http.MethodPost, "/payment", payload)
	if err != nil {
		return CheckoutResult{TxRef: txRef, Message: err.Error()}
	}

	if res.Success && res.Body.Status == "success" {
		var data checkoutData
		_ = json.Unmarshal(res.Body.Data, &data)
		log.Printf("[paychangu][client] checkout created tx_ref=%s", txRef)
		return CheckoutResult{
			Success:     true,
			CheckoutURL: data.CheckoutURL,
			TxRef:       txRef,
			Message:     "Payment created successfully",
		}
	}

	msg := res.Body.Message
	if msg == "" {
		msg = "Payment creation failed"
	}
	log.Printf("[paychangu][client] checkout failed tx_ref=%s status_code=%d err=%q body=%q", txRef, res.StatusCode, res.Err, truncateBody(res.Raw))
	return CheckoutResult{TxRef: txRef, Message: msg}
}

// PaymentDetails is the verified-payment record returned by PayChangu.
// Fields missing from the response stay at their zero value.
type PaymentDetails struct {
	TxRef     string `json:"tx_ref"`
	Status    string `json:"status"`
	Amount    string `json:"amount"`
	Currency  string `json:"currency"`
	Reference string `json:"reference"`
}

// VerifyPaymentResult is the outcome of VerifyPayment.
type VerifyPaymentResult struct {
	Success    bool            `json:"success"`
	Status     string          `json:"status"`
	Details    PaymentDetails  `json:"details"`
	RawDetails json.RawMessage `json:"raw_details,omitempty"`
	Message    string          `json:"message,omitempty"`
}

// VerifyPayment fetches the current status of a checkout by its tx_ref.
// Unlike the checkout call, transport failures carry the underlying error
// detail in Message.
func (c *PayChanguClient) VerifyPayment(ctx context.Context, txRef string) VerifyPaymentResult {
	res, err := c.sendRequest(ctx, http.MethodGet, "/payment/verify/"+url.PathEscape(txRef), nil)
	if err != nil {
		return VerifyPaymentResult{Message: err.Error()}
	}
	if !res.Success {
		msg := "Payment verification failed"
		if res.Err != "" {
			msg = fmt.Sprintf("%s: %s", msg, res.Err)
		}
		return VerifyPaymentResult{Message: msg}
	}

	var details PaymentDetails
	_ = json.Unmarshal(res.Body.Data, &details)
	status := details.Status
	if status == "" {
		status = "unknown"
	}
	return VerifyPaymentResult{
		Success:    true,
		Status:     status,
		Details:    details,
		RawDetails: res.Body.Data,
	}
}

// Bank is a payout destination supported by PayChangu.
type Bank struct {
	UUID string `json:"uuid"`
	Name string `json:"name"`
}

// GetBanks lists supported payout banks for a currency. An empty list is
// returned both on failure and when the API genuinely reports zero banks;
// the two cases are not distinguishable from the return value.
func (c *PayChanguClient) GetBanks(ctx context.Context, currency string) []Bank {
	if currency == "" {
		currency = "MWK"
	}
	res, err := c.sendRequest(ctx, http.MethodGet, "/direct-charge/payouts/supported-banks?currency="+url.QueryEscape(currency), nil)
	if err != nil || !res.Success {
		return []Bank{}
	}

	banks := []Bank{}
	_ = json.Unmarshal(res.Body.Data, &banks)
	return banks
}

// BankPayoutParams carries the inputs for a bank transfer payout.
type BankPayoutParams struct {
	Amount        float64
	BankUUID      string
	AccountName   string
	AccountNumber string
}

// MobilePayoutParams carries the inputs for a mobile money payout.
type MobilePayoutParams struct {
	Amount       float64
	MobileNumber string
}

// PayoutResult is the outcome of a payout initialization. ChargeID is the
// locally generated correlation token, RefID the provider's.
type PayoutResult struct {
	Success  bool   `json:"success"`
	RefID    string `json:"ref_id,omitempty"`
	Status   string `json:"status,omitempty"`
	ChargeID string `json:"charge_id"`
	Message  string `json:"message"`
}

type payoutPayload struct {
	PayoutMethod      string `json:"payout_method"`
	BankUUID          string `json:"bank_uuid"`
	Amount            string `json:"amount"`
	ChargeID          string `json:"charge_id"`
	BankAccountName   string `json:"bank_account_name,omitempty"`
	BankAccountNumber string `json:"bank_account_number,omitempty"`
	MobileNumber      string `json:"mobile_number,omitempty"`
}

type payoutTransaction struct {
	RefID  string `json:"ref_id"`
	Status string `json:"status"`
}

type payoutData struct {
	Transaction payoutTransaction `json:"transaction"`
}

func (c *PayChanguClient) initializePayout(ctx context.Context, chargeID, failMsg string, payload payoutPayload) PayoutResult {
	res, err := c.sendRequest(ctx, http.MethodPost, "/direct-charge/payouts/initialize", payload)
	if err != nil {
		return PayoutResult{ChargeID: chargeID, Message: err.Error()}
	}

	if res.Success && res.Body.Status == "success" {
		var data payoutData
		_ = json.Unmarshal(res.Body.Data, &data)
		log.Printf("[paychangu][client] payout created charge_id=%s ref_id=%s", chargeID, data.Transaction.RefID)
		return PayoutResult{
			Success:  true,
			RefID:    data.Transaction.RefID,
			Status:   data.Transaction.Status,
			ChargeID: chargeID,
			Message:  payload.PayoutMethod + " payout created successfully",
		}
	}

	msg := res.Body.Message
	if msg == "" {
		msg = failMsg
	}
	log.Printf("[paychangu][client] payout failed charge_id=%s status_code=%d err=%q body=%q", chargeID, res.StatusCode, res.Err, truncateBody(res.Raw))
	return PayoutResult{ChargeID: chargeID, Message: msg}
}

// CreateBankPayout initiates a bank transfer payout.
func (c *PayChanguClient) CreateBankPayout(ctx context.Context, p BankPayoutParams) PayoutResult {
	chargeID := c.generateReference("bank_payout")
	return c.initializePayout(ctx, chargeID, "Bank payout failed", payoutPayload{
		PayoutMethod:      "bank_transfer",
		BankUUID:          p.BankUUID,
		Amount:            formatAmount(p.Amount),
		ChargeID:          chargeID,
		BankAccountName:   p.AccountName,
		BankAccountNumber: p.AccountNumber,
	})
}

// selectMobileProvider resolves a mobile number to a provider uuid using the
// route table; unmatched numbers go to the fallback provider.
func (c *PayChanguClient) selectMobileProvider(mobileNumber string) string {
	for _, route := range c.mobileRoutes {
		for _, prefix := range route.Prefixes {
			if strings.HasPrefix(mobileNumber, prefix) {
				return route.ProviderUUID
			}
		}
	}
	return c.fallbackProviderID
}

// CreateMobilePayout initiates a mobile money payout. The provider is picked
// from the number prefix via the configured route table.
func (c *PayChanguClient) CreateMobilePayout(ctx context.Context, p MobilePayoutParams) PayoutResult {
	chargeID := c.generateReference("mobile_payout")
	return c.initializePayout(ctx, chargeID, "Mobile payout failed", payoutPayload{
		PayoutMethod: "mobile_money",
		BankUUID:     c.selectMobileProvider(p.MobileNumber),
		Amount:       formatAmount(p.Amount),
		ChargeID:     chargeID,
		MobileNumber: p.MobileNumber,
	})
}

// PayoutDetails is the verified-payout record returned by PayChangu.
type PayoutDetails struct {
	RefID    string `json:"ref_id"`
	ChargeID string `json:"charge_id"`
	Status   string `json:"status"`
	Amount   string `json:"amount"`
	Currency string `json:"currency"`
}

// VerifyPayoutResult is the outcome of VerifyPayout.
type VerifyPayoutResult struct {
	Success    bool            `json:"success"`
	Status     string          `json:"status"`
	Details    PayoutDetails   `json:"details"`
	RawDetails json.RawMessage `json:"raw_details,omitempty"`
	Message    string          `json:"message,omitempty"`
}

// VerifyPayout fetches the current status of a payout by the provider's
// ref_id. Transport failures carry the underlying error detail in Message.
func (c *PayChanguClient) VerifyPayout(ctx context.Context, refID string) VerifyPayoutResult {
	res, err := c.sendRequest(ctx, http.MethodGet, "/direct-charge/payouts/verify/"+url.PathEscape(refID), nil)
	if err != nil {
		return VerifyPayoutResult{Message: err.Error()}
	}
	if !res.Success {
		msg := "Payout verification failed"
		if res.Err != "" {
			msg = fmt.Sprintf("%s: %s", msg, res.Err)
		}
		return VerifyPayoutResult{Message: msg}
	}

	var details PayoutDetails
	_ = json.Unmarshal(res.Body.Data, &details)
	return VerifyPayoutResult{
		Success:    true,
		Status:     details.Status,
		Details:    details,
		RawDetails: res.Body.Data,
	}
}
