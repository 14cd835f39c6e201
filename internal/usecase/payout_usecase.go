package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"paychangu_service/internal/domain/entities"
	"paychangu_service/internal/infrastructure/payments"
	"paychangu_service/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrPayoutNotFound           = errors.New("payout not found")
	ErrInvalidChargeID          = errors.New("invalid charge_id")
	ErrInvalidRefID             = errors.New("invalid ref_id")
	ErrInvalidPayoutInput       = errors.New("invalid payout input")
	ErrPayoutNotVerifiable      = errors.New("payout has no provider ref_id yet")
	ErrPayoutGatewayRejected    = errors.New("payout gateway rejected the request")
	ErrPayoutVerificationFailed = errors.New("payout verification failed")
)

// BankPayoutInput is the domain command for a bank transfer payout.
type BankPayoutInput struct {
	Amount        float64
	BankUUID      string
	AccountName   string
	AccountNumber string
}

// MobilePayoutInput is the domain command for a mobile money payout.
type MobilePayoutInput struct {
	Amount       float64
	MobileNumber string
}

// IPayoutUseCase encapsulates payout initiation and verification.
type IPayoutUseCase interface {
	CreateBankPayout(ctx context.Context, in BankPayoutInput) (entities.Payout, error)
	CreateMobilePayout(ctx context.Context, in MobilePayoutInput) (entities.Payout, error)
	VerifyByChargeID(ctx context.Context, chargeID string) (entities.Payout, error)
	VerifyByRefID(ctx context.Context, refID string) (entities.Payout, error)
	GetByChargeID(ctx context.Context, chargeID string) (entities.Payout, error)
	ListBanks(ctx context.Context, currency string) []payments.Bank
}

type PayoutUseCase struct {
	repo    interfaces.IPayoutRepository
	gateway interfaces.IPaymentGateway
}

var _ IPayoutUseCase = (*PayoutUseCase)(nil)

func NewPayoutUseCase(repo interfaces.IPayoutRepository, gateway interfaces.IPaymentGateway) *PayoutUseCase {
	return &PayoutUseCase{repo: repo, gateway: gateway}
}

func (u *PayoutUseCase) CreateBankPayout(ctx context.Context, in BankPayoutInput) (entities.Payout, error) {
	log.Printf("[payout][usecase] create-bank start bank_uuid=%s amount=%.2f", in.BankUUID, in.Amount)

	if in.Amount <= 0 || strings.TrimSpace(in.BankUUID) == "" || strings.TrimSpace(in.AccountNumber) == "" {
		return entities.Payout{}, ErrInvalidPayoutInput
	}
	if u.gateway == nil {
		return entities.Payout{}, errors.New("payment gateway not configured")
	}

	var chargeID, refID string
	status := entities.PayoutStatusPending
	if isPaymentGatewayMockEnabled() {
		log.Printf("[payout][usecase] mock mode enabled; skipping payment gateway")
		chargeID = fmt.Sprintf("bank_payout_%d_mock", time.Now().UTC().UnixNano())
		refID = uuid.NewString()
	} else {
		res := u.gateway.CreateBankPayout(ctx, payments.BankPayoutParams{
			Amount:        in.Amount,
			BankUUID:      in.BankUUID,
			AccountName:   in.AccountName,
			AccountNumber: in.AccountNumber,
		})
		if !res.Success {
			log.Printf("[payout][usecase] gateway rejected bank payout charge_id=%s msg=%q", res.ChargeID, res.Message)
			return entities.Payout{}, fmt.Errorf("%w: %s", ErrPayoutGatewayRejected, res.Message)
		}
		chargeID = res.ChargeID
		refID = res.RefID
		status = payoutStatusFromProvider(res.Status)
	}

	now := time.Now().UTC()
	p := entities.Payout{
		ChargeID:      chargeID,
		Method:        entities.PayoutMethodBankTransfer,
		Amount:        in.Amount,
		BankUUID:      in.BankUUID,
		AccountName:   in.AccountName,
		AccountNumber: in.AccountNumber,
		RefID:         refID,
		Status:        status,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	created, err := u.repo.Create(ctx, p)
	if err != nil {
		log.Printf("[payout][usecase] repository create failed charge_id=%s err=%v", chargeID, err)
		return entities.Payout{}, err
	}
	log.Printf("[payout][usecase] create-bank success charge_id=%s ref_id=%s", created.ChargeID, created.RefID)
	return created, nil
}

func (u *PayoutUseCase) CreateMobilePayout(ctx context.Context, in MobilePayoutInput) (entities.Payout, error) {
	log.Printf("[payout][usecase] create-mobile start amount=%.2f", in.Amount)

	if in.Amount <= 0 || strings.TrimSpace(in.MobileNumber) == "" {
		return entities.Payout{}, ErrInvalidPayoutInput
	}
	if u.gateway == nil {
		return entities.Payout{}, errors.New("payment gateway not configured")
	}

	var chargeID, refID string
	status := entities.PayoutStatusPending
	if isPaymentGatewayMockEnabled() {
		log.Printf("[payout][usecase] mock mode enabled; skipping payment gateway")
		chargeID = fmt.Sprintf("mobile_payout_%d_mock", time.Now().UTC().UnixNano())
		refID = uuid.NewString()
	} else {
		res := u.gateway.CreateMobilePayout(ctx, payments.MobilePayoutParams{
			Amount:       in.Amount,
			MobileNumber: in.MobileNumber,
		})
		if !res.Success {
			log.Printf("[payout][usecase] gateway rejected mobile payout charge_id=%s msg=%q", res.ChargeID, res.Message)
			return entities.Payout{}, fmt.Errorf("%w: %s", ErrPayoutGatewayRejected, res.Message)
		}
		chargeID = res.ChargeID
		refID = res.RefID
		status = payoutStatusFromProvider(res.Status)
	}

	now := time.Now().UTC()
	p := entities.Payout{
		ChargeID:     chargeID,
		Method:       entities.PayoutMethodMobileMoney,
		Amount:       in.Amount,
		MobileNumber: in.MobileNumber,
		RefID:        refID,
		Status:       status,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := u.repo.Create(ctx, p)
	if err != nil {
		log.Printf("[payout][usecase] repository create failed charge_id=%s err=%v", chargeID, err)
		return entities.Payout{}, err
	}
	log.Printf("[payout][usecase] create-mobile success charge_id=%s ref_id=%s", created.ChargeID, created.RefID)
	return created, nil
}

func (u *PayoutUseCase) VerifyByChargeID(ctx context.Context, chargeID string) (entities.Payout, error) {
	chargeID = strings.TrimSpace(chargeID)
	if chargeID == "" {
		return entities.Payout{}, ErrInvalidChargeID
	}
	if u.gateway == nil {
		return entities.Payout{}, errors.New("payment gateway not configured")
	}

	stored, err := u.repo.GetByChargeID(ctx, chargeID)
	if err != nil {
		return entities.Payout{}, err
	}
	if stored.ChargeID == "" {
		return entities.Payout{}, ErrPayoutNotFound
	}
	if stored.RefID == "" {
		return entities.Payout{}, ErrPayoutNotVerifiable
	}

	res := u.gateway.VerifyPayout(ctx, stored.RefID)
	if !res.Success {
		log.Printf("[payout][usecase] verify failed charge_id=%s ref_id=%s msg=%q", chargeID, stored.RefID, res.Message)
		return entities.Payout{}, fmt.Errorf("%w: %s", ErrPayoutVerificationFailed, res.Message)
	}

	status := payoutStatusFromProvider(res.Status)
	updated, err := u.repo.UpdateStatus(ctx, chargeID, status, res.RawDetails)
	if err != nil {
		log.Printf("[payout][usecase] status update failed charge_id=%s err=%v", chargeID, err)
		return entities.Payout{}, err
	}
	log.Printf("[payout][usecase] verify success charge_id=%s status=%s", chargeID, status)
	return updated, nil
}

// VerifyByRefID refreshes a payout addressed by the provider's ref_id, the
// identifier PayChangu callbacks carry. The stored record is resolved
// through the ref_id GSI.
func (u *PayoutUseCase) VerifyByRefID(ctx context.Context, refID string) (entities.Payout, error) {
	refID = strings.TrimSpace(refID)
	if refID == "" {
		return entities.Payout{}, ErrInvalidRefID
	}
	if u.gateway == nil {
		return entities.Payout{}, errors.New("payment gateway not configured")
	}

	stored, err := u.repo.GetByRefID(ctx, refID)
	if err != nil {
		return entities.Payout{}, err
	}
	if stored.ChargeID == "" {
		return entities.Payout{}, ErrPayoutNotFound
	}

	res := u.gateway.VerifyPayout(ctx, refID)
	if !res.Success {
		log.Printf("[payout][usecase] verify failed ref_id=%s msg=%q", refID, res.Message)
		return entities.Payout{}, fmt.Errorf("%w: %s", ErrPayoutVerificationFailed, res.Message)
	}

	status := payoutStatusFromProvider(res.Status)
	updated, err := u.repo.UpdateStatus(ctx, stored.ChargeID, status, res.RawDetails)
	if err != nil {
		log.Printf("[payout][usecase] status update failed charge_id=%s err=%v", stored.ChargeID, err)
		return entities.Payout{}, err
	}
	log.Printf("[payout][usecase] verify success ref_id=%s charge_id=%s status=%s", refID, stored.ChargeID, status)
	return updated, nil
}

func (u *PayoutUseCase) GetByChargeID(ctx context.Context, chargeID string) (entities.Payout, error) {
	chargeID = strings.TrimSpace(chargeID)
	if chargeID == "" {
		return entities.Payout{}, ErrInvalidChargeID
	}

	p, err := u.repo.GetByChargeID(ctx, chargeID)
	if err != nil {
		return entities.Payout{}, err
	}
	if p.ChargeID == "" {
		return entities.Payout{}, ErrPayoutNotFound
	}
	return p, nil
}

func (u *PayoutUseCase) ListBanks(ctx context.Context, currency string) []payments.Bank {
	if u.gateway == nil {
		return []payments.Bank{}
	}
	return u.gateway.GetBanks(ctx, currency)
}

// payoutStatusFromProvider maps PayChangu's payout status strings onto the
// persisted enum. Unknown values stay pending.
func payoutStatusFromProvider(s string) entities.PayoutStatus {
	switch strings.ToLower(s) {
	case "success", "successful", "completed":
		return entities.PayoutStatusCompleted
	case "failed", "cancelled":
		return entities.PayoutStatusFailed
	default:
		return entities.PayoutStatusPending
	}
}

// isPaymentGatewayMockEnabled short-circuits external PayChangu calls for
// local development and CI.
func isPaymentGatewayMockEnabled() bool {
	for _, key := range []string{"PAYMENT_GATEWAY_MOCK", "PAYCHANGU_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}
