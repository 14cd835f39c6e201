package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"paychangu_service/internal/domain/entities"
	"paychangu_service/internal/infrastructure/payments"
	"paychangu_service/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrPaymentNotFound           = errors.New("payment not found")
	ErrInvalidTxRef              = errors.New("invalid tx_ref")
	ErrInvalidCheckoutInput      = errors.New("invalid checkout input")
	ErrPaymentGatewayRejected    = errors.New("payment gateway rejected the request")
	ErrPaymentVerificationFailed = errors.New("payment verification failed")
)

// CheckoutInput is the domain command for creating a hosted checkout session.
type CheckoutInput struct {
	Amount      float64
	Email       string
	FirstName   string
	LastName    string
	CallbackURL string
	ReturnURL   string
	Currency    string
	Description string
}

// IPaymentUseCase encapsulates checkout creation and verification.
//
// Every initiated checkout is persisted; verification refreshes the stored
// status from PayChangu.
type IPaymentUseCase interface {
	CreateCheckout(ctx context.Context, in CheckoutInput) (entities.Payment, error)
	Verify(ctx context.Context, txRef string) (entities.Payment, error)
	GetByTxRef(ctx context.Context, txRef string) (entities.Payment, error)
	ListByEmail(ctx context.Context, email string) ([]entities.Payment, error)
}

type PaymentUseCase struct {
	repo    interfaces.IPaymentRepository
	gateway interfaces.IPaymentGateway
}

var _ IPaymentUseCase = (*PaymentUseCase)(nil)

func NewPaymentUseCase(repo interfaces.IPaymentRepository, gateway interfaces.IPaymentGateway) *PaymentUseCase {
	return &PaymentUseCase{repo: repo, gateway: gateway}
}

func (u *PaymentUseCase) CreateCheckout(ctx context.Context, in CheckoutInput) (entities.Payment, error) {
	log.Printf("[payment][usecase] create-checkout start email=%s amount=%.2f", in.Email, in.Amount)

	if in.Amount <= 0 {
		log.Printf("[payment][usecase] invalid amount=%.2f", in.Amount)
		return entities.Payment{}, ErrInvalidCheckoutInput
	}
	in.Email = strings.TrimSpace(in.Email)
	if in.Email == "" {
		log.Printf("[payment][usecase] invalid email (empty)")
		return entities.Payment{}, ErrInvalidCheckoutInput
	}
	if u.gateway == nil {
		return entities.Payment{}, errors.New("payment gateway not configured")
	}

	currency := in.Currency
	if currency == "" {
		currency = "MWK"
	}

	var txRef, checkoutURL string
	if isPaymentGatewayMockEnabled() {
		log.Printf("[payment][usecase] mock mode enabled; skipping payment gateway email=%s", in.Email)
		txRef = fmt.Sprintf("payment_%d_mock", time.Now().UTC().UnixNano())
		checkoutURL = "https://checkout.mock/" + uuid.NewString()
	} else {
		res := u.gateway.CreatePayment(ctx, payments.CheckoutParams{
			Amount:      in.Amount,
			Email:       in.Email,
			FirstName:   in.FirstName,
			LastName:    in.LastName,
			CallbackURL: in.CallbackURL,
			ReturnURL:   in.ReturnURL,
			Currency:    currency,
			Description: in.Description,
		})
		if !res.Success {
			log.Printf("[payment][usecase] gateway rejected checkout tx_ref=%s msg=%q", res.TxRef, res.Message)
			return entities.Payment{}, fmt.Errorf("%w: %s", ErrPaymentGatewayRejected, res.Message)
		}
		txRef = res.TxRef
		checkoutURL = res.CheckoutURL
	}

	now := time.Now().UTC()
	p := entities.Payment{
		TxRef:       txRef,
		Email:       in.Email,
		FirstName:   in.FirstName,
		LastName:    in.LastName,
		Amount:      in.Amount,
		Currency:    currency,
		Description: in.Description,
		Status:      entities.PaymentStatusPending,
		CheckoutURL: checkoutURL,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := u.repo.Create(ctx, p)
	if err != nil {
		log.Printf("[payment][usecase] repository create failed tx_ref=%s err=%v", txRef, err)
		return entities.Payment{}, err
	}
	log.Printf("[payment][usecase] create-checkout success tx_ref=%s", created.TxRef)
	return created, nil
}

func (u *PaymentUseCase) Verify(ctx context.Context, txRef string) (entities.Payment, error) {
	txRef = strings.TrimSpace(txRef)
	if txRef == "" {
		return entities.Payment{}, ErrInvalidTxRef
	}
	if u.gateway == nil {
		return entities.Payment{}, errors.New("payment gateway not configured")
	}

	stored, err := u.repo.GetByTxRef(ctx, txRef)
	if err != nil {
		return entities.Payment{}, err
	}
	if stored.TxRef == "" {
		return entities.Payment{}, ErrPaymentNotFound
	}

	res := u.gateway.VerifyPayment(ctx, txRef)
	if !res.Success {
		log.Printf("[payment][usecase] verify failed tx_ref=%s msg=%q", txRef, res.Message)
		return entities.Payment{}, fmt.Errorf("%w: %s", ErrPaymentVerificationFailed, res.Message)
	}

	status := paymentStatusFromProvider(res.Status)
	updated, err := u.repo.UpdateStatus(ctx, txRef, status, res.RawDetails)
	if err != nil {
		log.Printf("[payment][usecase] status update failed tx_ref=%s err=%v", txRef, err)
		return entities.Payment{}, err
	}
	log.Printf("[payment][usecase] verify success tx_ref=%s status=%s", txRef, status)
	return updated, nil
}

func (u *PaymentUseCase) GetByTxRef(ctx context.Context, txRef string) (entities.Payment, error) {
	txRef = strings.TrimSpace(txRef)
	if txRef == "" {
		return entities.Payment{}, ErrInvalidTxRef
	}

	p, err := u.repo.GetByTxRef(ctx, txRef)
	if err != nil {
		return entities.Payment{}, err
	}
	if p.TxRef == "" {
		return entities.Payment{}, ErrPaymentNotFound
	}
	return p, nil
}

func (u *PaymentUseCase) ListByEmail(ctx context.Context, email string) ([]entities.Payment, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, ErrInvalidCheckoutInput
	}
	return u.repo.ListByEmail(ctx, email)
}

// paymentStatusFromProvider maps PayChangu's free-form status strings onto
// the persisted enum. Unknown values stay pending.
func paymentStatusFromProvider(s string) entities.PaymentStatus {
	switch strings.ToLower(s) {
	case "success", "successful", "completed":
		return entities.PaymentStatusSuccess
	case "failed", "cancelled":
		return entities.PaymentStatusFailed
	default:
		return entities.PaymentStatusPending
	}
}
