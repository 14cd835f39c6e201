package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"paychangu_service/internal/domain/entities"
	"paychangu_service/internal/infrastructure/payments"
	mock_interfaces "paychangu_service/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestPaymentUseCase_CreateCheckout_Validations(t *testing.T) {
	t.Setenv("PAYMENT_GATEWAY_MOCK", "")
	t.Setenv("PAYCHANGU_MOCK", "")

	t.Run("non-positive amount", func(t *testing.T) {
		uc := NewPaymentUseCase(nil, nil)
		_, err := uc.CreateCheckout(context.Background(), CheckoutInput{Amount: 0, Email: "a@b.c"})
		if !errors.Is(err, ErrInvalidCheckoutInput) {
			t.Fatalf("expected ErrInvalidCheckoutInput, got %v", err)
		}
	})

	t.Run("empty email", func(t *testing.T) {
		uc := NewPaymentUseCase(nil, nil)
		_, err := uc.CreateCheckout(context.Background(), CheckoutInput{Amount: 100, Email: "  "})
		if !errors.Is(err, ErrInvalidCheckoutInput) {
			t.Fatalf("expected ErrInvalidCheckoutInput, got %v", err)
		}
	})

	t.Run("gateway not configured", func(t *testing.T) {
		uc := NewPaymentUseCase(nil, nil)
		_, err := uc.CreateCheckout(context.Background(), CheckoutInput{Amount: 100, Email: "a@b.c"})
		if err == nil || err.Error() != "payment gateway not configured" {
			t.Fatalf("expected gateway not configured error, got %v", err)
		}
	})
}

func TestPaymentUseCase_CreateCheckout(t *testing.T) {
	t.Setenv("PAYMENT_GATEWAY_MOCK", "")
	t.Setenv("PAYCHANGU_MOCK", "")

	t.Run("success persists pending payment", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPaymentRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewPaymentUseCase(repo, gateway)

		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p payments.CheckoutParams) payments.CheckoutResult {
				if p.Currency != "MWK" {
					t.Fatalf("expected default currency MWK, got %s", p.Currency)
				}
				return payments.CheckoutResult{
					Success:     true,
					CheckoutURL: "https://pay/x",
					TxRef:       "payment_1_100000",
					Message:     "Payment created successfully",
				}
			})
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.Payment) (entities.Payment, error) {
				if p.TxRef != "payment_1_100000" || p.Status != entities.PaymentStatusPending {
					t.Fatalf("unexpected payment to persist: %+v", p)
				}
				if p.CheckoutURL != "https://pay/x" {
					t.Fatalf("unexpected checkout url: %s", p.CheckoutURL)
				}
				return p, nil
			})

		created, err := uc.CreateCheckout(context.Background(), CheckoutInput{
			Amount: 1000, Email: "customer@example.com", FirstName: "John", LastName: "Doe",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.TxRef != "payment_1_100000" {
			t.Fatalf("unexpected tx_ref: %s", created.TxRef)
		}
	})

	t.Run("gateway rejection", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPaymentRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewPaymentUseCase(repo, gateway)

		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return(payments.CheckoutResult{
			TxRef:   "payment_1_100000",
			Message: "insufficient funds",
		})

		_, err := uc.CreateCheckout(context.Background(), CheckoutInput{Amount: 1000, Email: "a@b.c"})
		if !errors.Is(err, ErrPaymentGatewayRejected) {
			t.Fatalf("expected ErrPaymentGatewayRejected, got %v", err)
		}
	})

	t.Run("repository failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPaymentRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewPaymentUseCase(repo, gateway)

		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return(payments.CheckoutResult{Success: true, TxRef: "t"})
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Payment{}, errors.New("db"))

		_, err := uc.CreateCheckout(context.Background(), CheckoutInput{Amount: 1000, Email: "a@b.c"})
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("mock mode skips gateway", func(t *testing.T) {
		t.Setenv("PAYMENT_GATEWAY_MOCK", "1")
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPaymentRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewPaymentUseCase(repo, gateway)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.Payment) (entities.Payment, error) { return p, nil })

		created, err := uc.CreateCheckout(context.Background(), CheckoutInput{Amount: 10, Email: "a@b.c"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.TxRef == "" || created.CheckoutURL == "" {
			t.Fatalf("expected synthesized reference and checkout url, got %+v", created)
		}
	})
}

func TestPaymentUseCase_Verify(t *testing.T) {
	t.Run("empty tx_ref", func(t *testing.T) {
		uc := NewPaymentUseCase(nil, nil)
		_, err := uc.Verify(context.Background(), " ")
		if !errors.Is(err, ErrInvalidTxRef) {
			t.Fatalf("expected ErrInvalidTxRef, got %v", err)
		}
	})

	t.Run("payment not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPaymentRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewPaymentUseCase(repo, gateway)

		repo.EXPECT().GetByTxRef(gomock.Any(), "payment_1_1").Return(entities.Payment{}, nil)

		_, err := uc.Verify(context.Background(), "payment_1_1")
		if !errors.Is(err, ErrPaymentNotFound) {
			t.Fatalf("expected ErrPaymentNotFound, got %v", err)
		}
	})

	t.Run("verification failure propagates detail", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPaymentRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewPaymentUseCase(repo, gateway)

		repo.EXPECT().GetByTxRef(gomock.Any(), "payment_1_1").Return(entities.Payment{TxRef: "payment_1_1"}, nil)
		gateway.EXPECT().VerifyPayment(gomock.Any(), "payment_1_1").Return(payments.VerifyPaymentResult{
			Message: "Payment verification failed: connection refused",
		})

		_, err := uc.Verify(context.Background(), "payment_1_1")
		if !errors.Is(err, ErrPaymentVerificationFailed) {
			t.Fatalf("expected ErrPaymentVerificationFailed, got %v", err)
		}
		if got := err.Error(); got == ErrPaymentVerificationFailed.Error() {
			t.Fatalf("expected underlying detail in error, got %q", got)
		}
	})

	t.Run("success updates stored status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPaymentRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewPaymentUseCase(repo, gateway)

		raw := json.RawMessage(`{"tx_ref":"payment_1_1","status":"success"}`)
		repo.EXPECT().GetByTxRef(gomock.Any(), "payment_1_1").Return(entities.Payment{TxRef: "payment_1_1", Status: entities.PaymentStatusPending}, nil)
		gateway.EXPECT().VerifyPayment(gomock.Any(), "payment_1_1").Return(payments.VerifyPaymentResult{
			Success:    true,
			Status:     "success",
			RawDetails: raw,
		})
		repo.EXPECT().UpdateStatus(gomock.Any(), "payment_1_1", entities.PaymentStatusSuccess, raw).
			Return(entities.Payment{TxRef: "payment_1_1", Status: entities.PaymentStatusSuccess}, nil)

		updated, err := uc.Verify(context.Background(), "payment_1_1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if updated.Status != entities.PaymentStatusSuccess {
			t.Fatalf("unexpected status: %s", updated.Status)
		}
	})

	t.Run("unknown provider status stays pending", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPaymentRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewPaymentUseCase(repo, gateway)

		repo.EXPECT().GetByTxRef(gomock.Any(), "payment_1_1").Return(entities.Payment{TxRef: "payment_1_1"}, nil)
		gateway.EXPECT().VerifyPayment(gomock.Any(), "payment_1_1").Return(payments.VerifyPaymentResult{Success: true, Status: "unknown"})
		repo.EXPECT().UpdateStatus(gomock.Any(), "payment_1_1", entities.PaymentStatusPending, gomock.Any()).
			Return(entities.Payment{TxRef: "payment_1_1", Status: entities.PaymentStatusPending}, nil)

		if _, err := uc.Verify(context.Background(), "payment_1_1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestPaymentUseCase_GetByTxRef(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPaymentRepository(ctrl)
		uc := NewPaymentUseCase(repo, nil)

		repo.EXPECT().GetByTxRef(gomock.Any(), "missing").Return(entities.Payment{}, nil)

		_, err := uc.GetByTxRef(context.Background(), "missing")
		if !errors.Is(err, ErrPaymentNotFound) {
			t.Fatalf("expected ErrPaymentNotFound, got %v", err)
		}
	})

	t.Run("found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPaymentRepository(ctrl)
		uc := NewPaymentUseCase(repo, nil)

		repo.EXPECT().GetByTxRef(gomock.Any(), "payment_1_1").Return(entities.Payment{TxRef: "payment_1_1"}, nil)

		p, err := uc.GetByTxRef(context.Background(), "payment_1_1")
		if err != nil || p.TxRef != "payment_1_1" {
			t.Fatalf("unexpected result: %+v err=%v", p, err)
		}
	})
}
