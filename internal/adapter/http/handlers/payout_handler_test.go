package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"paychangu_service/internal/adapter/http/handlers/mocks"
	"paychangu_service/internal/domain/entities"
	"paychangu_service/internal/infrastructure/payments"
	"paychangu_service/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestPayoutHandler_CreateBankPayout(t *testing.T) {
	gin.SetMode(gin.TestMode)
	t.Setenv("PAYMENT_GATEWAY_MOCK", "")
	t.Setenv("PAYCHANGU_MOCK", "")

	t.Run("invalid payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPayoutUseCase(ctrl)
		h := NewPayoutHandler(uc)

		r := gin.New()
		r.POST("/v1/payouts/bank", h.CreateBankPayout)

		req := httptest.NewRequest(http.MethodPost, "/v1/payouts/bank", bytes.NewBufferString(`{"amount":0}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("gateway rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPayoutUseCase(ctrl)
		h := NewPayoutHandler(uc)

		r := gin.New()
		r.POST("/v1/payouts/bank", h.CreateBankPayout)

		uc.EXPECT().CreateBankPayout(gomock.Any(), gomock.Any()).Return(entities.Payout{}, usecase.ErrPayoutGatewayRejected)

		body := `{"amount":5000,"bank_uuid":"bank-1","account_name":"Jane Banda","account_number":"1000200030"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/payouts/bank", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadGateway {
			t.Fatalf("expected 502, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPayoutUseCase(ctrl)
		h := NewPayoutHandler(uc)

		r := gin.New()
		r.POST("/v1/payouts/bank", h.CreateBankPayout)

		uc.EXPECT().CreateBankPayout(gomock.Any(), usecase.BankPayoutInput{
			Amount:        5000,
			BankUUID:      "bank-1",
			AccountName:   "Jane Banda",
			AccountNumber: "1000200030",
		}).Return(entities.Payout{ChargeID: "bank_payout_1700000000_123456", Method: entities.PayoutMethodBankTransfer, Status: entities.PayoutStatusPending}, nil)

		body := `{"amount":5000,"bank_uuid":"bank-1","account_name":"Jane Banda","account_number":"1000200030"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/payouts/bank", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var resp map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &resp)
		if resp["charge_id"] != "bank_payout_1700000000_123456" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestPayoutHandler_CreateMobilePayout(t *testing.T) {
	gin.SetMode(gin.TestMode)
	t.Setenv("PAYMENT_GATEWAY_MOCK", "")
	t.Setenv("PAYCHANGU_MOCK", "")

	t.Run("invalid payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPayoutUseCase(ctrl)
		h := NewPayoutHandler(uc)

		r := gin.New()
		r.POST("/v1/payouts/mobile", h.CreateMobilePayout)

		req := httptest.NewRequest(http.MethodPost, "/v1/payouts/mobile", bytes.NewBufferString(`{"amount":100}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPayoutUseCase(ctrl)
		h := NewPayoutHandler(uc)

		r := gin.New()
		r.POST("/v1/payouts/mobile", h.CreateMobilePayout)

		uc.EXPECT().CreateMobilePayout(gomock.Any(), usecase.MobilePayoutInput{Amount: 2500, MobileNumber: "0881234567"}).
			Return(entities.Payout{ChargeID: "mobile_payout_1700000000_123456", Method: entities.PayoutMethodMobileMoney, Status: entities.PayoutStatusPending}, nil)

		body := `{"amount":2500,"mobile_number":"0881234567"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/payouts/mobile", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var resp map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &resp)
		if resp["method"] != string(entities.PayoutMethodMobileMoney) {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestPayoutHandler_VerifyPayout(t *testing.T) {
	gin.SetMode(gin.TestMode)
	t.Setenv("PAYMENT_GATEWAY_MOCK", "")
	t.Setenv("PAYCHANGU_MOCK", "")

	t.Run("not verifiable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPayoutUseCase(ctrl)
		h := NewPayoutHandler(uc)

		r := gin.New()
		r.POST("/v1/payouts/:charge_id/verify", h.VerifyPayout)

		uc.EXPECT().VerifyByChargeID(gomock.Any(), "charge-1").Return(entities.Payout{}, usecase.ErrPayoutNotVerifiable)

		req := httptest.NewRequest(http.MethodPost, "/v1/payouts/charge-1/verify", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPayoutUseCase(ctrl)
		h := NewPayoutHandler(uc)

		r := gin.New()
		r.POST("/v1/payouts/:charge_id/verify", h.VerifyPayout)

		uc.EXPECT().VerifyByChargeID(gomock.Any(), "charge-1").Return(entities.Payout{ChargeID: "charge-1", Status: entities.PayoutStatusCompleted}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/payouts/charge-1/verify", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &resp)
		if resp["status"] != string(entities.PayoutStatusCompleted) {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestPayoutHandler_VerifyPayoutByRefID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	t.Setenv("PAYMENT_GATEWAY_MOCK", "")
	t.Setenv("PAYCHANGU_MOCK", "")

	t.Run("missing ref_id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPayoutUseCase(ctrl)
		h := NewPayoutHandler(uc)

		r := gin.New()
		r.POST("/v1/payouts/verify", h.VerifyPayoutByRefID)

		uc.EXPECT().VerifyByRefID(gomock.Any(), "").Return(entities.Payout{}, usecase.ErrInvalidRefID)

		req := httptest.NewRequest(http.MethodPost, "/v1/payouts/verify", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("unknown ref_id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPayoutUseCase(ctrl)
		h := NewPayoutHandler(uc)

		r := gin.New()
		r.POST("/v1/payouts/verify", h.VerifyPayoutByRefID)

		uc.EXPECT().VerifyByRefID(gomock.Any(), "ref-404").Return(entities.Payout{}, usecase.ErrPayoutNotFound)

		req := httptest.NewRequest(http.MethodPost, "/v1/payouts/verify?ref_id=ref-404", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPayoutUseCase(ctrl)
		h := NewPayoutHandler(uc)

		r := gin.New()
		r.POST("/v1/payouts/verify", h.VerifyPayoutByRefID)

		uc.EXPECT().VerifyByRefID(gomock.Any(), "ref-1").
			Return(entities.Payout{ChargeID: "charge-1", RefID: "ref-1", Status: entities.PayoutStatusCompleted}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/payouts/verify?ref_id=ref-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &resp)
		if resp["charge_id"] != "charge-1" || resp["status"] != string(entities.PayoutStatusCompleted) {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestPayoutHandler_GetPayoutByChargeID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	t.Setenv("PAYMENT_GATEWAY_MOCK", "")
	t.Setenv("PAYCHANGU_MOCK", "")

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIPayoutUseCase(ctrl)
	h := NewPayoutHandler(uc)

	r := gin.New()
	r.GET("/v1/payouts/:charge_id", h.GetPayoutByChargeID)

	uc.EXPECT().GetByChargeID(gomock.Any(), "charge-404").Return(entities.Payout{}, usecase.ErrPayoutNotFound)

	req := httptest.NewRequest(http.MethodGet, "/v1/payouts/charge-404", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestPayoutHandler_ListBanks(t *testing.T) {
	gin.SetMode(gin.TestMode)
	t.Setenv("PAYMENT_GATEWAY_MOCK", "")
	t.Setenv("PAYCHANGU_MOCK", "")

	t.Run("default currency", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPayoutUseCase(ctrl)
		h := NewPayoutHandler(uc)

		r := gin.New()
		r.GET("/v1/payouts/banks", h.ListBanks)

		uc.EXPECT().ListBanks(gomock.Any(), "MWK").Return([]payments.Bank{{UUID: "b-1", Name: "National Bank"}})

		req := httptest.NewRequest(http.MethodGet, "/v1/payouts/banks", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &resp)
		if resp["currency"] != "MWK" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("empty list still 200", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPayoutUseCase(ctrl)
		h := NewPayoutHandler(uc)

		r := gin.New()
		r.GET("/v1/payouts/banks", h.ListBanks)

		uc.EXPECT().ListBanks(gomock.Any(), "USD").Return([]payments.Bank{})

		req := httptest.NewRequest(http.MethodGet, "/v1/payouts/banks?currency=USD", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp struct {
			Banks []any `json:"banks"`
		}
		_ = json.Unmarshal(w.Body.Bytes(), &resp)
		if resp.Banks == nil || len(resp.Banks) != 0 {
			t.Fatalf("expected empty banks array, got body: %s", w.Body.String())
		}
	})
}

func TestMapPayoutError(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{usecase.ErrInvalidPayoutInput, http.StatusBadRequest},
		{usecase.ErrInvalidChargeID, http.StatusBadRequest},
		{usecase.ErrInvalidRefID, http.StatusBadRequest},
		{usecase.ErrPayoutNotFound, http.StatusNotFound},
		{usecase.ErrPayoutNotVerifiable, http.StatusConflict},
		{usecase.ErrPayoutGatewayRejected, http.StatusBadGateway},
		{usecase.ErrPayoutVerificationFailed, http.StatusBadGateway},
		{errors.New("other"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		got := mapPayoutError(tc.err)
		if got.HTTPStatus != tc.code {
			t.Fatalf("for err %v expected %d got %d", tc.err, tc.code, got.HTTPStatus)
		}
	}
}
