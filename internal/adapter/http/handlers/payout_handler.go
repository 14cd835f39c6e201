package handlers

import (
	"errors"
	"log"
	"net/http"

	request "paychangu_service/internal/adapter/http/dto/request"
	response "paychangu_service/internal/adapter/http/dto/response"
	"paychangu_service/internal/usecase"
	"paychangu_service/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidPayoutPayload = pkg.NewDomainErrorSimple("INVALID_PAYOUT_INPUT", "Invalid payout payload", http.StatusBadRequest)

// PayoutHandler handles HTTP requests for bank and mobile money payouts.
type PayoutHandler struct {
	usecase usecase.IPayoutUseCase
}

func NewPayoutHandler(uc usecase.IPayoutUseCase) *PayoutHandler {
	return &PayoutHandler{usecase: uc}
}

// CreateBankPayout initiates a bank transfer payout.
func (h *PayoutHandler) CreateBankPayout(c *gin.Context) {
	var payload request.BankPayoutRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[payout][handler] invalid bank payload err=%v", err)
		c.JSON(errInvalidPayoutPayload.HTTPStatus, errInvalidPayoutPayload.ToHTTPError())
		return
	}

	log.Printf("[payout][handler] create-bank start bank_uuid=%s amount=%.2f", payload.BankUUID, payload.Amount)
	created, err := h.usecase.CreateBankPayout(c.Request.Context(), usecase.BankPayoutInput{
		Amount:        payload.Amount,
		BankUUID:      payload.BankUUID,
		AccountName:   payload.AccountName,
		AccountNumber: payload.AccountNumber,
	})
	if err != nil {
		log.Printf("[payout][handler] create-bank failed err=%v", err)
		appErr := mapPayoutError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payout][handler] create-bank success charge_id=%s", created.ChargeID)

	c.JSON(http.StatusCreated, response.FromPayout(created))
}

// CreateMobilePayout initiates a mobile money payout.
func (h *PayoutHandler) CreateMobilePayout(c *gin.Context) {
	var payload request.MobilePayoutRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[payout][handler] invalid mobile payload err=%v", err)
		c.JSON(errInvalidPayoutPayload.HTTPStatus, errInvalidPayoutPayload.ToHTTPError())
		return
	}

	log.Printf("[payout][handler] create-mobile start amount=%.2f", payload.Amount)
	created, err := h.usecase.CreateMobilePayout(c.Request.Context(), usecase.MobilePayoutInput{
		Amount:       payload.Amount,
		MobileNumber: payload.MobileNumber,
	})
	if err != nil {
		log.Printf("[payout][handler] create-mobile failed err=%v", err)
		appErr := mapPayoutError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payout][handler] create-mobile success charge_id=%s", created.ChargeID)

	c.JSON(http.StatusCreated, response.FromPayout(created))
}

// GetPayoutByChargeID returns the stored payout for a charge_id.
func (h *PayoutHandler) GetPayoutByChargeID(c *gin.Context) {
	chargeID := c.Param("charge_id")

	p, err := h.usecase.GetByChargeID(c.Request.Context(), chargeID)
	if err != nil {
		log.Printf("[payout][handler] get failed charge_id=%s err=%v", chargeID, err)
		appErr := mapPayoutError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPayout(p))
}

// VerifyPayout re-checks a payout against PayChangu and updates the record.
func (h *PayoutHandler) VerifyPayout(c *gin.Context) {
	chargeID := c.Param("charge_id")
	log.Printf("[payout][handler] verify start charge_id=%s", chargeID)

	updated, err := h.usecase.VerifyByChargeID(c.Request.Context(), chargeID)
	if err != nil {
		log.Printf("[payout][handler] verify failed charge_id=%s err=%v", chargeID, err)
		appErr := mapPayoutError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payout][handler] verify success charge_id=%s status=%s", chargeID, updated.Status)

	c.JSON(http.StatusOK, response.FromPayout(updated))
}

// VerifyPayoutByRefID verifies a payout addressed by the provider's ref_id,
// the identifier PayChangu callbacks deliver.
func (h *PayoutHandler) VerifyPayoutByRefID(c *gin.Context) {
	refID := c.Query("ref_id")
	log.Printf("[payout][handler] verify-by-ref start ref_id=%s", refID)

	updated, err := h.usecase.VerifyByRefID(c.Request.Context(), refID)
	if err != nil {
		log.Printf("[payout][handler] verify-by-ref failed ref_id=%s err=%v", refID, err)
		appErr := mapPayoutError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payout][handler] verify-by-ref success ref_id=%s status=%s", refID, updated.Status)

	c.JSON(http.StatusOK, response.FromPayout(updated))
}

// ListBanks returns the payout banks supported for a currency. An empty list
// is also what a provider outage produces; see the gateway contract.
func (h *PayoutHandler) ListBanks(c *gin.Context) {
	currency := c.DefaultQuery("currency", "MWK")

	banks := h.usecase.ListBanks(c.Request.Context(), currency)
	c.JSON(http.StatusOK, response.FromBanks(currency, banks))
}

func mapPayoutError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidPayoutInput), errors.Is(err, usecase.ErrInvalidChargeID), errors.Is(err, usecase.ErrInvalidRefID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPayoutNotFound):
		return pkg.NewDomainErrorSimple("PAYOUT_NOT_FOUND", "Payout not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPayoutNotVerifiable):
		return pkg.NewDomainErrorSimple("PAYOUT_NOT_VERIFIABLE", "Payout has no provider reference yet", http.StatusConflict)
	case errors.Is(err, usecase.ErrPayoutGatewayRejected):
		return pkg.NewDomainError("PAYOUT_PROVIDER_REJECTED", "Payout provider rejected the request", err, http.StatusBadGateway)
	case errors.Is(err, usecase.ErrPayoutVerificationFailed):
		return pkg.NewDomainError("PAYOUT_VERIFICATION_FAILED", "Payout verification failed", err, http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
