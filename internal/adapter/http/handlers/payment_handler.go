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

var errInvalidPaymentPayload = pkg.NewDomainErrorSimple("INVALID_PAYMENT_INPUT", "Invalid payment payload", http.StatusBadRequest)

// PaymentHandler handles HTTP requests for checkout payments.
type PaymentHandler struct {
	usecase usecase.IPaymentUseCase
}

func NewPaymentHandler(uc usecase.IPaymentUseCase) *PaymentHandler {
	return &PaymentHandler{usecase: uc}
}

// CreatePayment creates a hosted checkout session and records the attempt.
func (h *PaymentHandler) CreatePayment(c *gin.Context) {
	var payload request.CreatePaymentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[payment][handler] invalid payload err=%v", err)
		c.JSON(errInvalidPaymentPayload.HTTPStatus, errInvalidPaymentPayload.ToHTTPError())
		return
	}

	log.Printf("[payment][handler] create start email=%s amount=%.2f", payload.Email, payload.Amount)
	created, err := h.usecase.CreateCheckout(c.Request.Context(), usecase.CheckoutInput{
		Amount:      payload.Amount,
		Email:       payload.Email,
		FirstName:   payload.FirstName,
		LastName:    payload.LastName,
		CallbackURL: payload.CallbackURL,
		ReturnURL:   payload.ReturnURL,
		Currency:    payload.ResolveCurrency(),
		Description: payload.Description,
	})
	if err != nil {
		log.Printf("[payment][handler] create failed email=%s err=%v", payload.Email, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] create success tx_ref=%s", created.TxRef)

	c.JSON(http.StatusCreated, response.FromPayment(created))
}

// GetPaymentByTxRef returns the stored payment for a tx_ref.
func (h *PaymentHandler) GetPaymentByTxRef(c *gin.Context) {
	txRef := c.Param("tx_ref")

	p, err := h.usecase.GetByTxRef(c.Request.Context(), txRef)
	if err != nil {
		log.Printf("[payment][handler] get failed tx_ref=%s err=%v", txRef, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPayment(p))
}

// VerifyPayment re-checks a payment against PayChangu and updates the record.
func (h *PaymentHandler) VerifyPayment(c *gin.Context) {
	txRef := c.Param("tx_ref")
	log.Printf("[payment][handler] verify start tx_ref=%s", txRef)

	updated, err := h.usecase.Verify(c.Request.Context(), txRef)
	if err != nil {
		log.Printf("[payment][handler] verify failed tx_ref=%s err=%v", txRef, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] verify success tx_ref=%s status=%s", txRef, updated.Status)

	c.JSON(http.StatusOK, response.FromPayment(updated))
}

// ListPayments returns a customer's payments, filtered by email.
func (h *PaymentHandler) ListPayments(c *gin.Context) {
	email := c.Query("email")

	payments, err := h.usecase.ListByEmail(c.Request.Context(), email)
	if err != nil {
		log.Printf("[payment][handler] list failed email=%s err=%v", email, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPayments(payments))
}

func mapPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidCheckoutInput), errors.Is(err, usecase.ErrInvalidTxRef):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPaymentGatewayRejected):
		return pkg.NewDomainError("PAYMENT_PROVIDER_REJECTED", "Payment provider rejected the request", err, http.StatusBadGateway)
	case errors.Is(err, usecase.ErrPaymentVerificationFailed):
		return pkg.NewDomainError("PAYMENT_VERIFICATION_FAILED", "Payment verification failed", err, http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
