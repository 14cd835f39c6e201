package routes

import (
	"paychangu_service/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathPayments = "/payments"
)

func addPaymentRoutes(rg *gin.RouterGroup, paymentHandler *handlers.PaymentHandler) {
	payments := rg.Group(PathPayments)
	{
		payments.POST("", paymentHandler.CreatePayment)
		payments.GET("", paymentHandler.ListPayments)
		payments.GET("/:tx_ref", paymentHandler.GetPaymentByTxRef)
		payments.POST("/:tx_ref/verify", paymentHandler.VerifyPayment)
	}
}
