package routes

import (
	"paychangu_service/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathPayouts = "/payouts"
)

func addPayoutRoutes(rg *gin.RouterGroup, payoutHandler *handlers.PayoutHandler) {
	payouts := rg.Group(PathPayouts)
	{
		payouts.GET("/banks", payoutHandler.ListBanks)
		payouts.POST("/bank", payoutHandler.CreateBankPayout)
		payouts.POST("/mobile", payoutHandler.CreateMobilePayout)
		payouts.POST("/verify", payoutHandler.VerifyPayoutByRefID)
		payouts.GET("/:charge_id", payoutHandler.GetPayoutByChargeID)
		payouts.POST("/:charge_id/verify", payoutHandler.VerifyPayout)
	}
}
