package routes

import (
	"log"
	"os"
	"strconv"

	_ "paychangu_service/docs" // This will be auto-generated
	"paychangu_service/internal/adapter/http/handlers"
	repository2 "paychangu_service/internal/adapter/persistence/repository"
	"paychangu_service/internal/infrastructure/database"
	"paychangu_service/internal/infrastructure/payments"
	"paychangu_service/internal/usecase"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	paymentRepo := repository2.NewPaymentDynamoRepository(ddb)
	payoutRepo := repository2.NewPayoutDynamoRepository(ddb)

	secretKey := os.Getenv("PAYCHANGU_SECRET_KEY")
	if secretKey == "" {
		log.Printf("[routes] PAYCHANGU_SECRET_KEY not set, provider calls will be rejected")
	}
	var clientOpts []payments.Option
	if baseURL := os.Getenv("PAYCHANGU_BASE_URL"); baseURL != "" {
		clientOpts = append(clientOpts, payments.WithBaseURL(baseURL))
	}
	gateway := payments.NewPayChanguClient(secretKey, clientOpts...)

	paymentUseCase := usecase.NewPaymentUseCase(paymentRepo, gateway)
	payoutUseCase := usecase.NewPayoutUseCase(payoutRepo, gateway)

	paymentHandler := handlers.NewPaymentHandler(paymentUseCase)
	payoutHandler := handlers.NewPayoutHandler(payoutUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addPaymentRoutes(v1, paymentHandler)
	addPayoutRoutes(v1, payoutHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
