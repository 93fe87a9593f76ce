package routes

import (
	"log"
	"os"
	"strconv"

	_ "mechmarket/docs" // swag generated
	"mechmarket/internal/adapter/http/handlers"
	repository2 "mechmarket/internal/adapter/persistence/repository"
	"mechmarket/internal/infrastructure/database"
	"mechmarket/internal/infrastructure/notifications"
	"mechmarket/internal/infrastructure/payments"
	"mechmarket/internal/usecase"
	"mechmarket/internal/usecase/interfaces"
	"mechmarket/pkg/logger"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
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
	zlog, err := logger.New()
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}

	ddb := database.ConnectDynamoDB()

	jobRepo := repository2.NewJobDynamoRepository(ddb)
	bidRepo := repository2.NewBidDynamoRepository(ddb)
	escrowRepo := repository2.NewEscrowDynamoRepository(ddb)
	paymentRepo := repository2.NewPaymentDynamoRepository(ddb)
	changeOrderRepo := repository2.NewChangeOrderDynamoRepository(ddb)
	txWriter := repository2.NewDynamoTxWriter(ddb)

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"), zlog)
	if err != nil {
		zlog.Warn("mercado pago gateway not configured", zap.Error(err))
	} else {
		paymentGateway = mpGateway
	}

	var emitter interfaces.INotificationEmitter
	natsURL := os.Getenv("NATS_URL")
	natsEmitter, err := notifications.NewNATSEmitter(natsURL, zlog)
	if err != nil {
		zlog.Warn("nats connect failed, notifications disabled",
			zap.String("url", natsURL), zap.Error(err))
	} else {
		emitter = natsEmitter
	}

	commission := usecase.NewDefaultCommissionPolicy()

	jobLedger := usecase.NewJobLedger(jobRepo, zlog)
	escrowManager := usecase.NewEscrowManager(escrowRepo, paymentRepo, jobRepo, txWriter, paymentGateway, commission, zlog)
	bidRegistry := usecase.NewBidRegistry(bidRepo, jobRepo, txWriter, jobLedger, escrowManager, zlog)
	changeOrderWorkflow := usecase.NewChangeOrderWorkflow(changeOrderRepo, jobRepo, escrowRepo, txWriter, escrowManager, zlog)

	workflow := usecase.NewWorkflowFacade(jobLedger, bidRegistry, escrowManager, changeOrderWorkflow, emitter, zlog)

	jobHandler := handlers.NewJobHandler(workflow)
	bidHandler := handlers.NewBidHandler(workflow)
	escrowHandler := handlers.NewEscrowHandler(workflow)
	changeOrderHandler := handlers.NewChangeOrderHandler(workflow)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addWorkflowRoutes(v1, jobHandler, bidHandler, escrowHandler, changeOrderHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
