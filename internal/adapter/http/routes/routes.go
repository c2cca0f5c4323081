package routes

import (
	"os"
	"strconv"
	"strings"
	"time"

	"payment_service/internal/adapter/http/handlers"
	"payment_service/internal/adapter/messaging"
	"payment_service/internal/adapter/persistence/repository"
	"payment_service/internal/infrastructure/bus"
	"payment_service/internal/infrastructure/database"
	"payment_service/internal/infrastructure/payments"
	"payment_service/internal/infrastructure/sidecar"
	"payment_service/internal/infrastructure/state"
	"payment_service/internal/usecase"
	"payment_service/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

var router = gin.Default()

const PORT = 8080

// Run wires the adapters selected by the environment and starts the server.
func Run() {
	setMiddlewares()
	getRoutes()

	if err := router.Run(":" + strconv.Itoa(PORT)); err != nil {
		logrus.Fatalf("Failed to startup the application: %v", err)
	}
}

func getRoutes() {
	sidecarClient := sidecar.NewClientFromEnv()

	repo := buildOutcomeRepository(sidecarClient)
	decider := buildDecider()
	publisher, subscriber := buildEventBus(sidecarClient)

	processor := usecase.NewProcessPaymentUseCase(repo, decider, publisher, processorConfigFromEnv())
	lookup := usecase.NewPaymentLookupUseCase(repo)

	if subscriber != nil {
		messaging.NewPaymentRequestConsumer(processor).Register(subscriber)
	}

	eventHandler := handlers.NewPaymentEventHandler(processor)
	queryHandler := handlers.NewPaymentQueryHandler(lookup)

	// Sidecar surface: liveness, subscription declaration, topic delivery.
	router.GET("/health", handlers.Health)
	router.GET("/dapr/subscribe", handlers.DaprSubscribe)
	router.POST("/payment-request", eventHandler.HandlePaymentRequest)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addPaymentRoutes(v1, queryHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logrus.Errorf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}

// buildOutcomeRepository selects the store backend.
// STATE_BACKEND: sidecar (default) | dynamodb | memory
func buildOutcomeRepository(sc *sidecar.Client) interfaces.IPaymentOutcomeRepository {
	switch strings.ToLower(os.Getenv("STATE_BACKEND")) {
	case "dynamodb":
		logrus.Info("outcome store backend: dynamodb")
		return repository.NewPaymentOutcomeDynamoRepository(database.ConnectDynamoDB())
	case "memory":
		logrus.Info("outcome store backend: memory")
		return repository.NewPaymentOutcomeStateRepository(state.NewMemoryStore())
	default:
		logrus.Info("outcome store backend: sidecar state store")
		return repository.NewPaymentOutcomeStateRepository(sc)
	}
}

// buildDecider selects the decision implementation.
// PAYMENT_DECIDER: simulated (default) | mercadopago
func buildDecider() interfaces.IPaymentDecider {
	if strings.ToLower(os.Getenv("PAYMENT_DECIDER")) == "mercadopago" {
		decider, err := payments.NewMercadoPagoDeciderFromEnv()
		if err == nil {
			logrus.Info("payment decider: mercadopago")
			return decider
		}
		logrus.Warnf("mercado pago decider not configured, falling back to simulated: %v", err)
	}
	logrus.Info("payment decider: simulated")
	return payments.NewSimulatedDeciderFromEnv()
}

// buildEventBus selects the pub/sub transport. The subscriber is non-nil only
// for the in-memory bus; in sidecar mode deliveries arrive on the topic route.
// EVENT_BUS: sidecar (default) | memory
func buildEventBus(sc *sidecar.Client) (interfaces.IEventPublisher, interfaces.IEventSubscriber) {
	if strings.ToLower(os.Getenv("EVENT_BUS")) == "memory" {
		logrus.Info("event bus: memory")
		b := bus.NewMemoryBus()
		return b, b
	}
	logrus.Info("event bus: sidecar")
	return sc, nil
}

func processorConfigFromEnv() usecase.ProcessorConfig {
	return usecase.ProcessorConfig{
		DecisionTimeout:    getenvDuration("PAYMENT_DECISION_TIMEOUT", 0),
		PublishMaxAttempts: getenvUint("PAYMENT_PUBLISH_MAX_ATTEMPTS", 0),
		PublishBaseDelay:   getenvDuration("PAYMENT_PUBLISH_BASE_DELAY", 0),
		PublishMaxDelay:    getenvDuration("PAYMENT_PUBLISH_MAX_DELAY", 0),
	}
}

func getenvDuration(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		logrus.Warnf("invalid duration in %s: %v", key, err)
		return def
	}
	return d
}

func getenvUint(key string, def uint) uint {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.ParseUint(v, 10, 32)
	if err != nil {
		logrus.Warnf("invalid number in %s: %v", key, err)
		return def
	}
	return uint(n)
}
