package handlers

import (
	"net/http"
	"os"

	"payment_service/internal/domain/entities"

	"github.com/gin-gonic/gin"
)

// Health reports process liveness; not part of the core logic.
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

// SubscriptionDescriptor is one entry of the sidecar's programmatic
// subscription contract.
type SubscriptionDescriptor struct {
	PubsubName string `json:"pubsubname"`
	Topic      string `json:"topic"`
	Route      string `json:"route"`
}

// DaprSubscribe declares which topics the sidecar should deliver and where.
func DaprSubscribe(c *gin.Context) {
	pubsub := os.Getenv("PUBSUB_NAME")
	if pubsub == "" {
		pubsub = "rabbitmq-pubsub"
	}
	c.JSON(http.StatusOK, []SubscriptionDescriptor{
		{
			PubsubName: pubsub,
			Topic:      entities.TopicPaymentRequest,
			Route:      "/" + entities.TopicPaymentRequest,
		},
	})
}
