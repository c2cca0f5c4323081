package response

import (
	"time"

	"payment_service/internal/domain/entities"
)

type PaymentOutcomeResponse struct {
	ID            string    `json:"id"`
	Status        string    `json:"status"`
	TransactionID string    `json:"transactionId"`
	Message       string    `json:"message,omitempty"`
	ProcessedAt   time.Time `json:"processedAt"`
}

func FromPaymentOutcome(o entities.PaymentOutcome) PaymentOutcomeResponse {
	return PaymentOutcomeResponse{
		ID:            o.ID,
		Status:        string(o.Status),
		TransactionID: o.TransactionID,
		Message:       o.Message,
		ProcessedAt:   o.ProcessedAt,
	}
}

// EventAck is returned to the sidecar after a topic delivery. The event is
// acked even when processing failed, because failures are terminal and have
// already produced their payment-failed event.
type EventAck struct {
	Success bool   `json:"success"`
	Status  string `json:"status,omitempty"`
	Error   string `json:"error,omitempty"`
}
