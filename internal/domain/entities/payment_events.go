package entities

import "time"

// Topics exchanged with the rest of the system through the pub/sub component.
const (
	TopicPaymentRequest   = "payment-request"
	TopicPaymentCompleted = "payment-completed"
	TopicPaymentFailed    = "payment-failed"
)

// PaymentCompletedEvent is published on payment-completed for approved outcomes.
// Field names follow the contract consumed by the billing service.
type PaymentCompletedEvent struct {
	InvoiceID     string    `json:"invoiceId"`
	OrderID       string    `json:"orderId"`
	TransactionID string    `json:"transactionId"`
	Amount        float64   `json:"amount"`
	Currency      string    `json:"currency"`
	CustomerID    string    `json:"customerId"`
	ProcessedAt   time.Time `json:"processedAt"`
	Status        string    `json:"status"`
}

// PaymentFailedEvent is published on payment-failed whenever a request does not
// end in an approved outcome: business rejections, validation failures and
// processing errors alike. TransactionID is empty when no outcome was produced.
type PaymentFailedEvent struct {
	InvoiceID     string    `json:"invoiceId"`
	OrderID       string    `json:"orderId"`
	Amount        float64   `json:"amount"`
	CustomerID    string    `json:"customerId"`
	Reason        string    `json:"reason"`
	ErrorDetails  string    `json:"errorDetails,omitempty"`
	FailedAt      time.Time `json:"failedAt"`
	TransactionID string    `json:"transactionId,omitempty"`
}

// NewPaymentCompletedEvent builds the completed event for a persisted outcome.
func NewPaymentCompletedEvent(req PaymentRequest, outcome PaymentOutcome) PaymentCompletedEvent {
	return PaymentCompletedEvent{
		InvoiceID:     req.ID,
		OrderID:       req.OrderID,
		TransactionID: outcome.TransactionID,
		Amount:        req.Amount,
		Currency:      req.Currency,
		CustomerID:    req.CustomerID,
		ProcessedAt:   outcome.ProcessedAt,
		Status:        string(outcome.Status),
	}
}

// NewPaymentFailedEvent builds the failed event for a request that terminated
// without an approval. transactionID may be empty.
func NewPaymentFailedEvent(req PaymentRequest, reason, details, transactionID string, failedAt time.Time) PaymentFailedEvent {
	return PaymentFailedEvent{
		InvoiceID:     req.ID,
		OrderID:       req.OrderID,
		Amount:        req.Amount,
		CustomerID:    req.CustomerID,
		Reason:        reason,
		ErrorDetails:  details,
		FailedAt:      failedAt,
		TransactionID: transactionID,
	}
}
