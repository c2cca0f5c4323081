package entities

import "time"

// OutcomeStatus represents the terminal decision for a payment request.
//
// The pipeline currently writes approved/rejected; failed is part of the stored
// contract for completeness (a request that cannot produce an outcome emits a
// failure event instead of a store entry).
type OutcomeStatus string

const (
	OutcomeStatusApproved OutcomeStatus = "approved"
	OutcomeStatusRejected OutcomeStatus = "rejected"
	OutcomeStatusFailed   OutcomeStatus = "failed"
)

// PaymentOutcome is the write-once record persisted under the request's
// idempotency key.
//
// Storage model:
//   - DynamoDB backend: PK id (string), table PAYMENT_OUTCOMES_TABLE.
//   - State-store backend: key "payment-<id>", JSON value.
//
// Reprocessing the same request id must overwrite with an equivalent record,
// never create a duplicate.
type PaymentOutcome struct {
	ID            string        `json:"id"`
	Status        OutcomeStatus `json:"status"`
	TransactionID string        `json:"transactionId"`
	Message       string        `json:"message"`
	ProcessedAt   time.Time     `json:"processedAt"`
}

// Approved reports whether the outcome is an approval.
func (o PaymentOutcome) Approved() bool {
	return o.Status == OutcomeStatusApproved
}
