package entities

// DefaultCurrency is applied when an inbound request omits the currency code.
const DefaultCurrency = "USD"

// PaymentRequest is the inbound message consumed from the payment-request topic.
//
// Contract notes:
//   - ID is the idempotency key. Billing emits one request per invoice, so the
//     same value is reported back as invoiceId on outbound events.
//   - Producers historically published slightly different shapes for this topic;
//     this struct is the single agreed contract for all of them.
type PaymentRequest struct {
	ID          string  `json:"id"`
	OrderID     string  `json:"orderId"`
	CustomerID  string  `json:"customerId"`
	Amount      float64 `json:"amount"`
	Currency    string  `json:"currency"`
	Description string  `json:"description"`
	RequestedBy string  `json:"requestedBy"`
}

// Normalized returns a copy with contract defaults applied.
func (r PaymentRequest) Normalized() PaymentRequest {
	if r.Currency == "" {
		r.Currency = DefaultCurrency
	}
	return r
}
