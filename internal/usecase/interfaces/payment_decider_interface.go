package interfaces

import (
	"context"

	"payment_service/internal/domain/entities"
)

// Decision is the result of asking an external payment network whether a
// request should go through.
type Decision struct {
	Approved    bool
	Message     string
	ProviderRef string
}

// IPaymentDecider isolates the external decision call so the processing
// pipeline never depends on a concrete provider (simulated or Mercado Pago).
type IPaymentDecider interface {
	Decide(ctx context.Context, req entities.PaymentRequest) (Decision, error)
}
