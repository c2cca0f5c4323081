package interfaces

import (
	"context"

	"payment_service/internal/domain/entities"
)

// IPaymentOutcomeRepository abstracts persistence of payment outcomes keyed by
// the request's idempotency key.
//
// Save must behave as an upsert: writing the same id twice leaves equivalent
// state. GetByID returns a zero-ID outcome when nothing is stored for the key.
type IPaymentOutcomeRepository interface {
	Save(ctx context.Context, outcome entities.PaymentOutcome) error
	GetByID(ctx context.Context, id string) (entities.PaymentOutcome, error)
}
