package repository

import (
	"context"
	"encoding/json"

	"payment_service/internal/domain/entities"
	"payment_service/internal/usecase/interfaces"
)

const outcomeKeyPrefix = "payment-"

// PaymentOutcomeStateRepository stores outcomes through the narrow key/value
// port (sidecar state API or the in-memory store), under "payment-<id>" keys
// with JSON values.
type PaymentOutcomeStateRepository struct {
	store interfaces.IKeyValueStore
}

var _ interfaces.IPaymentOutcomeRepository = (*PaymentOutcomeStateRepository)(nil)

func NewPaymentOutcomeStateRepository(store interfaces.IKeyValueStore) *PaymentOutcomeStateRepository {
	return &PaymentOutcomeStateRepository{store: store}
}

// OutcomeKey returns the state-store key for a request id.
func OutcomeKey(id string) string {
	return outcomeKeyPrefix + id
}

func (r *PaymentOutcomeStateRepository) Save(ctx context.Context, outcome entities.PaymentOutcome) error {
	data, err := json.Marshal(outcome)
	if err != nil {
		return err
	}
	return r.store.Put(ctx, OutcomeKey(outcome.ID), data)
}

func (r *PaymentOutcomeStateRepository) GetByID(ctx context.Context, id string) (entities.PaymentOutcome, error) {
	data, found, err := r.store.Get(ctx, OutcomeKey(id))
	if err != nil {
		return entities.PaymentOutcome{}, err
	}
	if !found {
		return entities.PaymentOutcome{}, nil
	}

	var outcome entities.PaymentOutcome
	if err := json.Unmarshal(data, &outcome); err != nil {
		return entities.PaymentOutcome{}, err
	}
	return outcome, nil
}
