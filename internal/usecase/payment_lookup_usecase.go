package usecase

import (
	"context"
	"errors"
	"strings"

	"payment_service/internal/domain/entities"
	"payment_service/internal/usecase/interfaces"
)

var (
	ErrPaymentOutcomeNotFound = errors.New("payment outcome not found")
	ErrInvalidPaymentID       = errors.New("invalid payment id")
)

// IPaymentLookupUseCase is the read path for downstream consumers that prefer
// a store lookup over watching the outcome topics.
type IPaymentLookupUseCase interface {
	GetByID(ctx context.Context, id string) (entities.PaymentOutcome, error)
}

type PaymentLookupUseCase struct {
	repo interfaces.IPaymentOutcomeRepository
}

var _ IPaymentLookupUseCase = (*PaymentLookupUseCase)(nil)

func NewPaymentLookupUseCase(repo interfaces.IPaymentOutcomeRepository) *PaymentLookupUseCase {
	return &PaymentLookupUseCase{repo: repo}
}

func (u *PaymentLookupUseCase) GetByID(ctx context.Context, id string) (entities.PaymentOutcome, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.PaymentOutcome{}, ErrInvalidPaymentID
	}

	outcome, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.PaymentOutcome{}, err
	}
	if outcome.ID == "" {
		return entities.PaymentOutcome{}, ErrPaymentOutcomeNotFound
	}
	return outcome, nil
}
