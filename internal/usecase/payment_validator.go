package usecase

import (
	"errors"
	"strings"

	"payment_service/internal/domain/entities"
)

// Validation sentinels. Their messages are the exact reasons reported on
// payment-failed events, so downstream consumers match on them.
var (
	ErrIDRequired        = errors.New("id required")
	ErrNonPositiveAmount = errors.New("amount must be greater than zero")
)

// ValidatePaymentRequest applies the acceptance rules in order, first failure
// wins. Pure and deterministic; no side effects.
func ValidatePaymentRequest(req entities.PaymentRequest) error {
	if strings.TrimSpace(req.ID) == "" {
		return ErrIDRequired
	}
	if req.Amount <= 0 {
		return ErrNonPositiveAmount
	}
	return nil
}

// IsValidationError reports whether err is a request-acceptance failure, which
// is never retried and always terminates the request with a failure event.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrIDRequired) || errors.Is(err, ErrNonPositiveAmount)
}
