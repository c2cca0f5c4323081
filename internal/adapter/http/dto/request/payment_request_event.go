package request

import (
	"encoding/json"
	"errors"
	"strings"

	"payment_service/internal/domain/entities"
)

var ErrInvalidEventBody = errors.New("event body is not valid json")

// ParsePaymentRequestEvent decodes a payment-request message body.
//
// The sidecar delivers CloudEvents-style envelopes where the contract sits
// under "data"; direct producers publish the bare request. Both are accepted,
// which fixes the historical shape mismatch between producers of this topic.
func ParsePaymentRequestEvent(raw []byte) (entities.PaymentRequest, error) {
	if len(raw) == 0 || !json.Valid(raw) {
		return entities.PaymentRequest{}, ErrInvalidEventBody
	}

	var envelope struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(raw, &envelope); err == nil {
		wrapped := strings.TrimSpace(string(envelope.Data))
		if wrapped != "" && wrapped != "null" {
			raw = envelope.Data
		}
	}

	var req entities.PaymentRequest
	if err := json.Unmarshal(raw, &req); err != nil {
		return entities.PaymentRequest{}, ErrInvalidEventBody
	}
	return req, nil
}
