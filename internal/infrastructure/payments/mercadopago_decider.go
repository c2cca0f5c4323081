package payments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"payment_service/internal/domain/entities"
	"payment_service/internal/usecase/interfaces"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
	"github.com/sirupsen/logrus"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")

// MercadoPagoDecider asks Mercado Pago to create the payment and maps the
// provider status to a decision. Selected with PAYMENT_DECIDER=mercadopago;
// it is the drop-in real integration behind IPaymentDecider.
type MercadoPagoDecider struct {
	client          payment.Client
	paymentMethodID string
	payerEmail      string
	log             *logrus.Entry
}

var _ interfaces.IPaymentDecider = (*MercadoPagoDecider)(nil)

// NewMercadoPagoDeciderFromEnv builds the decider from MERCADOPAGO_ACCESS_TOKEN,
// MERCADOPAGO_PAYMENT_METHOD_ID (default: pix) and MERCADOPAGO_PAYER_EMAIL.
func NewMercadoPagoDeciderFromEnv() (*MercadoPagoDecider, error) {
	accessToken := strings.TrimSpace(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if accessToken == "" {
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		return nil, fmt.Errorf("create mercado pago sdk config: %w", err)
	}

	methodID := os.Getenv("MERCADOPAGO_PAYMENT_METHOD_ID")
	if methodID == "" {
		methodID = "pix"
	}

	return &MercadoPagoDecider{
		client:          payment.NewClient(cfg),
		paymentMethodID: methodID,
		payerEmail:      strings.TrimSpace(os.Getenv("MERCADOPAGO_PAYER_EMAIL")),
		log:             logrus.StandardLogger().WithField("type", "mercadopago_decider"),
	}, nil
}

func (d *MercadoPagoDecider) Decide(ctx context.Context, req entities.PaymentRequest) (interfaces.Decision, error) {
	log := d.log.WithField("request_id", req.ID)

	description := req.Description
	if description == "" {
		description = fmt.Sprintf("Invoice %s", req.ID)
	}

	// Built as a map and round-tripped through the SDK request type, so the
	// payload follows the provider's JSON contract exactly.
	payload := map[string]any{
		"transaction_amount": req.Amount,
		"description":        description,
		"external_reference": req.ID,
		"payment_method_id":  d.paymentMethodID,
	}
	if d.payerEmail != "" {
		payload["payer"] = map[string]any{"email": d.payerEmail}
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return interfaces.Decision{}, err
	}
	var sdkReq payment.Request
	if err := json.Unmarshal(body, &sdkReq); err != nil {
		return interfaces.Decision{}, err
	}

	resp, err := d.client.Create(ctx, sdkReq)
	if err != nil {
		log.WithError(err).Error("mercado pago create failed")
		return interfaces.Decision{}, err
	}

	ref := fmt.Sprintf("%d", resp.ID)
	log.WithFields(logrus.Fields{"provider_payment_id": ref, "provider_status": resp.Status}).Info("mercado pago decision")

	if resp.Status == "approved" {
		return interfaces.Decision{Approved: true, Message: "approved", ProviderRef: ref}, nil
	}
	return interfaces.Decision{Approved: false, Message: fmt.Sprintf("provider status %s", resp.Status), ProviderRef: ref}, nil
}
