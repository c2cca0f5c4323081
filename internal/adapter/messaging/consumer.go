package messaging

import (
	"context"

	"payment_service/internal/adapter/http/dto/request"
	"payment_service/internal/domain/entities"
	"payment_service/internal/usecase"
	"payment_service/internal/usecase/interfaces"

	"github.com/sirupsen/logrus"
)

// PaymentRequestConsumer feeds payment-request messages from an
// IEventSubscriber into the processing pipeline. Used with the in-memory bus;
// in sidecar mode deliveries arrive on the HTTP topic route instead.
type PaymentRequestConsumer struct {
	usecase usecase.IProcessPaymentUseCase
	log     *logrus.Entry
}

func NewPaymentRequestConsumer(uc usecase.IProcessPaymentUseCase) *PaymentRequestConsumer {
	return &PaymentRequestConsumer{
		usecase: uc,
		log:     logrus.StandardLogger().WithField("type", "payment_request_consumer"),
	}
}

func (c *PaymentRequestConsumer) Register(sub interfaces.IEventSubscriber) {
	sub.Subscribe(entities.TopicPaymentRequest, c.Handle)
}

// Handle processes one delivery. Processing failures are terminal (a
// payment-failed event has already been published), so they are acked;
// only undecodable bodies bubble up as handler errors.
func (c *PaymentRequestConsumer) Handle(ctx context.Context, data []byte) error {
	req, err := request.ParsePaymentRequestEvent(data)
	if err != nil {
		c.log.WithError(err).Error("dropping undecodable payment-request message")
		return err
	}

	if _, perr := c.usecase.Process(ctx, req); perr != nil {
		c.log.WithError(perr).WithField("request_id", req.ID).Warn("payment request terminated in failure")
	}
	return nil
}
