package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"payment_service/internal/domain/entities"
	"payment_service/internal/usecase/interfaces"
	"payment_service/pkg/retry"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	ErrPublishExhausted = errors.New("terminal event publish attempts exhausted")
	ErrDecisionFailed   = errors.New("payment decision failed")
	ErrPersistenceFail  = errors.New("payment outcome persistence failed")
)

// IProcessPaymentUseCase runs one payment request through the pipeline.
//
// Every invocation terminates the request: it either persists an outcome and
// publishes payment-completed/payment-failed, or publishes a failure event.
// A non-nil error means the request ended in failure (the event has already
// been published); callers ack the message either way, since failures are
// terminal and must not be redelivered forever.
type IProcessPaymentUseCase interface {
	Process(ctx context.Context, req entities.PaymentRequest) (entities.PaymentOutcome, error)
}

// ProcessorConfig carries the retry/timeout policy. Zero values fall back to
// the defaults below.
type ProcessorConfig struct {
	DecisionTimeout    time.Duration
	PublishMaxAttempts uint
	PublishBaseDelay   time.Duration
	PublishMaxDelay    time.Duration
}

const (
	defaultDecisionTimeout    = 30 * time.Second
	defaultPublishMaxAttempts = 3
	defaultPublishBaseDelay   = 200 * time.Millisecond
	defaultPublishMaxDelay    = 2 * time.Second
)

type ProcessPaymentUseCase struct {
	repo    interfaces.IPaymentOutcomeRepository
	decider interfaces.IPaymentDecider
	bus     interfaces.IEventPublisher
	cfg     ProcessorConfig
	log     *logrus.Entry

	// injected for determinism in tests
	now              func() time.Time
	newTransactionID func() string
}

var _ IProcessPaymentUseCase = (*ProcessPaymentUseCase)(nil)

func NewProcessPaymentUseCase(repo interfaces.IPaymentOutcomeRepository, decider interfaces.IPaymentDecider, bus interfaces.IEventPublisher, cfg ProcessorConfig) *ProcessPaymentUseCase {
	if cfg.DecisionTimeout == 0 {
		cfg.DecisionTimeout = defaultDecisionTimeout
	}
	if cfg.PublishMaxAttempts == 0 {
		cfg.PublishMaxAttempts = defaultPublishMaxAttempts
	}
	if cfg.PublishBaseDelay == 0 {
		cfg.PublishBaseDelay = defaultPublishBaseDelay
	}
	if cfg.PublishMaxDelay == 0 {
		cfg.PublishMaxDelay = defaultPublishMaxDelay
	}
	return &ProcessPaymentUseCase{
		repo:             repo,
		decider:          decider,
		bus:              bus,
		cfg:              cfg,
		log:              logrus.StandardLogger().WithField("type", "process_payment_usecase"),
		now:              time.Now,
		newTransactionID: uuid.NewString,
	}
}

// Process drives a request through validate -> decide -> persist -> publish.
//
// Order within a request is strictly sequential; nothing is shared between
// concurrent requests except the store and the bus. The store is consulted
// before recomputing so duplicate deliveries of the same id replay the stored
// outcome instead of producing divergent state.
func (u *ProcessPaymentUseCase) Process(ctx context.Context, req entities.PaymentRequest) (outcome entities.PaymentOutcome, err error) {
	req = req.Normalized()
	log := u.log.WithFields(logrus.Fields{
		"method":     "Process",
		"request_id": req.ID,
		"order_id":   req.OrderID,
	})

	defer func() {
		if r := recover(); r != nil {
			log.Errorf("recovered panic while processing: %v", r)
			detail := fmt.Sprintf("panic: %v", r)
			u.publishFailure(ctx, log, req, "processing error: "+detail, detail, "")
			outcome = entities.PaymentOutcome{}
			err = fmt.Errorf("unexpected processing error: %v", r)
		}
	}()

	log.Info("payment request received")

	if verr := ValidatePaymentRequest(req); verr != nil {
		log.WithError(verr).Info("payment request rejected by validation")
		u.publishFailure(ctx, log, req, verr.Error(), "", "")
		return entities.PaymentOutcome{}, verr
	}

	existing, gerr := u.repo.GetByID(ctx, req.ID)
	if gerr != nil {
		log.WithError(gerr).Error("outcome lookup failed")
		detail := gerr.Error()
		u.publishFailure(ctx, log, req, "processing error: "+detail, detail, "")
		return entities.PaymentOutcome{}, fmt.Errorf("%w: %v", ErrPersistenceFail, gerr)
	}
	if existing.ID != "" {
		log.WithField("status", existing.Status).Info("duplicate delivery, replaying stored outcome")
		return existing, u.publishTerminal(ctx, log, req, existing)
	}

	decision, derr := u.decide(ctx, req)
	if derr != nil {
		detail := derr.Error()
		if errors.Is(derr, context.DeadlineExceeded) {
			detail = "payment decision timed out"
		}
		log.WithError(derr).Error("payment decision failed")
		u.publishFailure(ctx, log, req, "processing error: "+detail, derr.Error(), "")
		return entities.PaymentOutcome{}, fmt.Errorf("%w: %v", ErrDecisionFailed, derr)
	}

	outcome = entities.PaymentOutcome{
		ID:            req.ID,
		Status:        entities.OutcomeStatusRejected,
		TransactionID: u.newTransactionID(),
		Message:       decision.Message,
		ProcessedAt:   u.now().UTC(),
	}
	if decision.Approved {
		outcome.Status = entities.OutcomeStatusApproved
	}

	// Fail fast on persistence: a silent retry here could mask data loss.
	if serr := u.repo.Save(ctx, outcome); serr != nil {
		log.WithError(serr).Error("outcome persistence failed")
		detail := serr.Error()
		u.publishFailure(ctx, log, req, "processing error: "+detail, detail, outcome.TransactionID)
		return entities.PaymentOutcome{}, fmt.Errorf("%w: %v", ErrPersistenceFail, serr)
	}
	log.WithFields(logrus.Fields{
		"status":         outcome.Status,
		"transaction_id": outcome.TransactionID,
	}).Info("payment outcome persisted")

	return outcome, u.publishTerminal(ctx, log, req, outcome)
}

// decide runs the external decision under its own timeout so a slow provider
// cannot strand the request without a terminal event.
func (u *ProcessPaymentUseCase) decide(ctx context.Context, req entities.PaymentRequest) (interfaces.Decision, error) {
	dctx, cancel := context.WithTimeout(ctx, u.cfg.DecisionTimeout)
	defer cancel()
	return u.decider.Decide(dctx, req)
}

// publishTerminal emits the single terminal event for a persisted outcome:
// payment-completed for approvals, payment-failed for rejections.
func (u *ProcessPaymentUseCase) publishTerminal(ctx context.Context, log *logrus.Entry, req entities.PaymentRequest, outcome entities.PaymentOutcome) error {
	if outcome.Approved() {
		event := entities.NewPaymentCompletedEvent(req, outcome)
		return u.publishWithRetry(ctx, log, entities.TopicPaymentCompleted, event)
	}
	event := entities.NewPaymentFailedEvent(req, outcome.Message, "", outcome.TransactionID, outcome.ProcessedAt)
	if event.Reason == "" {
		event.Reason = "payment rejected"
	}
	return u.publishWithRetry(ctx, log, entities.TopicPaymentFailed, event)
}

// publishFailure emits a payment-failed event for requests that never produced
// an outcome. Best effort: exhaustion is logged, never raised.
func (u *ProcessPaymentUseCase) publishFailure(ctx context.Context, log *logrus.Entry, req entities.PaymentRequest, reason, details, transactionID string) {
	event := entities.NewPaymentFailedEvent(req, reason, details, transactionID, u.now().UTC())
	if err := u.publishWithRetry(ctx, log, entities.TopicPaymentFailed, event); err != nil {
		log.WithError(err).Warn("failure event not delivered")
	}
}

// publishWithRetry wraps the bus publish in the bounded retry policy. Only
// publish calls are retried; exhaustion does not re-open processor state, it
// is surfaced to the caller as best-effort failure.
func (u *ProcessPaymentUseCase) publishWithRetry(ctx context.Context, log *logrus.Entry, topic string, event any) error {
	attempts, err := retry.Do(
		func() error { return u.bus.Publish(ctx, topic, event) },
		retry.NonRetriable(context.Canceled),
		retry.Limit(u.cfg.PublishMaxAttempts),
		retry.Backoff(retry.Linear(u.cfg.PublishBaseDelay), u.cfg.PublishMaxDelay),
	)
	if err != nil {
		log.WithError(err).WithFields(logrus.Fields{
			"topic":    topic,
			"attempts": attempts,
		}).Error("event publish exhausted")
		return fmt.Errorf("%w: topic %s after %d attempts: %v", ErrPublishExhausted, topic, attempts, err)
	}
	log.WithFields(logrus.Fields{
		"topic":    topic,
		"attempts": attempts,
	}).Info("event published")
	return nil
}
