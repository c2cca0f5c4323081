package messaging

import (
	"context"
	"encoding/json"
	"math/rand"
	"testing"
	"time"

	"payment_service/internal/adapter/persistence/repository"
	"payment_service/internal/domain/entities"
	"payment_service/internal/infrastructure/bus"
	"payment_service/internal/infrastructure/payments"
	"payment_service/internal/infrastructure/state"
	"payment_service/internal/usecase"
)

// harness wires the full in-memory pipeline: bus -> consumer -> processor ->
// state store, with terminal events captured per topic.
type harness struct {
	bus       *bus.MemoryBus
	store     *state.MemoryStore
	completed []entities.PaymentCompletedEvent
	failed    []entities.PaymentFailedEvent
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	h := &harness{
		bus:   bus.NewMemoryBus(),
		store: state.NewMemoryStore(),
	}

	repo := repository.NewPaymentOutcomeStateRepository(h.store)
	decider := payments.NewSimulatedDecider(1000, 1.0, 0, rand.New(rand.NewSource(7)))
	processor := usecase.NewProcessPaymentUseCase(repo, decider, h.bus, usecase.ProcessorConfig{
		DecisionTimeout:    time.Second,
		PublishMaxAttempts: 3,
		PublishBaseDelay:   time.Millisecond,
		PublishMaxDelay:    time.Millisecond,
	})

	NewPaymentRequestConsumer(processor).Register(h.bus)

	h.bus.Subscribe(entities.TopicPaymentCompleted, func(ctx context.Context, data []byte) error {
		var e entities.PaymentCompletedEvent
		if err := json.Unmarshal(data, &e); err != nil {
			return err
		}
		h.completed = append(h.completed, e)
		return nil
	})
	h.bus.Subscribe(entities.TopicPaymentFailed, func(ctx context.Context, data []byte) error {
		var e entities.PaymentFailedEvent
		if err := json.Unmarshal(data, &e); err != nil {
			return err
		}
		h.failed = append(h.failed, e)
		return nil
	})
	return h
}

func (h *harness) publishRequest(t *testing.T, req entities.PaymentRequest) {
	t.Helper()
	if err := h.bus.Publish(context.Background(), entities.TopicPaymentRequest, req); err != nil {
		t.Fatalf("publish failed: %v", err)
	}
}

func TestPipeline_ApprovedRequest(t *testing.T) {
	h := newHarness(t)

	h.publishRequest(t, entities.PaymentRequest{ID: "inv-1", Amount: 500, CustomerID: "c1"})

	if len(h.completed) != 1 || len(h.failed) != 0 {
		t.Fatalf("expected exactly one completed event, got completed=%d failed=%d", len(h.completed), len(h.failed))
	}
	event := h.completed[0]
	if event.InvoiceID != "inv-1" || event.Amount != 500 || event.CustomerID != "c1" {
		t.Fatalf("unexpected event: %+v", event)
	}
	if event.Status != string(entities.OutcomeStatusApproved) {
		t.Fatalf("expected approved, got %s", event.Status)
	}
	if event.TransactionID == "" {
		t.Fatal("completed event missing transaction id")
	}

	raw, found, _ := h.store.Get(context.Background(), repository.OutcomeKey("inv-1"))
	if !found {
		t.Fatal("outcome not persisted")
	}
	var outcome entities.PaymentOutcome
	_ = json.Unmarshal(raw, &outcome)
	if outcome.Status != entities.OutcomeStatusApproved {
		t.Fatalf("unexpected stored outcome: %+v", outcome)
	}
}

func TestPipeline_EmptyIDRequest(t *testing.T) {
	h := newHarness(t)

	h.publishRequest(t, entities.PaymentRequest{ID: "", Amount: 500})

	if len(h.failed) != 1 || len(h.completed) != 0 {
		t.Fatalf("expected exactly one failed event, got completed=%d failed=%d", len(h.completed), len(h.failed))
	}
	if h.failed[0].Reason != "id required" {
		t.Fatalf("unexpected reason: %q", h.failed[0].Reason)
	}
	if h.store.Len() != 0 {
		t.Fatalf("validation failure must not write the store, got %d keys", h.store.Len())
	}
}

func TestPipeline_DuplicateDeliveryIsIdempotent(t *testing.T) {
	h := newHarness(t)

	req := entities.PaymentRequest{ID: "inv-1", Amount: 500}
	h.publishRequest(t, req)
	firstTxn := h.completed[0].TransactionID

	h.publishRequest(t, req)

	if h.store.Len() != 1 {
		t.Fatalf("duplicate delivery duplicated store state: %d keys", h.store.Len())
	}
	if len(h.completed) != 2 {
		t.Fatalf("expected replayed terminal event, got %d", len(h.completed))
	}
	if h.completed[1].TransactionID != firstTxn {
		t.Fatalf("replayed event diverged: %q != %q", h.completed[1].TransactionID, firstTxn)
	}
	if len(h.failed) != 0 {
		t.Fatalf("unexpected failure events: %+v", h.failed)
	}
}

func TestConsumer_UndecodableMessage(t *testing.T) {
	h := newHarness(t)

	err := h.bus.Publish(context.Background(), entities.TopicPaymentRequest, json.RawMessage(`"not an object"`))
	if err == nil {
		t.Fatal("expected handler error for undecodable message")
	}
	if h.store.Len() != 0 || len(h.completed) != 0 || len(h.failed) != 0 {
		t.Fatal("undecodable message must have no side effects")
	}
}
