package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"payment_service/internal/adapter/http/handlers/mocks"
	"payment_service/internal/domain/entities"
	"payment_service/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestPaymentEventHandler_HandlePaymentRequest(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid body", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProcessPaymentUseCase(ctrl)
		h := NewPaymentEventHandler(uc)

		r := gin.New()
		r.POST("/payment-request", h.HandlePaymentRequest)

		req := httptest.NewRequest(http.MethodPost, "/payment-request", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("bare request body", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProcessPaymentUseCase(ctrl)
		h := NewPaymentEventHandler(uc)

		r := gin.New()
		r.POST("/payment-request", h.HandlePaymentRequest)

		uc.EXPECT().Process(gomock.Any(), entities.PaymentRequest{ID: "inv-1", Amount: 500, CustomerID: "c1"}).
			Return(entities.PaymentOutcome{ID: "inv-1", Status: entities.OutcomeStatusApproved}, nil)

		req := httptest.NewRequest(http.MethodPost, "/payment-request", bytes.NewBufferString(`{"id":"inv-1","amount":500,"customerId":"c1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["success"] != true || body["status"] != "approved" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("enveloped delivery", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProcessPaymentUseCase(ctrl)
		h := NewPaymentEventHandler(uc)

		r := gin.New()
		r.POST("/payment-request", h.HandlePaymentRequest)

		uc.EXPECT().Process(gomock.Any(), entities.PaymentRequest{ID: "inv-2", Amount: 42}).
			Return(entities.PaymentOutcome{ID: "inv-2", Status: entities.OutcomeStatusApproved}, nil)

		req := httptest.NewRequest(http.MethodPost, "/payment-request", bytes.NewBufferString(`{"type":"com.dapr.event.sent","data":{"id":"inv-2","amount":42}}`))
		req.Header.Set("Content-Type", "application/cloudevents+json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("terminal failure is still acked", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProcessPaymentUseCase(ctrl)
		h := NewPaymentEventHandler(uc)

		r := gin.New()
		r.POST("/payment-request", h.HandlePaymentRequest)

		uc.EXPECT().Process(gomock.Any(), gomock.Any()).
			Return(entities.PaymentOutcome{}, usecase.ErrIDRequired)

		req := httptest.NewRequest(http.MethodPost, "/payment-request", bytes.NewBufferString(`{"id":"","amount":500}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("failures are terminal and must be acked, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["success"] != false {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestPaymentQueryHandler_GetPaymentByID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentLookupUseCase(ctrl)
		h := NewPaymentQueryHandler(uc)

		r := gin.New()
		r.GET("/v1/payments/:id", h.GetPaymentByID)

		uc.EXPECT().GetByID(gomock.Any(), "inv-1").Return(entities.PaymentOutcome{
			ID:            "inv-1",
			Status:        entities.OutcomeStatusApproved,
			TransactionID: "txn-1",
			ProcessedAt:   time.Now().UTC(),
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/payments/inv-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["id"] != "inv-1" || body["transactionId"] != "txn-1" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentLookupUseCase(ctrl)
		h := NewPaymentQueryHandler(uc)

		r := gin.New()
		r.GET("/v1/payments/:id", h.GetPaymentByID)

		uc.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.PaymentOutcome{}, usecase.ErrPaymentOutcomeNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/payments/missing", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestSidecarHandlers(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("health", func(t *testing.T) {
		r := gin.New()
		r.GET("/health", Health)

		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["status"] != "healthy" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("dapr subscribe", func(t *testing.T) {
		t.Setenv("PUBSUB_NAME", "")

		r := gin.New()
		r.GET("/dapr/subscribe", DaprSubscribe)

		req := httptest.NewRequest(http.MethodGet, "/dapr/subscribe", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var subs []SubscriptionDescriptor
		if err := json.Unmarshal(w.Body.Bytes(), &subs); err != nil {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
		if len(subs) != 1 || subs[0].Topic != entities.TopicPaymentRequest || subs[0].Route != "/payment-request" {
			t.Fatalf("unexpected subscriptions: %+v", subs)
		}
		if subs[0].PubsubName != "rabbitmq-pubsub" {
			t.Fatalf("unexpected pubsub name: %q", subs[0].PubsubName)
		}
	})
}
