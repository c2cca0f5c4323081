package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"payment_service/internal/domain/entities"
	mock_interfaces "payment_service/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestPaymentLookupUseCase_GetByID(t *testing.T) {
	t.Run("returns stored outcome", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIPaymentOutcomeRepository(ctrl)

		stored := entities.PaymentOutcome{
			ID:            "inv-1",
			Status:        entities.OutcomeStatusApproved,
			TransactionID: "txn-1",
			ProcessedAt:   time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC),
		}
		repo.EXPECT().GetByID(gomock.Any(), "inv-1").Return(stored, nil)

		got, err := NewPaymentLookupUseCase(repo).GetByID(context.Background(), "inv-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.ID != "inv-1" || got.Status != entities.OutcomeStatusApproved {
			t.Fatalf("unexpected outcome: %+v", got)
		}
	})

	t.Run("blank id is invalid", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIPaymentOutcomeRepository(ctrl)

		_, err := NewPaymentLookupUseCase(repo).GetByID(context.Background(), "   ")
		if !errors.Is(err, ErrInvalidPaymentID) {
			t.Fatalf("expected ErrInvalidPaymentID, got %v", err)
		}
	})

	t.Run("trims id before lookup", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIPaymentOutcomeRepository(ctrl)

		repo.EXPECT().GetByID(gomock.Any(), "inv-1").Return(entities.PaymentOutcome{ID: "inv-1"}, nil)

		if _, err := NewPaymentLookupUseCase(repo).GetByID(context.Background(), "  inv-1  "); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("absent outcome maps to not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIPaymentOutcomeRepository(ctrl)

		repo.EXPECT().GetByID(gomock.Any(), "inv-missing").Return(entities.PaymentOutcome{}, nil)

		_, err := NewPaymentLookupUseCase(repo).GetByID(context.Background(), "inv-missing")
		if !errors.Is(err, ErrPaymentOutcomeNotFound) {
			t.Fatalf("expected ErrPaymentOutcomeNotFound, got %v", err)
		}
	})

	t.Run("repository errors pass through", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIPaymentOutcomeRepository(ctrl)

		boom := errors.New("store unavailable")
		repo.EXPECT().GetByID(gomock.Any(), "inv-1").Return(entities.PaymentOutcome{}, boom)

		_, err := NewPaymentLookupUseCase(repo).GetByID(context.Background(), "inv-1")
		if !errors.Is(err, boom) {
			t.Fatalf("expected repository error, got %v", err)
		}
	})
}
