package handlers

import (
	"errors"
	"net/http"

	"payment_service/internal/adapter/http/dto/response"
	"payment_service/internal/usecase"
	"payment_service/pkg"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// PaymentQueryHandler serves outcome lookups from the state store.
type PaymentQueryHandler struct {
	usecase usecase.IPaymentLookupUseCase
	log     *logrus.Entry
}

func NewPaymentQueryHandler(uc usecase.IPaymentLookupUseCase) *PaymentQueryHandler {
	return &PaymentQueryHandler{
		usecase: uc,
		log:     logrus.StandardLogger().WithField("type", "payment_query_handler"),
	}
}

// GetPaymentByID returns the persisted outcome for a request id.
func (h *PaymentQueryHandler) GetPaymentByID(c *gin.Context) {
	id := c.Param("id")

	outcome, err := h.usecase.GetByID(c.Request.Context(), id)
	if err != nil {
		h.log.WithError(err).WithField("request_id", id).Info("outcome lookup failed")
		appErr := mapPaymentLookupError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPaymentOutcome(outcome))
}

func mapPaymentLookupError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidPaymentID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentOutcomeNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
