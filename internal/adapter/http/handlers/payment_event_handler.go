package handlers

import (
	"net/http"

	"payment_service/internal/adapter/http/dto/request"
	"payment_service/internal/adapter/http/dto/response"
	"payment_service/internal/usecase"
	"payment_service/pkg"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// PaymentEventHandler receives payment-request deliveries from the sidecar.
type PaymentEventHandler struct {
	usecase usecase.IProcessPaymentUseCase
	log     *logrus.Entry
}

func NewPaymentEventHandler(uc usecase.IProcessPaymentUseCase) *PaymentEventHandler {
	return &PaymentEventHandler{
		usecase: uc,
		log:     logrus.StandardLogger().WithField("type", "payment_event_handler"),
	}
}

// HandlePaymentRequest runs one delivery through the pipeline and acks it.
// Processing failures are acked with success=false: the pipeline already
// published the terminal payment-failed event, so redelivery would only
// replay a terminal state. Only an unreadable or non-JSON body is a 400.
func (h *PaymentEventHandler) HandlePaymentRequest(c *gin.Context) {
	raw, err := c.GetRawData()
	if err != nil {
		h.log.WithError(err).Error("failed reading event body")
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	req, err := request.ParsePaymentRequestEvent(raw)
	if err != nil {
		h.log.WithError(err).Error("undecodable payment-request event")
		appErr := pkg.NewDomainErrorSimple("INVALID_EVENT", "Event body is not a payment request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	log := h.log.WithField("request_id", req.ID)
	outcome, perr := h.usecase.Process(c.Request.Context(), req)
	if perr != nil {
		log.WithError(perr).Warn("payment request terminated in failure")
		c.JSON(http.StatusOK, response.EventAck{Success: false, Error: perr.Error()})
		return
	}

	log.WithField("status", outcome.Status).Info("payment request processed")
	c.JSON(http.StatusOK, response.EventAck{Success: true, Status: string(outcome.Status)})
}
