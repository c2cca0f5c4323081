package routes

import (
	"payment_service/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const PathPayments = "/payments"

func addPaymentRoutes(rg *gin.RouterGroup, queryHandler *handlers.PaymentQueryHandler) {
	payments := rg.Group(PathPayments)
	{
		payments.GET("/:id", queryHandler.GetPaymentByID)
	}
}
