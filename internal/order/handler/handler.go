package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/costeam/cos-backend/internal/order"
	"github.com/costeam/cos-backend/pkg/response"
)

type OrderHandler struct {
	uc     order.UseCase
	logger *zap.Logger
}

func NewOrderHandler(uc order.UseCase, log *zap.Logger) *OrderHandler {
	return &OrderHandler{
		uc:     uc,
		logger: log,
	}
}

func (h *OrderHandler) ListByEmail(c *gin.Context) {
	orders, err := h.uc.ListOrdersByEmail(c.Request.Context(), c.Param("email"))
	if err != nil {
		h.logger.Error("order lookup failure", zap.Error(err))
		c.JSON(http.StatusInternalServerError, response.Envelope{Success: false, Message: err.Error()})
		return
	}
	if len(orders) == 0 {
		response.Fail(c, "No orders found")
		return
	}
	response.OKWithData(c, "Orders found", orders)
}
