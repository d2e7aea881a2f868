package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/costeam/cos-backend/internal/checkout"
	"github.com/costeam/cos-backend/pkg/response"
)

type CheckoutHandler struct {
	uc     checkout.UseCase
	logger *zap.Logger
}

func NewCheckoutHandler(uc checkout.UseCase, log *zap.Logger) *CheckoutHandler {
	return &CheckoutHandler{
		uc:     uc,
		logger: log,
	}
}

type createSessionRequest struct {
	Email string `json:"email" binding:"required,email"`
	Items []struct {
		ID       string `json:"id" binding:"required"`
		Quantity int64  `json:"quantity" binding:"required,min=1"`
	} `json:"items" binding:"required,min=1,dive"`
}

func (h *CheckoutHandler) CreateSession(c *gin.Context) {
	var req createSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, err.Error())
		return
	}

	items := make([]checkout.CartItem, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, checkout.CartItem{ID: item.ID, Quantity: item.Quantity})
	}

	url, err := h.uc.CreateCheckoutSession(c.Request.Context(), req.Email, items)
	if err != nil {
		// Gateway and lookup failures alike surface verbatim.
		response.Fail(c, err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Successful",
		"url":     url,
	})
}

// Webhook receives gateway events. The body is read raw, before any JSON
// binding, because the gateway signs exactly those bytes.
func (h *CheckoutHandler) Webhook(c *gin.Context) {
	payload, err := c.GetRawData()
	if err != nil {
		c.String(http.StatusBadRequest, "cannot read body")
		return
	}

	err = h.uc.HandleGatewayEvent(c.Request.Context(), payload, c.GetHeader("Stripe-Signature"))
	if err != nil {
		if errors.Is(err, checkout.ErrBadSignature) {
			c.String(http.StatusBadRequest, err.Error())
			return
		}
		// Not acknowledged: the gateway's own retry is the only recovery.
		h.logger.Error("webhook processing failure", zap.Error(err))
		c.String(http.StatusInternalServerError, err.Error())
		return
	}

	c.String(http.StatusOK, "Successful")
}
