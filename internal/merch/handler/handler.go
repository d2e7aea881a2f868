package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/costeam/cos-backend/internal/merch"
	"github.com/costeam/cos-backend/internal/merch/dto"
	"github.com/costeam/cos-backend/pkg/response"
)

type MerchHandler struct {
	uc     merch.UseCase
	logger *zap.Logger
}

func NewMerchHandler(uc merch.UseCase, log *zap.Logger) *MerchHandler {
	return &MerchHandler{
		uc:     uc,
		logger: log,
	}
}

type merchRequest struct {
	Name        string   `json:"name" binding:"required"`
	Description string   `json:"description"`
	Sizes       []string `json:"sizes"`
	Colors      []string `json:"colors"`
	Price       float64  `json:"price" binding:"min=0"`
	Quantity    int64    `json:"quantity"`
	PhotoURL    string   `json:"photo_url"`
	Category    string   `json:"category"`
}

func (r *merchRequest) toInput() *dto.MerchInput {
	return &dto.MerchInput{
		Name:        r.Name,
		Description: r.Description,
		Sizes:       r.Sizes,
		Colors:      r.Colors,
		Price:       r.Price,
		Quantity:    r.Quantity,
		PhotoURL:    r.PhotoURL,
		Category:    r.Category,
	}
}

func (h *MerchHandler) Create(c *gin.Context) {
	var req merchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, err.Error())
		return
	}

	m, err := h.uc.CreateMerch(c.Request.Context(), req.toInput())
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.OKWithData(c, "Merch created successfully", m)
}

func (h *MerchHandler) List(c *gin.Context) {
	items, err := h.uc.ListMerch(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	if len(items) == 0 {
		response.Fail(c, "No merch found")
		return
	}
	response.OKWithData(c, "Merch found", items)
}

func (h *MerchHandler) Update(c *gin.Context) {
	var req merchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, err.Error())
		return
	}

	m, err := h.uc.UpdateMerch(c.Request.Context(), c.Param("id"), req.toInput())
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.OKWithData(c, "Merch updated successfully", m)
}

func (h *MerchHandler) Delete(c *gin.Context) {
	if err := h.uc.DeleteMerch(c.Request.Context(), c.Param("id")); err != nil {
		h.respondError(c, err)
		return
	}
	response.OK(c, "Merch deleted successfully")
}

func (h *MerchHandler) respondError(c *gin.Context, err error) {
	if errors.Is(err, merch.ErrDuplicateName) || errors.Is(err, merch.ErrNotFound) {
		response.Fail(c, err.Error())
		return
	}
	h.logger.Error("merch handler failure", zap.Error(err))
	c.JSON(http.StatusInternalServerError, response.Envelope{Success: false, Message: err.Error()})
}
