package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/costeam/cos-backend/internal/indexswap"
	"github.com/costeam/cos-backend/internal/indexswap/dto"
	"github.com/costeam/cos-backend/pkg/response"
)

type IndexSwapHandler struct {
	uc     indexswap.UseCase
	logger *zap.Logger
}

func NewIndexSwapHandler(uc indexswap.UseCase, log *zap.Logger) *IndexSwapHandler {
	return &IndexSwapHandler{
		uc:     uc,
		logger: log,
	}
}

type indexSwapRequest struct {
	StudentName string `json:"student_name" binding:"required"`
	Email       string `json:"email"`
	ModuleName  string `json:"module_name" binding:"required"`
	ModuleCode  string `json:"module_code" binding:"required"`
	HaveIndex   string `json:"have_index" binding:"required"`
	WantIndex   string `json:"want_index" binding:"required"`
	PhoneNumber string `json:"phone_number"`
	TeleHandle  string `json:"tele_handle"`
}

func (r *indexSwapRequest) toInput() *dto.IndexSwapInput {
	return &dto.IndexSwapInput{
		StudentName: r.StudentName,
		Email:       r.Email,
		ModuleName:  r.ModuleName,
		ModuleCode:  r.ModuleCode,
		HaveIndex:   r.HaveIndex,
		WantIndex:   r.WantIndex,
		PhoneNumber: r.PhoneNumber,
		TeleHandle:  r.TeleHandle,
	}
}

func (h *IndexSwapHandler) Create(c *gin.Context) {
	var req indexSwapRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, err.Error())
		return
	}

	swap, err := h.uc.CreateIndexSwap(c.Request.Context(), req.toInput())
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.OKWithData(c, "Index Swap Request created successfully", swap)
}

func (h *IndexSwapHandler) List(c *gin.Context) {
	swaps, err := h.uc.ListIndexSwaps(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	if len(swaps) == 0 {
		response.Fail(c, "No index swap requests found")
		return
	}
	response.OKWithData(c, "Index swap requests found", swaps)
}

func (h *IndexSwapHandler) Update(c *gin.Context) {
	var req indexSwapRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, err.Error())
		return
	}

	swap, err := h.uc.UpdateIndexSwap(c.Request.Context(), c.Param("id"), req.toInput())
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.OKWithData(c, "Index Swap Request updated successfully", swap)
}

func (h *IndexSwapHandler) Delete(c *gin.Context) {
	if err := h.uc.DeleteIndexSwap(c.Request.Context(), c.Param("id")); err != nil {
		h.respondError(c, err)
		return
	}
	response.OK(c, "Index swap request deleted successfully")
}

func (h *IndexSwapHandler) respondError(c *gin.Context, err error) {
	if errors.Is(err, indexswap.ErrDuplicate) || errors.Is(err, indexswap.ErrNotFound) {
		response.Fail(c, err.Error())
		return
	}
	h.logger.Error("index swap handler failure", zap.Error(err))
	c.JSON(http.StatusInternalServerError, response.Envelope{Success: false, Message: err.Error()})
}
