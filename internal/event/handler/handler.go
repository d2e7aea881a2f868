package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/costeam/cos-backend/internal/event"
	"github.com/costeam/cos-backend/internal/event/dto"
	"github.com/costeam/cos-backend/pkg/response"
)

type EventHandler struct {
	uc     event.UseCase
	logger *zap.Logger
}

func NewEventHandler(uc event.UseCase, log *zap.Logger) *EventHandler {
	return &EventHandler{
		uc:     uc,
		logger: log,
	}
}

type eventRequest struct {
	Name        string    `json:"name" binding:"required"`
	Description string    `json:"description"`
	StartDate   time.Time `json:"start_date" binding:"required"`
	EndDate     time.Time `json:"end_date" binding:"required"`
	Time        string    `json:"time"`
	PhotoURL    string    `json:"photo_url"`
}

func (h *EventHandler) Create(c *gin.Context) {
	var req eventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, err.Error())
		return
	}

	e, err := h.uc.CreateEvent(c.Request.Context(), &dto.CreateEventInput{
		Name:        req.Name,
		Description: req.Description,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Time:        req.Time,
		PhotoURL:    req.PhotoURL,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.OKWithData(c, "Event created successfully", e)
}

func (h *EventHandler) List(c *gin.Context) {
	events, err := h.uc.ListEvents(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	if len(events) == 0 {
		response.Fail(c, "No events found")
		return
	}
	response.OKWithData(c, "Events found", events)
}

func (h *EventHandler) Update(c *gin.Context) {
	var req eventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, err.Error())
		return
	}

	e, err := h.uc.UpdateEvent(c.Request.Context(), &dto.UpdateEventInput{
		ID:          c.Param("id"),
		Name:        req.Name,
		Description: req.Description,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Time:        req.Time,
		PhotoURL:    req.PhotoURL,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.OKWithData(c, "Event updated successfully", e)
}

func (h *EventHandler) Delete(c *gin.Context) {
	if err := h.uc.DeleteEvent(c.Request.Context(), c.Param("id")); err != nil {
		h.respondError(c, err)
		return
	}
	response.OK(c, "Event deleted successfully")
}

func (h *EventHandler) respondError(c *gin.Context, err error) {
	if errors.Is(err, event.ErrDuplicateName) || errors.Is(err, event.ErrNotFound) {
		response.Fail(c, err.Error())
		return
	}
	h.logger.Error("event handler failure", zap.Error(err))
	c.JSON(http.StatusInternalServerError, response.Envelope{Success: false, Message: err.Error()})
}
