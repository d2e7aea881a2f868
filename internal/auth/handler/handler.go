package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/costeam/cos-backend/internal/auth"
	"github.com/costeam/cos-backend/internal/auth/dto"
	"github.com/costeam/cos-backend/pkg/response"
)

type AuthHandler struct {
	uc     auth.UseCase
	logger *zap.Logger
}

func NewAuthHandler(uc auth.UseCase, log *zap.Logger) *AuthHandler {
	return &AuthHandler{
		uc:     uc,
		logger: log,
	}
}

type createOTPRequest struct {
	Email string `json:"email" binding:"required,email"`
}

func (h *AuthHandler) CreateOTP(c *gin.Context) {
	var req createOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, err.Error())
		return
	}

	if err := h.uc.CreateOTP(c.Request.Context(), req.Email); err != nil {
		h.respondError(c, err)
		return
	}

	response.OK(c, "OTP has been sent to your email")
}

type verifyOTPRequest struct {
	Email string `json:"email" binding:"required,email"`
	OTP   string `json:"otp" binding:"required"`
}

func (h *AuthHandler) VerifyOTP(c *gin.Context) {
	var req verifyOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, err.Error())
		return
	}

	if err := h.uc.VerifyOTP(c.Request.Context(), req.Email, req.OTP); err != nil {
		h.respondError(c, err)
		return
	}

	response.OK(c, "Otp verified")
}

type registerRequest struct {
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required"`
	Name        string `json:"name" binding:"required"`
	PhoneNumber string `json:"phone_number"`
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, err.Error())
		return
	}

	token, err := h.uc.Register(c.Request.Context(), &dto.RegisterInput{
		Email:       req.Email,
		Password:    req.Password,
		Name:        req.Name,
		PhoneNumber: req.PhoneNumber,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "User registered succesfully",
		"token":   token,
	})
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, err.Error())
		return
	}

	token, err := h.uc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "User login succesfully",
		"token":   token,
	})
}

func (h *AuthHandler) respondError(c *gin.Context, err error) {
	if errors.Is(err, auth.ErrEmailRegistered) ||
		errors.Is(err, auth.ErrInvalidOTP) ||
		errors.Is(err, auth.ErrInvalidCredentials) {
		response.Fail(c, err.Error())
		return
	}
	h.logger.Error("auth handler failure", zap.Error(err))
	c.JSON(http.StatusInternalServerError, response.Envelope{Success: false, Message: err.Error()})
}
