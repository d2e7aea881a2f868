package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	authH "github.com/costeam/cos-backend/internal/auth/handler"
	checkoutH "github.com/costeam/cos-backend/internal/checkout/handler"
	eventH "github.com/costeam/cos-backend/internal/event/handler"
	indexSwapH "github.com/costeam/cos-backend/internal/indexswap/handler"
	merchH "github.com/costeam/cos-backend/internal/merch/handler"
	orderH "github.com/costeam/cos-backend/internal/order/handler"
	uploadH "github.com/costeam/cos-backend/internal/upload/handler"
	"github.com/costeam/cos-backend/pkg/metrics"
)

type Handlers struct {
	Event     *eventH.EventHandler
	IndexSwap *indexSwapH.IndexSwapHandler
	Merch     *merchH.MerchHandler
	Checkout  *checkoutH.CheckoutHandler
	Order     *orderH.OrderHandler
	Auth      *authH.AuthHandler
	Upload    *uploadH.UploadHandler
}

type Server struct {
	router *gin.Engine
}

func NewServer(h Handlers, m *metrics.ServerMetrics) *Server {
	router := gin.New()
	router.Use(gin.Recovery())
	if m != nil {
		router.Use(m.Middleware())
	}

	router.GET("/healthz", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	api := router.Group("/api")
	{
		event := api.Group("/event")
		{
			event.POST("", h.Event.Create)
			event.GET("", h.Event.List)
			event.PUT("/:id", h.Event.Update)
			event.DELETE("/:id", h.Event.Delete)
		}

		indexSwap := api.Group("/indexSwap")
		{
			indexSwap.POST("", h.IndexSwap.Create)
			indexSwap.GET("", h.IndexSwap.List)
			indexSwap.PUT("/:id", h.IndexSwap.Update)
			indexSwap.DELETE("/:id", h.IndexSwap.Delete)
		}

		merch := api.Group("/merch")
		{
			// The webhook route handles its own raw body; route registration
			// order keeps it out of the :id parameter space.
			merch.POST("/createCheckoutSession", h.Checkout.CreateSession)
			merch.POST("/stripeWebHook", h.Checkout.Webhook)
			merch.POST("", h.Merch.Create)
			merch.GET("", h.Merch.List)
			merch.PUT("/:id", h.Merch.Update)
			merch.DELETE("/:id", h.Merch.Delete)
		}

		api.GET("/order/:email", h.Order.ListByEmail)

		auth := api.Group("/auth")
		{
			auth.POST("/createOtp", h.Auth.CreateOTP)
			auth.POST("/verifyOtp", h.Auth.VerifyOTP)
			auth.POST("/register", h.Auth.Register)
			auth.POST("/login", h.Auth.Login)
		}

		api.POST("/file/uploadFile", h.Upload.UploadFile)
	}

	return &Server{router: router}
}

func (s *Server) Handler() http.Handler {
	return s.router
}
