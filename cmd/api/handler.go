package api

import (
	emailDelivery "meetsum-backend/internal/email/delivery"
	emailUsecase "meetsum-backend/internal/email/usecase"
	summarizeDelivery "meetsum-backend/internal/summarize/delivery"
	summarizeUsecase "meetsum-backend/internal/summarize/usecase"
	"meetsum-backend/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Handler struct {
	summarizeHandler *summarizeDelivery.SummarizeHandler
	emailHandler     *emailDelivery.EmailHandler
	config           *config.Config
}

func NewHandler(summarizeUc summarizeUsecase.SummarizeUsecase, emailUc emailUsecase.EmailUsecase, cfg *config.Config) *Handler {
	return &Handler{
		summarizeHandler: summarizeDelivery.NewSummarizeHandler(summarizeUc, cfg.RequestTimeout),
		emailHandler:     emailDelivery.NewEmailHandler(emailUc, cfg.RequestTimeout),
		config:           cfg,
	}
}

func (h *Handler) Start(addr string) error {
	gin.SetMode(gin.ReleaseMode)
	r := gin.Default()

	// Request ID middleware
	r.Use(func(c *gin.Context) {
		requestID := c.Request.Header.Get("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Writer.Header().Set("X-Request-ID", requestID)
		c.Next()
	})

	// CORS middleware
	r.Use(func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		if origin != "" {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		} else {
			c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		}

		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	// Setup routes
	SetupRoutes(r, h.summarizeHandler, h.emailHandler)

	return r.Run(addr)
}
