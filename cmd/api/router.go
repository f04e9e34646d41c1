package api

import (
	"net/http"

	emailDelivery "meetsum-backend/internal/email/delivery"
	summarizeDelivery "meetsum-backend/internal/summarize/delivery"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine, summarizeHandler *summarizeDelivery.SummarizeHandler, emailHandler *emailDelivery.EmailHandler) {
	api := r.Group("/api")
	{
		// Health check
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		api.POST("/summarize", summarizeHandler.Summarize)
		api.POST("/send-email", emailHandler.SendEmail)
	}
}
