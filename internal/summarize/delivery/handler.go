package delivery

import (
	"context"
	"errors"
	"net/http"
	"time"

	summarizedto "meetsum-backend/internal/summarize/dto"
	"meetsum-backend/internal/summarize/usecase"
	"meetsum-backend/pkg/ai"
	"meetsum-backend/pkg/validation"

	"github.com/gin-gonic/gin"
)

type SummarizeHandler struct {
	summarizeUsecase usecase.SummarizeUsecase
	timeout          time.Duration
}

func NewSummarizeHandler(summarizeUsecase usecase.SummarizeUsecase, timeout time.Duration) *SummarizeHandler {
	return &SummarizeHandler{
		summarizeUsecase: summarizeUsecase,
		timeout:          timeout,
	}
}

// POST /api/summarize
func (h *SummarizeHandler) Summarize(c *gin.Context) {
	var req summarizedto.SummarizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input", "details": validation.Issues(err)})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), h.timeout)
	defer cancel()

	summary, err := h.summarizeUsecase.Summarize(ctx, req.TranscriptText, req.CustomPrompt)
	if err != nil {
		if errors.Is(err, usecase.ErrEmptyTranscript) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Transcript text is required"})
			return
		}

		classified := ai.Classify(err)
		c.JSON(statusFor(classified.Kind), gin.H{"error": classified.Message})
		return
	}

	c.JSON(http.StatusOK, summarizedto.SummarizeResponse{Summary: summary})
}

func statusFor(kind ai.Kind) int {
	switch kind {
	case ai.KindContentRejected:
		return http.StatusBadRequest
	case ai.KindRateLimited:
		return http.StatusServiceUnavailable
	case ai.KindProviderFault:
		return http.StatusBadGateway
	default:
		// NotConfigured, InvalidCredentials, Unknown
		return http.StatusInternalServerError
	}
}
