package delivery

import (
	"context"
	"net/http"
	"strings"
	"time"

	emaildto "meetsum-backend/internal/email/dto"
	"meetsum-backend/internal/email/usecase"
	"meetsum-backend/pkg/validation"

	"github.com/gin-gonic/gin"
)

const defaultSubject = "Meeting Summary"

type EmailHandler struct {
	emailUsecase usecase.EmailUsecase
	timeout      time.Duration
}

func NewEmailHandler(emailUsecase usecase.EmailUsecase, timeout time.Duration) *EmailHandler {
	return &EmailHandler{
		emailUsecase: emailUsecase,
		timeout:      timeout,
	}
}

// POST /api/send-email
func (h *EmailHandler) SendEmail(c *gin.Context) {
	var req emaildto.SendEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input", "details": validation.Issues(err)})
		return
	}

	if strings.TrimSpace(req.Body) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email body is required"})
		return
	}

	subject := req.Subject
	if subject == "" {
		subject = defaultSubject
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), h.timeout)
	defer cancel()

	outcome := h.emailUsecase.Send(ctx, req.To, subject, req.Body)
	if !outcome.Success {
		errMsg := outcome.Err
		if errMsg == "" {
			errMsg = "Failed to send email"
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": errMsg, "ok": false})
		return
	}

	message := "Email sent successfully"
	if len(outcome.FailedRecipients) > 0 {
		message += ". Failed to send to: " + strings.Join(outcome.FailedRecipients, ", ")
	}

	c.JSON(http.StatusOK, gin.H{"message": message, "ok": true})
}
