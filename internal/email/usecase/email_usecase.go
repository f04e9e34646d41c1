package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"strings"

	"meetsum-backend/internal/email/domain"
)

type emailUsecase struct {
	transport EmailTransport
}

func NewEmailUsecase(transport EmailTransport) EmailUsecase {
	return &emailUsecase{transport: transport}
}

// Send attempts delivery to every recipient in input order. A recipient-level
// failure is recorded and the loop continues; a systemic transport fault
// (unreachable or unauthenticated) aborts the whole operation. All recipients
// failing individually is still Success=true with every address listed in
// FailedRecipients — the two failure levels must not be conflated.
func (u *emailUsecase) Send(ctx context.Context, to []string, subject, body string) domain.EmailOutcome {
	outcome := domain.EmailOutcome{Success: true}

	for _, recipient := range to {
		err := u.transport.Send(ctx, recipient, subject, body)
		if err == nil {
			continue
		}

		if isSystemicError(err) {
			log.Printf("[ERROR] Email transport failure: %v", err)
			return domain.EmailOutcome{
				Success: false,
				Err:     fmt.Sprintf("Email transport unavailable: %v", err),
			}
		}

		log.Printf("[WARN] Failed to send to %s: %v", recipient, err)
		outcome.FailedRecipients = append(outcome.FailedRecipients, recipient)
	}

	return outcome
}

// isSystemicError reports whether the transport as a whole is unusable, as
// opposed to a single recipient being rejected.
func isSystemicError(err error) bool {
	if err == nil {
		return false
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return true
	}

	errStr := strings.ToLower(err.Error())
	systemicIndicators := []string{
		"connection refused",
		"no such host",
		"network is unreachable",
		"connection reset",
		"timeout",
		"dial tcp",
		"unauthorized",
		"invalid_grant",
		"invalid_client",
		"oauth2",
		"login required",
		"unable to create gmail service",
	}

	for _, indicator := range systemicIndicators {
		if strings.Contains(errStr, indicator) {
			return true
		}
	}

	return false
}
