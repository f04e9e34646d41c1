package usecase

import (
	"context"

	"meetsum-backend/internal/email/domain"
)

// EmailTransport is the external delivery collaborator. One call delivers
// one message to one recipient.
type EmailTransport interface {
	Send(ctx context.Context, to, subject, body string) error
}

// EmailUsecase dispatches one message to a set of recipients, tolerating
// independent per-recipient failures.
type EmailUsecase interface {
	Send(ctx context.Context, to []string, subject, body string) domain.EmailOutcome
}
