package ai

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// ErrNotConfigured is returned when no provider credential is present.
// It is a configuration fault, distinguishable from provider-side failures.
var ErrNotConfigured = errors.New("AI provider is not configured: set GEMINI_API_KEY")

// ProviderCallError carries the HTTP status and raw payload of a failed
// provider call so classification can inspect both.
type ProviderCallError struct {
	StatusCode int
	Message    string
}

func (e *ProviderCallError) Error() string {
	return fmt.Sprintf("provider returned status %d: %s", e.StatusCode, e.Message)
}

// Kind is the closed taxonomy of normalized provider failures.
type Kind int

const (
	KindUnknown Kind = iota
	KindNotConfigured
	KindInvalidCredentials
	KindRateLimited
	KindContentRejected
	KindProviderFault
)

// Classification is a normalized provider failure: a taxonomy value plus a
// message safe to show to callers.
type Classification struct {
	Kind    Kind
	Message string
}

// Classify maps an opaque provider failure to its Classification. Matching is
// heuristic: it inspects the HTTP status when available and otherwise falls
// back to substring matching on the error text, tolerating unknown formats.
func Classify(err error) Classification {
	if errors.Is(err, ErrNotConfigured) {
		return Classification{
			Kind:    KindNotConfigured,
			Message: "AI provider is not configured. Set GEMINI_API_KEY in the environment.",
		}
	}

	var callErr *ProviderCallError
	status := 0
	if errors.As(err, &callErr) {
		status = callErr.StatusCode
	}

	msg := strings.ToLower(err.Error())

	switch {
	case status == 401 || status == 403 || containsAny(msg,
		"api_key_invalid", "api key not valid", "invalid api key", "permission_denied", "unauthenticated"):
		return Classification{
			Kind:    KindInvalidCredentials,
			Message: "AI provider credentials are invalid. Check the GEMINI_API_KEY configuration.",
		}

	case status == 429 || containsAny(msg,
		"429", "quota", "rate limit", "too many requests", "resource_exhausted", "resource exhausted"):
		return Classification{
			Kind:    KindRateLimited,
			Message: "AI provider rate limit exceeded. Please try again later.",
		}

	case containsAny(msg, "safety", "blocked", "prohibited_content"):
		return Classification{
			Kind:    KindContentRejected,
			Message: "Content was blocked by the provider's safety filters. Try rephrasing or removing sensitive content.",
		}

	case status >= 500 || errors.Is(err, context.DeadlineExceeded) || containsAny(msg,
		"internal error", "deadline exceeded", "service unavailable"):
		return Classification{
			Kind:    KindProviderFault,
			Message: "AI provider is temporarily unavailable. Please try again later.",
		}
	}

	return Classification{
		Kind:    KindUnknown,
		Message: fmt.Sprintf("AI summarization failed: %s", err.Error()),
	}
}

func containsAny(s string, indicators ...string) bool {
	for _, indicator := range indicators {
		if strings.Contains(s, indicator) {
			return true
		}
	}
	return false
}
