package usecase

import "context"

// SummarizeUsecase turns a validated transcript into a structured summary.
type SummarizeUsecase interface {
	Summarize(ctx context.Context, transcriptText, customPrompt string) (string, error)
}
