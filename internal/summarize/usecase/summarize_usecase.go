package usecase

import (
	"context"
	"errors"
	"strings"

	"meetsum-backend/pkg/ai"
)

// ErrEmptyTranscript marks a transcript that passes schema validation but is
// blank after trimming. Distinct from a schema failure.
var ErrEmptyTranscript = errors.New("transcript text is required")

type summarizeUsecase struct {
	provider ai.Summarizer
}

func NewSummarizeUsecase(provider ai.Summarizer) SummarizeUsecase {
	return &summarizeUsecase{provider: provider}
}

func (u *summarizeUsecase) Summarize(ctx context.Context, transcriptText, customPrompt string) (string, error) {
	if strings.TrimSpace(transcriptText) == "" {
		return "", ErrEmptyTranscript
	}

	if strings.TrimSpace(customPrompt) == "" {
		customPrompt = DefaultInstruction
	}

	prompt := composePrompt(customPrompt, transcriptText)

	text, err := u.provider.Summarize(ctx, prompt)
	if err != nil {
		return "", err
	}

	summary := strings.TrimSpace(text)
	if summary == "" {
		return FallbackSummary, nil
	}
	return summary, nil
}
