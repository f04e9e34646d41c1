package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"meetsum-backend/pkg/ai"
)

const defaultBaseURL = "https://generativelanguage.googleapis.com"

// Service calls the Gemini generateContent REST API.
type Service struct {
	apiKey          string
	model           string
	temperature     float64
	maxOutputTokens int
	baseURL         string
	httpClient      *http.Client
}

type Option func(*Service)

// WithBaseURL overrides the API endpoint, used in tests.
func WithBaseURL(url string) Option {
	return func(s *Service) { s.baseURL = url }
}

// WithHTTPClient overrides the HTTP client.
func WithHTTPClient(c *http.Client) Option {
	return func(s *Service) { s.httpClient = c }
}

func NewService(apiKey, model string, temperature float64, maxOutputTokens int, opts ...Option) *Service {
	s := &Service{
		apiKey:          apiKey,
		model:           model,
		temperature:     temperature,
		maxOutputTokens: maxOutputTokens,
		baseURL:         defaultBaseURL,
		httpClient:      &http.Client{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

type generateRequest struct {
	Contents         []content        `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generationConfig struct {
	Temperature     float64 `json:"temperature"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []part `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// Summarize sends the composed prompt to Gemini and returns the generated
// text. The provider is invoked exactly once; an empty candidate list yields
// an empty string, not an error.
func (s *Service) Summarize(ctx context.Context, prompt string) (string, error) {
	if s.apiKey == "" {
		return "", ai.ErrNotConfigured
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s", s.baseURL, s.model, s.apiKey)

	payload := generateRequest{
		Contents: []content{
			{Parts: []part{{Text: prompt}}},
		},
		GenerationConfig: generationConfig{
			Temperature:     s.temperature,
			MaxOutputTokens: s.maxOutputTokens,
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(body))
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("call gemini: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", &ai.ProviderCallError{
			StatusCode: resp.StatusCode,
			Message:    string(respBody),
		}
	}

	var result generateResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}

	var text string
	if len(result.Candidates) > 0 {
		for _, p := range result.Candidates[0].Content.Parts {
			text += p.Text
		}
	}
	return text, nil
}
