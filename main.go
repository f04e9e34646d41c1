package main

import (
	"log"

	api "meetsum-backend/cmd/api"
	emailUsecase "meetsum-backend/internal/email/usecase"
	summarizeUsecase "meetsum-backend/internal/summarize/usecase"
	"meetsum-backend/pkg/ai"
	"meetsum-backend/pkg/config"
	"meetsum-backend/pkg/gemini"
	"meetsum-backend/pkg/gmail"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize AI provider
	var aiService ai.Summarizer
	switch ai.ProviderType(cfg.AIProvider) {
	case ai.ProviderGemini:
		aiService = gemini.NewService(cfg.GeminiApiKey, cfg.GeminiModel, cfg.GeminiTemperature, cfg.GeminiMaxOutputTokens)
	default:
		log.Printf("[WARN] Unknown AI provider %q, defaulting to gemini", cfg.AIProvider)
		aiService = gemini.NewService(cfg.GeminiApiKey, cfg.GeminiModel, cfg.GeminiTemperature, cfg.GeminiMaxOutputTokens)
	}
	if cfg.GeminiApiKey == "" {
		log.Printf("[WARN] GEMINI_API_KEY not configured, summarization requests will fail")
	}

	// Initialize email transport
	transport := gmail.NewService(
		cfg.GoogleClientID,
		cfg.GoogleClientSecret,
		cfg.GmailAccessToken,
		cfg.GmailRefreshToken,
		cfg.SenderName,
		cfg.SenderEmail,
	)

	// Initialize use cases (dependency injection)
	summarizeUsecaseInstance := summarizeUsecase.NewSummarizeUsecase(aiService)
	emailUsecaseInstance := emailUsecase.NewEmailUsecase(transport)

	// Initialize HTTP handler
	handler := api.NewHandler(summarizeUsecaseInstance, emailUsecaseInstance, cfg)

	// Start server
	log.Printf("Server starting on port %s", cfg.Port)
	if err := handler.Start(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
