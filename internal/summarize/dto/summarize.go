package dto

type SummarizeRequest struct {
	TranscriptText string `json:"transcriptText" binding:"max=200000"`
	CustomPrompt   string `json:"customPrompt" binding:"max=2000"`
}

type SummarizeResponse struct {
	Summary string `json:"summary"`
}
