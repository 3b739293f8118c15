package models

// ChatRequest is the prompt sent to the AI assistant.
type ChatRequest struct {
	Prompt string `json:"prompt" validate:"required"`
}

// ChatResponse is the assistant's reply.
type ChatResponse struct {
	Response string `json:"response"`
}
