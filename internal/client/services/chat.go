package services

import (
	"context"

	"github.com/gradient-edu/gradient-cli/internal/client/api"
	"github.com/gradient-edu/gradient-cli/internal/client/models"
)

// ChatService wraps the AI-assistant endpoints. The guest variant works
// without a session and is the one endpoint exempt from bearer auth.
type ChatService struct {
	client *api.Client
}

func NewChatService(c *api.Client) *ChatService {
	return &ChatService{client: c}
}

// Send asks the assistant a question as the logged-in user.
func (s *ChatService) Send(ctx context.Context, prompt string) (*models.ChatResponse, error) {
	return s.send(ctx, "/chat", prompt)
}

// GuestSend asks the assistant a question anonymously, pre-login.
func (s *ChatService) GuestSend(ctx context.Context, prompt string) (*models.ChatResponse, error) {
	return s.send(ctx, "/chat/guest", prompt)
}

func (s *ChatService) send(ctx context.Context, path, prompt string) (*models.ChatResponse, error) {
	req := models.ChatRequest{Prompt: prompt}
	if err := models.Validate(&req); err != nil {
		return nil, err
	}

	var resp models.ChatResponse
	if err := s.client.PostJSON(ctx, path, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
