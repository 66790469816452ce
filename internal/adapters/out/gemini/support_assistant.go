package gemini

import (
	"context"
	"strings"

	"levaai/internal/core/ports"
)

var _ ports.SupportAssistant = (*SupportAssistant)(nil)

const supportInstruction = "You are a helpful assistant for LevaAí, a P2P delivery platform in Brazil. " +
	"Answer questions about how the app works, safety, and delivery tips."

type SupportAssistant struct {
	client *Client
}

func NewSupportAssistant(client *Client) *SupportAssistant {
	return &SupportAssistant{client: client}
}

func (a *SupportAssistant) Ask(ctx context.Context, question string) (string, error) {
	text, err := a.client.generate(ctx, generateRequest{
		SystemInstruction: &content{Parts: []part{{Text: supportInstruction}}},
		Contents:          userPrompt(question),
	})
	if err != nil {
		return "", err
	}

	answer := strings.TrimSpace(text)
	if answer == "" {
		return "", ErrEmptyResponse
	}
	return answer, nil
}
