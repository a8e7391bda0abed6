package usecase

import (
	"context"
	"errors"
	"strings"

	"legal-research-assistant/pkg/llmprovider"
)

// completionService adapts the provider manager to the single-call
// completion interface the classifier and optimizer consume.
type completionService struct {
	manager *llmprovider.Manager
}

// NewCompletionService wraps an llmprovider.Manager as an
// intent.CompletionService.
func NewCompletionService(manager *llmprovider.Manager) *completionService {
	return &completionService{manager: manager}
}

func (s *completionService) Complete(ctx context.Context, prompt, formatHint string) (string, error) {
	req := &llmprovider.Request{
		Messages: []llmprovider.Message{
			{Role: "user", Parts: []llmprovider.Part{{Text: prompt}}},
		},
		Temperature: 0.1,
	}

	resp, err := s.manager.GenerateContent(ctx, req)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	for _, part := range resp.Content.Parts {
		sb.WriteString(part.Text)
	}
	text := strings.TrimSpace(sb.String())
	if text == "" {
		return "", errors.New("provider returned empty completion")
	}

	return text, nil
}
