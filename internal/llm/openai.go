package llm

import (
	"context"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"github.com/hyperjump/lapwise/internal/models"
)

const (
	DefaultOpenAIModel = "gpt-4o-mini"
	defaultTemperature = 0.7
	defaultMaxTokens   = 1000
)

// OpenAI calls the chat completions API.
type OpenAI struct {
	settings Settings
	client   *openai.Client
}

// NewOpenAI creates an OpenAI provider. Zero settings take the defaults.
func NewOpenAI(s Settings) *OpenAI {
	if s.Model == "" {
		s.Model = DefaultOpenAIModel
	}
	if s.Temperature == 0 {
		s.Temperature = defaultTemperature
	}
	if s.MaxTokens == 0 {
		s.MaxTokens = defaultMaxTokens
	}
	p := &OpenAI{settings: s}
	if s.APIKey != "" {
		cfg := openai.DefaultConfig(s.APIKey)
		if s.BaseURL != "" {
			cfg.BaseURL = s.BaseURL
		}
		p.client = openai.NewClientWithConfig(cfg)
	}
	return p
}

// Name implements Provider.
func (p *OpenAI) Name() string { return ProviderOpenAI.String() }

// Generate implements Provider. The system prompt is prepended to messages.
func (p *OpenAI) Generate(ctx context.Context, messages []models.Message) (string, error) {
	if p.client == nil {
		return "", ErrMissingAPIKey
	}
	req := openai.ChatCompletionRequest{
		Model:       p.settings.Model,
		Temperature: p.settings.Temperature,
		MaxTokens:   p.settings.MaxTokens,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: SystemPrompt},
		},
	}
	for _, m := range messages {
		req.Messages = append(req.Messages, openai.ChatCompletionMessage{
			Role:    openAIRole(m.Role),
			Content: m.Content,
		})
	}

	resp, err := p.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("openai completion failed: %w", err)
	}
	if len(resp.Choices) == 0 || strings.TrimSpace(resp.Choices[0].Message.Content) == "" {
		return "", fmt.Errorf("openai returned no content")
	}
	return resp.Choices[0].Message.Content, nil
}

func openAIRole(r models.Role) string {
	switch r {
	case models.RoleSystem:
		return openai.ChatMessageRoleSystem
	case models.RoleAssistant:
		return openai.ChatMessageRoleAssistant
	default:
		return openai.ChatMessageRoleUser
	}
}
