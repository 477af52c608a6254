package llm

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/hyperjump/lapwise/internal/models"
)

const DefaultGeminiModel = "gemini-1.5-flash"

// Gemini calls Google's Gemini API. The client is created on first use.
type Gemini struct {
	settings Settings

	mu     sync.Mutex
	client *genai.Client
}

// NewGemini creates a Gemini provider. Zero settings take the defaults.
func NewGemini(s Settings) *Gemini {
	if s.Model == "" {
		s.Model = DefaultGeminiModel
	}
	if s.Temperature == 0 {
		s.Temperature = defaultTemperature
	}
	if s.MaxTokens == 0 {
		s.MaxTokens = defaultMaxTokens
	}
	return &Gemini{settings: s}
}

// Name implements Provider.
func (g *Gemini) Name() string { return ProviderGemini.String() }

func (g *Gemini) getClient(ctx context.Context) (*genai.Client, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.client != nil {
		return g.client, nil
	}
	opts := []option.ClientOption{option.WithAPIKey(g.settings.APIKey)}
	if g.settings.BaseURL != "" {
		opts = append(opts, option.WithEndpoint(g.settings.BaseURL))
	}
	client, err := genai.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	g.client = client
	return client, nil
}

// Generate implements Provider. Earlier turns become chat history and the
// last user message is sent.
func (g *Gemini) Generate(ctx context.Context, messages []models.Message) (string, error) {
	if g.settings.APIKey == "" {
		return "", ErrMissingAPIKey
	}
	system, history, last := splitConversation(messages)
	if last == "" {
		return "", fmt.Errorf("gemini: no user message")
	}

	client, err := g.getClient(ctx)
	if err != nil {
		return "", err
	}
	model := client.GenerativeModel(g.settings.Model)
	model.SetTemperature(g.settings.Temperature)
	model.SetMaxOutputTokens(int32(g.settings.MaxTokens))
	model.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(system)},
	}

	cs := model.StartChat()
	cs.History = history
	resp, err := cs.SendMessage(ctx, genai.Text(last))
	if err != nil {
		return "", fmt.Errorf("gemini generation failed: %w", err)
	}
	text := responseText(resp)
	if text == "" {
		return "", fmt.Errorf("gemini returned no content")
	}
	return text, nil
}

// Close releases the underlying client.
func (g *Gemini) Close() error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.client == nil {
		return nil
	}
	err := g.client.Close()
	g.client = nil
	return err
}

// splitConversation folds system messages into the system instruction and
// separates the final user message from the history.
func splitConversation(messages []models.Message) (string, []*genai.Content, string) {
	system := []string{SystemPrompt}
	lastUser := -1
	for i, m := range messages {
		if m.Role == models.RoleUser {
			lastUser = i
		}
	}

	var history []*genai.Content
	for i, m := range messages {
		switch {
		case m.Role == models.RoleSystem:
			system = append(system, m.Content)
		case i == lastUser:
		case m.Role == models.RoleAssistant:
			history = append(history, &genai.Content{Role: "model", Parts: []genai.Part{genai.Text(m.Content)}})
		default:
			history = append(history, &genai.Content{Role: "user", Parts: []genai.Part{genai.Text(m.Content)}})
		}
	}
	last := ""
	if lastUser >= 0 {
		last = messages[lastUser].Content
	}
	return strings.Join(system, "\n\n"), history, last
}

func responseText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}
	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if t, ok := part.(genai.Text); ok {
			b.WriteString(string(t))
		}
	}
	return strings.TrimSpace(b.String())
}
