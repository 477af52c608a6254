// Package llm wraps the chat-completion providers behind a single fallback chain.
package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/hyperjump/lapwise/internal/models"
)

var (
	// ErrMissingAPIKey is returned by a provider that has no API key configured.
	ErrMissingAPIKey = errors.New("llm API key is required")
	// ErrNoProvider is returned when no provider produced a response.
	ErrNoProvider = errors.New("no llm provider available")
)

// Provider generates an assistant reply for a conversation.
type Provider interface {
	Name() string
	Generate(ctx context.Context, messages []models.Message) (string, error)
}

// ProviderKind selects a provider implementation.
type ProviderKind int

const (
	ProviderOpenAI ProviderKind = iota
	ProviderGemini
)

// String returns the config name of the provider kind.
func (k ProviderKind) String() string {
	switch k {
	case ProviderOpenAI:
		return "openai"
	case ProviderGemini:
		return "gemini"
	default:
		return "unknown"
	}
}

// ParseProviderKind parses "openai" or "gemini", case-insensitively.
func ParseProviderKind(s string) (ProviderKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "openai":
		return ProviderOpenAI, nil
	case "gemini", "google":
		return ProviderGemini, nil
	default:
		return 0, fmt.Errorf("unknown llm provider: %q", s)
	}
}

// Settings configures one provider.
type Settings struct {
	APIKey      string
	Model       string
	BaseURL     string
	Temperature float32
	MaxTokens   int
}

// New builds the provider for kind.
func New(kind ProviderKind, s Settings) (Provider, error) {
	switch kind {
	case ProviderOpenAI:
		return NewOpenAI(s), nil
	case ProviderGemini:
		return NewGemini(s), nil
	default:
		return nil, fmt.Errorf("unknown llm provider kind: %d", kind)
	}
}
