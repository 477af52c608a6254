package llm

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/hyperjump/lapwise/internal/models"
)

func TestGemini_MissingKey(t *testing.T) {
	g := NewGemini(Settings{})
	if _, err := g.Generate(context.Background(), hello); !errors.Is(err, ErrMissingAPIKey) {
		t.Errorf("err = %v, want ErrMissingAPIKey", err)
	}
	if err := g.Close(); err != nil {
		t.Errorf("Close: %v", err)
	}
}

func TestSplitConversation(t *testing.T) {
	system, history, last := splitConversation([]models.Message{
		{Role: models.RoleSystem, Content: "be brief"},
		{Role: models.RoleUser, Content: "hi"},
		{Role: models.RoleAssistant, Content: "hello"},
		{Role: models.RoleUser, Content: "gaming laptop?"},
	})
	if last != "gaming laptop?" {
		t.Errorf("last = %q", last)
	}
	if !strings.HasPrefix(system, SystemPrompt) || !strings.HasSuffix(system, "be brief") {
		t.Errorf("system = %q", system)
	}
	if len(history) != 2 {
		t.Fatalf("history len = %d, want 2", len(history))
	}
	if history[0].Role != "user" || history[1].Role != "model" {
		t.Errorf("roles = %q, %q", history[0].Role, history[1].Role)
	}
}

func TestComparisonPrompt(t *testing.T) {
	prompt := ComparisonPrompt([]*models.LaptopSpec{
		{Name: "Dell XPS 13", Brand: "Dell", Currency: "$", Price: 1299, CPU: "Intel Core i7", RAM: "16GB"},
		nil,
	}, "Student")
	for _, want := range []string{"for a student user", "1. Dell XPS 13 (Dell) - $1299", "CPU: Intel Core i7"} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q:\n%s", want, prompt)
		}
	}
}
