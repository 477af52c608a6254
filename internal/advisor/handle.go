package advisor

import (
	"context"
	"fmt"

	"github.com/hyperjump/lapwise/internal/models"
)

// Assist is the outcome of Handle: a comparison or a chat reply.
type Assist struct {
	Kind       InputKind   `json:"kind"`
	Comparison *Comparison `json:"comparison,omitempty"`
	Chat       *ChatReply  `json:"chat,omitempty"`
}

// Handle classifies a user message and dispatches it. Comparisons are
// summarized without requiring an LLM.
func (a *Advisor) Handle(ctx context.Context, req *models.AssistRequest) (*Assist, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	kind := Classify(req.Message)
	out := &Assist{Kind: kind}
	var err error
	switch kind {
	case InputURLs:
		out.Comparison, err = a.Compare(ctx, &models.CompareRequest{
			Queries:   URLs(req.Message),
			Persona:   req.Persona,
			Summarize: true,
		})
	case InputQueries:
		out.Comparison, err = a.Compare(ctx, &models.CompareRequest{
			Queries:   SplitQueries(req.Message),
			Persona:   req.Persona,
			Summarize: true,
		})
	case InputBrandIntent:
		brand, _ := BrandIntent(req.Message)
		out.Comparison, err = a.Discover(ctx, &models.DiscoverRequest{
			Brand:   brand,
			Persona: req.Persona,
		})
	default:
		messages := append(append([]models.Message(nil), req.History...),
			models.Message{Role: models.RoleUser, Content: req.Message})
		out.Chat, err = a.Chat(ctx, &models.ChatRequest{Messages: messages, Persona: req.Persona})
	}
	if err != nil {
		return nil, err
	}
	return out, nil
}
