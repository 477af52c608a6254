package advisor

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/hyperjump/lapwise/internal/models"
	"github.com/hyperjump/lapwise/internal/ranking"
)

// Reply sources.
const (
	ReplyAI       = "ai"
	ReplyFallback = "fallback"
)

// ChatReply is the assistant's answer.
type ChatReply struct {
	Reply  string `json:"reply"`
	Source string `json:"source"`
	// Topic names the fallback topic when Source is ReplyFallback.
	Topic string `json:"topic,omitempty"`
}

// Chat answers the conversation with the LLM, or with a canned reply for the
// topic of the last user message when no provider answers.
func (a *Advisor) Chat(ctx context.Context, req *models.ChatRequest) (*ChatReply, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	persona, hasPersona, err := parsePersona(req.Persona)
	if err != nil {
		return nil, err
	}

	if a.llm != nil {
		messages := req.Messages
		if hasPersona {
			note := models.Message{
				Role:    models.RoleSystem,
				Content: fmt.Sprintf("The user is shopping for a %s laptop.", strings.ToLower(persona.String())),
			}
			messages = append([]models.Message{note}, messages...)
		}
		reply, err := a.llm.Generate(ctx, messages)
		if err == nil {
			return &ChatReply{Reply: reply, Source: ReplyAI}, nil
		}
		a.logger.Warn("chat provider unavailable, using fallback reply", zap.Error(err))
	}

	var p *ranking.Persona
	if hasPersona {
		p = &persona
	}
	topic := DetectTopic(models.LastUserMessage(req.Messages))
	return &ChatReply{Reply: FallbackReply(topic, p), Source: ReplyFallback, Topic: topic.String()}, nil
}
