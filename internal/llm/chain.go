package llm

import (
	"context"
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/hyperjump/lapwise/internal/models"
)

// Chain tries providers in order and returns the first successful reply.
type Chain struct {
	providers []Provider
	logger    *zap.Logger
}

// NewChain creates a chain over providers, in priority order.
func NewChain(logger *zap.Logger, providers ...Provider) *Chain {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Chain{providers: providers, logger: logger}
}

// Name implements Provider.
func (c *Chain) Name() string { return "chain" }

// Len returns the number of providers.
func (c *Chain) Len() int {
	if c == nil {
		return 0
	}
	return len(c.providers)
}

// Generate implements Provider. Providers without a key are skipped. If every
// provider lacks a key the result is ErrMissingAPIKey; if any was tried and
// all failed, it is ErrNoProvider wrapping the last failure.
func (c *Chain) Generate(ctx context.Context, messages []models.Message) (string, error) {
	if c.Len() == 0 {
		return "", ErrNoProvider
	}
	var lastErr error
	for _, p := range c.providers {
		reply, err := p.Generate(ctx, messages)
		if err == nil {
			return reply, nil
		}
		if errors.Is(err, ErrMissingAPIKey) {
			c.logger.Debug("llm provider skipped, no API key", zap.String("provider", p.Name()))
			continue
		}
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		c.logger.Warn("llm provider failed", zap.String("provider", p.Name()), zap.Error(err))
		lastErr = err
	}
	if lastErr == nil {
		return "", ErrMissingAPIKey
	}
	return "", fmt.Errorf("%w: %v", ErrNoProvider, lastErr)
}

// Close closes every provider that holds a client.
func (c *Chain) Close() error {
	var errs []error
	for _, p := range c.providers {
		if closer, ok := p.(io.Closer); ok {
			if err := closer.Close(); err != nil {
				errs = append(errs, fmt.Errorf("close %s: %w", p.Name(), err))
			}
		}
	}
	return errors.Join(errs...)
}

// Build constructs a chain from provider kinds and per-kind settings. Kinds
// without settings get defaults and no key.
func Build(logger *zap.Logger, order []ProviderKind, settings map[ProviderKind]Settings) (*Chain, error) {
	providers := make([]Provider, 0, len(order))
	for _, kind := range order {
		p, err := New(kind, settings[kind])
		if err != nil {
			return nil, err
		}
		providers = append(providers, p)
	}
	return NewChain(logger, providers...), nil
}
