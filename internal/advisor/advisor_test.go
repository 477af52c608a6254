package advisor

import (
	"context"
	"errors"
	"sync"

	"go.uber.org/zap"

	"github.com/hyperjump/lapwise/internal/models"
	"github.com/hyperjump/lapwise/internal/mock"
)

type fakeSearch struct {
	key  bool
	hits []models.SearchHit
	err  error
}

func (f *fakeSearch) HasKey() bool { return f.key }

func (f *fakeSearch) ProductHits(ctx context.Context, query string, limit int) ([]models.SearchHit, error) {
	return f.hits, f.err
}

type fakeFetcher map[string]string

func (f fakeFetcher) Fetch(ctx context.Context, url string) (string, error) {
	page, ok := f[url]
	if !ok {
		return "", errors.New("not found")
	}
	return page, nil
}

type fakeDiscoverer []string

func (f fakeDiscoverer) ProductURLs(ctx context.Context, brand string, limit int) []string {
	return f
}

type fakeLLM struct {
	reply string
	err   error

	mu       sync.Mutex
	messages []models.Message
}

func (f *fakeLLM) Name() string { return "fake" }

func (f *fakeLLM) Generate(ctx context.Context, messages []models.Message) (string, error) {
	f.mu.Lock()
	f.messages = messages
	f.mu.Unlock()
	return f.reply, f.err
}

func newTestAdvisor(opts Options) *Advisor {
	opts.Generator = mock.NewGenerator(mock.WithSeed(1))
	opts.Logger = zap.NewNop()
	return New(opts)
}
