package llm

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/hyperjump/lapwise/internal/models"
)

type fakeProvider struct {
	name  string
	reply string
	err   error
	calls int
}

func (f *fakeProvider) Name() string { return f.name }

func (f *fakeProvider) Generate(ctx context.Context, messages []models.Message) (string, error) {
	f.calls++
	return f.reply, f.err
}

var hello = []models.Message{{Role: models.RoleUser, Content: "hello"}}

func TestChain_Generate(t *testing.T) {
	tests := []struct {
		name      string
		providers []*fakeProvider
		want      string
		wantErr   error
	}{
		{
			name:      "first succeeds",
			providers: []*fakeProvider{{name: "a", reply: "from a"}, {name: "b", reply: "from b"}},
			want:      "from a",
		},
		{
			name:      "missing key skips to next",
			providers: []*fakeProvider{{name: "a", err: ErrMissingAPIKey}, {name: "b", reply: "from b"}},
			want:      "from b",
		},
		{
			name:      "failure falls through",
			providers: []*fakeProvider{{name: "a", err: errors.New("boom")}, {name: "b", reply: "from b"}},
			want:      "from b",
		},
		{
			name:      "all missing keys",
			providers: []*fakeProvider{{name: "a", err: ErrMissingAPIKey}, {name: "b", err: ErrMissingAPIKey}},
			wantErr:   ErrMissingAPIKey,
		},
		{
			name:      "all failed",
			providers: []*fakeProvider{{name: "a", err: ErrMissingAPIKey}, {name: "b", err: errors.New("boom")}},
			wantErr:   ErrNoProvider,
		},
		{
			name:    "no providers",
			wantErr: ErrNoProvider,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			providers := make([]Provider, len(tt.providers))
			for i, p := range tt.providers {
				providers[i] = p
			}
			got, err := NewChain(zap.NewNop(), providers...).Generate(context.Background(), hello)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("err = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Generate: %v", err)
			}
			if got != tt.want {
				t.Errorf("reply = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestChain_StopsAtFirstSuccess(t *testing.T) {
	a := &fakeProvider{name: "a", reply: "ok"}
	b := &fakeProvider{name: "b", reply: "unused"}
	if _, err := NewChain(nil, a, b).Generate(context.Background(), hello); err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if b.calls != 0 {
		t.Errorf("second provider called %d times", b.calls)
	}
}

func TestBuild(t *testing.T) {
	chain, err := Build(zap.NewNop(), []ProviderKind{ProviderGemini, ProviderOpenAI}, nil)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if chain.Len() != 2 {
		t.Fatalf("Len = %d, want 2", chain.Len())
	}
	if _, err := chain.Generate(context.Background(), hello); !errors.Is(err, ErrMissingAPIKey) {
		t.Errorf("err = %v, want ErrMissingAPIKey", err)
	}
}

func TestParseProviderKind(t *testing.T) {
	tests := []struct {
		in      string
		want    ProviderKind
		wantErr bool
	}{
		{"openai", ProviderOpenAI, false},
		{" Gemini ", ProviderGemini, false},
		{"google", ProviderGemini, false},
		{"claude", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseProviderKind(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil && got != tt.want {
				t.Errorf("kind = %v, want %v", got, tt.want)
			}
		})
	}
}

type closingProvider struct {
	fakeProvider
	closed bool
	err    error
}

func (c *closingProvider) Close() error {
	c.closed = true
	return c.err
}

func TestChain_Close(t *testing.T) {
	ok := &closingProvider{fakeProvider: fakeProvider{name: "ok"}}
	failing := &closingProvider{fakeProvider: fakeProvider{name: "failing"}, err: errors.New("boom")}
	chain := NewChain(zap.NewNop(), ok, &fakeProvider{name: "plain"}, failing)

	err := chain.Close()
	if !ok.closed || !failing.closed {
		t.Error("expected every closer to be closed")
	}
	if err == nil || !errors.Is(err, failing.err) {
		t.Errorf("Close() = %v, want error wrapping boom", err)
	}
}
