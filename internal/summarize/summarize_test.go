package summarize

import (
	"context"
	"strings"
	"testing"

	"github.com/nextlevelbuilder/miniagent/internal/providers"
	"github.com/nextlevelbuilder/miniagent/internal/tokens"
)

type fakeProvider struct {
	calls []providers.ChatRequest
	reply string
}

func (p *fakeProvider) Name() string { return "fake" }

func (p *fakeProvider) Chat(ctx context.Context, req providers.ChatRequest) (*providers.ChatResponse, error) {
	p.calls = append(p.calls, req)
	return &providers.ChatResponse{Content: p.reply}, nil
}

func TestSummarize_EmptyInputSkipsModel(t *testing.T) {
	provider := &fakeProvider{reply: "should not be used"}
	s := New(provider, "model", tokens.EstimateCounter{}, 1000)

	got, err := s.Summarize(context.Background(), "   \n  ", 100, "hint")
	if err != nil {
		t.Fatalf("Summarize: %v", err)
	}
	if got != "" {
		t.Errorf("summary = %q, want empty", got)
	}
	if len(provider.calls) != 0 {
		t.Errorf("expected no model calls, got %d", len(provider.calls))
	}
}

func TestSummarize_EmbedsHintAndBudget(t *testing.T) {
	provider := &fakeProvider{reply: "short summary"}
	s := New(provider, "model", tokens.EstimateCounter{}, 1000)

	got, err := s.Summarize(context.Background(), "some long text", 64, "retain task facts")
	if err != nil {
		t.Fatalf("Summarize: %v", err)
	}
	if got != "short summary" {
		t.Errorf("summary = %q", got)
	}
	if len(provider.calls) != 1 {
		t.Fatalf("expected 1 call, got %d", len(provider.calls))
	}
	prompt := provider.calls[0].Messages[0].Content
	if !strings.Contains(prompt, "retain task facts") || !strings.Contains(prompt, "64") {
		t.Errorf("prompt = %q", prompt)
	}
	if provider.calls[0].MaxTokens != 64 {
		t.Errorf("MaxTokens = %d", provider.calls[0].MaxTokens)
	}
}

func TestChunkedSummarize_SmallContentSinglePass(t *testing.T) {
	provider := &fakeProvider{reply: "sum"}
	s := New(provider, "model", tokens.EstimateCounter{}, 1000)

	got, err := s.ChunkedSummarize(context.Background(), "short content", 100, "hint")
	if err != nil {
		t.Fatalf("ChunkedSummarize: %v", err)
	}
	if got != "sum" {
		t.Errorf("summary = %q", got)
	}
	if len(provider.calls) != 1 {
		t.Errorf("expected 1 call, got %d", len(provider.calls))
	}
}

func TestChunkedSummarize_LargeContentMultiplePasses(t *testing.T) {
	provider := &fakeProvider{reply: "sum"}
	s := New(provider, "model", tokens.EstimateCounter{}, 200)

	big := strings.TrimSuffix(strings.Repeat(strings.Repeat("w", 50)+"\n", 40), "\n")
	got, err := s.ChunkedSummarize(context.Background(), big, 100, "hint")
	if err != nil {
		t.Fatalf("ChunkedSummarize: %v", err)
	}
	if got == "" {
		t.Error("expected non-empty summary")
	}
	if len(provider.calls) < 2 {
		t.Errorf("expected chunked calls, got %d", len(provider.calls))
	}
}
