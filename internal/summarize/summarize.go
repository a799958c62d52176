// Package summarize compresses arbitrary text to a bounded token size
// using the summarizer model.
package summarize

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/nextlevelbuilder/miniagent/internal/providers"
	"github.com/nextlevelbuilder/miniagent/internal/tokens"
)

// Passes of chunked summarization before giving up and returning the
// joined chunk summaries as-is.
const maxReducePasses = 3

// Summarizer collapses long text into bounded summaries. Stateless
// between calls.
type Summarizer struct {
	provider  providers.Provider
	model     string
	counter   tokens.Counter
	chunkSize int // per-chunk character budget for multi-pass runs
}

func New(provider providers.Provider, model string, counter tokens.Counter, chunkSize int) *Summarizer {
	if chunkSize <= 0 {
		chunkSize = 4000
	}
	return &Summarizer{
		provider:  provider,
		model:     model,
		counter:   counter,
		chunkSize: chunkSize,
	}
}

// Summarize produces a summary of at most maxTokens honoring the
// instruction hint. Empty input yields an empty summary without a
// model call.
func (s *Summarizer) Summarize(ctx context.Context, text string, maxTokens int, hint string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", nil
	}

	prompt := fmt.Sprintf(
		"Summarize the following text in at most %d tokens. %s\n\nTEXT:\n%s",
		maxTokens, hint, text,
	)
	resp, err := s.provider.Chat(ctx, providers.ChatRequest{
		Model:     s.model,
		Messages:  []providers.Message{{Role: "user", Content: prompt}},
		MaxTokens: maxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("summarize: %w", err)
	}
	return strings.TrimSpace(resp.Content), nil
}

// ChunkedSummarize handles content too large for a single pass: the
// text is split at paragraph boundaries, each chunk is summarized,
// and the joined result is reduced again until it fits.
func (s *Summarizer) ChunkedSummarize(ctx context.Context, content string, maxTokens int, hint string) (string, error) {
	text := content
	for pass := 0; pass < maxReducePasses; pass++ {
		if len(ChunkText(text, s.chunkSize)) <= 1 {
			return s.Summarize(ctx, text, maxTokens, hint)
		}

		chunks := ChunkText(text, s.chunkSize)
		slog.Debug("chunked summarize", "pass", pass, "chunks", len(chunks), "chars", len(text))

		var parts []string
		for _, chunk := range chunks {
			part, err := s.Summarize(ctx, chunk, maxTokens, hint)
			if err != nil {
				return "", err
			}
			if part != "" {
				parts = append(parts, part)
			}
		}
		text = strings.Join(parts, "\n")
	}
	return text, nil
}
