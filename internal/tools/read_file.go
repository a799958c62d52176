package tools

import (
	"context"
	"fmt"
	"os"
)

// ReadFileTool reads a file and returns a bounded summary of its
// content. Missing files and permission errors propagate as
// execution errors.
type ReadFileTool struct {
	summarizer Summarizer
	maxTokens  int
	hint       string
}

func NewReadFileTool(summarizer Summarizer, maxTokens int, hint string) *ReadFileTool {
	return &ReadFileTool{summarizer: summarizer, maxTokens: maxTokens, hint: hint}
}

func (t *ReadFileTool) Name() string { return "read_file" }

func (t *ReadFileTool) Execute(ctx context.Context, arg string) *Result {
	data, err := os.ReadFile(arg)
	if err != nil {
		return ErrorResult(err.Error()).WithError(fmt.Errorf("read_file: %w", err))
	}

	summary, err := t.summarizer.ChunkedSummarize(ctx, string(data), t.maxTokens, t.hint)
	if err != nil {
		return ErrorResult(err.Error()).WithError(err)
	}
	return NewResult(summary)
}
