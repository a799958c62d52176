// Package tools implements the command executor: a registry of the
// agent's seven capabilities and their handlers.
package tools

import "context"

// Tool is the interface all command handlers implement. The argument
// is the raw (possibly multi-line) text parsed from the model
// response.
type Tool interface {
	Name() string
	Execute(ctx context.Context, arg string) *Result
}

// Summarizer is the bounded-summary collaborator used by the
// read_file and web_scrape handlers.
type Summarizer interface {
	ChunkedSummarize(ctx context.Context, content string, maxTokens int, hint string) (string, error)
}

// Prompter is the console surface used by handlers that talk to the
// human operator.
type Prompter interface {
	Agent(msg string)
	Ask(title string) (string, error)
}
