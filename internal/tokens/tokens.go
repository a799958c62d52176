// Package tokens provides token counting for context budgeting.
package tokens

import (
	"log/slog"

	"github.com/pkoukk/tiktoken-go"
)

const charsPerTokenEstimate = 4

// Counter reports the token length of a text.
type Counter interface {
	Count(text string) int
}

// NewCounter returns a tiktoken-backed counter for the given encoding,
// falling back to a character-based estimate if the encoding cannot be
// loaded (for example when the vocabulary is unavailable offline).
func NewCounter(encoding string) Counter {
	enc, err := tiktoken.GetEncoding(encoding)
	if err != nil {
		slog.Warn("tiktoken encoding unavailable, using estimate", "encoding", encoding, "error", err)
		return EstimateCounter{}
	}
	return &tiktokenCounter{enc: enc}
}

type tiktokenCounter struct {
	enc *tiktoken.Tiktoken
}

func (c *tiktokenCounter) Count(text string) int {
	return len(c.enc.Encode(text, nil, nil))
}

// EstimateCounter approximates tokens as chars/4.
type EstimateCounter struct{}

func (EstimateCounter) Count(text string) int {
	if text == "" {
		return 0
	}
	return (len(text) + charsPerTokenEstimate - 1) / charsPerTokenEstimate
}
