// Package providers implements chat-completion clients for
// OpenAI-compatible APIs.
package providers

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// Message is a single chat message.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatRequest is a provider-agnostic completion request.
type ChatRequest struct {
	Model       string
	Messages    []Message
	MaxTokens   int
	Temperature float64
}

// ChatResponse carries the assistant's reply.
type ChatResponse struct {
	Content string
	Model   string
}

// Provider is the model client consumed by the agent loop.
type Provider interface {
	Name() string
	Chat(ctx context.Context, req ChatRequest) (*ChatResponse, error)
}

// RequestError is returned when the backend rejects a request. The
// loop inspects it to decide between model fallback and a fatal exit.
type RequestError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("request rejected (%d %s): %s", e.StatusCode, e.Code, e.Message)
}

// UnsupportedModel reports whether the rejection names a model the
// account cannot use, which the loop recovers from by downgrading.
func (e *RequestError) UnsupportedModel() bool {
	if e.Code == "model_not_found" {
		return true
	}
	msg := strings.ToLower(e.Message)
	return strings.Contains(msg, "model") &&
		(strings.Contains(msg, "does not exist") ||
			strings.Contains(msg, "not supported") ||
			strings.Contains(msg, "no access") ||
			strings.Contains(msg, "overloaded"))
}

// AsRequestError unwraps err into a *RequestError if possible.
func AsRequestError(err error) (*RequestError, bool) {
	var re *RequestError
	if errors.As(err, &re) {
		return re, true
	}
	return nil, false
}
