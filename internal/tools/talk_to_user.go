package tools

import (
	"context"
	"fmt"
)

// TalkTool shows the agent's message to the operator and blocks for a
// free-text reply, which becomes the observation.
type TalkTool struct {
	prompter Prompter
}

func NewTalkTool(prompter Prompter) *TalkTool {
	return &TalkTool{prompter: prompter}
}

func (t *TalkTool) Name() string { return "talk_to_user" }

func (t *TalkTool) Execute(ctx context.Context, arg string) *Result {
	t.prompter.Agent(arg)
	reply, err := t.prompter.Ask("Your response")
	if err != nil {
		return ErrorResult(err.Error()).WithError(err)
	}
	return NewResult(fmt.Sprintf("The user responded with: %s.", reply))
}
