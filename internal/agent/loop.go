package agent

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/nextlevelbuilder/miniagent/internal/config"
	"github.com/nextlevelbuilder/miniagent/internal/memory"
	"github.com/nextlevelbuilder/miniagent/internal/providers"
	"github.com/nextlevelbuilder/miniagent/internal/tools"
)

const (
	// Upper bound on history entries pulled per iteration; the token
	// budget usually bites first.
	historyLimit = 32

	// Display abbreviation length for action arguments.
	abbrevLen = 64
)

// Corrective observation recorded on parse failures.
const malformedObservation = "This command was formatted incorrectly. " +
	"Use the correct syntax using the <r> and <c> tags."

// Loop is the orchestrator: it owns the iteration state machine and
// the only two pieces of cross-iteration state, the running summary
// and the history store.
type Loop struct {
	objective  string
	cfg        *config.Config
	provider   providers.Provider
	model      string
	summarizer Summarizer
	history    memory.Store
	registry   *tools.Registry
	console    Console

	summary string
}

func New(
	objective string,
	cfg *config.Config,
	provider providers.Provider,
	summarizer Summarizer,
	history memory.Store,
	registry *tools.Registry,
	console Console,
) *Loop {
	return &Loop{
		objective:  objective,
		cfg:        cfg,
		provider:   provider,
		model:      cfg.Model,
		summarizer: summarizer,
		history:    history,
		registry:   registry,
		console:    console,
	}
}

// Model returns the model currently in use (the primary, or the
// fallback after a downgrade).
func (l *Loop) Model() string { return l.model }

// Run iterates until the done command or a fatal backend error. The
// error has already been printed when Run returns it; every terminal
// path maps to exit code 0 at the process level.
func (l *Loop) Run(ctx context.Context) error {
	for {
		done, err := l.step(ctx)
		if err != nil {
			return err
		}
		if done {
			return nil
		}
	}
}

// step executes one iteration: BUILD_CONTEXT → QUERY_MODEL → PARSE →
// {CONFIRM?} → EXECUTE → UPDATE_MEMORY. It returns done=true on the
// done command, and a non-nil error only for fatal backend failures.
func (l *Loop) step(ctx context.Context) (bool, error) {
	contextBlock, err := l.buildContext()
	if err != nil {
		return false, err
	}
	if l.cfg.Debug {
		slog.Debug("context", "text", contextBlock)
	}

	prompt := BuildPrompt(l.objective, contextBlock)

	stop := l.console.Spin()
	resp, err := l.provider.Chat(ctx, providers.ChatRequest{
		Model:    l.model,
		Messages: []providers.Message{{Role: "user", Content: prompt}},
	})
	stop()

	if err != nil {
		if reqErr, ok := providers.AsRequestError(err); ok && reqErr.UnsupportedModel() && l.model != l.cfg.FallbackModel {
			// Retry the same iteration on the fallback model; no
			// memory side effect.
			l.console.Error(fmt.Sprintf("Prompting the %s model failed. Falling back to %s", l.model, l.cfg.FallbackModel))
			l.model = l.cfg.FallbackModel
			return false, nil
		}
		l.console.Error("Error accessing the model API: " + err.Error())
		return false, err
	}

	if l.cfg.Debug {
		slog.Debug("raw response", "text", resp.Content)
	}

	action, perr := ParseAction(resp.Content)
	if perr != nil {
		l.console.Error("Unable to parse response. Retrying...")
		l.updateMemory(ctx, FirstLine(resp.Content), malformedObservation)
		return false, nil
	}

	// done short-circuits before execution and memory update.
	if action.Command == CommandDone {
		l.console.Agent("The agent concluded: " + action.Reasoning)
		return true, nil
	}

	rendered := renderAction(action, false)
	abbreviated := renderAction(action, true)

	// talk_to_user blocks for the reply inside the handler; the reply
	// is the observation.
	if action.Command == CommandTalkToUser {
		result := l.registry.Execute(ctx, string(action.Command), action.Argument)
		l.updateMemory(ctx, abbreviated, result.ForLLM)
		return false, nil
	}

	l.console.Agent(abbreviated)

	if l.cfg.PromptUser {
		feedback, err := l.console.Confirm("Press enter to perform this action or abort by typing feedback")
		if err != nil {
			return false, err
		}
		if feedback != "" {
			// Steering feedback replaces execution entirely.
			observation := "The user responded with: " + feedback + "\nTake this comment into consideration."
			l.updateMemory(ctx, abbreviated, observation)
			return false, nil
		}
	}

	result := l.registry.Execute(ctx, string(action.Command), action.Argument)

	if result.ForUser != "" {
		l.console.Error("Execution error: " + result.ForUser)
	}

	if result.IsError {
		if strings.Contains(result.ForLLM, "context length") {
			l.console.Error(result.ForLLM + "\nTry decreasing MAX_CONTEXT_SIZE, MAX_MEMORY_ITEM_SIZE and SUMMARIZER_CHUNK_SIZE.")
		}
		l.console.Error("Execution error: " + result.ForLLM)
		l.updateMemory(ctx, rendered, "The command returned an error:\n"+result.ForLLM+"\n")
		return false, nil
	}

	l.console.Observation(result.ForLLM)
	l.updateMemory(ctx, rendered, result.ForLLM)
	return false, nil
}

// buildContext composes the running summary with the most recent
// history entries that fit the context budget.
func (l *Loop) buildContext() (string, error) {
	entries, err := l.history.Remember(historyLimit, l.cfg.MaxContextSize)
	if err != nil {
		return "", fmt.Errorf("retrieve history: %w", err)
	}
	return fmt.Sprintf("HISTORY\n%s\nPREV ACTIONS:\n%s", l.summary, strings.Join(entries, "\n")), nil
}

// updateMemory replaces the running summary and appends the full
// action/observation pair to history. It runs after every iteration
// outcome except done, and never fails the iteration: a summarizer
// error keeps the previous summary, a store error is only logged.
func (l *Loop) updateMemory(ctx context.Context, action, observation string) {
	entry := l.summary + "\n" + memory.RenderRecord(action, observation)
	newSummary, err := l.summarizer.Summarize(ctx, entry, l.cfg.MaxMemoryItemSize, historyHint)
	if err != nil {
		slog.Warn("summary update failed, keeping previous summary", "error", err)
	} else {
		l.summary = newSummary
	}

	if err := l.history.Append(action, observation); err != nil {
		slog.Warn("history append failed", "error", err)
	}
}

// renderAction produces the textual action form. The abbreviated
// variant truncates the argument and escapes newlines for display and
// per-entry size predictability; the full variant is what execution
// and history use.
func renderAction(a *Action, abbreviated bool) string {
	arg := a.Argument
	if abbreviated {
		if len(arg) > abbrevLen {
			arg = arg[:abbrevLen] + "..."
		}
		arg = strings.ReplaceAll(arg, "\n", "\\n")
	}
	return fmt.Sprintf("%s\nCmd: %s, Arg: \"%s\"", a.Reasoning, a.Command, arg)
}
