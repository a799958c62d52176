// Package agent implements the autonomous control loop: context
// assembly, model querying, response parsing, command dispatch, and
// memory updates.
package agent

import "context"

// Command is one of the seven supported capabilities.
type Command string

const (
	CommandExecutePython Command = "execute_python"
	CommandExecuteShell  Command = "execute_shell"
	CommandReadFile      Command = "read_file"
	CommandWebSearch     Command = "web_search"
	CommandWebScrape     Command = "web_scrape"
	CommandTalkToUser    Command = "talk_to_user"
	CommandDone          Command = "done"
)

var knownCommands = map[Command]bool{
	CommandExecutePython: true,
	CommandExecuteShell:  true,
	CommandReadFile:      true,
	CommandWebSearch:     true,
	CommandWebScrape:     true,
	CommandTalkToUser:    true,
	CommandDone:          true,
}

// KnownCommand reports whether s names a supported command.
func KnownCommand(s string) bool {
	return knownCommands[Command(s)]
}

// Action is one parsed (reasoning, command, argument) triple. It is
// consumed immediately by execution; only its rendered textual form
// is persisted.
type Action struct {
	Reasoning string
	Command   Command
	Argument  string
}

// Console is the terminal surface the loop writes to and prompts on.
// *ui.Console implements it; tests substitute fakes.
type Console interface {
	Agent(msg string)
	Error(msg string)
	Observation(msg string)
	Info(msg string)
	Ask(title string) (string, error)
	Confirm(title string) (string, error)
	Spin() func()
}

// Summarizer bounds the running summary after each iteration.
type Summarizer interface {
	Summarize(ctx context.Context, text string, maxTokens int, hint string) (string, error)
}
