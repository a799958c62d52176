package tools

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
)

// ShellTool runs the argument as a shell command line. Non-zero exit
// is not an error; the combined stdout/stderr rendering is the
// observation either way, and non-empty stderr is surfaced to the
// console through Result.ForUser.
type ShellTool struct {
	shell   string
	workDir string
}

func NewShellTool(workDir string) *ShellTool {
	return &ShellTool{shell: "/bin/sh", workDir: workDir}
}

func (t *ShellTool) Name() string { return "execute_shell" }

func (t *ShellTool) Execute(ctx context.Context, arg string) *Result {
	cmd := exec.CommandContext(ctx, t.shell, "-c", arg)
	cmd.Dir = t.workDir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			// The command never ran (shell missing, context canceled).
			return ErrorResult(err.Error()).WithError(fmt.Errorf("execute_shell: %w", err))
		}
	}

	result := NewResult(fmt.Sprintf("STDOUT:\n%s\nSTDERR:\n%s", stdout.String(), stderr.String()))
	result.ForUser = stderr.String()
	return result
}
