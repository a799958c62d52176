package tools

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// PythonTool runs the argument as Python source in a subprocess and
// returns the captured standard output. A failing interpreter run
// propagates as an execution error.
type PythonTool struct {
	interpreter string
	workDir     string
}

func NewPythonTool(workDir string) *PythonTool {
	return &PythonTool{interpreter: "python3", workDir: workDir}
}

func (t *PythonTool) Name() string { return "execute_python" }

func (t *PythonTool) Execute(ctx context.Context, arg string) *Result {
	cmd := exec.CommandContext(ctx, t.interpreter, "-c", arg)
	cmd.Dir = t.workDir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			msg = err.Error()
		}
		return ErrorResult(msg).WithError(fmt.Errorf("execute_python: %w", err))
	}
	return NewResult(stdout.String())
}
