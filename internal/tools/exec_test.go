package tools

import (
	"context"
	"os/exec"
	"strings"
	"testing"
)

func TestShellTool_CapturesStdout(t *testing.T) {
	tool := NewShellTool(t.TempDir())
	result := tool.Execute(context.Background(), "echo hello")
	if result.IsError {
		t.Fatalf("unexpected error: %s", result.ForLLM)
	}
	if !strings.Contains(result.ForLLM, "STDOUT:\nhello") {
		t.Errorf("observation = %q", result.ForLLM)
	}
	if result.ForUser != "" {
		t.Errorf("no stderr expected, got %q", result.ForUser)
	}
}

func TestShellTool_NonexistentCommand(t *testing.T) {
	tool := NewShellTool(t.TempDir())
	result := tool.Execute(context.Background(), "nonexistent_command_xyz")
	if result.IsError {
		t.Fatalf("non-zero exit must not be an error: %s", result.ForLLM)
	}
	if !strings.Contains(result.ForLLM, "STDERR:") {
		t.Errorf("observation = %q", result.ForLLM)
	}
	if result.ForUser == "" {
		t.Error("stderr should surface through ForUser")
	}
	if !strings.Contains(result.ForUser, "nonexistent_command_xyz") {
		t.Errorf("stderr = %q", result.ForUser)
	}
}

func TestShellTool_RunsInWorkDir(t *testing.T) {
	dir := t.TempDir()
	tool := NewShellTool(dir)
	result := tool.Execute(context.Background(), "pwd")
	if !strings.Contains(result.ForLLM, dir) {
		t.Errorf("expected %q in %q", dir, result.ForLLM)
	}
}

func TestPythonTool_CapturesStdout(t *testing.T) {
	if _, err := exec.LookPath("python3"); err != nil {
		t.Skip("python3 not available")
	}
	tool := NewPythonTool(t.TempDir())
	result := tool.Execute(context.Background(), "print('Hello, world!')")
	if result.IsError {
		t.Fatalf("unexpected error: %s", result.ForLLM)
	}
	if strings.TrimSpace(result.ForLLM) != "Hello, world!" {
		t.Errorf("stdout = %q", result.ForLLM)
	}
}

func TestPythonTool_ErrorPropagates(t *testing.T) {
	if _, err := exec.LookPath("python3"); err != nil {
		t.Skip("python3 not available")
	}
	tool := NewPythonTool(t.TempDir())
	result := tool.Execute(context.Background(), "raise ValueError('boom')")
	if !result.IsError {
		t.Fatal("expected error result")
	}
	if !strings.Contains(result.ForLLM, "ValueError") {
		t.Errorf("error text = %q", result.ForLLM)
	}
}
