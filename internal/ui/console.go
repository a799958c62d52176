// Package ui renders agent output on the terminal and collects
// operator input.
package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

var (
	agentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6")) // cyan
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1")) // red
	faintStyle = lipgloss.NewStyle().Faint(true)
)

// Console writes styled output and runs blocking prompts.
type Console struct {
	out io.Writer
}

func New() *Console {
	return &Console{out: os.Stdout}
}

// NewWithWriter is used by tests to capture output.
func NewWithWriter(out io.Writer) *Console {
	return &Console{out: out}
}

// Agent prints an agent-authored message.
func (c *Console) Agent(msg string) {
	fmt.Fprintln(c.out, agentStyle.Render("MiniAgent: "+msg))
}

// Error prints a failure in a distinguishing style.
func (c *Console) Error(msg string) {
	fmt.Fprintln(c.out, errorStyle.Render(msg))
}

// Observation prints the result of an executed action.
func (c *Console) Observation(msg string) {
	fmt.Fprintln(c.out, "OBSERVATION: "+msg)
}

// Info prints plain informational text.
func (c *Console) Info(msg string) {
	fmt.Fprintln(c.out, msg)
}

// Ask blocks for a free-text reply. Empty input is allowed.
func (c *Console) Ask(title string) (string, error) {
	var reply string
	form := huh.NewForm(huh.NewGroup(
		huh.NewInput().Title(title).Value(&reply),
	))
	if err := form.Run(); err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	return reply, nil
}

// Confirm shows the confirmation prompt for the universal gate.
// An empty reply accepts the action; anything else is steering
// feedback.
func (c *Console) Confirm(title string) (string, error) {
	return c.Ask(title)
}

// Spin starts the progress spinner and returns its stop function.
func (c *Console) Spin() func() {
	s := newSpinner(c.out)
	s.start()
	return s.stop
}
