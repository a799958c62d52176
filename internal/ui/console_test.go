package ui

import (
	"bytes"
	"strings"
	"testing"
)

func TestConsole_Output(t *testing.T) {
	var buf bytes.Buffer
	c := NewWithWriter(&buf)

	c.Agent("searching the web")
	c.Observation("found 5 results")
	c.Info("working directory is /tmp")
	c.Error("something failed")

	out := buf.String()
	if !strings.Contains(out, "MiniAgent: searching the web") {
		t.Errorf("missing agent line: %q", out)
	}
	if !strings.Contains(out, "OBSERVATION: found 5 results") {
		t.Errorf("missing observation line: %q", out)
	}
	if !strings.Contains(out, "working directory is /tmp") {
		t.Errorf("missing info line: %q", out)
	}
	if !strings.Contains(out, "something failed") {
		t.Errorf("missing error line: %q", out)
	}
}
