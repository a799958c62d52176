package agent

import "testing"

func TestParseAction_Valid(t *testing.T) {
	raw := "<r>write file</r><c>execute_python</c>\nwith open('hello_world.txt','w') as f:\n    f.write('Hello, world!')"
	action, perr := ParseAction(raw)
	if perr != nil {
		t.Fatalf("unexpected parse error: %v", perr)
	}
	if action.Reasoning != "write file" {
		t.Errorf("reasoning = %q", action.Reasoning)
	}
	if action.Command != CommandExecutePython {
		t.Errorf("command = %q", action.Command)
	}
	want := "with open('hello_world.txt','w') as f:\n    f.write('Hello, world!')"
	if action.Argument != want {
		t.Errorf("argument = %q, want %q", action.Argument, want)
	}
}

func TestParseAction_Done(t *testing.T) {
	action, perr := ParseAction("<r>The objective is complete.</r><c>done</c>")
	if perr != nil {
		t.Fatalf("unexpected parse error: %v", perr)
	}
	if action.Command != CommandDone {
		t.Errorf("command = %q", action.Command)
	}
	if action.Argument != "" {
		t.Errorf("argument = %q, want empty", action.Argument)
	}
}

func TestParseAction_StripsFences(t *testing.T) {
	raw := "<r>run</r><c>execute_python</c>\n```\nprint('hi')\n```"
	action, perr := ParseAction(raw)
	if perr != nil {
		t.Fatalf("unexpected parse error: %v", perr)
	}
	if action.Argument != "\nprint('hi')\n" {
		t.Errorf("argument = %q", action.Argument)
	}
}

func TestParseAction_DropsTrailingDoneLine(t *testing.T) {
	raw := "<r>search</r><c>web_search</c>\ncookie recipe\ndone"
	action, perr := ParseAction(raw)
	if perr != nil {
		t.Fatalf("unexpected parse error: %v", perr)
	}
	if action.Argument != "cookie recipe" {
		t.Errorf("argument = %q", action.Argument)
	}
}

func TestParseAction_KeepsDoneInMiddleLines(t *testing.T) {
	raw := "<r>run</r><c>execute_shell</c>\necho done something\necho more"
	action, perr := ParseAction(raw)
	if perr != nil {
		t.Fatalf("unexpected parse error: %v", perr)
	}
	if action.Argument != "echo done something\necho more" {
		t.Errorf("argument = %q", action.Argument)
	}
}

func TestParseAction_Malformed(t *testing.T) {
	cases := []struct {
		name string
		raw  string
	}{
		{"no tags", "I think I should search the web."},
		{"empty", ""},
		{"reasoning only", "<r>thinking</r>"},
		{"command only", "<c>web_search</c>"},
		{"tags out of order", "<c>web_search</c><r>thinking</r>"},
		{"unknown command", "<r>try</r><c>launch_rocket</c>"},
		{"tags on second line", "some text\n<r>thinking</r><c>done</c>"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			action, perr := ParseAction(tc.raw)
			if perr == nil {
				t.Fatalf("expected parse error, got action %+v", action)
			}
		})
	}
}

func TestFirstLine(t *testing.T) {
	if got := FirstLine("a\nb\nc"); got != "a" {
		t.Errorf("FirstLine = %q", got)
	}
	if got := FirstLine("single"); got != "single" {
		t.Errorf("FirstLine = %q", got)
	}
}
