package agent

import (
	"regexp"
	"strings"
)

var tagRe = regexp.MustCompile(`<(r|c)>(.*?)</(r|c)>`)

// ParseError is the uniform failure for malformed model output:
// missing tags, wrong tag order, or an unknown command.
type ParseError struct {
	Line   string // raw first line, recorded in memory as the action
	Reason string
}

func (e *ParseError) Error() string {
	return "malformed response: " + e.Reason
}

// ParseAction extracts exactly one action from a raw model response.
// The <r>/<c> tag pair must sit on the first line in that order; the
// argument is every following line. A trailing line containing the
// word "done" is dropped (models occasionally append a spurious
// completion marker), and code-fence markers are stripped.
func ParseAction(raw string) (*Action, *ParseError) {
	lines := strings.Split(raw, "\n")
	first := lines[0]

	matches := tagRe.FindAllStringSubmatch(first, -1)
	if len(matches) < 2 {
		return nil, &ParseError{Line: first, Reason: "expected <r> and <c> tags on the first line"}
	}
	if matches[0][1] != "r" || matches[1][1] != "c" {
		return nil, &ParseError{Line: first, Reason: "tags out of order, expected <r> before <c>"}
	}

	reasoning := matches[0][2]
	command := matches[1][2]
	if !KnownCommand(command) {
		return nil, &ParseError{Line: first, Reason: "unknown command " + command}
	}

	body := lines[1:]
	if len(body) > 0 && strings.Contains(body[len(body)-1], "done") {
		body = body[:len(body)-1]
	}

	arg := strings.Join(body, "\n")
	arg = strings.ReplaceAll(arg, "```", "")

	return &Action{
		Reasoning: reasoning,
		Command:   Command(command),
		Argument:  arg,
	}, nil
}

// FirstLine returns the first line of a raw response, used to record
// unparseable output in memory.
func FirstLine(raw string) string {
	if idx := strings.IndexByte(raw, '\n'); idx != -1 {
		return raw[:idx]
	}
	return raw
}
