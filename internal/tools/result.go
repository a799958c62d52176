package tools

// Result is the unified return type from tool execution.
type Result struct {
	ForLLM  string // observation text folded into memory
	ForUser string // extra text surfaced on the console (e.g. stderr)
	IsError bool   // marks a recorded, non-fatal failure
	Err     error  // underlying error, when one exists
}

func NewResult(forLLM string) *Result {
	return &Result{ForLLM: forLLM}
}

func ErrorResult(message string) *Result {
	return &Result{ForLLM: message, IsError: true}
}

func (r *Result) WithError(err error) *Result {
	r.Err = err
	return r
}
