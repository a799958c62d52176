// Package memory provides the append-only history store backing the
// agent's context window. Records persist under the working directory
// for auditing; retrieval is scoped to the current run.
package memory

// Store is the history interface consumed by the agent loop.
type Store interface {
	// Append stores the full, unabbreviated action/observation pair.
	Append(action, observation string) error

	// Remember returns the rendered text of the most recent entries,
	// ordered oldest to newest, capped at limit entries and at a
	// cumulative token budget. The most recent entries win when the
	// budget is tight.
	Remember(limit, maxTokens int) ([]string, error)

	Close() error
}

// RenderRecord produces the textual form fed back into prompts.
func RenderRecord(action, observation string) string {
	return "ACTION\n" + action + "\nRESULT:\n" + observation + "\n"
}
