package agent

import (
	"fmt"
	"runtime"
)

const promptTemplate = `You are an autonomous agent running on %s.
OBJECTIVE: %s (e.g. "Find a recipe for chocolate chip cookies")

You are working towards the objective on a step-by-step basis. Previous steps:

%s

Your task is to respond with the next action.
Supported commands are: execute_python, execute_shell, read_file, web_search, web_scrape, talk_to_user, or done
The mandatory action format is:

<r>[YOUR_REASONING]</r><c>[COMMAND]</c>
[ARGUMENT]

ARGUMENT may have multiple lines if the argument is Python code.
Use only non-interactive shell commands.
web_scrape argument must be a single URL.
Python code run with execute_python must end with an output "print" statement and should be well-commented.
Send the "done" command if the objective was achieved in a previous command or if no further action is required.
RESPOND WITH PRECISELY ONE THOUGHT/COMMAND/ARG COMBINATION.
DO NOT CHAIN MULTIPLE COMMANDS.
DO NOT INCLUDE EXTRA TEXT BEFORE OR AFTER THE COMMAND.
DO NOT REPEAT PREVIOUSLY EXECUTED COMMANDS.

Example actions:

<r>Search for websites relevant to chocolate chip cookies recipe.</r><c>web_search</c>
chocolate chip cookies recipe

<r>Scrape information about chocolate chip cookies from the given URL.</r><c>web_scrape</c>
https://example.com/chocolate-chip-cookies

<r>I need to ask the user for guidance.</r><c>talk_to_user</c>
What is the URL of a website with chocolate chip cookies recipes?

<r>Write 'Hello, world!' to file</r><c>execute_python</c>
# Opening file in write mode and writing 'Hello, world!' into it
with open('hello_world.txt', 'w') as f:
    f.write('Hello, world!')

<r>The objective is complete.</r><c>done</c>
`

// BuildPrompt formats the fixed instruction template with the
// objective and the composed context block.
func BuildPrompt(objective, context string) string {
	return fmt.Sprintf(promptTemplate, runtime.GOOS+"/"+runtime.GOARCH, objective, context)
}

// Summarization hints.
const (
	// SummaryHint is the fixed retention directive for content
	// summarization.
	SummaryHint = "Do your best to retain information necessary for the agent to perform its task."

	// historyHint guides the running-summary update each iteration.
	historyHint = "Generate a new summary given the previous summary " +
		"of the agent's history and its last action. Be concise, use abbreviations."
)

// ContentHint biases read_file and web_scrape summaries toward the
// objective when the content relates to it.
func ContentHint(objective string) string {
	return SummaryHint + fmt.Sprintf(
		" If the text contains information related to the topic: %q then include it. If not, write a standard summary.",
		objective,
	)
}
