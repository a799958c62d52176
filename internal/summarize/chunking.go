package summarize

import "strings"

// ChunkText splits text into chunks at paragraph boundaries, forcing
// a split once a chunk reaches maxChunkLen characters.
func ChunkText(text string, maxChunkLen int) []string {
	if maxChunkLen <= 0 {
		maxChunkLen = 1000
	}

	lines := strings.Split(text, "\n")
	var chunks []string
	var current strings.Builder

	flush := func() {
		content := strings.TrimSpace(current.String())
		if content != "" {
			chunks = append(chunks, content)
		}
		current.Reset()
	}

	for _, line := range lines {
		// Paragraph boundary: empty line on a chunk that is already
		// half full.
		if strings.TrimSpace(line) == "" && current.Len() >= maxChunkLen/2 {
			flush()
			continue
		}

		if current.Len() > 0 {
			current.WriteString("\n")
		}
		current.WriteString(line)

		if current.Len() >= maxChunkLen {
			flush()
		}
	}
	flush()

	return chunks
}
