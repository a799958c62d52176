package summarize

import (
	"strings"
	"testing"
)

func TestChunkText_ShortTextSingleChunk(t *testing.T) {
	chunks := ChunkText("hello\nworld", 1000)
	if len(chunks) != 1 {
		t.Fatalf("expected 1 chunk, got %d", len(chunks))
	}
	if chunks[0] != "hello\nworld" {
		t.Errorf("chunk = %q", chunks[0])
	}
}

func TestChunkText_SplitsAtParagraphs(t *testing.T) {
	para := strings.Repeat("word ", 30) // ~150 chars
	text := para + "\n\n" + para + "\n\n" + para
	chunks := ChunkText(text, 200)
	if len(chunks) < 2 {
		t.Fatalf("expected multiple chunks, got %d", len(chunks))
	}
	for i, c := range chunks {
		if strings.TrimSpace(c) == "" {
			t.Errorf("chunk %d is empty", i)
		}
	}
}

func TestChunkText_ForcesSplitWithoutParagraphBreaks(t *testing.T) {
	line := strings.Repeat("x", 80)
	text := strings.TrimSuffix(strings.Repeat(line+"\n", 60), "\n") // ~4900 chars, no blank lines
	chunks := ChunkText(text, 1000)
	if len(chunks) < 4 {
		t.Fatalf("expected forced splits, got %d chunks", len(chunks))
	}
	for _, c := range chunks {
		if len(c) > 1000+len(line)+1 {
			t.Errorf("chunk exceeds forced split bound: %d chars", len(c))
		}
	}
}

func TestChunkText_EmptyInput(t *testing.T) {
	if chunks := ChunkText("", 100); len(chunks) != 0 {
		t.Errorf("expected no chunks, got %v", chunks)
	}
}
