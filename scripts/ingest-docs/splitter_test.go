package main

import (
	"strings"
	"testing"
)

func TestSplitText(t *testing.T) {
	t.Run("Short Text Stays Whole", func(t *testing.T) {
		chunks := splitText("one small page", 100, 20)
		if len(chunks) != 1 || chunks[0] != "one small page" {
			t.Errorf("unexpected chunks: %v", chunks)
		}
	})

	t.Run("Long Text Splits On Paragraphs", func(t *testing.T) {
		text := strings.Repeat("alpha beta gamma.\n\n", 20)
		chunks := splitText(text, 100, 20)
		if len(chunks) < 2 {
			t.Fatalf("expected multiple chunks, got %d", len(chunks))
		}
		for i, chunk := range chunks {
			if len([]rune(chunk)) > 100 {
				t.Errorf("chunk %d exceeds size: %d runes", i, len([]rune(chunk)))
			}
		}
	})

	t.Run("Overlap Repeats Trailing Context", func(t *testing.T) {
		text := strings.Repeat("word ", 100)
		chunks := splitText(text, 60, 20)
		if len(chunks) < 2 {
			t.Fatalf("expected multiple chunks, got %d", len(chunks))
		}
		// Every later chunk starts with text already seen in the previous one.
		for i := 1; i < len(chunks); i++ {
			head := strings.Fields(chunks[i])[0]
			if !strings.Contains(chunks[i-1], head) {
				t.Errorf("chunk %d does not overlap its predecessor", i)
			}
		}
	})

	t.Run("Empty Input", func(t *testing.T) {
		if chunks := splitText("   ", 100, 20); chunks != nil {
			t.Errorf("expected no chunks, got %v", chunks)
		}
	})

	t.Run("Unbreakable Text Hard Cuts", func(t *testing.T) {
		text := strings.Repeat("x", 250)
		chunks := splitText(text, 100, 0)
		if len(chunks) != 3 {
			t.Errorf("expected 3 chunks, got %d", len(chunks))
		}
	})
}
