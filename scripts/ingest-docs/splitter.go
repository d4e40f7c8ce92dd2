package main

import "strings"

// separators are tried in order, paragraph breaks first so chunks keep
// whole sections together when they fit.
var separators = []string{"\n\n", "\n", " "}

// splitText cuts text into chunks of at most chunkSize runes. Adjacent
// chunks share roughly overlap runes of trailing context so no fact is
// stranded on a boundary.
func splitText(text string, chunkSize, overlap int) []string {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}
	if chunkSize <= 0 {
		return []string{text}
	}
	if overlap < 0 || overlap >= chunkSize {
		overlap = 0
	}

	runes := []rune(text)
	if len(runes) <= chunkSize {
		return []string{text}
	}

	var chunks []string
	start := 0
	for start < len(runes) {
		end := start + chunkSize
		if end >= len(runes) {
			end = len(runes)
		} else {
			end = breakPoint(runes, start, end)
		}

		chunk := strings.TrimSpace(string(runes[start:end]))
		if chunk != "" {
			chunks = append(chunks, chunk)
		}

		if end == len(runes) {
			break
		}
		// The window must always advance even when the overlap eats the
		// whole short chunk.
		next := end - overlap
		if next <= start {
			next = end
		}
		start = next
	}

	return chunks
}

// breakPoint finds the latest separator inside (start, limit] so the cut
// lands on a natural boundary. Falls back to a hard cut at limit.
func breakPoint(runes []rune, start, limit int) int {
	window := string(runes[start:limit])
	for _, sep := range separators {
		if idx := strings.LastIndex(window, sep); idx > 0 {
			return start + len([]rune(window[:idx+len(sep)]))
		}
	}
	return limit
}
