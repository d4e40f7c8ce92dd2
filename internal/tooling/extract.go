package tooling

import (
	"regexp"
	"strings"
)

var (
	codeBlockRe = regexp.MustCompile("(?s)```(?:python)?\\s*(.*?)\\s*```")
	executeRe   = regexp.MustCompile(`(?i)execute:\s*(.+?)(?:\n|$)`)
	runRe       = regexp.MustCompile(`(?i)run:\s*(.+?)(?:\n|$)`)
	bareCallRe  = regexp.MustCompile(`print\(.+\)`)
	packageRe   = regexp.MustCompile(`(?i)package\s+(\w+)`)
)

// ExtractCode pulls a runnable snippet out of a chat message.
// Fenced blocks win, then "execute:" and "run:" prefixes, then a bare
// print(...) call. Empty string when nothing code-like is found.
func ExtractCode(message string) string {
	if m := codeBlockRe.FindStringSubmatch(message); m != nil {
		return strings.TrimSpace(m[1])
	}
	if m := executeRe.FindStringSubmatch(message); m != nil {
		return strings.TrimSpace(m[1])
	}
	if m := runRe.FindStringSubmatch(message); m != nil {
		return strings.TrimSpace(m[1])
	}
	if m := bareCallRe.FindString(message); m != "" {
		return m
	}
	return ""
}

// ExtractPackageName finds the package a message asks about. Known
// library names take priority over the generic "package X" form.
func ExtractPackageName(message string, supported []string) string {
	messageLower := strings.ToLower(message)

	for _, lib := range supported {
		if strings.Contains(messageLower, strings.ToLower(lib)) {
			return lib
		}
	}

	if m := packageRe.FindStringSubmatch(message); m != nil {
		return strings.ToLower(m[1])
	}
	return ""
}

// ExtractDocParams splits a documentation request into a library name
// and a residual search query. The library is empty when the message
// names no supported library.
func ExtractDocParams(message string, supported []string) (library, query string) {
	messageLower := strings.ToLower(message)

	for _, lib := range supported {
		if strings.Contains(messageLower, strings.ToLower(lib)) {
			library = lib
			break
		}
	}

	query = message
	if library != "" {
		query = strings.TrimSpace(strings.ReplaceAll(query, library, ""))
	}
	for _, prefix := range []string{"find", "search", "show", "get", "documentation", "docs"} {
		query = strings.TrimSpace(strings.ReplaceAll(query, prefix, ""))
	}

	if query == "" {
		query = "documentation"
	}
	return library, query
}
