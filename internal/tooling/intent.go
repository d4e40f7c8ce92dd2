package tooling

import "strings"

// Keyword lists that trigger each tool. Matching is done on the
// lowercased message, substring semantics.
var (
	executeKeywords = []string{
		"execute:", "run:", "code:", "print(", "import ", "calculate",
		"compute", "test", "try", "example", "show me", "demonstrate",
	}

	packageKeywords = []string{
		"version", "latest", "package", "pypi", "install", "update",
		"what's new", "release", "download", "dependencies",
	}

	docsKeywords = []string{
		"documentation", "docs", "official", "guide", "tutorial",
		"reference", "manual", "help", "read more", "link",
	}
)

// DetectIntent returns the tools the message calls for, in a fixed
// order: code execution, package lookup, documentation search.
func DetectIntent(message string) []string {
	messageLower := strings.ToLower(message)

	var tools []string
	if containsAny(messageLower, executeKeywords) {
		tools = append(tools, ToolExecuteCode)
	}
	if containsAny(messageLower, packageKeywords) {
		tools = append(tools, ToolPackageInfo)
	}
	if containsAny(messageLower, docsKeywords) {
		tools = append(tools, ToolSearchDocs)
	}
	return tools
}

// DisabledToolsWarning returns a notice when the message asks for a tool
// while tool calling is switched off. Empty string when no tool intent
// is present.
func DisabledToolsWarning(message string) string {
	messageLower := strings.ToLower(message)

	if containsAny(messageLower, []string{"execute:", "run:", "code:", "print("}) {
		return "**Tool calling is disabled.** I cannot execute code right now. Enable tool calling to run Python code snippets."
	}
	if containsAny(messageLower, []string{"latest version", "pypi", "what version"}) {
		return "**Tool calling is disabled.** I cannot fetch live package info from PyPI. Enable tool calling to get real-time package data."
	}
	if containsAny(messageLower, []string{"official docs", "documentation link", "find docs"}) {
		return "**Tool calling is disabled.** I cannot search official documentation. Enable tool calling to get documentation links."
	}
	return ""
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}
