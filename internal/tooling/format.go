package tooling

import (
	"fmt"
	"strings"
)

// FormatResults renders tool results as context for the LLM prompt.
func FormatResults(results *Results) string {
	if results.Empty() {
		return ""
	}

	var sections []string

	if res := results.Execution; res != nil {
		if res.Success {
			sections = append(sections, fmt.Sprintf("Code Execution Result:\n%s", res.Output))
		} else {
			sections = append(sections, fmt.Sprintf("Code Execution Error: %s", res.Error))
		}
	}

	if res := results.Package; res != nil {
		if res.Success {
			pkg := res.Package
			sections = append(sections, fmt.Sprintf(
				"Package Information:\n- Name: %s\n- Version: %s\n- Summary: %s",
				pkg.Name, pkg.Version, pkg.Summary))
		} else {
			sections = append(sections, fmt.Sprintf("Package Info Error: %s", res.Error))
		}
	}

	if res := results.Docs; res != nil {
		if res.Success {
			lines := make([]string, 0, len(res.Links))
			for _, link := range res.Links {
				lines = append(lines, fmt.Sprintf("- %s: %s", link.Title, link.URL))
			}
			sections = append(sections, "Documentation Links:\n"+strings.Join(lines, "\n"))
		} else {
			sections = append(sections, fmt.Sprintf("Documentation Search Error: %s", res.Error))
		}
	}

	return strings.Join(sections, "\n\n")
}
