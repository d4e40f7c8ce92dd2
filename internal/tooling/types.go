package tooling

import "python-docs-copilot/pkg/pypi"

// Tool names as they appear in results and logs.
const (
	ToolExecuteCode = "execute_code"
	ToolPackageInfo = "get_package_info"
	ToolSearchDocs  = "search_documentation"
)

// ExecutionResult is the outcome of running a code snippet.
type ExecutionResult struct {
	Success bool
	Output  string
	Error   string
}

// PackageResult is the outcome of a registry lookup.
type PackageResult struct {
	Success  bool
	Package  *pypi.Package
	NotFound bool
	Error    string
}

// DocLink is a single documentation pointer.
type DocLink struct {
	Title       string
	URL         string
	Description string
}

// DocSearchResult is the outcome of a documentation search.
type DocSearchResult struct {
	Success bool
	Links   []DocLink
	Error   string
}

// Results aggregates the outputs of every tool invoked for a message.
// A nil field means the tool was not invoked.
type Results struct {
	Execution *ExecutionResult
	Package   *PackageResult
	Docs      *DocSearchResult
}

// Empty reports whether no tool produced a result.
func (r *Results) Empty() bool {
	return r == nil || (r.Execution == nil && r.Package == nil && r.Docs == nil)
}
