package tooling

import (
	"context"

	"python-docs-copilot/pkg/log"
)

// Registry bundles the available tools and dispatches them by name.
type Registry struct {
	executor  *CodeExecutor
	packages  *PackageInfoFetcher
	docs      *DocSearcher
	supported []string
	logger    log.Logger
}

// NewRegistry creates a Registry over the concrete tools.
func NewRegistry(executor *CodeExecutor, packages *PackageInfoFetcher, docs *DocSearcher, supported []string, logger log.Logger) *Registry {
	return &Registry{
		executor:  executor,
		packages:  packages,
		docs:      docs,
		supported: supported,
		logger:    logger,
	}
}

// Run executes each named tool against the message and collects the
// results. A tool whose argument extraction comes up empty is skipped.
func (r *Registry) Run(ctx context.Context, toolNames []string, message string) *Results {
	results := &Results{}

	for _, name := range toolNames {
		switch name {
		case ToolExecuteCode:
			code := ExtractCode(message)
			if code == "" {
				continue
			}
			res := r.executor.Execute(ctx, code)
			results.Execution = &res

		case ToolPackageInfo:
			pkgName := ExtractPackageName(message, r.supported)
			if pkgName == "" {
				continue
			}
			res := r.packages.Fetch(ctx, pkgName)
			results.Package = &res

		case ToolSearchDocs:
			library, query := ExtractDocParams(message, r.supported)
			if library == "" {
				continue
			}
			res := r.docs.Search(ctx, library, query)
			results.Docs = &res

		default:
			r.logger.Warnf(ctx, "unknown tool requested: %s", name)
		}
	}

	return results
}
