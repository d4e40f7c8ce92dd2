package tooling

import (
	"context"
	"errors"
	"fmt"

	"python-docs-copilot/pkg/log"
	"python-docs-copilot/pkg/pypi"
)

// PackageInfoFetcher looks up live package metadata from the registry.
type PackageInfoFetcher struct {
	client *pypi.Client
	logger log.Logger
}

// NewPackageInfoFetcher creates a PackageInfoFetcher over the PyPI client.
func NewPackageInfoFetcher(client *pypi.Client, logger log.Logger) *PackageInfoFetcher {
	return &PackageInfoFetcher{client: client, logger: logger}
}

// Fetch retrieves metadata for the named package. An unknown package is
// reported as NotFound rather than a transport failure.
func (f *PackageInfoFetcher) Fetch(ctx context.Context, name string) PackageResult {
	if name == "" {
		return PackageResult{Success: false, Error: "no package name provided"}
	}

	f.logger.Debugf(ctx, "fetching package info for %s", name)

	pkg, err := f.client.GetPackage(ctx, name)
	if err != nil {
		if errors.Is(err, pypi.ErrPackageNotFound) {
			return PackageResult{
				Success:  false,
				NotFound: true,
				Error:    fmt.Sprintf("Package '%s' not found on PyPI", name),
			}
		}
		f.logger.Warnf(ctx, "package lookup failed: %v", err)
		return PackageResult{
			Success: false,
			Error:   fmt.Sprintf("Failed to fetch package info: %v", err),
		}
	}

	return PackageResult{Success: true, Package: pkg}
}
