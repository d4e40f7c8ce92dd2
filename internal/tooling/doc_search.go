package tooling

import (
	"context"
	"fmt"
	"strings"

	"python-docs-copilot/pkg/log"
)

// docURLs maps supported libraries to their official documentation roots.
var docURLs = map[string]string{
	"pandas":       "https://pandas.pydata.org/docs/",
	"numpy":        "https://numpy.org/doc/stable/",
	"scikit-learn": "https://scikit-learn.org/stable/",
	"matplotlib":   "https://matplotlib.org/stable/",
	"seaborn":      "https://seaborn.pydata.org/",
	"requests":     "https://requests.readthedocs.io/",
	"flask":        "https://flask.palletsprojects.com/",
	"django":       "https://docs.djangoproject.com/",
	"fastapi":      "https://fastapi.tiangolo.com/",
	"sqlalchemy":   "https://docs.sqlalchemy.org/",
}

// DocSearcher synthesizes documentation links for supported libraries.
type DocSearcher struct {
	supported []string
	logger    log.Logger
}

// NewDocSearcher creates a DocSearcher restricted to the supported set.
func NewDocSearcher(supported []string, logger log.Logger) *DocSearcher {
	return &DocSearcher{supported: supported, logger: logger}
}

// Search returns the official documentation root for the library, plus
// section links keyed off the query wording.
func (s *DocSearcher) Search(ctx context.Context, library, query string) DocSearchResult {
	if !s.isSupported(library) {
		return DocSearchResult{
			Success: false,
			Error: fmt.Sprintf("Library '%s' not in supported list: %s",
				library, strings.Join(s.supported, ", ")),
		}
	}

	baseURL, ok := docURLs[strings.ToLower(library)]
	if !ok {
		return DocSearchResult{
			Success: false,
			Error:   fmt.Sprintf("Documentation URL not configured for %s", library),
		}
	}

	s.logger.Debugf(ctx, "searching %s docs for: %s", library, query)

	title := strings.ToUpper(library[:1]) + library[1:]
	links := []DocLink{
		{
			Title:       fmt.Sprintf("%s Official Documentation", title),
			URL:         baseURL,
			Description: fmt.Sprintf("Official documentation for %s. Search for '%s' in the documentation.", library, query),
		},
	}

	queryLower := strings.ToLower(query)
	if strings.Contains(queryLower, "install") {
		links = append(links, DocLink{
			Title:       "Installation Guide",
			URL:         baseURL + "getting_started/install.html",
			Description: "Installation instructions and requirements",
		})
	}
	if strings.Contains(queryLower, "tutorial") || strings.Contains(queryLower, "guide") {
		links = append(links, DocLink{
			Title:       "User Guide",
			URL:         baseURL + "user_guide/",
			Description: "Comprehensive user guide and tutorials",
		})
	}
	if strings.Contains(queryLower, "api") || strings.Contains(queryLower, "reference") {
		links = append(links, DocLink{
			Title:       "API Reference",
			URL:         baseURL + "reference/",
			Description: "Complete API reference documentation",
		})
	}

	return DocSearchResult{Success: true, Links: links}
}

func (s *DocSearcher) isSupported(library string) bool {
	for _, lib := range s.supported {
		if strings.EqualFold(lib, library) {
			return true
		}
	}
	return false
}
