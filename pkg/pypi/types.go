package pypi

// packageResponse is the PyPI JSON API envelope.
type packageResponse struct {
	Info     packageInfo               `json:"info"`
	Releases map[string][]releaseEntry `json:"releases"`
}

type packageInfo struct {
	Name     string `json:"name"`
	Version  string `json:"version"`
	Summary  string `json:"summary"`
	Author   string `json:"author"`
	License  string `json:"license"`
	HomePage string `json:"home_page"`
}

type releaseEntry struct {
	Filename   string `json:"filename"`
	UploadTime string `json:"upload_time"`
}

// Package holds the metadata surfaced for a PyPI package.
type Package struct {
	Name           string
	Version        string
	Summary        string
	Author         string
	License        string
	HomePage       string
	RecentVersions []string
}
