package model

import "time"

// Config holds the application configuration
type Config struct {
	// StorePath is the JSON document holding the repository catalog
	StorePath string `json:"store_path"`

	// ReadmePath is the generated Markdown directory document
	ReadmePath string `json:"readme_path"`

	// APIBaseURL overrides the GitHub API endpoint (empty means api.github.com)
	APIBaseURL string `json:"api_base_url,omitempty"`

	// FetchTimeoutSeconds bounds a single metadata lookup
	FetchTimeoutSeconds int `json:"fetch_timeout_seconds"`
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() Config {
	return Config{
		StorePath:           "repos.json",
		ReadmePath:          "GENERATED_README.md",
		FetchTimeoutSeconds: 5,
	}
}

// FetchTimeout returns the lookup timeout as a duration.
func (c Config) FetchTimeout() time.Duration {
	if c.FetchTimeoutSeconds <= 0 {
		return 5 * time.Second
	}

	return time.Duration(c.FetchTimeoutSeconds) * time.Second
}
