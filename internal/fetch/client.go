// Package fetch looks up repository metadata from the GitHub API.
//
// Metadata is best-effort: a lookup performs a single request with a short
// timeout and never retries. Failures come back as a *LookupError so the
// caller can report the reason and fall back to an empty Metadata value.
package fetch

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/go-github/v82/github"
	"golang.org/x/oauth2"

	"github.com/inovacc/repobook/internal/giturl"
	"github.com/inovacc/repobook/internal/model"
)

const defaultTimeout = 5 * time.Second

// Client performs metadata lookups against the GitHub API.
type Client struct {
	gh      *github.Client
	timeout time.Duration
}

// Options configures a metadata Client.
type Options struct {
	// BaseURL overrides the API endpoint (tests, GitHub Enterprise).
	// Empty means api.github.com.
	BaseURL string

	// Token authenticates requests; empty means anonymous.
	Token string

	// Timeout bounds a single lookup, connection setup included.
	Timeout time.Duration
}

// NewClient creates a metadata client. With a token the client uses an
// oauth2 static-token transport, the standard way GitHub API clients are
// built throughout the codebase.
func NewClient(opts Options) (*Client, error) {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	hc := &http.Client{Timeout: timeout}
	if opts.Token != "" {
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: opts.Token})
		hc = oauth2.NewClient(context.Background(), ts)
		hc.Timeout = timeout
	}

	gh := github.NewClient(hc)
	if opts.BaseURL != "" {
		base, err := url.Parse(strings.TrimSuffix(opts.BaseURL, "/") + "/")
		if err != nil {
			return nil, fmt.Errorf("invalid API base URL %q: %w", opts.BaseURL, err)
		}

		gh.BaseURL = base
	}

	return &Client{gh: gh, timeout: timeout}, nil
}

// Fetch resolves rawURL to an owner/repo pair and performs one lookup.
// It always returns a usable (possibly empty) Metadata value; the error
// carries the failure reason for reporting.
func (c *Client) Fetch(ctx context.Context, rawURL string) (model.Metadata, error) {
	repo, err := giturl.ParseRepository(rawURL)
	if err != nil {
		return model.Metadata{}, &LookupError{URL: rawURL, Err: err}
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	remote, _, err := c.gh.Repositories.Get(ctx, repo.Owner, repo.Name)
	if err != nil {
		return model.Metadata{}, &LookupError{URL: rawURL, Err: err}
	}

	meta := model.Metadata{
		Name:        remote.Name,
		Description: remote.Description,
		Stars:       remote.StargazersCount,
	}

	if remote.UpdatedAt != nil {
		updated := remote.UpdatedAt.Format(time.RFC3339)
		meta.LastUpdated = &updated
	}

	return meta, nil
}
