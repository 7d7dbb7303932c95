// Package giturl resolves repository bookmark URLs to their owner/repo pair.
package giturl

import (
	"fmt"
	"net/url"
	"strings"
)

const defaultHost = "github.com"

// Repository identifies a remote repository by host, owner, and name.
type Repository struct {
	Owner string
	Name  string
	Host  string
}

// FullName returns the "owner/repo" string
func (r *Repository) FullName() string {
	return fmt.Sprintf("%s/%s", r.Owner, r.Name)
}

// ParseRepository parses a repository reference into a Repository struct.
// Supports multiple formats:
//   - "owner/repo"
//   - "host/owner/repo"
//   - "https://github.com/owner/repo"
//   - "https://github.com/owner/repo/blob/main/file.go#L10"
//   - "git@github.com:owner/repo.git"
//   - "ssh://git@github.com/owner/repo.git"
func ParseRepository(arg string) (*Repository, error) {
	// Check if it's a URL (contains ":" but not a Windows path)
	isURL := strings.Contains(arg, ":") && !strings.Contains(arg, "\\")

	if isURL {
		return parseRepositoryFromURL(arg)
	}

	if strings.Contains(arg, "/") {
		return parseRepositoryFromFullName(arg)
	}

	return nil, fmt.Errorf("cannot resolve repository %q: expected a URL or owner/repo", arg)
}

func parseRepositoryFromURL(rawURL string) (*Repository, error) {
	u, err := parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("invalid URL %q: %w", rawURL, err)
	}

	owner, name, err := extractOwnerRepo(u)
	if err != nil {
		return nil, fmt.Errorf("invalid repository URL %q: %w", rawURL, err)
	}

	host := u.Hostname()
	if host == "" {
		host = defaultHost
	}

	return &Repository{
		Owner: owner,
		Name:  name,
		Host:  strings.ToLower(strings.TrimPrefix(host, "www.")),
	}, nil
}

func parseRepositoryFromFullName(fullName string) (*Repository, error) {
	// Handle HOST/OWNER/REPO format
	parts := strings.Split(fullName, "/")
	switch len(parts) {
	case 2:
		return &Repository{
			Owner: parts[0],
			Name:  strings.TrimSuffix(parts[1], ".git"),
			Host:  defaultHost,
		}, nil
	case 3:
		return &Repository{
			Owner: parts[1],
			Name:  strings.TrimSuffix(parts[2], ".git"),
			Host:  strings.ToLower(strings.TrimPrefix(parts[0], "www.")),
		}, nil
	default:
		return nil, fmt.Errorf("invalid repository format %q: expected owner/repo or host/owner/repo", fullName)
	}
}

// parse normalizes repository urls, including scp-like syntax
// (git@github.com:owner/repo).
func parse(rawURL string) (*url.URL, error) {
	if !isPossibleProtocol(rawURL) &&
		strings.ContainsRune(rawURL, ':') &&
		// not a Windows path
		!strings.ContainsRune(rawURL, '\\') {
		// support scp-like syntax for ssh protocol
		rawURL = "ssh://" + strings.Replace(rawURL, ":", "/", 1)
	}

	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, err
	}

	switch u.Scheme {
	case "git+https":
		u.Scheme = "https"
	case "git+ssh":
		u.Scheme = "ssh"
	}

	if u.Scheme != "ssh" {
		return u, nil
	}

	if strings.HasPrefix(u.Path, "//") {
		u.Path = strings.TrimPrefix(u.Path, "/")
	}

	u.Host = strings.TrimSuffix(u.Host, ":"+u.Port())

	return u, nil
}

func isPossibleProtocol(u string) bool {
	return strings.HasPrefix(u, "ssh:") ||
		strings.HasPrefix(u, "git+ssh:") ||
		strings.HasPrefix(u, "git:") ||
		strings.HasPrefix(u, "http:") ||
		strings.HasPrefix(u, "git+https:") ||
		strings.HasPrefix(u, "https:") ||
		strings.HasPrefix(u, "ftp:") ||
		strings.HasPrefix(u, "ftps:") ||
		strings.HasPrefix(u, "file:")
}

// extractOwnerRepo takes the first two path segments as owner and repo,
// ignoring anything beyond them (tree links, deep links to lines, issue or
// PR paths, trailing slashes).
func extractOwnerRepo(u *url.URL) (owner, repo string, err error) {
	parts := strings.SplitN(strings.Trim(u.Path, "/"), "/", 3)
	if len(parts) < 2 || parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("invalid path %q: expected owner/repo", u.Path)
	}

	owner = parts[0]
	repo = strings.TrimSuffix(parts[1], ".git")

	return owner, repo, nil
}
