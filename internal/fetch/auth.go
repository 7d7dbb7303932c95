package fetch

import (
	"os"

	"github.com/cli/go-gh/v2/pkg/auth"
)

// TokenSource indicates where the token was found
type TokenSource string

const (
	TokenSourceEnvGitHub TokenSource = "GITHUB_TOKEN"
	TokenSourceEnvGH     TokenSource = "GH_TOKEN"
	TokenSourceGHCLI     TokenSource = "gh-cli"
	TokenSourceNone      TokenSource = "none"
)

// ResolveToken attempts to find a GitHub token for the given host.
// Lookups work anonymously, so a missing token is not an error;
// authenticated requests just get higher rate limits.
// Priority order:
//  1. GITHUB_TOKEN environment variable
//  2. GH_TOKEN environment variable
//  3. gh CLI auth (config file)
func ResolveToken(host string) (token string, source TokenSource) {
	if token = os.Getenv("GITHUB_TOKEN"); token != "" {
		return token, TokenSourceEnvGitHub
	}

	if token = os.Getenv("GH_TOKEN"); token != "" {
		return token, TokenSourceEnvGH
	}

	if token, _ = auth.TokenForHost(host); token != "" {
		return token, TokenSourceGHCLI
	}

	return "", TokenSourceNone
}
