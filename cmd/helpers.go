package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/inovacc/repobook/internal/application"
	"github.com/inovacc/repobook/internal/core"
	"github.com/inovacc/repobook/internal/encoding"
	"github.com/inovacc/repobook/internal/fetch"
	"github.com/inovacc/repobook/internal/model"
	"github.com/inovacc/repobook/internal/readme"
	"github.com/inovacc/repobook/internal/store"
)

// configFilePath returns the explicit --config path or the per-user default.
func configFilePath() (string, error) {
	if flagConfig != "" {
		return flagConfig, nil
	}

	return application.ConfigFilePath()
}

// loadConfig reads the persisted configuration, falling back to defaults
// when no file exists, then applies flag overrides. A malformed
// configuration file is an error, not a silent fallback.
func loadConfig() (model.Config, error) {
	cfg := model.DefaultConfig()

	path, err := configFilePath()
	if err == nil {
		saved, err := encoding.LoadJSON[model.Config](path)
		if err != nil {
			return cfg, err
		}

		if saved != nil {
			cfg = *saved
		}
	}

	if flagStore != "" {
		cfg.StorePath = flagStore
	}

	if flagReadme != "" {
		cfg.ReadmePath = flagReadme
	}

	return cfg, nil
}

// newCatalog wires the catalog operations from the effective configuration.
// The metadata client is only built when the operation asked for it.
func newCatalog(out io.Writer, withFetcher bool) (*core.Catalog, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	st, err := store.Open(cfg.StorePath)
	if err != nil {
		return nil, err
	}

	var fetcher core.Fetcher

	if withFetcher {
		token, _ := fetch.ResolveToken("github.com")

		client, err := fetch.NewClient(fetch.Options{
			BaseURL: cfg.APIBaseURL,
			Token:   token,
			Timeout: cfg.FetchTimeout(),
		})
		if err != nil {
			return nil, err
		}

		fetcher = client
	}

	return core.New(st, fetcher, readme.NewGenerator(cfg.ReadmePath), out), nil
}

// reportNonFatal prints the friendly message for domain rejections and
// reports whether err was one of them. Rejections abort the operation but
// are not process failures.
func reportNonFatal(out io.Writer, err error) bool {
	var dup *core.DuplicateURLError
	if errors.As(err, &dup) {
		fmt.Fprintf(out, "⚠️ Repo already exists in your list: %s\n", dup.URL)

		return true
	}

	var idx *core.InvalidIndexError
	if errors.As(err, &idx) {
		fmt.Fprintf(out, "❗ Invalid index %d: the list has %d entries.\n", idx.Index, idx.Count)

		return true
	}

	return false
}
