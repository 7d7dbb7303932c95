package readme

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/inovacc/repobook/internal/model"
)

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }

func TestRender_Empty(t *testing.T) {
	out := string(Render(nil))

	require.Contains(t, out, "# 📚 RepoBook Directory")
	require.Contains(t, out, "_No repositories added yet._")
	require.NotContains(t, out, "## Uncategorized")
	require.NotContains(t, out, "---")
}

func TestRender_Deterministic(t *testing.T) {
	records := []model.Record{
		{URL: "https://github.com/a/b", Section: "Tools", Added: time.Now()},
		{URL: "https://github.com/c/d", Section: "Docs", Added: time.Now()},
	}

	first := Render(records)
	second := Render(records)
	require.Equal(t, first, second)
}

func TestRender_SectionsSorted(t *testing.T) {
	records := []model.Record{
		{URL: "https://github.com/a/b", Section: "Zeta"},
		{URL: "https://github.com/c/d", Section: "Alpha"},
	}

	out := string(Render(records))

	alpha := strings.Index(out, "## Alpha")
	zeta := strings.Index(out, "## Zeta")
	require.GreaterOrEqual(t, alpha, 0)
	require.GreaterOrEqual(t, zeta, 0)
	require.Less(t, alpha, zeta)
}

func TestRender_Entry(t *testing.T) {
	records := []model.Record{
		{
			URL:     "https://github.com/a/b",
			Tags:    []string{"go", "cli"},
			Section: "Tools",
			Metadata: model.Metadata{
				Name:        strPtr("b"),
				Description: strPtr("a tiny tool"),
				Stars:       intPtr(42),
			},
		},
	}

	out := string(Render(records))

	require.Contains(t, out, "## Tools")
	require.Contains(t, out, "### [b](https://github.com/a/b) ⭐ 42")
	require.Contains(t, out, "> a tiny tool")
	require.Contains(t, out, "**Tags:** go, cli")
	require.Contains(t, out, "---")
}

func TestRender_NoMetadata(t *testing.T) {
	records := []model.Record{
		{URL: "https://github.com/a/b", Section: "Uncategorized"},
	}

	out := string(Render(records))

	require.Contains(t, out, "## Uncategorized")
	require.Contains(t, out, "### [b](https://github.com/a/b)\n")
	require.NotContains(t, out, "⭐")
	require.NotContains(t, out, "> ")
	require.NotContains(t, out, "**Tags:**")
}

func TestRender_ZeroStarsShown(t *testing.T) {
	records := []model.Record{
		{URL: "https://github.com/a/b", Metadata: model.Metadata{Stars: intPtr(0)}},
	}

	out := string(Render(records))
	require.Contains(t, out, "⭐ 0")
}

func TestGenerator_WriteOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "README.md")
	gen := NewGenerator(path)

	require.NoError(t, gen.Write([]model.Record{{URL: "https://github.com/a/b"}}))
	require.NoError(t, gen.Write(nil))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "_No repositories added yet._")
	require.NotContains(t, string(data), "github.com/a/b")
}
