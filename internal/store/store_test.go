//go:build !bolt

package store

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/inovacc/repobook/internal/model"
)

func testRecords(t *testing.T) []model.Record {
	t.Helper()

	name := "repo-b"
	stars := 42

	return []model.Record{
		{
			URL:      "https://github.com/a/b",
			Tags:     []string{"go", "cli"},
			Section:  "Tools",
			Added:    time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
			Metadata: model.Metadata{Name: &name, Stars: &stars},
		},
		{
			URL:     "https://github.com/c/d",
			Tags:    []string{},
			Section: "Uncategorized",
			Added:   time.Date(2026, 2, 3, 4, 5, 6, 0, time.UTC),
		},
	}
}

func TestLoad_MissingDocument(t *testing.T) {
	st, err := Open(filepath.Join(t.TempDir(), "repos.json"))
	require.NoError(t, err)

	records, err := st.Load()
	require.NoError(t, err)
	require.Empty(t, records)
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "repos.json")

	st, err := Open(path)
	require.NoError(t, err)

	want := testRecords(t)
	require.NoError(t, st.Save(want))

	got, err := st.Load()
	require.NoError(t, err)
	require.Equal(t, want, got)
}

// Saving what was just loaded must reproduce the document byte for byte.
func TestSave_LoadSaveIsLossless(t *testing.T) {
	path := filepath.Join(t.TempDir(), "repos.json")

	st, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, st.Save(testRecords(t)))

	before, err := os.ReadFile(path)
	require.NoError(t, err)

	records, err := st.Load()
	require.NoError(t, err)
	require.NoError(t, st.Save(records))

	after, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, before, after)
}

func TestLoad_MalformedDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "repos.json")
	require.NoError(t, os.WriteFile(path, []byte("{corrupt"), 0600))

	st, err := Open(path)
	require.NoError(t, err)

	_, err = st.Load()
	require.Error(t, err)
}

func TestSave_OverwritesWholeDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "repos.json")

	st, err := Open(path)
	require.NoError(t, err)

	records := testRecords(t)
	require.NoError(t, st.Save(records))
	require.NoError(t, st.Save(records[:1]))

	got, err := st.Load()
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, records[0], got[0])
}
