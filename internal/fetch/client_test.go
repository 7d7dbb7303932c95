package fetch

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.Handler, timeout time.Duration) *Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := NewClient(Options{BaseURL: srv.URL, Timeout: timeout})
	require.NoError(t, err)

	return client
}

func TestFetch_Success(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/repos/a/b", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"name":"b","description":"demo repo","stargazers_count":42,"updated_at":"2026-01-02T03:04:05Z"}`)
	})

	client := newTestClient(t, mux, time.Second)

	meta, err := client.Fetch(context.Background(), "https://github.com/a/b")
	require.NoError(t, err)

	require.NotNil(t, meta.Name)
	require.Equal(t, "b", *meta.Name)
	require.NotNil(t, meta.Description)
	require.Equal(t, "demo repo", *meta.Description)
	require.NotNil(t, meta.Stars)
	require.Equal(t, 42, *meta.Stars)
	require.NotNil(t, meta.LastUpdated)
	require.Equal(t, "2026-01-02T03:04:05Z", *meta.LastUpdated)
}

func TestFetch_AbsentFieldsStayNil(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/repos/a/b", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"name":"b"}`)
	})

	client := newTestClient(t, mux, time.Second)

	meta, err := client.Fetch(context.Background(), "https://github.com/a/b")
	require.NoError(t, err)

	require.NotNil(t, meta.Name)
	require.Nil(t, meta.Description)
	require.Nil(t, meta.Stars)
	require.Nil(t, meta.LastUpdated)
}

func TestFetch_NotFound(t *testing.T) {
	client := newTestClient(t, http.NotFoundHandler(), time.Second)

	meta, err := client.Fetch(context.Background(), "https://github.com/a/missing")
	require.Error(t, err)
	require.True(t, meta.IsEmpty())

	var lookupErr *LookupError
	require.ErrorAs(t, err, &lookupErr)
	require.Equal(t, "https://github.com/a/missing", lookupErr.URL)
}

func TestFetch_ServerError(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	client := newTestClient(t, handler, time.Second)

	meta, err := client.Fetch(context.Background(), "https://github.com/a/b")
	require.Error(t, err)
	require.True(t, meta.IsEmpty())
}

func TestFetch_Timeout(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	})

	client := newTestClient(t, handler, 20*time.Millisecond)

	meta, err := client.Fetch(context.Background(), "https://github.com/a/b")
	require.Error(t, err)
	require.True(t, meta.IsEmpty())
}

func TestFetch_MalformedURL(t *testing.T) {
	client := newTestClient(t, http.NotFoundHandler(), time.Second)

	meta, err := client.Fetch(context.Background(), "not-a-repo")
	require.Error(t, err)
	require.True(t, meta.IsEmpty())

	var lookupErr *LookupError
	require.ErrorAs(t, err, &lookupErr)
}

func TestNewClient_InvalidBaseURL(t *testing.T) {
	_, err := NewClient(Options{BaseURL: "://bad"})
	require.Error(t, err)
}

func TestLookupError_Unwrap(t *testing.T) {
	cause := errors.New("boom")
	err := &LookupError{URL: "https://github.com/a/b", Err: cause}

	require.ErrorIs(t, err, cause)
	require.Contains(t, err.Error(), "https://github.com/a/b")
}
