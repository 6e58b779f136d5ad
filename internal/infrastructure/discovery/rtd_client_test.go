//go:build unit
// +build unit

package discovery

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRTDClient_CanonicalURL_V2(t *testing.T) {
	mux := http.NewServeMux()
	srv := httptest.NewServer(mux)
	defer srv.Close()

	mux.HandleFunc("/api/v2/project/", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "requests", r.URL.Query().Get("slug"))
		_, _ = w.Write([]byte(`{"count": 1, "results": [{"id": 1327}]}`))
	})
	mux.HandleFunc("/api/v2/project/1327/", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"canonical_url": "https://requests.readthedocs.io/en/latest/"}`))
	})

	client := NewRTDClient(srv.Client(), "")
	client.endpoint = srv.URL

	url, err := client.CanonicalURL(context.Background(), "requests")
	require.NoError(t, err)
	assert.Equal(t, "https://requests.readthedocs.io/en/latest/", url)
}

func TestRTDClient_CanonicalURL_V2_NoProject(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"count": 0, "results": []}`))
	}))
	defer srv.Close()

	client := NewRTDClient(srv.Client(), "")
	client.endpoint = srv.URL

	_, err := client.CanonicalURL(context.Background(), "nope")
	require.Error(t, err)
}

func TestRTDClient_CanonicalURL_V3(t *testing.T) {
	mux := http.NewServeMux()
	srv := httptest.NewServer(mux)
	defer srv.Close()

	mux.HandleFunc("/api/v3/projects/requests/", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "Token tok-123", r.Header.Get("Authorization"))
		require.Equal(t, "active_versions", r.URL.Query().Get("expand"))
		_, _ = w.Write([]byte(`{
			"default_version": "stable",
			"active_versions": [
				{"slug": "latest", "urls": {"documentation": "https://requests.readthedocs.io/en/latest/"}},
				{"slug": "stable", "urls": {"documentation": "https://requests.readthedocs.io/en/stable/"}}
			]
		}`))
	})

	client := NewRTDClient(srv.Client(), "tok-123")
	client.endpoint = srv.URL

	url, err := client.CanonicalURL(context.Background(), "requests")
	require.NoError(t, err)
	assert.Equal(t, "https://requests.readthedocs.io/en/stable/", url)
}
