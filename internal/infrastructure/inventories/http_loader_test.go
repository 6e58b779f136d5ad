//go:build unit
// +build unit

package inventories

import (
	"bytes"
	"compress/zlib"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/AstraLuma/catfind/internal/pkg/config"
	"github.com/AstraLuma/catfind/internal/pkg/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func inventoryPayload(t *testing.T) []byte {
	t.Helper()

	var buf bytes.Buffer
	buf.WriteString("# Sphinx inventory version 2\n")
	buf.WriteString("# Project: demo\n")
	buf.WriteString("# Version: 1.0\n")
	buf.WriteString("# The remainder of this file is compressed using zlib.\n")
	zw := zlib.NewWriter(&buf)
	_, err := zw.Write([]byte("demo.f py:function 1 api.html#$ -\n"))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func newLoader(t *testing.T) *httpLoader {
	t.Helper()

	settings := &config.DiscoverySettings{UserAgent: "catfind-test/1.0"}
	return NewHTTPLoader(settings, testutil.SetupTestLogger(t)).(*httpLoader)
}

func TestHTTPLoader_Load(t *testing.T) {
	payload := inventoryPayload(t)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write(payload)
	}))
	defer srv.Close()

	loader := newLoader(t)

	inv, err := loader.Load(context.Background(), srv.URL+"/objects.inv")
	require.NoError(t, err)

	assert.Equal(t, "demo", inv.ProjectName)
	assert.Equal(t, srv.URL+"/objects.inv", inv.URI)
	require.Len(t, inv.Items, 1)
	assert.Equal(t, srv.URL+"/api.html#demo.f", inv.Items[0].Location)
}

func TestHTTPLoader_Load_RecordsRedirectTarget(t *testing.T) {
	payload := inventoryPayload(t)
	mux := http.NewServeMux()
	srv := httptest.NewServer(mux)
	defer srv.Close()

	mux.HandleFunc("/old/objects.inv", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/new/objects.inv", http.StatusMovedPermanently)
	})
	mux.HandleFunc("/new/objects.inv", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write(payload)
	})

	loader := newLoader(t)

	inv, err := loader.Load(context.Background(), srv.URL+"/old/objects.inv")
	require.NoError(t, err)

	assert.Equal(t, srv.URL+"/new/objects.inv", inv.URI)
	require.Len(t, inv.Items, 1)
	assert.Equal(t, srv.URL+"/new/api.html#demo.f", inv.Items[0].Location)
}

func TestHTTPLoader_Load_HTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	loader := newLoader(t)

	_, err := loader.Load(context.Background(), srv.URL+"/objects.inv")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 404")
}
