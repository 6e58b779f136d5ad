// Package inventories loads Sphinx object inventories over HTTP.
package inventories

import (
	"context"
	"fmt"
	"net/http"

	"github.com/AstraLuma/catfind/internal/domain/inventory"
	"github.com/AstraLuma/catfind/internal/pkg/config"
	"github.com/AstraLuma/catfind/internal/pkg/httputil"
	"github.com/AstraLuma/catfind/internal/pkg/logger"
)

type httpLoader struct {
	client *http.Client
	logger logger.Logger
}

// NewHTTPLoader creates an inventory loader that fetches over HTTP with the
// configured User-Agent.
func NewHTTPLoader(settings *config.DiscoverySettings, log logger.Logger) inventory.Loader {
	return &httpLoader{
		client: httputil.NewClient(settings.UserAgent),
		logger: log,
	}
}

// Load fetches and parses the inventory at uri. Redirects are followed and
// the final URL is recorded as the inventory's canonical URI, so a moved
// inventory updates its project's identity on the next index run.
func (l *httpLoader) Load(ctx context.Context, uri string) (*inventory.Inventory, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, uri, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build inventory request: %w", err)
	}

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch inventory %s: %w", uri, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("inventory %s returned status %d", uri, resp.StatusCode)
	}

	finalURL := resp.Request.URL.String()
	if finalURL != uri {
		l.logger.Info("Inventory ", uri, " redirected to ", finalURL)
	}

	inv, err := inventory.Load(resp.Body, finalURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse inventory %s: %w", finalURL, err)
	}
	return inv, nil
}
