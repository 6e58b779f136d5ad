package discovery

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// ProjectInfo is the subset of the PyPI JSON API payload that discovery
// cares about.
type ProjectInfo struct {
	DocsURL     string            `json:"docs_url"`
	ProjectURLs map[string]string `json:"project_urls"`
	Description string            `json:"description"`
}

// PyPIClient fetches package metadata from the PyPI JSON API.
type PyPIClient struct {
	client   *http.Client
	endpoint string
}

// NewPyPIClient creates a PyPI JSON API client rooted at endpoint,
// e.g. https://pypi.org/pypi.
func NewPyPIClient(client *http.Client, endpoint string) *PyPIClient {
	return &PyPIClient{
		client:   client,
		endpoint: endpoint,
	}
}

// ProjectInfo fetches metadata for the given package.
func (c *PyPIClient) ProjectInfo(ctx context.Context, pkg string) (*ProjectInfo, error) {
	url := fmt.Sprintf("%s/%s/json", c.endpoint, pkg)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build PyPI request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("PyPI request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("package %s not found on PyPI", pkg)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("PyPI returned status %d for %s", resp.StatusCode, pkg)
	}

	var payload struct {
		Info ProjectInfo `json:"info"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode PyPI response: %w", err)
	}
	return &payload.Info, nil
}
