package discovery

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// DefaultRTDEndpoint is the Read The Docs API host.
const DefaultRTDEndpoint = "https://readthedocs.org"

// RTDClient asks Read The Docs for the canonical documentation URL of a
// project, which avoids probing RTD-hosted sites blindly.
type RTDClient struct {
	client   *http.Client
	endpoint string
	token    string
}

// NewRTDClient creates a Read The Docs API client. An empty token restricts
// the client to the anonymous V2 API.
func NewRTDClient(client *http.Client, token string) *RTDClient {
	return &RTDClient{
		client:   client,
		endpoint: DefaultRTDEndpoint,
		token:    token,
	}
}

// CanonicalURL gets the URL of the canonical docs of the given project.
// Uses V3 if there is a token configured, V2 otherwise.
func (c *RTDClient) CanonicalURL(ctx context.Context, slug string) (string, error) {
	if c.token != "" {
		return c.canonicalURLV3(ctx, slug)
	}
	return c.canonicalURLV2(ctx, slug)
}

func (c *RTDClient) canonicalURLV2(ctx context.Context, slug string) (string, error) {
	var listing struct {
		Count   int `json:"count"`
		Results []struct {
			ID int `json:"id"`
		} `json:"results"`
	}
	url := fmt.Sprintf("%s/api/v2/project/?slug=%s", c.endpoint, slug)
	if err := c.getJSON(ctx, url, "", &listing); err != nil {
		return "", err
	}
	if listing.Count == 0 {
		return "", fmt.Errorf("no Read The Docs project for slug %s", slug)
	}

	// Just grab the first result
	var project struct {
		CanonicalURL string `json:"canonical_url"`
	}
	url = fmt.Sprintf("%s/api/v2/project/%d/", c.endpoint, listing.Results[0].ID)
	if err := c.getJSON(ctx, url, "", &project); err != nil {
		return "", err
	}
	return project.CanonicalURL, nil
}

func (c *RTDClient) canonicalURLV3(ctx context.Context, slug string) (string, error) {
	var project struct {
		DefaultVersion string `json:"default_version"`
		ActiveVersions []struct {
			Slug string `json:"slug"`
			URLs struct {
				Documentation string `json:"documentation"`
			} `json:"urls"`
		} `json:"active_versions"`
	}
	url := fmt.Sprintf("%s/api/v3/projects/%s/?expand=active_versions", c.endpoint, slug)
	if err := c.getJSON(ctx, url, "Token "+c.token, &project); err != nil {
		return "", err
	}

	for _, version := range project.ActiveVersions {
		if version.Slug == project.DefaultVersion {
			return version.URLs.Documentation, nil
		}
	}
	return "", fmt.Errorf("no default version for Read The Docs project %s", slug)
}

func (c *RTDClient) getJSON(ctx context.Context, url, authorization string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("failed to build Read The Docs request: %w", err)
	}
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("Read The Docs request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("Read The Docs returned status %d for %s", resp.StatusCode, url)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode Read The Docs response: %w", err)
	}
	return nil
}
