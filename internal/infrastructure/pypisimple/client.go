// Package pypisimple is a client for the PyPI Simple Repository API,
// significantly stripped down to the one operation catfind needs:
// streaming the names of every project in the index.
package pypisimple

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"golang.org/x/net/html"

	"github.com/AstraLuma/catfind/internal/domain/discovery"
)

// DefaultEndpoint is the base URL for PyPI's simple API.
const DefaultEndpoint = "https://pypi.org/simple/"

// SupportedRepositoryVersion is the maximum supported simple repository
// version (see PEP 629).
const SupportedRepositoryVersion = "1.0"

// UnsupportedRepoVersionError is returned when the repository declares a
// version with a greater major component than the supported one.
type UnsupportedRepoVersionError struct {
	DeclaredVersion string
}

func (e *UnsupportedRepoVersionError) Error() string {
	return fmt.Sprintf("repository version %s exceeds supported version %s",
		e.DeclaredVersion, SupportedRepositoryVersion)
}

// Client fetches package information from a Python simple package
// repository.
type Client struct {
	client   *http.Client
	endpoint string
}

// NewClient creates a simple API client. endpoint is the base URL of the
// simple API instance to query; pass DefaultEndpoint for PyPI itself.
func NewClient(client *http.Client, endpoint string) *Client {
	return &Client{
		client:   client,
		endpoint: strings.TrimRight(endpoint, "/") + "/",
	}
}

var _ discovery.CatalogService = (*Client)(nil)

// StreamProjectNames calls fn with the name of every project available in
// the repository. Names are not normalized. The index document is parsed
// in a streaming fashion; the full listing is never buffered.
func (c *Client) StreamProjectNames(ctx context.Context, fn func(name string) error) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to build simple index request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("simple index request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("simple index returned status %d", resp.StatusCode)
	}

	tokenizer := html.NewTokenizer(resp.Body)
	var anchorText strings.Builder
	inAnchor := false

	for {
		switch tokenizer.Next() {
		case html.ErrorToken:
			if err := tokenizer.Err(); !errors.Is(err, io.EOF) {
				return fmt.Errorf("failed to parse simple index: %w", err)
			}
			return nil

		case html.StartTagToken, html.SelfClosingTagToken:
			token := tokenizer.Token()
			switch token.Data {
			case "meta":
				if err := checkRepositoryVersion(token); err != nil {
					return err
				}
			case "a":
				inAnchor = true
				anchorText.Reset()
			}

		case html.TextToken:
			if inAnchor {
				anchorText.Write(tokenizer.Text())
			}

		case html.EndTagToken:
			token := tokenizer.Token()
			if token.Data == "a" && inAnchor {
				inAnchor = false
				name := strings.TrimSpace(anchorText.String())
				if name == "" {
					continue
				}
				if err := fn(name); err != nil {
					return err
				}
			}
		}

		if err := ctx.Err(); err != nil {
			return err
		}
	}
}

// checkRepositoryVersion enforces PEP 629: reject indexes whose declared
// major version is above ours.
func checkRepositoryVersion(token html.Token) error {
	var name, content string
	for _, attr := range token.Attr {
		switch attr.Key {
		case "name":
			name = attr.Val
		case "content":
			content = attr.Val
		}
	}
	if name != "pypi:repository-version" {
		return nil
	}

	majorStr, _, _ := strings.Cut(content, ".")
	major, err := strconv.Atoi(majorStr)
	if err != nil {
		return fmt.Errorf("malformed repository version %q", content)
	}

	supportedMajorStr, _, _ := strings.Cut(SupportedRepositoryVersion, ".")
	supportedMajor, _ := strconv.Atoi(supportedMajorStr)
	if major > supportedMajor {
		return &UnsupportedRepoVersionError{DeclaredVersion: content}
	}
	return nil
}
