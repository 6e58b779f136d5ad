package discovery

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"sort"
	"strings"
	"sync"

	"github.com/AstraLuma/catfind/internal/domain/discovery"
	"github.com/AstraLuma/catfind/internal/pkg/config"
	"github.com/AstraLuma/catfind/internal/pkg/httputil"
	"github.com/AstraLuma/catfind/internal/pkg/logger"
)

// From https://stackoverflow.com/questions/6038061/regular-expression-to-find-urls-within-a-string
var urlPattern = regexp.MustCompile(`(?i)(?:(?:https?|ftp|file)://|www\.|ftp\.)(?:\([-A-Z0-9+&@#/%=~_|$?!:,.]*\)|[-A-Z0-9+&@#/%=~_|$?!:,.])*(?:\([-A-Z0-9+&@#/%=~_|$?!:,.]*\)|[A-Z0-9+&@#/%=~_|$])`)

const inventoryMagic = "# Sphinx"

// Guesser handles all of the blindly poking at things to see if we can find
// a sphinx inventory.
type Guesser struct {
	client *http.Client
	rtd    *RTDClient
	pypi   *PyPIClient
	logger logger.Logger

	// Resolution results are memoized for the guesser's lifetime; a CLI
	// call or a single discovery run constructs a fresh one.
	mu       sync.Mutex
	resolved map[string]string
}

// NewGuesser creates a Guesser from discovery settings.
func NewGuesser(settings *config.DiscoverySettings, log logger.Logger) *Guesser {
	client := httputil.NewClient(settings.UserAgent)
	return &Guesser{
		client:   client,
		rtd:      NewRTDClient(client, settings.RTDToken),
		pypi:     NewPyPIClient(client, settings.PyPIEndpoint),
		logger:   log,
		resolved: map[string]string{},
	}
}

var _ discovery.GuessService = (*Guesser)(nil)

// resolve follows redirects and checks for existence. It returns the final
// URL, or "" when the target is unreachable or unsuccessful.
func (g *Guesser) resolve(ctx context.Context, rawURL string) string {
	if rawURL == "" {
		return ""
	}

	g.mu.Lock()
	final, ok := g.resolved[rawURL]
	g.mu.Unlock()
	if ok {
		return final
	}

	final = ""
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, rawURL, nil)
	if err == nil {
		resp, err := g.client.Do(req)
		if err == nil {
			_ = resp.Body.Close()
			if resp.StatusCode >= 200 && resp.StatusCode < 300 {
				final = resp.Request.URL.String()
			}
		}
		// Timeouts and connection errors are treated as misses.
	}

	g.mu.Lock()
	g.resolved[rawURL] = final
	g.mu.Unlock()
	return final
}

// rtdSlug extracts the Read The Docs project slug from a hosted docs URL.
// Currently just a string operation.
func rtdSlug(rawURL string) string {
	bits, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	host := bits.Hostname()
	if strings.HasSuffix(host, ".readthedocs.io") || strings.HasSuffix(host, ".rtfd.io") {
		slug, _, _ := strings.Cut(host, ".")
		return slug
	}
	return ""
}

// guessURL guesses at a few possible locations for a sphinx inventory
// reachable from the given root URL.
func (g *Guesser) guessURL(ctx context.Context, rawURL string) []string {
	if rawURL == "" {
		return nil
	}

	// Does it look like a Read The Docs site? Then just ask RTD instead of
	// probing blindly.
	if slug := rtdSlug(rawURL); slug != "" {
		canonical, err := g.rtd.CanonicalURL(ctx, slug)
		if err != nil {
			g.logger.Warn("Read The Docs lookup failed for ", slug, ": ", err)
			return nil
		}
		return []string{joinURL(canonical, "objects.inv")}
	}

	// TODO: Can we do the same thing for RTD sites with custom domains?

	var candidates []string

	// Join then check for redirects
	if u := g.resolve(ctx, joinURL(rawURL, "objects.inv")); u != "" {
		candidates = append(candidates, u)
	}

	// Check for redirects and then join
	if u := g.resolve(ctx, rawURL); u != "" {
		if u = g.resolve(ctx, joinURL(u, "objects.inv")); u != "" {
			candidates = append(candidates, u)
		}
	}

	return candidates
}

// CheckInventory reports whether the given URL actually serves a sphinx
// inventory, by sniffing the leading bytes of the body.
func (g *Guesser) CheckInventory(ctx context.Context, rawURL string) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return false
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return false
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return false
	}

	head := make([]byte, len(inventoryMagic))
	if _, err := io.ReadFull(resp.Body, head); err != nil {
		return false
	}
	return string(head) == inventoryMagic
}

// GuessForPyPI returns verified inventory URLs for a PyPI package.
// Declared metadata is tried first; the package description is only
// scraped when the declared URLs turn up nothing.
func (g *Guesser) GuessForPyPI(ctx context.Context, pkg string) ([]string, error) {
	info, err := g.pypi.ProjectInfo(ctx, pkg)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch PyPI metadata: %w", err)
	}

	var roots []string
	if info.DocsURL != "" && g.resolve(ctx, info.DocsURL) != "" {
		roots = append(roots, info.DocsURL)
	}
	for _, key := range sortedKeys(info.ProjectURLs) {
		if u := info.ProjectURLs[key]; g.resolve(ctx, u) != "" {
			roots = append(roots, u)
		}
	}

	urls := g.performGuessing(ctx, roots)

	// Rummage through the README
	if len(urls) == 0 {
		roots = roots[:0]
		for _, m := range urlPattern.FindAllString(info.Description, -1) {
			roots = append(roots, m)
		}
		urls = g.performGuessing(ctx, roots)
	}

	return urls, nil
}

// performGuessing processes a collection of discovered root URLs into a
// deduplicated list of verified inventory URLs.
func (g *Guesser) performGuessing(ctx context.Context, roots []string) []string {
	seen := map[string]bool{}
	var urls []string
	for _, root := range roots {
		for _, candidate := range g.guessURL(ctx, root) {
			if seen[candidate] {
				continue
			}
			seen[candidate] = true
			if g.CheckInventory(ctx, candidate) {
				urls = append(urls, candidate)
			}
		}
	}
	return urls
}

func joinURL(base, ref string) string {
	baseURL, err := url.Parse(base)
	if err != nil {
		return ref
	}
	refURL, err := url.Parse(ref)
	if err != nil {
		return ref
	}
	return baseURL.ResolveReference(refURL).String()
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
