package discovery

import "context"

// GuessService guesses object inventory locations.
type GuessService interface {
	// GuessForPyPI returns verified inventory URLs for a PyPI package, in
	// importance order. Earlier results come from declared metadata; later
	// ones are scraped from the package description.
	GuessForPyPI(ctx context.Context, pkg string) ([]string, error)

	// CheckInventory reports whether the URL serves a Sphinx inventory.
	CheckInventory(ctx context.Context, url string) bool
}

// CatalogService enumerates packages on the package index.
type CatalogService interface {
	// StreamProjectNames calls fn for every project name in the simple
	// index, in document order. Enumeration stops at the first error
	// returned by fn.
	StreamProjectNames(ctx context.Context, fn func(name string) error) error
}
