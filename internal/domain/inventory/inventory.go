package inventory

import (
	"context"
	"net/url"
	"strings"
)

// Item is a single object in an inventory.
type Item struct {
	Name     string
	Type     string
	Priority int
	Location string
	Dispname string
}

// DomainRole splits the object type into its Sphinx domain and role,
// e.g. "py:function" into ("py", "function").
func (i Item) DomainRole() (domain, role string) {
	domain, role, _ = strings.Cut(i.Type, ":")
	return domain, role
}

// DisplayName returns the human-readable name. The format stores "-" when
// the display name equals the object name.
func (i Item) DisplayName() string {
	if i.Dispname == "-" {
		return i.Name
	}
	return i.Dispname
}

// Inventory is a parsed object inventory.
type Inventory struct {
	// ProjectName and Version come from the inventory header.
	ProjectName string
	Version     string
	// URI is the location the inventory was loaded from, after following
	// redirects. Item locations are resolved against it.
	URI   string
	Items []Item
}

// Loader fetches and parses an inventory from a URL.
type Loader interface {
	Load(ctx context.Context, uri string) (*Inventory, error)
}

// joinURL resolves ref against base. On unparsable input the reference is
// returned unchanged, matching the lenient handling of the format.
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
