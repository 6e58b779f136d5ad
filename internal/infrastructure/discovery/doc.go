// Package discovery implements inventory discovery against live services:
// the PyPI JSON API, the Read The Docs API, and plain probing of
// documentation sites for objects.inv files.
package discovery
