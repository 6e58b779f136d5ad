// Package discovery defines the contracts for finding Sphinx object
// inventories in the wild: guessing inventory URLs for PyPI packages and
// enumerating the package index.
package discovery
