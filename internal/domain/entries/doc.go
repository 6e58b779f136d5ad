// Package entries defines the domain entity and contracts for indexed
// inventory entries. An entry is a single documented object: a Sphinx domain
// and role, a name, and the URL where the object is documented.
package entries
