// Package projects defines the domain entity and contracts for indexed
// documentation projects. A project is identified by the canonical URL of its
// Sphinx object inventory.
package projects
