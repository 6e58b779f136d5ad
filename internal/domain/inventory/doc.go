// Package inventory implements the Sphinx object inventory format
// (objects.inv). Both the uncompressed version 1 format and the
// zlib-compressed version 2 format are read; version 2 is written.
package inventory
