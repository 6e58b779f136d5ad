package inventory

import (
	"compress/zlib"
	"fmt"
	"io"
	"regexp"
	"strings"
)

var whitespaceRE = regexp.MustCompile(`\s+`)

// Dump writes the inventory to w in the version 2 format.
func (inv *Inventory) Dump(w io.Writer) error {
	escape := func(s string) string {
		return whitespaceRE.ReplaceAllString(s, " ")
	}

	header := fmt.Sprintf("%s\n# Project: %s\n# Version: %s\n"+
		"# The remainder of this file is compressed using zlib.\n",
		headerV2, escape(inv.ProjectName), escape(inv.Version))
	if _, err := io.WriteString(w, header); err != nil {
		return fmt.Errorf("failed to write inventory header: %w", err)
	}

	zw, err := zlib.NewWriterLevel(w, zlib.BestCompression)
	if err != nil {
		return fmt.Errorf("failed to create compressor: %w", err)
	}

	for _, item := range inv.Items {
		location := item.Location
		// Shortens the inventory by as much as 25%.
		if strings.HasSuffix(location, item.Name) {
			location = location[:len(location)-len(item.Name)] + "$"
		}
		dispname := item.Dispname
		if dispname == item.Name {
			dispname = "-"
		}
		line := fmt.Sprintf("%s %s %d %s %s\n", item.Name, item.Type, item.Priority, location, dispname)
		if _, err := zw.Write([]byte(line)); err != nil {
			return fmt.Errorf("failed to write inventory entry: %w", err)
		}
	}

	if err := zw.Close(); err != nil {
		return fmt.Errorf("failed to flush compressed inventory: %w", err)
	}
	return nil
}
