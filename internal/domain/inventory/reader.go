package inventory

import (
	"bufio"
	"compress/zlib"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
)

const (
	headerV1 = "# Sphinx inventory version 1"
	headerV2 = "# Sphinx inventory version 2"
)

// Names may contain embedded spaces, hence the lazy first group.
var v2LineRE = regexp.MustCompile(`^(.+?)\s+(\S+)\s+(-?\d+)\s+?(\S*)\s+(.*)$`)

// Locations may contain embedded spaces; only the first two fields split.
var v1LineRE = regexp.MustCompile(`^(\S+)\s+(\S+)\s+(.+)$`)

// Load parses an inventory from the stream. Item locations are resolved
// against uri.
func Load(r io.Reader, uri string) (*Inventory, error) {
	br := bufio.NewReader(r)

	header, err := readLine(br)
	if err != nil {
		return nil, fmt.Errorf("failed to read inventory header: %w", err)
	}

	switch header {
	case headerV1:
		return loadV1(br, uri)
	case headerV2:
		return loadV2(br, uri)
	default:
		return nil, fmt.Errorf("invalid inventory header: %s", header)
	}
}

func loadV1(br *bufio.Reader, uri string) (*Inventory, error) {
	inv, err := readProjectHeader(br, uri)
	if err != nil {
		return nil, err
	}

	scanner := bufio.NewScanner(br)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), " \t\r\n")
		m := v1LineRE.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		name, objType, location := m[1], m[2], m[3]
		location = joinURL(uri, location)
		// version 1 did not add anchors to the location
		if objType == "mod" {
			objType = "py:module"
			location += "#module-" + name
		} else {
			objType = "py:" + objType
			location += "#" + name
		}
		inv.Items = append(inv.Items, Item{
			Name:     name,
			Type:     objType,
			Priority: 1,
			Location: location,
			Dispname: "-",
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read inventory body: %w", err)
	}

	return inv, nil
}

func loadV2(br *bufio.Reader, uri string) (*Inventory, error) {
	inv, err := readProjectHeader(br, uri)
	if err != nil {
		return nil, err
	}

	compression, err := readLine(br)
	if err != nil {
		return nil, fmt.Errorf("failed to read compression header: %w", err)
	}
	if !strings.Contains(compression, "zlib") {
		return nil, fmt.Errorf("invalid inventory header (not compressed): %s", compression)
	}

	zr, err := zlib.NewReader(br)
	if err != nil {
		return nil, fmt.Errorf("failed to open compressed inventory body: %w", err)
	}
	defer func() {
		_ = zr.Close()
	}()

	// Sphinx 1.1 and below wrote a duplicate entry for every Python module;
	// the first one is the correct one.
	seenModules := map[string]bool{}

	scanner := bufio.NewScanner(zr)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), " \t\r")
		m := v2LineRE.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		name, objType, prioStr, location, dispname := m[1], m[2], m[3], m[4], m[5]

		if !strings.Contains(objType, ":") {
			// wrong type value; type should be in the form "{domain}:{objtype}"
			continue
		}
		if objType == "py:module" {
			if seenModules[name] {
				continue
			}
			seenModules[name] = true
		}

		prio, err := strconv.Atoi(prioStr)
		if err != nil {
			continue
		}

		if strings.HasSuffix(location, "$") {
			location = location[:len(location)-1] + name
		}
		location = joinURL(uri, location)

		inv.Items = append(inv.Items, Item{
			Name:     name,
			Type:     objType,
			Priority: prio,
			Location: location,
			Dispname: dispname,
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read compressed inventory body: %w", err)
	}

	return inv, nil
}

// readProjectHeader consumes the "# Project:" and "# Version:" header lines.
func readProjectHeader(br *bufio.Reader, uri string) (*Inventory, error) {
	projLine, err := readLine(br)
	if err != nil {
		return nil, fmt.Errorf("failed to read project header: %w", err)
	}
	versionLine, err := readLine(br)
	if err != nil {
		return nil, fmt.Errorf("failed to read version header: %w", err)
	}

	return &Inventory{
		ProjectName: strings.TrimPrefix(projLine, "# Project: "),
		Version:     strings.TrimPrefix(versionLine, "# Version: "),
		URI:         uri,
	}, nil
}

func readLine(br *bufio.Reader) (string, error) {
	line, err := br.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
