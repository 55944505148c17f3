// SPDX-License-Identifier: MIT
//
// File: reader.go
// Role: Line-oriented edge-list reader producing a Network.

package temporal

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"
)

// ErrBadRecord indicates an edge-list line that cannot be parsed.
var ErrBadRecord = errors.New("temporal: malformed edge record")

// Recognized header names per column role.
var (
	sourceColumns = []string{"source", "node1", "from", "src"}
	targetColumns = []string{"target", "node2", "to", "dst"}
	timeColumns   = []string{"time", "timestamp", "t"}
)

// ReadOption configures ReadEdgeList.
type ReadOption func(c *readConfig)

type readConfig struct {
	delimiter string   // "" splits on runs of whitespace
	netOpts   []Option // forwarded to NewNetwork
}

// WithDelimiter sets the column delimiter. The default "" splits on runs of
// white space.
func WithDelimiter(d string) ReadOption {
	return func(c *readConfig) { c.delimiter = d }
}

// WithNetworkOptions forwards opts to the Network being built.
func WithNetworkOptions(opts ...Option) ReadOption {
	return func(c *readConfig) { c.netOpts = append(c.netOpts, opts...) }
}

// columns holds the field index of each role.
type columns struct{ source, target, time int }

var defaultColumns = columns{source: 0, target: 1, time: 2}

// ReadEdgeList parses "source target time" records from r.
//
// Blank lines and lines starting with '#' are skipped. The first remaining
// line is treated as a header when its time column does not parse as an
// integer; header names select column positions (see sourceColumns etc.).
// Extra columns are ignored.
//
// Errors wrap ErrBadRecord with the 1-based line number, or any error
// returned by Network.AddEdge or the underlying reader.
func ReadEdgeList(r io.Reader, opts ...ReadOption) (*Network, error) {
	cfg := readConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	net := NewNetwork(cfg.netOpts...)
	cols := defaultColumns
	first := true

	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := splitFields(line, cfg.delimiter)

		if first {
			first = false
			if hdr, ok := parseHeader(fields); ok {
				cols = hdr
				continue
			}
		}

		e, err := parseRecord(fields, cols)
		if err != nil {
			return nil, fmt.Errorf("temporal: line %d: %w", lineNo, err)
		}
		if err = net.AddEdge(e.Source, e.Target, e.Time); err != nil {
			return nil, fmt.Errorf("temporal: line %d: %w", lineNo, err)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("temporal: reading edge list: %w", err)
	}

	return net, nil
}

func splitFields(line, delimiter string) []string {
	if delimiter == "" {
		return strings.Fields(line)
	}
	parts := strings.Split(line, delimiter)
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}

	return parts
}

// parseHeader recognizes a header line. A line whose fields are all in the
// default positions but whose time field is numeric is a record, not a header.
func parseHeader(fields []string) (columns, bool) {
	if len(fields) > defaultColumns.time {
		if _, err := strconv.ParseInt(fields[defaultColumns.time], 10, 64); err == nil {
			return columns{}, false
		}
	}

	cols := columns{source: -1, target: -1, time: -1}
	for i, f := range fields {
		name := strings.ToLower(f)
		switch {
		case slices.Contains(sourceColumns, name) && cols.source < 0:
			cols.source = i
		case slices.Contains(targetColumns, name) && cols.target < 0:
			cols.target = i
		case slices.Contains(timeColumns, name) && cols.time < 0:
			cols.time = i
		}
	}
	if cols.source < 0 || cols.target < 0 || cols.time < 0 {
		return columns{}, false
	}

	return cols, true
}

func parseRecord(fields []string, cols columns) (Edge, error) {
	need := max(cols.source, cols.target, cols.time) + 1
	if len(fields) < need {
		return Edge{}, fmt.Errorf("%w: want at least %d fields, got %d", ErrBadRecord, need, len(fields))
	}
	t, err := strconv.ParseInt(fields[cols.time], 10, 64)
	if err != nil {
		return Edge{}, fmt.Errorf("%w: time %q is not an integer", ErrBadRecord, fields[cols.time])
	}

	return Edge{Source: fields[cols.source], Target: fields[cols.target], Time: t}, nil
}
