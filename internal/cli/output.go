// SPDX-License-Identifier: MIT

package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/mat"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/honet/converters"
	"github.com/katalvlaran/honet/core"
	"github.com/katalvlaran/honet/kpath"
)

// PathReport is one extracted k-path.
type PathReport struct {
	Nodes  []string `json:"nodes" yaml:"nodes"`
	Weight float64  `json:"weight" yaml:"weight"`
}

// EdgeReport is one weighted edge of an aggregate network.
type EdgeReport struct {
	From   string  `json:"from" yaml:"from"`
	To     string  `json:"to" yaml:"to"`
	Weight float64 `json:"weight" yaml:"weight"`
}

// GraphReport describes an aggregate network.
type GraphReport struct {
	Model    string       `json:"model" yaml:"model"` // "bounded" | "null"
	Order    int          `json:"order" yaml:"order"`
	Delta    int64        `json:"delta" yaml:"delta"`
	Vertices []string     `json:"vertices" yaml:"vertices"`
	Edges    []EdgeReport `json:"edges" yaml:"edges"`
}

// textWriter renders a report in the human-readable format.
type textWriter interface {
	writeText(w io.Writer) error
}

// writeOutput encodes v to w in the given format.
func writeOutput(w io.Writer, format string, v textWriter) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return v.writeText(w)
	}
}

// PathsReport lists the k-paths of a stream.
type PathsReport struct {
	Order int          `json:"order" yaml:"order"`
	Delta int64        `json:"delta" yaml:"delta"`
	Count int          `json:"count" yaml:"count"`
	Paths []PathReport `json:"paths" yaml:"paths"`

	sep string
}

func newPathsReport(order int, delta int64, sep string, paths []kpath.Path) *PathsReport {
	r := &PathsReport{Order: order, Delta: delta, Count: len(paths), Paths: make([]PathReport, len(paths)), sep: sep}
	for i, p := range paths {
		r.Paths[i] = PathReport{Nodes: p.Nodes, Weight: p.Weight}
	}
	return r
}

func (r *PathsReport) writeText(w io.Writer) error {
	for _, p := range r.Paths {
		if _, err := fmt.Fprintf(w, "%s\t%.6f\n", strings.Join(p.Nodes, r.sep), p.Weight); err != nil {
			return err
		}
	}
	return nil
}

func newEdgeReports(g *core.Graph) []EdgeReport {
	edges := g.Edges()
	out := make([]EdgeReport, len(edges))
	for i, e := range edges {
		out[i] = EdgeReport{From: e.From, To: e.To, Weight: e.Weight}
	}
	return out
}

func newGraphReport(model string, order int, delta int64, g *core.Graph) *GraphReport {
	return &GraphReport{
		Model:    model,
		Order:    order,
		Delta:    delta,
		Vertices: g.Vertices(),
		Edges:    newEdgeReports(g),
	}
}

func (r *GraphReport) writeText(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "model: %s\norder: %d\ndelta: %d\nvertices: %d\nedges: %d\n",
		r.Model, r.Order, r.Delta, len(r.Vertices), len(r.Edges)); err != nil {
		return err
	}
	for _, e := range r.Edges {
		if _, err := fmt.Fprintf(w, "%s -> %s %.6f\n", e.From, e.To, e.Weight); err != nil {
			return err
		}
	}
	return nil
}

// MatrixReport is the weighted adjacency matrix of an aggregate network.
// Rows[i][j] is the weight of Vertices[i] → Vertices[j].
type MatrixReport struct {
	Model    string      `json:"model" yaml:"model"`
	Order    int         `json:"order" yaml:"order"`
	Delta    int64       `json:"delta" yaml:"delta"`
	Vertices []string    `json:"vertices" yaml:"vertices"`
	Rows     [][]float64 `json:"rows" yaml:"rows"`
}

func newMatrixReport(model string, order int, delta int64, g *core.Graph) (*MatrixReport, error) {
	m, ix, err := converters.AdjacencyMatrix(g)
	if err != nil {
		return nil, err
	}

	r := &MatrixReport{Model: model, Order: order, Delta: delta, Vertices: make([]string, ix.Len()), Rows: make([][]float64, ix.Len())}
	for i := range r.Vertices {
		r.Vertices[i], _ = ix.Name(int64(i))
		r.Rows[i] = mat.Row(nil, i, m)
	}
	return r, nil
}

func (r *MatrixReport) writeText(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "model: %s\norder: %d\ndelta: %d\n", r.Model, r.Order, r.Delta); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "\t%s\n", strings.Join(r.Vertices, "\t")); err != nil {
		return err
	}
	for i, row := range r.Rows {
		cells := make([]string, len(row))
		for j, v := range row {
			cells[j] = strconv.FormatFloat(v, 'f', 6, 64)
		}
		if _, err := fmt.Fprintf(w, "%s\t%s\n", r.Vertices[i], strings.Join(cells, "\t")); err != nil {
			return err
		}
	}
	return nil
}
