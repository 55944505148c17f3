// SPDX-License-Identifier: MIT
//
// File: builder.go
// Role: Stateless folding of k-paths into an order-k core.Graph.

package higherorder

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/honet/core"
	"github.com/katalvlaran/honet/kpath"
)

// Sentinel errors for graph construction.
var (
	// ErrOrderTooLow indicates a graph was requested for order < 2, where
	// k-grams no longer overlap.
	ErrOrderTooLow = errors.New("higherorder: graph construction requires order > 1")

	// ErrPathLength indicates a path whose node count is not order+1.
	ErrPathLength = errors.New("higherorder: path length does not match order")
)

// Build folds paths into a directed weighted order-k graph.
//
// For P = [n0 … n_order] the head key joins n0…n_{order-1}, the tail key
// joins n1…n_order, and P.Weight is added to head → tail. Vertices are
// exactly the distinct keys that occur as an endpoint; weights of paths
// mapping to the same ordered pair are summed onto one edge.
//
// Errors:
//   - ErrOrderTooLow if order < 2.
//   - ErrPathLength if any path does not have order+1 nodes.
//   - core errors (wrapped) for invalid weights.
//
// Complexity: O(P · order) for P paths.
func Build(paths []kpath.Path, order int, sep string) (*core.Graph, error) {
	if order < 2 {
		return nil, ErrOrderTooLow
	}

	g := core.NewGraph()
	for i, p := range paths {
		if len(p.Nodes) != order+1 {
			return nil, fmt.Errorf("%w: path %d has %d nodes, want %d", ErrPathLength, i, len(p.Nodes), order+1)
		}
		head := strings.Join(p.Nodes[:order], sep)
		tail := strings.Join(p.Nodes[1:], sep)
		if _, err := g.AddWeight(head, tail, p.Weight); err != nil {
			return nil, fmt.Errorf("higherorder: path %d (%s → %s): %w", i, head, tail, err)
		}
	}

	return g, nil
}
