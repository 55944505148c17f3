// SPDX-License-Identifier: MIT

package kpath

import (
	"sort"
	"strings"
)

// Path is a finished time-respecting path of order+1 nodes with its weight.
// Paths returned by Extract must be treated as immutable.
type Path struct {
	// Nodes lists the visited node IDs; no two consecutive entries are equal.
	Nodes []string

	// Weight is the probability mass carried by this path (> 0).
	Weight float64
}

// Len returns the number of links in the path (len(Nodes)-1).
func (p Path) Len() int { return len(p.Nodes) - 1 }

// Key joins the node sequence with sep.
func (p Path) Key(sep string) string { return strings.Join(p.Nodes, sep) }

// Aggregate sums path weights per node sequence key.
func Aggregate(paths []Path, sep string) map[string]float64 {
	out := make(map[string]float64, len(paths))
	for _, p := range paths {
		out[p.Key(sep)] += p.Weight
	}

	return out
}

// SortedKeys returns the keys of an Aggregate result in ascending order.
func SortedKeys(agg map[string]float64) []string {
	keys := make([]string, 0, len(agg))
	for k := range agg {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys
}
