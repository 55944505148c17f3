package core_test

import (
	"fmt"

	"github.com/katalvlaran/honet/core"
)

// ExampleGraph_AddWeight shows how repeated contributions fold onto one edge.
func ExampleGraph_AddWeight() {
	g := core.NewGraph()

	// Two contributions for a,b → b,c and one for b,c → c,d.
	_, _ = g.AddWeight("a,b", "b,c", 0.5)
	_, _ = g.AddWeight("a,b", "b,c", 0.5)
	_, _ = g.AddWeight("b,c", "c,d", 1)

	fmt.Println(g.Vertices())
	for _, e := range g.Edges() {
		fmt.Printf("%s -> %s %.1f\n", e.From, e.To, e.Weight)
	}

	// Output:
	// [a,b b,c c,d]
	// a,b -> b,c 1.0
	// b,c -> c,d 1.0
}
