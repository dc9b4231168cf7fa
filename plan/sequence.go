package plan

import (
	"sort"

	"gonum.org/v1/gonum/graph"
)

// Sequence returns the operations of an acyclic graph in dependency order.
// When several operations are ready, the one that sorts first by reference
// is picked, so the result only depends on the graph.
func Sequence(g *Graph) ([]*Operation, error) {
	pending := make(map[int64]int, len(g.ops))
	var ready []*Operation
	for _, op := range g.ops {
		n := len(graph.NodesOf(g.To(g.nodes[op].id)))
		pending[g.nodes[op].id] = n
		if n == 0 {
			ready = append(ready, op)
		}
	}

	out := make([]*Operation, 0, len(g.ops))
	for len(ready) > 0 {
		sort.Slice(ready, func(i, j int) bool { return opLess(ready[i], ready[j]) })
		op := ready[0]
		ready = ready[1:]
		out = append(out, op)

		succ := g.From(g.nodes[op].id)
		for succ.Next() {
			id := succ.Node().ID()
			pending[id]--
			if pending[id] == 0 {
				ready = append(ready, succ.Node().(*node).op)
			}
		}
	}

	if len(out) != len(g.ops) {
		return nil, cycleError(g.cycles())
	}
	return out, nil
}
