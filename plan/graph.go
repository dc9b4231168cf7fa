package plan

import (
	"sort"

	"github.com/confimport/confimport/object"
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/encoding"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"
)

// Graph is a dependency graph of operations. An edge from a to b means a
// must be applied before b.
type Graph struct {
	*simple.DirectedGraph

	ops   []*Operation
	nodes map[*Operation]*node
}

type node struct {
	id int64
	op *Operation
}

func (n *node) ID() int64 { return n.id }

// DOTID implements dot.Node.
func (n *node) DOTID() string { return n.op.String() }

// Attributes implements encoding.Attributer.
func (n *node) Attributes() []encoding.Attribute {
	attrs := []encoding.Attribute{{Key: "shape", Value: "box"}}
	switch n.op.Type {
	case Create:
		attrs = append(attrs, encoding.Attribute{Key: "color", Value: "green"})
	case Update:
		attrs = append(attrs, encoding.Attribute{Key: "color", Value: "orange"})
	}
	if n.op.Bare {
		attrs = append(attrs, encoding.Attribute{Key: "style", Value: "dashed"})
	}
	return attrs
}

// BuildGraph creates a dependency graph for the given operations.
//
// An operation depends on the operation that provides each of its
// dependencies. Every operation provides its object's reference, except
// deferred operations and operations already classified as updates: objects
// that exist need no ordering. A deferred operation also depends on the bare
// create of the same object. Dependencies without a provider are external
// and add no edge.
//
// An error is returned if an operation depends on itself.
func BuildGraph(ops []*Operation) (*Graph, error) {
	sorted := make([]*Operation, len(ops))
	copy(sorted, ops)
	sort.SliceStable(sorted, func(i, j int) bool { return opLess(sorted[i], sorted[j]) })

	g := &Graph{
		DirectedGraph: simple.NewDirectedGraph(),
		nodes:         make(map[*Operation]*node, len(sorted)),
	}
	providers := make(map[object.Reference]*Operation)
	for i, op := range sorted {
		n := &node{id: int64(i), op: op}
		g.AddNode(n)
		g.ops = append(g.ops, op)
		g.nodes[op] = n
		if !op.Deferred && op.Type != Update {
			providers[op.Reference()] = op
		}
	}

	for _, op := range sorted {
		to := g.nodes[op]
		if op.Deferred {
			if bare, ok := providers[op.Reference()]; ok {
				g.SetEdge(g.NewEdge(g.nodes[bare], to))
			}
		}
		for _, dep := range op.Object.Dependencies() {
			if dep == op.Reference() {
				return nil, &DependencyCycleError{Cycles: [][]object.Reference{{dep}}}
			}
			p, ok := providers[dep]
			if !ok {
				continue
			}
			g.SetEdge(g.NewEdge(g.nodes[p], to))
		}
	}
	return g, nil
}

// Operations returns the operations in the graph, in reference order.
func (g *Graph) Operations() []*Operation {
	return g.ops
}

// DependsOn reports whether there is an edge from dep to op.
func (g *Graph) DependsOn(op, dep *Operation) bool {
	a, b := g.nodes[dep], g.nodes[op]
	if a == nil || b == nil {
		return false
	}
	return g.HasEdgeFromTo(a.id, b.id)
}

// Dependencies returns the operations op directly depends on, in reference
// order.
func (g *Graph) Dependencies(op *Operation) []*Operation {
	n := g.nodes[op]
	if n == nil {
		return nil
	}
	return g.sortedOps(g.To(n.id))
}

func (g *Graph) sortedOps(it graph.Nodes) []*Operation {
	var out []*Operation
	for it.Next() {
		out = append(out, it.Node().(*node).op)
	}
	sort.Slice(out, func(i, j int) bool { return opLess(out[i], out[j]) })
	return out
}

// cycles returns the operations in strongly connected components with more
// than one member. Members are in reference order, and components are
// ordered by their first member.
func (g *Graph) cycles() [][]*Operation {
	var out [][]*Operation
	for _, scc := range topo.TarjanSCC(g) {
		if len(scc) < 2 {
			continue
		}
		ops := make([]*Operation, len(scc))
		for i, n := range scc {
			ops[i] = n.(*node).op
		}
		sort.Slice(ops, func(i, j int) bool { return opLess(ops[i], ops[j]) })
		out = append(out, ops)
	}
	sort.Slice(out, func(i, j int) bool { return opLess(out[i][0], out[j][0]) })
	return out
}
