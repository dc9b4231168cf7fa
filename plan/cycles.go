package plan

import (
	"context"

	"github.com/confimport/confimport/object"
	"github.com/pkg/errors"
)

// BreakCycles removes dependency cycles from g. If g has no cycles, it is
// returned as is.
//
// Members of a cycle are classified first. Objects that already exist need
// no creation order, so their outgoing edges are dropped. In every cycle
// that remains, each object with a bare form is split into a bare create and
// a deferred full update: objects that depended on it only need the bare
// create, and the full update runs after all of its dependencies.
//
// A *DependencyCycleError is returned if cycles remain after that.
func BreakCycles(ctx context.Context, g *Graph, repo Repository) (*Graph, error) {
	cycles := g.cycles()
	if len(cycles) == 0 {
		return g, nil
	}

	for _, c := range cycles {
		for _, op := range c {
			if err := op.Classify(ctx, repo); err != nil {
				return nil, err
			}
		}
	}
	g, err := BuildGraph(g.Operations())
	if err != nil {
		return nil, errors.Wrap(err, "rebuild graph")
	}
	cycles = g.cycles()
	if len(cycles) == 0 {
		return g, nil
	}

	inCycle := make(map[*Operation]bool)
	for _, c := range cycles {
		for _, op := range c {
			inCycle[op] = true
		}
	}
	ops := make([]*Operation, 0, len(g.Operations())+len(inCycle))
	for _, op := range g.Operations() {
		if !inCycle[op] {
			ops = append(ops, op)
			continue
		}
		bare := op.Object.CloneBare()
		if bare == nil {
			ops = append(ops, op)
			continue
		}
		if err := checkBare(op.Object, bare); err != nil {
			return nil, err
		}
		ops = append(ops, newBareOperation(bare), newDeferredOperation(op.Object))
	}

	g, err = BuildGraph(ops)
	if err != nil {
		return nil, errors.Wrap(err, "rebuild graph")
	}
	if cycles = g.cycles(); len(cycles) > 0 {
		return nil, cycleError(cycles)
	}
	return g, nil
}

// checkBare verifies that a bare form can stand in for the full object: it
// must have the same identity and may not add dependencies.
func checkBare(full, bare object.Object) error {
	ref := full.Reference()
	if bare.Reference() != ref {
		return &BareCloneError{Reference: ref, Reason: "reference differs: " + bare.Reference().ConsoleString()}
	}
	deps := make(map[object.Reference]bool)
	for _, d := range full.Dependencies() {
		deps[d] = true
	}
	for _, d := range bare.Dependencies() {
		if !deps[d] {
			return &BareCloneError{Reference: ref, Reason: "adds dependency " + d.ConsoleString()}
		}
	}
	return nil
}

func cycleError(cycles [][]*Operation) *DependencyCycleError {
	err := &DependencyCycleError{}
	for _, c := range cycles {
		refs := make([]object.Reference, 0, len(c))
		seen := make(map[object.Reference]bool)
		for _, op := range c {
			if ref := op.Reference(); !seen[ref] {
				seen[ref] = true
				refs = append(refs, ref)
			}
		}
		err.Cycles = append(err.Cycles, refs)
	}
	return err
}
