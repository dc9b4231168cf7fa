package plan

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/confimport/confimport/object"
	"github.com/confimport/confimport/repository/repotest"
	"github.com/google/go-cmp/cmp"
)

func operations(cfg *object.Configuration) []*Operation {
	ops := make([]*Operation, 0, cfg.Len())
	for _, o := range cfg.Objects() {
		ops = append(ops, NewOperation(o))
	}
	return ops
}

func TestBuildGraph(t *testing.T) {
	cfg := mustConfig(t,
		&object.Tenant{Name: "t1"},
		&object.Switch{Tenant: "t1", Name: "sw", PhysicalSwitch: "external"},
		&object.DN{Tenant: "t1", Switch: "sw", Number: "1", Type: "Extension", RouteType: "Default"},
	)
	g, err := BuildGraph(operations(cfg))
	if err != nil {
		t.Fatalf("BuildGraph() error = %v", err)
	}

	deps := make(map[string][]string)
	for _, op := range g.Operations() {
		deps[op.Reference().ConsoleString()] = nil
		for _, d := range g.Dependencies(op) {
			deps[op.Reference().ConsoleString()] = append(deps[op.Reference().ConsoleString()], d.Reference().ConsoleString())
		}
	}
	want := map[string][]string{
		"Tenant [t1]":              nil,
		"Switch [t1/sw]":           {"Tenant [t1]"},
		"DN [t1/sw/1 (Extension)]": {"Switch [t1/sw]", "Tenant [t1]"},
	}
	if diff := cmp.Diff(deps, want); diff != "" {
		t.Errorf("Dependencies (-got, +want)\n%s", diff)
	}
}

func TestBuildGraph_SelfDependency(t *testing.T) {
	op := NewOperation(&testObject{
		Skill: &object.Skill{Tenant: "t1", Name: "a"},
		deps:  []object.Reference{object.SkillRef("t1", "a")},
	})
	_, err := BuildGraph([]*Operation{op})
	if _, ok := err.(*DependencyCycleError); !ok {
		t.Fatalf("BuildGraph() error = %v, want DependencyCycleError", err)
	}
}

func TestBreakCycles_Acyclic(t *testing.T) {
	cfg := mustConfig(t,
		&object.Tenant{Name: "t1"},
		&object.Skill{Tenant: "t1", Name: "s"},
	)
	g, err := BuildGraph(operations(cfg))
	if err != nil {
		t.Fatal(err)
	}
	store := &repotest.Store{}
	got, err := BreakCycles(context.Background(), g, store)
	if err != nil {
		t.Fatalf("BreakCycles() error = %v", err)
	}
	if got != g {
		t.Error("BreakCycles() returned a new graph for an acyclic graph")
	}
	if len(store.Events) != 0 {
		t.Errorf("BreakCycles() made repository calls: %v", store.Events)
	}

	again, err := BreakCycles(context.Background(), got, store)
	if err != nil || again != got {
		t.Errorf("BreakCycles() second run = %p, %v; want %p, nil", again, err, got)
	}
}

func TestBreakCycles_Result(t *testing.T) {
	cfg := mustConfig(t,
		&object.Tenant{Name: "t1", DefaultCapacityRule: "rule"},
		&object.Script{Tenant: "t1", Name: "rule", Type: "CapacityRule"},
	)
	g, err := BuildGraph(operations(cfg))
	if err != nil {
		t.Fatal(err)
	}
	g, err = BreakCycles(context.Background(), g, &repotest.Store{})
	if err != nil {
		t.Fatalf("BreakCycles() error = %v", err)
	}

	var bare, script, full *Operation
	for _, op := range g.Operations() {
		switch {
		case op.Bare:
			bare = op
		case op.Deferred:
			full = op
		default:
			script = op
		}
	}
	if bare == nil || script == nil || full == nil {
		t.Fatalf("Operations() = %v", opStrings(g.Operations()))
	}
	if len(bare.Object.Dependencies()) != 0 {
		t.Errorf("bare tenant has dependencies %v", bare.Object.Dependencies())
	}
	for _, e := range []struct {
		op, dep *Operation
		want    bool
	}{
		{script, bare, true},
		{full, bare, true},
		{full, script, true},
		{bare, script, false},
		{script, full, false},
	} {
		if got := g.DependsOn(e.op, e.dep); got != e.want {
			t.Errorf("DependsOn(%v, %v) = %t, want %t", e.op, e.dep, got, e.want)
		}
	}
}

func TestSequence_TopologicalOrder(t *testing.T) {
	cfg := mustConfig(t,
		&object.Tenant{Name: "t1", DefaultCapacityRule: "rule"},
		&object.Script{Tenant: "t1", Name: "rule", Type: "CapacityRule"},
		&object.PhysicalSwitch{Name: "psw", Type: "SIPSwitch"},
		&object.Switch{Tenant: "t1", Name: "a", PhysicalSwitch: "psw", SwitchAccessCodes: []string{"b"}},
		&object.Switch{Tenant: "t1", Name: "b", PhysicalSwitch: "psw", SwitchAccessCodes: []string{"a"}},
		&object.DN{Tenant: "t1", Switch: "a", Number: "1", Type: "RoutingPoint", RouteType: "Default", Group: "g"},
		&object.AgentGroup{Tenant: "t1", Name: "g", RouteDNs: []object.DNKey{{Switch: "a", Number: "1", Type: "RoutingPoint"}}},
		&object.Person{Tenant: "t1", EmployeeID: "e1", UserName: "u"},
		&object.Role{Tenant: "t1", Name: "r", Members: []string{"e1"}},
	)
	g, err := BuildGraph(operations(cfg))
	if err != nil {
		t.Fatal(err)
	}
	g, err = BreakCycles(context.Background(), g, &repotest.Store{})
	if err != nil {
		t.Fatalf("BreakCycles() error = %v", err)
	}
	seq, err := Sequence(g)
	if err != nil {
		t.Fatalf("Sequence() error = %v", err)
	}
	if len(seq) != len(g.Operations()) {
		t.Fatalf("Sequence() returned %d operations, want %d", len(seq), len(g.Operations()))
	}

	index := make(map[*Operation]int)
	for i, op := range seq {
		index[op] = i
	}
	for _, op := range seq {
		for _, dep := range g.Dependencies(op) {
			if index[dep] >= index[op] {
				t.Errorf("%v (at %d) depends on %v (at %d)", op, index[op], dep, index[dep])
			}
		}
	}
}

func TestPlan_WriteDOT(t *testing.T) {
	planner := &Planner{Repository: &repotest.Store{}}
	p, err := planner.Plan(context.Background(), mustConfig(t,
		&object.Tenant{Name: "t1"},
		&object.Skill{Tenant: "t1", Name: "s"},
	))
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := p.WriteDOT(&buf); err != nil {
		t.Fatalf("WriteDOT() error = %v", err)
	}
	out := buf.String()
	for _, want := range []string{"digraph plan {", "Tenant [t1]", "Skill [t1/s]", "->"} {
		if !strings.Contains(out, want) {
			t.Errorf("WriteDOT() output does not contain %q:\n%s", want, out)
		}
	}
}
