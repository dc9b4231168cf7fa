package plan

import (
	"context"
	"strings"
	"testing"

	"github.com/confimport/confimport/object"
	"github.com/confimport/confimport/repository/repotest"
	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"
	"go.uber.org/multierr"
	"go.uber.org/zap/zaptest"
)

func TestValidator_ReportsAllMissingDependencies(t *testing.T) {
	store := &repotest.Store{}
	store.SeedRefs(object.TenantRef("t1"))
	cfg := mustConfig(t,
		&object.Switch{Tenant: "t1", Name: "sw1", PhysicalSwitch: "p1"},
		&object.Switch{Tenant: "t1", Name: "sw2", PhysicalSwitch: "p2"},
		&object.Skill{Tenant: "t9", Name: "s"},
	)

	v := &Validator{Logger: zaptest.NewLogger(t)}
	_, err := v.Validate(context.Background(), cfg, store)

	var e *UnresolvedReferenceError
	if !errors.As(err, &e) {
		t.Fatalf("Validate() error = %v, want UnresolvedReferenceError", err)
	}
	want := []MissingDependency{
		{Object: object.SkillRef("t9", "s"), Reference: object.TenantRef("t9")},
		{Object: object.SwitchRef("t1", "sw1"), Reference: object.PhysicalSwitchRef("p1")},
		{Object: object.SwitchRef("t1", "sw2"), Reference: object.PhysicalSwitchRef("p2")},
	}
	if diff := cmp.Diff(e.Missing, want); diff != "" {
		t.Errorf("Missing (-got, +want)\n%s", diff)
	}

	wantMsg := strings.Join([]string{
		"Missing dependencies:",
		"  - Skill [t9/s]",
		"    - Tenant [t9]",
		"  - Switch [t1/sw1]",
		"    - PhysicalSwitch [p1]",
		"  - Switch [t1/sw2]",
		"    - PhysicalSwitch [p2]",
	}, "\n")
	if diff := cmp.Diff(e.Error(), wantMsg); diff != "" {
		t.Errorf("Error() (-got, +want)\n%s", diff)
	}
}

func TestValidator_CombinedErrors(t *testing.T) {
	store := &repotest.Store{}
	cfg := mustConfig(t,
		&object.Tenant{Name: "t1"},
		&object.DN{Tenant: "t1", Switch: "sw", Number: "1", Type: "Extension"},
	)

	v := &Validator{}
	_, err := v.Validate(context.Background(), cfg, store)
	errs := multierr.Errors(err)
	if len(errs) != 2 {
		t.Fatalf("Validate() got %d errors, want 2: %v", len(errs), err)
	}
	var unresolved *UnresolvedReferenceError
	if !errors.As(errs[0], &unresolved) {
		t.Errorf("errs[0] = %v, want UnresolvedReferenceError", errs[0])
	}
	var mandatory *MandatoryPropertiesError
	if !errors.As(errs[1], &mandatory) {
		t.Fatalf("errs[1] = %v, want MandatoryPropertiesError", errs[1])
	}
	want := "Missing properties:\n  - DN [t1/sw/1 (Extension)]\n    - routeType"
	if got := mandatory.Error(); got != want {
		t.Errorf("Error() got = %q, want = %q", got, want)
	}
}

func TestValidator_ExistingObjects(t *testing.T) {
	store := &repotest.Store{}
	store.Seed(&object.Record{
		Ref:    object.PhysicalSwitchRef("p1"),
		Fields: map[string]interface{}{"type": "SIPSwitch"},
	})
	cfg := mustConfig(t,
		&object.PhysicalSwitch{Name: "p1", Type: "Avaya"},
		&object.Switch{Tenant: "t1", Name: "sw1", PhysicalSwitch: "p1"},
		&object.Switch{Tenant: "t1", Name: "sw2", PhysicalSwitch: "p1"},
		// Created, so the missing type is not reported as unchangeable.
		&object.Script{Tenant: "t1", Name: "rule", Type: "CapacityRule"},
		&object.Tenant{Name: "t1"},
	)

	v := &Validator{Logger: zaptest.NewLogger(t)}
	res, err := v.Validate(context.Background(), cfg, store)
	if err != nil {
		t.Fatalf("Validate() error = %v", err)
	}

	want := []UnchangeableProperties{{Object: object.PhysicalSwitchRef("p1"), Fields: []string{"type"}}}
	if diff := cmp.Diff(res.Unchangeable, want); diff != "" {
		t.Errorf("Unchangeable (-got, +want)\n%s", diff)
	}
	if got := UnchangeableReport(res.Unchangeable); !strings.HasPrefix(got, "Unchangeable properties:\n  - PhysicalSwitch [p1]") {
		t.Errorf("UnchangeableReport() = %q", got)
	}

	// Every reference is resolved once.
	resolved := make(map[object.Reference]int)
	for _, e := range store.Events.Filter("Resolve") {
		resolved[e.Ref]++
	}
	for ref, n := range resolved {
		if n != 1 {
			t.Errorf("%v resolved %d times", ref, n)
		}
	}
	if rec, ok := res.Resolved[object.PhysicalSwitchRef("p1")]; !ok || rec == nil {
		t.Errorf("Resolved[p1] = %v, %t", rec, ok)
	}
	if rec, ok := res.Resolved[object.TenantRef("t1")]; !ok || rec != nil {
		t.Errorf("Resolved[t1] = %v, %t; want nil, true", rec, ok)
	}
}
