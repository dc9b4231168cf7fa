package object

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"
)

type resolverFunc map[Reference]int64

func (r resolverFunc) ResolveID(_ context.Context, ref Reference) (int64, bool, error) {
	id, ok := r[ref]
	return id, ok, nil
}

func TestCreate(t *testing.T) {
	ids := resolverFunc{
		TenantRef("t1"):          1,
		SkillRef("t1", "french"): 7,
		personFolder.Reference(): 9,
	}
	p := &Person{
		Tenant:     "t1",
		EmployeeID: "e1",
		UserName:   "jdoe",
		Agent:      boolPtr(false),
		Skills:     map[string]int{"french": 5},
		Common:     Common{Folder: personFolder},
	}

	got, err := p.Create(context.Background(), ids)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	want := &Record{
		Ref: PersonRef("t1", "e1"),
		Fields: map[string]interface{}{
			"employeeId": "e1",
			"tenant":     "t1",
			"tenantDBID": int64(1),
			"userName":   "jdoe",
			"agent":      false,
			"skillLevels": map[string]interface{}{
				"french": map[string]interface{}{"skillDBID": int64(7), "level": 5},
			},
			"folder":     "Tenant/t1:Person:Agents",
			"folderDBID": int64(9),
		},
	}
	if diff := cmp.Diff(got, want); diff != "" {
		t.Errorf("Create() (-got, +want)\n%s", diff)
	}
}

func TestCreate_Unresolved(t *testing.T) {
	s := &Switch{Tenant: "t1", Name: "sw", PhysicalSwitch: "psw"}
	_, err := s.Create(context.Background(), resolverFunc{TenantRef("t1"): 1})

	var unresolved *UnresolvedIDError
	if !errors.As(err, &unresolved) {
		t.Fatalf("Create() error = %v, want UnresolvedIDError", err)
	}
	want := &UnresolvedIDError{Field: "physicalSwitch", Reference: PhysicalSwitchRef("psw")}
	if diff := cmp.Diff(unresolved, want); diff != "" {
		t.Errorf("Error (-got, +want)\n%s", diff)
	}
}

func TestUpdate(t *testing.T) {
	ids := resolverFunc{TenantRef("t1"): 1, ScriptRef("t1", "rule"): 4}
	existing := &Record{
		Ref: TenantRef("t1"),
		ID:  1,
		Fields: map[string]interface{}{
			"name":             "t1",
			"chargeableNumber": "555",
		},
	}
	tenant := &Tenant{Name: "t1", DefaultCapacityRule: "rule"}

	got, err := tenant.Update(context.Background(), ids, existing)
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	want := &Record{
		Ref: TenantRef("t1"),
		ID:  1,
		Fields: map[string]interface{}{
			"name":                    "t1",
			"chargeableNumber":        "555",
			"defaultCapacityRule":     "t1/rule",
			"defaultCapacityRuleDBID": int64(4),
		},
	}
	if diff := cmp.Diff(got, want); diff != "" {
		t.Errorf("Update() (-got, +want)\n%s", diff)
	}
	if _, ok := existing.Fields["defaultCapacityRule"]; ok {
		t.Error("Update() modified the existing record")
	}
}

func TestUpdate_NoExisting(t *testing.T) {
	_, err := (&Skill{Tenant: "t1", Name: "s"}).Update(context.Background(), resolverFunc{}, nil)
	if err == nil {
		t.Fatal("Update() error = nil")
	}
}

func TestRecord_Clone(t *testing.T) {
	orig := &Record{
		Ref:    TenantRef("t1"),
		ID:     3,
		Fields: map[string]interface{}{"userProperties": map[string]interface{}{"a": map[string]interface{}{"k": "v"}}},
	}
	clone := orig.Clone()
	clone.Fields["userProperties"].(map[string]interface{})["a"].(map[string]interface{})["k"] = "changed"

	if diff := cmp.Diff(orig.Fields["userProperties"], map[string]interface{}{"a": map[string]interface{}{"k": "v"}}); diff != "" {
		t.Errorf("Clone() shares state with original (-got, +want)\n%s", diff)
	}
}
