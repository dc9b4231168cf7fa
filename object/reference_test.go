package object

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestReference_Compare(t *testing.T) {
	refs := []Reference{
		TenantRef("b"),
		SwitchRef("t1", "sw2"),
		DNRef("t1", "sw", "1000", "Extension"),
		TenantRef("a"),
		SwitchRef("t1", "sw1"),
		AgentGroupRef("t1", "g"),
		SwitchRef("t0", "sw9"),
	}
	SortReferences(refs)
	want := []Reference{
		AgentGroupRef("t1", "g"),
		DNRef("t1", "sw", "1000", "Extension"),
		SwitchRef("t0", "sw9"),
		SwitchRef("t1", "sw1"),
		SwitchRef("t1", "sw2"),
		TenantRef("a"),
		TenantRef("b"),
	}
	if diff := cmp.Diff(refs, want); diff != "" {
		t.Errorf("SortReferences() (-got, +want)\n%s", diff)
	}
}

func TestReference_Equality(t *testing.T) {
	// Produced by different objects, the references must still be equal.
	dn := &DN{Tenant: "t1", Switch: "sw1", Number: "1000", Type: "Extension"}
	sw := &Switch{Tenant: "t1", Name: "sw1"}
	var found bool
	for _, dep := range dn.Dependencies() {
		if dep == sw.Reference() {
			found = true
		}
	}
	if !found {
		t.Errorf("DN dependencies %v do not contain %v", dn.Dependencies(), sw.Reference())
	}
}

func TestReference_String(t *testing.T) {
	tests := []struct {
		ref  Reference
		want string
	}{
		{TenantRef("t1"), "Tenant [t1]"},
		{ScriptRef("t1", "rule"), "Script [t1/rule]"},
		{DNRef("t1", "sw1", "1000", "Extension"), "DN [t1/sw1/1000 (Extension)]"},
		{
			FolderRef{Type: "Person", Owner: Owner{Type: "Tenant", Name: "t1"}, Path: []string{"Agents", "Team A"}}.Reference(),
			"Folder [Tenant/t1:Person:Agents/Team A]",
		},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.ref.ConsoleString(); got != tt.want {
				t.Errorf("ConsoleString() got = %q, want = %q", got, tt.want)
			}
		})
	}
}

func TestReference_Key(t *testing.T) {
	a := FolderRef{Type: "Person", Owner: Owner{Type: "Tenant", Name: "t1"}, Path: []string{"a/b"}}.Reference()
	b := FolderRef{Type: "Person", Owner: Owner{Type: "Tenant", Name: "t1"}, Path: []string{"a", "b"}}.Reference()
	if strings.Contains(a.Key(), "/") {
		t.Errorf("Key() %q contains a slash", a.Key())
	}
	if a.Key() != b.Key() {
		// Both produce the same path; equal references must have equal keys.
		t.Errorf("Key() differs for equal paths: %q != %q", a.Key(), b.Key())
	}
	c := Reference{Kind: KindSwitch, Tenant: "t:1", Name: "x"}
	d := Reference{Kind: KindSwitch, Tenant: "t", Parent: "1", Name: "x"}
	if c.Key() == d.Key() {
		t.Errorf("Key() collides for %v and %v", c, d)
	}
}
