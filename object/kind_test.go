package object

import (
	"sort"
	"strings"
	"testing"
)

func TestParseKind(t *testing.T) {
	tests := []struct {
		input   string
		want    Kind
		wantErr string
	}{
		{"Tenant", KindTenant, ""},
		{"dn", KindDN, ""},
		{"physicalswitch", KindPhysicalSwitch, ""},
		{"Tennant", KindUnknown, `Did you mean "Tenant"?`},
		{"xyz", KindUnknown, `unknown kind "xyz"`},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseKind(tt.input)
			if tt.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
					t.Fatalf("ParseKind() error = %v, want %q", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseKind() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("ParseKind() got = %v, want = %v", got, tt.want)
			}
		})
	}
}

func TestKindOrderMatchesNames(t *testing.T) {
	kinds := Kinds()
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = k.String()
	}
	if !sort.StringsAreSorted(names) {
		t.Errorf("Kinds are not declared in name order: %v", names)
	}
}

func TestKindImportable(t *testing.T) {
	if KindApplication.Importable() {
		t.Error("Application should not be importable")
	}
	if !KindTenant.Importable() {
		t.Error("Tenant should be importable")
	}
}
