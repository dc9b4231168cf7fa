package main

import (
	"bytes"
	"io/ioutil"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSettings_Validate(t *testing.T) {
	tests := []struct {
		name    string
		s       settings
		wantErr string
	}{
		{
			name: "Memory",
			s:    settings{Memory: true, LogLevel: "warn"},
		},
		{
			name: "State",
			s:    settings{State: "/tmp/state.db", LogLevel: "debug", Vars: []string{"a=b"}},
		},
		{
			name:    "NoBackend",
			s:       settings{LogLevel: "warn"},
			wantErr: "--state must be set when --memory is not used",
		},
		{
			name:    "LogLevel",
			s:       settings{Memory: true, LogLevel: "loud"},
			wantErr: `invalid --log-level "loud"`,
		},
		{
			name:    "Var",
			s:       settings{Memory: true, LogLevel: "info", Vars: []string{"a=b", "c"}},
			wantErr: `invalid --var "c", expected name=value`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.s.validate()
			var got string
			if err != nil {
				got = err.Error()
			}
			if got != tt.wantErr {
				t.Errorf("validate() error = %q, want %q", got, tt.wantErr)
			}
		})
	}
}

func TestConfirm(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"y\n", true},
		{"YES\n", true},
		{"n\n", false},
		{"\n", false},
		{"", false},
	}
	for _, tt := range tests {
		var out bytes.Buffer
		got, err := confirm(strings.NewReader(tt.input), &out)
		if err != nil {
			t.Fatalf("confirm(%q) error = %v", tt.input, err)
		}
		if got != tt.want {
			t.Errorf("confirm(%q) = %t, want %t", tt.input, got, tt.want)
		}
		if out.String() != "Do you want to continue? [y/N] " {
			t.Errorf("confirm() prompt = %q", out.String())
		}
	}
}

func TestImportCommand(t *testing.T) {
	file := filepath.Join(t.TempDir(), "config.yaml")
	src := `
tenants:
  - name: ${tenant}
    defaultCapacityRule: rule
scripts:
  - tenant: ${tenant}
    name: rule
    type: CapacityRule
`
	if err := ioutil.WriteFile(file, []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}

	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs([]string{"import", "--memory", "--auto-approve", "--log-level", "error", "--var", "tenant=t1", file})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute() error = %v\n%s", err, errOut.String())
	}

	want := []string{
		"The following changes are going to be applied:",
		"  + Tenant [t1]",
		"  + Script [t1/rule]",
		"  ~ Tenant [t1]",
		"Plan: 2 to create, 1 to update, 0 to skip.",
		"3 operation(s) applied.",
	}
	got := strings.Split(strings.TrimSpace(out.String()), "\n")
	if diff := cmp.Diff(got, want); diff != "" {
		t.Errorf("output (-got, +want)\n%s", diff)
	}
}
