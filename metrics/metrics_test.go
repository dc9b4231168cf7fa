package metrics

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMetrics(t *testing.T) {
	m := New()

	m.Operation("create")
	m.Operation("create")
	m.Operation("update")
	m.Request("save", time.Now(), nil)
	m.Request("save", time.Now(), errors.New("fail"))
	m.CacheLookup(true)
	m.Phase("plan")()

	tests := []struct {
		name string
		got  float64
		want float64
	}{
		{"create", testutil.ToFloat64(m.operations.WithLabelValues("create")), 2},
		{"update", testutil.ToFloat64(m.operations.WithLabelValues("update")), 1},
		{"save success", testutil.ToFloat64(m.requests.WithLabelValues("save", "success")), 1},
		{"save error", testutil.ToFloat64(m.requests.WithLabelValues("save", "error")), 1},
		{"cache hit", testutil.ToFloat64(m.cacheLookups.WithLabelValues("hit")), 1},
		{"cache miss", testutil.ToFloat64(m.cacheLookups.WithLabelValues("miss")), 0},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s: got = %v, want = %v", tt.name, tt.got, tt.want)
		}
	}
}

func TestMetrics_Nil(t *testing.T) {
	var m *Metrics
	m.Operation("create")
	m.Request("resolve", time.Now(), nil)
	m.CacheLookup(false)
	m.Phase("plan")()
	if err := m.WriteFile("unused"); err != nil {
		t.Errorf("WriteFile() error = %v", err)
	}
}

func TestMetrics_WriteFile(t *testing.T) {
	m := New()
	m.Operation("create")

	file := filepath.Join(t.TempDir(), "confimport.prom")
	if err := m.WriteFile(file); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	data, err := os.ReadFile(file)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `confimport_operations_total{type="create"} 1`) {
		t.Errorf("metrics file does not contain operation count:\n%s", data)
	}
}
