package storage_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/confimport/confimport/object"
	"github.com/confimport/confimport/storage"
	"github.com/confimport/confimport/storage/kvbackend"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestKV(t *testing.T) {
	s := &storage.KV{Backend: &kvbackend.Memory{}}
	ctx := context.Background()

	// Empty
	got, err := s.List(ctx, object.KindTenant)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(got) != 0 {
		t.Errorf("List returned %d items, want zero\n%v", len(got), got)
	}

	_, err = s.Get(ctx, object.TenantRef("t1"))
	if !storage.IsNotFound(err) {
		t.Errorf("Get() non-existing error = %v, want not found", err)
	}

	rec1 := &object.Record{
		Ref:    object.TenantRef("t1"),
		ID:     1,
		Fields: map[string]interface{}{"name": "t1", "tenantDBID": json.Number("4")},
	}
	if err := s.Put(ctx, rec1); err != nil {
		t.Fatalf("Put() rec1 error = %v", err)
	}
	rec2 := &object.Record{
		Ref:    object.TenantRef("a/b"),
		ID:     2,
		Fields: map[string]interface{}{"name": "a/b"},
	}
	if err := s.Put(ctx, rec2); err != nil {
		t.Fatalf("Put() rec2 error = %v", err)
	}
	other := &object.Record{Ref: object.SkillRef("t1", "s"), ID: 3, Fields: map[string]interface{}{}}
	if err := s.Put(ctx, other); err != nil {
		t.Fatalf("Put() other error = %v", err)
	}

	one, err := s.Get(ctx, object.TenantRef("t1"))
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if diff := cmp.Diff(one, rec1); diff != "" {
		t.Errorf("Get() (-got, +want)\n%s", diff)
	}

	opts := []cmp.Option{
		cmpopts.SortSlices(func(a, b *object.Record) bool { return a.ID < b.ID }),
	}
	got, err = s.List(ctx, object.KindTenant)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if diff := cmp.Diff(got, []*object.Record{rec1, rec2}, opts...); diff != "" {
		t.Errorf("List() (-got, +want)\n%s", diff)
	}

	if err := s.Delete(ctx, object.TenantRef("nonexisting")); err == nil {
		t.Errorf("Delete() non-existing returned nil error")
	}
	if err := s.Delete(ctx, object.TenantRef("t1")); err != nil {
		t.Errorf("Delete() error = %v", err)
	}
	got, err = s.List(ctx, object.KindTenant)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if diff := cmp.Diff(got, []*object.Record{rec2}, opts...); diff != "" {
		t.Errorf("List() (-got, +want)\n%s", diff)
	}
}

func TestKV_NextID(t *testing.T) {
	s := &storage.KV{Backend: &kvbackend.Memory{}}
	ctx := context.Background()
	for want := int64(1); want <= 3; want++ {
		got, err := s.NextID(ctx)
		if err != nil {
			t.Fatalf("NextID() error = %v", err)
		}
		if got != want {
			t.Errorf("NextID() got = %d, want = %d", got, want)
		}
	}
}
