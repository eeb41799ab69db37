package objmap

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestMerge(t *testing.T) {
	obj := mustObject(t, `{"a":1,"b":2}`)
	if err := obj.Merge(map[string]any{"b": 20, "c": 3}); err != nil {
		t.Fatal(err)
	}
	want := map[string]any{"a": 1, "b": 20, "c": 3}
	if d := cmp.Diff(want, obj.PlainValue()); d != "" {
		t.Errorf("after Merge (-want +got):\n%s", d)
	}
}

func TestMergeView(t *testing.T) {
	obj := mustObject(t, `{"a":1}`)
	other := mustObject(t, `{"b":2}`)
	if err := obj.Merge(other); err != nil {
		t.Fatal(err)
	}
	if v, _ := obj.Get("b"); v != 2 {
		t.Errorf("Get(b) = %v", v)
	}
	// merged content is copied, not aliased
	if err := other.Set("b", 3); err != nil {
		t.Fatal(err)
	}
	if v, _ := obj.Get("b"); v != 2 {
		t.Errorf("merge aliased its source: %v", v)
	}
}

func TestMergeShallow(t *testing.T) {
	obj := mustObject(t, `{"sub":{"keep":1}}`)
	if err := obj.Merge(map[string]any{"sub": map[string]any{"new": 2}}); err != nil {
		t.Fatal(err)
	}
	// top-level keys overwrite whole values
	want := map[string]any{"sub": map[string]any{"new": 2}}
	if d := cmp.Diff(want, obj.PlainValue()); d != "" {
		t.Errorf("after shallow Merge (-want +got):\n%s", d)
	}
}

func TestMergeNonObject(t *testing.T) {
	obj := mustObject(t, `{}`)
	if err := obj.Merge([]any{1}); !errors.Is(err, ErrType) {
		t.Errorf("Merge(array) error = %v, want ErrType", err)
	}
	if err := obj.Merge(42); !errors.Is(err, ErrType) {
		t.Errorf("Merge(scalar) error = %v, want ErrType", err)
	}
}

func TestMergePatch(t *testing.T) {
	obj := mustObject(t, `{"a":1,"b":2,"sub":{"x":1,"y":2}}`)
	err := obj.MergePatch([]byte(`{"b":null,"c":3,"sub":{"y":20}}`))
	if err != nil {
		t.Fatal(err)
	}
	want := map[string]any{
		"a":   1,
		"c":   3,
		"sub": map[string]any{"x": 1, "y": 20},
	}
	if d := cmp.Diff(want, obj.PlainValue()); d != "" {
		t.Errorf("after MergePatch (-want +got):\n%s", d)
	}
}

func TestMergePatchAliasing(t *testing.T) {
	obj := mustObject(t, `{"a":1}`)
	alias, err := New(obj, NoCopy())
	if err != nil {
		t.Fatal(err)
	}
	if err := obj.MergePatch([]byte(`{"a":2}`)); err != nil {
		t.Fatal(err)
	}
	if got := alias.GetPath("a", nil); got != 2 {
		t.Errorf("aliasing view sees %v after MergePatch, want 2", got)
	}
}

func TestMergePatchBadPatch(t *testing.T) {
	obj := mustObject(t, `{"a":1}`)
	if err := obj.MergePatch([]byte(`{"a":`)); err == nil {
		t.Errorf("MergePatch(truncated) = nil, want error")
	}
}

func TestMergeReadOnly(t *testing.T) {
	obj := mustObject(t, `{"a":1}`, ReadOnly())
	if err := obj.Merge(map[string]any{"b": 2}); !errors.Is(err, ErrReadOnly) {
		t.Errorf("Merge error = %v, want ErrReadOnly", err)
	}
	if err := obj.MergePatch([]byte(`{"b":2}`)); !errors.Is(err, ErrReadOnly) {
		t.Errorf("MergePatch error = %v, want ErrReadOnly", err)
	}
}
