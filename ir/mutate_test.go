package ir

import (
	"testing"
)

func TestSetField(t *testing.T) {
	node := FromKeyVals([]KeyVal{
		{Key: FromString("a"), Val: FromInt(1)},
		{Key: FromString("b"), Val: FromInt(2)},
	})

	// replace keeps position
	node.SetField("a", FromInt(10))
	if node.Fields[0].String != "a" || *node.Values[0].Int64 != 10 {
		t.Errorf("replace moved or lost field a")
	}
	if len(node.Fields) != 2 {
		t.Errorf("replace changed field count to %d", len(node.Fields))
	}

	// append goes at the end
	node.SetField("c", FromInt(3))
	if node.Fields[2].String != "c" || *node.Values[2].Int64 != 3 {
		t.Errorf("append did not place c last")
	}
	if node.Values[2].Parent != node || node.Values[2].ParentField != "c" {
		t.Errorf("appended value has wrong parent links")
	}
}

func TestRemoveField(t *testing.T) {
	node := FromKeyVals([]KeyVal{
		{Key: FromString("a"), Val: FromInt(1)},
		{Key: FromString("b"), Val: FromInt(2)},
		{Key: FromString("c"), Val: FromInt(3)},
	})
	if !node.RemoveField("b") {
		t.Fatalf("RemoveField(b) = false")
	}
	if node.RemoveField("b") {
		t.Errorf("second RemoveField(b) = true")
	}
	if len(node.Fields) != 2 || node.Fields[1].String != "c" {
		t.Errorf("fields after removal: %v", node.Fields)
	}
	if node.Values[1].ParentIndex != 1 {
		t.Errorf("shifted value keeps stale ParentIndex %d", node.Values[1].ParentIndex)
	}
}

func TestSetIndexGrow(t *testing.T) {
	arr := FromSlice(nil)
	if err := arr.SetIndex(2, FromInt(99), true); err != nil {
		t.Fatal(err)
	}
	if len(arr.Values) != 3 {
		t.Fatalf("len = %d, want 3", len(arr.Values))
	}
	if arr.Values[0].Type != NullType || arr.Values[1].Type != NullType {
		t.Errorf("padding elements are not null")
	}
	if *arr.Values[2].Int64 != 99 {
		t.Errorf("Values[2] = %v", arr.Values[2])
	}
	if arr.Values[2].Parent != arr || arr.Values[2].ParentIndex != 2 {
		t.Errorf("grown element has wrong parent links")
	}
}

func TestSetIndexNoGrow(t *testing.T) {
	arr := FromSlice([]*Node{FromInt(1)})
	if err := arr.SetIndex(1, FromInt(2), false); err != ErrRange {
		t.Errorf("SetIndex out of range = %v, want ErrRange", err)
	}
	if err := arr.SetIndex(0, FromInt(2), false); err != nil {
		t.Errorf("in-range SetIndex = %v", err)
	}
	if *arr.Values[0].Int64 != 2 {
		t.Errorf("Values[0] = %v", arr.Values[0])
	}
}

func TestRemoveIndex(t *testing.T) {
	arr := FromSlice([]*Node{FromInt(1), FromInt(2), FromInt(3)})
	if !arr.RemoveIndex(1) {
		t.Fatalf("RemoveIndex(1) = false")
	}
	if len(arr.Values) != 2 || *arr.Values[1].Int64 != 3 {
		t.Errorf("values after removal: %v", arr.Values)
	}
	if arr.Values[1].ParentIndex != 1 {
		t.Errorf("shifted element keeps stale ParentIndex %d", arr.Values[1].ParentIndex)
	}
	if arr.RemoveIndex(5) || arr.RemoveIndex(-1) {
		t.Errorf("out-of-range RemoveIndex = true")
	}
}

func TestReplaceWith(t *testing.T) {
	root := FromKeyVals([]KeyVal{
		{Key: FromString("a"), Val: FromKeyVals([]KeyVal{
			{Key: FromString("x"), Val: FromInt(1)},
		})},
	})
	inner := root.Values[0]
	alias := inner

	repl := FromKeyVals([]KeyVal{
		{Key: FromString("y"), Val: FromInt(2)},
	})
	inner.ReplaceWith(repl)

	// position in the surrounding tree survives
	if inner.Parent != root || inner.ParentField != "a" {
		t.Errorf("replaced node lost its position")
	}
	// aliases observe the new content
	if got := Get(alias, "y"); got == nil || *got.Int64 != 2 {
		t.Errorf("alias does not see new content: %v", alias)
	}
	if Get(alias, "x") != nil {
		t.Errorf("alias still sees old content")
	}
	// children re-parented
	if alias.Values[0].Parent != inner {
		t.Errorf("child not re-parented")
	}
}
