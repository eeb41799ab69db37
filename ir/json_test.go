package ir

import (
	"testing"
)

func TestMarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		node *Node
		want string
	}{
		{"null", Null(), "null"},
		{"bool", FromBool(true), "true"},
		{"int", FromInt(42), "42"},
		{"float", FromFloat(1.5), "1.5"},
		{"string", FromString("a\"b"), `"a\"b"`},
		{"empty array", FromSlice(nil), "[]"},
		{"empty object", FromKeyVals(nil), "{}"},
		{"array", FromSlice([]*Node{FromInt(1), Null(), FromString("x")}), `[1,null,"x"]`},
		{"object order preserved",
			FromKeyVals([]KeyVal{
				{Key: FromString("z"), Val: FromInt(1)},
				{Key: FromString("a"), Val: FromInt(2)},
			}),
			`{"z":1,"a":2}`},
		{"nested",
			FromKeyVals([]KeyVal{
				{Key: FromString("xs"), Val: FromSlice([]*Node{
					FromKeyVals([]KeyVal{{Key: FromString("k"), Val: FromBool(false)}}),
				})},
			}),
			`{"xs":[{"k":false}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := tt.node.MarshalJSON()
			if err != nil {
				t.Fatalf("MarshalJSON() error = %v", err)
			}
			if string(d) != tt.want {
				t.Errorf("MarshalJSON() = %s, want %s", d, tt.want)
			}
		})
	}
}

func TestUnmarshalJSON(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"scalar", "42"},
		{"string", `"hello"`},
		{"array", `[1,2.5,null,true,"x"]`},
		{"object order", `{"z":1,"a":{"b":[]},"m":null}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			node := &Node{}
			if err := node.UnmarshalJSON([]byte(tt.input)); err != nil {
				t.Fatalf("UnmarshalJSON(%q) error = %v", tt.input, err)
			}
			d, err := node.MarshalJSON()
			if err != nil {
				t.Fatalf("MarshalJSON() error = %v", err)
			}
			if string(d) != tt.input {
				t.Errorf("round trip = %s, want %s", d, tt.input)
			}
		})
	}
}

func TestUnmarshalJSONErrors(t *testing.T) {
	for _, input := range []string{"", "{", `{"a"}`, "1 2", "[1,]"} {
		node := &Node{}
		if err := node.UnmarshalJSON([]byte(input)); err == nil {
			t.Errorf("UnmarshalJSON(%q) = nil, want error", input)
		}
	}
}

func TestUnmarshalJSONParentLinks(t *testing.T) {
	node := &Node{}
	if err := node.UnmarshalJSON([]byte(`{"a":[10,20]}`)); err != nil {
		t.Fatal(err)
	}
	elt := node.Values[0].Values[1]
	if elt.Root() != node {
		t.Errorf("decoded element does not root at the decoded node")
	}
	if got := elt.Path(); got != "a[1]" {
		t.Errorf("decoded element Path() = %q, want a[1]", got)
	}
}
