package ir

import (
	"errors"
	"testing"

	"github.com/objmap/go-objmap/path"
)

func mustParse(t *testing.T, s string) *path.Path {
	t.Helper()
	p, err := path.Parse(s)
	if err != nil {
		t.Fatalf("Parse(%q) error = %v", s, err)
	}
	return p
}

func mustUnmarshal(t *testing.T, s string) *Node {
	t.Helper()
	node := &Node{}
	if err := node.UnmarshalJSON([]byte(s)); err != nil {
		t.Fatalf("UnmarshalJSON(%q) error = %v", s, err)
	}
	return node
}

func jsonText(t *testing.T, node *Node) string {
	t.Helper()
	d, err := node.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON() error = %v", err)
	}
	return string(d)
}

func TestResolve(t *testing.T) {
	root := mustUnmarshal(t, `{"a":{"b":[10,20]},"s":"x"}`)

	tests := []struct {
		name    string
		path    string
		want    string
		wantErr error
	}{
		{"root", "", `{"a":{"b":[10,20]},"s":"x"}`, nil},
		{"field", "s", `"x"`, nil},
		{"nested", "a.b", `[10,20]`, nil},
		{"index", "a.b[1]", `20`, nil},
		{"missing key", "a.c", "", ErrNotFound},
		{"index out of range", "a.b[5]", "", ErrRange},
		{"field on array", "a.b.c", "", ErrType},
		{"index on object", "a[0]", "", ErrType},
		{"field on scalar", "s.x", "", ErrType},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Resolve(root, mustParse(t, tt.path))
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("Resolve(%q) error = %v, want %v", tt.path, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Resolve(%q) error = %v", tt.path, err)
			}
			if text := jsonText(t, got); text != tt.want {
				t.Errorf("Resolve(%q) = %s, want %s", tt.path, text, tt.want)
			}
		})
	}
}

func TestSetPath(t *testing.T) {
	tests := []struct {
		name          string
		doc           string
		path          string
		value         *Node
		createParents bool
		want          string
		wantErr       error
	}{
		{
			name: "replace existing", doc: `{"a":1}`, path: "a",
			value: FromInt(2), createParents: true,
			want: `{"a":2}`,
		},
		{
			name: "new field", doc: `{"a":1}`, path: "b",
			value: FromString("x"), createParents: true,
			want: `{"a":1,"b":"x"}`,
		},
		{
			name: "create nested parents", doc: `{}`, path: "a.b.c",
			value: FromInt(1), createParents: true,
			want: `{"a":{"b":{"c":1}}}`,
		},
		{
			name: "no create parents", doc: `{}`, path: "a.b.c",
			value: FromInt(1), createParents: false,
			wantErr: ErrNotFound,
		},
		{
			name: "array grows with null padding", doc: `{"xs":[]}`, path: "xs[2]",
			value: FromInt(99), createParents: true,
			want: `{"xs":[null,null,99]}`,
		},
		{
			name: "array no grow without create", doc: `{"xs":[]}`, path: "xs[2]",
			value: FromInt(99), createParents: false,
			wantErr: ErrRange,
		},
		{
			name: "index lookahead makes array", doc: `{}`, path: "a[0]",
			value: FromInt(1), createParents: true,
			want: `{"a":[1]}`,
		},
		{
			name: "field lookahead makes object", doc: `{"xs":[]}`, path: "xs[0].k",
			value: FromInt(1), createParents: true,
			want: `{"xs":[{"k":1}]}`,
		},
		{
			name: "null counts as missing", doc: `{"a":null}`, path: "a.b",
			value: FromInt(1), createParents: true,
			want: `{"a":{"b":1}}`,
		},
		{
			name: "scalar in the way", doc: `{"a":1}`, path: "a.b",
			value: FromInt(2), createParents: true,
			wantErr: ErrType,
		},
		{
			name: "index into object", doc: `{"a":{}}`, path: "a[0]",
			value: FromInt(1), createParents: true,
			wantErr: ErrType,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := mustUnmarshal(t, tt.doc)
			err := SetPath(root, mustParse(t, tt.path), tt.value, tt.createParents)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("SetPath(%q) error = %v, want %v", tt.path, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("SetPath(%q) error = %v", tt.path, err)
			}
			if text := jsonText(t, root); text != tt.want {
				t.Errorf("after SetPath(%q): %s, want %s", tt.path, text, tt.want)
			}
		})
	}
}

func TestSetPathEmpty(t *testing.T) {
	root := mustUnmarshal(t, `{}`)
	if err := SetPath(root, nil, FromInt(1), true); err == nil {
		t.Errorf("SetPath(nil path) = nil, want error")
	}
}

func TestDelPath(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		path    string
		strict  bool
		want    string
		wantErr error
	}{
		{
			name: "delete field", doc: `{"a":1,"b":2}`, path: "a",
			want: `{"b":2}`,
		},
		{
			name: "delete element shifts", doc: `{"xs":[1,2,3]}`, path: "xs[1]",
			want: `{"xs":[1,3]}`,
		},
		{
			name: "missing key lenient", doc: `{"a":1}`, path: "b",
			want: `{"a":1}`,
		},
		{
			name: "missing key strict", doc: `{"a":1}`, path: "b", strict: true,
			wantErr: ErrNotFound,
		},
		{
			name: "out of range lenient", doc: `{"xs":[1]}`, path: "xs[5]",
			want: `{"xs":[1]}`,
		},
		{
			name: "out of range strict", doc: `{"xs":[1]}`, path: "xs[5]", strict: true,
			wantErr: ErrRange,
		},
		{
			name: "missing parent lenient", doc: `{"a":1}`, path: "b.c",
			want: `{"a":1}`,
		},
		{
			name: "missing parent strict", doc: `{"a":1}`, path: "b.c", strict: true,
			wantErr: ErrNotFound,
		},
		{
			name: "kind mismatch raises even lenient", doc: `{"xs":[1]}`, path: "xs.a",
			wantErr: ErrType,
		},
		{
			name: "index on object raises even lenient", doc: `{"a":{"b":1}}`, path: "a[0]",
			wantErr: ErrType,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := mustUnmarshal(t, tt.doc)
			err := DelPath(root, mustParse(t, tt.path), tt.strict)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("DelPath(%q) error = %v, want %v", tt.path, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("DelPath(%q) error = %v", tt.path, err)
			}
			if text := jsonText(t, root); text != tt.want {
				t.Errorf("after DelPath(%q): %s, want %s", tt.path, text, tt.want)
			}
		})
	}
}
