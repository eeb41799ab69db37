package objmap

import (
	"io"

	"github.com/objmap/go-objmap/encode"
	"github.com/objmap/go-objmap/ir"
)

// View is a live handle on a container node in a document tree. Views
// share storage with the tree: mutation through one view is visible
// through every other view aliasing the same node.
//
// The concrete type is *Object or *Array, chosen from the underlying
// node's kind at construction.
type View interface {
	// Kind returns ir.ObjectType or ir.ArrayType.
	Kind() ir.Type
	// Len returns the number of entries or elements.
	Len() int
	// Node returns the backing node, shared with the tree.
	Node() *ir.Node
	// ReadOnly reports whether mutation is disabled.
	ReadOnly() bool
	// PlainValue returns a detached deep copy as plain Go values.
	PlainValue() any
	// Equal reports whether both views hold the same document value.
	Equal(o View) bool

	String() string
	MarshalJSON() ([]byte, error)
	// Encode writes the subtree to w; see package encode for options.
	Encode(w io.Writer, opts ...encode.EncodeOption) error

	// GetPath reads the value at p, returning def on any failure.
	GetPath(p string, def any) any
	// SetPath writes v at p, creating parents unless CreateParents(false).
	SetPath(p string, v any, opts ...PathOption) error
	// DelPath removes the value at p; missing targets are a no-op unless
	// RaiseOnMissing(true).
	DelPath(p string, opts ...PathOption) error
}

type base struct {
	node *ir.Node
	pol  *policy
}

func (b *base) Kind() ir.Type {
	return b.node.Type
}

func (b *base) Len() int {
	return len(b.node.Values)
}

func (b *base) Node() *ir.Node {
	return b.node
}

func (b *base) ReadOnly() bool {
	return b.pol.readonly
}

func (b *base) PlainValue() any {
	return ir.ToAny(b.node)
}

func (b *base) Equal(o View) bool {
	if o == nil {
		return false
	}
	return ir.Equal(b.node, o.Node())
}

func (b *base) String() string {
	return encode.MustString(b.node)
}

func (b *base) MarshalJSON() ([]byte, error) {
	return b.node.MarshalJSON()
}

func (b *base) Encode(w io.Writer, opts ...encode.EncodeOption) error {
	return encode.Encode(b.node, w, opts...)
}

// wrap converts a stored node to the externally visible value: scalars
// pass through as plain Go values, containers become views aliasing the
// node and sharing this view's policy.
func (b *base) wrap(n *ir.Node) any {
	switch n.Type {
	case ir.ObjectType:
		return &Object{base{node: n, pol: b.pol}}
	case ir.ArrayType:
		return &Array{base{node: n, pol: b.pol}}
	default:
		return ir.ToAny(n)
	}
}

// toNode coerces a caller-supplied value to a node. Views and nodes are
// deep copied so the tree keeps exclusive ownership of its nodes.
func toNode(v any) (*ir.Node, error) {
	switch t := v.(type) {
	case View:
		return t.Node().Clone(), nil
	default:
		return ir.FromAny(v)
	}
}
