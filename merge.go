package objmap

import (
	"fmt"

	jsonpatch "github.com/evanphx/json-patch"

	"github.com/objmap/go-objmap/debug"
	"github.com/objmap/go-objmap/encode"
	"github.com/objmap/go-objmap/ir"
	"github.com/objmap/go-objmap/parse"
)

// Merge shallowly copies the fields of other into this object, overwriting
// existing keys. other may be a View, an *ir.Node, or a map of plain
// values.
func (o *Object) Merge(other any) error {
	if o.pol.readonly {
		return ErrReadOnly
	}
	n, err := toNode(other)
	if err != nil {
		return err
	}
	if n.Type != ir.ObjectType {
		return fmt.Errorf("%w: merge requires an object, got %s", ErrType, n.Type)
	}
	if debug.Merge() {
		debug.Logf("merge %s into %s\n", encode.MustString(n), encode.MustString(o.node))
	}
	for i := range n.Fields {
		o.node.SetField(n.Fields[i].String, n.Values[i])
	}
	return nil
}

// MergePatch applies an RFC 7386 JSON merge patch to this object in
// place. Aliasing views observe the result.
//
// The patch library round-trips the document through unordered maps, so
// field order of the merged result is not preserved. Pair with
// encode.EncodeSortKeys for deterministic output.
func (o *Object) MergePatch(patch []byte) error {
	if o.pol.readonly {
		return ErrReadOnly
	}
	doc, err := o.node.MarshalJSON()
	if err != nil {
		return err
	}
	out, err := jsonpatch.MergePatch(doc, patch)
	if err != nil {
		return err
	}
	n, err := parse.Parse(out)
	if err != nil {
		return err
	}
	if n.Type != ir.ObjectType {
		return fmt.Errorf("%w: merge patch produced %s", ErrType, n.Type)
	}
	if debug.Merge() {
		debug.Logf("merge-patch result %s\n", encode.MustString(n))
	}
	o.node.ReplaceWith(n)
	return nil
}
