package objmap

import (
	"fmt"

	"github.com/objmap/go-objmap/debug"
	"github.com/objmap/go-objmap/encode"
	"github.com/objmap/go-objmap/ir"
	"github.com/objmap/go-objmap/path"
)

type pathOpts struct {
	createParents  bool
	raiseOnMissing bool
}

// PathOption is a per-call option for SetPath and DelPath.
type PathOption func(*pathOpts)

// CreateParents controls whether SetPath builds missing intermediate
// containers. It defaults to true.
func CreateParents(v bool) PathOption {
	return func(po *pathOpts) { po.createParents = v }
}

// RaiseOnMissing makes DelPath report an error when the target or any
// segment on the way is missing, instead of silently doing nothing. It
// defaults to false.
func RaiseOnMissing(v bool) PathOption {
	return func(po *pathOpts) { po.raiseOnMissing = v }
}

// GetPath reads the value at p, resolving field segments with the view's
// default-factory policy at every hop. Any failure - syntax, wrong
// container kind, missing key, out-of-range index - yields def.
func (b *base) GetPath(p string, def any) any {
	pp, err := path.Parse(p, b.pol.parseOpts()...)
	if err != nil {
		return def
	}
	var cur any = b.wrap(b.node)
	for seg := pp; seg != nil; seg = seg.Next {
		switch {
		case seg.Field != nil:
			obj, ok := cur.(*Object)
			if !ok {
				return def
			}
			v, err := obj.fieldValue(*seg.Field)
			if err != nil {
				return def
			}
			cur = v
		case seg.Index != nil:
			arr, ok := cur.(*Array)
			if !ok {
				return def
			}
			v, err := arr.At(*seg.Index)
			if err != nil {
				return def
			}
			cur = v
		}
	}
	return cur
}

// SetPath writes v at p. Missing intermediate containers are created
// unless CreateParents(false); created intermediates are not rolled back
// when a later segment fails.
func (b *base) SetPath(p string, v any, opts ...PathOption) error {
	if b.pol.readonly {
		return ErrReadOnly
	}
	po := &pathOpts{createParents: true}
	for _, f := range opts {
		f(po)
	}
	pp, err := path.Parse(p, b.pol.parseOpts()...)
	if err != nil {
		return err
	}
	if pp == nil {
		return fmt.Errorf("%w: %q", ErrEmptyPath, p)
	}
	n, err := toNode(v)
	if err != nil {
		return err
	}
	if debug.Path() {
		debug.Logf("set %s at %q\n", encode.MustString(n), pp)
	}
	return ir.SetPath(b.node, pp, n, po.createParents)
}

// DelPath removes the value at p.
func (b *base) DelPath(p string, opts ...PathOption) error {
	if b.pol.readonly {
		return ErrReadOnly
	}
	po := &pathOpts{}
	for _, f := range opts {
		f(po)
	}
	pp, err := path.Parse(p, b.pol.parseOpts()...)
	if err != nil {
		return err
	}
	if pp == nil {
		return fmt.Errorf("%w: %q", ErrEmptyPath, p)
	}
	if debug.Path() {
		debug.Logf("del %q (strict=%v)\n", pp, po.raiseOnMissing)
	}
	return ir.DelPath(b.node, pp, po.raiseOnMissing)
}
