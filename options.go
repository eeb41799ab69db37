package objmap

import (
	"github.com/objmap/go-objmap/ir"
	"github.com/objmap/go-objmap/path"
)

// Factory produces a default node for a missing field. It is invoked on
// every missing-field resolution; results are never memoized unless
// AutocreateMissing persists them into the tree.
type Factory interface {
	New() *ir.Node
}

type FactoryFunc func() *ir.Node

func (f FactoryFunc) New() *ir.Node { return f() }

// EmptyObject returns a factory producing empty objects.
func EmptyObject() Factory {
	return FactoryFunc(func() *ir.Node { return &ir.Node{Type: ir.ObjectType} })
}

// EmptyArray returns a factory producing empty arrays.
func EmptyArray() Factory {
	return FactoryFunc(func() *ir.Node { return &ir.Node{Type: ir.ArrayType} })
}

// policy is the access configuration of a view. It is fixed at
// construction and shared, not re-derived, by every view derived from it.
type policy struct {
	readonly    bool
	factory     Factory
	autocreate  bool
	strictPaths bool
	noCopy      bool
}

func (p *policy) parseOpts() []path.Option {
	if p.strictPaths {
		return []path.Option{path.Strict()}
	}
	return nil
}

type Option func(*policy)

// ReadOnly disables all mutation through the view and its descendants.
func ReadOnly() Option {
	return func(p *policy) { p.readonly = true }
}

// WithDefault installs a factory invoked when a field read misses.
func WithDefault(f Factory) Option {
	return func(p *policy) { p.factory = f }
}

// AutocreateMissing persists factory-produced defaults into the tree as a
// side effect of the read that produced them. Without it the produced value
// is returned detached and repeated reads re-invoke the factory.
func AutocreateMissing() Option {
	return func(p *policy) { p.autocreate = true }
}

// StrictPaths makes path operations reject path text that matches neither
// the identifier nor the bracket-index pattern, instead of skipping it.
func StrictPaths() Option {
	return func(p *policy) { p.strictPaths = true }
}

// NoCopy adopts a caller-supplied node tree by reference instead of deep
// copying it. The caller must not use the tree directly afterwards.
func NoCopy() Option {
	return func(p *policy) { p.noCopy = true }
}
