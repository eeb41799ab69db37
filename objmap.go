package objmap

import (
	"fmt"

	"github.com/objmap/go-objmap/format"
	"github.com/objmap/go-objmap/ir"
	"github.com/objmap/go-objmap/parse"
)

// New constructs a view over data. data may be JSON text ([]byte or
// string), an *ir.Node, another View, or plain Go values (map[string]any,
// []any). The root must decode to an object or an array.
//
// Caller-supplied trees are deep copied unless the NoCopy option is given;
// parsed text and plain values always produce a fresh tree.
func New(data any, opts ...Option) (View, error) {
	pol := &policy{}
	for _, f := range opts {
		f(pol)
	}
	node, err := rootNode(data, pol)
	if err != nil {
		return nil, err
	}
	return viewFor(node, pol)
}

func rootNode(data any, pol *policy) (*ir.Node, error) {
	switch t := data.(type) {
	case []byte:
		return parse.Parse(t)
	case string:
		return parse.Parse([]byte(t))
	case *ir.Node:
		if pol.noCopy {
			return t, nil
		}
		return t.Clone(), nil
	case View:
		if pol.noCopy {
			return t.Node(), nil
		}
		return t.Node().Clone(), nil
	default:
		return ir.FromAny(data)
	}
}

func viewFor(node *ir.Node, pol *policy) (View, error) {
	switch node.Type {
	case ir.ObjectType:
		return &Object{base{node: node, pol: pol}}, nil
	case ir.ArrayType:
		return &Array{base{node: node, pol: pol}}, nil
	default:
		return nil, fmt.Errorf("%w: root must be an object or array, got %s", ErrType, node.Type)
	}
}

// FromJSON constructs a view from JSON text.
func FromJSON(d []byte, opts ...Option) (View, error) {
	return New(d, opts...)
}

// FromYAML constructs a view from YAML text.
func FromYAML(d []byte, opts ...Option) (View, error) {
	pol := &policy{}
	for _, f := range opts {
		f(pol)
	}
	node, err := parse.Parse(d, parse.ParseFormat(format.YAMLFormat))
	if err != nil {
		return nil, err
	}
	return viewFor(node, pol)
}

// NewObject is New restricted to object roots.
func NewObject(data any, opts ...Option) (*Object, error) {
	v, err := New(data, opts...)
	if err != nil {
		return nil, err
	}
	obj, ok := v.(*Object)
	if !ok {
		return nil, fmt.Errorf("%w: root must be an object, got %s", ErrType, v.Kind())
	}
	return obj, nil
}

// NewArray is New restricted to array roots.
func NewArray(data any, opts ...Option) (*Array, error) {
	v, err := New(data, opts...)
	if err != nil {
		return nil, err
	}
	arr, ok := v.(*Array)
	if !ok {
		return nil, fmt.Errorf("%w: root must be an array, got %s", ErrType, v.Kind())
	}
	return arr, nil
}
