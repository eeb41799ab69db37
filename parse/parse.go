// Package parse decodes JSON and YAML text into ir.Node trees.
package parse

import (
	"fmt"

	"github.com/goccy/go-yaml"

	"github.com/objmap/go-objmap/format"
	"github.com/objmap/go-objmap/ir"
)

// Parse decodes a document into a node tree. The input format defaults to
// JSON; pass ParseFormat(format.YAMLFormat) for YAML. Object field order is
// preserved in both formats.
func Parse(d []byte, opts ...ParseOption) (*ir.Node, error) {
	pOpts := &parseOpts{format: format.JSONFormat}
	for _, f := range opts {
		f(pOpts)
	}
	switch pOpts.format {
	case format.JSONFormat:
		res := &ir.Node{}
		if err := res.UnmarshalJSON(d); err != nil {
			return nil, err
		}
		return res, nil
	case format.YAMLFormat:
		var v any
		if err := yaml.UnmarshalWithOptions(d, &v, yaml.UseOrderedMap()); err != nil {
			return nil, err
		}
		return fromYAMLValue(v)
	default:
		return nil, fmt.Errorf("%w: %s", format.ErrBadFormat, pOpts.format)
	}
}

// fromYAMLValue converts goccy's decoded form to nodes. Ordered maps come
// back as yaml.MapSlice so field order survives.
func fromYAMLValue(v any) (*ir.Node, error) {
	switch t := v.(type) {
	case yaml.MapSlice:
		kvs := make([]ir.KeyVal, 0, len(t))
		for _, item := range t {
			key, ok := item.Key.(string)
			if !ok {
				return nil, fmt.Errorf("object key is not a string: %v", item.Key)
			}
			val, err := fromYAMLValue(item.Value)
			if err != nil {
				return nil, err
			}
			kvs = append(kvs, ir.KeyVal{Key: ir.FromString(key), Val: val})
		}
		return ir.FromKeyVals(kvs), nil
	case []any:
		vals := make([]*ir.Node, len(t))
		for i, e := range t {
			n, err := fromYAMLValue(e)
			if err != nil {
				return nil, err
			}
			vals[i] = n
		}
		return ir.FromSlice(vals), nil
	default:
		return ir.FromAny(v)
	}
}
