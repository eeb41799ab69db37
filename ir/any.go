package ir

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

// ToAny converts a node tree to plain Go values: map[string]any for
// objects, []any for arrays, and Go scalars for leaves. The result shares
// no storage with the node tree.
func ToAny(node *Node) any {
	switch node.Type {
	case ObjectType:
		n := len(node.Fields)
		res := make(map[string]any, n)
		for i := range n {
			res[node.Fields[i].String] = ToAny(node.Values[i])
		}
		return res
	case ArrayType:
		res := make([]any, len(node.Values))
		for i, elt := range node.Values {
			res[i] = ToAny(elt)
		}
		return res
	case StringType:
		return node.String
	case NumberType:
		if node.Int64 != nil {
			return int(*node.Int64)
		}
		if node.Float64 != nil {
			return *node.Float64
		}
		return json.Number(node.Number)
	case BoolType:
		return node.Bool
	case NullType:
		return nil
	default:
		panic("impossible production")
	}
}

// FromAny converts a plain Go value to a node tree. It accepts nil, bools,
// strings, Go numeric types, json.Number, []any, map[string]any, and nodes
// or maps/slices of nodes (which are cloned). map keys are ordered sorted,
// since Go maps carry no insertion order.
func FromAny(v any) (*Node, error) {
	switch t := v.(type) {
	case nil:
		return Null(), nil
	case *Node:
		return t.Clone(), nil
	case []*Node:
		vals := make([]*Node, len(t))
		for i, n := range t {
			vals[i] = n.Clone()
		}
		return FromSlice(vals), nil
	case map[string]*Node:
		m := make(map[string]*Node, len(t))
		for k, n := range t {
			m[k] = n.Clone()
		}
		return FromMap(m), nil
	case bool:
		return FromBool(t), nil
	case string:
		return FromString(t), nil
	case int:
		return FromInt(int64(t)), nil
	case int8:
		return FromInt(int64(t)), nil
	case int16:
		return FromInt(int64(t)), nil
	case int32:
		return FromInt(int64(t)), nil
	case int64:
		return FromInt(t), nil
	case uint:
		return FromInt(int64(t)), nil
	case uint8:
		return FromInt(int64(t)), nil
	case uint16:
		return FromInt(int64(t)), nil
	case uint32:
		return FromInt(int64(t)), nil
	case uint64:
		if t > math.MaxInt64 {
			return &Node{Type: NumberType, Number: strconv.FormatUint(t, 10)}, nil
		}
		return FromInt(int64(t)), nil
	case float32:
		return FromFloat(float64(t)), nil
	case float64:
		return FromFloat(t), nil
	case json.Number:
		if i, err := t.Int64(); err == nil {
			return FromInt(i), nil
		}
		if f, err := t.Float64(); err == nil {
			return FromFloat(f), nil
		}
		return &Node{Type: NumberType, Number: t.String()}, nil
	case []any:
		vals := make([]*Node, len(t))
		for i, e := range t {
			n, err := FromAny(e)
			if err != nil {
				return nil, err
			}
			vals[i] = n
		}
		return FromSlice(vals), nil
	case map[string]any:
		m := make(map[string]*Node, len(t))
		for k, e := range t {
			n, err := FromAny(e)
			if err != nil {
				return nil, err
			}
			m[k] = n
		}
		return FromMap(m), nil
	default:
		return nil, fmt.Errorf("%w: cannot represent %T", ErrType, v)
	}
}

// NumberString returns the canonical text of a number node.
func (y *Node) NumberString() string {
	if y.Int64 != nil {
		return strconv.FormatInt(*y.Int64, 10)
	}
	if y.Float64 != nil {
		return strconv.FormatFloat(*y.Float64, 'g', -1, 64)
	}
	return y.Number
}
