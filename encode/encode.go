// Package encode renders ir.Node trees as JSON or YAML text.
package encode

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/objmap/go-objmap/format"
	"github.com/objmap/go-objmap/ir"
)

// Encode writes node to w. The output format defaults to JSON; see the
// EncodeOption values for indentation, key ordering and colors.
func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{format: format.JSONFormat}
	for _, f := range opts {
		f(es)
	}
	if es.sortKeys {
		node = sortKeys(node)
	}
	switch es.format {
	case format.JSONFormat:
		return encodeJSON(node, w, es)
	case format.YAMLFormat:
		return encodeYAML(node, w, es)
	default:
		return fmt.Errorf("%w: %s", format.ErrBadFormat, es.format)
	}
}

func encodeJSON(node *ir.Node, w io.Writer, es *EncState) error {
	if es.colors != nil {
		buf := bytes.NewBuffer(nil)
		indent := es.indent
		if indent == 0 {
			indent = 2
		}
		if err := writeColorJSON(buf, node, es.colors, indent, 0); err != nil {
			return err
		}
		buf.WriteByte('\n')
		_, err := w.Write(buf.Bytes())
		return err
	}
	d, err := node.MarshalJSON()
	if err != nil {
		return err
	}
	if es.indent > 0 {
		buf := bytes.NewBuffer(nil)
		if err := json.Indent(buf, d, "", strings.Repeat(" ", es.indent)); err != nil {
			return err
		}
		d = buf.Bytes()
	}
	d = append(d, '\n')
	_, err = w.Write(d)
	return err
}

func encodeYAML(node *ir.Node, w io.Writer, es *EncState) error {
	v := toYAMLValue(node)
	yOpts := []yaml.EncodeOption{}
	if es.indent > 0 {
		yOpts = append(yOpts, yaml.Indent(es.indent))
	}
	d, err := yaml.MarshalWithOptions(v, yOpts...)
	if err != nil {
		return err
	}
	_, err = w.Write(d)
	return err
}

// toYAMLValue converts nodes to goccy's ordered form so field order
// survives encoding.
func toYAMLValue(y *ir.Node) any {
	switch y.Type {
	case ir.ObjectType:
		res := make(yaml.MapSlice, len(y.Fields))
		for i := range y.Fields {
			res[i] = yaml.MapItem{
				Key:   y.Fields[i].String,
				Value: toYAMLValue(y.Values[i]),
			}
		}
		return res
	case ir.ArrayType:
		res := make([]any, len(y.Values))
		for i, elt := range y.Values {
			res[i] = toYAMLValue(elt)
		}
		return res
	case ir.NumberType:
		if y.Int64 != nil {
			return *y.Int64
		}
		if y.Float64 != nil {
			return *y.Float64
		}
		return y.Number
	case ir.StringType:
		return y.String
	case ir.BoolType:
		return y.Bool
	case ir.NullType:
		return nil
	default:
		return nil
	}
}

// sortKeys returns a copy of y with object fields recursively ordered
// lexicographically.
func sortKeys(y *ir.Node) *ir.Node {
	switch y.Type {
	case ir.ObjectType:
		kvs := make([]ir.KeyVal, len(y.Fields))
		for i := range y.Fields {
			kvs[i] = ir.KeyVal{
				Key: ir.FromString(y.Fields[i].String),
				Val: sortKeys(y.Values[i]),
			}
		}
		sort.SliceStable(kvs, func(i, j int) bool {
			return kvs[i].Key.String < kvs[j].Key.String
		})
		return ir.FromKeyVals(kvs)
	case ir.ArrayType:
		vals := make([]*ir.Node, len(y.Values))
		for i, elt := range y.Values {
			vals[i] = sortKeys(elt)
		}
		return ir.FromSlice(vals)
	default:
		return y.Clone()
	}
}

func writeColorJSON(buf *bytes.Buffer, y *ir.Node, c *Colors, indent, depth int) error {
	pad := strings.Repeat(" ", indent*(depth+1))
	closePad := strings.Repeat(" ", indent*depth)
	switch y.Type {
	case ir.NullType:
		buf.WriteString(c.Null("null"))
	case ir.BoolType:
		if y.Bool {
			buf.WriteString(c.Bool("true"))
		} else {
			buf.WriteString(c.Bool("false"))
		}
	case ir.NumberType:
		buf.WriteString(c.Number("%s", y.NumberString()))
	case ir.StringType:
		d, err := json.Marshal(y.String)
		if err != nil {
			return err
		}
		buf.WriteString(c.String("%s", string(d)))
	case ir.ArrayType:
		if len(y.Values) == 0 {
			buf.WriteString(c.Punct("[]"))
			return nil
		}
		buf.WriteString(c.Punct("["))
		for i, v := range y.Values {
			if i > 0 {
				buf.WriteString(c.Punct(","))
			}
			buf.WriteByte('\n')
			buf.WriteString(pad)
			if err := writeColorJSON(buf, v, c, indent, depth+1); err != nil {
				return err
			}
		}
		buf.WriteByte('\n')
		buf.WriteString(closePad)
		buf.WriteString(c.Punct("]"))
	case ir.ObjectType:
		if len(y.Fields) == 0 {
			buf.WriteString(c.Punct("{}"))
			return nil
		}
		buf.WriteString(c.Punct("{"))
		for i := range y.Fields {
			if i > 0 {
				buf.WriteString(c.Punct(","))
			}
			buf.WriteByte('\n')
			buf.WriteString(pad)
			d, err := json.Marshal(y.Fields[i].String)
			if err != nil {
				return err
			}
			buf.WriteString(c.Field("%s", string(d)))
			buf.WriteString(c.Punct(":"))
			buf.WriteByte(' ')
			if err := writeColorJSON(buf, y.Values[i], c, indent, depth+1); err != nil {
				return err
			}
		}
		buf.WriteByte('\n')
		buf.WriteString(closePad)
		buf.WriteString(c.Punct("}"))
	default:
		return fmt.Errorf("%w: cannot encode type %s", ir.ErrType, y.Type)
	}
	return nil
}
