package main

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/scott-cotton/cli"

	"github.com/objmap/go-objmap/ir"
)

func filter(cfg *FilterConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Filter.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: filter requires one argument, an expression", cli.ErrUsage)
	}
	program, err := expr.Compile(args[0], expr.AllowUndefinedVariables())
	if err != nil {
		return fmt.Errorf("%w: bad expression: %w", cli.ErrUsage, err)
	}
	for _, file := range orStdin(args[1:]) {
		node, err := readDoc(cfg.MainConfig, file)
		if err != nil {
			return err
		}
		res, err := filterNode(node, program)
		if err != nil {
			return fmt.Errorf("error filtering %s: %w", file, err)
		}
		if err := emit(cfg.MainConfig, cc, res); err != nil {
			return err
		}
	}
	return nil
}

// filterNode keeps the array elements or object fields for which the
// program yields true. The expression sees the element's plain value as
// "value", plus "index" for arrays and "key" for objects.
func filterNode(node *ir.Node, program *vm.Program) (*ir.Node, error) {
	switch node.Type {
	case ir.ArrayType:
		var vals []*ir.Node
		for i, elt := range node.Values {
			keep, err := runPredicate(program, map[string]any{
				"value": ir.ToAny(elt),
				"index": i,
			})
			if err != nil {
				return nil, err
			}
			if keep {
				vals = append(vals, elt.Clone())
			}
		}
		return ir.FromSlice(vals), nil
	case ir.ObjectType:
		var kvs []ir.KeyVal
		for i := range node.Fields {
			key := node.Fields[i].String
			keep, err := runPredicate(program, map[string]any{
				"value": ir.ToAny(node.Values[i]),
				"key":   key,
			})
			if err != nil {
				return nil, err
			}
			if keep {
				kvs = append(kvs, ir.KeyVal{
					Key: ir.FromString(key),
					Val: node.Values[i].Clone(),
				})
			}
		}
		return ir.FromKeyVals(kvs), nil
	default:
		return nil, fmt.Errorf("%w: filter requires an array or object root, got %s",
			ir.ErrType, node.Type)
	}
}

func runPredicate(program *vm.Program, env map[string]any) (bool, error) {
	out, err := expr.Run(program, env)
	if err != nil {
		return false, err
	}
	b, ok := out.(bool)
	if !ok {
		return false, fmt.Errorf("filter expression must yield a boolean, got %T", out)
	}
	return b, nil
}
