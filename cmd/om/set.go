package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/objmap/go-objmap/ir"
	"github.com/objmap/go-objmap/parse"
	"github.com/objmap/go-objmap/path"
)

func set(cfg *SetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Set.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) < 2 {
		return fmt.Errorf("%w: set requires a path and a value", cli.ErrUsage)
	}
	p, err := path.Parse(args[0], path.Strict())
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	if p == nil {
		return fmt.Errorf("%w: empty path", cli.ErrUsage)
	}
	value, err := parseValue(cfg, args[1])
	if err != nil {
		return err
	}
	for _, file := range orStdin(args[2:]) {
		node, err := readDoc(cfg.MainConfig, file)
		if err != nil {
			return err
		}
		if err := ir.SetPath(node, p, value.Clone(), !cfg.NoCreate); err != nil {
			return fmt.Errorf("error setting %q in %s: %w", args[0], file, err)
		}
		if err := emit(cfg.MainConfig, cc, node); err != nil {
			return err
		}
	}
	return nil
}

// parseValue decodes the value argument as a document fragment, falling
// back to a string literal when it does not parse (or always with -s).
func parseValue(cfg *SetConfig, arg string) (*ir.Node, error) {
	if cfg.String {
		return ir.FromString(arg), nil
	}
	node, err := parse.Parse([]byte(arg), cfg.parseOpts()...)
	if err == nil && node != nil {
		return node, nil
	}
	return ir.FromString(arg), nil
}
