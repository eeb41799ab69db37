package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/objmap/go-objmap/ir"
	"github.com/objmap/go-objmap/path"
)

func del(cfg *DelConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Del.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: del requires one argument, a path", cli.ErrUsage)
	}
	p, err := path.Parse(args[0], path.Strict())
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	if p == nil {
		return fmt.Errorf("%w: empty path", cli.ErrUsage)
	}
	for _, file := range orStdin(args[1:]) {
		node, err := readDoc(cfg.MainConfig, file)
		if err != nil {
			return err
		}
		if err := ir.DelPath(node, p, cfg.Strict); err != nil {
			return fmt.Errorf("error deleting %q in %s: %w", args[0], file, err)
		}
		if err := emit(cfg.MainConfig, cc, node); err != nil {
			return err
		}
	}
	return nil
}
