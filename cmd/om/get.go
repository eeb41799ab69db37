package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/objmap/go-objmap/ir"
	"github.com/objmap/go-objmap/path"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires one argument, a path", cli.ErrUsage)
	}
	p, err := path.Parse(args[0], path.Strict())
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	for _, file := range orStdin(args[1:]) {
		node, err := readDoc(cfg.MainConfig, file)
		if err != nil {
			return err
		}
		res, err := ir.Resolve(node, p)
		if err != nil {
			return fmt.Errorf("error getting %q from %s: %w", args[0], file, err)
		}
		if err := emit(cfg.MainConfig, cc, res); err != nil {
			return err
		}
	}
	return nil
}
