package main

import (
	"fmt"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/objmap/go-objmap"
	"github.com/objmap/go-objmap/ir"
	"github.com/objmap/go-objmap/parse"
)

func merge(cfg *MergeConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Merge.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.String && cfg.File {
		return fmt.Errorf("%w: -s and -f are mutually exclusive", cli.ErrUsage)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: merge requires one argument, a patch", cli.ErrUsage)
	}
	patch, err := patchArg(cfg, args[0])
	if err != nil {
		return err
	}
	patchJSON, err := patch.MarshalJSON()
	if err != nil {
		return err
	}
	for _, file := range orStdin(args[1:]) {
		node, err := readDoc(cfg.MainConfig, file)
		if err != nil {
			return err
		}
		obj, err := objmap.NewObject(node, objmap.NoCopy())
		if err != nil {
			return fmt.Errorf("cannot merge into %s: %w", file, err)
		}
		if err := obj.MergePatch(patchJSON); err != nil {
			return fmt.Errorf("error merging into %s: %w", file, err)
		}
		if err := emit(cfg.MainConfig, cc, node); err != nil {
			return err
		}
	}
	return nil
}

// patchArg interprets the patch argument: a file path with -f, a document
// string with -s, and otherwise a file path if one exists, else a string.
func patchArg(cfg *MergeConfig, arg string) (*ir.Node, error) {
	asFile := cfg.File
	if !cfg.String && !cfg.File {
		_, err := os.Stat(arg)
		asFile = err == nil
	}
	if asFile {
		return readDoc(cfg.MainConfig, arg)
	}
	node, err := parse.Parse([]byte(arg), cfg.parseOpts()...)
	if err != nil {
		return nil, fmt.Errorf("error decoding patch: %w", err)
	}
	return node, nil
}
