package main

import (
	"github.com/scott-cotton/cli"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	for _, file := range orStdin(args) {
		node, err := readDoc(cfg.MainConfig, file)
		if err != nil {
			return err
		}
		if err := emit(cfg.MainConfig, cc, node); err != nil {
			return err
		}
	}
	return nil
}
