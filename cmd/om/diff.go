package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/scott-cotton/cli"

	"github.com/objmap/go-objmap/encode"
	"github.com/objmap/go-objmap/libdiff"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires two arguments", cli.ErrUsage)
	}
	from, err := readDoc(cfg.MainConfig, args[0])
	if err != nil {
		return err
	}
	to, err := readDoc(cfg.MainConfig, args[1])
	if err != nil {
		return err
	}
	changes := libdiff.Diff(from, to)
	colorize := cfg.useColor(cc.Out)
	red, green := fmt.Sprintf, fmt.Sprintf
	if colorize {
		red, green = color.RedString, color.GreenString
	}
	for _, c := range changes {
		at := c.Path
		if at == "" {
			at = "."
		}
		if c.From != nil {
			fmt.Fprintln(cc.Out, red("- %s: %s", at, encode.MustString(c.From)))
		}
		if c.To != nil {
			fmt.Fprintln(cc.Out, green("+ %s: %s", at, encode.MustString(c.To)))
		}
	}
	if len(changes) != 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}
