package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/objmap/go-objmap/encode"
	"github.com/objmap/go-objmap/format"
	"github.com/objmap/go-objmap/parse"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color bool `cli:"name=color desc='encode with color'"`
	Sort  bool `cli:"name=sort desc='sort object keys in output'"`

	J bool `cli:"name=j aliases=json desc='do i/o in json'"`
	Y bool `cli:"name=y aliases=yaml desc='do i/o in yaml'"`

	InFormat, OutFormat *format.Format
	Indent              int

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fps ...**format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		for _, fp := range fps {
			*fp = &f
		}
		return f, nil
	})
}

func (cfg *MainConfig) mkIndent() func(cc *cli.Context, a string) (any, error) {
	return func(_ *cli.Context, a string) (any, error) {
		n, err := strconv.Atoi(a)
		if err != nil || n < 0 {
			return nil, fmt.Errorf("%w: bad indent %q", cli.ErrUsage, a)
		}
		cfg.Indent = n
		return n, nil
	}
}

func (cfg *MainConfig) parseOpts() []parse.ParseOption {
	var fmat format.Format
	switch {
	case cfg.Y:
		fmat = format.YAMLFormat
	case cfg.J:
		fmat = format.JSONFormat
	}
	if cfg.InFormat != nil {
		fmat = *cfg.InFormat
	}
	return []parse.ParseOption{
		parse.ParseFormat(fmat),
	}
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	var fmat format.Format
	switch {
	case cfg.Y:
		fmat = format.YAMLFormat
	case cfg.J:
		fmat = format.JSONFormat
	}
	if cfg.OutFormat != nil {
		fmat = *cfg.OutFormat
	}
	res := []encode.EncodeOption{
		encode.EncodeFormat(fmat),
		encode.EncodeIndent(cfg.Indent),
		encode.EncodeSortKeys(cfg.Sort),
	}
	if cfg.Color {
		res = append(res, encode.EncodeColors(encode.NewColors()))
		return res
	}
	f, ok := w.(*os.File)
	if !ok {
		return res
	}
	if isatty.IsTerminal(f.Fd()) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

// useColor reports whether non-document output (diff lines) should be
// colorized.
func (cfg *MainConfig) useColor(w io.Writer) bool {
	if cfg.Color {
		return true
	}
	f, ok := w.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}

type GetConfig struct {
	*MainConfig

	Get *cli.Command
}

type SetConfig struct {
	*MainConfig

	String   bool `cli:"name=s desc='treat value as a string literal'"`
	NoCreate bool `cli:"name=n desc='do not create missing parent containers'"`

	Set *cli.Command
}

type DelConfig struct {
	*MainConfig

	Strict bool `cli:"name=strict desc='error when the target is missing'"`

	Del *cli.Command
}

type ViewConfig struct {
	*MainConfig

	View *cli.Command
}

type MergeConfig struct {
	*MainConfig

	String bool `cli:"name=s desc='consider patch a string argument'"`
	File   bool `cli:"name=f desc='consider patch a file path'"`

	Merge *cli.Command
}

type DiffConfig struct {
	*MainConfig

	Diff *cli.Command
}

type FilterConfig struct {
	*MainConfig

	Filter *cli.Command
}
