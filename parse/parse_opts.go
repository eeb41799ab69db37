package parse

import "github.com/objmap/go-objmap/format"

type parseOpts struct {
	format format.Format
}

type ParseOption func(*parseOpts)

func ParseFormat(f format.Format) ParseOption {
	return func(po *parseOpts) { po.format = f }
}
