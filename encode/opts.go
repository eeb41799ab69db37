package encode

import "github.com/objmap/go-objmap/format"

type EncodeOption func(*EncState)

type EncState struct {
	format   format.Format
	indent   int
	sortKeys bool
	colors   *Colors
}

func EncodeFormat(f format.Format) EncodeOption {
	return func(es *EncState) { es.format = f }
}

// FormatFromOpts extracts the format from encode options.
func FormatFromOpts(opts ...EncodeOption) format.Format {
	es := &EncState{}
	for _, opt := range opts {
		opt(es)
	}
	return es.format
}

// EncodeIndent sets the indentation width. Zero means compact output.
func EncodeIndent(n int) EncodeOption {
	return func(es *EncState) { es.indent = n }
}

// EncodeSortKeys orders object fields lexicographically instead of by
// insertion order.
func EncodeSortKeys(v bool) EncodeOption {
	return func(es *EncState) { es.sortKeys = v }
}

// EncodeColors enables colorized output. Colors apply to JSON output only.
func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.colors = c }
}
