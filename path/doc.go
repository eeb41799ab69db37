// Package path provides parsing and rendering of dotted paths.
//
// Paths address positions in a document tree using dotted identifiers for
// object fields and bracketed non-negative integers for array indices:
//
//	"a.b" - Object field access
//	"xs[0]" - Array index access
//	"a.b[0].c" - Mixed
//
// # Usage
//
//	// Parse a path
//	p, err := path.Parse("users[0].name")
//
//	// Walk the segments
//	for seg := p; seg != nil; seg = seg.Next {
//	    ...
//	}
//
// The grammar is deliberately restricted: field names must be identifiers
// matching [A-Za-z_][A-Za-z0-9_]*, and indices are non-negative decimal
// integers. There are no wildcards, slices, quoting, or filters.
//
// By default, input that matches neither pattern is skipped, so stray
// separators and malformed fragments are ignored. The Strict option makes
// such input a parse error instead.
package path
