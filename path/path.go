package path

import (
	"bytes"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Path represents one segment of a parsed path and links to the rest.
// Exactly one of Field and Index is set per segment. A nil *Path is the
// empty path, addressing the root.
type Path struct {
	Field *string // object field name
	Index *int    // array index
	Next  *Path   // next segment, nil for the last
}

// ErrSyntax indicates input rejected by strict parsing.
var ErrSyntax = errors.New("path syntax error")

type parseOpts struct {
	strict bool
}

type Option func(*parseOpts)

// Strict makes Parse reject input that matches neither the identifier nor
// the bracket-index pattern. Without it such input is silently skipped.
func Strict() Option {
	return func(o *parseOpts) { o.strict = true }
}

var segmentPat = regexp.MustCompile(`[A-Za-z_][A-Za-z0-9_]*|\[[0-9]+\]`)

// Parse parses a path string. An empty or all-skipped input yields nil, the
// root path.
//
// The input is first normalized by replacing every '.' with a space, then
// scanned left to right for non-overlapping identifier or [index] matches.
func Parse(s string, opts ...Option) (*Path, error) {
	o := &parseOpts{}
	for _, f := range opts {
		f(o)
	}
	normalized := strings.ReplaceAll(s, ".", " ")
	matches := segmentPat.FindAllStringIndex(normalized, -1)
	if o.strict {
		if err := checkGaps(normalized, matches); err != nil {
			return nil, err
		}
	}
	var head, tail *Path
	for _, m := range matches {
		tok := normalized[m[0]:m[1]]
		seg := &Path{}
		if tok[0] == '[' {
			i, err := strconv.Atoi(tok[1 : len(tok)-1])
			if err != nil {
				return nil, fmt.Errorf("%w: bad index %q", ErrSyntax, tok)
			}
			seg.Index = &i
		} else {
			seg.Field = &tok
		}
		if head == nil {
			head = seg
		} else {
			tail.Next = seg
		}
		tail = seg
	}
	return head, nil
}

// checkGaps verifies that the text between matches is only spaces.
func checkGaps(s string, matches [][]int) error {
	prev := 0
	for _, m := range matches {
		if gap := strings.TrimSpace(s[prev:m[0]]); gap != "" {
			return fmt.Errorf("%w: unexpected %q", ErrSyntax, gap)
		}
		prev = m[1]
	}
	if gap := strings.TrimSpace(s[prev:]); gap != "" {
		return fmt.Errorf("%w: unexpected %q", ErrSyntax, gap)
	}
	return nil
}

// String returns the canonical path string representation.
// Example:
//
//	Path{Field: &"a", Next: &Path{Index: &0, ...}} → "a[0]"
func (p *Path) String() string {
	if p == nil {
		return ""
	}
	buf := bytes.NewBuffer(nil)
	for x := p; x != nil; x = x.Next {
		if x.Field != nil {
			if buf.Len() > 0 {
				buf.WriteByte('.')
			}
			buf.WriteString(*x.Field)
			continue
		}
		if x.Index != nil {
			fmt.Fprintf(buf, "[%d]", *x.Index)
		}
	}
	return buf.String()
}

// SegmentString returns the canonical string of the current segment only.
func (p *Path) SegmentString() string {
	if p == nil {
		return ""
	}
	if p.Field != nil {
		return *p.Field
	}
	if p.Index != nil {
		return fmt.Sprintf("[%d]", *p.Index)
	}
	return ""
}

// Len returns the number of segments.
func (p *Path) Len() int {
	n := 0
	for x := p; x != nil; x = x.Next {
		n++
	}
	return n
}

// Field builds a field segment.
func Field(name string) *Path {
	return &Path{Field: &name}
}

// Index builds an index segment.
func Index(i int) *Path {
	return &Path{Index: &i}
}

// Append returns p extended with seg at the end. p is not modified; the
// returned path shares no segments with p.
func (p *Path) Append(seg *Path) *Path {
	if p == nil {
		return seg
	}
	head := &Path{Field: p.Field, Index: p.Index}
	tail := head
	for x := p.Next; x != nil; x = x.Next {
		cp := &Path{Field: x.Field, Index: x.Index}
		tail.Next = cp
		tail = cp
	}
	tail.Next = seg
	return head
}
