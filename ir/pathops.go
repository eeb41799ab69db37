package ir

import (
	"fmt"

	"github.com/objmap/go-objmap/path"
)

// Resolve walks p strictly from root and returns the node at the target
// location. A field segment applied to a non-object or an index segment
// applied to a non-array reports ErrType; an absent key reports
// ErrNotFound; an out-of-bounds index reports ErrRange. A nil p resolves to
// root.
func Resolve(root *Node, p *path.Path) (*Node, error) {
	cur := root
	for seg := p; seg != nil; seg = seg.Next {
		switch {
		case seg.Field != nil:
			if cur.Type != ObjectType {
				return nil, fmt.Errorf("%w: expected object before %q in %q, got %s",
					ErrType, *seg.Field, p, cur.Type)
			}
			next := Get(cur, *seg.Field)
			if next == nil {
				return nil, fmt.Errorf("%w: missing key %q in %q", ErrNotFound, *seg.Field, p)
			}
			cur = next
		case seg.Index != nil:
			if cur.Type != ArrayType {
				return nil, fmt.Errorf("%w: expected array before [%d] in %q, got %s",
					ErrType, *seg.Index, p, cur.Type)
			}
			i := *seg.Index
			if i >= len(cur.Values) {
				return nil, fmt.Errorf("%w: index %d out of range in %q (len %d)",
					ErrRange, i, p, len(cur.Values))
			}
			cur = cur.Values[i]
		}
	}
	return cur, nil
}

// SetPath walks all segments of p but the last, descending into existing
// containers, and assigns v at the final segment. When createParents is
// true, missing intermediate containers are created, with the kind inferred
// by one-segment lookahead: an index segment next means a new array,
// anything else a new object. Arrays grow with null padding when an index
// is beyond the current length.
//
// A null value under a field segment counts as missing and is replaced by a
// created container. Intermediates created before a later failure are not
// rolled back.
func SetPath(root *Node, p *path.Path, v *Node, createParents bool) error {
	if p == nil {
		return fmt.Errorf("empty path")
	}
	cur := root
	for seg := p; seg != nil; seg = seg.Next {
		last := seg.Next == nil
		switch {
		case seg.Field != nil:
			if cur.Type != ObjectType {
				return fmt.Errorf("%w: expected object in %q, got %s", ErrType, p, cur.Type)
			}
			if last {
				cur.SetField(*seg.Field, v)
				return nil
			}
			next := Get(cur, *seg.Field)
			if next == nil || next.Type == NullType {
				if !createParents {
					return fmt.Errorf("%w: missing key %q in %q", ErrNotFound, *seg.Field, p)
				}
				next = containerFor(seg.Next)
				cur.SetField(*seg.Field, next)
			}
			cur = next
		case seg.Index != nil:
			if cur.Type != ArrayType {
				return fmt.Errorf("%w: expected array in %q, got %s", ErrType, p, cur.Type)
			}
			i := *seg.Index
			if last {
				if i >= len(cur.Values) && !createParents {
					return fmt.Errorf("%w: index %d out of range in %q", ErrRange, i, p)
				}
				return cur.SetIndex(i, v, true)
			}
			if i >= len(cur.Values) {
				if !createParents {
					return fmt.Errorf("%w: index %d out of range in %q", ErrRange, i, p)
				}
				if err := cur.SetIndex(i, containerFor(seg.Next), true); err != nil {
					return err
				}
			}
			cur = cur.Values[i]
		}
	}
	return nil
}

// containerFor picks the container kind for a created intermediate by
// looking at the segment that will address into it.
func containerFor(next *path.Path) *Node {
	if next != nil && next.Index != nil {
		return &Node{Type: ArrayType}
	}
	return &Node{Type: ObjectType}
}

// DelPath removes the element addressed by p. The walk to the parent of the
// target is strict; when strict is false any failure along it makes the
// whole delete a silent no-op. At the last segment, a missing key or
// out-of-range index reports ErrNotFound or ErrRange when strict, and
// no-ops otherwise. A wrong container kind at the parent always reports
// ErrType.
func DelPath(root *Node, p *path.Path, strict bool) error {
	if p == nil {
		return fmt.Errorf("empty path")
	}
	parent := root
	for seg := p; seg.Next != nil; seg = seg.Next {
		next, err := Resolve(parent, &path.Path{Field: seg.Field, Index: seg.Index})
		if err != nil {
			if strict {
				return fmt.Errorf("%w: missing segment before end at %q in %q",
					ErrNotFound, seg.SegmentString(), p)
			}
			return nil
		}
		parent = next
	}
	last := p
	for last.Next != nil {
		last = last.Next
	}
	switch {
	case last.Field != nil:
		if parent.Type != ObjectType {
			return fmt.Errorf("%w: expected object for deletion in %q, got %s", ErrType, p, parent.Type)
		}
		if !parent.RemoveField(*last.Field) && strict {
			return fmt.Errorf("%w: missing key %q", ErrNotFound, *last.Field)
		}
	case last.Index != nil:
		if parent.Type != ArrayType {
			return fmt.Errorf("%w: expected array for deletion in %q, got %s", ErrType, p, parent.Type)
		}
		if !parent.RemoveIndex(*last.Index) && strict {
			return fmt.Errorf("%w: index %d out of range", ErrRange, *last.Index)
		}
	}
	return nil
}
