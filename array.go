package objmap

import (
	"fmt"
)

// Array is the view over an array node.
type Array struct {
	base
}

// At reads the element at index i.
func (a *Array) At(i int) (any, error) {
	if i < 0 || i >= len(a.node.Values) {
		return nil, fmt.Errorf("%w: index %d (len %d)", ErrRange, i, len(a.node.Values))
	}
	return a.wrap(a.node.Values[i]), nil
}

// SetAt replaces the element at index i. Unlike SetPath, it does not grow
// the array.
func (a *Array) SetAt(i int, v any) error {
	if a.pol.readonly {
		return ErrReadOnly
	}
	if i < 0 || i >= len(a.node.Values) {
		return fmt.Errorf("%w: index %d (len %d)", ErrRange, i, len(a.node.Values))
	}
	n, err := toNode(v)
	if err != nil {
		return err
	}
	return a.node.SetIndex(i, n, false)
}

// Append adds an element at the end.
func (a *Array) Append(v any) error {
	if a.pol.readonly {
		return ErrReadOnly
	}
	n, err := toNode(v)
	if err != nil {
		return err
	}
	return a.node.SetIndex(len(a.node.Values), n, true)
}

// Delete removes the element at index i, shifting subsequent elements
// down.
func (a *Array) Delete(i int) error {
	if a.pol.readonly {
		return ErrReadOnly
	}
	if !a.node.RemoveIndex(i) {
		return fmt.Errorf("%w: index %d (len %d)", ErrRange, i, len(a.node.Values))
	}
	return nil
}

// Elements returns the wrapped elements in order.
func (a *Array) Elements() []any {
	res := make([]any, len(a.node.Values))
	for i, v := range a.node.Values {
		res[i] = a.wrap(v)
	}
	return res
}
