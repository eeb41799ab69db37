package ir

// Mutators for object and array nodes. All of these keep the parent
// back-links of affected children consistent.

// fieldIndex returns the position of field in an object node, or -1.
func (y *Node) fieldIndex(field string) int {
	for i := range y.Fields {
		if y.Fields[i].String == field {
			return i
		}
	}
	return -1
}

// SetField sets field to v in an object node, replacing an existing value
// in place or appending a new field at the end.
func (y *Node) SetField(field string, v *Node) {
	v.ParentField = field
	v.Parent = y
	if i := y.fieldIndex(field); i != -1 {
		v.ParentIndex = i
		y.Values[i] = v
		return
	}
	i := len(y.Fields)
	v.ParentIndex = i
	yField := &Node{
		Parent:      y,
		ParentIndex: i,
		ParentField: field,
		Type:        StringType,
		String:      field,
	}
	y.Fields = append(y.Fields, yField)
	y.Values = append(y.Values, v)
}

// RemoveField removes field from an object node, reporting whether it was
// present.
func (y *Node) RemoveField(field string) bool {
	i := y.fieldIndex(field)
	if i == -1 {
		return false
	}
	y.Fields = append(y.Fields[:i], y.Fields[i+1:]...)
	y.Values = append(y.Values[:i], y.Values[i+1:]...)
	for j := i; j < len(y.Values); j++ {
		y.Fields[j].ParentIndex = j
		y.Values[j].ParentIndex = j
	}
	return true
}

// SetIndex sets element i of an array node. When grow is true and i is
// beyond the current length, the array is extended with null elements up to
// and including i; when grow is false such an i reports ErrRange.
func (y *Node) SetIndex(i int, v *Node, grow bool) error {
	if i >= len(y.Values) {
		if !grow {
			return ErrRange
		}
		for j := len(y.Values); j <= i; j++ {
			null := Null()
			null.Parent = y
			null.ParentIndex = j
			y.Values = append(y.Values, null)
		}
	}
	v.Parent = y
	v.ParentIndex = i
	y.Values[i] = v
	return nil
}

// RemoveIndex removes element i of an array node, shifting subsequent
// elements down, and reports whether i was in range.
func (y *Node) RemoveIndex(i int) bool {
	if i < 0 || i >= len(y.Values) {
		return false
	}
	y.Values = append(y.Values[:i], y.Values[i+1:]...)
	for j := i; j < len(y.Values); j++ {
		y.Values[j].ParentIndex = j
	}
	return true
}

// ReplaceWith overwrites this node's content with o's, re-parenting o's
// children onto this node. The node keeps its own position in the
// surrounding tree, so aliases holding a reference to it observe the new
// content. o must not be used afterwards.
func (y *Node) ReplaceWith(o *Node) {
	parent, pIdx, pField := y.Parent, y.ParentIndex, y.ParentField
	*y = *o
	y.Parent, y.ParentIndex, y.ParentField = parent, pIdx, pField
	for _, f := range y.Fields {
		f.Parent = y
	}
	for _, v := range y.Values {
		v.Parent = y
	}
}
