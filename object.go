package objmap

import (
	"fmt"
	"regexp"

	"github.com/objmap/go-objmap/ir"
)

// Object is the view over an object node.
type Object struct {
	base
}

var identifierPat = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

func isIdentifier(name string) bool {
	return identifierPat.MatchString(name)
}

// Field reads a field attribute-style. The name must be an identifier;
// keys that are not identifiers are only reachable through Get. A missing
// field resolves through the view's default factory when one is
// configured, else reports ErrNotFound.
func (o *Object) Field(name string) (any, error) {
	if !isIdentifier(name) {
		return nil, fmt.Errorf("%w: %q is not a valid field identifier", ErrSyntax, name)
	}
	return o.fieldValue(name)
}

// fieldValue resolves name with the default-factory policy applied.
func (o *Object) fieldValue(name string) (any, error) {
	n := ir.Get(o.node, name)
	if n != nil {
		return o.wrap(n), nil
	}
	if o.pol.factory == nil {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	produced := o.pol.factory.New()
	if o.pol.autocreate && !o.pol.readonly {
		o.node.SetField(name, produced)
	}
	return o.wrap(produced), nil
}

// Get reads a key index-style: any key, no default factory.
func (o *Object) Get(key string) (any, error) {
	n := ir.Get(o.node, key)
	if n == nil {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, key)
	}
	return o.wrap(n), nil
}

// GetDefault reads a key, returning def when it is absent.
func (o *Object) GetDefault(key string, def any) any {
	n := ir.Get(o.node, key)
	if n == nil {
		return def
	}
	return o.wrap(n)
}

// SetField writes a field attribute-style; the name must be an identifier.
func (o *Object) SetField(name string, v any) error {
	if o.pol.readonly {
		return ErrReadOnly
	}
	if !isIdentifier(name) {
		return fmt.Errorf("%w: %q is not a valid field identifier", ErrSyntax, name)
	}
	return o.Set(name, v)
}

// Set writes a key index-style.
func (o *Object) Set(key string, v any) error {
	if o.pol.readonly {
		return ErrReadOnly
	}
	n, err := toNode(v)
	if err != nil {
		return err
	}
	o.node.SetField(key, n)
	return nil
}

// Delete removes a key, reporting ErrNotFound if absent.
func (o *Object) Delete(key string) error {
	if o.pol.readonly {
		return ErrReadOnly
	}
	if !o.node.RemoveField(key) {
		return fmt.Errorf("%w: %q", ErrNotFound, key)
	}
	return nil
}

// Has reports whether key is present.
func (o *Object) Has(key string) bool {
	return ir.Get(o.node, key) != nil
}

// Keys returns the field names in document order.
func (o *Object) Keys() []string {
	res := make([]string, len(o.node.Fields))
	for i, f := range o.node.Fields {
		res[i] = f.String
	}
	return res
}

// Values returns the wrapped field values in document order.
func (o *Object) Values() []any {
	res := make([]any, len(o.node.Values))
	for i, v := range o.node.Values {
		res[i] = o.wrap(v)
	}
	return res
}

// Item is one key-value pair of an object view.
type Item struct {
	Key   string
	Value any
}

// Items returns the key-value pairs in document order, values wrapped.
func (o *Object) Items() []Item {
	res := make([]Item, len(o.node.Fields))
	for i := range o.node.Fields {
		res[i] = Item{
			Key:   o.node.Fields[i].String,
			Value: o.wrap(o.node.Values[i]),
		}
	}
	return res
}
