// Package objmap provides path-addressable, view-based access to JSON
// document trees.
//
// # Overview
//
// A document is held as an ir.Node tree. Views wrap containers in that tree
// without copying: an Object view wraps an object node, an Array view wraps
// an array node, and mutations through any view are visible through every
// other view aliasing the same node.
//
//	v, err := objmap.New(`{"a": {"b": [1, 2, 3]}}`)
//	v.GetPath("a.b[0]", nil)      // 1
//	v.SetPath("a.c.d", "x")       // creates {"c": {"d": "x"}} under "a"
//	v.DelPath("a.b[1]")
//
// # Views and Policy
//
// Views carry an access policy fixed at construction: read-only, a default
// factory for missing fields, and whether factory-produced defaults are
// persisted on read (autocreate). Derived views share the parent's policy.
//
//	v, err := objmap.New(data,
//	    objmap.WithDefault(objmap.EmptyObject()),
//	    objmap.AutocreateMissing())
//
// Read-only views reject every mutation with ErrReadOnly before touching
// the tree.
//
// # Paths
//
// Paths use dotted identifiers and bracketed indices ("a.b[0].c"); see the
// path package. GetPath recovers locally from every failure by returning
// the caller-supplied default; SetPath and DelPath surface the first
// failure.
//
// # Concurrency
//
// Views and trees are not synchronized. Callers must serialize mutation,
// and must not mutate a tree concurrently with iteration over it.
package objmap
