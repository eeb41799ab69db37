// Package ir provides the tree representation for JSON documents.
//
// # Overview
//
// A document is a tree of nodes. All documents (whether parsed from text or
// built programmatically) are represented as ir.Node trees.
//
// The IR is a recursive tagged union: values are placed in fields depending
// on the node type. It contains no position information from input
// documents, making it purely semantic.
//
// # Node Types
//
// The Type field indicates the node's type:
//
//   - NullType: null value
//   - BoolType: boolean (true/false)
//   - NumberType: numeric value (int64 or float64)
//   - StringType: string value
//   - ArrayType: ordered list of nodes
//   - ObjectType: key-value pairs (fields and values)
//
// # Creating Nodes
//
// Use constructor functions to create nodes:
//
//	node := ir.FromString("hello")
//	num := ir.FromInt(42)
//	flag := ir.FromBool(true)
//	obj := ir.FromMap(map[string]*ir.Node{
//	    "key": ir.FromString("value"),
//	})
//	arr := ir.FromSlice([]*ir.Node{
//	    ir.FromInt(1),
//	    ir.FromInt(2),
//	})
//
// # Structure Constraints
//
// For ObjectType nodes, Fields[i] is the key for the value at Values[i], so
// there are always as many fields as values. Fields are string typed and
// field order is insertion order; it is preserved through mutation and
// serialization.
//
// Every child node carries Parent, ParentIndex and ParentField back-links.
// The mutators in this package (SetField, SetIndex, RemoveField,
// RemoveIndex, ReplaceWith) maintain these links; code that edits Fields or
// Values directly is responsible for them.
//
// Nodes are not safe for concurrent mutation. Callers that share a tree
// across goroutines must provide their own synchronization.
package ir
