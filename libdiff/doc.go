// Package libdiff computes structural diffs between document trees.
//
// # Usage
//
//	// Compute the changes turning one tree into another
//	changes := libdiff.Diff(fromNode, toNode)
//	for _, c := range changes {
//	    // c.Path addresses the changed location; From/To hold the
//	    // removed and added values (nil for pure adds/removes).
//	}
//
// Object fields and array elements are aligned with a longest-common-
// subsequence diff so reordered or shifted content produces minimal
// changes.
package libdiff
