package objmap

import (
	"errors"

	"github.com/objmap/go-objmap/ir"
	"github.com/objmap/go-objmap/path"
)

var (
	// ErrReadOnly indicates a mutation attempted on a read-only view.
	ErrReadOnly = errors.New("view is read-only")
	// ErrEmptyPath indicates an empty path given to SetPath or DelPath.
	ErrEmptyPath = errors.New("empty path")

	// Re-exported sentinels so callers can match every error kind from
	// this package alone.
	ErrNotFound = ir.ErrNotFound
	ErrType     = ir.ErrType
	ErrRange    = ir.ErrRange
	ErrSyntax   = path.ErrSyntax
)
