// Package debug provides env-gated debug logging for objmap internals.
//
// Gates are read once at process start from boolean environment variables:
//
//	OBJMAP_DEBUG_PATH  - path traversal (get/set/delete)
//	OBJMAP_DEBUG_MERGE - merge and merge-patch operations
//	OBJMAP_DEBUG_DIFF  - structural diff
package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Path  bool
	Merge bool
	Diff  bool
}

var d *debug

func init() {
	d = &debug{}
	d.Path = boolEnv("OBJMAP_DEBUG_PATH")
	d.Merge = boolEnv("OBJMAP_DEBUG_MERGE")
	d.Diff = boolEnv("OBJMAP_DEBUG_DIFF")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Path() bool {
	return d.Path
}
func Merge() bool {
	return d.Merge
}
func Diff() bool {
	return d.Diff
}
