package libdiff

import (
	"strconv"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/objmap/go-objmap/debug"
	"github.com/objmap/go-objmap/ir"
)

// Change is one difference between two trees. A nil From means the value
// was added, a nil To means it was removed; both set means it was
// replaced.
type Change struct {
	Path string
	From *ir.Node
	To   *ir.Node
}

// Diff returns the changes turning from into to, in document order. An
// empty result means the trees are equal.
func Diff(from, to *ir.Node) []Change {
	var res []Change
	diffNode(from, to, "", &res)
	if debug.Diff() {
		debug.Logf("diff produced %d changes\n", len(res))
	}
	return res
}

func diffNode(from, to *ir.Node, at string, res *[]Change) {
	if from.Type != to.Type {
		*res = append(*res, Change{Path: at, From: from, To: to})
		return
	}
	switch from.Type {
	case ir.ObjectType:
		diffObject(from, to, at, res)
	case ir.ArrayType:
		diffArray(from, to, at, res)
	default:
		if !ir.Equal(from, to) {
			*res = append(*res, Change{Path: at, From: from, To: to})
		}
	}
}

// diffObject aligns the two field-name sequences with an LCS diff, then
// recurses on values of shared names.
func diffObject(from, to *ir.Node, at string, res *[]Change) {
	nameMap := map[string]rune{}
	runeMap := map[rune]string{}
	fromRunes := mapFieldsTo(nameMap, runeMap, from)
	toRunes := mapFieldsTo(nameMap, runeMap, to)
	diffCfg := diffpatch.New()
	diffs := diffCfg.DiffMainRunes(fromRunes, toRunes, false)
	fi, ti := 0, 0
	for i := range diffs {
		diff := &diffs[i]
		switch diff.Type {
		case diffpatch.DiffDelete:
			for _, r := range diff.Text {
				*res = append(*res, Change{
					Path: fieldPath(at, runeMap[r]),
					From: from.Values[fi],
				})
				fi++
			}
		case diffpatch.DiffEqual:
			for _, r := range diff.Text {
				diffNode(from.Values[fi], to.Values[ti], fieldPath(at, runeMap[r]), res)
				fi++
				ti++
			}
		case diffpatch.DiffInsert:
			for _, r := range diff.Text {
				*res = append(*res, Change{
					Path: fieldPath(at, runeMap[r]),
					To:   to.Values[ti],
				})
				ti++
			}
		}
	}
}

// diffArray aligns elements by their serialized form. Equal runs carry no
// changes; inserts and deletes are reported at their index in to and from
// respectively.
func diffArray(from, to *ir.Node, at string, res *[]Change) {
	textMap := map[string]rune{}
	fromRunes := mapValuesTo(textMap, from)
	toRunes := mapValuesTo(textMap, to)
	diffCfg := diffpatch.New()
	diffs := diffCfg.DiffMainRunes(fromRunes, toRunes, false)
	fi, ti := 0, 0
	for i := range diffs {
		diff := &diffs[i]
		switch diff.Type {
		case diffpatch.DiffDelete:
			for range diff.Text {
				*res = append(*res, Change{
					Path: at + "[" + strconv.Itoa(fi) + "]",
					From: from.Values[fi],
				})
				fi++
			}
		case diffpatch.DiffEqual:
			fi += len([]rune(diff.Text))
			ti += len([]rune(diff.Text))
		case diffpatch.DiffInsert:
			for range diff.Text {
				*res = append(*res, Change{
					Path: at + "[" + strconv.Itoa(ti) + "]",
					To:   to.Values[ti],
				})
				ti++
			}
		}
	}
}

func fieldPath(at, name string) string {
	if at == "" {
		return name
	}
	return at + "." + name
}

func mapFieldsTo(m map[string]rune, im map[rune]string, node *ir.Node) []rune {
	rs := make([]rune, len(node.Fields))
	for i := range node.Fields {
		f := node.Fields[i].String
		r, ok := m[f]
		if !ok {
			r = rune(len(m))
			m[f] = r
			im[r] = f
		}
		rs[i] = r
	}
	return rs
}

func mapValuesTo(m map[string]rune, node *ir.Node) []rune {
	rs := make([]rune, len(node.Values))
	for i := range node.Values {
		d, err := node.Values[i].MarshalJSON()
		text := string(d)
		if err != nil {
			text = "<unencodable>"
		}
		r, ok := m[text]
		if !ok {
			r = rune(len(m))
			m[text] = r
		}
		rs[i] = r
	}
	return rs
}
