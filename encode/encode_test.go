package encode

import (
	"bytes"
	"testing"

	"github.com/objmap/go-objmap/format"
	"github.com/objmap/go-objmap/ir"
)

func mustNode(t *testing.T, s string) *ir.Node {
	t.Helper()
	node := &ir.Node{}
	if err := node.UnmarshalJSON([]byte(s)); err != nil {
		t.Fatalf("UnmarshalJSON(%q) error = %v", s, err)
	}
	return node
}

func TestEncodeJSON(t *testing.T) {
	node := mustNode(t, `{"z":1,"a":{"b":[1,2]}}`)
	buf := bytes.NewBuffer(nil)
	if err := Encode(node, buf); err != nil {
		t.Fatal(err)
	}
	if got := buf.String(); got != `{"z":1,"a":{"b":[1,2]}}`+"\n" {
		t.Errorf("Encode() = %q", got)
	}
}

func TestEncodeJSONIndent(t *testing.T) {
	node := mustNode(t, `{"a":[1]}`)
	buf := bytes.NewBuffer(nil)
	if err := Encode(node, buf, EncodeIndent(2)); err != nil {
		t.Fatal(err)
	}
	want := "{\n  \"a\": [\n    1\n  ]\n}\n"
	if got := buf.String(); got != want {
		t.Errorf("Encode(indent 2) = %q, want %q", got, want)
	}
}

func TestEncodeSortKeys(t *testing.T) {
	node := mustNode(t, `{"z":1,"a":{"m":1,"b":2}}`)
	buf := bytes.NewBuffer(nil)
	if err := Encode(node, buf, EncodeSortKeys(true)); err != nil {
		t.Fatal(err)
	}
	if got := buf.String(); got != `{"a":{"b":2,"m":1},"z":1}`+"\n" {
		t.Errorf("Encode(sort) = %q", got)
	}
	// input order untouched
	if node.Fields[0].String != "z" {
		t.Errorf("sortKeys mutated the input node")
	}
}

func TestEncodeYAML(t *testing.T) {
	node := mustNode(t, `{"z":1,"a":["x",true]}`)
	buf := bytes.NewBuffer(nil)
	if err := Encode(node, buf, EncodeFormat(format.YAMLFormat)); err != nil {
		t.Fatal(err)
	}
	want := "z: 1\na:\n- x\n- true\n"
	if got := buf.String(); got != want {
		t.Errorf("Encode(yaml) = %q, want %q", got, want)
	}
}

func TestMustString(t *testing.T) {
	node := mustNode(t, `{"a":1}`)
	if got := MustString(node); got != `{"a":1}` {
		t.Errorf("MustString() = %q", got)
	}
}

func TestEncodeColorJSONParses(t *testing.T) {
	node := mustNode(t, `{"a":[1,null],"b":"x"}`)
	buf := bytes.NewBuffer(nil)
	if err := Encode(node, buf, EncodeColors(NewColors())); err != nil {
		t.Fatal(err)
	}
	if buf.Len() == 0 {
		t.Fatalf("empty color output")
	}
	// the output contains the document text whether or not escapes are
	// emitted for this terminal
	for _, frag := range []string{`"a"`, "null", `"x"`} {
		if !bytes.Contains(buf.Bytes(), []byte(frag)) {
			t.Errorf("color output missing %s: %q", frag, buf.String())
		}
	}
}
