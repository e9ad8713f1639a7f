package dotparser

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshalJSON(t *testing.T) {
	g := mustParse(t, `strict digraph G { node [style=dashed,bold]; a -> b [shape=box]; c; k = v }`)
	data, err := json.Marshal(g)
	require.NoError(t, err)

	const want = `{
  "kind": "digraph",
  "strict": true,
  "id": "G",
  "statements": [
    {"type": "attribute", "pos": {"line": 1, "column": 20, "offset": 19}, "kind": "node",
     "attributes": [{"name": "style", "value": ["dashed", "bold"]}]},
    {"type": "edge", "pos": {"line": 1, "column": 46, "offset": 45}, "chain": ["a", "b"], "ops": ["->"],
     "attributes": [{"name": "shape", "value": "box"}]},
    {"type": "node", "pos": {"line": 1, "column": 66, "offset": 65}, "name": "c"},
    {"type": "definition", "pos": {"line": 1, "column": 69, "offset": 68}, "lhs": "k", "rhs": "v"}
  ]
}`
	assert.JSONEq(t, want, string(data))
}

func TestMarshalJSONEmptyGraph(t *testing.T) {
	data, err := json.Marshal(mustParse(t, `graph {}`))
	require.NoError(t, err)
	assert.JSONEq(t, `{"kind": "graph", "strict": false, "statements": []}`, string(data))
}

func TestFprint(t *testing.T) {
	g := mustParse(t, "digraph G {\n  node [shape=box]\n  a -> b -- c [style=bold,dashed]\n  n\n  k = \"v w\"\n}")
	var buf bytes.Buffer
	require.NoError(t, Fprint(&buf, g))

	want := strings.Join([]string{
		`Graph kind=digraph strict=false id="G"`,
		`  AttributeStatement kind=node @2:3`,
		`    shape = box`,
		`  EdgeStatement chain="a" -> "b" -- "c" @3:3`,
		`    style = [bold dashed]`,
		`  NodeStatement name="n" @4:3`,
		`  DefinitionStatement "k" = "v w" @5:3`,
		``,
	}, "\n")
	assert.Equal(t, want, buf.String())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, assert.AnError }

func TestFprintReportsWriteError(t *testing.T) {
	err := Fprint(failingWriter{}, mustParse(t, `graph { a }`))
	assert.ErrorIs(t, err, assert.AnError)
}
