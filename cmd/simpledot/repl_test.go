package main

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"testing"

	"github.com/jblondin/simpledot/dotparser"
	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type scriptedLines struct {
	lines []string
}

func (s *scriptedLines) Readline() (string, error) {
	if len(s.lines) == 0 {
		return "", io.EOF
	}
	line := s.lines[0]
	s.lines = s.lines[1:]
	return line, nil
}

func TestReplEvaluatesEachLine(t *testing.T) {
	var out bytes.Buffer
	r := &repl{
		in: &scriptedLines{lines: []string{
			`digraph { a -> b }`,
			"   ",
			`graph {} garbage`,
			`strict graph G { node [shape=box] }`,
		}},
		out:    &out,
		format: formatText,
	}
	r.run(context.Background())

	assert.Equal(t, 2, r.parsed)
	assert.Equal(t, 1, r.failed)
	assert.Contains(t, out.String(), `edge "a" -> "b"`)
	assert.Contains(t, out.String(), "unexpected trailing input")
	assert.Contains(t, out.String(), `strict graph "G"`)
	assert.Contains(t, out.String(), "shape = box")
}

func TestReplVerboseFailureTrace(t *testing.T) {
	var out bytes.Buffer
	r := &repl{in: &scriptedLines{lines: []string{`graph { a [style=wavy] }`}}, out: &out, verbose: true}
	r.run(context.Background())
	assert.Equal(t, 1, r.failed)
	assert.Contains(t, out.String(), "  at 1:18 graph > statement > ")
	assert.Contains(t, out.String(), "expected style keyword")
}

func TestReplJSON(t *testing.T) {
	var out bytes.Buffer
	r := &repl{in: &scriptedLines{lines: []string{`graph { a }`}}, out: &out, format: formatJSON}
	r.run(context.Background())
	assert.JSONEq(t, `{"kind": "graph", "strict": false, "statements": [
		{"type": "node", "pos": {"line": 1, "column": 9, "offset": 8}, "name": "a"}]}`, out.String())
	assert.True(t, json.Valid(out.Bytes()))
}

func TestGraphTree(t *testing.T) {
	g, err := dotparser.ParseString(`digraph { edge [style=dashed,bold]; a -> b -- c; k = v }`)
	require.NoError(t, err)
	assert.Equal(t, pterm.LeveledList{
		{Level: 0, Text: "digraph"},
		{Level: 1, Text: "edge defaults"},
		{Level: 2, Text: "style = dashed,bold"},
		{Level: 1, Text: `edge "a" -> "b" -- "c"`},
		{Level: 1, Text: `"k" = "v"`},
	}, graphTree(g))
}
