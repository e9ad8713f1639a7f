package dotparser

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIdentifierBareWords(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "simpledot.grammar")
	defer teardown()
	//
	for _, src := range []string{
		"Howdy_there",
		"_so_is_this",
		"foo",
		"a",
		"node1",
		"_private",
		"CamelCase",
		"snake_case_9",
		"graphs", // keyword prefix is fine
		"\xc3\xa9t\xc3\xa9",
	} {
		id, rest, err := run(src, identifier)
		require.NoError(t, err, src)
		assert.Equal(t, src, id)
		assert.Empty(t, rest)
	}
}

func TestIdentifierStopsAtFirstForeignByte(t *testing.T) {
	id, rest, err := run("no-kebab-case", identifier)
	require.NoError(t, err)
	assert.Equal(t, "no", id)
	assert.Equal(t, "-kebab-case", rest)
}

func TestIdentifierSkipsSurroundingWhitespace(t *testing.T) {
	id, rest, err := run("  /* c */ abc  // trailing\n x", identifier)
	require.NoError(t, err)
	assert.Equal(t, "abc", id)
	assert.Equal(t, "x", rest)
}

func TestIdentifierRejects(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"leading digit", "5cantstartwithnumber"},
		{"punctuation", "{"},
		{"keyword graph", "graph"},
		{"keyword digraph", "digraph"},
		{"keyword node", "node"},
		{"keyword edge", "edge"},
		{"keyword strict", "strict x"},
		{"keyword subgraph", "subgraph"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := run(tt.src, identifier)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrSyntax), "got %v", err)
		})
	}
}

func TestKeywordsAreCaseSensitive(t *testing.T) {
	id, _, err := run("Graph", identifier)
	require.NoError(t, err)
	assert.Equal(t, "Graph", id)
}

func TestKeywordFailureNamesTheKeyword(t *testing.T) {
	_, _, err := run("node", identifier)
	var syn *SyntaxError
	require.ErrorAs(t, err, &syn)
	require.NotEmpty(t, syn.Failures)
	assert.Equal(t, "bare_word", syn.Failures[0].Rule)
	assert.Equal(t, `keyword "node" is not an identifier`, syn.Failures[0].Cause)
	assert.Equal(t, []string{"identifier", "bare_word"}, syn.Failures[0].Path)
}

func TestIdentifierNumerals(t *testing.T) {
	tests := []struct {
		src  string
		want string
		rest string
	}{
		{"1.5", "1.5", ""},
		{"-1.5", "-1.5", ""},
		{"3.", "3.", ""},
		{"10.25x", "10.25", "x"},
		{"0.0.0", "0.0", ".0"},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			id, rest, err := run(tt.src, identifier)
			require.NoError(t, err)
			assert.Equal(t, tt.want, id)
			assert.Equal(t, tt.rest, rest)
		})
	}
}

func TestNumeralNeedsDecimalPoint(t *testing.T) {
	_, _, err := run("42", identifier)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnexpectedEOF), "the '.' is expected at end of input: %v", err)

	_, _, err = run("42 x", identifier)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrSyntax))

	_, _, err = run("-.5", identifier)
	require.Error(t, err)
}

func TestIdentifierQuotedStrings(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{"plain", `"hello world"`, "hello world"},
		{"empty", `""`, ""},
		{"escaped quote", `"foo\"bar"`, `foo"bar`},
		{"many escapes", `"lots\"of\"extra\"escaped\"quotes"`, `lots"of"extra"escaped"quotes`},
		{"other backslashes kept", `"a\nb\\c"`, `a\nb\\c`},
		{"keyword inside quotes", `"graph"`, "graph"},
		{"newline inside", "\"two\nlines\"", "two\nlines"},
		{"punctuation", `"a -> b; [x]"`, "a -> b; [x]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, rest, err := run(tt.src, identifier)
			require.NoError(t, err)
			assert.Equal(t, tt.want, id)
			assert.Empty(t, rest)
		})
	}
}

func TestUnterminatedQuotedString(t *testing.T) {
	for _, src := range []string{`"abc`, `"`, `"ends with escape\"`} {
		_, _, err := run(src, identifier)
		require.Error(t, err, src)
		var eof *EOFError
		require.ErrorAs(t, err, &eof, src)
		assert.Equal(t, "unterminated quoted string", eof.Failures[len(eof.Failures)-1].Cause)
	}
}

func TestSurfaceFormIsErased(t *testing.T) {
	bare, _, err := run("abc", identifier)
	require.NoError(t, err)
	quoted, _, err := run(`"abc"`, identifier)
	require.NoError(t, err)
	assert.Equal(t, bare, quoted)
}
