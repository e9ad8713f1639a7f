package dotparser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSkipInsignificantInput(t *testing.T) {
	tests := []struct {
		name string
		src  string
		rest string
	}{
		{"nothing", "a", "a"},
		{"spaces and tabs", " \t a", "a"},
		{"newlines", "\n\r\n  a", "a"},
		{"line comment", "// comment\na", "a"},
		{"line comment at end", "// comment", ""},
		{"block comment", "/* one\ntwo */ a", "a"},
		{"hash line", "# preprocessor\na", "a"},
		{"indented hash line", "\n   # preprocessor\na", "a"},
		{"mixed", " // c1\n/* c2 */\n# c3\n\ta", "a"},
		{"single slash stays", "/a", "/a"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newScanner(tt.src)
			s.skip()
			assert.Equal(t, tt.rest, s.rest())
			assert.Equal(t, -1, s.far, "no failure expected")
		})
	}
}

func TestHashIsOnlyACommentAtLineStart(t *testing.T) {
	s := newScanner("a # not a comment")
	s.pos = 1
	s.skip()
	assert.Equal(t, "# not a comment", s.rest())
}

func TestUnterminatedBlockComment(t *testing.T) {
	s := newScanner("  /* never closed")
	s.skip()
	assert.Equal(t, "/* never closed", s.rest(), "cursor stays at the comment")
	require.Len(t, s.failures, 1)
	assert.Equal(t, len(s.src), s.far)
	assert.Equal(t, "unterminated block comment", s.failures[0].cause)
}

func TestFailuresKeepFarthestOnly(t *testing.T) {
	s := newScanner("abcdef")
	s.failAt(2, "near")
	s.failAt(4, "far")
	s.failAt(3, "ignored")
	s.failAt(4, "far")    // duplicate
	s.failAt(4, "second") // same offset, kept
	require.Len(t, s.failures, 2)
	assert.Equal(t, 4, s.far)
	assert.Equal(t, "far", s.failures[0].cause)
	assert.Equal(t, "second", s.failures[1].cause)
}

func TestKeywordNeedsBoundary(t *testing.T) {
	tests := []struct {
		src string
		ok  bool
	}{
		{"graph", true},
		{"graph{", true},
		{"graph ", true},
		{"graphs", false},
		{"graph_1", false},
		{"grap", false},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			s := newScanner(tt.src)
			assert.Equal(t, tt.ok, s.keyword("graph"))
			if !tt.ok {
				assert.Equal(t, 0, s.pos)
			}
		})
	}
}

func TestPositionAt(t *testing.T) {
	src := "ab\ncd\n\nef"
	tests := []struct {
		offset int
		want   Position
	}{
		{0, Position{Line: 1, Column: 1, Offset: 0}},
		{2, Position{Line: 1, Column: 3, Offset: 2}},
		{3, Position{Line: 2, Column: 1, Offset: 3}},
		{6, Position{Line: 3, Column: 1, Offset: 6}},
		{8, Position{Line: 4, Column: 2, Offset: 8}},
		{9, Position{Line: 4, Column: 3, Offset: 9}},
		{99, Position{Line: 4, Column: 3, Offset: 9}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, positionAt(src, tt.offset), "offset %d", tt.offset)
	}
	assert.Equal(t, "4:3", positionAt(src, 9).String())
}
