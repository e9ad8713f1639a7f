package dotparser

import (
	"strings"
)

// scanner is the input cursor shared by all grammar rules of one parse.
//
// A rule that fails must leave pos where it found it; apply enforces this for
// every named rule. Failures are only kept for the farthest offset reached.
type scanner struct {
	src      string
	lines    lineIndex
	pos      int      // current byte offset
	path     []string // names of the rules being applied, outermost first
	far      int      // offset of the recorded failures, -1 if none
	failures []failure
}

// failure is a Failure before its offset has been resolved to a Position.
type failure struct {
	offset int
	path   []string
	cause  string
}

func newScanner(src string) *scanner {
	return &scanner{src: src, lines: newLineIndex(src), far: -1}
}

func (s *scanner) atEnd() bool {
	return s.pos >= len(s.src)
}

func (s *scanner) peek() byte {
	if s.atEnd() {
		return 0
	}
	return s.src[s.pos]
}

func (s *scanner) peekAt(off int) byte {
	if s.pos+off >= len(s.src) {
		return 0
	}
	return s.src[s.pos+off]
}

// here is the Position of the cursor.
func (s *scanner) here() Position {
	return s.lines.position(s.pos)
}

func (s *scanner) rest() string {
	return s.src[s.pos:]
}

// fail records cause at the current offset and returns false, so rules can
// `return x, s.fail(...)`.
func (s *scanner) fail(cause string) bool {
	return s.failAt(s.pos, cause)
}

func (s *scanner) failAt(offset int, cause string) bool {
	if offset < s.far {
		return false
	}
	if offset > s.far {
		s.far = offset
		s.failures = s.failures[:0]
	}
	path := append([]string(nil), s.path...)
	for _, f := range s.failures {
		if f.cause == cause && equalPath(f.path, path) {
			return false
		}
	}
	s.failures = append(s.failures, failure{offset: offset, path: path, cause: cause})
	return false
}

func equalPath(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// literal consumes lit if the input continues with it.
func (s *scanner) literal(lit string) bool {
	if !strings.HasPrefix(s.rest(), lit) {
		return s.fail("expected " + quoteLiteral(lit))
	}
	s.pos += len(lit)
	return true
}

// keyword consumes kw if the input continues with it and kw is not merely the
// prefix of a longer word.
func (s *scanner) keyword(kw string) bool {
	if !strings.HasPrefix(s.rest(), kw) || isIdentPart(s.peekAt(len(kw))) {
		return s.fail("expected keyword " + quoteLiteral(kw))
	}
	s.pos += len(kw)
	return true
}

// word consumes a run of identifier bytes without any keyword check.
func (s *scanner) word() string {
	start := s.pos
	if !isIdentStart(s.peek()) {
		return ""
	}
	for !s.atEnd() && isIdentPart(s.peek()) {
		s.pos++
	}
	return s.src[start:s.pos]
}

// skip consumes insignificant input: whitespace, // line comments,
// /* block */ comments and lines starting with '#'. An unterminated block
// comment is left in place and recorded as a failure at end of input.
func (s *scanner) skip() {
	for !s.atEnd() {
		ch := s.peek()
		switch {
		case ch == ' ' || ch == '\t' || ch == '\r' || ch == '\n' || ch == '\f' || ch == '\v':
			s.pos++
		case ch == '/' && s.peekAt(1) == '/':
			s.skipLine()
		case ch == '#' && s.atLineStart():
			s.skipLine()
		case ch == '/' && s.peekAt(1) == '*':
			end := strings.Index(s.src[s.pos+2:], "*/")
			if end < 0 {
				s.failAt(len(s.src), "unterminated block comment")
				return
			}
			s.pos += 2 + end + 2
		default:
			return
		}
	}
}

func (s *scanner) skipLine() {
	for !s.atEnd() && s.peek() != '\n' {
		s.pos++
	}
}

// atLineStart reports whether only spaces and tabs precede pos on its line.
func (s *scanner) atLineStart() bool {
	for i := s.pos - 1; i >= 0; i-- {
		switch s.src[i] {
		case '\n':
			return true
		case ' ', '\t':
		default:
			return false
		}
	}
	return true
}

// resolveFailures converts the recorded failures to positions.
func (s *scanner) resolveFailures() []Failure {
	fs := make([]Failure, 0, len(s.failures))
	for _, f := range s.failures {
		rule := ""
		if len(f.path) > 0 {
			rule = f.path[len(f.path)-1]
		}
		fs = append(fs, Failure{
			Pos:   s.lines.position(f.offset),
			Rule:  rule,
			Path:  f.path,
			Cause: f.cause,
		})
	}
	return fs
}

// err classifies the recorded failures.
func (s *scanner) err() error {
	far := s.far
	if far < 0 {
		far = s.pos
	}
	pos := s.lines.position(far)
	fs := s.resolveFailures()
	if far >= len(s.src) {
		return newEOFError(pos, fs)
	}
	return newSyntaxError(pos, fs)
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

// isIdentStart accepts [A-Za-z_] and the high-bit range \200-\377.
func isIdentStart(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || ch == '_' || ch >= 0x80
}

func isIdentPart(ch byte) bool {
	return isIdentStart(ch) || isDigit(ch)
}

func quoteLiteral(lit string) string {
	return "'" + lit + "'"
}
