package dotparser

import (
	"fmt"
	"strings"
)

// identifierForms is tried in order; the first form that matches wins.
var identifierForms = []rule[string]{
	{name: "bare_word", parse: bareWord},
	{name: "numeral", parse: numeral},
	{name: "quoted_string", parse: quotedString},
}

// identifier is an ID in any of its three surface forms, surrounded by
// optional insignificant input.
var identifier = rule[string]{name: "identifier", parse: func(s *scanner) (string, bool) {
	return lexeme(s, func(s *scanner) (string, bool) {
		return choice(s, identifierForms)
	})
}}

// bareWord matches [A-Za-z_\200-\377][A-Za-z_0-9\200-\377]*. It stops at the
// first byte outside that set; no delimiter is required after it.
func bareWord(s *scanner) (string, bool) {
	start := s.pos
	w := s.word()
	if w == "" {
		return "", s.fail("expected identifier")
	}
	if IsKeyword(w) {
		s.pos = start
		return "", s.fail(fmt.Sprintf("keyword %q is not an identifier", w))
	}
	return w, true
}

// numeral matches -?[0-9]+\.[0-9]*. The decimal point is mandatory.
func numeral(s *scanner) (string, bool) {
	start := s.pos
	if s.peek() == '-' {
		s.pos++
	}
	if !isDigit(s.peek()) {
		return "", s.fail("expected digit")
	}
	for isDigit(s.peek()) {
		s.pos++
	}
	if s.peek() != '.' {
		return "", s.fail("expected '.' in numeral")
	}
	s.pos++
	for isDigit(s.peek()) {
		s.pos++
	}
	return s.src[start:s.pos], true
}

// quotedString matches a double-quoted string. The body is a sequence of
// fragments: the escape \" (yielding a literal quote) or the longest run
// containing neither \" nor a bare quote. Every other backslash is kept as is.
// The string must be closed before the input ends.
func quotedString(s *scanner) (string, bool) {
	if !s.literal(`"`) {
		return "", false
	}
	var sb strings.Builder
	for {
		if s.atEnd() {
			return "", s.fail("unterminated quoted string")
		}
		if s.peek() == '\\' && s.peekAt(1) == '"' {
			sb.WriteByte('"')
			s.pos += 2
			continue
		}
		if s.peek() == '"' {
			s.pos++
			return sb.String(), true
		}
		end := s.pos
		for end < len(s.src) && s.src[end] != '"' && !(s.src[end] == '\\' && end+1 < len(s.src) && s.src[end+1] == '"') {
			end++
		}
		sb.WriteString(s.src[s.pos:end])
		s.pos = end
	}
}
