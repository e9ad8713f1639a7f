package dotparser

import (
	"fmt"
	"strings"
)

// keywordSet is a fixed, ordered vocabulary of value keywords.
type keywordSet[T any] struct {
	what  string // e.g. "style keyword"
	names []string
	value map[string]T
}

func newKeywordSet[T any](what string, entries []keywordEntry[T]) keywordSet[T] {
	ks := keywordSet[T]{what: what, value: make(map[string]T, len(entries))}
	for _, e := range entries {
		ks.names = append(ks.names, e.name)
		ks.value[e.name] = e.value
	}
	return ks
}

type keywordEntry[T any] struct {
	name  string
	value T
}

// match consumes one keyword of the set as a whole word.
func (ks keywordSet[T]) match(s *scanner) (T, bool) {
	return lexeme(s, func(s *scanner) (T, bool) {
		start := s.pos
		w := s.word()
		if v, ok := ks.value[w]; ok {
			return v, true
		}
		s.pos = start
		var zero T
		return zero, s.fail(fmt.Sprintf("expected %s (one of %s)", ks.what, strings.Join(ks.names, ", ")))
	})
}

// quotable accepts the value grammar parse either bare or inside a quoted
// string. A quoted value must match parse over its whole unescaped content.
func quotable(name string, parse func(*scanner) (Attribute, bool)) func(*scanner) (Attribute, bool) {
	inner := rule[Attribute]{name: name, parse: parse}
	return func(s *scanner) (Attribute, bool) {
		if s.peek() != '"' {
			return parse(s)
		}
		start := s.pos
		content, ok := quotedString(s)
		if !ok {
			return nil, false
		}
		v, rest, err := run(content, inner)
		if err != nil || strings.TrimSpace(rest) != "" {
			s.pos = start
			return nil, s.fail(fmt.Sprintf("invalid %s value %q", name, content))
		}
		return v, true
	}
}
