package dotparser

// rule is a named grammar rule producing a T.
type rule[T any] struct {
	name  string
	parse func(*scanner) (T, bool)
}

// apply runs r from the current position. On failure the cursor is rewound to
// where r started, so a sibling alternative sees the same input.
func apply[T any](s *scanner, r rule[T]) (T, bool) {
	start := s.pos
	s.path = append(s.path, r.name)
	v, ok := r.parse(s)
	s.path = s.path[:len(s.path)-1]
	if !ok {
		s.pos = start
		tracer().Debugf("%s: no match at offset %d", r.name, start)
		return v, false
	}
	tracer().Debugf("%s: matched offset %d..%d", r.name, start, s.pos)
	return v, true
}

// choice tries rules in order and returns the first match. There is no
// longest-match resolution: a rule listed earlier wins even if a later one
// would consume more.
func choice[T any](s *scanner, rules []rule[T]) (T, bool) {
	for _, r := range rules {
		if v, ok := apply(s, r); ok {
			return v, true
		}
	}
	var zero T
	return zero, false
}

// lexeme wraps parse with insignificant input skipped before and after it.
func lexeme[T any](s *scanner, parse func(*scanner) (T, bool)) (T, bool) {
	start := s.pos
	s.skip()
	v, ok := parse(s)
	if !ok {
		s.pos = start
		return v, false
	}
	s.skip()
	return v, true
}

// token is lexeme for rules that only recognize input.
func token(s *scanner, match func(*scanner) bool) bool {
	_, ok := lexeme(s, func(s *scanner) (struct{}, bool) {
		return struct{}{}, match(s)
	})
	return ok
}

// run applies r to all of src and returns its value and the unconsumed
// remainder, or the classified failure.
func run[T any](src string, r rule[T]) (T, string, error) {
	s := newScanner(src)
	v, ok := apply(s, r)
	if !ok {
		return v, src, s.err()
	}
	return v, s.rest(), nil
}

func literalToken(lit string) func(*scanner) bool {
	return func(s *scanner) bool { return s.literal(lit) }
}

func keywordToken(kw string) func(*scanner) bool {
	return func(s *scanner) bool { return s.keyword(kw) }
}
