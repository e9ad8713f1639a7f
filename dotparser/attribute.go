package dotparser

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Attribute is one typed attribute value. Each recognized attribute name has
// its own variant: *StyleAttr or *ShapeAttr.
type Attribute interface {
	Name() string
	attribute()
}

// attributeGrammars maps a recognized attribute name to the grammar for its
// right-hand side. Names are tried in insertion order. The table is filled in
// init and only read afterwards.
var attributeGrammars = orderedmap.New[string, rule[Attribute]]()

// registerAttribute makes name = <value> parseable.
func registerAttribute(name string, value func(*scanner) (Attribute, bool)) {
	value = quotable(name, value)
	attributeGrammars.Set(name, rule[Attribute]{name: name, parse: func(s *scanner) (Attribute, bool) {
		if !token(s, keywordToken(name)) || !token(s, literalToken("=")) {
			return nil, false
		}
		return lexeme(s, value)
	}})
}

func init() {
	registerAttribute(StyleAttrName, styleValue)
	registerAttribute(ShapeAttrName, shapeValue)
}

// RecognizedAttributes returns the attribute names the grammar can parse, in
// the order they are tried.
func RecognizedAttributes() []string {
	names := make([]string, 0, attributeGrammars.Len())
	for pair := attributeGrammars.Oldest(); pair != nil; pair = pair.Next() {
		names = append(names, pair.Key)
	}
	return names
}

// attribute parses one name = value pair and an optional ',' or ';' after it.
// An unrecognized name fails the rule.
var attribute = rule[Attribute]{name: "attribute", parse: func(s *scanner) (Attribute, bool) {
	for pair := attributeGrammars.Oldest(); pair != nil; pair = pair.Next() {
		if a, ok := apply(s, pair.Value); ok {
			separator(s)
			return a, true
		}
	}
	return nil, false
}}

// attributeGroup is one '[' attribute+ ']' group.
var attributeGroup = rule[[]Attribute]{name: "attr_group", parse: func(s *scanner) ([]Attribute, bool) {
	return lexeme(s, func(s *scanner) ([]Attribute, bool) {
		if !s.literal("[") {
			return nil, false
		}
		var attrs []Attribute
		for {
			a, ok := apply(s, attribute)
			if !ok {
				break
			}
			attrs = append(attrs, a)
		}
		if len(attrs) == 0 {
			return nil, false
		}
		s.skip()
		if !s.literal("]") {
			return nil, false
		}
		return attrs, true
	})
}}

// attributeList is one or more bracket groups flattened in order.
var attributeList = rule[[]Attribute]{name: "attr_list", parse: func(s *scanner) ([]Attribute, bool) {
	var attrs []Attribute
	groups := 0
	for {
		group, ok := apply(s, attributeGroup)
		if !ok {
			break
		}
		attrs = append(attrs, group...)
		groups++
	}
	return attrs, groups > 0
}}

// optionalAttributes returns the attribute list at the cursor, or an empty
// list when there is none.
func optionalAttributes(s *scanner) []Attribute {
	attrs, ok := apply(s, attributeList)
	if !ok {
		return []Attribute{}
	}
	return attrs
}
