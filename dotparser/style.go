package dotparser

import "fmt"

// StyleAttrName is the attribute name of *StyleAttr.
const StyleAttrName = "style"

// Style is one drawing style keyword.
type Style int

const (
	StyleDashed Style = iota
	StyleDotted
	StyleSolid
	StyleInvis
	StyleBold
	StyleTapered
	StyleFilled
	StyleStriped
	StyleWedged
	StyleDiagonals
	StyleRounded
)

var styleKeywords = newKeywordSet("style keyword", []keywordEntry[Style]{
	{"dashed", StyleDashed},
	{"dotted", StyleDotted},
	{"solid", StyleSolid},
	{"invis", StyleInvis},
	{"bold", StyleBold},
	{"tapered", StyleTapered},
	{"filled", StyleFilled},
	{"striped", StyleStriped},
	{"wedged", StyleWedged},
	{"diagonals", StyleDiagonals},
	{"rounded", StyleRounded},
})

func (st Style) String() string {
	if int(st) >= 0 && int(st) < len(styleKeywords.names) {
		return styleKeywords.names[st]
	}
	return fmt.Sprintf("Style(%d)", int(st))
}

// StyleAttr is style=<style>[,<style>...]. Order and duplicates are kept as
// written.
type StyleAttr struct {
	Values []Style
}

func (*StyleAttr) Name() string { return StyleAttrName }
func (*StyleAttr) attribute()   {}

// styleValue parses one or more style keywords separated by ','. A ',' that
// is not followed by another style keyword is left for the attribute list.
func styleValue(s *scanner) (Attribute, bool) {
	first, ok := styleKeywords.match(s)
	if !ok {
		return nil, false
	}
	values := []Style{first}
	for {
		mark := s.pos
		if !token(s, literalToken(",")) {
			break
		}
		next, ok := styleKeywords.match(s)
		if !ok {
			s.pos = mark
			break
		}
		values = append(values, next)
	}
	return &StyleAttr{Values: values}, true
}
