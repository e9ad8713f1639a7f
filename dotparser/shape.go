package dotparser

import "fmt"

// ShapeAttrName is the attribute name of *ShapeAttr.
const ShapeAttrName = "shape"

// Shape is a node shape.
type Shape int

const (
	ShapeBox Shape = iota
	ShapePolygon
	ShapeEllipse
	ShapeOval
	ShapeCircle
	ShapePoint
	ShapeEgg
	ShapeTriangle
	ShapePlaintext
	ShapePlain
	ShapeDiamond
	ShapeTrapezium
	ShapeParallelogram
	ShapeHouse
	ShapePentagon
	ShapeHexagon
	ShapeSeptagon
	ShapeOctagon
	ShapeDoubleCircle
	ShapeDoubleOctagon
	ShapeTripleOctagon
	ShapeInvTriangle
	ShapeInvTrapezium
	ShapeInvHouse
	ShapeMDiamond
	ShapeMSquare
	ShapeMCircle
	ShapeRect
	ShapeRectangle
	ShapeSquare
	ShapeStar
	ShapeNone
	ShapeUnderline
	ShapeCylinder
	ShapeNote
	ShapeTab
	ShapeFolder
	ShapeBox3d
	ShapeComponent
)

var shapeNames = [...]string{
	ShapeBox:           "box",
	ShapePolygon:       "polygon",
	ShapeEllipse:       "ellipse",
	ShapeOval:          "oval",
	ShapeCircle:        "circle",
	ShapePoint:         "point",
	ShapeEgg:           "egg",
	ShapeTriangle:      "triangle",
	ShapePlaintext:     "plaintext",
	ShapePlain:         "plain",
	ShapeDiamond:       "diamond",
	ShapeTrapezium:     "trapezium",
	ShapeParallelogram: "parallelogram",
	ShapeHouse:         "house",
	ShapePentagon:      "pentagon",
	ShapeHexagon:       "hexagon",
	ShapeSeptagon:      "septagon",
	ShapeOctagon:       "octagon",
	ShapeDoubleCircle:  "doublecircle",
	ShapeDoubleOctagon: "doubleoctagon",
	ShapeTripleOctagon: "tripleoctagon",
	ShapeInvTriangle:   "invtriangle",
	ShapeInvTrapezium:  "invtrapezium",
	ShapeInvHouse:      "invhouse",
	ShapeMDiamond:      "Mdiamond",
	ShapeMSquare:       "Msquare",
	ShapeMCircle:       "Mcircle",
	ShapeRect:          "rect",
	ShapeRectangle:     "rectangle",
	ShapeSquare:        "square",
	ShapeStar:          "star",
	ShapeNone:          "none",
	ShapeUnderline:     "underline",
	ShapeCylinder:      "cylinder",
	ShapeNote:          "note",
	ShapeTab:           "tab",
	ShapeFolder:        "folder",
	ShapeBox3d:         "box3d",
	ShapeComponent:     "component",
}

func (sh Shape) String() string {
	if int(sh) >= 0 && int(sh) < len(shapeNames) {
		return shapeNames[sh]
	}
	return fmt.Sprintf("Shape(%d)", int(sh))
}

// shapeKeywords is the subset of shapes the grammar accepts.
var shapeKeywords = newKeywordSet("shape keyword", []keywordEntry[Shape]{
	{"box", ShapeBox},
	{"polygon", ShapePolygon},
	{"ellipse", ShapeEllipse},
	{"oval", ShapeOval},
	{"circle", ShapeCircle},
	{"point", ShapePoint},
})

// ShapeAttr is shape=<shape>.
type ShapeAttr struct {
	Value Shape
}

func (*ShapeAttr) Name() string { return ShapeAttrName }
func (*ShapeAttr) attribute()   {}

func shapeValue(s *scanner) (Attribute, bool) {
	sh, ok := shapeKeywords.match(s)
	if !ok {
		return nil, false
	}
	return &ShapeAttr{Value: sh}, true
}
