package mino

const (
	ShapeBar    = "XXXX"
	ShapeSquare = "XX/XX"
	ShapeT      = ".X./XXX"
)

type ShapeType int

const (
	ShapeTypeBar ShapeType = iota
	ShapeTypeSquare
	ShapeTypeT
)

func (t ShapeType) String() string {
	switch t {
	case ShapeTypeBar:
		return "Bar"
	case ShapeTypeSquare:
		return "Square"
	case ShapeTypeT:
		return "T"
	default:
		return "Unknown"
	}
}

var (
	Bar    = MustParseShape(ShapeBar)
	Square = MustParseShape(ShapeSquare)
	T      = MustParseShape(ShapeT)
)

// Catalog returns the canonical spawn shapes indexed by ShapeType.
func Catalog() []Shape {
	return []Shape{Bar, Square, T}
}

// CatalogSize is the number of canonical shapes.
const CatalogSize = 3

// RotationStates is the number of clockwise turns that return a shape to
// itself.
const RotationStates = 4
