package shapes

import "github.com/mesh-intelligence/lineage/pkg/rtti"

// SquareClass describes Square, the only depth-two class in the shipped
// hierarchy: Square -> Rectangle -> Shape.
var SquareClass = rtti.DeclareConcrete[Square]("Square",
	func() *rtti.Descriptor { return RectangleClass })

// Square is a rectangle constrained to equal sides.
type Square struct {
	Rectangle
}

// RuntimeType returns SquareClass.
func (s *Square) RuntimeType() *rtti.Descriptor { return SquareClass }

// Clone returns a deep copy of the square.
func (s *Square) Clone() rtti.Object {
	dup := *s
	return &dup
}

// SetSide sets both rectangle dimensions to side.
func (s *Square) SetSide(side float64) {
	s.Width = side
	s.Height = side
}
