package shapes

import "github.com/mesh-intelligence/lineage/pkg/rtti"

// RectangleClass describes Rectangle.
var RectangleClass = rtti.DeclareConcrete[Rectangle]("Rectangle",
	func() *rtti.Descriptor { return ShapeClass })

func init() {
	// "Rect" was the class name before v0.2; data recorded under the old
	// name keeps resolving.
	rtti.DeclareAlias("Rect", RectangleClass)
}

// Rectangle is an axis-aligned rectangle anchored at its origin.
type Rectangle struct {
	Shape
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// RuntimeType returns RectangleClass.
func (r *Rectangle) RuntimeType() *rtti.Descriptor { return RectangleClass }

// Clone returns a deep copy of the rectangle.
func (r *Rectangle) Clone() rtti.Object {
	dup := *r
	return &dup
}

// Area returns the rectangle's area.
func (r *Rectangle) Area() float64 {
	return r.Width * r.Height
}
