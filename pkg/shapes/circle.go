package shapes

import (
	"math"

	"github.com/mesh-intelligence/lineage/pkg/rtti"
)

// CircleClass describes Circle.
var CircleClass = rtti.DeclareConcrete[Circle]("Circle",
	func() *rtti.Descriptor { return ShapeClass })

// Circle is a circle centered at its origin.
type Circle struct {
	Shape
	Radius float64 `json:"radius"`
}

// RuntimeType returns CircleClass.
func (c *Circle) RuntimeType() *rtti.Descriptor { return CircleClass }

// Clone returns a deep copy of the circle.
func (c *Circle) Clone() rtti.Object {
	dup := *c
	return &dup
}

// Area returns the circle's area.
func (c *Circle) Area() float64 {
	return math.Pi * c.Radius * c.Radius
}
