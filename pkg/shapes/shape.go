package shapes

import "github.com/mesh-intelligence/lineage/pkg/rtti"

// Point is a 2D coordinate used for shape origins and polygon vertices.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// ShapeClass is the abstract root of the hierarchy. It carries no
// factory: NewByName("Shape") reports ErrNotConstructible.
var ShapeClass = rtti.Declare(rtti.Declaration{Name: "Shape"})

// Shape holds the state common to every shape. It is not instantiable
// on its own; concrete shapes embed it.
type Shape struct {
	Origin Point `json:"origin"`
}

// RuntimeType returns ShapeClass. Every concrete shape overrides this
// with its own descriptor; a derived instance answering ShapeClass here
// means the class forgot its override.
func (s *Shape) RuntimeType() *rtti.Descriptor { return ShapeClass }
