package shapes

import "github.com/mesh-intelligence/lineage/pkg/rtti"

// PolygonClass describes Polygon.
var PolygonClass = rtti.DeclareConcrete[Polygon]("Polygon",
	func() *rtti.Descriptor { return ShapeClass })

// Polygon is a closed polyline of vertices relative to its origin.
type Polygon struct {
	Shape
	Vertices []Point `json:"vertices"`
}

// RuntimeType returns PolygonClass.
func (p *Polygon) RuntimeType() *rtti.Descriptor { return PolygonClass }

// Clone returns a deep copy; the vertex slice is copied, not shared.
func (p *Polygon) Clone() rtti.Object {
	dup := *p
	dup.Vertices = append([]Point(nil), p.Vertices...)
	return &dup
}
