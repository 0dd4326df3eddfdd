package shapes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/lineage/pkg/rtti"
)

func TestRuntimeTypeReturnsMostDerivedClass(t *testing.T) {
	tests := []struct {
		name string
		obj  rtti.Object
		want *rtti.Descriptor
	}{
		{name: "circle", obj: &Circle{}, want: CircleClass},
		{name: "rectangle", obj: &Rectangle{}, want: RectangleClass},
		{name: "square", obj: &Square{}, want: SquareClass},
		{name: "polygon", obj: &Polygon{}, want: PolygonClass},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Same(t, tt.want, tt.obj.RuntimeType())
		})
	}
}

func TestAncestry(t *testing.T) {
	assert.True(t, CircleClass.DerivedFrom(ShapeClass))
	assert.True(t, SquareClass.DerivedFrom(RectangleClass))
	assert.True(t, SquareClass.DerivedFrom(ShapeClass), "depth-two chain reaches the root")
	assert.False(t, ShapeClass.DerivedFrom(CircleClass))
	assert.False(t, CircleClass.DerivedFrom(RectangleClass))

	assert.True(t, SquareClass.DerivedFromName("Shape"))
	assert.False(t, SquareClass.DerivedFromName("Circle"))
}

func TestLookupAndAlias(t *testing.T) {
	d, err := rtti.Lookup("Rectangle")
	require.NoError(t, err)
	assert.Same(t, RectangleClass, d)

	// Pre-v0.2 name still resolves.
	d, err = rtti.Lookup("Rect")
	require.NoError(t, err)
	assert.Same(t, RectangleClass, d)
}

func TestNewByName(t *testing.T) {
	t.Run("concrete class", func(t *testing.T) {
		obj, err := rtti.NewByName("Circle")
		require.NoError(t, err)

		c, ok := rtti.As[*Circle](obj)
		require.True(t, ok)
		assert.Same(t, CircleClass, c.RuntimeType())
		assert.Zero(t, c.Radius, "factory must default-construct")
	})

	t.Run("abstract root", func(t *testing.T) {
		_, err := rtti.NewByName("Shape")
		assert.ErrorIs(t, err, rtti.ErrNotConstructible)
	})

	t.Run("unknown class", func(t *testing.T) {
		_, err := rtti.NewByName("Triangle")
		assert.ErrorIs(t, err, rtti.ErrNotRegistered)
	})
}

func TestChildrenOfShape(t *testing.T) {
	var names []string
	for d := range rtti.ChildrenOf(ShapeClass) {
		names = append(names, d.Name())
	}

	assert.Contains(t, names, "Shape")
	assert.Contains(t, names, "Circle")
	assert.Contains(t, names, "Rectangle")
	assert.Contains(t, names, "Square")
	assert.Contains(t, names, "Polygon")
}

func TestChildrenOfRectangle(t *testing.T) {
	var names []string
	for d := range rtti.ChildrenOf(RectangleClass) {
		names = append(names, d.Name())
	}
	assert.ElementsMatch(t, []string{"Rectangle", "Square"}, names)
}

func TestPolygonCloneDeepCopiesVertices(t *testing.T) {
	orig := &Polygon{
		Shape:    Shape{Origin: Point{X: 1, Y: 2}},
		Vertices: []Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}},
	}

	dup := rtti.CloneOf(orig)
	require.NotNil(t, dup)
	assert.Same(t, PolygonClass, dup.RuntimeType())
	assert.Equal(t, orig.Vertices, dup.Vertices)

	dup.Vertices[0].X = 99
	dup.Origin.X = 99

	assert.Equal(t, 0.0, orig.Vertices[0].X, "vertices must not be shared")
	assert.Equal(t, 1.0, orig.Origin.X)
}

func TestCloneThroughBaseHandle(t *testing.T) {
	sq := &Square{}
	sq.SetSide(3)
	sq.Origin = Point{X: 5, Y: 5}

	var obj rtti.Object = sq
	dup := obj.Clone()

	assert.Same(t, SquareClass, dup.RuntimeType(), "clone preserves the concrete class")

	got, ok := rtti.As[*Square](dup)
	require.True(t, ok)
	assert.Equal(t, 9.0, got.Area())
	assert.NotSame(t, sq, got)
}

func TestCheckedCasts(t *testing.T) {
	var obj rtti.Object = &Square{}

	assert.True(t, rtti.Is(obj, SquareClass))
	assert.False(t, rtti.Is(obj, RectangleClass))
	assert.True(t, rtti.IsDerived(obj, RectangleClass))
	assert.True(t, rtti.IsDerived(obj, ShapeClass))

	_, ok := rtti.As[*Circle](obj)
	assert.False(t, ok, "mismatched cast returns false, never panics")
}
