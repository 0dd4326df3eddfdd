package rtti

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDescriptorAccessors(t *testing.T) {
	r := NewRegistry()
	root, shape, circle := declareShapeTree(r)

	assert.Equal(t, "Root", root.Name())
	assert.Nil(t, root.Base())
	assert.False(t, root.Constructible())

	assert.Equal(t, "Shape", shape.Name())
	assert.Same(t, root, shape.Base())

	assert.Equal(t, "Circle", circle.Name())
	assert.Same(t, shape, circle.Base())
	assert.True(t, circle.Constructible())
}

func TestDescriptorNew(t *testing.T) {
	r := NewRegistry()
	_, shape, circle := declareShapeTree(r)

	obj, err := circle.New()
	require.NoError(t, err)
	assert.Same(t, circle, obj.RuntimeType())

	// Each call constructs a fresh instance.
	other, err := circle.New()
	require.NoError(t, err)
	assert.NotSame(t, obj, other)

	_, err = shape.New()
	assert.ErrorIs(t, err, ErrNotConstructible)
}

func TestDescriptorDerivedFrom(t *testing.T) {
	r := NewRegistry()
	root, shape, circle := declareShapeTree(r)
	other := r.Declare(Declaration{
		Name: "Other",
		Base: func() *Descriptor { return root },
	})

	tests := []struct {
		name string
		d    *Descriptor
		base *Descriptor
		want bool
	}{
		{name: "reflexive root", d: root, base: root, want: true},
		{name: "reflexive leaf", d: circle, base: circle, want: true},
		{name: "direct base", d: shape, base: root, want: true},
		{name: "transitive base", d: circle, base: root, want: true},
		{name: "not symmetric", d: root, base: circle, want: false},
		{name: "base not below leaf", d: shape, base: circle, want: false},
		{name: "sibling branches", d: other, base: shape, want: false},
		{name: "nil base", d: circle, base: nil, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.d.DerivedFrom(tt.base))
		})
	}
}

// A cyclic base chain violates the tree invariant; the walk must still
// terminate and report false for classes outside the cycle.
func TestDescriptorDerivedFromCycleTerminates(t *testing.T) {
	r := NewRegistry()

	var a, b *Descriptor
	a = r.Declare(Declaration{Name: "A", Base: func() *Descriptor { return b }})
	b = r.Declare(Declaration{Name: "B", Base: func() *Descriptor { return a }})
	outside := r.Declare(Declaration{Name: "Outside"})

	assert.True(t, a.DerivedFrom(b))
	assert.True(t, b.DerivedFrom(a))
	assert.False(t, a.DerivedFrom(outside))
}

func TestDescriptorDeepChain(t *testing.T) {
	r := NewRegistry()

	root := r.Declare(Declaration{Name: "D0"})
	prev := root
	var leaf *Descriptor
	for i := 1; i < maxAncestryDepth; i++ {
		parent := prev
		leaf = r.Declare(Declaration{
			Name: "D" + string(rune('0'+i%10)),
			Base: func() *Descriptor { return parent },
		})
		prev = leaf
	}

	assert.True(t, leaf.DerivedFrom(root), "a chain up to the depth bound must resolve")
}
