package rtti

// Descriptor identifies one registered class: its display name, an
// optional factory, and an accessor for the direct base class descriptor.
// Exactly one Descriptor exists per class for the life of the process;
// it is never mutated after Declare and never copied, so descriptor
// equality is pointer equality. Callers may cache descriptor references
// indefinitely.
type Descriptor struct {
	name   string
	create func() Object      // nil when the class is abstract
	base   func() *Descriptor // nil when the class is a hierarchy root
}

// maxAncestryDepth bounds the ancestry walk. Base accessors must form a
// tree; a chain longer than this is treated as a cycle and the walk
// stops instead of looping.
const maxAncestryDepth = 64

// Name returns the class display name.
func (d *Descriptor) Name() string { return d.name }

// Constructible reports whether the class carries a factory.
func (d *Descriptor) Constructible() bool { return d.create != nil }

// Base returns the descriptor of the direct base class, or nil when the
// class is a hierarchy root.
func (d *Descriptor) Base() *Descriptor {
	if d.base == nil {
		return nil
	}
	return d.base()
}

// New returns a new default-constructed instance of the class.
// Returns ErrNotConstructible when the class is abstract.
func (d *Descriptor) New() (Object, error) {
	if d.create == nil {
		return nil, ErrNotConstructible
	}
	return d.create(), nil
}

// DerivedFrom reports whether the class is base itself or one of its
// descendants. The walk follows base accessors comparing descriptors by
// identity, never by name, and is reflexive: d.DerivedFrom(d) is true.
func (d *Descriptor) DerivedFrom(base *Descriptor) bool {
	if base == nil {
		return false
	}
	cur := d
	for depth := 0; cur != nil && depth < maxAncestryDepth; depth++ {
		if cur == base {
			return true
		}
		cur = cur.Base()
	}
	return false
}

// DerivedFromName resolves name in the process-wide registry and reports
// whether the class descends from it. A name bound to no class reports
// false.
func (d *Descriptor) DerivedFromName(name string) bool {
	return Default().DerivedFromName(d, name)
}
