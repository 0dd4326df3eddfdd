package rtti

// Object is the capability set every registered class supports.
type Object interface {
	// RuntimeType returns the descriptor of the instance's most-derived
	// class, never an ancestor's. Every concrete class overrides the
	// default it inherits from its base; reaching a base default from a
	// derived instance means the class forgot its override.
	RuntimeType() *Descriptor

	// Clone returns a deep, type-preserving copy: same concrete class,
	// same observable state, independently mutable.
	Clone() Object
}

// CloneOf returns a deep copy of o with the caller's static type
// preserved, so call sites keep a typed handle without asserting on the
// Clone result themselves. A Clone that returns the wrong concrete type
// yields the zero value.
func CloneOf[T Object](o T) T {
	c, _ := o.Clone().(T)
	return c
}

// Is reports whether o's concrete class is exactly d.
func Is(o Object, d *Descriptor) bool {
	return o != nil && o.RuntimeType() == d
}

// IsDerived reports whether o's concrete class is d or a descendant of d.
func IsDerived(o Object, d *Descriptor) bool {
	return o != nil && o.RuntimeType().DerivedFrom(d)
}

// As converts a base handle to the concrete type T. Returns the zero
// value and false when the runtime type does not match; it never panics.
func As[T Object](o Object) (T, bool) {
	t, ok := o.(T)
	return t, ok
}
