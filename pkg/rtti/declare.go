package rtti

import "iter"

// Declaration describes one class for Declare.
type Declaration struct {
	// Name is the class display name, unique per canonical declaration.
	Name string

	// New default-constructs an instance of the class. Nil when the
	// class is abstract and cannot be built by name.
	New func() Object

	// Base returns the descriptor of the direct base class. Nil when the
	// class is a hierarchy root. An accessor rather than a plain
	// descriptor so a declaration may reference a base whose descriptor
	// variable is initialized later.
	Base func() *Descriptor
}

// defaultRegistry is the process-wide registry every Declare targets.
// It is a plain package variable so it exists before any declaring
// package initializes.
var defaultRegistry = NewRegistry()

// Default returns the process-wide registry.
func Default() *Registry { return defaultRegistry }

// Declare constructs and queues the descriptor for one class in the
// process-wide registry. Intended for package variable initializers:
//
//	var ShapeClass = rtti.Declare(rtti.Declaration{Name: "Shape"})
func Declare(decl Declaration) *Descriptor {
	return defaultRegistry.Declare(decl)
}

// DeclareConcrete declares a concrete class whose factory
// default-constructs a *T, so a class needs one line instead of a
// hand-written factory:
//
//	var CircleClass = rtti.DeclareConcrete[Circle]("Circle",
//		func() *rtti.Descriptor { return ShapeClass })
func DeclareConcrete[T any, PT interface {
	*T
	Object
}](name string, base func() *Descriptor) *Descriptor {
	return Declare(Declaration{
		Name: name,
		New:  func() Object { var v T; return PT(&v) },
		Base: base,
	})
}

// DeclareAlias binds an additional name to d in the process-wide
// registry, keeping the canonical name. When two classes end up sharing
// a name the most recent binding wins on Lookup.
func DeclareAlias(alias string, d *Descriptor) {
	defaultRegistry.RegisterAlias(alias, d)
}

// Lookup resolves name in the process-wide registry.
func Lookup(name string) (*Descriptor, error) {
	return defaultRegistry.Lookup(name)
}

// All enumerates the process-wide registry in declaration order.
func All() iter.Seq[*Descriptor] {
	return defaultRegistry.All()
}

// ChildrenOf enumerates the process-wide registry classes descending
// from base, inclusive of base itself.
func ChildrenOf(base *Descriptor) iter.Seq[*Descriptor] {
	return defaultRegistry.ChildrenOf(base)
}

// NewByName builds a new instance of the named class from the
// process-wide registry.
func NewByName(name string) (Object, error) {
	return defaultRegistry.NewByName(name)
}

// FlushPending materializes queued declarations in the process-wide
// registry. Queries flush implicitly; an explicit call marks an
// initialization barrier.
func FlushPending() {
	defaultRegistry.FlushPending()
}
