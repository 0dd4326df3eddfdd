// Package rtti provides runtime class identification for polymorphic
// objects: one immutable Descriptor per class, a process-wide Registry
// keyed by descriptor identity and by name, ancestry queries over the
// base-class chain, and factory-by-name construction for generic code
// that must build or copy objects without knowing their concrete type.
//
// Classes declare themselves from package variable initializers; the
// registry buffers declarations and materializes them lazily before the
// first query, so declaration order across packages never matters.
// See docs/ARCHITECTURE § Class Registry.
package rtti
