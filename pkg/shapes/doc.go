// Package shapes is the reference class hierarchy shipped with lineage.
// It shows the full per-class contract once per kind of class: an
// abstract root (Shape), concrete classes at depth one (Circle,
// Rectangle, Polygon), a depth-two class (Square), a backward-compatible
// alias ("Rect"), and a deep-copying Clone over a reference field
// (Polygon). The lineage CLI links this package so its commands have a
// registered hierarchy to inspect.
// See docs/ARCHITECTURE § Reference Hierarchy.
package shapes
