package rtti

import (
	"errors"
	"iter"
	"sync"
)

// Lookup and construction errors. A failed lookup is an expected outcome
// (e.g. reading data written by a build with renamed classes); callers
// branch on these with errors.Is rather than treating them as faults.
var (
	ErrNotRegistered    = errors.New("class not registered")
	ErrNotConstructible = errors.New("class is not constructible")
)

// binding is one queued (name, descriptor) pair. Canonical declarations
// and aliases travel through the same queue, so flush order decides
// which binding a duplicated name resolves to.
type binding struct {
	name string
	desc *Descriptor
}

// Registry maps class names and descriptor identities to descriptors.
// Declarations are buffered on a pending queue and materialized before
// the first query, so package initialization order never matters. The
// registry is designed for single-threaded startup and read-mostly
// steady state; the lock additionally makes late registration (plugins)
// safe against concurrent readers.
type Registry struct {
	mu      sync.RWMutex
	pending []binding
	known   map[*Descriptor]bool
	byName  map[string]*Descriptor
	order   []*Descriptor // declaration order, for enumeration
}

// NewRegistry returns an empty registry. Most callers use the
// process-wide Default registry; independent instances exist for tests
// and embedded tooling.
func NewRegistry() *Registry {
	return &Registry{
		known:  make(map[*Descriptor]bool),
		byName: make(map[string]*Descriptor),
	}
}

// Declare constructs the descriptor for one class and queues it for
// registration. Safe to call from package variable initializers in any
// order; it never fails. A name collision is tolerated: both classes
// stay enumerable and the most recent binding wins on Lookup.
func (r *Registry) Declare(decl Declaration) *Descriptor {
	d := &Descriptor{name: decl.Name, create: decl.New, base: decl.Base}
	r.mu.Lock()
	r.pending = append(r.pending, binding{name: decl.Name, desc: d})
	r.mu.Unlock()
	return d
}

// Register inserts an already-constructed descriptor directly.
// Idempotent: registering the same descriptor twice is a no-op.
func (r *Registry) Register(d *Descriptor) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.insert(binding{name: d.name, desc: d})
}

// RegisterAlias binds an additional name to a declared descriptor,
// keeping the canonical binding. Used for backward-compatible renames.
func (r *Registry) RegisterAlias(alias string, d *Descriptor) {
	r.mu.Lock()
	r.pending = append(r.pending, binding{name: alias, desc: d})
	r.mu.Unlock()
}

// insert registers one binding. Caller holds mu.
func (r *Registry) insert(b binding) {
	if !r.known[b.desc] {
		r.known[b.desc] = true
		r.order = append(r.order, b.desc)
	}
	// Last write wins on duplicate names.
	r.byName[b.name] = b.desc
}

// FlushPending materializes queued declarations in declaration order.
// Idempotent. Every query flushes first, so callers only need this to
// force registration at a known point, such as an initialization
// barrier before worker threads start.
func (r *Registry) FlushPending() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.flushLocked()
}

func (r *Registry) flushLocked() {
	for _, b := range r.pending {
		r.insert(b)
	}
	r.pending = nil
}

// flush takes the write lock only when declarations are actually queued,
// keeping steady-state queries on the read lock.
func (r *Registry) flush() {
	r.mu.RLock()
	n := len(r.pending)
	r.mu.RUnlock()
	if n == 0 {
		return
	}
	r.mu.Lock()
	r.flushLocked()
	r.mu.Unlock()
}

// Lookup returns the descriptor bound to name.
// Returns ErrNotRegistered when no class is bound to the name.
func (r *Registry) Lookup(name string) (*Descriptor, error) {
	r.flush()
	r.mu.RLock()
	defer r.mu.RUnlock()
	d, ok := r.byName[name]
	if !ok {
		return nil, ErrNotRegistered
	}
	return d, nil
}

// All returns every registered descriptor in declaration order. The
// sequence is lazy and restartable: each range re-reads the registry.
func (r *Registry) All() iter.Seq[*Descriptor] {
	return func(yield func(*Descriptor) bool) {
		for _, d := range r.snapshot() {
			if !yield(d) {
				return
			}
		}
	}
}

// ChildrenOf returns the subsequence of All that descends from base,
// inclusive of base itself.
func (r *Registry) ChildrenOf(base *Descriptor) iter.Seq[*Descriptor] {
	return func(yield func(*Descriptor) bool) {
		for _, d := range r.snapshot() {
			if d.DerivedFrom(base) && !yield(d) {
				return
			}
		}
	}
}

// snapshot returns a stable copy of the descriptor list so iteration
// never holds the registry lock.
func (r *Registry) snapshot() []*Descriptor {
	r.flush()
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*Descriptor, len(r.order))
	copy(out, r.order)
	return out
}

// NewByName resolves name and invokes the class factory. Returns
// ErrNotRegistered for an unknown name and ErrNotConstructible when the
// resolved class is abstract, so callers can report the two distinctly.
func (r *Registry) NewByName(name string) (Object, error) {
	d, err := r.Lookup(name)
	if err != nil {
		return nil, err
	}
	return d.New()
}

// DerivedFromName reports whether d descends from the class bound to
// name. A name bound to no class reports false.
func (r *Registry) DerivedFromName(d *Descriptor, name string) bool {
	base, err := r.Lookup(name)
	if err != nil {
		return false
	}
	return d.DerivedFrom(base)
}
