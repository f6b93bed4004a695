package listcache

import "sync"

// Registry hands out one Collection per scope. A scope is the identity of a
// fetched list, e.g. the league id for that league's teams. Collections are
// created on first use and live for the life of the process.
type Registry[T Entry] struct {
	mu    sync.Mutex
	colls map[string]*Collection[T]
}

// NewRegistry creates an empty Registry.
func NewRegistry[T Entry]() *Registry[T] {
	return &Registry[T]{colls: make(map[string]*Collection[T])}
}

// Scope returns the Collection for the given scope, creating it if needed.
func (r *Registry[T]) Scope(scope string) *Collection[T] {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.colls[scope]
	if !ok {
		c = New[T]()
		r.colls[scope] = c
	}
	return c
}

// Invalidate drops the Collection for the given scope; the next Scope call
// starts empty and the page refetches.
func (r *Registry[T]) Invalidate(scope string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.colls, scope)
}
