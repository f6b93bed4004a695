// Package listcache holds in-memory copies of API collections so pages can
// reflect a known mutation without refetching the whole list. Every entry
// carries a monotonic version (the entity's UpdatedAt); stale server
// responses never overwrite a newer locally held row.
package listcache

import (
	"sync"
)

// Entry is implemented by domain types that can live in a Collection.
type Entry interface {
	EntityID() string
	EntityVersion() int64
}

// Collection is an order-preserving, id-keyed copy of one API list.
// All methods are safe for concurrent use.
type Collection[T Entry] struct {
	mu    sync.RWMutex
	items []T
	index map[string]int // id -> position in items
}

// New creates an empty Collection.
func New[T Entry]() *Collection[T] {
	return &Collection[T]{index: make(map[string]int)}
}

// Replace swaps the whole collection for a freshly fetched list.
// PRE: items come from one List response, ids unique
// POST: Items() returns the new list in the given order
func (c *Collection[T]) Replace(items []T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = make([]T, len(items))
	copy(c.items, items)
	c.reindex()
}

// Apply merges one entity into the collection: replace-by-id when the
// incoming version is at least the held one, append when the id is new.
// PRE: item has a non-empty id
// POST: returns true if the collection changed; order of existing rows is preserved
func (c *Collection[T]) Apply(item T) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.applyLocked(item)
}

// Remove deletes the entity with the given id, preserving the order of the
// remaining rows. Returns the removed row and whether it was present.
func (c *Collection[T]) Remove(id string) (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.removeLocked(id)
}

// Get returns the entity with the given id.
func (c *Collection[T]) Get(id string) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	var zero T
	pos, ok := c.index[id]
	if !ok {
		return zero, false
	}
	return c.items[pos], true
}

// Items returns a copy of the collection in order.
func (c *Collection[T]) Items() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

// Len returns the number of entries.
func (c *Collection[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

// Empty reports whether the collection has never been filled or holds no rows.
func (c *Collection[T]) Empty() bool { return c.Len() == 0 }

// Txn is an optimistic mutation that can be rolled back if the server
// rejects it. Exactly one of Commit or Rollback must be called.
type Txn[T Entry] struct {
	c        *Collection[T]
	id       string
	had      bool
	preImage T
	prePos   int
	removed  bool // txn was a StageRemove
	done     bool
}

// StageUpdate applies item optimistically and returns a Txn for the outcome.
// PRE: item has a non-empty id
// POST: the collection reflects item until Commit or Rollback
func (c *Collection[T]) StageUpdate(item T) *Txn[T] {
	c.mu.Lock()
	defer c.mu.Unlock()
	txn := c.snapshotLocked(item.EntityID())
	c.applyLocked(item)
	return txn
}

// StageRemove removes id optimistically and returns a Txn for the outcome.
func (c *Collection[T]) StageRemove(id string) *Txn[T] {
	c.mu.Lock()
	defer c.mu.Unlock()
	txn := c.snapshotLocked(id)
	txn.removed = true
	c.removeLocked(id)
	return txn
}

// Commit finalises the txn with the server's row, which wins regardless of
// version: it is the authoritative outcome of this very mutation. For
// removals the server row is ignored and the optimistic state stands.
// PRE: Rollback has not been called
// POST: the txn is spent
func (t *Txn[T]) Commit(server T) {
	if t.done {
		return
	}
	t.done = true
	if t.removed {
		return
	}
	t.c.mu.Lock()
	defer t.c.mu.Unlock()
	if pos, ok := t.c.index[server.EntityID()]; ok {
		t.c.items[pos] = server
		return
	}
	t.c.items = append(t.c.items, server)
	t.c.index[server.EntityID()] = len(t.c.items) - 1
}

// Rollback restores the pre-image at its original position.
// PRE: Commit has not been called
// POST: the collection matches its state before the Stage call
func (t *Txn[T]) Rollback() {
	if t.done {
		return
	}
	t.done = true
	t.c.mu.Lock()
	defer t.c.mu.Unlock()
	if !t.had {
		// Staged row was new; drop it.
		t.c.removeLocked(t.id)
		return
	}
	if pos, ok := t.c.index[t.id]; ok {
		t.c.items[pos] = t.preImage
		return
	}
	// Row was removed; reinsert at the original position.
	pos := t.prePos
	if pos > len(t.c.items) {
		pos = len(t.c.items)
	}
	t.c.items = append(t.c.items, t.preImage)
	copy(t.c.items[pos+1:], t.c.items[pos:])
	t.c.items[pos] = t.preImage
	t.c.reindex()
}

func (c *Collection[T]) snapshotLocked(id string) *Txn[T] {
	txn := &Txn[T]{c: c, id: id}
	if pos, ok := c.index[id]; ok {
		txn.had = true
		txn.preImage = c.items[pos]
		txn.prePos = pos
	}
	return txn
}

func (c *Collection[T]) applyLocked(item T) bool {
	id := item.EntityID()
	if id == "" {
		return false
	}
	if pos, ok := c.index[id]; ok {
		if item.EntityVersion() < c.items[pos].EntityVersion() {
			return false
		}
		c.items[pos] = item
		return true
	}
	c.items = append(c.items, item)
	c.index[id] = len(c.items) - 1
	return true
}

func (c *Collection[T]) removeLocked(id string) (T, bool) {
	var zero T
	pos, ok := c.index[id]
	if !ok {
		return zero, false
	}
	removed := c.items[pos]
	c.items = append(c.items[:pos], c.items[pos+1:]...)
	c.reindex()
	return removed, true
}

func (c *Collection[T]) reindex() {
	c.index = make(map[string]int, len(c.items))
	for i, it := range c.items {
		c.index[it.EntityID()] = i
	}
}
