package listing

import "sync"

// Collection holds the live slice for one screen. Mutations run the pure
// reducers under the write lock and swap in their result; readers get the
// slice current at call time.
type Collection[T any] struct {
	mu     sync.RWMutex
	items  []T
	schema Schema[T]
}

func NewCollection[T any](schema Schema[T], seed []T) *Collection[T] {
	items := make([]T, len(seed))
	copy(items, seed)
	return &Collection[T]{items: items, schema: schema}
}

func (c *Collection[T]) List(p *Principal, q Query) []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return Filter(c.items, c.schema, p, q)
}

// Lookup ignores scope; it backs reference resolution (agency names and
// the like), not user-facing reads.
func (c *Collection[T]) Lookup(id string) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return Find(c.items, c.schema, id)
}

// Get returns the element only if p may see it.
func (c *Collection[T]) Get(p *Principal, id string) (T, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.visible(p, id)
}

func (c *Collection[T]) Insert(item T) {
	c.mu.Lock()
	c.items = Create(c.items, item)
	c.mu.Unlock()
}

func (c *Collection[T]) Update(p *Principal, id string, apply func(T) T) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	var zero T
	if _, err := c.visible(p, id); err != nil {
		return zero, err
	}
	next, err := Update(c.items, c.schema, id, apply)
	if err != nil {
		return zero, err
	}
	c.items = next
	updated, _ := Find(c.items, c.schema, id)
	return updated, nil
}

func (c *Collection[T]) Delete(p *Principal, id string, confirm Confirm) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, err := c.visible(p, id); err != nil {
		return err
	}
	next, err := Delete(c.items, c.schema, id, confirm)
	if err != nil {
		return err
	}
	c.items = next
	return nil
}

// visible must be called with c.mu held.
func (c *Collection[T]) visible(p *Principal, id string) (T, error) {
	it, ok := Find(c.items, c.schema, id)
	if !ok || !c.schema.visible(it, p) {
		var zero T
		return zero, ErrNotFound
	}
	return it, nil
}
