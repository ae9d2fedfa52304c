package object

// Pool is a homogeneous, insertion-ordered entity collection. A positive limit
// bounds its length by evicting the oldest entry before each insert.
type Pool[T Entity] struct {
	items []T
	limit int
}

// NewPool creates a pool. limit <= 0 means unbounded.
func NewPool[T Entity](limit int) *Pool[T] {
	return &Pool[T]{limit: limit}
}

// Spawn appends e, evicting the oldest entry first when the pool is full.
func (p *Pool[T]) Spawn(e T) {
	if p.limit > 0 && len(p.items) >= p.limit {
		ReleaseObject(p.items[0])
		n := copy(p.items, p.items[1:])
		var zero T
		p.items[n] = zero
		p.items = p.items[:n]
	}
	p.items = append(p.items, e)
}

// Update advances every entry and drops those that ask for removal.
func (p *Pool[T]) Update(ctx UpdateContext) {
	kept := p.items[:0] // reuse backing array
	for _, e := range p.items {
		if e.Update(ctx) {
			ReleaseObject(e)
			continue
		}
		kept = append(kept, e)
	}
	clear(p.items[len(kept):])
	p.items = kept
}

// Draw renders entries in insertion order, so newer entries land on top.
func (p *Pool[T]) Draw(ctx DrawContext) {
	for _, e := range p.items {
		e.Draw(ctx)
	}
}

// Each calls fn for every live entry in insertion order.
func (p *Pool[T]) Each(fn func(T)) {
	for _, e := range p.items {
		fn(e)
	}
}

// RemoveIf drops every entry for which fn returns true.
func (p *Pool[T]) RemoveIf(fn func(T) bool) {
	kept := p.items[:0]
	for _, e := range p.items {
		if fn(e) {
			ReleaseObject(e)
			continue
		}
		kept = append(kept, e)
	}
	clear(p.items[len(kept):])
	p.items = kept
}

// Clear drops every entry.
func (p *Pool[T]) Clear() {
	for _, e := range p.items {
		ReleaseObject(e)
	}
	clear(p.items)
	p.items = p.items[:0]
}

// Len returns the number of live entries.
func (p *Pool[T]) Len() int {
	return len(p.items)
}

// Limit returns the eviction threshold (0 when unbounded).
func (p *Pool[T]) Limit() int {
	return p.limit
}

// Items exposes the live entries. The slice is only valid until the next mutation.
func (p *Pool[T]) Items() []T {
	return p.items
}
