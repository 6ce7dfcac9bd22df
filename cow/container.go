package cow

import "sync/atomic"

// cell is the shared heap slot behind one or more containers. refs
// counts live handles; the value is treated as immutable while refs > 1.
type cell[T any] struct {
	refs atomic.Int64
	val  T
}

func newCell[T any](v T) *cell[T] {
	c := &cell[T]{val: v}
	c.refs.Store(1)
	return c
}

// Container is a copy-on-write handle to a single value of type T.
// Clones share the backing cell until one of them writes; the writer
// then detaches to a private copy and the others keep the old value.
//
// NOT thread-safe per handle. Only one goroutine should use a given
// Container at a time; clones held by other goroutines are safe to use
// concurrently.
type Container[T any] struct {
	cell *cell[T]

	// copyFn produces the detach copy. nil means plain assignment,
	// which is only a complete copy for value types (see Cloner).
	copyFn func(T) T
}

// New wraps v in a fresh container. The cell starts with a reference
// count of 1, so the first writes mutate in place.
func New[T any](v T) *Container[T] {
	return &Container[T]{cell: newCell(v)}
}

// NewFunc wraps v in a fresh container whose detach copies are produced
// by copyFn. Use this for types with reference fields that plain
// assignment would alias, e.g. NewFunc(s, slices.Clone[[]int]).
func NewFunc[T any](v T, copyFn func(T) T) *Container[T] {
	return &Container[T]{cell: newCell(v), copyFn: copyFn}
}

// Get returns a read-only view of the current value. It never allocates
// and never blocks. Callers must not write through the returned pointer
// and must not hold it across Set, Update, or Release on this handle.
//
// Pointer equality of Get results is the storage identity test: two
// containers share storage exactly when their Get pointers are equal.
func (c *Container[T]) Get() *T {
	return &c.cell.val
}

// Clone returns a new handle to the same cell. Constant time, no copy
// of T. The clone inherits the container's copy function.
func (c *Container[T]) Clone() *Container[T] {
	c.cell.refs.Add(1)
	return &Container[T]{cell: c.cell, copyFn: c.copyFn}
}

// Set replaces the whole value. If this handle is the sole owner the
// cell is overwritten in place and its identity is preserved; otherwise
// the handle rebinds to a fresh cell holding v and releases its share
// of the old cell, leaving other holders on the old value.
func (c *Container[T]) Set(v T) {
	if c.cell.refs.Load() == 1 {
		c.cell.val = v
		return
	}
	old := c.cell
	c.cell = newCell(v)
	old.refs.Add(-1)
}

// Update applies fn to the value through an exclusive pointer. If this
// handle is the sole owner, fn mutates the cell in place; otherwise the
// current value is copied, the handle rebinds to the private copy, and
// fn runs against the copy only. fn is invoked exactly once and never
// against a shared cell. fn must not retain the pointer beyond its own
// invocation; a panic in fn propagates to the caller.
func (c *Container[T]) Update(fn func(*T)) {
	if c.cell.refs.Load() == 1 {
		fn(&c.cell.val)
		return
	}
	old := c.cell
	c.cell = newCell(c.copyVal(old.val))
	old.refs.Add(-1)
	fn(&c.cell.val)
}

func (c *Container[T]) copyVal(v T) T {
	if c.copyFn != nil {
		return c.copyFn(v)
	}
	return v
}

// Release returns this handle's share of the cell so that surviving
// holders may regain in-place mutation. The handle must not be used
// afterwards. Release is optional; see the package documentation.
func (c *Container[T]) Release() {
	if c.cell == nil {
		return
	}
	c.cell.refs.Add(-1)
	c.cell = nil
}

// Shares reports whether c and o currently point at the same cell.
func (c *Container[T]) Shares(o *Container[T]) bool {
	return c.cell == o.cell
}

// Refs returns an atomic snapshot of the cell's reference count.
func (c *Container[T]) Refs() int64 {
	return c.cell.refs.Load()
}
