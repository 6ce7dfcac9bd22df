// Package cow provides a generic copy-on-write container for single values.
//
// # Overview
//
// This package implements Container[T], a value holder that shares one
// heap-allocated cell across any number of clones and copies the value
// only when a clone is about to be mutated while the cell is still
// shared. The common pattern it targets is "many logical copies of a
// value, most of which are never mutated" - for example, builders
// derived from a shared template. Cloning is O(1) and reads never
// allocate; the cost of a copy is paid only on the first write through
// a sharing handle.
//
// # Key Types
//
// The main types provided by this package are:
//
//   - Container: A handle to a reference-counted cell holding one T
//   - Cloner: Optional interface for types that supply their own deep copy
//
// # Copy-on-Write Decision
//
// Every mutating operation (Set, Update) starts from an atomic snapshot
// of the cell's reference count:
//
//   - count == 1: this handle is the sole owner; the value is mutated
//     in place and the cell's identity is preserved
//   - count > 1: the cell is shared; a fresh cell is allocated, this
//     handle is rebound to it (releasing its share of the old cell),
//     and the mutation is applied to the private copy only
//
// Other holders are never affected by a detaching write: they continue
// to observe the old value at the old cell.
//
// # Creating a Container
//
//	base := cow.New(Settings{Retries: 3})
//	tweaked := base.Clone()        // no allocation, shares the cell
//	tweaked.Update(func(s *Settings) {
//	    s.Retries = 5              // detaches: base is untouched
//	})
//
// # Copy Semantics
//
// The detach copy defaults to plain Go assignment, which is a complete
// copy only for value types. Types whose fields reference shared data
// (slices, maps, pointers) must provide a deep copy, either by
// implementing Cloner and constructing with NewCloner, or by passing an
// explicit copy function to NewFunc:
//
//	c := cow.NewFunc([]int{1, 2, 3}, slices.Clone[[]int])
//
// Without a deep copy, a detached cell would still alias the shared
// backing data and writes through it would leak to other holders.
//
// # Releasing a Handle
//
// A handle that is finished early may call Release to return its share
// of the cell, letting surviving holders regain in-place mutation.
// Release is optional: a handle dropped to the garbage collector simply
// keeps the count raised, so survivors copy on their next write - a
// conservative outcome, never an incorrect one.
//
// # Thread Safety
//
// A single Container handle is NOT thread-safe. Only one goroutine
// should mutate through a given handle at a time. Clones are the unit
// of cross-goroutine sharing: handles held by different goroutines may
// be cloned, read, mutated, and released concurrently, because the
// reference count is maintained with atomic operations.
package cow
