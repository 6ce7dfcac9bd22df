package cow

// Cloner is the interface for types that provide their own deep copy.
//
// Clone must return a copy where writes to the copy cannot be observed
// through the original. For value types with no pointers, slices, or
// maps, returning the receiver is enough:
//
//	func (s Settings) Clone() Settings { return s }
//
// For types with reference fields, the fields must be copied too:
//
//	func (b Blob) Clone() Blob {
//	    return Blob{Name: b.Name, Data: slices.Clone(b.Data)}
//	}
type Cloner[T any] interface {
	Clone() T
}

// NewCloner wraps v in a container whose detach copies go through T's
// Clone method.
func NewCloner[T Cloner[T]](v T) *Container[T] {
	return NewFunc(v, func(v T) T { return v.Clone() })
}
