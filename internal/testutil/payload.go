// Package testutil provides shared payload types and helpers for the
// cowkit test suites.
package testutil

import "slices"

// Settings is a plain value payload: no pointers, slices, or maps, so
// Go assignment is a complete copy. Tests use it to exercise the
// default detach copy.
type Settings struct {
	Retries int
	Timeout int64
	Verbose bool
}

// Blob is a reference-heavy payload: its Data field aliases a backing
// array under plain assignment. Clone deep-copies the buffer, so Blob
// satisfies cow.Cloner.
type Blob struct {
	Name string
	Data []byte
}

// Clone returns a copy of the blob with its own backing buffer.
func (b Blob) Clone() Blob {
	return Blob{Name: b.Name, Data: slices.Clone(b.Data)}
}
