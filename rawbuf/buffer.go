// Package rawbuf owns blocks of element storage without tracking which
// slots hold live values. A Buffer never constructs or destroys elements;
// the owning container decides which slots are live and keeps every
// unpublished slot at the zero value.
package rawbuf

import (
	"math"
	"unsafe"

	"github.com/pkg/errors"

	"github.com/wilhasse/vector-go/internal/debug"
)

// ErrTooLarge reports an allocation whose byte size cannot be represented
// on the platform.
var ErrTooLarge = errors.New("rawbuf: allocation too large")

// Buffer owns storage for Cap slots of T. The zero Buffer is the null
// buffer: no storage, capacity 0.
//
// A Buffer has exactly one owner. Do not copy it by assignment; transfer
// ownership with MoveFrom or Swap.
type Buffer[T any] struct {
	slots []T
}

// Alloc returns a buffer holding n zero-valued slots. n == 0 yields the
// null buffer. Negative n is a contract breach.
func Alloc[T any](n int) (Buffer[T], error) {
	debug.Assert(n >= 0, "rawbuf: negative capacity %d", n)
	if n <= 0 {
		return Buffer[T]{}, nil
	}
	if n > maxSlots[T]() {
		return Buffer[T]{}, errors.Wrapf(ErrTooLarge, "%d slots", n)
	}
	return Buffer[T]{slots: make([]T, n)}, nil
}

// maxSlots bounds a single allocation to what the platform int can address.
func maxSlots[T any]() int {
	var zero T
	size := unsafe.Sizeof(zero)
	if size == 0 {
		return math.MaxInt
	}
	return math.MaxInt / int(size)
}

// Cap returns the number of slots the buffer holds.
func (b *Buffer[T]) Cap() int {
	return len(b.slots)
}

// IsNull reports whether the buffer holds no storage.
func (b *Buffer[T]) IsNull() bool {
	return b.slots == nil
}

// Slot returns the address of slot i. Requires i < Cap.
func (b *Buffer[T]) Slot(i int) *T {
	debug.Assert(i >= 0 && i < len(b.slots), "rawbuf: slot %d out of %d", i, len(b.slots))
	return &b.slots[i]
}

// Range returns the slots [lo, hi) as a view into the buffer. Requires
// lo <= hi <= Cap.
func (b *Buffer[T]) Range(lo, hi int) []T {
	debug.Assert(lo >= 0 && lo <= hi && hi <= len(b.slots), "rawbuf: range [%d, %d) out of %d", lo, hi, len(b.slots))
	return b.slots[lo:hi]
}

// Swap exchanges storage with other in O(1).
func (b *Buffer[T]) Swap(other *Buffer[T]) {
	b.slots, other.slots = other.slots, b.slots
}

// MoveFrom takes ownership of other's storage, releasing any storage b
// already held. other is left as the null buffer and remains usable.
func (b *Buffer[T]) MoveFrom(other *Buffer[T]) {
	if b == other {
		return
	}
	b.slots = other.slots
	other.slots = nil
}

// Release drops the storage for the garbage collector to reclaim. The
// owner must already have destroyed every live element it placed here.
func (b *Buffer[T]) Release() {
	b.slots = nil
}
