// Package vec implements a contiguous growable array with manual control
// over its storage: capacity grows independently of the live element
// count, and relocation during growth moves or clones depending on the
// element type's traits.
//
// Slots above the live range are held at the zero value so they pin no
// heap memory. Pointers and views into the live range are invalidated by
// any operation that reallocates or shifts elements.
package vec

import (
	"iter"

	"github.com/wilhasse/vector-go/internal/debug"
	"github.com/wilhasse/vector-go/rawbuf"
)

// Vector is a growable array of T. The zero Vector is empty and ready to
// use; New is the conventional constructor.
//
// A Vector has exactly one owner. Do not copy it by assignment; use Clone,
// Assign, MoveFrom or Swap.
type Vector[T any] struct {
	data rawbuf.Buffer[T]
	size int
	elem *elemOps[T]
}

// New returns an empty vector with no storage.
func New[T any]() *Vector[T] {
	e := opsFor[T]()
	return &Vector[T]{elem: &e}
}

// NewWithSize returns a vector holding n zero-valued elements, with
// capacity equal to n.
func NewWithSize[T any](n int) (*Vector[T], error) {
	v := New[T]()
	if err := v.Resize(n); err != nil {
		return nil, err
	}
	return v, nil
}

// policy returns the cached trait resolution, deriving it on first use for
// zero-value vectors.
func (v *Vector[T]) policy() *elemOps[T] {
	if v.elem == nil {
		e := opsFor[T]()
		v.elem = &e
	}
	return v.elem
}

// Len returns the number of live elements.
func (v *Vector[T]) Len() int {
	return v.size
}

// Cap returns the number of allocated slots.
func (v *Vector[T]) Cap() int {
	return v.data.Cap()
}

// IsEmpty reports whether the vector holds no elements.
func (v *Vector[T]) IsEmpty() bool {
	return v.size == 0
}

// Get returns the element at position i. Requires i < Len.
func (v *Vector[T]) Get(i int) T {
	debug.Assert(i >= 0 && i < v.size, "vec: index %d out of %d", i, v.size)
	return *v.data.Slot(i)
}

// Set stores value at position i. Requires i < Len.
func (v *Vector[T]) Set(i int, value T) {
	debug.Assert(i >= 0 && i < v.size, "vec: index %d out of %d", i, v.size)
	*v.data.Slot(i) = value
}

// Ptr returns the address of the element at position i. Requires i < Len.
func (v *Vector[T]) Ptr(i int) *T {
	debug.Assert(i >= 0 && i < v.size, "vec: index %d out of %d", i, v.size)
	return v.data.Slot(i)
}

// Front returns the address of the first element. Requires a non-empty
// vector.
func (v *Vector[T]) Front() *T {
	debug.Assert(v.size > 0, "vec: front of empty vector")
	return v.data.Slot(0)
}

// Back returns the address of the last element. Requires a non-empty
// vector.
func (v *Vector[T]) Back() *T {
	debug.Assert(v.size > 0, "vec: back of empty vector")
	return v.data.Slot(v.size - 1)
}

// Slice returns the live range as a non-owning view. The view is
// invalidated by any mutation of the vector.
func (v *Vector[T]) Slice() []T {
	return v.data.Range(0, v.size)
}

// All returns an iterator over (position, element) pairs of the live
// range. Mutating the vector during iteration invalidates the iterator.
func (v *Vector[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(i, *v.data.Slot(i)) {
				return
			}
		}
	}
}

// Reserve grows capacity to at least n, relocating the live elements into
// a fresh buffer. No-op when n does not exceed the current capacity. On
// failure the vector is untouched.
func (v *Vector[T]) Reserve(n int) error {
	if n <= v.data.Cap() {
		return nil
	}
	newData, err := rawbuf.Alloc[T](n)
	if err != nil {
		return err
	}
	if err := v.relocateSpan(&newData, 0, 0, v.size); err != nil {
		return err
	}
	v.install(&newData)
	return nil
}

// Resize sets the live element count to n, destroying the excess tail when
// shrinking and exposing zero-valued elements when growing. Growth beyond
// the current capacity reallocates to max(2*Cap, n).
func (v *Vector[T]) Resize(n int) error {
	debug.Assert(n >= 0, "vec: negative size %d", n)
	if n < 0 {
		n = 0
	}
	switch {
	case n < v.size:
		scrub(v.policy(), &v.data, n, v.size)
	case n > v.size:
		if n > v.data.Cap() {
			if err := v.Reserve(v.grownCap(n)); err != nil {
				return err
			}
		}
		clear(v.data.Range(v.size, n))
	}
	v.size = n
	return nil
}

// ShrinkToFit reduces capacity to the live element count, releasing all
// storage when the vector is empty.
func (v *Vector[T]) ShrinkToFit() error {
	if v.data.Cap() == v.size {
		return nil
	}
	newData, err := rawbuf.Alloc[T](v.size)
	if err != nil {
		return err
	}
	if err := v.relocateSpan(&newData, 0, 0, v.size); err != nil {
		return err
	}
	v.install(&newData)
	return nil
}

// Swap exchanges contents with other in O(1).
func (v *Vector[T]) Swap(other *Vector[T]) {
	v.data.Swap(&other.data)
	v.size, other.size = other.size, v.size
}

// Clone returns a new vector with capacity equal to Len holding copies of
// the elements. A clone failure leaves nothing allocated and returns the
// element's error.
func (v *Vector[T]) Clone() (*Vector[T], error) {
	e := v.policy()
	debug.Assert(e.clone != nil || e.destroy == nil, "vec: clone of move-only elements")
	newData, err := rawbuf.Alloc[T](v.size)
	if err != nil {
		return nil, err
	}
	if err := copySpan(e, &newData, 0, &v.data, 0, v.size); err != nil {
		return nil, err
	}
	out := New[T]()
	out.data.MoveFrom(&newData)
	out.size = v.size
	return out, nil
}

// Assign replaces the contents with copies of src's elements. When src
// fits in the current capacity the buffer is reused in place, assigning
// the overlap and constructing or destroying the delta; a clone failure
// partway through that path leaves a well-defined mix of old and new
// elements with Len unchanged (basic guarantee). When src does not fit,
// the copy is built aside and swapped in, preserving the pre-call state on
// failure.
func (v *Vector[T]) Assign(src *Vector[T]) error {
	if v == src {
		return nil
	}
	e := v.policy()
	debug.Assert(e.clone != nil || e.destroy == nil, "vec: assign of move-only elements")
	if src.size > v.data.Cap() {
		dup, err := src.Clone()
		if err != nil {
			return err
		}
		scrub(e, &v.data, 0, v.size)
		v.data.MoveFrom(&dup.data)
		v.size = dup.size
		dup.size = 0
		return nil
	}
	overlap := min(v.size, src.size)
	for i := 0; i < overlap; i++ {
		if e.clone == nil {
			*v.data.Slot(i) = *src.data.Slot(i)
			continue
		}
		c, err := e.clone(src.data.Slot(i))
		if err != nil {
			return err
		}
		if e.destroy != nil {
			e.destroy(v.data.Slot(i))
		}
		*v.data.Slot(i) = c
	}
	if src.size > v.size {
		if err := copySpan(e, &v.data, v.size, &src.data, v.size, src.size); err != nil {
			return err
		}
	} else {
		scrub(e, &v.data, src.size, v.size)
	}
	v.size = src.size
	return nil
}

// MoveFrom takes src's storage and elements, destroying any elements v
// held. src is left empty (size 0, capacity 0) and remains usable.
func (v *Vector[T]) MoveFrom(src *Vector[T]) {
	if v == src {
		return
	}
	scrub(v.policy(), &v.data, 0, v.size)
	v.data.MoveFrom(&src.data)
	v.size = src.size
	src.size = 0
}

// grownCap doubles the capacity, with a floor of need and a minimum of one
// slot.
func (v *Vector[T]) grownCap(need int) int {
	c := v.data.Cap() * 2
	if c < need {
		c = need
	}
	if c < 1 {
		c = 1
	}
	return c
}

// relocateSpan relocates the live slots [lo, hi) into dst starting at
// dstLo, moving or cloning per the element traits. On a clone failure the
// elements already placed in dst are scrubbed and the error is returned;
// the source slots are untouched.
func (v *Vector[T]) relocateSpan(dst *rawbuf.Buffer[T], dstLo, lo, hi int) error {
	e := v.policy()
	switch {
	case e.move != nil:
		for i := lo; i < hi; i++ {
			*dst.Slot(dstLo + i - lo) = e.move(v.data.Slot(i))
		}
	case e.clone != nil:
		for i := lo; i < hi; i++ {
			c, err := e.clone(v.data.Slot(i))
			if err != nil {
				scrub(e, dst, dstLo, dstLo+i-lo)
				return err
			}
			*dst.Slot(dstLo + i - lo) = c
		}
	default:
		copy(dst.Range(dstLo, dstLo+hi-lo), v.data.Range(lo, hi))
	}
	return nil
}

// install swaps newData in as the storage and drops the old block. When
// relocation cloned the elements, the originals still hold resources and
// their destroy hooks run first.
func (v *Vector[T]) install(newData *rawbuf.Buffer[T]) {
	e := v.policy()
	if e.relocateByClone() && e.destroy != nil {
		for i := 0; i < v.size; i++ {
			e.destroy(v.data.Slot(i))
		}
	}
	v.data.Swap(newData)
	newData.Release()
}
