package vec

import (
	"github.com/wilhasse/vector-go/internal/debug"
	"github.com/wilhasse/vector-go/rawbuf"
)

// PushBack appends value. Element types implementing Cloner are cloned in;
// a failure on any path leaves the vector untouched.
func (v *Vector[T]) PushBack(value T) error {
	_, err := v.emplaceAt(v.size, v.ctorFor(value))
	return err
}

// EmplaceBack constructs a new element from ctor and appends it, returning
// its address. A ctor failure leaves the vector untouched.
func (v *Vector[T]) EmplaceBack(ctor func() (T, error)) (*T, error) {
	return v.emplaceAt(v.size, ctor)
}

// Insert inserts value at position i, shifting the elements at and after i
// one slot right. Requires i <= Len.
func (v *Vector[T]) Insert(i int, value T) error {
	_, err := v.emplaceAt(i, v.ctorFor(value))
	return err
}

// Emplace constructs a new element from ctor at position i, shifting the
// elements at and after i one slot right. Requires i <= Len.
func (v *Vector[T]) Emplace(i int, ctor func() (T, error)) (*T, error) {
	return v.emplaceAt(i, ctor)
}

// ctorFor adapts an incoming value to the emplace path, cloning it when
// the element type clones.
func (v *Vector[T]) ctorFor(value T) func() (T, error) {
	e := v.policy()
	if e.clone == nil {
		return func() (T, error) { return value, nil }
	}
	return func() (T, error) { return e.clone(&value) }
}

// emplaceAt places one new element at position at, growing capacity first
// when the vector is full.
//
// Grow path: the new element is constructed directly into its final slot
// in the new buffer, then the prefix and suffix are relocated around it;
// any failure scrubs the partially built buffer and returns with the old
// buffer and size untouched. In-place path: the new element is constructed
// before anything shifts, so a ctor failure also leaves the vector
// untouched; the shift itself cannot fail.
func (v *Vector[T]) emplaceAt(at int, ctor func() (T, error)) (*T, error) {
	debug.Assert(at >= 0 && at <= v.size, "vec: emplace at %d out of %d", at, v.size)
	e := v.policy()
	if v.size == v.data.Cap() {
		newData, err := rawbuf.Alloc[T](v.grownCap(v.size + 1))
		if err != nil {
			return nil, err
		}
		value, err := ctor()
		if err != nil {
			newData.Release()
			return nil, err
		}
		*newData.Slot(at) = value
		if err := v.relocateSpan(&newData, 0, 0, at); err != nil {
			scrub(e, &newData, at, at+1)
			return nil, err
		}
		if err := v.relocateSpan(&newData, at+1, at, v.size); err != nil {
			scrub(e, &newData, 0, at+1)
			return nil, err
		}
		v.install(&newData)
	} else {
		value, err := ctor()
		if err != nil {
			return nil, err
		}
		if at < v.size {
			copy(v.data.Range(at+1, v.size+1), v.data.Range(at, v.size))
		}
		*v.data.Slot(at) = value
	}
	v.size++
	return v.data.Slot(at), nil
}

// PopBack destroys the last element. No-op when empty.
func (v *Vector[T]) PopBack() {
	if v.size == 0 {
		return
	}
	scrub(v.policy(), &v.data, v.size-1, v.size)
	v.size--
}

// Erase removes the element at position i, shifting the tail one slot
// left. Requires i < Len.
func (v *Vector[T]) Erase(i int) {
	debug.Assert(i >= 0 && i < v.size, "vec: erase %d out of %d", i, v.size)
	e := v.policy()
	if e.destroy != nil {
		e.destroy(v.data.Slot(i))
	}
	copy(v.data.Range(i, v.size-1), v.data.Range(i+1, v.size))
	var zero T
	*v.data.Slot(v.size - 1) = zero
	v.size--
}

// Truncate destroys the elements at positions [n, Len). No-op when n is
// not below Len. Capacity is unchanged.
func (v *Vector[T]) Truncate(n int) {
	if n < 0 {
		n = 0
	}
	if n >= v.size {
		return
	}
	scrub(v.policy(), &v.data, n, v.size)
	v.size = n
}

// Clear destroys all elements, keeping capacity.
func (v *Vector[T]) Clear() {
	v.Truncate(0)
}
