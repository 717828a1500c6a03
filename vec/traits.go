package vec

import "github.com/wilhasse/vector-go/rawbuf"

// Cloner is implemented by element types whose duplication can fail. The
// vector clones through it wherever it copies an element in or duplicates
// its contents; a non-nil error aborts the operation under the documented
// state guarantee.
type Cloner[T any] interface {
	Clone() (T, error)
}

// Mover is implemented by element types that relocate by transferring
// ownership out of the source slot. Move returns the transferred value and
// leaves the receiver empty; it must not fail.
type Mover[T any] interface {
	Move() T
}

// Destroyer is implemented by element types that release resources when
// they leave the container. Destroy runs exactly once per live element
// removed.
//
// A type implementing Destroyer but not Cloner is move-only: Clone and
// Assign on vectors of such a type are contract breaches.
type Destroyer interface {
	Destroy()
}

// elemOps caches the trait resolution for an element type. It is derived
// once per vector, never per element.
type elemOps[T any] struct {
	move    func(*T) T
	clone   func(*T) (T, error)
	destroy func(*T)
}

// opsFor resolves the traits of T. Detection probes *T, so value and
// pointer receiver implementations both qualify.
func opsFor[T any]() elemOps[T] {
	var o elemOps[T]
	probe := any(new(T))
	if _, ok := probe.(Mover[T]); ok {
		o.move = func(p *T) T { return any(p).(Mover[T]).Move() }
	}
	if _, ok := probe.(Cloner[T]); ok {
		o.clone = func(p *T) (T, error) { return any(p).(Cloner[T]).Clone() }
	}
	if _, ok := probe.(Destroyer); ok {
		o.destroy = func(p *T) { any(p).(Destroyer).Destroy() }
	}
	return o
}

// relocateByClone reports whether growth must duplicate elements instead of
// moving them: the type clones fallibly and offers no failure-free move.
// Leaving the originals intact until every clone succeeds is what keeps the
// pre-operation state recoverable on failure.
func (o *elemOps[T]) relocateByClone() bool {
	return o.move == nil && o.clone != nil
}

// scrub destroys the elements in slots [lo, hi) of b and returns the slots
// to the zero value.
func scrub[T any](o *elemOps[T], b *rawbuf.Buffer[T], lo, hi int) {
	var zero T
	for i := lo; i < hi; i++ {
		p := b.Slot(i)
		if o.destroy != nil {
			o.destroy(p)
		}
		*p = zero
	}
}

// copySpan duplicates src slots [lo, hi) into dst starting at dstLo. Unlike
// relocation it never moves: the source keeps its elements. On a clone
// failure the elements already placed in dst are scrubbed and the error is
// returned; the source is untouched.
func copySpan[T any](o *elemOps[T], dst *rawbuf.Buffer[T], dstLo int, src *rawbuf.Buffer[T], lo, hi int) error {
	if o.clone == nil {
		copy(dst.Range(dstLo, dstLo+hi-lo), src.Range(lo, hi))
		return nil
	}
	for i := lo; i < hi; i++ {
		c, err := o.clone(src.Slot(i))
		if err != nil {
			scrub(o, dst, dstLo, dstLo+i-lo)
			return err
		}
		*dst.Slot(dstLo+i-lo) = c
	}
	return nil
}
