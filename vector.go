package vec

import (
	"iter"

	"github.com/pkg/errors"
)

// Vector is a dynamic array over raw storage: one RawBuffer plus a count of
// live elements. Slots [0, Len()) hold constructed values; slots
// [Len(), Cap()) are uninitialized storage. Capacity only grows over the
// array's life, except when a move or swap transfers it.
//
// Vector is not goroutine-safe. Callers sharing an instance across
// goroutines must synchronize externally.
type Vector[T any] struct {
	data RawBuffer[T]
	size int
	ops  ops[T]
}

// New returns an empty vector using o for element lifetime operations.
func New[T any](o Ops[T]) *Vector[T] {
	return &Vector[T]{ops: resolve(o)}
}

// WithLen returns a vector of n default-constructed elements and capacity
// exactly n. If a construction fails, the elements built so far are
// destroyed and the storage released; no vector exists.
func WithLen[T any](o Ops[T], n int) (*Vector[T], error) {
	v := New(o)
	if n <= 0 {
		return v, nil
	}
	v.data = NewRawBuffer[T](n)
	for i := 0; i < n; i++ {
		x, err := v.ops.defaultNew()
		if err != nil {
			v.destroyRange(0, i)
			v.data.Release()
			return nil, errors.Wrapf(err, "vec: default-construct element %d", i)
		}
		*v.data.Slot(i) = x
	}
	v.size = n
	return v, nil
}

// Of returns a vector of plain values, in order, with capacity exactly
// len(vals). Ownership of the values passes to the vector.
func Of[T any](vals ...T) *Vector[T] {
	v := New(ValueOps[T]())
	if len(vals) == 0 {
		return v
	}
	v.data = NewRawBuffer[T](len(vals))
	for i := range vals {
		*v.data.Slot(i) = vals[i]
	}
	v.size = len(vals)
	return v
}

// Moved move-constructs a vector from src, taking its storage and count and
// leaving src valid and empty. Constant time, never fails.
func Moved[T any](src *Vector[T]) *Vector[T] {
	v := &Vector[T]{ops: src.ops}
	v.data.TakeFrom(&src.data)
	v.size = src.size
	src.size = 0
	return v
}

// Len returns the number of live elements.
func (v *Vector[T]) Len() int {
	return v.size
}

// Cap returns the number of slots the current storage can hold.
func (v *Vector[T]) Cap() int {
	return v.data.Cap()
}

// At returns the address of element i. The pointer stays valid until the
// next mutating call. Panics if i is outside [0, Len()).
func (v *Vector[T]) At(i int) *T {
	if i < 0 || i >= v.size {
		panic("vec: index out of range")
	}
	return v.data.Slot(i)
}

// All returns an index/value iterator over the live range [0, Len()).
// The sequence is valid as long as no mutating call intervenes.
func (v *Vector[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(i, *v.data.Slot(i)) {
				return
			}
		}
	}
}

// Values returns a value iterator over the live range [0, Len()).
func (v *Vector[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(*v.data.Slot(i)) {
				return
			}
		}
	}
}

// Swap exchanges storage and live counts with other in constant time.
// Never fails.
func (v *Vector[T]) Swap(other *Vector[T]) {
	v.data.Swap(&other.data)
	v.size, other.size = other.size, v.size
}

// Clone copy-constructs a new vector with capacity exactly Len(). If an
// element copy fails, the copies made so far are destroyed and the new
// storage released; no vector exists and the source is untouched.
func (v *Vector[T]) Clone() (*Vector[T], error) {
	c := &Vector[T]{ops: v.ops}
	if v.size == 0 {
		return c, nil
	}
	c.data = NewRawBuffer[T](v.size)
	for i := 0; i < v.size; i++ {
		x, err := v.ops.copy(*v.data.Slot(i))
		if err != nil {
			c.destroyRange(0, i)
			c.data.Release()
			return nil, errors.Wrapf(err, "vec: copy element %d", i)
		}
		*c.data.Slot(i) = x
	}
	c.size = v.size
	return c, nil
}

// CopyFrom copy-assigns src's elements into v, setting Len to src.Len().
//
// When src.Len() exceeds v's capacity, a full temporary copy of src is
// built and swapped in, so any failure leaves v untouched. Otherwise
// existing storage is reused: the overlapping prefix is copy-assigned
// element by element, then v's surplus tail is destroyed or src's surplus
// tail copy-constructed into v's uninitialized slots. A failure in the
// reuse branch leaves already-assigned prefix slots holding the new values.
func (v *Vector[T]) CopyFrom(src *Vector[T]) error {
	if v == src {
		return nil
	}
	if src.size > v.data.Cap() {
		tmp, err := src.Clone()
		if err != nil {
			return err
		}
		v.Swap(tmp)
		tmp.Release()
		return nil
	}
	n := min(v.size, src.size)
	for i := 0; i < n; i++ {
		if err := v.ops.copyAssign(v.data.Slot(i), *src.data.Slot(i)); err != nil {
			return errors.Wrapf(err, "vec: copy-assign element %d", i)
		}
	}
	switch {
	case src.size < v.size:
		v.destroyRange(src.size, v.size)
	case src.size > v.size:
		for i := v.size; i < src.size; i++ {
			x, err := v.ops.copy(*src.data.Slot(i))
			if err != nil {
				v.destroyRange(v.size, i)
				return errors.Wrapf(err, "vec: copy element %d", i)
			}
			*v.data.Slot(i) = x
		}
	}
	v.size = src.size
	return nil
}

// TakeFrom move-assigns src into v: v's current elements are destroyed and
// its storage dropped, then src's storage and count transfer over, leaving
// src valid and empty. Never fails.
func (v *Vector[T]) TakeFrom(src *Vector[T]) {
	if v == src {
		return
	}
	v.Release()
	v.data.TakeFrom(&src.data)
	v.size = src.size
	src.size = 0
}

// Release destroys all live elements and drops the storage. The vector
// remains valid and empty afterwards.
func (v *Vector[T]) Release() {
	v.destroyRange(0, v.size)
	v.size = 0
	v.data.Release()
}

// destroyRange destroys the live slots [lo, hi), zeroing each so the GC can
// reclaim whatever they referenced.
func (v *Vector[T]) destroyRange(lo, hi int) {
	for i := lo; i < hi; i++ {
		v.ops.destroyAt(v.data.Slot(i))
	}
}

// mustMove moves the value out of src; the caller has declared this cannot
// fail, so a failure is a contract violation.
func (v *Vector[T]) mustMove(src *T) T {
	x, err := v.ops.move(src)
	if err != nil {
		panic("vec: element move failed: " + err.Error())
	}
	return x
}

// mustMoveAssign move-assigns src into dst under the same contract.
func (v *Vector[T]) mustMoveAssign(dst, src *T) {
	if err := v.ops.moveAssign(dst, src); err != nil {
		panic("vec: element move failed: " + err.Error())
	}
}
