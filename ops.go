package vec

import "github.com/pkg/errors"

// ErrNotCopyable is reported when a copy operation is requested for a
// policy whose Copy hook is nil.
var ErrNotCopyable = errors.New("vec: element type is not copyable")

// Ops describes the lifetime operations of an element type T. Go has no
// constructors, destructors, or move semantics, so the container takes them
// as an explicit policy and resolves it once per array.
//
// All fields are optional. A zero Ops treats T as a plain value except that
// Copy is nil, which marks T non-copyable; use ValueOps for ordinary value
// types.
type Ops[T any] struct {
	// Default constructs a value for slots exposed by growing Resize calls.
	// Nil means the zero value.
	Default func() (T, error)

	// Copy duplicates a value. Nil marks T non-copyable: Clone and CopyFrom
	// report ErrNotCopyable and relocation during growth always moves.
	Copy func(T) (T, error)

	// Move transfers the value out of src, leaving src moved-from but still
	// safe to destroy. Nil means a trivial move: the bits are taken and the
	// source slot zeroed. A trivial move cannot fail.
	Move func(src *T) (T, error)

	// NoFailMove declares that Move never returns an error. When set, or
	// when T is not copyable, relocation during growth moves elements;
	// otherwise it copies them, since a move failing mid-relocation would
	// corrupt the source with no way to roll back. Erase and the shifting
	// step of an in-place insert always move; using them with a fallible
	// Move violates their contract and panics.
	NoFailMove bool

	// Destroy releases resources held by a value. It must not fail and must
	// accept moved-from values. Nil means no work is needed; either way the
	// container zeroes a destroyed slot so the GC can reclaim whatever it
	// referenced.
	Destroy func(*T)
}

// ValueOps returns the policy for plain value types: bitwise copy, trivial
// move, no destructor work. Moves never fail, so growth relocates by moving.
func ValueOps[T any]() Ops[T] {
	return Ops[T]{
		Copy:       func(x T) (T, error) { return x, nil },
		NoFailMove: true,
	}
}

// ops is the resolved form of Ops: every hook non-nil and the relocation
// strategy fixed up front instead of re-derived per call.
type ops[T any] struct {
	defaultNew  func() (T, error)
	copy        func(T) (T, error)
	move        func(*T) (T, error)
	destroy     func(*T)
	relocateOne func(*T) (T, error)

	copyable   bool
	noFailMove bool
	moveOnGrow bool
}

func resolve[T any](o Ops[T]) ops[T] {
	r := ops[T]{
		defaultNew: o.Default,
		copy:       o.Copy,
		move:       o.Move,
		destroy:    o.Destroy,
		copyable:   o.Copy != nil,
		noFailMove: o.NoFailMove,
	}
	if r.defaultNew == nil {
		r.defaultNew = func() (T, error) {
			var zero T
			return zero, nil
		}
	}
	if r.copy == nil {
		r.copy = func(T) (T, error) {
			var zero T
			return zero, ErrNotCopyable
		}
	}
	if r.move == nil {
		r.move = func(src *T) (T, error) {
			var zero T
			x := *src
			*src = zero
			return x, nil
		}
		r.noFailMove = true
	}
	if r.destroy == nil {
		r.destroy = func(*T) {}
	}
	r.moveOnGrow = r.noFailMove || !r.copyable
	if r.moveOnGrow {
		r.relocateOne = r.move
	} else {
		cp := r.copy
		r.relocateOne = func(src *T) (T, error) { return cp(*src) }
	}
	return r
}

// destroyAt destroys the value in the slot and zeroes it.
func (o *ops[T]) destroyAt(p *T) {
	o.destroy(p)
	var zero T
	*p = zero
}

// moveAssign replaces the live value at dst with the value moved out of src.
func (o *ops[T]) moveAssign(dst, src *T) error {
	x, err := o.move(src)
	if err != nil {
		return err
	}
	o.destroy(dst)
	*dst = x
	return nil
}

// copyAssign replaces the live value at dst with a copy of src. The old
// value is destroyed only after the copy succeeds.
func (o *ops[T]) copyAssign(dst *T, src T) error {
	x, err := o.copy(src)
	if err != nil {
		return err
	}
	o.destroy(dst)
	*dst = x
	return nil
}
