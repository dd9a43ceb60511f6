package vec

import "github.com/pkg/errors"

// PushBack appends x, taking ownership of the value. Amortized constant
// time; a full array doubles its capacity first.
func (v *Vector[T]) PushBack(x T) error {
	_, err := v.Emplace(v.size, func() (T, error) { return x, nil })
	return err
}

// EmplaceBack constructs a new element at the end via build and returns the
// address of its slot.
func (v *Vector[T]) EmplaceBack(build func() (T, error)) (*T, error) {
	return v.Emplace(v.size, build)
}

// Insert places x at position pos, shifting later elements one slot right.
// Ownership of x passes to the vector. pos may equal Len(), meaning append.
func (v *Vector[T]) Insert(pos int, x T) (*T, error) {
	return v.Emplace(pos, func() (T, error) { return x, nil })
}

// Emplace constructs a new element at position pos via build and returns
// the address of its final slot. Panics if pos is outside [0, Len()].
//
// When the array is full, storage of max(1, 2*Len()) slots is allocated and
// the element is constructed there before any existing element is touched,
// so a failure anywhere short of the final buffer swap leaves the array
// unchanged (on the copy relocation path). When capacity is available, the
// element is built first as a temporary, the tail shifted right one slot,
// and the temporary moved into the hole; the only failure point is the
// build itself, which happens before any existing element is touched.
func (v *Vector[T]) Emplace(pos int, build func() (T, error)) (*T, error) {
	if pos < 0 || pos > v.size {
		panic("vec: insert position out of range")
	}
	var err error
	if v.size == v.data.Cap() {
		err = v.emplaceGrow(pos, build)
	} else {
		err = v.emplaceInPlace(pos, build)
	}
	if err != nil {
		return nil, err
	}
	v.size++
	return v.data.Slot(pos), nil
}

// Erase removes the element at pos, shifting later elements one slot left
// by move-assignment and destroying the vacated last slot. It returns the
// address of the element that now occupies pos, or nil when the erased
// element was the last. Requires a policy whose moves cannot fail; a
// fallible move here panics. Panics if pos is outside [0, Len()).
func (v *Vector[T]) Erase(pos int) *T {
	if pos < 0 || pos >= v.size {
		panic("vec: erase position out of range")
	}
	for i := pos; i < v.size-1; i++ {
		v.mustMoveAssign(v.data.Slot(i), v.data.Slot(i+1))
	}
	v.ops.destroyAt(v.data.Slot(v.size - 1))
	v.size--
	if pos == v.size {
		return nil
	}
	return v.data.Slot(pos)
}

// PopBack destroys the last element. Panics on an empty vector.
func (v *Vector[T]) PopBack() {
	if v.size == 0 {
		panic("vec: pop from empty vector")
	}
	v.ops.destroyAt(v.data.Slot(v.size - 1))
	v.size--
}

// emplaceGrow inserts into a full array. The new element is constructed at
// its target slot in the new buffer first, then the prefix [0, pos) and
// suffix [pos, size) relocate around it. Only after every transfer has
// succeeded are the buffers swapped and the obsolete values destroyed.
func (v *Vector[T]) emplaceGrow(pos int, build func() (T, error)) error {
	newCap := 1
	if v.size > 0 {
		newCap = v.size * 2
	}
	newData := NewRawBuffer[T](newCap)
	x, err := build()
	if err != nil {
		newData.Release()
		return errors.Wrap(err, "vec: construct element")
	}
	*newData.Slot(pos) = x
	if err := v.relocate(&newData, 0, pos, 0); err != nil {
		v.ops.destroyAt(newData.Slot(pos))
		newData.Release()
		return err
	}
	if err := v.relocate(&newData, pos, v.size, pos+1); err != nil {
		for j := 0; j <= pos; j++ {
			v.ops.destroyAt(newData.Slot(j))
		}
		newData.Release()
		return err
	}
	v.data.Swap(&newData)
	v.destroyOld(&newData, v.size)
	return nil
}

// emplaceInPlace inserts with spare capacity. Appends construct directly in
// the target slot. A middle insert builds the value first, move-constructs
// the last element into the one-past-end slot to extend the live range,
// shifts [pos, size-1) one slot right, and move-assigns the temporary into
// the hole. Existing elements are only touched after the build succeeds.
func (v *Vector[T]) emplaceInPlace(pos int, build func() (T, error)) error {
	if pos == v.size {
		x, err := build()
		if err != nil {
			return errors.Wrap(err, "vec: construct element")
		}
		*v.data.Slot(pos) = x
		return nil
	}
	tmp, err := build()
	if err != nil {
		return errors.Wrap(err, "vec: construct element")
	}
	*v.data.Slot(v.size) = v.mustMove(v.data.Slot(v.size - 1))
	v.shiftRight(pos)
	v.mustMoveAssign(v.data.Slot(pos), &tmp)
	// The temporary is a moved-from shell now, but it is still an instance
	// the policy created and it gets the same destruction as any other.
	v.ops.destroyAt(&tmp)
	return nil
}

// shiftRight shifts the live range [pos, size-1) one slot right, opening a
// hole at pos. The slot at size must already hold the old last element.
// The shift assigns by move or copy following the relocation strategy; a
// failure here cannot be rolled back and panics as a contract violation.
func (v *Vector[T]) shiftRight(pos int) {
	if v.ops.moveOnGrow {
		for i := v.size - 1; i > pos; i-- {
			v.mustMoveAssign(v.data.Slot(i), v.data.Slot(i-1))
		}
		return
	}
	for i := v.size - 1; i > pos; i-- {
		if err := v.ops.copyAssign(v.data.Slot(i), *v.data.Slot(i-1)); err != nil {
			panic("vec: element copy failed during insert shift: " + err.Error())
		}
	}
}
