package vec

import "github.com/pkg/errors"

// Reserve ensures capacity for at least newCap elements. It is a no-op when
// newCap does not exceed the current capacity. Otherwise the live elements
// relocate into fresh storage: moved when the policy declares moves no-fail
// or the type is not copyable, copied otherwise so a failure cannot corrupt
// the originals. A copy failure unwinds the new storage and leaves the
// array exactly as it was. A move failure (possible only with a fallible
// Move and no Copy) destroys the values already transferred and returns the
// error with the remaining sources disturbed.
func (v *Vector[T]) Reserve(newCap int) error {
	if newCap <= v.data.Cap() {
		return nil
	}
	newData := NewRawBuffer[T](newCap)
	if err := v.relocate(&newData, 0, v.size, 0); err != nil {
		newData.Release()
		return err
	}
	v.data.Swap(&newData)
	v.destroyOld(&newData, v.size)
	return nil
}

// Resize sets the live count to newLen. Shrinking destroys the elements in
// [newLen, Len()) in place; capacity is unchanged. Growing reserves at
// least newLen and default-constructs the newly exposed slots. If a
// construction fails, the slots built so far are destroyed and the previous
// length kept, though capacity may already have grown. Panics on a negative
// length.
func (v *Vector[T]) Resize(newLen int) error {
	switch {
	case newLen < 0:
		panic("vec: negative length")
	case newLen == v.size:
		return nil
	case newLen < v.size:
		v.destroyRange(newLen, v.size)
		v.size = newLen
	default:
		if err := v.Reserve(newLen); err != nil {
			return err
		}
		for i := v.size; i < newLen; i++ {
			x, err := v.ops.defaultNew()
			if err != nil {
				v.destroyRange(v.size, i)
				return errors.Wrapf(err, "vec: default-construct element %d", i)
			}
			*v.data.Slot(i) = x
		}
		v.size = newLen
	}
	return nil
}

// relocate transfers the live source range [lo, hi) into dst starting at
// dstLo, using the strategy fixed when the policy was resolved. On failure
// it destroys the values it already placed in dst and returns the error;
// the caller owns releasing dst and unwinding anything else it put there.
// On the copy path the source elements are untouched until destroyOld runs.
func (v *Vector[T]) relocate(dst *RawBuffer[T], lo, hi, dstLo int) error {
	for i := lo; i < hi; i++ {
		x, err := v.ops.relocateOne(v.data.Slot(i))
		if err != nil {
			for j := dstLo; j < dstLo+(i-lo); j++ {
				v.ops.destroyAt(dst.Slot(j))
			}
			return errors.Wrapf(err, "vec: relocate element %d", i)
		}
		*dst.Slot(dstLo+i-lo) = x
	}
	return nil
}

// destroyOld destroys the first n now-obsolete values left in the old
// storage after a successful relocation and buffer swap, then drops the
// block. On the move path these are moved-from shells; on the copy path
// they are the still-live originals.
func (v *Vector[T]) destroyOld(old *RawBuffer[T], n int) {
	for i := 0; i < n; i++ {
		v.ops.destroyAt(old.Slot(i))
	}
	old.Release()
}
