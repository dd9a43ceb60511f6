package vec

import "unsafe"

// RawBuffer owns a fixed-capacity block of storage for values of type T.
// It deals in storage only: it never constructs or destroys element values
// and keeps no record of which slots are live. The owner drives every
// lifetime transition and must destroy all live elements before the buffer
// is released.
//
// A zero RawBuffer is valid and holds no storage. RawBuffer must not be
// copied; ownership moves only through Swap and TakeFrom.
type RawBuffer[T any] struct {
	slots []T // full-capacity backing storage; liveness is the owner's business
}

// NewRawBuffer allocates storage for exactly capacity values of T. A
// capacity of zero or less yields an empty buffer holding no storage.
// Allocation failure aborts the program; there is no recovery path.
func NewRawBuffer[T any](capacity int) RawBuffer[T] {
	if capacity <= 0 {
		return RawBuffer[T]{}
	}
	return RawBuffer[T]{slots: make([]T, capacity)}
}

// Cap returns the number of slots the buffer can hold.
func (b *RawBuffer[T]) Cap() int {
	return len(b.slots)
}

// Slot returns the address of slot i. Requires 0 <= i < Cap().
func (b *RawBuffer[T]) Slot(i int) *T {
	return &b.slots[i]
}

// Address returns the address of slot i, additionally permitting i == Cap():
// the one-past-end address may be computed, matching pointer-arithmetic
// convention, but must never be dereferenced. An empty buffer has no
// addresses and yields nil.
func (b *RawBuffer[T]) Address(i int) *T {
	if i < 0 || i > len(b.slots) {
		panic("vec: address out of buffer range")
	}
	if len(b.slots) == 0 {
		return nil
	}
	var zero T
	// For i == Cap() this advances just past the allocation, which the
	// unsafe.Pointer rules do not strictly permit even for a never-read
	// pointer. The slots slice header keeps the block live and the result
	// is only ever compared or offset from, never dereferenced.
	return (*T)(unsafe.Add(unsafe.Pointer(&b.slots[0]), uintptr(i)*unsafe.Sizeof(zero)))
}

// Swap exchanges the storage of two buffers in constant time. Never fails.
func (b *RawBuffer[T]) Swap(other *RawBuffer[T]) {
	b.slots, other.slots = other.slots, b.slots
}

// TakeFrom transfers other's storage into b, dropping b's current block and
// leaving other empty. Never fails.
func (b *RawBuffer[T]) TakeFrom(other *RawBuffer[T]) {
	if b == other {
		return
	}
	b.slots = other.slots
	other.slots = nil
}

// Release drops the backing storage, leaving the buffer empty. No live
// elements may remain; the owner destroys them first.
func (b *RawBuffer[T]) Release() {
	b.slots = nil
}
