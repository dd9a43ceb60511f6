// Package vec implements a dynamic array with explicit element lifetimes.
//
// # Overview
//
// A Vector owns a single RawBuffer of fixed-capacity storage plus a count
// of live elements. Storage and lifetime are deliberately separated:
// RawBuffer only allocates and releases slots, while Vector drives every
// construction, copy, move, and destruction through an Ops policy supplied
// by the caller. This makes the container usable for element types that own
// resources (file handles, pooled buffers, child containers) and not just
// plain values.
//
// Supported operations:
//
//   - Amortized O(1) append (PushBack, EmplaceBack) with capacity doubling
//   - O(1) indexed access (At) and forward iteration (All, Values)
//   - Positional insertion and removal (Insert, Emplace, Erase)
//   - Capacity and size management (Reserve, Resize)
//   - Value semantics (Clone, CopyFrom, TakeFrom, Moved, Swap)
//
// # Basic Usage
//
//	v := vec.Of(1, 2, 3)
//	_ = v.PushBack(4)
//	v.Insert(1, 99)         // [1 99 2 3 4]
//	v.Erase(2)              // [1 99 3 4]
//	for i, x := range v.All() {
//		fmt.Println(i, x)
//	}
//
// Resource-owning element types supply an Ops policy:
//
//	ops := vec.Ops[*os.File]{
//		NoFailMove: true,
//		Destroy:    func(f **os.File) { (*f).Close() },
//	}
//	files := vec.New(ops)
//
// # Growth and Relocation
//
// A full vector doubles its capacity on insertion (a fresh vector grows to
// one slot). Live elements relocate into the new storage by moving when the
// policy declares moves no-fail, or when the type is not copyable at all;
// otherwise they are copied, so that a failure mid-relocation cannot
// corrupt the originals. The strategy is fixed once when the policy is
// resolved, never per element.
//
// # Failure Safety
//
// Element operations (Default, Copy, Move) may return errors. Clone,
// Reserve, the over-capacity path of Emplace and Insert, and the
// allocate-and-swap branch of CopyFrom guarantee that on failure the vector
// is observably unchanged: new storage is unwound and released before the
// error returns. The in-place path of Emplace builds the new value before
// touching any existing element, so its only failure point leaves the
// vector unchanged too. Erase, PopBack, TakeFrom, Moved, and Swap never
// fail.
//
// Allocation failure has no recovery path in Go; the runtime aborts the
// program, which matches this container's contract of treating memory
// exhaustion as fatal.
//
// Precondition violations (index out of range, popping an empty vector,
// erasing with a fallible Move) panic with a "vec:" prefixed message; they
// are bugs in the caller, not recoverable conditions.
//
// # Thread Safety
//
// Vector is a sequential data structure. No operation yields, no state is
// shared between distinct vectors, and two vectors alias storage only for
// the duration of a Swap. Callers sharing a vector across goroutines must
// synchronize externally.
//
// # Performance Characteristics
//
//   - PushBack: O(1) amortized
//   - At, PopBack, Swap, TakeFrom: O(1)
//   - Insert, Erase at position p: O(Len - p) element transfers
//   - Reserve, Clone, CopyFrom: O(Len)
//   - Capacity never shrinks; Release drops everything at once
package vec
