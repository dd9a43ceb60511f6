package vec

import "unsafe"

// Stats contains a snapshot of a vector's storage accounting.
type Stats struct {
	Len         int     // live elements
	Cap         int     // allocated slots
	SizeBytes   int     // bytes occupied by live elements
	CapBytes    int     // bytes allocated in total
	Utilization float64 // ratio of live to allocated slots (0.0-1.0)
}

// Stats returns a snapshot of the vector's storage accounting.
func (v *Vector[T]) Stats() Stats {
	var zero T
	elem := int(unsafe.Sizeof(zero))
	s := Stats{
		Len:       v.size,
		Cap:       v.data.Cap(),
		SizeBytes: v.size * elem,
		CapBytes:  v.data.Cap() * elem,
	}
	if s.Cap > 0 {
		s.Utilization = float64(s.Len) / float64(s.Cap)
	}
	return s
}
