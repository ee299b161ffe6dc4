package pointstore

import "fmt"

// Stats is a point-in-time snapshot of store usage.
type Stats struct {
	Size          int    // points currently stored
	Free          int    // free slots remaining
	Capacity      int    // total slots
	Dimensions    int    // values per point
	TotalAdds     uint64 // adds over the store's lifetime
	TotalReleases uint64 // slots recycled over the store's lifetime
	PeakSize      int    // highest size ever observed
}

// Stats returns current store statistics.
func (s *Store[T]) Stats() Stats {
	return Stats{
		Size:          s.Size(),
		Free:          s.freePtr + 1,
		Capacity:      s.capacity,
		Dimensions:    s.dimensions,
		TotalAdds:     s.totalAdds,
		TotalReleases: s.totalReleases,
		PeakSize:      s.peakSize,
	}
}

// Usage returns the share of slots currently in use as a percentage.
func (s *Store[T]) Usage() float64 {
	return float64(s.Size()) / float64(s.capacity) * 100
}

// String returns a human-readable summary of the store.
func (s *Store[T]) String() string {
	return fmt.Sprintf("PointStore{dimensions: %d, size: %d/%d, usage: %.1f%%, adds: %d, releases: %d, peak: %d}",
		s.dimensions, s.Size(), s.capacity, s.Usage(), s.totalAdds, s.totalReleases, s.peakSize)
}
