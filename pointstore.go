package pointstore

import (
	"context"
	"fmt"
	"math"
	"time"
	"unsafe"
)

// Float is the constraint for point element types.
type Float interface {
	~float32 | ~float64
}

// Handle identifies a slot in a Store. Handles are dense integers in
// [0, capacity) and stay stable for as long as the slot's reference count
// is positive. Handles are strictly 32-bit, allowing up to 4 billion
// points per store.
type Handle uint32

// MemoryAcquirer is an interface for acquiring memory.
// This allows stores to participate in global memory management.
type MemoryAcquirer interface {
	// AcquireMemory requests permission to allocate the given amount of bytes.
	// It blocks until the memory is available or the context is canceled.
	AcquireMemory(ctx context.Context, bytes int64) error

	// ReleaseMemory returns the given amount of bytes to the budget.
	ReleaseMemory(bytes int64)
}

// acquireTimeout bounds the construction-time memory acquisition.
const acquireTimeout = 100 * time.Millisecond

// Store is a fixed-capacity repository of points, where each point is a
// vector of exactly Dimensions values. The store counts references to each
// point and recycles a slot through an internal free-list once the last
// reference is released. The primary use is compression: consumers that
// see the same point (for example the trees of an ensemble sampling one
// stream) share a single stored copy instead of each holding their own.
//
// Points are addressed by handles. Add stores a copy of a point and returns
// its handle with the reference count set to 1; IncRef and DecRef move the
// count up and down, and Get returns a copy of the stored values. Callers
// never alias the store's internal memory.
//
// A Store is not safe for concurrent use. Callers that share a store across
// goroutines must serialize access; independent stores are independent.
type Store[T Float] struct {
	buf       []T      // capacity*dimensions values, slot i at [i*dimensions, (i+1)*dimensions)
	refCount  []int32  // one count per slot, 0 means free
	freeStack []Handle // free handles, LIFO, valid in [0, freePtr]
	freePtr   int      // top of freeStack, -1 when the store is full

	dimensions int
	capacity   int

	logger   *Logger
	acquirer MemoryAcquirer
	reserved int64
	closed   bool

	totalAdds     uint64
	totalReleases uint64
	peakSize      int
}

// New creates a Store holding up to capacity points of the given number of
// dimensions. Both must be strictly positive, and the resulting buffer must
// be addressable, otherwise New returns ErrInvalidConfiguration.
//
// If a memory acquirer is configured, New reserves the store's full
// footprint up front and fails with the acquirer's error when the budget
// cannot be granted. Close returns the reservation.
func New[T Float](dimensions, capacity int, opts ...Option) (*Store[T], error) {
	if dimensions <= 0 {
		return nil, fmt.Errorf("%w: dimensions must be greater than 0, got %d", ErrInvalidConfiguration, dimensions)
	}

	if capacity <= 0 {
		return nil, fmt.Errorf("%w: capacity must be greater than 0, got %d", ErrInvalidConfiguration, capacity)
	}

	if uint64(capacity) > math.MaxUint32 {
		return nil, fmt.Errorf("%w: capacity %d exceeds the 32-bit handle space", ErrInvalidConfiguration, capacity)
	}

	if capacity > math.MaxInt/dimensions {
		return nil, fmt.Errorf("%w: buffer of %d points with %d dimensions overflows", ErrInvalidConfiguration, capacity, dimensions)
	}

	var cfg settings
	for _, opt := range opts {
		opt(&cfg)
	}

	s := &Store[T]{
		dimensions: dimensions,
		capacity:   capacity,
		logger:     cfg.logger,
	}

	if cfg.acquirer != nil {
		bytes := footprint[T](dimensions, capacity)

		ctx, cancel := context.WithTimeout(context.Background(), acquireTimeout)
		defer cancel()

		if err := cfg.acquirer.AcquireMemory(ctx, bytes); err != nil {
			return nil, fmt.Errorf("failed to acquire %d bytes for point store: %w", bytes, err)
		}

		s.acquirer = cfg.acquirer
		s.reserved = bytes
	}

	s.buf = make([]T, capacity*dimensions)
	s.refCount = make([]int32, capacity)

	// Seed the free-list so that handle 0 sits on top of the stack and the
	// first adds hand out 0, 1, 2, ... in order.
	s.freeStack = make([]Handle, capacity)
	for j := range s.freeStack {
		s.freeStack[j] = Handle(capacity - j - 1)
	}
	s.freePtr = capacity - 1

	if s.logger != nil {
		s.logger.WithGeometry(dimensions, capacity).Info("point store created", "reserved_bytes", s.reserved)
	}

	return s, nil
}

// Dimensions returns the number of values in each stored point.
func (s *Store[T]) Dimensions() int {
	return s.dimensions
}

// Capacity returns the maximum number of points the store can hold.
func (s *Store[T]) Capacity() int {
	return s.capacity
}

// Size returns the number of points currently stored.
func (s *Store[T]) Size() int {
	return s.capacity - s.freePtr - 1
}

// RefCount returns the reference count for the given handle. A count of 0
// means the slot is free. Unlike the other accessors this performs no
// liveness check, so callers can probe slots; a handle at or beyond the
// capacity panics.
func (s *Store[T]) RefCount(handle Handle) int {
	return int(s.refCount[handle])
}

// Add stores a copy of point in a free slot and returns the slot's handle
// with a reference count of 1. It returns ErrDimensionMismatch if the point
// has the wrong length and ErrStoreFull if every slot is in use.
func (s *Store[T]) Add(point []T) (Handle, error) {
	if len(point) != s.dimensions {
		return 0, &ErrDimensionMismatch{Expected: s.dimensions, Actual: len(point)}
	}

	if s.freePtr < 0 {
		return 0, ErrStoreFull
	}

	next := s.freeStack[s.freePtr]
	s.freePtr--

	base := int(next) * s.dimensions
	copy(s.buf[base:base+s.dimensions], point)
	s.refCount[next] = 1

	s.totalAdds++
	if size := s.Size(); size > s.peakSize {
		s.peakSize = size
	}

	if s.logger != nil {
		s.logger.LogAdd(next, s.Size())
	}

	return next, nil
}

// IncRef increments the reference count for the given handle. The handle
// must reference a slot that is currently in use.
func (s *Store[T]) IncRef(handle Handle) error {
	if err := s.checkValidHandle(handle); err != nil {
		return err
	}

	s.refCount[handle]++

	return nil
}

// DecRef decrements the reference count for the given handle. When the
// count reaches 0 the slot goes back onto the free-list and its contents
// become undefined; the handle may be handed out again by a later Add.
func (s *Store[T]) DecRef(handle Handle) error {
	if err := s.checkValidHandle(handle); err != nil {
		return err
	}

	if s.refCount[handle] == 1 {
		if s.Size() <= 0 {
			panic("pointstore: releasing last reference while size is 0")
		}
		if s.freePtr <= -2 {
			panic(fmt.Sprintf("pointstore: free pointer %d out of range", s.freePtr))
		}

		s.refCount[handle] = 0
		s.freePtr++
		s.freeStack[s.freePtr] = handle

		s.totalReleases++

		if s.logger != nil {
			s.logger.LogRelease(handle, s.Size())
		}
	} else {
		s.refCount[handle]--
	}

	return nil
}

// Get returns a copy of the point stored at the given handle.
func (s *Store[T]) Get(handle Handle) ([]T, error) {
	if err := s.checkValidHandle(handle); err != nil {
		return nil, err
	}

	base := int(handle) * s.dimensions
	point := make([]T, s.dimensions)
	copy(point, s.buf[base:base+s.dimensions])

	return point, nil
}

// PointEquals reports whether the point stored at the given handle is
// elementwise identical to point. The comparison is exact, with no
// tolerance; NaN values compare unequal to everything including
// themselves. The handle is checked before the point's length.
func (s *Store[T]) PointEquals(handle Handle, point []T) (bool, error) {
	if err := s.checkValidHandle(handle); err != nil {
		return false, err
	}

	if len(point) != s.dimensions {
		return false, &ErrDimensionMismatch{Expected: s.dimensions, Actual: len(point)}
	}

	base := int(handle) * s.dimensions
	for j, v := range point {
		if v != s.buf[base+j] {
			return false, nil
		}
	}

	return true, nil
}

// Close returns the store's memory reservation to the acquirer, if one was
// configured. Close is idempotent and the store must not be used after it.
func (s *Store[T]) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true

	if s.acquirer != nil {
		s.acquirer.ReleaseMemory(s.reserved)
		s.acquirer = nil
	}

	return nil
}

// checkValidHandle verifies that handle references a slot that is currently
// in use.
func (s *Store[T]) checkValidHandle(handle Handle) error {
	if int64(handle) >= int64(s.capacity) {
		return fmt.Errorf("%w: %d out of range [0, %d)", ErrInvalidHandle, handle, s.capacity)
	}

	if s.refCount[handle] <= 0 {
		return fmt.Errorf("%w: %d is not in use", ErrInvalidHandle, handle)
	}

	return nil
}

// footprint returns the number of bytes a store of the given geometry
// allocates for its buffer, reference counts and free-list.
func footprint[T Float](dimensions, capacity int) int64 {
	var elem T
	const slotOverhead = int64(unsafe.Sizeof(int32(0))) + int64(unsafe.Sizeof(Handle(0)))

	return int64(capacity)*int64(dimensions)*int64(unsafe.Sizeof(elem)) + int64(capacity)*slotOverhead
}
