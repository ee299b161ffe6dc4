// Package pointstore provides a fixed-capacity, reference-counted store for
// fixed-length numeric points.
//
// A Store owns one contiguous buffer partitioned into capacity slots of
// dimensions values each. Points are addressed by dense integer handles
// instead of pointers, and a slot returns to an O(1) LIFO free-list as soon
// as its last holder releases it, so the most recently freed slot is always
// the next one reused. The primary use is compression: consumers that see
// the same point, for example the trees of an ensemble sampling a single
// stream, share one stored copy instead of each holding their own.
//
// # Quick Start
//
//	store, err := pointstore.New[float32](3, 1024)
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer store.Close()
//
//	handle, err := store.Add([]float32{1, 2, 3})
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	_ = store.IncRef(handle) // a second consumer shares the point
//
//	point, _ := store.Get(handle)
//	_ = point
//
//	_ = store.DecRef(handle)
//	_ = store.DecRef(handle) // count hits 0, slot goes back to the pool
//
// # Semantics
//
//   - Add stores a copy and Get returns a copy; callers never alias the
//     store's internal memory.
//   - PointEquals compares stored values exactly, elementwise, with no
//     tolerance. Callers use it to detect duplicates before adding.
//   - Handles are only meaningful while their slot is in use. After the
//     reference count reaches 0 the same handle value may be handed out
//     again for a different point.
//
// # Memory Budgeting
//
// Stores allocate their whole footprint up front. To cap the total memory
// of many stores, share a resource.Controller between them:
//
//	ctrl := resource.NewController(resource.Config{
//		MemoryLimitBytes: 1 << 30, // 1 GiB
//	})
//
//	store, err := pointstore.New[float32](3, 1024,
//		pointstore.WithMemoryAcquirer(ctrl),
//	)
//
// # Concurrency
//
// A Store is not safe for concurrent use; callers that share one across
// goroutines must serialize access. Distinct stores are independent, and a
// resource.Controller may be shared by any number of goroutines.
package pointstore
