package pointstore

// settings holds construction-time configuration applied via options.
type settings struct {
	logger   *Logger
	acquirer MemoryAcquirer
}

// Option configures a Store at construction time.
type Option func(*settings)

// WithLogger sets the logger for store lifecycle and slot-recycling events.
// Without this option the store does not log.
func WithLogger(logger *Logger) Option {
	return func(s *settings) {
		s.logger = logger
	}
}

// WithMemoryAcquirer sets the acquirer used to reserve the store's buffer
// memory during New and to release it again on Close. Use this to enforce
// a shared memory budget across multiple stores, e.g. via resource.Controller.
func WithMemoryAcquirer(acquirer MemoryAcquirer) Option {
	return func(s *settings) {
		s.acquirer = acquirer
	}
}
