package multiqueue

import "errors"

// ErrBadWorkerCount is returned when numWorkers is non-positive.
var ErrBadWorkerCount = errors.New("multiqueue: numWorkers must be positive")

// ErrBadSizeMultiple is returned when sizeMultiple is non-positive.
var ErrBadSizeMultiple = errors.New("multiqueue: sizeMultiple must be positive")

// Option configures a MultiQueue at construction time, in the functional-
// options style used throughout this module's packages.
type Option func(*config)

type config struct {
	sizeMultiple        int
	oneQueueReserveSize int
	tryLockAttempts     int
}

func defaultConfig() config {
	return config{
		sizeMultiple:        2,
		oneQueueReserveSize: 0,
		tryLockAttempts:     0,
	}
}

// WithSizeMultiple sets how many heaps are created per worker (N =
// numWorkers * sizeMultiple). Default 2.
func WithSizeMultiple(n int) Option {
	return func(c *config) { c.sizeMultiple = n }
}

// WithOneQueueReserveSize sets the initial per-heap slice capacity.
func WithOneQueueReserveSize(n int) Option {
	return func(c *config) { c.oneQueueReserveSize = n }
}

// WithTryLock makes Push attempt up to attempts random heaps with
// sync.Mutex.TryLock before falling back to blocking on one, trading a
// little extra randomness for lower tail latency under contention. attempts
// <= 0 disables the behavior (the default).
func WithTryLock(attempts int) Option {
	return func(c *config) { c.tryLockAttempts = attempts }
}
