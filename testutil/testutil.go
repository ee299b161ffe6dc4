package testutil

import (
	"math/rand"
	"sync"
)

// Float mirrors the element constraint of the store so that generators can
// produce data for both float32 and float64 stores.
type Float interface {
	~float32 | ~float64
}

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Float64 returns, as a float64, a pseudo-random number in [0.0,1.0).
func (r *RNG) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float64()
}

// NormFloat64 returns a pseudo-random number drawn from the standard
// normal distribution.
func (r *RNG) NormFloat64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.NormFloat64()
}

// UniformPoint generates a random point with values in range [0, 1).
func UniformPoint[T Float](r *RNG, dimensions int) []T {
	r.mu.Lock()
	defer r.mu.Unlock()

	point := make([]T, dimensions)
	for j := range point {
		point[j] = T(r.rand.Float64())
	}

	return point
}

// UniformPoints generates random points with values in range [0, 1).
// Uses a single backing array for efficiency.
func UniformPoints[T Float](r *RNG, num int, dimensions int) [][]T {
	r.mu.Lock()
	defer r.mu.Unlock()

	data := make([]T, num*dimensions)
	points := make([][]T, num)

	for i := range num {
		point := data[i*dimensions : (i+1)*dimensions]
		for j := range point {
			point[j] = T(r.rand.Float64())
		}
		points[i] = point
	}

	return points
}

// GaussianPoints generates random points with values from a standard normal
// distribution.
func GaussianPoints[T Float](r *RNG, num int, dimensions int) [][]T {
	r.mu.Lock()
	defer r.mu.Unlock()

	data := make([]T, num*dimensions)
	points := make([][]T, num)

	for i := range num {
		point := data[i*dimensions : (i+1)*dimensions]
		for j := range point {
			point[j] = T(r.rand.NormFloat64())
		}
		points[i] = point
	}

	return points
}
