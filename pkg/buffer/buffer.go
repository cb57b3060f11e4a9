// Package buffer provides a thread-safe ring buffer used to decouple the
// gateway read loop from event consumers. When the buffer fills, the oldest
// items are dropped first so a slow consumer sees recent events rather than
// stale ones.
package buffer

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// DropCallback is invoked with each item discarded on overflow. It runs
// outside the buffer lock.
type DropCallback[T any] func(item T)

// Ring is a fixed-capacity FIFO buffer with drop-oldest overflow.
type Ring[T any] struct {
	mu       sync.Mutex
	items    []T
	head     int // next write position
	tail     int // next read position
	size     int
	onDrop   DropCallback[T]
	written  uint64
	read     uint64
	dropped  uint64
	drops    prometheus.Counter
	occupied prometheus.Gauge
}

// Option configures a Ring.
type Option[T any] func(*Ring[T])

// WithDropCallback registers a callback for dropped items.
func WithDropCallback[T any](cb DropCallback[T]) Option[T] {
	return func(r *Ring[T]) { r.onDrop = cb }
}

// WithMetrics exposes drop and occupancy gauges through the given registry.
// Registration conflicts panic, same as prometheus.MustRegister; callers
// own registry uniqueness.
func WithMetrics[T any](reg prometheus.Registerer, prefix string) Option[T] {
	return func(r *Ring[T]) {
		r.drops = prometheus.NewCounter(prometheus.CounterOpts{
			Name: prefix + "_buffer_dropped_total",
			Help: "Items dropped due to buffer overflow.",
		})
		r.occupied = prometheus.NewGauge(prometheus.GaugeOpts{
			Name: prefix + "_buffer_occupancy",
			Help: "Current number of buffered items.",
		})
		reg.MustRegister(r.drops, r.occupied)
	}
}

// NewRing creates a ring buffer. A capacity below one is raised to one.
func NewRing[T any](capacity int, opts ...Option[T]) *Ring[T] {
	if capacity < 1 {
		capacity = 1
	}
	r := &Ring[T]{items: make([]T, capacity)}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Write appends an item, discarding the oldest one when full.
func (r *Ring[T]) Write(item T) {
	var dropped T
	var didDrop bool

	r.mu.Lock()
	if r.size == len(r.items) {
		dropped = r.items[r.tail]
		didDrop = true
		r.tail = (r.tail + 1) % len(r.items)
		r.size--
		r.dropped++
		if r.drops != nil {
			r.drops.Inc()
		}
	}
	r.items[r.head] = item
	r.head = (r.head + 1) % len(r.items)
	r.size++
	r.written++
	if r.occupied != nil {
		r.occupied.Set(float64(r.size))
	}
	r.mu.Unlock()

	if didDrop && r.onDrop != nil {
		r.onDrop(dropped)
	}
}

// Read removes and returns the oldest item. The second return is false when
// the buffer is empty.
func (r *Ring[T]) Read() (T, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var zero T
	if r.size == 0 {
		return zero, false
	}
	item := r.items[r.tail]
	r.items[r.tail] = zero
	r.tail = (r.tail + 1) % len(r.items)
	r.size--
	r.read++
	if r.occupied != nil {
		r.occupied.Set(float64(r.size))
	}
	return item, true
}

// ReadBatch removes and returns up to max items, oldest first.
func (r *Ring[T]) ReadBatch(max int) []T {
	r.mu.Lock()
	defer r.mu.Unlock()

	if max > r.size {
		max = r.size
	}
	if max <= 0 {
		return nil
	}
	out := make([]T, 0, max)
	var zero T
	for i := 0; i < max; i++ {
		out = append(out, r.items[r.tail])
		r.items[r.tail] = zero
		r.tail = (r.tail + 1) % len(r.items)
		r.size--
		r.read++
	}
	if r.occupied != nil {
		r.occupied.Set(float64(r.size))
	}
	return out
}

// Size returns the current item count.
func (r *Ring[T]) Size() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.size
}

// Capacity returns the fixed capacity.
func (r *Ring[T]) Capacity() int {
	return len(r.items)
}

// Stats returns cumulative written, read, and dropped counts.
func (r *Ring[T]) Stats() (written, read, dropped uint64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.written, r.read, r.dropped
}

// Clear discards all buffered items.
func (r *Ring[T]) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()

	var zero T
	for i := range r.items {
		r.items[i] = zero
	}
	r.head, r.tail, r.size = 0, 0, 0
	if r.occupied != nil {
		r.occupied.Set(0)
	}
}
