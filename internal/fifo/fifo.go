// Package fifo provides a fixed-capacity circular queue.
package fifo

// Queue is a fixed-capacity FIFO backed by a ring buffer.
// It is not safe for concurrent use.
type Queue[T any] struct {
	buf []T
	r   int // read position
	len int // current fill level
}

// New creates a queue holding at most size items.
func New[T any](size int) *Queue[T] {
	return &Queue[T]{buf: make([]T, size)}
}

// Len returns the number of queued items.
func (q *Queue[T]) Len() int { return q.len }

// Cap returns the capacity of the queue.
func (q *Queue[T]) Cap() int { return len(q.buf) }

// Push appends v. It returns false if the queue is full.
func (q *Queue[T]) Push(v T) bool {
	if q.len == len(q.buf) {
		return false
	}
	q.buf[(q.r+q.len)%len(q.buf)] = v
	q.len++
	return true
}

// Pop removes and returns the oldest item.
func (q *Queue[T]) Pop() (T, bool) {
	var zero T
	if q.len == 0 {
		return zero, false
	}
	v := q.buf[q.r]
	q.buf[q.r] = zero
	q.r = (q.r + 1) % len(q.buf)
	q.len--
	return v, true
}

// Peek returns the oldest item without removing it.
func (q *Queue[T]) Peek() (T, bool) {
	if q.len == 0 {
		var zero T
		return zero, false
	}
	return q.buf[q.r], true
}

// Newest returns a pointer to the most recently pushed item, or nil if
// the queue is empty. The pointer is valid until the item is popped.
func (q *Queue[T]) Newest() *T {
	if q.len == 0 {
		return nil
	}
	return &q.buf[(q.r+q.len-1)%len(q.buf)]
}

// Clear removes all items.
func (q *Queue[T]) Clear() {
	clear(q.buf)
	q.r = 0
	q.len = 0
}
