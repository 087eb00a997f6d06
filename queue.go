package linear

import "fmt"

// DefaultCapacity is the capacity of queues created by NewQueue.
const DefaultCapacity = 10

// Queue is a FIFO container stored in a circular buffer. Element at logical position k lives at index
// (front+k) mod Cap(). Capacity doubles whenever an element does not fit and never shrinks. The zero value is an
// empty queue ready to use.
type Queue[T any] struct {
	values []T
	front  int
	size   int
}

func NewQueue[T any]() *Queue[T] {
	return NewQueueWithCapacity[T](DefaultCapacity)
}

// NewQueueWithCapacity creates an empty queue with the given initial capacity. Non-positive capacity is replaced by
// DefaultCapacity.
func NewQueueWithCapacity[T any](capacity int) *Queue[T] {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Queue[T]{
		values: make([]T, capacity),
	}
}

// Enqueue adds value to the back of the queue.
func (q *Queue[T]) Enqueue(value T) {
	if q.size == len(q.values) {
		q.resize(max(1, 2*len(q.values)))
	}
	available := (q.front + q.size) % len(q.values)
	q.values[available] = value
	q.size++
}

// Dequeue removes and returns the front of the queue. ErrEmpty is returned for an empty queue.
func (q *Queue[T]) Dequeue() (T, error) {
	if q.Empty() {
		var emptyValue T
		return emptyValue, ErrEmpty
	}
	value := takeAt(q.values, q.front)
	q.front = (q.front + 1) % len(q.values)
	q.size--
	return value, nil
}

// First returns the front of the queue without removing it.
func (q *Queue[T]) First() (T, error) {
	if q.Empty() {
		var emptyValue T
		return emptyValue, ErrEmpty
	}
	return q.values[q.front], nil
}

// Resize moves the elements into a buffer of given capacity, the front element ending up at index 0. Capacity
// never shrinks, so capacity lower than Cap() is rejected.
func (q *Queue[T]) Resize(capacity int) error {
	if capacity < 1 || capacity < q.size {
		return fmt.Errorf("could not resize queue holding %d elements to capacity %d: %w", q.size, capacity,
			ErrCapacity)
	}
	if capacity < len(q.values) {
		return fmt.Errorf("could not shrink queue from capacity %d to %d: %w", len(q.values), capacity,
			ErrCapacity)
	}
	q.resize(capacity)
	return nil
}

// resize expects capacity >= q.size
func (q *Queue[T]) resize(capacity int) {
	q.values = grow(q.values, q.front, q.size, capacity)
	q.front = 0
}

func (q *Queue[T]) Len() int {
	return q.size
}

func (q *Queue[T]) Cap() int {
	return len(q.values)
}

func (q *Queue[T]) Empty() bool {
	return q.size == 0
}
