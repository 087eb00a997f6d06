package linear

// Stack is a LIFO container backed by a slice which doubles its length when full. The zero value is an empty stack
// ready to use.
type Stack[T any] struct {
	values []T
	count  int
}

func NewStack[T any](preallocate int) *Stack[T] {
	if preallocate < 0 {
		preallocate = 0
	}
	return &Stack[T]{
		values: make([]T, preallocate),
	}
}

// Push places value on top of the stack.
func (receiver *Stack[T]) Push(value T) {
	if receiver.count == len(receiver.values) {
		receiver.values = grow(receiver.values, 0, receiver.count, max(1, 2*len(receiver.values)))
	}
	receiver.values[receiver.count] = value
	receiver.count++
}

// Pop removes and returns the top of the stack. ErrEmpty is returned for an empty stack.
func (receiver *Stack[T]) Pop() (T, error) {
	if receiver.Empty() {
		var emptyValue T
		return emptyValue, ErrEmpty
	}
	receiver.count--
	return takeAt(receiver.values, receiver.count), nil
}

// Top returns the top of the stack without removing it.
func (receiver *Stack[T]) Top() (T, error) {
	if receiver.Empty() {
		var emptyValue T
		return emptyValue, ErrEmpty
	}
	return receiver.values[receiver.count-1], nil
}

func (receiver *Stack[T]) Len() int {
	return receiver.count
}

func (receiver *Stack[T]) Cap() int {
	return len(receiver.values)
}

func (receiver *Stack[T]) Empty() bool {
	return receiver.count == 0
}
