package utils

// Stack is an unbounded last-in, first-out container.
type Stack[T any] struct {
	items []T
}

func NewStack[T any]() *Stack[T] {
	return &Stack[T]{}
}

// Push adds item to the top of the stack.
func (s *Stack[T]) Push(item T) {
	s.items = append(s.items, item)
}

// Pop removes and returns the top item. Popping an empty stack panics.
func (s *Stack[T]) Pop() T {
	if len(s.items) == 0 {
		panic("pop from an empty stack")
	}

	last := len(s.items) - 1
	item := s.items[last]
	var zero T
	s.items[last] = zero // Release the reference for the garbage collector
	s.items = s.items[:last]
	return item
}

func (s *Stack[T]) IsEmpty() bool {
	return len(s.items) == 0
}
