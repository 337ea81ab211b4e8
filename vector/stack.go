package vector

// Container is the underlying sequence of a Stack.
type Container[T any] interface {
	PushBack(v T)
	PopBack()
	Back() T
	Len() int
}

var _ Container[int] = (*Vector[int])(nil)

// Stack is a LIFO adapter over a Container.
type Stack[T any] struct {
	c Container[T]
}

// NewStack creates an empty stack backed by a Vector.
func NewStack[T any]() *Stack[T] {
	return &Stack[T]{c: &Vector[T]{}}
}

// NewStackOn creates a stack on top of c. Existing elements of c stay on the
// stack, the last one being the top.
func NewStackOn[T any](c Container[T]) *Stack[T] {
	if c == nil {
		c = &Vector[T]{}
	}
	return &Stack[T]{c: c}
}

// Push puts v on top of the stack.
func (s *Stack[T]) Push(v T) {
	s.c.PushBack(v)
}

// Pop removes and returns the top element. The boolean result is false if the
// stack is empty.
func (s *Stack[T]) Pop() (T, bool) {
	if s.c.Len() == 0 {
		var zero T
		return zero, false
	}
	v := s.c.Back()
	s.c.PopBack()
	return v, true
}

// Top returns the top element without removing it.
func (s *Stack[T]) Top() (T, bool) {
	if s.c.Len() == 0 {
		var zero T
		return zero, false
	}
	return s.c.Back(), true
}

// Len returns the number of elements on the stack.
func (s *Stack[T]) Len() int { return s.c.Len() }

// IsEmpty reports whether the stack has no elements.
func (s *Stack[T]) IsEmpty() bool { return s.c.Len() == 0 }
