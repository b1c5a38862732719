/* stack.go
 * Contains a fixed capacity LIFO stack. The bracket engine sizes every stack to the token count of the
 * bracket it runs, so a full or empty stack always points to a bug in the caller
 */

package stack

import (
	"errors"
	"fmt"
)

var (
	// ErrEmpty is returned by Pop and Peek on an empty stack
	ErrEmpty = errors.New("stack: underflow")
	// ErrFull is returned by Push when the stack is at capacity
	ErrFull = errors.New("stack: capacity exceeded")
)

// Stack is a bounded last-in first-out container
type Stack[T any] struct {
	items    []T
	capacity int
}

// New creates an empty stack able to hold capacity items
func New[T any](capacity int) *Stack[T] {
	if capacity < 0 {
		capacity = 0
	}
	return &Stack[T]{
		items:    make([]T, 0, capacity),
		capacity: capacity,
	}
}

// Push places item on top of the stack, or returns ErrFull if there is no room left
func (s *Stack[T]) Push(item T) error {
	if len(s.items) >= s.capacity {
		return fmt.Errorf("push onto stack of capacity %d: %w", s.capacity, ErrFull)
	}
	s.items = append(s.items, item)
	return nil
}

// Pop removes and returns the top item, or returns ErrEmpty
func (s *Stack[T]) Pop() (T, error) {
	var zero T
	if len(s.items) == 0 {
		return zero, ErrEmpty
	}
	top := s.items[len(s.items)-1]
	s.items[len(s.items)-1] = zero
	s.items = s.items[:len(s.items)-1]
	return top, nil
}

// Peek returns the top item without removing it, or returns ErrEmpty
func (s *Stack[T]) Peek() (T, error) {
	if len(s.items) == 0 {
		var zero T
		return zero, ErrEmpty
	}
	return s.items[len(s.items)-1], nil
}

// IsEmpty reports whether the stack holds no items
func (s *Stack[T]) IsEmpty() bool {
	return len(s.items) == 0
}

// Len returns the number of items on the stack
func (s *Stack[T]) Len() int {
	return len(s.items)
}

// Cap returns the capacity the stack was created with
func (s *Stack[T]) Cap() int {
	return s.capacity
}
