package table

import (
	"errors"
	"fmt"
)

var (
	ErrRedeclared = errors.New("already declared in this scope")
	ErrUndefined  = errors.New("not declared in any enclosing scope")
	ErrNoScope    = errors.New("no open scope")
)

// Stack is a stack of scope frames mapping names to values of type T.
// The last frame is the innermost one.
type Stack[T any] struct {
	frames []map[string]T
}

func NewStack[T any]() *Stack[T] {
	return &Stack[T]{}
}

// Push opens a new innermost frame. The returned release func closes that
// frame along with anything opened after it, and is safe to call twice.
func (s *Stack[T]) Push() (release func()) {
	depth := len(s.frames)
	s.frames = append(s.frames, make(map[string]T))
	return func() {
		if len(s.frames) > depth {
			s.frames = s.frames[:depth]
		}
	}
}

// Pop closes the innermost frame.
func (s *Stack[T]) Pop() {
	if len(s.frames) > 0 {
		s.frames = s.frames[:len(s.frames)-1]
	}
}

func (s *Stack[T]) Depth() int {
	return len(s.frames)
}

// Defined reports whether name is bound in the innermost frame.
func (s *Stack[T]) Defined(name string) bool {
	if len(s.frames) == 0 {
		return false
	}
	_, ok := s.frames[len(s.frames)-1][name]
	return ok
}

// Declare binds name in the innermost frame only. Bindings of the same name
// in outer frames do not conflict.
func (s *Stack[T]) Declare(name string, value T) error {
	if len(s.frames) == 0 {
		return fmt.Errorf("declare %s: %w", name, ErrNoScope)
	}
	top := s.frames[len(s.frames)-1]
	if _, exists := top[name]; exists {
		return fmt.Errorf("%s: %w", name, ErrRedeclared)
	}
	top[name] = value
	return nil
}

// Lookup searches frames from innermost to outermost.
func (s *Stack[T]) Lookup(name string) (T, error) {
	for i := len(s.frames) - 1; i >= 0; i-- {
		if value, ok := s.frames[i][name]; ok {
			return value, nil
		}
	}
	var zero T
	return zero, fmt.Errorf("%s: %w", name, ErrUndefined)
}
