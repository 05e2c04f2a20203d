package models

// Outcome carries either a value or a human readable error message, never both.
type Outcome[T any] struct {
	value   T
	message string
	ok      bool
}

func Success[T any](value T) Outcome[T] {
	return Outcome[T]{value: value, ok: true}
}

func Failure[T any](message string) Outcome[T] {
	return Outcome[T]{message: message}
}

func (o Outcome[T]) Ok() bool {
	return o.ok
}

// Value returns the success value, or the zero value for a failure.
func (o Outcome[T]) Value() T {
	return o.value
}

// Message returns the failure message, or "" for a success.
func (o Outcome[T]) Message() string {
	return o.message
}
