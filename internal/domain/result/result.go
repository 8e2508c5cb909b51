// Package result provides an explicit success/failure container for use-case outcomes.
package result

import "errors"

// ErrEmptyResult is reported by a zero-value Result that was never constructed.
var ErrEmptyResult = errors.New("result holds neither a value nor an error")

// Result holds exactly one of a success payload or a failure error.
type Result[T any] struct {
	value T
	err   error
	ok    bool
}

// Success wraps a value.
func Success[T any](value T) Result[T] {
	return Result[T]{value: value, ok: true}
}

// Failure wraps an error. A nil error is replaced by ErrEmptyResult.
func Failure[T any](err error) Result[T] {
	if err == nil {
		err = ErrEmptyResult
	}
	return Result[T]{err: err}
}

// From converts a Go (value, error) pair into a Result.
func From[T any](value T, err error) Result[T] {
	if err != nil {
		return Failure[T](err)
	}
	return Success(value)
}

// IsSuccess reports whether the result holds a value.
func (r Result[T]) IsSuccess() bool {
	return r.ok
}

// IsFailure reports whether the result holds an error.
func (r Result[T]) IsFailure() bool {
	return !r.ok
}

// Value unwraps the result, yielding the payload or the failure.
func (r Result[T]) Value() (T, error) {
	if !r.ok {
		var zero T
		return zero, r.Err()
	}
	return r.value, nil
}

// MustValue returns the payload or panics with the failure.
func (r Result[T]) MustValue() T {
	v, err := r.Value()
	if err != nil {
		panic(err)
	}
	return v
}

// Err returns the failure, or nil on success.
func (r Result[T]) Err() error {
	if r.ok {
		return nil
	}
	if r.err == nil {
		return ErrEmptyResult
	}
	return r.err
}

// Map applies f to a successful payload, passing failures through unchanged.
func Map[T, U any](r Result[T], f func(T) U) Result[U] {
	if !r.ok {
		return Failure[U](r.Err())
	}
	return Success(f(r.value))
}
