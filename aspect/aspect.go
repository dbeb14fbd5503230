// Package aspect wraps a function with ordered chains of before and after advice.
//
// A call of a Wrapped runs the before chain, then the target, then the after
// chain:
//
//	before[0] -> before[1] -> ... -> target -> after[0] -> after[1] -> ...
//
// Each BeforeAdvice receives the current arguments and a Recorder. Calling
// Recorder.Next hands the (possibly replaced) arguments to the next advice;
// not calling the Recorder at all halts the call, and the target never runs.
// Each AfterAdvice receives the current value and the arguments the target was
// called with, and returns the next value.
//
// The chains are read on every call, so advice added or removed between two
// calls takes effect on the second one. A Wrapped does no locking: changing a
// chain while another goroutine calls the Wrapped is the caller's problem.
package aspect

import (
	"context"
)

// Target is anything that can be called with a context and an argument list.
type Target[A any, R any] interface {
	Call(ctx context.Context, args A) R
}

// The TargetFunc type is an adapter to allow the use of ordinary functions as Target.
// If f is a function with the appropriate signature, TargetFunc(f) is a Target that calls f.
type TargetFunc[A any, R any] func(ctx context.Context, args A) R

// Call calls f(ctx, args).
func (f TargetFunc[A, R]) Call(ctx context.Context, args A) R {
	return f(ctx, args)
}

// BeforeAdvice runs before the target. It must call next.Next (or next.Proceed)
// for the call to go on.
type BeforeAdvice[A any] func(ctx context.Context, args A, next *Recorder[A])

// AfterAdvice runs after the target. value is the result of the previous step,
// args the arguments the target was called with.
type AfterAdvice[A any, R any] func(value R, args A) R

var _ Target[any, any] = (*Wrapped[any, any])(nil)

// Wrapped is a target function together with its advice chains.
// A zero Wrapped has no target; calling it returns the zero R.
type Wrapped[A any, R any] struct {
	target TargetFunc[A, R]
	before Chain[BeforeAdvice[A]]
	after  Chain[AfterAdvice[A, R]]
}

// Wrap returns a Wrapped around target.
func Wrap[A any, R any](target func(ctx context.Context, args A) R, opts ...Option[A, R]) (*Wrapped[A, R], error) {
	if target == nil {
		return nil, ErrTargetNil
	}
	o := newOptions(opts...)
	w := &Wrapped[A, R]{target: target}
	w.before.Append(o.Before...)
	w.after.Append(o.After...)
	return w, nil
}

// Before returns the before chain.
func (w *Wrapped[A, R]) Before() *Chain[BeforeAdvice[A]] {
	return &w.before
}

// After returns the after chain.
func (w *Wrapped[A, R]) After() *Chain[AfterAdvice[A, R]] {
	return &w.after
}

// Call runs the chains and the target. It returns the zero R when a
// BeforeAdvice halted the call.
func (w *Wrapped[A, R]) Call(ctx context.Context, args A) R {
	value, _ := w.Invoke(ctx, args)
	return value
}

// Invoke is like Call, ok reports whether the target was called.
func (w *Wrapped[A, R]) Invoke(ctx context.Context, args A) (value R, ok bool) {
	pointArgs, ok := w.runBefore(ctx, args)
	if !ok || w.target == nil {
		return value, false
	}
	value = w.target(ctx, pointArgs)
	return w.runAfter(value, pointArgs), true
}

// Func returns Call as a plain function value.
func (w *Wrapped[A, R]) Func() func(ctx context.Context, args A) R {
	return w.Call
}

// Sealed returns a Target that calls w but does not give access to its chains.
// It still sees any change made to the chains through w.
func (w *Wrapped[A, R]) Sealed() Target[A, R] {
	return sealed[A, R]{w: w}
}

func (w *Wrapped[A, R]) runBefore(ctx context.Context, args A) (A, bool) {
	for _, advice := range w.before.advices {
		next := NewRecorder[A]()
		advice(ctx, args, next)
		if !next.Called() {
			return args, false
		}
		args, _ = next.ReturnValue()
	}
	return args, true
}

func (w *Wrapped[A, R]) runAfter(value R, pointArgs A) R {
	for _, advice := range w.after.advices {
		value = advice(value, pointArgs)
	}
	return value
}

type sealed[A any, R any] struct {
	w *Wrapped[A, R]
}

func (s sealed[A, R]) Call(ctx context.Context, args A) R {
	return s.w.Call(ctx, args)
}
