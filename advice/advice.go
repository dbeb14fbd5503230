// Package advice provides ready-made advice for aspect.Wrapped chains.
package advice

import (
	"context"
	"io"

	"github.com/go-leo/aop/aspect"
	"github.com/go-leo/gox/slicex"
	jsoniter "github.com/json-iterator/go"
)

// Map returns a before-advice that replaces the arguments with f(args).
func Map[A any](f func(args A) A) aspect.BeforeAdvice[A] {
	return func(_ context.Context, args A, next *aspect.Recorder[A]) {
		next.Next(f(args))
	}
}

// Each returns a before-advice that replaces every argument e with f(e).
func Each[T any](f func(e T) T) aspect.BeforeAdvice[[]T] {
	return func(_ context.Context, args []T, next *aspect.Recorder[[]T]) {
		next.Next(slicex.Map[[]T, []T](args, func(_ int, e T) T { return f(e) }))
	}
}

// Guard returns a before-advice that lets the call through only if pred holds.
func Guard[A any](pred func(ctx context.Context, args A) bool) aspect.BeforeAdvice[A] {
	return func(ctx context.Context, args A, next *aspect.Recorder[A]) {
		if !pred(ctx, args) {
			return
		}
		next.Next(args)
	}
}

// Tap returns a before-advice that calls f and passes the arguments on unchanged.
func Tap[A any](f func(ctx context.Context, args A)) aspect.BeforeAdvice[A] {
	return func(ctx context.Context, args A, next *aspect.Recorder[A]) {
		f(ctx, args)
		next.Next(args)
	}
}

// Transform returns an after-advice that replaces the value with f(value).
func Transform[A any, R any](f func(value R) R) aspect.AfterAdvice[A, R] {
	return func(value R, _ A) R {
		return f(value)
	}
}

type traceLine[A any, R any] struct {
	Args  A `json:"args"`
	Value R `json:"value"`
}

// Trace returns an after-advice that writes the point args and the value it
// receives to w as one JSON line. The value is passed on unchanged. Encoding
// and write errors go to the OnError option and are dropped without it.
func Trace[A any, R any](w io.Writer, opts ...TraceOption) aspect.AfterAdvice[A, R] {
	o := newTraceOptions(opts...)
	enc := jsoniter.ConfigCompatibleWithStandardLibrary.NewEncoder(w)
	return func(value R, args A) R {
		if err := enc.Encode(traceLine[A, R]{Args: args, Value: value}); err != nil {
			o.OnError(err)
		}
		return value
	}
}
