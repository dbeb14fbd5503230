package aspect

import (
	"context"
	"fmt"
	"reflect"
)

var contextType = reflect.TypeOf((*context.Context)(nil)).Elem()

// WrapAny wraps a function whose signature is only known at run time, e.g. one
// looked up from a registry. Arguments and results travel as []any. When the
// first parameter of target is a context.Context it receives the call's ctx and
// is not counted among the arguments.
//
// WrapAny returns ErrNotFunc if target is not a non-nil function.
func WrapAny(target any, opts ...Option[[]any, []any]) (*Wrapped[[]any, []any], error) {
	fn := reflect.ValueOf(target)
	if fn.Kind() != reflect.Func || fn.IsNil() {
		return nil, ErrNotFunc
	}
	return Wrap(reflectTarget(fn), opts...)
}

func reflectTarget(fn reflect.Value) func(ctx context.Context, args []any) []any {
	fnType := fn.Type()
	withCtx := fnType.NumIn() > 0 && fnType.In(0) == contextType
	return func(ctx context.Context, args []any) []any {
		in := make([]reflect.Value, 0, len(args)+1)
		offset := 0
		if withCtx {
			in = append(in, contextValue(ctx))
			offset = 1
		}
		for i, arg := range args {
			in = append(in, argValue(fnType, i+offset, arg))
		}
		out := fn.Call(in)
		results := make([]any, 0, len(out))
		for _, v := range out {
			results = append(results, v.Interface())
		}
		return results
	}
}

func contextValue(ctx context.Context) reflect.Value {
	if ctx == nil {
		return reflect.Zero(contextType)
	}
	return reflect.ValueOf(ctx)
}

func argValue(fnType reflect.Type, i int, arg any) reflect.Value {
	var paramType reflect.Type
	switch {
	case fnType.IsVariadic() && i >= fnType.NumIn()-1:
		paramType = fnType.In(fnType.NumIn() - 1).Elem()
	case i < fnType.NumIn():
		paramType = fnType.In(i)
	default:
		panic(fmt.Sprintf("aspect: too many arguments in call to %s", fnType))
	}
	if arg == nil {
		return reflect.Zero(paramType)
	}
	return reflect.ValueOf(arg)
}
