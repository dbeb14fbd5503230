package aspect

import "errors"

var (
	// ErrTargetNil target function is nil
	ErrTargetNil = errors.New("aspect: target function is nil")

	// ErrNotFunc target is not a function
	ErrNotFunc = errors.New("aspect: target is not a function")

	// ErrIndexOutOfRange advice index is out of the chain's range
	ErrIndexOutOfRange = errors.New("aspect: advice index out of range")
)
