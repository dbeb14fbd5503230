package aspect

type options[A any, R any] struct {
	Before []BeforeAdvice[A]
	After  []AfterAdvice[A, R]
}

func newOptions[A any, R any](opts ...Option[A, R]) *options[A, R] {
	o := &options[A, R]{}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

type Option[A any, R any] func(*options[A, R])

// Before appends before-advice to the chain of the Wrapped being built.
func Before[A any, R any](advices ...BeforeAdvice[A]) Option[A, R] {
	return func(o *options[A, R]) {
		o.Before = append(o.Before, advices...)
	}
}

// After appends after-advice to the chain of the Wrapped being built.
func After[A any, R any](advices ...AfterAdvice[A, R]) Option[A, R] {
	return func(o *options[A, R]) {
		o.After = append(o.After, advices...)
	}
}
