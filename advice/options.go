package advice

type traceOptions struct {
	OnError func(err error)
}

func newTraceOptions(opts ...TraceOption) *traceOptions {
	o := &traceOptions{}
	for _, opt := range opts {
		opt(o)
	}
	if o.OnError == nil {
		o.OnError = func(error) {}
	}
	return o
}

type TraceOption func(*traceOptions)

// OnError sets the function called with every error Trace gets from encoding
// or writing a line.
func OnError(f func(err error)) TraceOption {
	return func(o *traceOptions) {
		o.OnError = f
	}
}
