package aspect

// Recorder is handed to every BeforeAdvice. Calling Next or Proceed tells the
// Wrapped to go on with the chain; leaving it untouched halts the call.
type Recorder[T any] struct {
	called  bool
	present bool
	value   T
}

// NewRecorder returns a Recorder that has not been called.
func NewRecorder[T any]() *Recorder[T] {
	return &Recorder[T]{}
}

// Next marks the recorder as called and records v.
func (r *Recorder[T]) Next(v T) {
	r.called = true
	r.present = true
	r.value = v
}

// Proceed marks the recorder as called without recording a value.
func (r *Recorder[T]) Proceed() {
	var zero T
	r.called = true
	r.present = false
	r.value = zero
}

// Called reports whether Next or Proceed has been called since the last Reset.
func (r *Recorder[T]) Called() bool {
	return r.called
}

// ReturnValue returns the recorded value. ok is false when nothing was recorded.
func (r *Recorder[T]) ReturnValue() (value T, ok bool) {
	return r.value, r.present
}

// Reset restores the initial state.
func (r *Recorder[T]) Reset() {
	var zero T
	r.called = false
	r.present = false
	r.value = zero
}
