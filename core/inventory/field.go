package inventory

// Field is an optional option value that records whether its key was present.
// A present field with a nil Value was explicitly set to null.
type Field[T any] struct {
	Present bool
	Value   *T
}

// Set returns a present field holding v.
func Set[T any](v T) Field[T] {
	return Field[T]{Present: true, Value: &v}
}

// Null returns a present field without a value.
func Null[T any]() Field[T] {
	return Field[T]{Present: true}
}

// Over returns f when its key was present and base otherwise.
func (f Field[T]) Over(base Field[T]) Field[T] {
	if f.Present {
		return f
	}
	return base
}

// Get returns the value and whether one is set.
func (f Field[T]) Get() (T, bool) {
	if f.Value == nil {
		var zero T
		return zero, false
	}
	return *f.Value, true
}

// Ptr returns a copy of the value, or nil when unset.
func (f Field[T]) Ptr() *T {
	if f.Value == nil {
		return nil
	}
	v := *f.Value
	return &v
}
