package option

// Option is a value slot that is either empty or holds one value. The zero
// Option is empty.
type Option[T any] struct {
	value T
	// ok distinguishes a stored zero value (like 0 or "") from no value at all
	ok bool
}

func Some[T any](v T) Option[T] {
	return Option[T]{value: v, ok: true}
}

func None[T any]() Option[T] {
	var o Option[T]
	return o
}

// Get returns the stored value. The boolean is false if the slot is empty, in
// which case the value is the zero value of T.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.ok
}

func (o Option[T]) IsNone() bool {
	return !o.ok
}
