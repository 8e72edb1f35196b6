package seq

// EqualByKey creates an equality function which considers two items equal
// if their keys are equal.
func EqualByKey[T any, K comparable](key func(T) K) func(a, b T) bool {
	return func(a, b T) bool {
		return key(a) == key(b)
	}
}

// EqualByKeyFunc is like EqualByKey, but compares keys with keyEq.
// keyEq must not be nil.
func EqualByKeyFunc[T, K any](key func(T) K, keyEq func(a, b K) bool) func(a, b T) bool {
	return func(a, b T) bool {
		return keyEq(key(a), key(b))
	}
}

// NilSafe wraps an equality function on pointers such that eq is never
// called with a nil argument. Two nil pointers are equal, a nil pointer is
// never equal to a non-nil one.
func NilSafe[T any](eq func(a, b *T) bool) func(a, b *T) bool {
	return func(a, b *T) bool {
		if a == nil || b == nil {
			return a == nil && b == nil
		}
		return eq(a, b)
	}
}
