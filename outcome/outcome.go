package outcome

// Outcome holds either a success value or a failure message, never both.
// The zero value is a success carrying the zero value of T.
type Outcome[T any] struct {
	value   T
	message string
	failed  bool
}

// Success wraps a value in a success Outcome.
func Success[T any](value T) Outcome[T] {
	return Outcome[T]{value: value}
}

// Failure wraps a diagnostic message in a failure Outcome.
func Failure[T any](message string) Outcome[T] {
	return Outcome[T]{message: message, failed: true}
}

// Failed reports whether the Outcome is the failure variant.
func (o Outcome[T]) Failed() bool { return o.failed }

// Message returns the failure diagnostic, or an empty string on success.
func (o Outcome[T]) Message() string { return o.message }

// Value returns the success value, or the zero value of T on failure.
func (o Outcome[T]) Value() T { return o.value }

// Unpack returns the value and message together. Exactly one of the two is
// meaningful, selected by Failed.
func (o Outcome[T]) Unpack() (T, string) { return o.value, o.message }
