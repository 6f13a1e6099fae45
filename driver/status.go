package driver

// StatusClass is the capability's classification of a failed query.
type StatusClass int

const (
	// StatusMalformed indicates a response the capability could not
	// understand (protocol damage, undecodable payload).
	StatusMalformed StatusClass = iota

	// StatusNonFatal indicates a server-side error that leaves the session
	// usable, such as a rejected statement.
	StatusNonFatal

	// StatusFatal indicates a server-side error that ends the session.
	StatusFatal
)

// String returns the class name for diagnostics.
func (c StatusClass) String() string {
	switch c {
	case StatusMalformed:
		return "malformed"
	case StatusNonFatal:
		return "non-fatal"
	case StatusFatal:
		return "fatal"
	default:
		return "unknown"
	}
}

// StatusError is a classified query failure. Error returns the message
// alone so callers that flatten failures to text still surface exactly the
// capability's diagnostic; the class stays available structurally.
type StatusError struct {
	// Class is the capability's three-way failure classification.
	Class StatusClass

	// Message is the capability's diagnostic text, verbatim.
	Message string
}

// Error returns the capability's diagnostic text.
func (e *StatusError) Error() string { return e.Message }
