package draw

// Error is a custom error type for draw-related failures
type Error string

// Error implements the error interface
func (e Error) Error() string {
	return string(e)
}

// Define errors
const (
	// ErrEmptyParticipantSet is returned when a draw is attempted with no entries
	ErrEmptyParticipantSet Error = "participant set is empty"

	// ErrInvalidModulus indicates a non-positive participant count reached the
	// hasher; this is an invariant violation, not a user error
	ErrInvalidModulus Error = "modulus must be positive"

	// ErrInvalidDigest is returned when a digest is too short to reduce
	ErrInvalidDigest Error = "digest must contain at least 8 hex characters"

	// ErrInvalidFieldValue is returned when an id or field contains one of the
	// reserved seed delimiters
	ErrInvalidFieldValue Error = "field contains a reserved delimiter character"
)
