package errors

import "fmt"

// UnknownVariantError reports a JSON discriminator tag that does not match any
// registered alternative of the target wrapper (segment or event). Decoding of
// the offending object fails atomically; no partial alternative is produced.
type UnknownVariantError struct {
	Wrapper string // "segment" or "event"
	Tag     string // the offending discriminator value
}

// Error implements the error interface
func (e *UnknownVariantError) Error() string {
	return fmt.Sprintf("unknown %s variant %q", e.Wrapper, e.Tag)
}

// Unwrap ties the error into the ErrUnknownVariant sentinel for errors.Is checks
func (e *UnknownVariantError) Unwrap() error {
	return ErrUnknownVariant
}

// MalformedEscapeError reports a reserved lead byte in an escaped string that
// is not followed by a valid continuation, or that sits at end of input.
type MalformedEscapeError struct {
	Input string // the escaped input being decoded
	Pos   int    // byte offset of the offending lead byte
}

// Error implements the error interface
func (e *MalformedEscapeError) Error() string {
	return fmt.Sprintf("malformed escape sequence at byte %d", e.Pos)
}

// Unwrap ties the error into the ErrMalformedEscape sentinel for errors.Is checks
func (e *MalformedEscapeError) Unwrap() error {
	return ErrMalformedEscape
}

// ShapeMismatchError reports that a required field for a resolved alternative
// is absent or has the wrong JSON type. The failure is scoped to the object
// being decoded, not to the whole document.
type ShapeMismatchError struct {
	Tag    string // the discriminator of the resolved alternative
	Field  string // the offending field, when known
	Reason string
}

// Error implements the error interface
func (e *ShapeMismatchError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("variant %q: field %q: %s", e.Tag, e.Field, e.Reason)
	}
	return fmt.Sprintf("variant %q: %s", e.Tag, e.Reason)
}

// Unwrap ties the error into the ErrShapeMismatch sentinel for errors.Is checks
func (e *ShapeMismatchError) Unwrap() error {
	return ErrShapeMismatch
}
