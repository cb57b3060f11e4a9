// Package errors provides standardized error handling for chatstreams.
//
// # Overview
//
// Every failure surfaced by this library falls into one of three classes:
//
//   - Transient: temporary conditions (lost connections, timeouts) that the
//     caller may retry, typically via the pkg/retry package.
//   - Invalid: malformed input (unknown discriminator tags, bad escape
//     sequences, objects whose fields do not match the resolved alternative).
//     Retrying cannot help; the input itself is wrong.
//   - Fatal: unrecoverable conditions such as broken configuration.
//
// # Typed decode failures
//
// The message and event codecs report three typed errors, each carrying the
// context a caller needs to isolate the bad object:
//
//   - UnknownVariantError: the JSON discriminator names no registered
//     alternative. Matches the ErrUnknownVariant sentinel.
//   - MalformedEscapeError: a reserved lead byte in an escaped string has no
//     valid continuation. Matches ErrMalformedEscape.
//   - ShapeMismatchError: a required field is absent or mistyped for the
//     resolved alternative. Matches ErrShapeMismatch.
//
// All three classify as invalid. Decode failures are per-object: an event
// batch with one bad entry still yields every well-formed entry.
//
// # Wrapping
//
// Use the Wrap helpers to add component/operation context while preserving
// the classification:
//
//	if err := json.Unmarshal(data, &wire); err != nil {
//	    return errors.WrapInvalid(err, "event", "Parse", "unmarshal envelope")
//	}
//
// Wrapped errors follow the pattern "component.method: action failed: cause"
// and unwrap cleanly for errors.Is / errors.As checks.
package errors
