/*
Copyright © 2025 shutteritch
*/
package types

import "fmt"

// FormatError reports a malformed stored record: wrong field count, a bad
// date, or a bad completion flag. It is fatal to the read that produced
// it; callers must surface it rather than skip the record, since skipping
// would corrupt aggregate counts.
type FormatError struct {
	Line   string
	Reason string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("malformed record %q: %s", e.Line, e.Reason)
}

// ValidationError reports input that cannot be stored: a field containing
// the delimiter sequence, or a reference to an unknown username. It is
// recoverable; the caller rejects the input and re-prompts.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// ConflictError reports a compare-and-update that found no line matching
// the caller's token: the record was changed or removed by another user
// since the caller's snapshot was taken. Storage is left untouched; the
// caller must reload and retry, never force the overwrite.
type ConflictError struct {
	Line string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("record changed by another user since it was read: %q", e.Line)
}
