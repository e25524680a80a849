package placeholder

import (
	"fmt"
	"strings"
)

// UnresolvedReferenceError is returned when a placeholder names a key that
// has no value and the expression carries no default.
type UnresolvedReferenceError struct {
	// Key holds the value that contains the reference.
	Key string
	// Ref is the missing key.
	Ref string
	// Value is the raw value of Key.
	Value string
}

func (e *UnresolvedReferenceError) Error() string {
	return fmt.Sprintf("unresolved reference to %q in key %q (value %q)", e.Ref, e.Key, e.Value)
}

// CyclicReferenceError is returned when resolving a key requires resolving
// that same key, directly or transitively.
type CyclicReferenceError struct {
	Key   string
	Cycle []string
}

func (e *CyclicReferenceError) Error() string {
	return fmt.Sprintf("cyclic reference while resolving key %q: %s", e.Key, strings.Join(e.Cycle, " -> "))
}

// MalformedPlaceholderError is returned for an unbalanced "${", an empty
// reference, or a "${" nested inside a reference.
type MalformedPlaceholderError struct {
	Key   string
	Value string
	// Pos is the byte offset of the offending "${" in Value.
	Pos    int
	Reason string
}

func (e *MalformedPlaceholderError) Error() string {
	return fmt.Sprintf("malformed placeholder in key %q at offset %d: %s", e.Key, e.Pos, e.Reason)
}
