package xmlns

import (
	"errors"
	"fmt"
)

// ErrFinalized is returned when an operation requires a registry that has not
// been finalized yet.
var ErrFinalized = errors.New("namespace registry already finalized")

// PrefixConflictError describes an attempt to bind one prefix to two
// different namespace URIs. Emitting the document would produce invalid XML,
// so finalization stops at the first conflict.
type PrefixConflictError struct {
	// Prefix is the contested namespace prefix.
	Prefix string

	// Existing is the namespace URI the prefix is already bound to.
	Existing string

	// Incoming is the namespace URI that could not be bound.
	Incoming string
}

func (e *PrefixConflictError) Error() string {
	return fmt.Sprintf(
		"cannot map namespace prefix %q to %q: prefix already mapped to %q",
		e.Prefix, e.Incoming, e.Existing,
	)
}

// checkAndInsert binds prefix to namespace in m. Rebinding a prefix to the
// namespace it already maps to is a no-op; rebinding it to a different
// namespace is a *PrefixConflictError.
func checkAndInsert(m map[string]string, prefix, namespace string) error {
	current, ok := m[prefix]
	if ok && current != namespace {
		return &PrefixConflictError{
			Prefix:   prefix,
			Existing: current,
			Incoming: namespace,
		}
	}

	m[prefix] = namespace
	return nil
}
