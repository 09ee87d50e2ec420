package model

import "errors"

// Sentinel errors shared by the progression core.
// Wrapped with fmt.Errorf("...: %w", ...) at the failure site and
// matched with errors.Is in callers and tests.
var (
	// ErrInvalidArgument reports a domain-invariant violation rejected at
	// the mutation boundary: negative exp, level out of [0, maxLevel],
	// negative radius. State is left unmodified.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrNotFound reports a lookup of a player or spec that does not
	// exist. The core never substitutes a default for a missing target.
	ErrNotFound = errors.New("not found")
)
