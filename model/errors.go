package model

import "errors"

// Construction errors. Everything else in this package reports failure as
// a boolean result and leaves the structure untouched.
var (
	// ErrInvalidAspect is returned when a term's aspect disqualifies it
	// from the requested role: a non-molecular-function term offered as an
	// activity, or a molecular-function term offered as a context.
	ErrInvalidAspect = errors.New("term aspect invalid for requested role")

	// ErrNoContributor is returned when evidence is constructed without at
	// least one contributor.
	ErrNoContributor = errors.New("evidence requires at least one contributor")
)
