package form

import "errors"

var (
	// ErrInvalidSchema is returned by New when a rule descriptor cannot be evaluated.
	ErrInvalidSchema = errors.New("form: invalid schema")

	// ErrInvalidPatch is returned by ApplyPatch for malformed or inapplicable patches.
	ErrInvalidPatch = errors.New("form: invalid patch")
)
