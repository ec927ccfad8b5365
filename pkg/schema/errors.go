package schema

import "errors"

var (
	// ErrInvalidDocument is returned for documents that do not describe a valid schema.
	ErrInvalidDocument = errors.New("schema: invalid document")

	ErrUnsupportedFormat = errors.New("schema: unsupported document format")
	ErrFailedToReadFile  = errors.New("schema: failed to read document")
)
