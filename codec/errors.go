package codec

import "errors"

var (
	// ErrUnknownFormat indicates an unsupported document format name.
	ErrUnknownFormat = errors.New("codec: unknown format")

	// ErrMissingField indicates a required document field is absent.
	ErrMissingField = errors.New("codec: missing field")

	// ErrDuplicateField indicates a field given under both its name and alias.
	ErrDuplicateField = errors.New("codec: duplicate field")
)
