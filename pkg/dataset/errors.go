package dataset

import "errors"

// Sentinel errors returned by Load and the parsers. Detail is attached with
// errors.Join so errors.Is keeps working at call sites.
var (
	ErrNotFound          = errors.New("dataset file not found")
	ErrReadFailed        = errors.New("failed to read dataset file")
	ErrUnsupportedFormat = errors.New("unsupported dataset format")
	ErrMalformed         = errors.New("malformed dataset")
)
