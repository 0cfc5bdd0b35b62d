package naija

import (
	"errors"

	"github.com/dmitrymomot/naija/pkg/dataset"
	"github.com/dmitrymomot/naija/pkg/unique"
)

// ErrInvalidArgument is returned when a filter value falls outside its
// closed set (an unknown tribe, gender, degree type, network, prefix, or a
// malformed domain). Detail is attached with errors.Join.
var ErrInvalidArgument = errors.New("invalid argument")

// Dataset and selection errors are re-exported so callers can match every
// generator failure without importing the subpackages.
var (
	ErrEmptyPool     = unique.ErrEmptyPool
	ErrNotFound      = dataset.ErrNotFound
	ErrMalformedData = dataset.ErrMalformed
)
