package unique

import "errors"

// ErrEmptyPool is returned when a selection is requested from a pool that
// holds no values at all. An exhausted pool is not an error; it triggers a
// reset instead.
var ErrEmptyPool = errors.New("candidate pool is empty")
