package datemath

import "errors"

// ErrUnresolvedDate is returned when a phrase cannot be mapped to a concrete date.
var ErrUnresolvedDate = errors.New("unresolved date phrase")
