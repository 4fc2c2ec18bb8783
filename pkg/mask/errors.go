package mask

import "errors"

// ErrUnknownKind is returned by ParseKind for attribute values that do not name a mask.
var ErrUnknownKind = errors.New("mask: unknown mask kind")
