package catalog

import "errors"

// ErrNotFound is returned when an identifier has no declared Entry. It points
// at a mismatch between the caller and the declaration, not at a runtime
// condition, so retrying never helps.
var ErrNotFound = errors.New("catalog: entry not found")

// ErrDuplicateEntry is returned by Build when two entries share an identifier.
var ErrDuplicateEntry = errors.New("catalog: duplicate entry")

// ErrInvalidName is returned by Build when a group or entry name is not a
// valid identifier segment.
var ErrInvalidName = errors.New("catalog: invalid name")

// ErrConflictingGroup is returned by Build when declarations of the same group
// disagree on whether it contributes a path segment.
var ErrConflictingGroup = errors.New("catalog: conflicting group declaration")
