package control

import "errors"

// Select filter errors.
var (
	ErrEmptyPredicate    = errors.New("select filter requires a predicate")
	ErrGlobalPredicate   = errors.New("global predicate requires explicit choices")
	ErrUnnamedComparator = errors.New("select filter comparator requires a name")
	ErrInvalidPage       = errors.New("page out of range")
)
