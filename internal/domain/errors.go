package domain

import "errors"

// ErrSourceRootMissing is returned when the source root does not exist or is
// not a directory. Nothing is written in that case.
var ErrSourceRootMissing = errors.New("source root not found")

// ErrExportsOutOfDate is returned by Check when the persisted exports differ
// from what a generation run would write.
var ErrExportsOutOfDate = errors.New("package exports are out of date")
