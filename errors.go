package talon

import "errors"

// ErrEmptyInput is returned from [Build]
// when called with zero data blocks.
var ErrEmptyInput = errors.New("cannot build a tree from zero blocks")
