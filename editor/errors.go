package editor

import "errors"

// Editing errors.
var (
	// ErrRangeInvalid indicates a range with start > end or out of bounds.
	ErrRangeInvalid = errors.New("editor: range out of bounds")
)
