package dispatcher

import "errors"

// Dispatcher errors.
var (
	// ErrPanic indicates the command panicked during execution.
	ErrPanic = errors.New("dispatcher: command panic")

	// ErrNoSubject indicates a snapshot dispatcher was built without a subject.
	ErrNoSubject = errors.New("dispatcher: snapshot strategy requires a subject")
)
