package history

import (
	"errors"
	"time"
)

// ErrEmptyState indicates Capture was called before the originator had any
// state to record.
var ErrEmptyState = errors.New("history: no state to capture")

// Snapshot is an immutable record of an originator's state at one instant.
// The state value is opaque to the engine; only the originator that produced
// the snapshot interprets it. A Snapshot is never modified after creation.
type Snapshot struct {
	state   any
	label   string
	takenAt time.Time
}

// NewSnapshot creates a snapshot of the given state. The caller must pass a
// copy that does not alias live subject state.
func NewSnapshot(state any, label string) *Snapshot {
	return &Snapshot{
		state:   state,
		label:   label,
		takenAt: time.Now(),
	}
}

// State returns the captured state. Intended for the producing originator
// only; everything else should treat the value as opaque.
func (s *Snapshot) State() any {
	return s.state
}

// Label returns the human-readable label the snapshot was taken with.
func (s *Snapshot) Label() string {
	return s.label
}

// TakenAt returns when the snapshot was created.
func (s *Snapshot) TakenAt() time.Time {
	return s.takenAt
}

// Originator is implemented by subjects that support full-state snapshots.
type Originator interface {
	// Capture returns a snapshot of the current state under the given
	// label. The captured state must not alias live state. Returns
	// ErrEmptyState if no state has been initialized yet.
	Capture(label string) (*Snapshot, error)

	// Restore replaces live state with a copy of the snapshot's state.
	// It fails only for a snapshot this originator cannot interpret.
	Restore(snap *Snapshot) error
}
