package history

import (
	"errors"
	"fmt"
	"time"
)

// ErrNoOriginator indicates a snapshot entry was undone or redone without an
// originator to restore into.
var ErrNoOriginator = errors.New("history: snapshot entry requires an originator")

// Entry is one recorded mutation, held by the undo or redo stack. It is a
// tagged variant: either a snapshot entry (before holds the pre-mutation
// state) or a command entry (command reverses itself), never both.
type Entry struct {
	// Snapshot strategy. before is the state immediately prior to the
	// mutation; after is captured at undo time so redo can restore the
	// state that existed just before the undo.
	before *Snapshot
	after  *Snapshot

	// Delta strategy.
	command Command

	label   string
	takenAt time.Time
}

// NewSnapshotEntry records a mutation by its pre-mutation snapshot.
func NewSnapshotEntry(before *Snapshot) *Entry {
	return &Entry{
		before:  before,
		label:   before.Label(),
		takenAt: before.TakenAt(),
	}
}

// NewCommandEntry records a mutation by the command that performed it.
// The command must already have executed and mutated state.
func NewCommandEntry(cmd Command) *Entry {
	return &Entry{
		command: cmd,
		label:   cmd.Description(),
		takenAt: time.Now(),
	}
}

// IsSnapshot returns true for snapshot-strategy entries.
func (e *Entry) IsSnapshot() bool {
	return e.before != nil
}

// IsCommand returns true for delta-strategy entries.
func (e *Entry) IsCommand() bool {
	return e.command != nil
}

// Info returns the entry's display metadata without exposing captured state.
func (e *Entry) Info() EntryInfo {
	return EntryInfo{
		Label:     e.label,
		Timestamp: e.takenAt,
	}
}

// applyUndo reverses the entry's mutation on the subject. For snapshot
// entries the current state is captured first so redo can restore it.
func (e *Entry) applyUndo(orig Originator) error {
	if e.command != nil {
		if err := e.command.Revert(); err != nil {
			return fmt.Errorf("undo %s: %w", e.label, err)
		}
		return nil
	}

	if orig == nil {
		return ErrNoOriginator
	}
	current, err := orig.Capture(e.label)
	if err != nil {
		return fmt.Errorf("undo %s: %w", e.label, err)
	}
	if err := orig.Restore(e.before); err != nil {
		return fmt.Errorf("undo %s: %w", e.label, err)
	}
	e.after = current
	return nil
}

// applyRedo re-applies the entry's mutation on the subject. Only entries
// that have been undone reach this path, so after is set for snapshots.
func (e *Entry) applyRedo(orig Originator) error {
	if e.command != nil {
		if _, err := e.command.Execute(); err != nil {
			return fmt.Errorf("redo %s: %w", e.label, err)
		}
		return nil
	}

	if orig == nil {
		return ErrNoOriginator
	}
	if err := orig.Restore(e.after); err != nil {
		return fmt.Errorf("redo %s: %w", e.label, err)
	}
	return nil
}

// EntryInfo describes a recorded entry for history display. It carries no
// captured state.
type EntryInfo struct {
	Label     string
	Timestamp time.Time
}
