package history

import (
	"errors"
	"sync"
)

// Common errors for history operations. An empty stack is a well-defined
// condition, not a failure; callers that treat undo/redo as best-effort
// should check for these with errors.Is and move on.
var (
	ErrNothingToUndo = errors.New("history: nothing to undo")
	ErrNothingToRedo = errors.New("history: nothing to redo")
)

// DefaultMaxEntries bounds the undo stack when no explicit limit is given.
const DefaultMaxEntries = 1000

// Engine manages undo/redo state for one subject. It owns every entry it
// records; once recorded, captures belong to the stacks and are never shared
// back with the subject or client code.
type Engine struct {
	mu sync.Mutex

	undoStack []*Entry
	redoStack []*Entry

	// Grouping state
	grouping  bool
	groupName string
	groupCmds []Command

	// Configuration
	maxEntries int
}

// NewEngine creates a new history engine. maxEntries bounds the undo stack;
// values <= 0 select DefaultMaxEntries.
func NewEngine(maxEntries int) *Engine {
	if maxEntries <= 0 {
		maxEntries = DefaultMaxEntries
	}
	return &Engine{
		maxEntries: maxEntries,
	}
}

// Execute runs a command and records it if it mutated state. Commands whose
// Execute reports false leave both stacks untouched.
func (e *Engine) Execute(cmd Command) error {
	mutated, err := cmd.Execute()
	if err != nil {
		return err
	}
	if !mutated {
		return nil
	}

	e.Record(NewCommandEntry(cmd))
	return nil
}

// Record adds an entry to the undo stack and clears the redo stack. The
// caller must only record entries whose mutation actually happened.
func (e *Engine) Record(entry *Entry) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.grouping && entry.IsCommand() {
		e.groupCmds = append(e.groupCmds, entry.command)
		return
	}

	e.recordLocked(entry)
}

// recordLocked adds an entry without acquiring the lock.
func (e *Engine) recordLocked(entry *Entry) {
	e.undoStack = append(e.undoStack, entry)

	// Clear redo stack: a new mutation makes undone entries unreachable
	e.redoStack = nil

	// Enforce max entries
	if len(e.undoStack) > e.maxEntries {
		// Evict oldest entries
		excess := len(e.undoStack) - e.maxEntries
		e.undoStack = e.undoStack[excess:]
	}
}

// Undo reverses the most recent recorded mutation and moves its entry to the
// redo stack. Returns ErrNothingToUndo when the undo stack is empty.
// The lock is released during subject calls to avoid holding it across
// potentially long-running restores.
func (e *Engine) Undo(orig Originator) (EntryInfo, error) {
	e.mu.Lock()
	if len(e.undoStack) == 0 {
		e.mu.Unlock()
		return EntryInfo{}, ErrNothingToUndo
	}

	entry := e.undoStack[len(e.undoStack)-1]
	e.undoStack = e.undoStack[:len(e.undoStack)-1]
	e.mu.Unlock()

	if err := entry.applyUndo(orig); err != nil {
		// Restore entry on failure
		e.mu.Lock()
		e.undoStack = append(e.undoStack, entry)
		e.mu.Unlock()
		return EntryInfo{}, err
	}

	e.mu.Lock()
	e.redoStack = append(e.redoStack, entry)
	e.mu.Unlock()
	return entry.Info(), nil
}

// Redo re-applies the most recently undone mutation and moves its entry back
// to the undo stack. Returns ErrNothingToRedo when the redo stack is empty.
func (e *Engine) Redo(orig Originator) (EntryInfo, error) {
	e.mu.Lock()
	if len(e.redoStack) == 0 {
		e.mu.Unlock()
		return EntryInfo{}, ErrNothingToRedo
	}

	entry := e.redoStack[len(e.redoStack)-1]
	e.redoStack = e.redoStack[:len(e.redoStack)-1]
	e.mu.Unlock()

	if err := entry.applyRedo(orig); err != nil {
		// Restore entry on failure
		e.mu.Lock()
		e.redoStack = append(e.redoStack, entry)
		e.mu.Unlock()
		return EntryInfo{}, err
	}

	e.mu.Lock()
	e.undoStack = append(e.undoStack, entry)
	e.mu.Unlock()
	return entry.Info(), nil
}

// CanUndo returns true if undo is available.
func (e *Engine) CanUndo() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.undoStack) > 0
}

// CanRedo returns true if redo is available.
func (e *Engine) CanRedo() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.redoStack) > 0
}

// UndoCount returns the number of undo operations available.
func (e *Engine) UndoCount() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.undoStack)
}

// RedoCount returns the number of redo operations available.
func (e *Engine) RedoCount() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.redoStack)
}

// BeginGroup starts a command group. Command entries recorded while grouping
// are combined into a single undo unit. Snapshot entries are not grouped and
// record normally.
func (e *Engine) BeginGroup(name string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.grouping {
		// Already grouping, ignore nested calls
		return
	}

	e.grouping = true
	e.groupName = name
	e.groupCmds = nil
}

// EndGroup finishes a command group. All command entries since BeginGroup
// are combined into a CompoundCommand.
func (e *Engine) EndGroup() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.grouping {
		return
	}

	e.grouping = false

	if len(e.groupCmds) == 0 {
		e.groupCmds = nil
		return
	}

	compound := newExecutedCompound(e.groupName, e.groupCmds)
	e.recordLocked(NewCommandEntry(compound))
	e.groupCmds = nil
}

// CancelGroup cancels a command group without adding to history.
// Note: Commands already executed still affect the subject!
func (e *Engine) CancelGroup() {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.grouping = false
	e.groupCmds = nil
}

// IsGrouping returns true if currently in a command group.
func (e *Engine) IsGrouping() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.grouping
}

// Clear removes all undo/redo history.
func (e *Engine) Clear() {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.undoStack = nil
	e.redoStack = nil
	e.grouping = false
	e.groupCmds = nil
}

// UndoInfo returns display metadata for the undo stack, oldest first.
func (e *Engine) UndoInfo() []EntryInfo {
	e.mu.Lock()
	defer e.mu.Unlock()

	result := make([]EntryInfo, len(e.undoStack))
	for i, entry := range e.undoStack {
		result[i] = entry.Info()
	}
	return result
}

// RedoInfo returns display metadata for the redo stack, oldest first.
func (e *Engine) RedoInfo() []EntryInfo {
	e.mu.Lock()
	defer e.mu.Unlock()

	result := make([]EntryInfo, len(e.redoStack))
	for i, entry := range e.redoStack {
		result[i] = entry.Info()
	}
	return result
}

// PeekUndo returns info about the next undo operation without removing it.
func (e *Engine) PeekUndo() (EntryInfo, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if len(e.undoStack) == 0 {
		return EntryInfo{}, false
	}
	return e.undoStack[len(e.undoStack)-1].Info(), true
}

// PeekRedo returns info about the next redo operation without removing it.
func (e *Engine) PeekRedo() (EntryInfo, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if len(e.redoStack) == 0 {
		return EntryInfo{}, false
	}
	return e.redoStack[len(e.redoStack)-1].Info(), true
}

// SetMaxEntries changes the maximum number of undo entries.
// If the current stack is larger, oldest entries are removed.
func (e *Engine) SetMaxEntries(max int) {
	if max <= 0 {
		max = DefaultMaxEntries
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	e.maxEntries = max

	if len(e.undoStack) > max {
		excess := len(e.undoStack) - max
		e.undoStack = e.undoStack[excess:]
	}
}

// MaxEntries returns the maximum number of undo entries.
func (e *Engine) MaxEntries() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.maxEntries
}
