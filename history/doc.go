// Package history provides a reversible-operation engine: it records
// mutations against a subject so prior states can be undone and redone,
// without the engine knowing how the subject represents its state.
//
// Two recording strategies share one engine:
//
// # Snapshots
//
// A subject that implements Originator hands the engine opaque, immutable
// Snapshot values. The snapshot taken immediately before a mutation is
// recorded; undo restores it. A Snapshot carries only a label and timestamp
// as readable metadata; its state is visible only to the originator that
// produced it.
//
// # Commands
//
// Commands implement the Command interface with Execute and Revert methods.
// Execute reports whether it mutated subject state; commands that did not
// mutate are never recorded. A mutating command captures its own minimal
// backup before mutating, so undo does not need a full snapshot.
//
// # History Stacks
//
// The Engine type manages the undo and redo stacks:
//
//	engine := history.NewEngine(1000) // Max 1000 undo entries
//
//	// Record mutations
//	engine.Record(history.NewCommandEntry(cmd))
//
//	// Undo/redo
//	engine.Undo(subject)
//	engine.Redo(subject)
//
// Recording a new mutation clears the redo stack: once a new edit is made,
// previously undone edits are no longer reachable.
//
// # Command Grouping
//
// Multiple commands can be grouped as a single undo unit:
//
//	engine.BeginGroup("Find and Replace")
//	// ... multiple edits ...
//	engine.EndGroup()
//
// Now all edits undo together with one call.
//
// # Inspection
//
// PeekUndo, PeekRedo, UndoInfo, and RedoInfo expose entry labels and
// timestamps for history display. They never expose captured state and
// never modify either stack.
package history
