// Package dispatcher runs reversible commands against a subject and feeds
// the results into a history engine.
//
// The dispatcher owns the conditional-recording rule: a command is recorded
// only when its Execute reports that subject state changed. Non-mutating
// commands (a read-only copy, a no-op edit) run normally but never enter
// history.
//
// A dispatcher commits to one recording strategy for its subject:
//
//	// Full-state snapshots; subject implements history.Originator.
//	d := dispatcher.NewSnapshot(subject, dispatcher.DefaultConfig())
//
//	// Delta recording; commands carry their own minimal backup.
//	d := dispatcher.NewDelta(dispatcher.DefaultConfig())
//
// Commands are run, undone, and redone through the dispatcher:
//
//	d.Run(cmd)
//	d.UndoLast() // no-op when there is nothing to undo
//	d.RedoLast() // no-op when there is nothing to redo
//
// UndoLast and RedoLast treat empty stacks as an informational state, not an
// error; only subject failures propagate. History() exposes entry labels and
// timestamps for display without exposing captured state.
package dispatcher
