// Package editor provides a small text editing receiver for delta-style
// undo/redo.
//
// The Editor owns a text and a single selection. Edit commands (Insert,
// Delete, Cut, Paste, Copy) implement history.Command: each mutating command
// records a minimal Operation backup — the touched range, the old text, and
// the selection — before it mutates, so undo never needs a full snapshot of
// the text. Copy performs its side effect without touching editor state and
// reports no mutation, which keeps it out of history entirely.
//
// The clipboard is a separate collaborator handed to commands at
// construction; the editor itself knows nothing about it.
//
// Deletion and command descriptions are grapheme-aware: a backspace removes
// one user-perceived character, not one byte or one rune.
package editor
