package editor

import (
	"fmt"

	"github.com/rivo/uniseg"

	"github.com/dshills/rewind/history"
)

// revertOperation applies the inverse of op and restores the selection the
// editor had before the edit.
func revertOperation(ed *Editor, op *Operation) error {
	inv := op.Invert()
	if _, err := ed.Replace(inv.Range, inv.NewText); err != nil {
		return err
	}
	ed.sel = op.SelBefore
	return nil
}

// CopyCommand copies the selection to the clipboard. It never mutates editor
// state, so it is never recorded in history.
type CopyCommand struct {
	ed   *Editor
	clip *Clipboard
}

// NewCopyCommand creates a new copy command.
func NewCopyCommand(ed *Editor, clip *Clipboard) *CopyCommand {
	return &CopyCommand{ed: ed, clip: clip}
}

// Execute copies the selected text. Always reports no mutation.
func (c *CopyCommand) Execute() (bool, error) {
	c.clip.Set(c.ed.SelectedText())
	return false, nil
}

// Revert is a programming error for a non-mutating command.
func (c *CopyCommand) Revert() error {
	return history.ErrInvalidRevert
}

// Description returns a human-readable description.
func (c *CopyCommand) Description() string {
	return "Copy"
}

// CutCommand deletes the selection and places it on the clipboard.
type CutCommand struct {
	ed   *Editor
	clip *Clipboard
	op   *Operation
}

// NewCutCommand creates a new cut command.
func NewCutCommand(ed *Editor, clip *Clipboard) *CutCommand {
	return &CutCommand{ed: ed, clip: clip}
}

// Execute cuts the selected text. A cut with nothing selected mutates
// nothing and is not recorded.
func (c *CutCommand) Execute() (bool, error) {
	c.op = nil

	sel := c.ed.Selection()
	if sel.IsEmpty() {
		return false, nil
	}

	op := NewDeleteOperation(sel, c.ed.SelectedText())
	op.SelBefore = sel

	c.clip.Set(op.OldText)
	if _, err := c.ed.Replace(sel, ""); err != nil {
		return false, fmt.Errorf("cut at range [%d,%d): %w", sel.Start, sel.End, err)
	}

	op.SelAfter = c.ed.Selection()
	c.op = op
	return true, nil
}

// Revert restores the cut text and the prior selection. The clipboard keeps
// the cut text.
func (c *CutCommand) Revert() error {
	if c.op == nil {
		return history.ErrInvalidRevert
	}
	if err := revertOperation(c.ed, c.op); err != nil {
		return fmt.Errorf("undo cut: %w", err)
	}
	return nil
}

// Description returns a human-readable description.
func (c *CutCommand) Description() string {
	return "Cut"
}

// PasteCommand replaces the selection with the clipboard content.
type PasteCommand struct {
	ed   *Editor
	clip *Clipboard
	op   *Operation
}

// NewPasteCommand creates a new paste command.
func NewPasteCommand(ed *Editor, clip *Clipboard) *PasteCommand {
	return &PasteCommand{ed: ed, clip: clip}
}

// Execute pastes the clipboard over the selection. Pasting text identical to
// the selection mutates nothing.
func (c *PasteCommand) Execute() (bool, error) {
	c.op = nil

	sel := c.ed.Selection()
	text := c.clip.Get()
	old := c.ed.SelectedText()
	if old == text {
		return false, nil
	}

	op := NewReplaceOperation(sel, old, text)
	op.SelBefore = sel

	if _, err := c.ed.Replace(sel, text); err != nil {
		return false, fmt.Errorf("paste at range [%d,%d): %w", sel.Start, sel.End, err)
	}

	op.SelAfter = c.ed.Selection()
	c.op = op
	return true, nil
}

// Revert restores the replaced text and the prior selection.
func (c *PasteCommand) Revert() error {
	if c.op == nil {
		return history.ErrInvalidRevert
	}
	if err := revertOperation(c.ed, c.op); err != nil {
		return fmt.Errorf("undo paste: %w", err)
	}
	return nil
}

// Description returns a human-readable description.
func (c *PasteCommand) Description() string {
	return "Paste"
}

// InsertCommand inserts text at the selection.
type InsertCommand struct {
	ed   *Editor
	Text string
	op   *Operation
}

// NewInsertCommand creates a new insert command.
func NewInsertCommand(ed *Editor, text string) *InsertCommand {
	return &InsertCommand{ed: ed, Text: text}
}

// Execute replaces the selection with the command's text.
func (c *InsertCommand) Execute() (bool, error) {
	c.op = nil

	sel := c.ed.Selection()
	old := c.ed.SelectedText()
	if old == c.Text {
		return false, nil
	}

	op := NewReplaceOperation(sel, old, c.Text)
	op.SelBefore = sel

	if _, err := c.ed.Replace(sel, c.Text); err != nil {
		return false, fmt.Errorf("insert at offset %d: %w", sel.Start, err)
	}

	op.SelAfter = c.ed.Selection()
	c.op = op
	return true, nil
}

// Revert removes the inserted text and restores the selection.
func (c *InsertCommand) Revert() error {
	if c.op == nil {
		return history.ErrInvalidRevert
	}
	if err := revertOperation(c.ed, c.op); err != nil {
		return fmt.Errorf("undo insert: %w", err)
	}
	return nil
}

// Description returns a human-readable description.
func (c *InsertCommand) Description() string {
	if len(c.Text) == 1 {
		if c.Text == "\n" {
			return "Insert newline"
		}
		if c.Text == "\t" {
			return "Insert tab"
		}
		return fmt.Sprintf("Type '%s'", c.Text)
	}
	if uniseg.GraphemeClusterCount(c.Text) <= 20 {
		return fmt.Sprintf("Insert \"%s\"", c.Text)
	}
	return fmt.Sprintf("Insert %d characters", uniseg.GraphemeClusterCount(c.Text))
}

// DeleteDirection specifies the direction of deletion.
type DeleteDirection int

const (
	// DeleteBackward deletes backward (like Backspace key).
	DeleteBackward DeleteDirection = iota
	// DeleteForward deletes forward (like Delete key).
	DeleteForward
)

// DeleteCommand deletes the selection, or grapheme clusters next to the
// caret when nothing is selected.
type DeleteCommand struct {
	ed        *Editor
	Direction DeleteDirection
	Count     int // Number of grapheme clusters to delete (default 1)
	op        *Operation
}

// NewDeleteCommand creates a delete command for one grapheme cluster.
func NewDeleteCommand(ed *Editor, direction DeleteDirection) *DeleteCommand {
	return &DeleteCommand{ed: ed, Direction: direction, Count: 1}
}

// NewDeleteCommandN creates a delete command for count grapheme clusters.
func NewDeleteCommandN(ed *Editor, direction DeleteDirection, count int) *DeleteCommand {
	if count < 1 {
		count = 1
	}
	return &DeleteCommand{ed: ed, Direction: direction, Count: count}
}

// Execute deletes text at the selection or caret. Deleting at the text
// boundary mutates nothing.
func (c *DeleteCommand) Execute() (bool, error) {
	c.op = nil

	sel := c.ed.Selection()
	var deleteRange Range

	if !sel.IsEmpty() {
		deleteRange = sel
	} else if c.Direction == DeleteBackward {
		deleteRange = c.ed.graphemeRangeBackward(sel.Start, c.Count)
	} else {
		deleteRange = c.ed.graphemeRangeForward(sel.Start, c.Count)
	}

	if deleteRange.IsEmpty() {
		return false, nil
	}

	op := NewDeleteOperation(deleteRange, c.ed.text[deleteRange.Start:deleteRange.End])
	op.SelBefore = sel

	if _, err := c.ed.Replace(deleteRange, ""); err != nil {
		return false, fmt.Errorf("delete at range [%d,%d): %w", deleteRange.Start, deleteRange.End, err)
	}

	op.SelAfter = c.ed.Selection()
	c.op = op
	return true, nil
}

// Revert restores the deleted text and the prior selection.
func (c *DeleteCommand) Revert() error {
	if c.op == nil {
		return history.ErrInvalidRevert
	}
	if err := revertOperation(c.ed, c.op); err != nil {
		return fmt.Errorf("undo delete: %w", err)
	}
	return nil
}

// Description returns a human-readable description.
func (c *DeleteCommand) Description() string {
	if c.Count == 1 {
		if c.Direction == DeleteBackward {
			return "Backspace"
		}
		return "Delete"
	}
	if c.Direction == DeleteBackward {
		return fmt.Sprintf("Backspace %d characters", c.Count)
	}
	return fmt.Sprintf("Delete %d characters", c.Count)
}
