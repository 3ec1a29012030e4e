package editor

import (
	"fmt"

	"github.com/rivo/uniseg"
)

// Range is a half-open byte range [Start, End) into the editor's text.
type Range struct {
	Start int
	End   int
}

// IsEmpty returns true if the range covers no bytes.
func (r Range) IsEmpty() bool {
	return r.Start >= r.End
}

// Len returns the number of bytes the range covers.
func (r Range) Len() int {
	if r.IsEmpty() {
		return 0
	}
	return r.End - r.Start
}

// Editor is a minimal text editing receiver: a text plus one selection.
// An empty selection is a caret.
type Editor struct {
	text string
	sel  Range
}

// New creates an editor over the given text with the caret at the start.
func New(text string) *Editor {
	return &Editor{text: text}
}

// Text returns the current text.
func (ed *Editor) Text() string {
	return ed.text
}

// Len returns the text length in bytes.
func (ed *Editor) Len() int {
	return len(ed.text)
}

// Selection returns the current selection.
func (ed *Editor) Selection() Range {
	return ed.sel
}

// SelectedText returns the text covered by the current selection.
func (ed *Editor) SelectedText() string {
	if ed.sel.IsEmpty() {
		return ""
	}
	return ed.text[ed.sel.Start:ed.sel.End]
}

// Select sets the selection. Returns ErrRangeInvalid for out-of-bounds or
// inverted ranges.
func (ed *Editor) Select(start, end int) error {
	if start < 0 || end < start || end > len(ed.text) {
		return fmt.Errorf("select [%d,%d): %w", start, end, ErrRangeInvalid)
	}
	ed.sel = Range{Start: start, End: end}
	return nil
}

// SelectAll selects the whole text.
func (ed *Editor) SelectAll() {
	ed.sel = Range{Start: 0, End: len(ed.text)}
}

// MoveTo collapses the selection to a caret at pos.
func (ed *Editor) MoveTo(pos int) error {
	return ed.Select(pos, pos)
}

// Replace substitutes the text in r with newText and returns the text that
// was replaced. The caret moves to the end of the inserted text.
func (ed *Editor) Replace(r Range, newText string) (string, error) {
	if r.Start < 0 || r.End < r.Start || r.End > len(ed.text) {
		return "", fmt.Errorf("replace at range [%d,%d): %w", r.Start, r.End, ErrRangeInvalid)
	}

	old := ed.text[r.Start:r.End]
	ed.text = ed.text[:r.Start] + newText + ed.text[r.End:]

	caret := r.Start + len(newText)
	ed.sel = Range{Start: caret, End: caret}
	return old, nil
}

// GraphemeCount returns the number of user-perceived characters in the text.
func (ed *Editor) GraphemeCount() int {
	return uniseg.GraphemeClusterCount(ed.text)
}

// graphemeRangeBackward returns the range covering up to count grapheme
// clusters ending at pos.
func (ed *Editor) graphemeRangeBackward(pos, count int) Range {
	starts := graphemeStarts(ed.text[:pos])
	if count > len(starts) {
		count = len(starts)
	}
	if count == 0 {
		return Range{Start: pos, End: pos}
	}
	return Range{Start: starts[len(starts)-count], End: pos}
}

// graphemeRangeForward returns the range covering up to count grapheme
// clusters starting at pos.
func (ed *Editor) graphemeRangeForward(pos, count int) Range {
	end := pos
	g := uniseg.NewGraphemes(ed.text[pos:])
	for i := 0; i < count && g.Next(); i++ {
		_, to := g.Positions()
		end = pos + to
	}
	return Range{Start: pos, End: end}
}

// graphemeStarts returns the byte offset of every grapheme cluster in s.
func graphemeStarts(s string) []int {
	var starts []int
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		from, _ := g.Positions()
		starts = append(starts, from)
	}
	return starts
}
