package document

import (
	"errors"
	"fmt"

	deep "github.com/brunoga/deep/v5"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/dshills/rewind/history"
)

// ErrForeignSnapshot indicates a restore from a snapshot this document type
// did not produce.
var ErrForeignSnapshot = errors.New("document: snapshot from a different subject")

// state is everything a snapshot carries: the title, the JSON body, and the
// metadata map.
type state struct {
	Title string
	Body  string
	Meta  map[string]string
}

// Document is a snapshot-strategy subject: a titled JSON document with
// free-form metadata.
type Document struct {
	st          state
	initialized bool
}

// New creates a document with the given title and JSON body.
func New(title, body string) *Document {
	return &Document{
		st: state{
			Title: title,
			Body:  body,
			Meta:  make(map[string]string),
		},
		initialized: true,
	}
}

// Capture returns an opaque snapshot of the document's full state. The state
// is deep-copied so the snapshot never aliases the live document.
func (d *Document) Capture(label string) (*history.Snapshot, error) {
	if !d.initialized {
		return nil, history.ErrEmptyState
	}
	return history.NewSnapshot(deep.Clone(d.st), label), nil
}

// Restore replaces the document's state with a copy of the snapshot's state.
func (d *Document) Restore(snap *history.Snapshot) error {
	st, ok := snap.State().(state)
	if !ok {
		return ErrForeignSnapshot
	}
	d.st = deep.Clone(st)
	d.initialized = true
	return nil
}

// Title returns the document title.
func (d *Document) Title() string {
	return d.st.Title
}

// Body returns the JSON body.
func (d *Document) Body() string {
	return d.st.Body
}

// Field returns the body value at the given gjson path.
func (d *Document) Field(path string) gjson.Result {
	return gjson.Get(d.st.Body, path)
}

// Meta returns one metadata value.
func (d *Document) Meta(key string) (string, bool) {
	v, ok := d.st.Meta[key]
	return v, ok
}

// Metadata returns a copy of the metadata map. Mutating the copy does not
// affect the document.
func (d *Document) Metadata() map[string]string {
	return deep.Clone(d.st.Meta)
}

// Rename sets the document title and reports whether it changed.
func (d *Document) Rename(title string) bool {
	if d.st.Title == title {
		return false
	}
	d.st.Title = title
	return true
}

// SetField writes value at the given path in the JSON body and reports
// whether the body changed.
func (d *Document) SetField(path string, value any) (bool, error) {
	updated, err := sjson.Set(d.st.Body, path, value)
	if err != nil {
		return false, fmt.Errorf("set field %s: %w", path, err)
	}
	if updated == d.st.Body {
		return false, nil
	}
	d.st.Body = updated
	return true, nil
}

// DeleteField removes the value at the given path from the JSON body and
// reports whether the body changed.
func (d *Document) DeleteField(path string) (bool, error) {
	updated, err := sjson.Delete(d.st.Body, path)
	if err != nil {
		return false, fmt.Errorf("delete field %s: %w", path, err)
	}
	if updated == d.st.Body {
		return false, nil
	}
	d.st.Body = updated
	return true, nil
}

// SetMeta sets one metadata entry and reports whether it changed.
func (d *Document) SetMeta(key, value string) bool {
	if v, ok := d.st.Meta[key]; ok && v == value {
		return false
	}
	d.st.Meta[key] = value
	return true
}

// DeleteMeta removes one metadata entry and reports whether it existed.
func (d *Document) DeleteMeta(key string) bool {
	if _, ok := d.st.Meta[key]; !ok {
		return false
	}
	delete(d.st.Meta, key)
	return true
}
