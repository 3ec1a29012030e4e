package editor

// Clipboard holds text shared between editing commands. It belongs to the
// invoking application, not to any one editor.
type Clipboard struct {
	content string
}

// NewClipboard creates an empty clipboard.
func NewClipboard() *Clipboard {
	return &Clipboard{}
}

// Set replaces the clipboard content.
func (c *Clipboard) Set(text string) {
	c.content = text
}

// Get returns the clipboard content.
func (c *Clipboard) Get() string {
	return c.content
}

// IsEmpty returns true if the clipboard holds no text.
func (c *Clipboard) IsEmpty() bool {
	return c.content == ""
}
