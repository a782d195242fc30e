package opengl

import (
	"github.com/go-theft-auto/shell"
)

// systemClipboard is the GLFW clipboard. GLFW only speaks UTF-8 strings,
// so the string pair works and the format operations are stubs.
type systemClipboard struct {
	app *App
}

var _ shell.Clipboard = (*systemClipboard)(nil)

func (c *systemClipboard) PutString(s string) {
	if c.app.native == nil {
		shell.Logger().Warn("clipboard used before the event loop started")
		return
	}
	c.app.native.SetClipboardString(s)
}

func (c *systemClipboard) GetString() (string, bool) {
	if c.app.native == nil {
		shell.Logger().Warn("clipboard used before the event loop started")
		return "", false
	}
	s := c.app.native.GetClipboardString()
	if s == "" {
		return "", false
	}
	return s, true
}

func (c *systemClipboard) PutFormats(formats []shell.ClipboardFormat) {
	// Fall back to the first text payload, the only format GLFW carries.
	for _, f := range formats {
		if f.Format == shell.TextFormat {
			c.PutString(string(f.Data))
			return
		}
	}
	shell.Logger().Warn("unimplemented", "op", "Clipboard.PutFormats")
}

func (c *systemClipboard) PreferredFormat(formats []shell.FormatID) (shell.FormatID, bool) {
	for _, f := range formats {
		if f == shell.TextFormat {
			if _, ok := c.GetString(); ok {
				return shell.TextFormat, true
			}
		}
	}
	return "", false
}

func (c *systemClipboard) GetFormat(format shell.FormatID) ([]byte, bool) {
	if format != shell.TextFormat {
		return nil, false
	}
	s, ok := c.GetString()
	if !ok {
		return nil, false
	}
	return []byte(s), true
}

func (c *systemClipboard) AvailableTypeNames() []string {
	if _, ok := c.GetString(); ok {
		return []string{string(shell.TextFormat)}
	}
	return nil
}
