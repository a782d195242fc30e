package kms

import (
	"sync"

	"github.com/go-theft-auto/shell"
)

// memClipboard is a process-local clipboard. With no display server
// there is nobody to share with, but copy and paste within the
// application still works.
type memClipboard struct {
	mu      sync.Mutex
	formats []shell.ClipboardFormat
}

var _ shell.Clipboard = (*memClipboard)(nil)

func (c *memClipboard) PutString(s string) {
	c.PutFormats([]shell.ClipboardFormat{{Format: shell.TextFormat, Data: []byte(s)}})
}

func (c *memClipboard) PutFormats(formats []shell.ClipboardFormat) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.formats = append(c.formats[:0:0], formats...)
}

func (c *memClipboard) GetString() (string, bool) {
	data, ok := c.GetFormat(shell.TextFormat)
	if !ok {
		return "", false
	}
	return string(data), true
}

func (c *memClipboard) PreferredFormat(formats []shell.FormatID) (shell.FormatID, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, want := range formats {
		for _, have := range c.formats {
			if have.Format == want {
				return want, true
			}
		}
	}
	return "", false
}

func (c *memClipboard) GetFormat(format shell.FormatID) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, have := range c.formats {
		if have.Format == format {
			return append([]byte(nil), have.Data...), true
		}
	}
	return nil, false
}

func (c *memClipboard) AvailableTypeNames() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	names := make([]string, 0, len(c.formats))
	for _, f := range c.formats {
		names = append(names, string(f.Format))
	}
	return names
}
