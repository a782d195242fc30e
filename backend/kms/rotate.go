package kms

import (
	"github.com/go-theft-auto/shell"
)

// transformClipRect rotates a damage rect from the landscape drawing
// surface onto a portrait-mounted panel. heightPx is the surface height
// in device pixels, which becomes the panel width after rotation.
func transformClipRect(r shell.IRect, heightPx int) shell.IRect {
	return shell.IRect{
		L: heightPx - r.B,
		T: r.L,
		R: heightPx - r.T,
		B: r.R,
	}
}
