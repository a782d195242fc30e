package shell

import "time"

// WindowHandle is the toolkit-facing control plane: a non-owning reference
// to a Window, affine to the window's owning thread. Once the window is
// dropped every operation is a logged no-op or returns its documented
// sentinel; nothing panics.
type WindowHandle struct {
	w *Window
}

// window resolves the handle, or returns nil if the window is gone.
func (h *WindowHandle) window() *Window {
	if h == nil || h.w == nil || h.w.dropped.Load() {
		return nil
	}
	return h.w
}

// Show is a no-op: the backends map a window at creation time.
func (h *WindowHandle) Show() {}

// Close destroys the window. Subsequent operations on any handle to it
// become no-ops.
func (h *WindowHandle) Close() {
	if w := h.window(); w != nil {
		w.drop()
	}
}

// Invalidate marks the whole window dirty.
func (h *WindowHandle) Invalidate() {
	if w := h.window(); w != nil {
		w.Invalidate()
	}
}

// InvalidateRect unions the rect into the damage region.
func (h *WindowHandle) InvalidateRect(r Rect) {
	if w := h.window(); w != nil {
		w.InvalidateRect(r)
	}
}

// RequestAnimFrame schedules a redraw on the idle queue; at most one is
// pending at a time.
func (h *WindowHandle) RequestAnimFrame() {
	if w := h.window(); w != nil {
		w.RequestAnimFrame()
	}
}

// RequestTimer schedules a timer and returns its token, or
// TimerTokenInvalid if the window is gone.
func (h *WindowHandle) RequestTimer(deadline time.Time) TimerToken {
	w := h.window()
	if w == nil {
		return TimerTokenInvalid
	}
	return w.RequestTimer(deadline)
}

// GetIdleHandle returns a cross-thread producer handle over the window's
// idle queue.
func (h *WindowHandle) GetIdleHandle() (IdleHandle, bool) {
	w := h.window()
	if w == nil {
		return IdleHandle{}, false
	}
	return w.IdleHandle(), true
}

// Resizable is unimplemented in these backends.
func (h *WindowHandle) Resizable(resizable bool) {
	logger.Warn("WindowHandle.Resizable unimplemented")
}

// ShowTitlebar is unimplemented in these backends.
func (h *WindowHandle) ShowTitlebar(show bool) {
	logger.Warn("WindowHandle.ShowTitlebar unimplemented")
}

// SetPosition is unimplemented in these backends.
func (h *WindowHandle) SetPosition(pos Point) {
	logger.Warn("WindowHandle.SetPosition unimplemented")
}

// GetPosition is unimplemented in these backends and returns the origin.
func (h *WindowHandle) GetPosition() Point {
	logger.Warn("WindowHandle.GetPosition unimplemented")
	return Point{}
}

// SetLevel is unimplemented in these backends.
func (h *WindowHandle) SetLevel(level WindowLevel) {
	logger.Warn("WindowHandle.SetLevel unimplemented")
}

// SetSize is unimplemented in these backends.
func (h *WindowHandle) SetSize(size Size) {
	logger.Warn("WindowHandle.SetSize unimplemented")
}

// GetSize is unimplemented in these backends and returns a zero size.
func (h *WindowHandle) GetSize() Size {
	logger.Warn("WindowHandle.GetSize unimplemented")
	return Size{}
}

// SetWindowSizeState is unimplemented in these backends.
func (h *WindowHandle) SetWindowSizeState(state WindowSizeState) {
	logger.Warn("WindowHandle.SetWindowSizeState unimplemented")
}

// GetWindowSizeState is unimplemented in these backends and reports
// restored.
func (h *WindowHandle) GetWindowSizeState() WindowSizeState {
	logger.Warn("WindowHandle.GetWindowSizeState unimplemented")
	return WindowSizeStateRestored
}

// HandleTitlebar is unimplemented in these backends.
func (h *WindowHandle) HandleTitlebar(val bool) {
	logger.Warn("WindowHandle.HandleTitlebar unimplemented")
}

// BringToFrontAndFocus is unimplemented in these backends.
func (h *WindowHandle) BringToFrontAndFocus() {
	logger.Warn("WindowHandle.BringToFrontAndFocus unimplemented")
}

// SetCursor is unimplemented in these backends.
func (h *WindowHandle) SetCursor(cursor Cursor) {
	logger.Warn("WindowHandle.SetCursor unimplemented")
}

// MakeCursor is unimplemented in these backends; custom cursors are not
// supported.
func (h *WindowHandle) MakeCursor(desc *CursorDesc) (Cursor, bool) {
	logger.Warn("WindowHandle.MakeCursor unimplemented")
	return CursorArrow, false
}

// OpenFile is unimplemented in these backends.
func (h *WindowHandle) OpenFile(options FileDialogOptions) (FileDialogToken, bool) {
	logger.Warn("WindowHandle.OpenFile unimplemented")
	return 0, false
}

// SaveAs is unimplemented in these backends.
func (h *WindowHandle) SaveAs(options FileDialogOptions) (FileDialogToken, bool) {
	logger.Warn("WindowHandle.SaveAs unimplemented")
	return 0, false
}

// SetMenu is unimplemented in these backends.
func (h *WindowHandle) SetMenu(menu *Menu) {
	logger.Warn("WindowHandle.SetMenu unimplemented")
}

// ShowContextMenu is unimplemented in these backends.
func (h *WindowHandle) ShowContextMenu(menu *Menu, pos Point) {
	logger.Warn("WindowHandle.ShowContextMenu unimplemented")
}

// FileDialog is not implemented; it returns ErrUnimplemented.
func (h *WindowHandle) FileDialog(ty FileDialogType, options FileDialogOptions) (string, error) {
	return "", ErrUnimplemented
}

// GetScale is not implemented; it returns ErrUnimplemented.
func (h *WindowHandle) GetScale() (Scale, error) {
	return Scale{}, ErrUnimplemented
}

// SetTitle is not implemented; it returns ErrUnimplemented.
func (h *WindowHandle) SetTitle(title string) error {
	return ErrUnimplemented
}
