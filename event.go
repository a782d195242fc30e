package shell

// MouseButton identifies a single mouse button.
type MouseButton int

const (
	MouseButtonNone MouseButton = iota
	MouseButtonLeft
	MouseButtonRight
	MouseButtonMiddle
	MouseButtonX1
	MouseButtonX2
)

// MouseButtons is a set of mouse buttons held down.
type MouseButtons uint8

// Insert returns the set with the button added.
func (b MouseButtons) Insert(btn MouseButton) MouseButtons {
	if btn == MouseButtonNone {
		return b
	}
	return b | 1<<uint(btn-1)
}

// Remove returns the set with the button removed.
func (b MouseButtons) Remove(btn MouseButton) MouseButtons {
	if btn == MouseButtonNone {
		return b
	}
	return b &^ (1 << uint(btn-1))
}

// Contains reports whether the button is held.
func (b MouseButtons) Contains(btn MouseButton) bool {
	if btn == MouseButtonNone {
		return false
	}
	return b&(1<<uint(btn-1)) != 0
}

// Modifiers is a set of held modifier keys.
type Modifiers uint8

const (
	ModShift Modifiers = 1 << iota
	ModCtrl
	ModAlt
	ModMeta
)

// MouseEvent is the toolkit-agnostic shape of a pointer event. Pos is in
// display points. Count is 1 for a press, 0 for a move or release.
type MouseEvent struct {
	Pos        Point
	Buttons    MouseButtons
	Mods       Modifiers
	Count      int
	Focus      bool
	Button     MouseButton
	WheelDelta Vec2
}

// KeyState distinguishes press from release.
type KeyState int

const (
	KeyStateDown KeyState = iota
	KeyStateUp
)

// Location distinguishes between otherwise identical keys on different
// parts of the keyboard.
type Location int

const (
	LocationStandard Location = iota
	LocationLeft
	LocationRight
	LocationNumpad
)

// KeyEvent is the toolkit-agnostic shape of a keyboard event.
type KeyEvent struct {
	State       KeyState
	Key         string
	Code        Code
	Location    Location
	Mods        Modifiers
	Repeat      bool
	IsComposing bool
}

// Cursor names a stock mouse cursor.
type Cursor int

const (
	CursorArrow Cursor = iota
	CursorIBeam
	CursorCrosshair
	CursorOpenHand
	CursorNotAllowed
	CursorResizeLeftRight
	CursorResizeUpDown
)

// CursorDesc describes a custom cursor image. Custom cursors are not
// supported by these backends.
type CursorDesc struct {
	Hot Point
}

// WindowSizeState describes whether a window is maximized, minimized or
// neither.
type WindowSizeState int

const (
	WindowSizeStateRestored WindowSizeState = iota
	WindowSizeStateMinimized
	WindowSizeStateMaximized
)

// WindowLevel describes a window's stacking class.
type WindowLevel int

const (
	WindowLevelApp WindowLevel = iota
	WindowLevelTooltip
	WindowLevelDropDown
	WindowLevelModal
)

// FileDialogType selects between open and save dialogs.
type FileDialogType int

const (
	FileDialogOpen FileDialogType = iota
	FileDialogSave
)

// FileDialogOptions configures a file dialog request. Dialogs are
// unimplemented in these backends; the type exists for API shape.
type FileDialogOptions struct {
	DefaultName    string
	SelectMultiple bool
}

// HotKey is a keyboard shortcut attached to a menu item.
type HotKey struct {
	Mods Modifiers
	Key  string
}
