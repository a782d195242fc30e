package shell

import "time"

// The interfaces below are the contract every backend satisfies toward the
// toolkit. The pump types in this package (Window, WindowHandle,
// IdleHandle, Menu) are shared; a backend contributes the Application, the
// WindowBuilder and the render context, and wires them to the pump.

// Application owns the process-wide event loop and the GPU surface. At
// most one window is supported per application in the current design.
type Application interface {
	// AddWindow registers the window. It is called by WindowBuilder.Build.
	AddWindow(w *Window) error

	// Window returns the registered window, or ErrNoWindow.
	Window() (*Window, error)

	// Run enters the native event loop and blocks until quit. Fatal
	// startup errors (context or surface creation) are logged and end the
	// run.
	Run(handler AppHandler)

	// Quit asks the event loop to exit. Quitting is monotonic.
	Quit()

	// Clipboard returns the backend's clipboard.
	Clipboard() Clipboard

	// Locale returns the current locale tag.
	Locale() string
}

// WindowBuilder accumulates window configuration and constructs the
// window. Setters for unsupported properties are retained for API shape
// and have no effect.
type WindowBuilder interface {
	SetHandler(h WinHandler)
	SetTitle(title string)
	SetSize(size Size)
	SetMinSize(size Size)
	Resizable(resizable bool)
	ShowTitlebar(show bool)
	SetPosition(pos Point)
	SetLevel(level WindowLevel)
	SetWindowSizeState(state WindowSizeState)
	SetMenu(menu *Menu)

	// Build consumes the builder, connects the handler (Connect, Scale,
	// Size, in that order), registers the window with the application and
	// returns the control-plane handle. Building without a handler fails
	// with ErrMissingHandler.
	Build() (*WindowHandle, error)
}

// WindowControl enumerates the control-plane surface of a WindowHandle.
// Every operation upgrades the handle's window reference; when the window
// is gone the operation is a logged no-op or returns the documented
// sentinel, and never panics.
type WindowControl interface {
	Show()
	Close()
	Invalidate()
	InvalidateRect(r Rect)
	RequestAnimFrame()
	RequestTimer(deadline time.Time) TimerToken
	GetIdleHandle() (IdleHandle, bool)

	Resizable(resizable bool)
	ShowTitlebar(show bool)
	SetPosition(pos Point)
	GetPosition() Point
	SetLevel(level WindowLevel)
	SetSize(size Size)
	GetSize() Size
	SetWindowSizeState(state WindowSizeState)
	GetWindowSizeState() WindowSizeState
	HandleTitlebar(val bool)
	BringToFrontAndFocus()
	SetCursor(cursor Cursor)
	MakeCursor(desc *CursorDesc) (Cursor, bool)
	OpenFile(options FileDialogOptions) (FileDialogToken, bool)
	SaveAs(options FileDialogOptions) (FileDialogToken, bool)
	SetMenu(menu *Menu)
	ShowContextMenu(menu *Menu, pos Point)

	FileDialog(ty FileDialogType, options FileDialogOptions) (string, error)
	GetScale() (Scale, error)
	SetTitle(title string) error
}

var _ WindowControl = (*WindowHandle)(nil)
