package shell

import "errors"

// Errors returned by the control plane and by window construction.
//
// The taxonomy is deliberately small: configuration failures at startup are
// fatal and reported by the backend's Run; transient per-call failures
// (dropped windows, guard conflicts) are logged and swallowed; enumerated
// stubs return ErrUnimplemented.
var (
	// ErrUnimplemented is returned by operations that the active backend
	// does not implement.
	ErrUnimplemented = errors.New("requested an unimplemented feature")

	// ErrWindowDropped is returned when a WindowHandle's window no longer
	// exists.
	ErrWindowDropped = errors.New("window has been dropped")

	// ErrNoWindow is returned by Application.Window when no window has been
	// registered yet.
	ErrNoWindow = errors.New("no window")

	// ErrWindowExists is returned by Application.AddWindow when a window is
	// already registered; one window per application.
	ErrWindowExists = errors.New("window already registered")

	// ErrMissingHandler is returned by WindowBuilder.Build when no handler
	// was set. This is a programmer error and fails fast.
	ErrMissingHandler = errors.New("window builder: no handler set")

	// errStateHeld reports that the window state was already borrowed when
	// exclusive access was needed; the offending call is dropped.
	errStateHeld = errors.New("window state already borrowed")
)
