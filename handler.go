package shell

// WinHandler is the toolkit-supplied object receiving paint, input and
// lifecycle callbacks from the shell. All calls arrive on the window's
// owning thread; reentering the shell from inside a callback is allowed
// for control-plane operations (invalidate, request timer) but a callback
// can never trigger another callback synchronously.
type WinHandler interface {
	// Connect is called once, before Scale and Size, with the handle the
	// toolkit uses for the control plane.
	Connect(handle *WindowHandle)

	// Scale reports the window's pixel-per-point scale.
	Scale(scale Scale)

	// Size reports the window's logical size, at connect time and after
	// every native resize.
	Size(size Size)

	// PreparePaint runs at the start of every paint pass, before the
	// damage region is taken. Animation state updates and follow-up
	// invalidations belong here.
	PreparePaint()

	// Paint draws the damaged region. The region is in display points and
	// the context is clipped to it.
	Paint(ctx PaintCtx, invalid *Region)

	KeyDown(ev KeyEvent)
	KeyUp(ev KeyEvent)

	MouseMove(ev *MouseEvent)
	MouseDown(ev *MouseEvent)
	MouseUp(ev *MouseEvent)

	// Timer delivers a timer requested through WindowHandle.RequestTimer.
	Timer(token TimerToken)

	// Idle delivers a token enqueued through IdleHandle.AddIdleToken.
	Idle(token IdleToken)

	// AsAny returns the handler itself, for idle callbacks to downcast.
	AsAny() any
}

// AppHandler receives application-level callbacks.
type AppHandler interface {
	// Command is called on menu command dispatch.
	Command(id uint32)
}
