package shell

import (
	"sync/atomic"
	"time"
)

// windowState is the mutable window data. It is only ever touched on the
// owning thread; the held flag gives runtime exclusive-borrow checking so
// reentrant mutation is caught instead of corrupting iteration.
type windowState struct {
	scale       Scale
	size        Size // logical size, in display points
	invalid     Region
	prevInvalid Region
}

// WindowConfig is what a backend's WindowBuilder feeds into NewWindow.
type WindowConfig struct {
	// Handler receives all callbacks. Required.
	Handler WinHandler

	// Size is the initial logical size.
	Size Size

	// Scale is the pixel-per-point scale; DefaultScale when zero.
	Scale Scale

	// Wake, if set, rouses the native event loop when idle work is
	// enqueued from another goroutine. Polling backends leave it nil.
	Wake func()

	// ClipTransform, if set, rewrites each device-pixel clip rect before
	// it is applied; the direct-render backend uses it to rotate damage
	// onto a portrait-mounted panel. heightPx is the surface height in
	// device pixels.
	ClipTransform func(r IRect, heightPx int) IRect

	// OnClose runs once when the window is closed through its handle.
	OnClose func()
}

// Window owns the handler, the window state, the idle queue and the timer
// queue: the per-window event/paint/idle/timer pump. It is driven by the
// backend's Application loop and is not safe for concurrent use; only the
// idle queue accepts cross-thread producers.
type Window struct {
	handler WinHandler
	state   windowState
	idle    *IdleQueue
	timers  timerQueue

	// entered guards handler dispatch; stateHeld guards state mutation.
	// Both catch reentrancy on the owning thread, they are not locks.
	entered   bool
	stateHeld bool

	clipTransform func(r IRect, heightPx int) IRect
	onClose       func()
	dropped       atomic.Bool
}

// NewWindow constructs a window from the config. A missing handler is a
// programmer error and fails fast with ErrMissingHandler.
func NewWindow(cfg WindowConfig) (*Window, error) {
	if cfg.Handler == nil {
		return nil, ErrMissingHandler
	}
	scale := cfg.Scale
	if !scale.Valid() {
		scale = DefaultScale
	}
	w := &Window{
		handler:       cfg.Handler,
		idle:          NewIdleQueue(cfg.Wake),
		clipTransform: cfg.ClipTransform,
		onClose:       cfg.OnClose,
	}
	w.state.scale = scale
	w.state.size = cfg.Size
	return w, nil
}

// Handle returns a control-plane handle to the window.
func (w *Window) Handle() *WindowHandle {
	return &WindowHandle{w: w}
}

// IdleHandle returns a producer handle over the window's idle queue. The
// handle stays valid for as long as anything holds it, even past the
// window's drop.
func (w *Window) IdleHandle() IdleHandle {
	return IdleHandle{queue: w.idle}
}

// Connect delivers Connect, Scale and Size to the handler, in that order.
// Called once by the builder after construction.
func (w *Window) Connect(handle *WindowHandle) {
	w.withHandlerRaw(func(h WinHandler) {
		h.Connect(handle)
		h.Scale(w.state.scale)
		h.Size(w.state.size)
	})
}

// Size returns the window's logical size.
func (w *Window) Size() Size {
	return w.state.size
}

// Scale returns the window's pixel-per-point scale.
func (w *Window) Scale() Scale {
	return w.state.scale
}

// withState runs f with exclusive access to the window state. If the
// state is already held the call fails and the caller drops its work.
func (w *Window) withState(f func(st *windowState)) error {
	if w.stateHeld {
		return errStateHeld
	}
	w.stateHeld = true
	defer func() { w.stateHeld = false }()
	f(&w.state)
	return nil
}

// withHandler dispatches to the handler unless the handler or the window
// state is already claimed, in which case the call is dropped with a
// diagnostic naming the dispatch site. This protects against recursive
// invalidation → paint → invalidation storms.
func (w *Window) withHandler(f func(h WinHandler)) bool {
	if w.entered || w.stateHeld {
		logger.Error("handler or window state already claimed when calling into the handler",
			"caller", callerLocation(1))
		return false
	}
	return w.withHandlerRaw(f)
}

// withHandlerRaw dispatches without checking the state claim. Used where
// the caller has already released the state, e.g. the paint call itself.
func (w *Window) withHandlerRaw(f func(h WinHandler)) bool {
	if w.entered {
		logger.Error("handler reentry dropped", "caller", callerLocation(1))
		return false
	}
	w.entered = true
	defer func() { w.entered = false }()
	f(w.handler)
	return true
}

// Render runs one paint pass against the context:
//
//  1. PreparePaint, the handler's chance to animate and invalidate.
//  2. Take-and-clear the damage region.
//  3. Union in the previous frame's damage, so the back buffer (still
//     showing frame N-2 behind the last frame's damage) is restored.
//  4. Clip the context to the damage, in device pixels.
//  5. Paint.
//
// If the window state cannot be acquired the frame is dropped and the
// error returned; the loop carries on and the last good frame stays up.
func (w *Window) Render(ctx PaintCtx) error {
	w.withHandler(func(h WinHandler) { h.PreparePaint() })

	var invalid, prev Region
	var scale Scale
	var heightPx int
	err := w.withState(func(st *windowState) {
		invalid = st.invalid.Clone()
		st.invalid.Clear()
		prev = st.prevInvalid.Clone()
		scale = st.scale
		heightPx = int(st.size.Height * st.scale.Y)
	})
	if err != nil {
		logger.Error("paint skipped: failed to take damage region", "err", err)
		return err
	}

	bufferDamage := invalid.Clone()
	bufferDamage.UnionWith(&prev)

	ctx.Save()
	clip := make([]IRect, 0, len(bufferDamage.Rects()))
	for _, r := range bufferDamage.Rects() {
		ir := scale.RectToPx(r).ToIRect()
		if w.clipTransform != nil {
			ir = w.clipTransform(ir, heightPx)
		}
		clip = append(clip, ir)
	}
	ctx.ClipRects(clip)

	w.withHandlerRaw(func(h WinHandler) { h.Paint(ctx, &bufferDamage) })
	ctx.Restore()

	if err := w.withState(func(st *windowState) { st.prevInvalid = invalid }); err != nil {
		logger.Error("paint: failed to store previous damage", "err", err)
		return err
	}
	return nil
}

// RunIdle drains the idle queue: the whole queue is swapped out under the
// lock, then each item is dispatched under the reentrancy guard. Returns
// true if a coalesced redraw request was among the items.
func (w *Window) RunIdle() bool {
	items := w.idle.take()
	if len(items) == 0 {
		return false
	}
	needsRedraw := false
	w.withHandler(func(h WinHandler) {
		for _, it := range items {
			switch it.kind {
			case idleCallback:
				it.callback(h.AsAny())
			case idleToken:
				h.Idle(it.token)
			case idleRedraw:
				needsRedraw = true
			}
		}
	})
	return needsRedraw
}

// NextTimeout returns the earliest pending timer deadline, if any. Backends
// use it to bound their event wait.
func (w *Window) NextTimeout() (time.Time, bool) {
	return w.timers.nextDeadline()
}

// RunTimers delivers every timer whose deadline is at or before now, in
// deadline order with ties broken by issuance.
func (w *Window) RunTimers(now time.Time) {
	for {
		t, ok := w.timers.popDue(now)
		if !ok {
			return
		}
		w.withHandler(func(h WinHandler) { h.Timer(t.Token()) })
	}
}

// RequestTimer schedules a timer and returns its token. A past deadline
// fires at the next pump tick.
func (w *Window) RequestTimer(deadline time.Time) TimerToken {
	return w.timers.schedule(deadline)
}

// ScreenSizeChanged recomputes the logical size from a new physical size
// and notifies the handler.
func (w *Window) ScreenSizeChanged(physical Size) {
	var size Size
	err := w.withState(func(st *windowState) {
		st.size = st.scale.SizeToDP(physical)
		size = st.size
	})
	if err != nil {
		logger.Error("resize dropped: window state busy", "err", err)
		return
	}
	w.withHandler(func(h WinHandler) { h.Size(size) })
}

// Invalidate marks the whole window dirty.
func (w *Window) Invalidate() {
	var size Size
	if err := w.withState(func(st *windowState) { size = st.size }); err != nil {
		logger.Error("Window.Invalidate: failed to get size", "err", err)
		return
	}
	w.InvalidateRect(size.ToRect())
}

// InvalidateRect unions the rect, expanded to the device pixel grid, into
// the damage region and requests a frame.
func (w *Window) InvalidateRect(r Rect) {
	if err := w.addInvalidRect(r); err != nil {
		logger.Error("Window.InvalidateRect: failed to enlarge region", "err", err)
	}
	w.RequestAnimFrame()
}

func (w *Window) addInvalidRect(r Rect) error {
	return w.withState(func(st *windowState) {
		st.invalid.AddRect(st.scale.ExpandRect(r))
	})
}

// RequestAnimFrame posts a coalesced redraw request on the idle queue.
func (w *Window) RequestAnimFrame() {
	w.idle.ScheduleRedraw()
}

// HandleMotionNotify translates a native pointer move. pos is in device
// pixels.
func (w *Window) HandleMotionNotify(pos Point) {
	ev := MouseEvent{
		Pos:    w.state.scale.PointToDP(pos),
		Button: MouseButtonNone,
	}
	w.withHandler(func(h WinHandler) { h.MouseMove(&ev) })
}

// HandleButtonPress translates a native button press. pos is in device
// pixels; unmapped buttons are dropped by the backend before this point.
func (w *Window) HandleButtonPress(pos Point, button MouseButton, mods Modifiers) {
	ev := MouseEvent{
		Pos:    w.state.scale.PointToDP(pos),
		Mods:   mods,
		Count:  1,
		Button: button,
	}
	w.withHandler(func(h WinHandler) { h.MouseDown(&ev) })
}

// HandleButtonRelease translates a native button release.
func (w *Window) HandleButtonRelease(pos Point, button MouseButton, mods Modifiers) {
	ev := MouseEvent{
		Pos:    w.state.scale.PointToDP(pos),
		Mods:   mods,
		Count:  0,
		Button: button,
	}
	w.withHandler(func(h WinHandler) { h.MouseUp(&ev) })
}

// HandleKeyPress translates a native key event that the backend has
// already mapped to a Code. Repeat and composition state are not tracked
// by these backends and stay empty.
func (w *Window) HandleKeyPress(state KeyState, code Code, mods Modifiers) {
	ev := KeyEvent{
		State:    state,
		Code:     code,
		Mods:     mods,
		Key:      CodeToKey(code, mods),
		Location: codeLocation(code),
	}
	switch state {
	case KeyStateDown:
		w.withHandler(func(h WinHandler) { h.KeyDown(ev) })
	case KeyStateUp:
		w.withHandler(func(h WinHandler) { h.KeyUp(ev) })
	}
}

// Dropped reports whether the window has been closed.
func (w *Window) Dropped() bool {
	return w.dropped.Load()
}

// drop marks the window dead. Handles resolve to nothing afterwards.
// Idempotent; the close callback runs once.
func (w *Window) drop() {
	if w.dropped.Swap(true) {
		return
	}
	if w.onClose != nil {
		w.onClose()
	}
}
