package shell

import (
	"errors"
	"image/color"
	"testing"
	"time"
)

// recordingCtx is a paint context that records the calls made against it.
type recordingCtx struct {
	saves    int
	restores int
	clips    [][]IRect
	fills    []Rect
}

func (c *recordingCtx) Save() { c.saves++ }
func (c *recordingCtx) Restore() { c.restores++ }
func (c *recordingCtx) ClipRects(rects []IRect) {
	c.clips = append(c.clips, append([]IRect(nil), rects...))
}
func (c *recordingCtx) Clear(color.RGBA) {}
func (c *recordingCtx) FillRect(r Rect, _ color.RGBA) { c.fills = append(c.fills, r) }
func (c *recordingCtx) StrokeRect(Rect, float64, color.RGBA) {}
func (c *recordingCtx) StrokeLine(Point, Point, float64, color.RGBA) {}

// recordingHandler records every callback. Optional hooks run inside the
// corresponding callback to exercise reentrant paths.
type recordingHandler struct {
	handle *WindowHandle

	connects int
	calls    []string

	scales []Scale
	sizes  []Size

	painted  []Region
	timers   []TimerToken
	idles    []IdleToken
	keyDowns []KeyEvent
	keyUps   []KeyEvent
	mouses   []MouseEvent

	onPreparePaint func()
	onPaint        func()
}

func (h *recordingHandler) Connect(handle *WindowHandle) {
	h.handle = handle
	h.connects++
	h.calls = append(h.calls, "connect")
}

func (h *recordingHandler) Scale(scale Scale) {
	h.scales = append(h.scales, scale)
	h.calls = append(h.calls, "scale")
}

func (h *recordingHandler) Size(size Size) {
	h.sizes = append(h.sizes, size)
	h.calls = append(h.calls, "size")
}

func (h *recordingHandler) PreparePaint() {
	h.calls = append(h.calls, "prepare")
	if h.onPreparePaint != nil {
		h.onPreparePaint()
	}
}

func (h *recordingHandler) Paint(ctx PaintCtx, invalid *Region) {
	h.calls = append(h.calls, "paint")
	h.painted = append(h.painted, invalid.Clone())
	if h.onPaint != nil {
		h.onPaint()
	}
}

func (h *recordingHandler) KeyDown(ev KeyEvent) { h.keyDowns = append(h.keyDowns, ev) }
func (h *recordingHandler) KeyUp(ev KeyEvent) { h.keyUps = append(h.keyUps, ev) }

func (h *recordingHandler) MouseMove(ev *MouseEvent) { h.mouses = append(h.mouses, *ev) }
func (h *recordingHandler) MouseDown(ev *MouseEvent) { h.mouses = append(h.mouses, *ev) }
func (h *recordingHandler) MouseUp(ev *MouseEvent) { h.mouses = append(h.mouses, *ev) }

func (h *recordingHandler) Timer(tok TimerToken) { h.timers = append(h.timers, tok) }
func (h *recordingHandler) Idle(tok IdleToken) { h.idles = append(h.idles, tok) }
func (h *recordingHandler) AsAny() any           { return h }

func newTestWindow(t *testing.T, cfg WindowConfig) (*Window, *recordingHandler) {
	t.Helper()
	h := &recordingHandler{}
	cfg.Handler = h
	if cfg.Size.IsEmpty() {
		cfg.Size = Size{Width: 100, Height: 100}
	}
	w, err := NewWindow(cfg)
	if err != nil {
		t.Fatalf("NewWindow: %v", err)
	}
	return w, h
}

func TestNewWindowRequiresHandler(t *testing.T) {
	_, err := NewWindow(WindowConfig{Size: Size{Width: 10, Height: 10}})
	if !errors.Is(err, ErrMissingHandler) {
		t.Fatalf("err = %v, want ErrMissingHandler", err)
	}
}

func TestConnectDeliveryOrder(t *testing.T) {
	w, h := newTestWindow(t, WindowConfig{Scale: NewScale(2, 2)})
	w.Connect(w.Handle())

	want := []string{"connect", "scale", "size"}
	if len(h.calls) != 3 {
		t.Fatalf("calls = %v", h.calls)
	}
	for i := range want {
		if h.calls[i] != want[i] {
			t.Fatalf("calls = %v, want %v", h.calls, want)
		}
	}
	if h.handle == nil {
		t.Error("handle not delivered")
	}
	if h.scales[0] != NewScale(2, 2) {
		t.Errorf("scale = %v", h.scales[0])
	}
	if h.sizes[0] != (Size{Width: 100, Height: 100}) {
		t.Errorf("size = %v", h.sizes[0])
	}
}

func TestInvalidWindowScaleFallsBack(t *testing.T) {
	w, _ := newTestWindow(t, WindowConfig{Scale: Scale{X: -1, Y: 0}})
	if w.Scale() != DefaultScale {
		t.Errorf("scale = %v, want DefaultScale", w.Scale())
	}
}

func TestRenderClipsToDamage(t *testing.T) {
	w, h := newTestWindow(t, WindowConfig{Scale: NewScale(2, 2)})

	w.InvalidateRect(NewRect(0.4, 0.4, 1.6, 1.6))
	if !w.RunIdle() {
		t.Fatal("invalidation should schedule a redraw")
	}

	var ctx recordingCtx
	if err := w.Render(&ctx); err != nil {
		t.Fatalf("Render: %v", err)
	}

	if ctx.saves != 1 || ctx.restores != 1 {
		t.Errorf("save/restore = %d/%d", ctx.saves, ctx.restores)
	}
	if len(ctx.clips) != 1 {
		t.Fatalf("clips = %v", ctx.clips)
	}
	// The DP rect snaps outward to the device grid: pixels 0..4.
	if got := ctx.clips[0]; len(got) != 1 || got[0] != NewIRect(0, 0, 4, 4) {
		t.Errorf("clip = %v, want [(0,0,4,4)]", got)
	}
	if len(h.painted) != 1 || !h.painted[0].Contains(Point{X: 1, Y: 1}) {
		t.Error("paint did not see the damaged area")
	}
}

func TestRenderRestoresDoubleBuffer(t *testing.T) {
	w, _ := newTestWindow(t, WindowConfig{})

	w.InvalidateRect(NewRect(0, 0, 10, 10))
	var ctx1 recordingCtx
	if err := w.Render(&ctx1); err != nil {
		t.Fatalf("Render: %v", err)
	}

	// The next frame damages a different area; its clip must also cover
	// the previous frame's damage, because the back buffer is two frames
	// stale there.
	w.InvalidateRect(NewRect(50, 50, 60, 60))
	var ctx2 recordingCtx
	if err := w.Render(&ctx2); err != nil {
		t.Fatalf("Render: %v", err)
	}

	clip := ctx2.clips[0]
	if len(clip) != 2 {
		t.Fatalf("clip = %v, want both damage rects", clip)
	}
	hasOld, hasNew := false, false
	for _, r := range clip {
		if r == NewIRect(0, 0, 10, 10) {
			hasOld = true
		}
		if r == NewIRect(50, 50, 60, 60) {
			hasNew = true
		}
	}
	if !hasOld || !hasNew {
		t.Errorf("clip = %v, want old and new damage", clip)
	}

	// A third frame with no new damage still repaints frame 2's rect.
	var ctx3 recordingCtx
	if err := w.Render(&ctx3); err != nil {
		t.Fatalf("Render: %v", err)
	}
	clip = ctx3.clips[0]
	if len(clip) != 1 || clip[0] != NewIRect(50, 50, 60, 60) {
		t.Errorf("clip = %v, want only the previous frame's damage", clip)
	}
}

func TestRenderEmptyDamage(t *testing.T) {
	w, _ := newTestWindow(t, WindowConfig{})

	var ctx recordingCtx
	if err := w.Render(&ctx); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if len(ctx.clips) != 1 || len(ctx.clips[0]) != 0 {
		t.Errorf("clips = %v, want a single empty clip set", ctx.clips)
	}
}

func TestInvalidateDuringPreparePaint(t *testing.T) {
	w, h := newTestWindow(t, WindowConfig{})
	w.Connect(w.Handle())

	// Animation pattern: the handler invalidates its next frame from
	// PreparePaint, and that damage lands in the current paint.
	h.onPreparePaint = func() {
		h.handle.InvalidateRect(NewRect(5, 5, 15, 15))
	}

	var ctx recordingCtx
	if err := w.Render(&ctx); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if len(h.painted) != 1 || !h.painted[0].Contains(Point{X: 10, Y: 10}) {
		t.Error("damage added in PreparePaint missed the same frame")
	}
}

func TestReentrantDispatchDropped(t *testing.T) {
	w, h := newTestWindow(t, WindowConfig{})
	w.Connect(w.Handle())

	// Input delivered from inside a paint must be dropped, not recursed.
	h.onPaint = func() {
		w.HandleMotionNotify(Point{X: 1, Y: 1})
	}
	w.Invalidate()
	var ctx recordingCtx
	if err := w.Render(&ctx); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if len(h.mouses) != 0 {
		t.Errorf("reentrant mouse event was delivered: %v", h.mouses)
	}
}

func TestRunTimersDeliversInOrder(t *testing.T) {
	w, h := newTestWindow(t, WindowConfig{})
	now := time.Now()

	second := w.RequestTimer(now.Add(20 * time.Millisecond))
	first := w.RequestTimer(now.Add(10 * time.Millisecond))

	if _, ok := w.NextTimeout(); !ok {
		t.Fatal("expected a pending timeout")
	}

	w.RunTimers(now.Add(time.Second))
	if len(h.timers) != 2 || h.timers[0] != first || h.timers[1] != second {
		t.Errorf("timers = %v, want [%d %d]", h.timers, first, second)
	}

	if _, ok := w.NextTimeout(); ok {
		t.Error("timers should be drained")
	}
}

func TestRunIdleDispatch(t *testing.T) {
	w, h := newTestWindow(t, WindowConfig{})

	ran := false
	idle := w.IdleHandle()
	idle.AddIdleCallback(func(handler any) {
		if handler != h {
			t.Errorf("callback handler = %v, want the window handler", handler)
		}
		ran = true
	})
	idle.AddIdleToken(7)

	if w.RunIdle() {
		t.Error("no redraw was scheduled")
	}
	if !ran {
		t.Error("idle callback did not run")
	}
	if len(h.idles) != 1 || h.idles[0] != 7 {
		t.Errorf("idle tokens = %v", h.idles)
	}
}

func TestScreenSizeChanged(t *testing.T) {
	w, h := newTestWindow(t, WindowConfig{Scale: NewScale(2, 2)})

	w.ScreenSizeChanged(Size{Width: 1600, Height: 1200})
	if w.Size() != (Size{Width: 800, Height: 600}) {
		t.Errorf("size = %v", w.Size())
	}
	if len(h.sizes) != 1 || h.sizes[0] != (Size{Width: 800, Height: 600}) {
		t.Errorf("handler sizes = %v", h.sizes)
	}
}

func TestInputTranslation(t *testing.T) {
	w, h := newTestWindow(t, WindowConfig{Scale: NewScale(2, 2)})

	w.HandleButtonPress(Point{X: 100, Y: 50}, MouseButtonLeft, 0)
	if len(h.mouses) != 1 {
		t.Fatalf("mouses = %v", h.mouses)
	}
	ev := h.mouses[0]
	if ev.Pos != (Point{X: 50, Y: 25}) {
		t.Errorf("pos = %v, want device pixels scaled to DP", ev.Pos)
	}
	if ev.Count != 1 || ev.Button != MouseButtonLeft {
		t.Errorf("event = %+v", ev)
	}

	w.HandleButtonRelease(Point{X: 100, Y: 50}, MouseButtonLeft, 0)
	if h.mouses[1].Count != 0 {
		t.Errorf("release count = %d", h.mouses[1].Count)
	}

	w.HandleKeyPress(KeyStateDown, CodeKeyA, 0)
	if len(h.keyDowns) != 1 {
		t.Fatalf("keyDowns = %v", h.keyDowns)
	}
	key := h.keyDowns[0]
	if key.Key != "a" || key.Code != CodeKeyA || key.Location != LocationStandard {
		t.Errorf("key event = %+v", key)
	}
}

func TestInputModifiers(t *testing.T) {
	w, h := newTestWindow(t, WindowConfig{})

	w.HandleKeyPress(KeyStateDown, CodeKeyA, ModShift)
	if len(h.keyDowns) != 1 {
		t.Fatalf("keyDowns = %v", h.keyDowns)
	}
	key := h.keyDowns[0]
	if key.Mods != ModShift {
		t.Errorf("mods = %v, want ModShift", key.Mods)
	}
	if key.Key != "A" {
		t.Errorf("key = %q, want shifted letter", key.Key)
	}

	w.HandleKeyPress(KeyStateUp, CodeKeyA, ModShift)
	if len(h.keyUps) != 1 || h.keyUps[0].Mods != ModShift {
		t.Errorf("keyUps = %v", h.keyUps)
	}

	w.HandleButtonPress(Point{X: 1, Y: 1}, MouseButtonLeft, ModCtrl|ModAlt)
	w.HandleButtonRelease(Point{X: 1, Y: 1}, MouseButtonLeft, ModCtrl|ModAlt)
	if len(h.mouses) != 2 {
		t.Fatalf("mouses = %v", h.mouses)
	}
	for i, ev := range h.mouses {
		if ev.Mods != ModCtrl|ModAlt {
			t.Errorf("mouses[%d].Mods = %v, want ctrl|alt", i, ev.Mods)
		}
	}
}

func TestDroppedWindowHandle(t *testing.T) {
	w, _ := newTestWindow(t, WindowConfig{})
	closed := 0
	w.onClose = func() { closed++ }

	handle := w.Handle()
	second := w.Handle()

	handle.Close()
	if !w.Dropped() {
		t.Fatal("window should be dropped")
	}
	if closed != 1 {
		t.Fatalf("close callback ran %d times", closed)
	}

	// Every handle to the window goes stale, and nothing panics.
	second.Close()
	if closed != 1 {
		t.Errorf("close callback ran again: %d", closed)
	}
	second.Invalidate()
	second.InvalidateRect(NewRect(0, 0, 1, 1))
	second.RequestAnimFrame()

	if tok := second.RequestTimer(time.Now()); tok != TimerTokenInvalid {
		t.Errorf("RequestTimer on dropped handle = %d, want TimerTokenInvalid", tok)
	}
	if _, ok := second.GetIdleHandle(); ok {
		t.Error("GetIdleHandle on dropped handle should report false")
	}
}

func TestHandleStubsAndSentinels(t *testing.T) {
	w, _ := newTestWindow(t, WindowConfig{})
	handle := w.Handle()

	if err := handle.SetTitle("ignored"); !errors.Is(err, ErrUnimplemented) {
		t.Errorf("SetTitle err = %v", err)
	}
	if _, err := handle.GetScale(); !errors.Is(err, ErrUnimplemented) {
		t.Errorf("GetScale err = %v", err)
	}
	if _, err := handle.FileDialog(FileDialogOpen, FileDialogOptions{}); !errors.Is(err, ErrUnimplemented) {
		t.Errorf("FileDialog err = %v", err)
	}
	if _, ok := handle.OpenFile(FileDialogOptions{}); ok {
		t.Error("OpenFile should report unimplemented")
	}
	if state := handle.GetWindowSizeState(); state != WindowSizeStateRestored {
		t.Errorf("GetWindowSizeState = %v", state)
	}
}

func TestIdleHandleSurvivesDrop(t *testing.T) {
	w, _ := newTestWindow(t, WindowConfig{})
	idle := w.IdleHandle()

	w.Handle().Close()

	// Producers holding an idle handle may still enqueue; the items are
	// simply never drained once the loop stops.
	idle.AddIdleCallback(func(any) {})
	idle.AddIdleToken(1)
}

func TestClipTransformApplied(t *testing.T) {
	h := &recordingHandler{}
	w, err := NewWindow(WindowConfig{
		Handler:       h,
		Size:          Size{Width: 200, Height: 100},
		ClipTransform: transformForTest,
	})
	if err != nil {
		t.Fatalf("NewWindow: %v", err)
	}

	w.InvalidateRect(NewRect(10, 20, 30, 40))
	var ctx recordingCtx
	if err := w.Render(&ctx); err != nil {
		t.Fatalf("Render: %v", err)
	}

	want := NewIRect(100-40, 10, 100-20, 30)
	if got := ctx.clips[0]; len(got) != 1 || got[0] != want {
		t.Errorf("clip = %v, want [%v]", got, want)
	}
}

// transformForTest rotates a damage rect the way a portrait panel mount
// does.
func transformForTest(r IRect, heightPx int) IRect {
	return IRect{L: heightPx - r.B, T: r.L, R: heightPx - r.T, B: r.R}
}
