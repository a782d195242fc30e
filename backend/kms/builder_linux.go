//go:build linux

package kms

import (
	"github.com/go-theft-auto/shell"
)

const (
	defaultWidth  = 1920
	defaultHeight = 1080
)

// Builder accumulates window configuration for the direct-rendering
// backend. The size is provisional; once the panel mode is known the
// window is resized to match it. Decoration setters have nothing to
// decorate and are retained for API shape.
type Builder struct {
	app     *App
	handler shell.WinHandler
	size    shell.Size
	scale   shell.Scale
}

var _ shell.WindowBuilder = (*Builder)(nil)

// NewBuilder creates a window builder for the application.
func NewBuilder(app *App) *Builder {
	return &Builder{
		app:   app,
		size:  shell.Size{Width: defaultWidth, Height: defaultHeight},
		scale: shell.DefaultScale,
	}
}

func (b *Builder) SetHandler(h shell.WinHandler) {
	b.handler = h
}

func (b *Builder) SetTitle(title string) {}

func (b *Builder) SetSize(size shell.Size) {
	if !size.IsEmpty() {
		b.size = size
	}
}

func (b *Builder) SetMinSize(size shell.Size) {
	shell.Logger().Warn("unimplemented", "op", "Builder.SetMinSize")
}

func (b *Builder) Resizable(resizable bool) {
	shell.Logger().Warn("unimplemented", "op", "Builder.Resizable")
}

func (b *Builder) ShowTitlebar(show bool) {
	shell.Logger().Warn("unimplemented", "op", "Builder.ShowTitlebar")
}

func (b *Builder) SetPosition(pos shell.Point) {
	shell.Logger().Warn("unimplemented", "op", "Builder.SetPosition")
}

func (b *Builder) SetLevel(level shell.WindowLevel) {
	shell.Logger().Warn("unimplemented", "op", "Builder.SetLevel")
}

func (b *Builder) SetWindowSizeState(state shell.WindowSizeState) {
	shell.Logger().Warn("unimplemented", "op", "Builder.SetWindowSizeState")
}

func (b *Builder) SetMenu(menu *shell.Menu) {
	shell.Logger().Warn("unimplemented", "op", "Builder.SetMenu")
}

// Build constructs the window, connects the handler and registers the
// window with the application.
func (b *Builder) Build() (*shell.WindowHandle, error) {
	w, err := shell.NewWindow(shell.WindowConfig{
		Handler:       b.handler,
		Size:          b.size,
		Scale:         b.scale,
		ClipTransform: b.app.clipTransform,
	})
	if err != nil {
		return nil, err
	}

	handle := w.Handle()
	w.Connect(handle)

	if err := b.app.AddWindow(w); err != nil {
		return nil, err
	}
	return handle, nil
}
