package opengl

import (
	"github.com/go-theft-auto/shell"
)

// Builder accumulates window configuration for the desktop backend. The
// handler, title and size take effect; the remaining setters are kept
// for API shape and log when they would matter.
type Builder struct {
	app     *App
	handler shell.WinHandler
	title   string
	size    shell.Size
	menu    *shell.Menu
}

var _ shell.WindowBuilder = (*Builder)(nil)

// NewBuilder creates a window builder for the application.
func NewBuilder(app *App) *Builder {
	return &Builder{
		app:  app,
		size: shell.Size{Width: defaultWidth, Height: defaultHeight},
	}
}

func (b *Builder) SetHandler(h shell.WinHandler) {
	b.handler = h
}

func (b *Builder) SetTitle(title string) {
	b.title = title
}

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
	b.menu = menu
}

// Build constructs the window, connects the handler and registers the
// window with the application.
func (b *Builder) Build() (*shell.WindowHandle, error) {
	w, err := shell.NewWindow(shell.WindowConfig{
		Handler: b.handler,
		Size:    b.size,
		Scale:   shell.DefaultScale,
		Wake:    b.app.wake,
	})
	if err != nil {
		return nil, err
	}

	handle := w.Handle()
	w.Connect(handle)

	if err := b.app.AddWindow(w); err != nil {
		return nil, err
	}
	b.app.title = b.title
	return handle, nil
}
