/*
Package shell is the platform shell beneath a GUI toolkit: it owns the
native window, the event loop, input translation, damage tracking and
repaint scheduling, and hands everything to toolkit code through a
handler interface.

# Overview

The package splits into a shared window pump and per-platform backends.
The pump (Window) accumulates damage, runs timers and idle work, and
drives the handler's paint cycle. A backend contributes the Application
event loop, a WindowBuilder and a PaintCtx render target:

	backend/opengl    desktop windows via GLFW with an OpenGL surface
	backend/kms       direct DRM/KMS scanout, no display server

# Quick Start

	func init() { runtime.LockOSThread() }

	app, err := opengl.New()
	if err != nil { ... }

	builder := opengl.NewBuilder(app)
	builder.SetHandler(myHandler)
	builder.SetSize(shell.Size{Width: 800, Height: 600})
	handle, err := builder.Build()
	if err != nil { ... }
	handle.Show()

	app.Run(nil)

The handler implements WinHandler. After Build it receives Connect,
Scale and Size, in that order, then input, timer, idle and paint
callbacks from the event loop.

# Coordinates

All handler-facing coordinates are display points (DP); device pixels
appear only at the render boundary. A window's Scale converts between
the two. Invalidated rects are expanded outward to the device pixel
grid so sub-pixel edges never leave seams.

# Damage and painting

InvalidateRect unions damage into the window's region and schedules a
frame. Each paint clips to the union of the current damage and the
previous frame's damage, which keeps a double-buffered swapchain
consistent without full repaints. A handler may invalidate from inside
PreparePaint to drive animation; that damage lands in the same frame.

# Threading

A window is affine to the thread running the event loop. The only
cross-thread entry point is IdleHandle: any goroutine may enqueue idle
callbacks or tokens, and the enqueue wakes the loop. WindowHandle
operations on a closed window are logged no-ops or return documented
sentinels; they never panic.
*/
package shell
