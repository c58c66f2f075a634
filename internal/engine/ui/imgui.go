// Package ui provides the ImGui control panel and model window of the
// modeler.
package ui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/backend"
	"github.com/AllenDang/cimgui-go/backend/sdlbackend"
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/go-gl/gl/v4.1-core/gl"
)

// Backend is the SDL window the ImGui frames are drawn into.
type Backend struct {
	sdl    backend.Backend[sdlbackend.SDLWindowFlags]
	closed bool
}

// NewBackend opens the window. bg is the color behind all ImGui windows.
// GL is initialized here because the backend owns the context.
func NewBackend(title string, width, height int, bg [3]float32) (*Backend, error) {
	sdl, err := backend.CreateBackend(sdlbackend.NewSDLBackend())
	if err != nil {
		return nil, fmt.Errorf("create backend: %w", err)
	}
	sdl.SetBgColor(imgui.NewVec4(bg[0], bg[1], bg[2], 1))
	sdl.CreateWindow(title, width, height)

	b := &Backend{sdl: sdl}
	if err := gl.Init(); err != nil {
		b.Close()
		return nil, fmt.Errorf("init opengl: %w", err)
	}
	return b, nil
}

// OnRelease registers fn to run while the GL context is still current,
// just before the backend destroys it.
func (b *Backend) OnRelease(fn func()) {
	b.sdl.SetBeforeDestroyContextHook(fn)
}

// Run calls frame once per displayed frame until the window closes. The
// window and its GL context are gone when Run returns.
func (b *Backend) Run(frame func()) {
	if b.closed {
		return
	}
	b.sdl.Run(frame)
	b.closed = true
}

// Close tears down a window that never ran. It is a no-op after Run.
func (b *Backend) Close() {
	if b.closed {
		return
	}
	b.sdl.SetShouldClose(true)
	b.Run(func() { b.sdl.SetShouldClose(true) })
}

// Viewport returns the work area of the main viewport, excluding any menu
// bar.
func Viewport() (x, y, width, height float32) {
	vp := imgui.MainViewport()
	pos, size := vp.WorkPos(), vp.WorkSize()
	return pos.X, pos.Y, size.X, size.Y
}

// IsKeyPressed reports a press of key without modifiers this frame.
func IsKeyPressed(key imgui.Key) bool {
	return imgui.IsKeyChordPressed(imgui.KeyChord(key))
}
