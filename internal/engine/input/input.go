// Package input turns SDL2 events into modeler actions.
package input

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/robotarm/internal/controls"
)

// DefaultBindings maps keys to actions for the keyboard host.
var DefaultBindings = map[sdl.Scancode]controls.Action{
	sdl.SCANCODE_LEFT:     controls.ActionMoveLeft,
	sdl.SCANCODE_RIGHT:    controls.ActionMoveRight,
	sdl.SCANCODE_DOWN:     controls.ActionMoveDown,
	sdl.SCANCODE_UP:       controls.ActionMoveUp,
	sdl.SCANCODE_PAGEDOWN: controls.ActionMoveNear,
	sdl.SCANCODE_PAGEUP:   controls.ActionMoveFar,
	sdl.SCANCODE_Q:        controls.ActionTurnLeft,
	sdl.SCANCODE_E:        controls.ActionTurnRight,
	sdl.SCANCODE_TAB:      controls.ActionToggleVariant,
	sdl.SCANCODE_SPACE:    controls.ActionToggleAnimation,
	sdl.SCANCODE_R:        controls.ActionReset,
	sdl.SCANCODE_F12:      controls.ActionSnapshot,
	sdl.SCANCODE_ESCAPE:   controls.ActionQuit,
}

// Resize is a window size change.
type Resize struct {
	Width, Height int
}

// Input polls SDL events once per frame.
type Input struct {
	bindings map[sdl.Scancode]controls.Action
	actions  []controls.Action
	resize   *Resize
	quit     bool

	dragging     bool
	dragX, dragY float32
	wheel        float32
}

// New creates an input handler with the given key bindings.
func New(bindings map[sdl.Scancode]controls.Action) *Input {
	return &Input{
		bindings: bindings,
		actions:  make([]controls.Action, 0, 8),
	}
}

// Update drains the SDL event queue. It returns true when the window was
// closed or a quit key was pressed.
func (i *Input) Update() bool {
	i.actions = i.actions[:0]
	i.resize = nil
	i.dragX, i.dragY, i.wheel = 0, 0, 0

	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			i.quit = true

		case *sdl.WindowEvent:
			if e.Event == sdl.WINDOWEVENT_RESIZED || e.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
				i.resize = &Resize{Width: int(e.Data1), Height: int(e.Data2)}
			}

		case *sdl.KeyboardEvent:
			// Key repeat drives continuous movement while a key is held.
			if e.Type != sdl.KEYDOWN {
				continue
			}
			a, ok := i.bindings[e.Keysym.Scancode]
			if !ok {
				continue
			}
			if a == controls.ActionQuit {
				i.quit = true
			}
			if e.Repeat != 0 && !repeatable(a) {
				continue
			}
			i.actions = append(i.actions, a)

		case *sdl.MouseButtonEvent:
			if e.Button == sdl.BUTTON_LEFT {
				i.dragging = e.Type == sdl.MOUSEBUTTONDOWN
			}

		case *sdl.MouseMotionEvent:
			if i.dragging {
				i.dragX += float32(e.XRel)
				i.dragY += float32(e.YRel)
			}

		case *sdl.MouseWheelEvent:
			i.wheel += float32(e.Y)
		}
	}

	return i.quit
}

// repeatable reports whether holding the key should keep firing the action.
func repeatable(a controls.Action) bool {
	switch a {
	case controls.ActionToggleVariant, controls.ActionToggleAnimation,
		controls.ActionReset, controls.ActionSnapshot, controls.ActionQuit:
		return false
	}
	return true
}

// Actions returns the actions triggered since the last Update.
func (i *Input) Actions() []controls.Action {
	return i.actions
}

// Resized returns the latest window size change, or nil.
func (i *Input) Resized() *Resize {
	return i.resize
}

// Drag returns the mouse movement with the left button held.
func (i *Input) Drag() (dx, dy float32) {
	return i.dragX, i.dragY
}

// Wheel returns the accumulated scroll wheel delta.
func (i *Input) Wheel() float32 {
	return i.wheel
}
