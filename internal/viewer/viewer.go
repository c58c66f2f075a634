// Package viewer implements the keyboard-driven figure viewer: one SDL2
// window, the figure drawn with OpenGL and a fixed-rate animation clock.
package viewer

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/robotarm/internal/config"
	"github.com/Faultbox/robotarm/internal/controls"
	"github.com/Faultbox/robotarm/internal/engine/camera"
	"github.com/Faultbox/robotarm/internal/engine/input"
	"github.com/Faultbox/robotarm/internal/engine/renderer"
	"github.com/Faultbox/robotarm/internal/engine/timing"
	"github.com/Faultbox/robotarm/internal/engine/window"
	"github.com/Faultbox/robotarm/internal/logger"
	"github.com/Faultbox/robotarm/internal/session"
	"github.com/Faultbox/robotarm/internal/snapshot"
)

// Viewer is the interactive window.
type Viewer struct {
	cfg      *config.Config
	running  bool
	window   *window.Window
	renderer *renderer.Renderer
	input    *input.Input
	camera   *camera.OrbitCamera
	session  *session.Session
	ticker   *timing.Ticker
	shots    *snapshot.Writer
	log      *zap.Logger

	width, height   int
	pendingSnapshot bool
	saveSession     func()
}

// New opens the window and prepares the figure.
func New(cfg *config.Config) (*Viewer, error) {
	v := &Viewer{
		cfg: cfg,
		log: logger.Named("viewer"),
	}
	v.log.Info("initializing viewer",
		zap.String("title", cfg.Window.Title),
		zap.Int("width", cfg.Window.Width),
		zap.Int("height", cfg.Window.Height),
	)

	var err error
	v.window, err = window.New(window.Config{
		Title:      cfg.Window.Title,
		Width:      cfg.Window.Width,
		Height:     cfg.Window.Height,
		Fullscreen: cfg.Window.Fullscreen,
		VSync:      cfg.Window.VSync,
		Samples:    cfg.Window.Samples,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// The renderer needs the GL context the window created.
	v.renderer, err = renderer.New(renderer.Config{
		Detail:     cfg.Render.TessellationDetail(),
		Sun:        cfg.Render.Sun(),
		Background: cfg.Render.Background,
	})
	if err != nil {
		v.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	v.width, v.height = v.window.DrawableSize()
	v.renderer.Resize(v.width, v.height)

	v.input = input.New(input.DefaultBindings)
	v.camera = cfg.Render.Camera()
	v.session = session.New(cfg)
	if cfg.Session.Remember {
		v.saveSession = v.session.Remember(openStore(cfg, v.log))
	}
	v.ticker = timing.NewTicker(cfg.Animation.FPS)
	v.shots = snapshot.NewWriter(cfg.Snapshot.Dir, "robotarm", cfg.Snapshot.SnapshotFormat())

	v.window.SetTitle(v.title())
	v.log.Info("viewer initialized", zap.Duration("tick", v.ticker.Interval()))
	return v, nil
}

// Run drives the frame loop until the window closes or Quit is pressed.
func (v *Viewer) Run() error {
	v.running = true

	lastTime := time.Now()
	var fps timing.FPSCounter

	v.log.Info("starting frame loop")

	for v.running {
		now := time.Now()
		dt := now.Sub(lastTime)
		lastTime = now

		// 1. Input
		if v.input.Update() {
			v.running = false
			break
		}
		v.handleInput()
		if !v.running {
			break
		}

		// 2. Draw
		v.render(v.ticker.Due(dt))

		// 3. Snapshots read the back buffer, so they run before the swap.
		if v.pendingSnapshot {
			v.pendingSnapshot = false
			v.snapshot()
		}
		v.window.SwapBuffers()

		if fps.Frame(dt) {
			v.log.Debug("fps", zap.Int("count", fps.FPS()), zap.Duration("dt", dt))
		}
	}

	return nil
}

func (v *Viewer) handleInput() {
	if v.input.Resized() != nil {
		v.width, v.height = v.window.DrawableSize()
		v.renderer.Resize(v.width, v.height)
	}

	if dx, dy := v.input.Drag(); dx != 0 || dy != 0 {
		v.camera.HandleDrag(dx, dy)
	}
	if w := v.input.Wheel(); w != 0 {
		v.camera.HandleZoom(w)
	}

	for _, a := range v.input.Actions() {
		v.log.Debug("action", zap.Stringer("action", a))
		out := v.session.Handle(a)
		if a == controls.ActionToggleVariant || a == controls.ActionToggleAnimation || a == controls.ActionReset {
			v.window.SetTitle(v.title())
		}
		if out.Snapshot {
			v.pendingSnapshot = true
		}
		if out.Quit {
			v.running = false
			return
		}
	}
}

// title shows the body variant and whether the figure is animating.
func (v *Viewer) title() string {
	state := "paused"
	if v.session.Animating() {
		state = "animating"
	}
	return fmt.Sprintf("%s [%s, %s]", v.cfg.Window.Title, v.session.Inputs().BodyVariant, state)
}

func (v *Viewer) render(due bool) {
	if v.width <= 0 || v.height <= 0 {
		return
	}
	cmds := v.session.Frame(due)

	aspect := float32(v.width) / float32(v.height)
	v.renderer.Begin(v.camera.ViewMatrix(), v.camera.ProjectionMatrix(aspect))
	v.renderer.Draw(cmds)
	v.renderer.End()
}

func (v *Viewer) snapshot() {
	pixels := v.window.ReadPixels(v.width, v.height)
	path, err := v.shots.WritePixels(pixels, v.width, v.height)
	if err != nil {
		v.log.Error("snapshot failed", zap.Error(err))
		return
	}
	v.log.Info("snapshot saved", zap.String("path", path))
}

// Close releases GL and SDL resources.
func (v *Viewer) Close() {
	v.log.Info("closing viewer")

	if v.saveSession != nil {
		v.saveSession()
	}
	if v.renderer != nil {
		v.renderer.Close()
	}
	if v.window != nil {
		v.window.Close()
	}
}

// openStore opens the session store, or returns nil so the session is
// neither restored nor saved.
func openStore(cfg *config.Config, log *zap.Logger) *session.Store {
	store, err := session.OpenStore(cfg.Session.AppName)
	if err != nil {
		log.Warn("session will not be remembered", zap.Error(err))
		return nil
	}
	return store
}
