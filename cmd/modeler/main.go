// Modeler shows the robot arm next to a panel of sliders for its controls.
package main

import (
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/AllenDang/cimgui-go/imgui"
	"go.uber.org/zap"

	"github.com/Faultbox/robotarm/internal/config"
	"github.com/Faultbox/robotarm/internal/controls"
	"github.com/Faultbox/robotarm/internal/engine/framebuffer"
	"github.com/Faultbox/robotarm/internal/engine/renderer"
	"github.com/Faultbox/robotarm/internal/engine/timing"
	"github.com/Faultbox/robotarm/internal/engine/ui"
	"github.com/Faultbox/robotarm/internal/logger"
	"github.com/Faultbox/robotarm/internal/session"
	"github.com/Faultbox/robotarm/internal/snapshot"
)

const panelWidth = 300

func main() {
	runtime.LockOSThread()

	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	app, err := NewApp(cfg)
	if err != nil {
		logger.Error("failed to start modeler", zap.Error(err))
		os.Exit(1)
	}
	defer app.Close()

	app.Run()
	logger.Info("modeler closed normally")
}

// App is the modeler window state.
type App struct {
	cfg      *config.Config
	backend  *ui.Backend
	renderer *renderer.Renderer
	fb       *framebuffer.Framebuffer
	panel    *ui.ControlPanel
	view     *ui.ModelView
	session  *session.Session
	ticker   *timing.Ticker
	shots    *snapshot.Writer
	log      *zap.Logger

	lastFrame   time.Time
	saveSession func()
	gl          releaser

	// Capture happens after the next model render.
	snapshotRequested bool
}

// NewApp creates the window, the GL resources and the session.
func NewApp(cfg *config.Config) (*App, error) {
	a := &App{
		cfg: cfg,
		log: logger.Named("modeler"),
	}

	var err error
	a.backend, err = ui.NewBackend(cfg.Window.Title, cfg.Window.Width, cfg.Window.Height, cfg.Render.Background)
	if err != nil {
		return nil, err
	}
	a.backend.OnRelease(a.gl.release)

	a.renderer, err = renderer.New(renderer.Config{
		Detail:     cfg.Render.TessellationDetail(),
		Sun:        cfg.Render.Sun(),
		Background: cfg.Render.Background,
	})
	if err != nil {
		a.backend.Close()
		return nil, fmt.Errorf("create renderer: %w", err)
	}
	a.gl.add(a.renderer.Close)

	a.fb, err = framebuffer.New(int32(cfg.Window.Width-panelWidth), int32(cfg.Window.Height))
	if err != nil {
		a.backend.Close()
		return nil, fmt.Errorf("create framebuffer: %w", err)
	}
	a.gl.add(a.fb.Destroy)

	a.session = session.New(cfg)
	if cfg.Session.Remember {
		store, err := session.OpenStore(cfg.Session.AppName)
		if err != nil {
			a.log.Warn("session will not be remembered", zap.Error(err))
		}
		a.saveSession = a.session.Remember(store)
	}
	a.panel = ui.NewControlPanel(a.session.Panel)
	a.panel.Animating = a.session.Animating()
	a.view = ui.NewModelView(cfg.Render.Camera())
	a.ticker = timing.NewTicker(cfg.Animation.FPS)
	a.shots = snapshot.NewWriter(cfg.Snapshot.Dir, "modeler", cfg.Snapshot.SnapshotFormat())
	a.panel.SetStatus("Drag to orbit, scroll to zoom")

	a.log.Info("modeler initialized",
		zap.Int("width", cfg.Window.Width),
		zap.Int("height", cfg.Window.Height),
	)
	return a, nil
}

// Run blocks until the window closes.
func (a *App) Run() {
	a.lastFrame = time.Now()
	a.backend.Run(a.frame)
}

func (a *App) frame() {
	now := time.Now()
	dt := now.Sub(a.lastFrame)
	a.lastFrame = now

	if ui.IsKeyPressed(imgui.KeyF12) {
		a.snapshotRequested = true
	}

	x, y, w, h := ui.Viewport()

	// Fixed side-by-side panels
	flags := imgui.WindowFlagsNoMove | imgui.WindowFlagsNoResize | imgui.WindowFlagsNoCollapse

	imgui.SetNextWindowPos(imgui.NewVec2(x, y))
	imgui.SetNextWindowSize(imgui.NewVec2(panelWidth, h))
	if imgui.BeginV("Controls", nil, flags) {
		a.handlePanel(a.panel.Draw())
	}
	imgui.End()

	imgui.SetNextWindowPos(imgui.NewVec2(x+panelWidth, y))
	imgui.SetNextWindowSize(imgui.NewVec2(w-panelWidth, h))
	if imgui.BeginV("Model", nil, flags|imgui.WindowFlagsNoScrollbar) {
		a.drawModel(a.ticker.Due(dt))
	}
	imgui.End()
}

func (a *App) handlePanel(ev ui.PanelEvents) {
	for _, id := range ev.Changed {
		a.log.Debug("control changed",
			zap.Stringer("control", id),
			zap.Float64("value", a.session.Panel.ControlValue(id)),
		)
		if id == controls.BodyVariant {
			a.log.Info("body variant switched", zap.Stringer("variant", a.session.Inputs().BodyVariant))
		}
	}
	if ev.AnimationToggled {
		a.session.SetAnimating(a.panel.Animating)
	}
	if ev.Reset {
		a.session.Handle(controls.ActionReset)
	}
	if ev.Snapshot {
		a.snapshotRequested = true
	}
	if ev.SaveSettings {
		a.saveSettings()
	}
}

func (a *App) saveSettings() {
	if err := a.session.Settings(a.cfg).Save(); err != nil {
		a.log.Error("saving settings failed", zap.Error(err))
		a.panel.SetStatus(fmt.Sprintf("Save failed: %v", err))
		return
	}
	path := config.SavePath()
	a.log.Info("settings saved", zap.String("path", path))
	a.panel.SetStatus("Saved " + path)
}

func (a *App) drawModel(due bool) {
	w, h := a.view.Available()
	a.fb.Resize(w, h)

	cmds := a.session.Frame(due)

	a.fb.Bind()
	a.renderer.Begin(a.view.Camera().ViewMatrix(), a.view.Camera().ProjectionMatrix(a.fb.Aspect()))
	a.renderer.Draw(cmds)
	a.renderer.End()
	a.fb.Unbind()

	if a.snapshotRequested {
		a.snapshotRequested = false
		a.snapshot()
	}

	a.view.Draw(a.fb.ColorTexture(), w, h)
}

func (a *App) snapshot() {
	w, h := a.fb.Size()
	path, err := a.shots.WritePixels(a.fb.ReadPixels(), int(w), int(h))
	if err != nil {
		a.log.Error("snapshot failed", zap.Error(err))
		a.panel.SetStatus(fmt.Sprintf("Snapshot failed: %v", err))
		return
	}
	a.log.Info("snapshot saved", zap.String("path", path))
	a.panel.SetStatus("Saved " + path)
}

// Close saves the session and tears down the window. GL resources are
// released by the backend before it drops the context.
func (a *App) Close() {
	if a.saveSession != nil {
		a.saveSession()
	}
	a.backend.Close()
}

// releaser runs cleanups in reverse order of registration, once.
type releaser struct {
	fns []func()
}

func (r *releaser) add(fn func()) {
	r.fns = append(r.fns, fn)
}

func (r *releaser) release() {
	for i := len(r.fns) - 1; i >= 0; i-- {
		r.fns[i]()
	}
	r.fns = nil
}
