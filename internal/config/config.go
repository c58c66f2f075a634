// Package config handles modeler configuration loading and management.
package config

import (
	"errors"
	"fmt"

	"github.com/Faultbox/robotarm/internal/controls"
	"github.com/Faultbox/robotarm/internal/engine/camera"
	"github.com/Faultbox/robotarm/internal/engine/lighting"
	"github.com/Faultbox/robotarm/internal/engine/primitive"
	"github.com/Faultbox/robotarm/internal/figure"
	"github.com/Faultbox/robotarm/internal/snapshot"
	gomath "github.com/Faultbox/robotarm/pkg/math"
)

// Config holds all modeler settings.
type Config struct {
	Window    WindowConfig    `yaml:"window"`
	Controls  ControlsConfig  `yaml:"controls"`
	Animation AnimationConfig `yaml:"animation"`
	Figure    FigureConfig    `yaml:"figure"`
	Render    RenderConfig    `yaml:"render"`
	Snapshot  SnapshotConfig  `yaml:"snapshot"`
	Session   SessionConfig   `yaml:"session"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// WindowConfig holds display settings.
type WindowConfig struct {
	Title      string `yaml:"title"`
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Fullscreen bool   `yaml:"fullscreen"`
	VSync      bool   `yaml:"vsync"`
	Samples    int    `yaml:"samples"` // MSAA samples, 0 disables
}

// ControlsConfig holds the control values the panel starts with.
type ControlsConfig struct {
	PositionX   float64 `yaml:"position_x"`
	PositionY   float64 `yaml:"position_y"`
	PositionZ   float64 `yaml:"position_z"`
	Turn        float64 `yaml:"turn"`
	BodyVariant int     `yaml:"body_variant"`
}

// SessionConfig controls whether hosts persist the last session.
type SessionConfig struct {
	Remember bool   `yaml:"remember"` // restore controls and animation on start
	AppName  string `yaml:"app_name"` // storage namespace
}

// AnimationConfig holds idle animation settings.
type AnimationConfig struct {
	Enabled bool `yaml:"enabled"` // start animating
	FPS     int  `yaml:"fps"`     // animation ticks per second
}

// FigureConfig holds figure composition options.
type FigureConfig struct {
	AnimateBoxyArms bool `yaml:"animate_boxy_arms"`
}

// RenderConfig holds rendering settings shared by the GPU and software
// renderers. Angles are in degrees.
type RenderConfig struct {
	Detail         string     `yaml:"detail"` // low, medium, high
	Background     [3]float32 `yaml:"background"`
	LightAzimuth   float64    `yaml:"light_azimuth"`
	LightElevation float64    `yaml:"light_elevation"`
	CameraDistance float32    `yaml:"camera_distance"`
	CameraPitch    float32    `yaml:"camera_pitch"`
	CameraYaw      float32    `yaml:"camera_yaw"`
}

// SnapshotConfig holds snapshot output settings.
type SnapshotConfig struct {
	Dir         string `yaml:"dir"`
	Format      string `yaml:"format"` // png, webp or tga
	Size        int    `yaml:"size"`
	Supersample int    `yaml:"supersample"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Title:      "Robot Arm",
			Width:      1280,
			Height:     720,
			Fullscreen: false,
			VSync:      true,
			Samples:    4,
		},
		Animation: AnimationConfig{
			Enabled: false,
			FPS:     30,
		},
		Render: RenderConfig{
			Detail:         "medium",
			Background:     [3]float32{0.15, 0.15, 0.18},
			LightAzimuth:   lighting.DefaultSun.Azimuth,
			LightElevation: lighting.DefaultSun.Elevation,
			CameraDistance: 16,
			CameraPitch:    20,
			CameraYaw:      35,
		},
		Snapshot: SnapshotConfig{
			Dir:         "snapshots",
			Format:      string(snapshot.FormatPNG),
			Size:        512,
			Supersample: 2,
		},
		Session: SessionConfig{
			Remember: false,
			AppName:  "robotarm",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Validate reports every setting that is out of range.
func (c *Config) Validate() error {
	var errs []error

	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window: size %dx%d must be positive", c.Window.Width, c.Window.Height))
	}
	if c.Window.Samples < 0 || c.Window.Samples > 16 {
		errs = append(errs, fmt.Errorf("window: samples %d outside [0, 16]", c.Window.Samples))
	}

	for id, v := range c.Controls.values() {
		d := controls.Declarations[id]
		if !d.Contains(v) {
			errs = append(errs, fmt.Errorf("controls: %s = %g outside [%g, %g]", d.Key, v, d.Min, d.Max))
		}
	}

	if c.Animation.FPS < 1 || c.Animation.FPS > 240 {
		errs = append(errs, fmt.Errorf("animation: fps %d outside [1, 240]", c.Animation.FPS))
	}

	if _, err := primitive.ParseDetail(c.Render.Detail); err != nil {
		errs = append(errs, fmt.Errorf("render: %w", err))
	}
	if c.Render.CameraDistance <= 0 {
		errs = append(errs, fmt.Errorf("render: camera_distance %g must be positive", c.Render.CameraDistance))
	}

	if _, err := snapshot.ParseFormat(c.Snapshot.Format); err != nil {
		errs = append(errs, fmt.Errorf("snapshot: %w", err))
	}
	if c.Snapshot.Size <= 0 {
		errs = append(errs, fmt.Errorf("snapshot: size %d must be positive", c.Snapshot.Size))
	}
	if c.Snapshot.Supersample < 1 || c.Snapshot.Supersample > 8 {
		errs = append(errs, fmt.Errorf("snapshot: supersample %d outside [1, 8]", c.Snapshot.Supersample))
	}

	if c.Session.Remember && c.Session.AppName == "" {
		errs = append(errs, errors.New("session: app_name is required when remember is set"))
	}

	return errors.Join(errs...)
}

func (c ControlsConfig) values() [controls.Count]float64 {
	return [controls.Count]float64{
		controls.PositionX:   c.PositionX,
		controls.PositionY:   c.PositionY,
		controls.PositionZ:   c.PositionZ,
		controls.Turn:        c.Turn,
		controls.BodyVariant: float64(c.BodyVariant),
	}
}

// ControlsFromPanel captures the panel's current values.
func ControlsFromPanel(p *controls.Panel) ControlsConfig {
	v := p.Values()
	return ControlsConfig{
		PositionX:   v[controls.PositionX],
		PositionY:   v[controls.PositionY],
		PositionZ:   v[controls.PositionZ],
		Turn:        v[controls.Turn],
		BodyVariant: int(v[controls.BodyVariant]),
	}
}

// Apply resets the panel and loads the configured starting values.
func (c ControlsConfig) Apply(p *controls.Panel) {
	p.Reset()
	for id, v := range c.values() {
		p.Set(controls.ID(id), v)
	}
}

// Options returns the figure composition options.
func (c FigureConfig) Options() figure.Options {
	return figure.Options{AnimateBoxyArms: c.AnimateBoxyArms}
}

// Sun returns the configured light.
func (c RenderConfig) Sun() lighting.Sun {
	return lighting.Sun{Azimuth: c.LightAzimuth, Elevation: c.LightElevation}
}

// Camera returns an orbit camera placed at the configured distance and
// angles, looking at the origin.
func (c RenderConfig) Camera() *camera.OrbitCamera {
	cam := camera.NewOrbitCamera()
	cam.Distance = c.CameraDistance
	cam.RotationX = float32(gomath.Radians(float64(c.CameraPitch)))
	cam.RotationY = float32(gomath.Radians(float64(c.CameraYaw)))
	return cam
}

// TessellationDetail returns the parsed detail level, falling back to
// medium for unknown names.
func (c RenderConfig) TessellationDetail() primitive.Detail {
	d, err := primitive.ParseDetail(c.Detail)
	if err != nil {
		return primitive.DetailMedium
	}
	return d
}

// SnapshotFormat returns the parsed format, falling back to PNG.
func (c SnapshotConfig) SnapshotFormat() snapshot.Format {
	f, err := snapshot.ParseFormat(c.Format)
	if err != nil {
		return snapshot.FormatPNG
	}
	return f
}
