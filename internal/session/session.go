// Package session holds the state both interactive hosts share: the control
// panel, the figure and whether it is animating.
package session

import (
	"go.uber.org/zap"

	"github.com/Faultbox/robotarm/internal/config"
	"github.com/Faultbox/robotarm/internal/controls"
	"github.com/Faultbox/robotarm/internal/figure"
	"github.com/Faultbox/robotarm/internal/logger"
)

// Outcome tells the host what an action asks of it beyond the session.
type Outcome struct {
	Snapshot bool
	Quit     bool
}

// Session is one interactive viewing session.
type Session struct {
	Panel  *controls.Panel
	Figure *figure.Figure

	initial   config.ControlsConfig
	animating bool
	log       *zap.Logger
}

// New builds a session with the panel loaded from cfg.
func New(cfg *config.Config) *Session {
	s := &Session{
		Panel:     controls.NewPanel(),
		Figure:    figure.New(cfg.Figure.Options()),
		initial:   cfg.Controls,
		animating: cfg.Animation.Enabled,
		log:       logger.Named("session"),
	}
	s.initial.Apply(s.Panel)
	return s
}

// Animating reports whether frames advance the animation.
func (s *Session) Animating() bool {
	return s.animating
}

// SetAnimating switches the animation on or off.
func (s *Session) SetAnimating(on bool) {
	if on == s.animating {
		return
	}
	s.animating = on
	s.log.Info("animation toggled", zap.Bool("animating", on))
}

// Reset restores the configured control values and the initial pose.
func (s *Session) Reset() {
	s.initial.Apply(s.Panel)
	s.Figure.Animation().Reset()
	s.log.Info("session reset")
}

// Capture returns the state a remembered session restores.
func (s *Session) Capture() State {
	return State{
		Controls:  config.ControlsFromPanel(s.Panel),
		Animating: s.animating,
	}
}

// Restore loads a captured state. Reset still returns to the configured
// controls.
func (s *Session) Restore(st State) {
	st.Controls.Apply(s.Panel)
	s.animating = st.Animating
	s.log.Info("session restored",
		zap.Stringer("variant", s.Inputs().BodyVariant),
		zap.Bool("animating", st.Animating),
	)
}

// Settings returns a copy of base whose starting controls and animation
// flag are the session's current ones.
func (s *Session) Settings(base *config.Config) *config.Config {
	cfg := *base
	cfg.Controls = config.ControlsFromPanel(s.Panel)
	cfg.Animation.Enabled = s.animating
	return &cfg
}

// Remember restores the last saved state from store. The returned
// function saves the final state and is meant to be deferred by the host.
// Store failures are logged, never fatal.
func (s *Session) Remember(store *Store) (save func()) {
	st, ok, err := store.Load()
	switch {
	case err != nil:
		s.log.Warn("could not restore session", zap.Error(err))
	case ok:
		s.Restore(st)
	}

	return func() {
		if err := store.Save(s.Capture()); err != nil {
			s.log.Warn("could not save session", zap.Error(err))
		}
	}
}

// Inputs snapshots the panel.
func (s *Session) Inputs() figure.ControlInputs {
	return figure.ReadControls(s.Panel)
}

// Handle performs an action. Panel actions change the controls; the
// returned Outcome carries the actions only the host can perform.
func (s *Session) Handle(a controls.Action) Outcome {
	before := s.Inputs().BodyVariant
	if s.Panel.Apply(a) {
		if after := s.Inputs().BodyVariant; after != before {
			s.log.Info("body variant switched", zap.Stringer("variant", after))
		}
		return Outcome{}
	}

	switch a {
	case controls.ActionToggleAnimation:
		s.SetAnimating(!s.animating)
	case controls.ActionReset:
		s.Reset()
	case controls.ActionSnapshot:
		return Outcome{Snapshot: true}
	case controls.ActionQuit:
		return Outcome{Quit: true}
	}
	return Outcome{}
}

// Frame composes the next frame. due reports whether an animation tick
// fell in this frame; the animation then advances once while animating.
func (s *Session) Frame(due bool) []figure.Command {
	return s.Figure.Render(s.Inputs(), s.animating && due)
}
