package ui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/Faultbox/robotarm/internal/controls"
)

// PanelEvents reports what the user did in the control panel this frame.
type PanelEvents struct {
	Changed          []controls.ID
	AnimationToggled bool
	Reset            bool
	Snapshot         bool
	SaveSettings     bool
}

// ControlPanel draws one slider per declared control over a controls.Panel.
type ControlPanel struct {
	panel     *controls.Panel
	Animating bool
	status    string
}

// NewControlPanel creates a panel view.
func NewControlPanel(p *controls.Panel) *ControlPanel {
	return &ControlPanel{panel: p}
}

// SetStatus sets the line shown under the buttons.
func (c *ControlPanel) SetStatus(s string) {
	c.status = s
}

// Draw renders the panel contents into the current window.
func (c *ControlPanel) Draw() PanelEvents {
	var ev PanelEvents

	for _, d := range controls.Declarations {
		if c.slider(d) {
			ev.Changed = append(ev.Changed, d.ID)
		}
	}

	imgui.Separator()
	if imgui.Checkbox("Animate", &c.Animating) {
		ev.AnimationToggled = true
	}
	if imgui.ButtonV("Reset", imgui.NewVec2(-1, 0)) {
		ev.Reset = true
	}
	if imgui.ButtonV("Snapshot (F12)", imgui.NewVec2(-1, 0)) {
		ev.Snapshot = true
	}
	if imgui.ButtonV("Save settings", imgui.NewVec2(-1, 0)) {
		ev.SaveSettings = true
	}

	if c.status != "" {
		imgui.Separator()
		imgui.TextWrapped(c.status)
	}
	return ev
}

func (c *ControlPanel) slider(d controls.Declaration) bool {
	if d.Step >= 1 && d.Max-d.Min <= 1 {
		v := int32(c.panel.ControlValue(d.ID))
		if imgui.SliderIntV(d.Label, &v, int32(d.Min), int32(d.Max), "%d", imgui.SliderFlagsNone) {
			c.panel.Set(d.ID, float64(v))
			return true
		}
		return false
	}

	v := float32(c.panel.ControlValue(d.ID))
	if imgui.SliderFloatV(d.Label, &v, float32(d.Min), float32(d.Max), sliderFormat(d.Step), imgui.SliderFlagsNone) {
		c.panel.Set(d.ID, float64(v))
		return true
	}
	return false
}

// sliderFormat shows as many decimals as the step needs.
func sliderFormat(step float64) string {
	decimals := 0
	for step > 0 && step < 1 && decimals < 4 {
		step *= 10
		decimals++
	}
	return fmt.Sprintf("%%.%df", decimals)
}
