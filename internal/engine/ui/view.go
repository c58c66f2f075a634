package ui

import (
	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/Faultbox/robotarm/internal/engine/camera"
)

// ModelView shows an offscreen render and turns mouse input over it into
// orbit camera moves.
type ModelView struct {
	cam          *camera.OrbitCamera
	lastMousePos imgui.Vec2
}

// NewModelView creates a view driving cam.
func NewModelView(cam *camera.OrbitCamera) *ModelView {
	return &ModelView{cam: cam}
}

// Available returns the space left in the current window, which the caller
// sizes its framebuffer to.
func (v *ModelView) Available() (width, height int32) {
	avail := imgui.ContentRegionAvail()
	w, h := int32(avail.X), int32(avail.Y)
	return max(w, 1), max(h, 1)
}

// Draw shows the texture at the given size and handles drag and zoom.
func (v *ModelView) Draw(textureID uint32, width, height int32) {
	// GL textures are bottom-up, so flip V.
	texRef := imgui.NewTextureRefTextureID(imgui.TextureID(textureID))
	imgui.ImageWithBgV(
		*texRef,
		imgui.NewVec2(float32(width), float32(height)),
		imgui.NewVec2(0, 1),
		imgui.NewVec2(1, 0),
		imgui.NewVec4(0, 0, 0, 1),
		imgui.NewVec4(1, 1, 1, 1),
	)

	if !imgui.IsItemHovered() {
		return
	}

	mousePos := imgui.MousePos()
	if imgui.IsMouseDragging(imgui.MouseButtonLeft) {
		v.cam.HandleDrag(mousePos.X-v.lastMousePos.X, mousePos.Y-v.lastMousePos.Y)
	}
	v.lastMousePos = mousePos

	if wheel := imgui.CurrentIO().MouseWheel(); wheel != 0 {
		v.cam.HandleZoom(wheel)
	}
}

// Camera returns the camera the view drives.
func (v *ModelView) Camera() *camera.OrbitCamera {
	return v.cam
}
