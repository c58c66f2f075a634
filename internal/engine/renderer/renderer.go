// Package renderer draws figure command lists with OpenGL.
package renderer

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/robotarm/internal/engine/lighting"
	"github.com/Faultbox/robotarm/internal/engine/primitive"
	"github.com/Faultbox/robotarm/internal/engine/shader"
	"github.com/Faultbox/robotarm/internal/figure"
	"github.com/Faultbox/robotarm/internal/logger"
	"github.com/Faultbox/robotarm/pkg/math"
)

const vertexShaderSource = `#version 410 core
layout (location = 0) in vec3 aPosition;
layout (location = 1) in vec3 aNormal;

uniform mat4 uModel;
uniform mat4 uView;
uniform mat4 uProjection;

out vec3 vNormal;

void main() {
    vNormal = mat3(uModel) * aNormal;
    gl_Position = uProjection * uView * uModel * vec4(aPosition, 1.0);
}
`

const fragmentShaderSource = `#version 410 core
in vec3 vNormal;

uniform vec3 uLightDir;
uniform vec3 uAmbient;
uniform vec3 uDiffuse;
uniform float uFill;

out vec4 FragColor;

void main() {
    float diff = max(dot(normalize(vNormal), normalize(uLightDir)), 0.0);
    float k = uFill + (1.0 - uFill) * diff;
    FragColor = vec4(min(uAmbient + uDiffuse * k, vec3(1.0)), 1.0);
}
`

// Config holds renderer configuration.
type Config struct {
	Detail     primitive.Detail
	Sun        lighting.Sun
	Background [3]float32
}

// gpuMesh is a primitive mesh uploaded to the GPU.
type gpuMesh struct {
	vao, vbo, ebo uint32
	indexCount    int32
}

// Renderer is a figure.Canvas that issues OpenGL draw calls into whatever
// framebuffer is bound.
type Renderer struct {
	config  Config
	program *shader.Program
	meshes  *primitive.Cache
	gpu     map[primitive.Key]*gpuMesh
	log     *zap.Logger

	drawCalls int
}

// New creates a renderer. It must be called after the OpenGL context exists.
func New(cfg Config) (*Renderer, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	r := &Renderer{
		config: cfg,
		meshes: primitive.NewCache(cfg.Detail),
		gpu:    make(map[primitive.Key]*gpuMesh),
		log:    logger.Named("renderer"),
	}

	r.log.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)

	var err error
	r.program, err = shader.NewProgram(vertexShaderSource, fragmentShaderSource)
	if err != nil {
		return nil, fmt.Errorf("failed to create shader program: %w", err)
	}
	r.log.Debug("shader program created", zap.Uint32("program", r.program.ID()))

	return r, nil
}

// Resize sets the viewport for the default framebuffer.
func (r *Renderer) Resize(width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
	r.log.Debug("renderer resized", zap.Int("width", width), zap.Int("height", height))
}

// Begin clears the bound framebuffer and loads the camera matrices.
func (r *Renderer) Begin(view, projection math.Mat4) {
	bg := r.config.Background
	gl.ClearColor(bg[0], bg[1], bg[2], 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.Disable(gl.BLEND)
	gl.Disable(gl.CULL_FACE)

	r.program.Use()
	r.program.SetMat4("uView", view)
	r.program.SetMat4("uProjection", projection)
	r.program.SetVec3("uLightDir", r.config.Sun.Direction())
	r.program.SetFloat("uFill", lighting.FillLevel)
	r.program.SetColor("uAmbient", [3]float32{})
	r.program.SetColor("uDiffuse", [3]float32{1, 1, 1})

	r.drawCalls = 0
}

// Draw replays a command list.
func (r *Renderer) Draw(cmds []figure.Command) {
	figure.Replay(cmds, r)
}

// End finishes the frame and returns the number of draw calls issued.
func (r *Renderer) End() int {
	gl.BindVertexArray(0)
	gl.UseProgram(0)
	return r.drawCalls
}

// SetAmbientColor implements figure.Canvas.
func (r *Renderer) SetAmbientColor(c figure.Color) {
	r.program.SetColor("uAmbient", [3]float32{c.R, c.G, c.B})
}

// SetDiffuseColor implements figure.Canvas.
func (r *Renderer) SetDiffuseColor(c figure.Color) {
	r.program.SetColor("uDiffuse", [3]float32{c.R, c.G, c.B})
}

// DrawSphere implements figure.Canvas.
func (r *Renderer) DrawSphere(world math.Mat4, radius float64) {
	r.drawMesh(world, primitive.SphereKey(radius))
}

// DrawBox implements figure.Canvas.
func (r *Renderer) DrawBox(world math.Mat4, dx, dy, dz float64) {
	r.drawMesh(world, primitive.BoxKey(dx, dy, dz))
}

// DrawCylinder implements figure.Canvas.
func (r *Renderer) DrawCylinder(world math.Mat4, height, r1, r2 float64) {
	r.drawMesh(world, primitive.CylinderKey(height, r1, r2))
}

func (r *Renderer) drawMesh(world math.Mat4, key primitive.Key) {
	m := r.upload(key)
	if m.indexCount == 0 {
		return
	}

	r.program.SetMat4("uModel", world)
	gl.BindVertexArray(m.vao)
	gl.DrawElements(gl.TRIANGLES, m.indexCount, gl.UNSIGNED_INT, nil)
	r.drawCalls++
}

// upload returns the GPU copy of a primitive, creating it on first use.
func (r *Renderer) upload(key primitive.Key) *gpuMesh {
	if m, ok := r.gpu[key]; ok {
		return m
	}

	mesh := r.meshes.Get(key)
	m := &gpuMesh{indexCount: int32(len(mesh.Indices))}
	r.gpu[key] = m
	if m.indexCount == 0 {
		return m
	}

	stride := int32(unsafe.Sizeof(primitive.Vertex{}))

	gl.GenVertexArrays(1, &m.vao)
	gl.BindVertexArray(m.vao)

	gl.GenBuffers(1, &m.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(mesh.Vertices)*int(stride), unsafe.Pointer(&mesh.Vertices[0]), gl.STATIC_DRAW)

	gl.GenBuffers(1, &m.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(mesh.Indices)*4, unsafe.Pointer(&mesh.Indices[0]), gl.STATIC_DRAW)

	// Position attribute (location = 0)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(0)

	// Normal attribute (location = 1)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, stride, 12)
	gl.EnableVertexAttribArray(1)

	gl.BindVertexArray(0)

	r.log.Debug("primitive uploaded",
		zap.Stringer("kind", key.Kind),
		zap.Int("triangles", mesh.TriangleCount()),
	)
	return m
}

// Close releases GPU resources.
func (r *Renderer) Close() {
	r.log.Info("closing renderer", zap.Int("meshes", len(r.gpu)))
	for _, m := range r.gpu {
		if m.vao != 0 {
			gl.DeleteVertexArrays(1, &m.vao)
		}
		if m.vbo != 0 {
			gl.DeleteBuffers(1, &m.vbo)
		}
		if m.ebo != 0 {
			gl.DeleteBuffers(1, &m.ebo)
		}
	}
	r.gpu = nil
	if r.program != nil {
		r.program.Delete()
	}
}
