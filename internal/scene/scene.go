package scene

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"mesh-lab/internal/primitives"
	"mesh-lab/internal/samples"
)

const (
	gridExtent     = 50
	gridMinorStep  = 1
	gridMajorStep  = 10
	gridMinorAlpha = 50
	gridMajorAlpha = 120
	axisLineAlpha  = 220
)

// Scene holds a 3D camera, the active sample and the frame counter that drives its animation.
// Update runs camera logic (free camera) and advances the frame; Draw renders between
// BeginMode3D and EndMode3D. Based on raylib examples/core/core_3d_camera_free.
type Scene struct {
	Camera      rl.Camera3D
	GridVisible bool
	Paused      bool
	sample      samples.Sample
	frame       int
	meshes      *primitives.Registry
	cursorDone  bool
}

// New returns a scene drawing meshes from reg, showing the given sample.
// Grid is visible by default.
func New(reg *primitives.Registry, sample samples.Sample) *Scene {
	s := &Scene{meshes: reg, GridVisible: true}
	s.SetSample(sample)
	return s
}

// SetSample switches to sample and resets the camera to its eye position, looking at the origin.
// The frame counter restarts at 0.
func (s *Scene) SetSample(sample samples.Sample) {
	s.sample = sample
	s.frame = 0
	s.Camera.Position = rl.NewVector3(sample.Eye[0], sample.Eye[1], sample.Eye[2])
	s.Camera.Target = rl.NewVector3(0, 0, 0)
	s.Camera.Up = rl.NewVector3(0, 1, 0)
	s.Camera.Fovy = sample.Fovy
	if s.Camera.Fovy <= 0 {
		s.Camera.Fovy = 45
	}
	s.Camera.Projection = rl.CameraPerspective
}

// Sample returns the active sample.
func (s *Scene) Sample() samples.Sample {
	return s.sample
}

// Frame returns the animation frame counter.
func (s *Scene) Frame() int {
	return s.frame
}

// SetGridVisible sets whether the editor grid is drawn.
func (s *Scene) SetGridVisible(visible bool) {
	s.GridVisible = visible
}

// ClearColor is the sample's background.
func (s *Scene) ClearColor() rl.Color {
	c := s.sample.Clear
	return rl.ColorFromNormalized(rl.NewVector4(c[0], c[1], c[2], c[3]))
}

// Update runs once per frame. When moveCamera is true it uses raylib UpdateCamera with
// CameraFree so the user can move the camera with mouse and keyboard; the cursor is
// captured the first time. The animation advances unless Paused.
func (s *Scene) Update(moveCamera bool) {
	if moveCamera {
		if !s.cursorDone {
			rl.DisableCursor()
			s.cursorDone = true
		}
		rl.UpdateCamera(&s.Camera, rl.CameraFree)
	}
	if !s.Paused {
		s.frame = (s.frame + 1) % 360
	}
}

// Draw renders the sample's objects and, when GridVisible is true, a Unity-style grid on the
// XZ plane (Y=0). Call after ClearBackground and before 2D overlay (e.g. terminal).
func (s *Scene) Draw() {
	light := primitives.Light{Vec: s.sample.Light, Point: s.sample.Lighting == samples.Point, Ambient: s.sample.Ambient}
	pos := s.Camera.Position
	s.meshes.SetView([3]float32{pos.X, pos.Y, pos.Z}, light)

	rl.BeginMode3D(s.Camera)
	if s.GridVisible {
		drawEditorGrid()
	}
	for _, pose := range s.sample.Poses(s.frame) {
		s.meshes.Draw(pose.Preset, pose, s.sample.Lighting)
	}
	rl.EndMode3D()
}

// Stats sums vertex and triangle counts over the sample's objects, counting each instance.
func (s *Scene) Stats() (vertices, triangles int) {
	for _, o := range s.sample.Objects {
		v, t := s.meshes.Stats(o.Preset)
		vertices += v
		triangles += t
	}
	return vertices, triangles
}

// drawEditorGrid draws an infinite-style grid on the XZ plane with major/minor lines and axis lines.
// Reuses start/end vectors to avoid per-frame allocations in the hot loop.
func drawEditorGrid() {
	minor := rl.NewColor(128, 128, 128, gridMinorAlpha)
	major := rl.NewColor(160, 160, 160, gridMajorAlpha)
	axisX := rl.NewColor(220, 80, 80, axisLineAlpha)
	axisY := rl.NewColor(80, 220, 80, axisLineAlpha)
	axisZ := rl.NewColor(80, 80, 220, axisLineAlpha)

	var start, end rl.Vector3
	for x := -gridExtent; x <= gridExtent; x += gridMinorStep {
		c := major
		if x%gridMajorStep != 0 {
			c = minor
		}
		start.X, start.Y, start.Z = float32(x), 0, float32(-gridExtent)
		end.X, end.Y, end.Z = float32(x), 0, float32(gridExtent)
		rl.DrawLine3D(start, end, c)
	}
	for z := -gridExtent; z <= gridExtent; z += gridMinorStep {
		c := major
		if z%gridMajorStep != 0 {
			c = minor
		}
		start.X, start.Y, start.Z = float32(-gridExtent), 0, float32(z)
		end.X, end.Y, end.Z = float32(gridExtent), 0, float32(z)
		rl.DrawLine3D(start, end, c)
	}

	// X=red, Y=green, Z=blue
	start.X, start.Y, start.Z = float32(-gridExtent), 0, 0
	end.X, end.Y, end.Z = float32(gridExtent), 0, 0
	rl.DrawLine3D(start, end, axisX)
	start.X, start.Y, start.Z = 0, float32(-gridExtent), 0
	end.X, end.Y, end.Z = 0, float32(gridExtent), 0
	rl.DrawLine3D(start, end, axisY)
	start.X, start.Y, start.Z = 0, 0, float32(-gridExtent)
	end.X, end.Y, end.Z = 0, 0, float32(gridExtent)
	rl.DrawLine3D(start, end, axisZ)
}
