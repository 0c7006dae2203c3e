// Package samples describes the preview scenes as data: which presets to draw,
// where the camera sits, how the scene is lit and how every object moves per frame.
package samples

import (
	"fmt"

	"github.com/chewxy/math32"
)

// Lighting selects the shading model of a sample.
type Lighting int

const (
	// Unlit draws raw vertex colors.
	Unlit Lighting = iota
	// Directional shades with a fixed light direction plus ambient.
	Directional
	// Point shades with a light at a fixed position plus ambient.
	Point
)

func (l Lighting) String() string {
	switch l {
	case Unlit:
		return "unlit"
	case Directional:
		return "directional"
	case Point:
		return "point"
	}
	return fmt.Sprintf("Lighting(%d)", int(l))
}

// Wave is a per-axis cos/sin amplitude pair: component k is Cos[k]*cos(rad) + Sin[k]*sin(rad).
type Wave struct {
	Cos [3]float32
	Sin [3]float32
}

func (w Wave) at(c, s float32) [3]float32 {
	var out [3]float32
	for k := range out {
		out[k] = w.Cos[k]*c + w.Sin[k]*s
	}
	return out
}

// Object is one drawn instance of a preset.
type Object struct {
	Preset string
	// Offset is the fixed translation; Orbit is added on top each frame.
	Offset [3]float32
	Orbit  Wave
	// Axis is the rotation axis (not necessarily unit length). Zero means no rotation.
	Axis [3]float32
	// Spin multiplies rad to get the rotation angle.
	Spin float32
	// Pulse, when non-zero, scales each axis by Pulse[k]*(sin(rad)+1).
	Pulse [3]float32
}

// Sample is one preview scene.
type Sample struct {
	ID       string
	Title    string
	Eye      [3]float32
	Fovy     float32
	Clear    [4]float32
	Lighting Lighting
	// Light is the direction to the light for Directional, or its position for Point.
	Light   [3]float32
	Ambient [4]float32
	Objects []Object
}

// Pose is an object's model transform for one frame: scale, then rotate, then translate.
type Pose struct {
	Preset    string
	Translate [3]float32
	Axis      [3]float32
	Angle     float32 // radians
	Scale     [3]float32
}

// Rad returns the animation angle for a frame counter: (frame mod 360) degrees in radians.
func Rad(frame int) float32 {
	deg := frame % 360
	if deg < 0 {
		deg += 360
	}
	return float32(deg) * math32.Pi / 180
}

// Pose returns the transform of o at frame.
func (o Object) Pose(frame int) Pose {
	rad := Rad(frame)
	c, s := math32.Cos(rad), math32.Sin(rad)
	orbit := o.Orbit.at(c, s)
	p := Pose{
		Preset: o.Preset,
		Scale:  [3]float32{1, 1, 1},
	}
	for k := range p.Translate {
		p.Translate[k] = o.Offset[k] + orbit[k]
	}
	if o.Axis != [3]float32{} {
		p.Axis = o.Axis
		p.Angle = o.Spin * rad
	}
	if o.Pulse != [3]float32{} {
		for k := range p.Scale {
			p.Scale[k] = o.Pulse[k] * (s + 1)
		}
	}
	return p
}

// Poses returns the transform of every object of the sample at frame, in draw order.
func (s Sample) Poses(frame int) []Pose {
	out := make([]Pose, len(s.Objects))
	for k, o := range s.Objects {
		out[k] = o.Pose(frame)
	}
	return out
}

// Presets returns the preset names the sample draws, without duplicates, in first-use order.
func (s Sample) Presets() []string {
	seen := make(map[string]bool, len(s.Objects))
	var out []string
	for _, o := range s.Objects {
		if !seen[o.Preset] {
			seen[o.Preset] = true
			out = append(out, o.Preset)
		}
	}
	return out
}

var (
	tealClear  = [4]float32{0.5, 0.75, 0.75, 1}
	black      = [4]float32{0, 0, 0, 1}
	dimAmbient = [4]float32{0.1, 0.1, 0.1, 1}
	diagonal   = [3]float32{0, 1, 1}
)

// Catalog returns the preview scenes in order.
func Catalog() []Sample {
	return []Sample{
		{
			ID: "002", Title: "MVP matrix",
			Eye: [3]float32{0, 1, 3}, Fovy: 90, Clear: [4]float32{0.75, 0.75, 0.5, 1},
			Objects: []Object{{Preset: "triangle"}},
		},
		{
			ID: "004", Title: "Multiple models",
			Eye: [3]float32{0, 0, 3}, Fovy: 90, Clear: tealClear,
			Objects: []Object{
				{Preset: "triangle", Offset: [3]float32{1.5, 0, 0}},
				{Preset: "triangle", Offset: [3]float32{-1.5, 0, 0}},
			},
		},
		{
			ID: "005", Title: "Draw loop",
			Eye: [3]float32{0, 0, 5}, Fovy: 45, Clear: tealClear,
			Objects: []Object{
				{Preset: "triangle", Orbit: Wave{Cos: [3]float32{1, 0, 0}, Sin: [3]float32{0, 1, 0}}},
				{Preset: "triangle", Offset: [3]float32{1, -1, 0}, Axis: [3]float32{0, 1, 0}, Spin: 1},
				{Preset: "triangle", Offset: [3]float32{-1, -1, 0}, Pulse: [3]float32{1, 1, 0}},
			},
		},
		{
			ID: "009", Title: "Ambient light",
			Eye: [3]float32{0, 0, 20}, Fovy: 45, Clear: black,
			Lighting: Directional, Light: [3]float32{-0.5, 0.5, 0.5}, Ambient: dimAmbient,
			Objects: []Object{{Preset: "ambient-torus", Axis: diagonal, Spin: 1}},
		},
		{
			ID: "012", Title: "Point light",
			Eye: [3]float32{0, 0, 20}, Fovy: 45, Clear: black,
			Lighting: Point, Ambient: dimAmbient,
			Objects: []Object{
				{Preset: "point-torus", Orbit: Wave{Cos: [3]float32{3.5, 0, 0}, Sin: [3]float32{0, -3.5, -3.5}}, Axis: diagonal, Spin: -1},
				{Preset: "point-sphere", Orbit: Wave{Cos: [3]float32{-3.5, 0, 0}, Sin: [3]float32{0, 3.5, 3.5}}, Axis: diagonal, Spin: 1},
			},
		},
		{
			ID: "013", Title: "Texture",
			Eye: [3]float32{0, 0, 5}, Fovy: 45, Clear: black,
			Objects: []Object{{Preset: "texture-quad", Axis: diagonal, Spin: -1}},
		},
		{
			ID: "014", Title: "Earth",
			Eye: [3]float32{0, 0, 20}, Fovy: 45, Clear: black,
			Objects: []Object{
				{Preset: "earth", Orbit: Wave{Cos: [3]float32{2.5, 0, -1.5}, Sin: [3]float32{0, -2.5, 0}}, Axis: diagonal, Spin: -1},
			},
		},
	}
}

// Find returns the sample with the given ID.
func Find(id string) (Sample, bool) {
	for _, s := range Catalog() {
		if s.ID == id {
			return s, true
		}
	}
	return Sample{}, false
}

// Index returns the catalog position of id, or 0 when it is unknown.
func Index(id string) int {
	for k, s := range Catalog() {
		if s.ID == id {
			return k
		}
	}
	return 0
}

// InspectID is the ID of scenes built by Inspect.
const InspectID = "inspect"

// Inspect returns a scene showing one preset spinning at the origin under directional light.
// extent is the mesh's largest distance from the origin; the camera backs off to keep it in view.
func Inspect(preset string, extent float32) Sample {
	dist := 3 * extent
	if !(dist >= 3) || math32.IsInf(dist, 1) {
		dist = 3
	}
	return Sample{
		ID:       InspectID,
		Title:    preset,
		Eye:      [3]float32{0, dist / 3, dist},
		Fovy:     45,
		Clear:    black,
		Lighting: Directional,
		Light:    [3]float32{-0.5, 0.5, 0.5},
		Ambient:  [4]float32{0.2, 0.2, 0.2, 1},
		Objects:  []Object{{Preset: preset, Axis: [3]float32{0, 1, 0}, Spin: 1}},
	}
}
