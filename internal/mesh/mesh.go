// Package mesh generates flat vertex and index arrays for simple parametric surfaces
// (torus, sphere) and small fixed shapes, ready to be uploaded to GPU buffers.
//
// Every attribute array is laid out per vertex: vertex k has its position at
// Positions[3k:3k+3], normal at Normals[3k:3k+3], color at Colors[4k:4k+4] and,
// when present, texture coordinate at TexCoords[2k:2k+2].
package mesh

import (
	"errors"
	"fmt"
	"math"

	"github.com/chewxy/math32"
	"github.com/jinzhu/copier"
)

var (
	// ErrInvalidArgument is returned for subdivision counts below 1 and non-positive radii.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrIndexOverflow is returned when indices do not fit a 16-bit index buffer.
	ErrIndexOverflow = errors.New("index exceeds 16-bit range")
	// ErrMalformed is returned by Validate for inconsistent attribute or index arrays.
	ErrMalformed = errors.New("malformed mesh")
)

// Topology is how Indices connect vertices into triangles.
type Topology int

const (
	TriangleList Topology = iota
	TriangleStrip
)

func (t Topology) String() string {
	switch t {
	case TriangleList:
		return "list"
	case TriangleStrip:
		return "strip"
	}
	return fmt.Sprintf("Topology(%d)", int(t))
}

// ParseTopology accepts "list"/"triangles" and "strip"/"triangle-strip". Empty means list.
func ParseTopology(s string) (Topology, error) {
	switch s {
	case "", "list", "triangles", "triangle-list":
		return TriangleList, nil
	case "strip", "triangle-strip":
		return TriangleStrip, nil
	}
	return TriangleList, fmt.Errorf("mesh: %w: unknown topology %q", ErrInvalidArgument, s)
}

// Mesh is a set of parallel vertex attribute arrays and an index list.
// Generators never touch a Mesh after returning it; it belongs to the caller.
type Mesh struct {
	Positions []float32
	Normals   []float32
	Colors    []float32
	TexCoords []float32 // empty unless the generator produces UVs
	Indices   []uint32
	Topology  Topology
}

// VertexCount is the number of vertices (positions / 3).
func (m *Mesh) VertexCount() int {
	return len(m.Positions) / 3
}

// IndexCount is the length of the index list, the count passed to an indexed draw call.
func (m *Mesh) IndexCount() int {
	return len(m.Indices)
}

// TriangleCount is the number of triangles the index list describes,
// including degenerate strip triangles used to join strip segments.
func (m *Mesh) TriangleCount() int {
	if m.Topology == TriangleStrip {
		if len(m.Indices) < 3 {
			return 0
		}
		return len(m.Indices) - 2
	}
	return len(m.Indices) / 3
}

// Clone returns a deep copy whose arrays share no memory with m.
func (m *Mesh) Clone() *Mesh {
	if m == nil {
		return nil
	}
	out := &Mesh{}
	if err := copier.CopyWithOption(out, m, copier.Option{DeepCopy: true}); err != nil {
		// copier only fails on mismatched kinds, which cannot happen for identical types
		panic(err)
	}
	return out
}

// Validate checks that attribute arrays agree on the vertex count and every index is in range.
func (m *Mesh) Validate() error {
	if len(m.Positions)%3 != 0 {
		return fmt.Errorf("mesh: %w: %d position floats is not a multiple of 3", ErrMalformed, len(m.Positions))
	}
	n := m.VertexCount()
	if len(m.Normals) > 0 && len(m.Normals) != 3*n {
		return fmt.Errorf("mesh: %w: %d normal floats for %d vertices", ErrMalformed, len(m.Normals), n)
	}
	if len(m.Colors) > 0 && len(m.Colors) != 4*n {
		return fmt.Errorf("mesh: %w: %d color floats for %d vertices", ErrMalformed, len(m.Colors), n)
	}
	if len(m.TexCoords) > 0 && len(m.TexCoords) != 2*n {
		return fmt.Errorf("mesh: %w: %d texcoord floats for %d vertices", ErrMalformed, len(m.TexCoords), n)
	}
	if m.Topology == TriangleList && len(m.Indices)%3 != 0 {
		return fmt.Errorf("mesh: %w: triangle list with %d indices", ErrMalformed, len(m.Indices))
	}
	for k, idx := range m.Indices {
		if int(idx) >= n {
			return fmt.Errorf("mesh: %w: index %d at %d references vertex beyond %d", ErrMalformed, idx, k, n)
		}
	}
	return nil
}

// Indices16 narrows the index list for 16-bit index buffers (WebGL 1, raylib).
func (m *Mesh) Indices16() ([]uint16, error) {
	out := make([]uint16, len(m.Indices))
	for k, idx := range m.Indices {
		if idx > math.MaxUint16 {
			return nil, fmt.Errorf("mesh: %w: index %d at %d", ErrIndexOverflow, idx, k)
		}
		out[k] = uint16(idx)
	}
	return out, nil
}

// ColorsRGBA8 packs float colors into 8-bit RGBA, clamping to [0,1].
func (m *Mesh) ColorsRGBA8() []uint8 {
	out := make([]uint8, len(m.Colors))
	for k, c := range m.Colors {
		switch {
		case c <= 0 || math32.IsNaN(c):
			out[k] = 0
		case c >= 1:
			out[k] = 255
		default:
			out[k] = uint8(c*255 + 0.5)
		}
	}
	return out
}

// Bounds returns the axis-aligned bounding box of the positions.
// An empty mesh reports zero vectors.
func (m *Mesh) Bounds() (lo, hi [3]float32) {
	if len(m.Positions) < 3 {
		return
	}
	copy(lo[:], m.Positions[:3])
	copy(hi[:], m.Positions[:3])
	for k := 3; k+2 < len(m.Positions); k += 3 {
		for c := 0; c < 3; c++ {
			p := m.Positions[k+c]
			lo[c] = min(lo[c], p)
			hi[c] = max(hi[c], p)
		}
	}
	return
}

// Extent returns the largest distance of any vertex from the origin.
func (m *Mesh) Extent() float32 {
	var best float32
	for k := 0; k+2 < len(m.Positions); k += 3 {
		x, y, z := m.Positions[k], m.Positions[k+1], m.Positions[k+2]
		best = max(best, x*x+y*y+z*z)
	}
	return math32.Sqrt(best)
}

// AsTriangleList returns m unchanged when it already is a list, otherwise a copy
// whose strip indices are expanded into a triangle list.
func (m *Mesh) AsTriangleList() *Mesh {
	if m.Topology == TriangleList {
		return m
	}
	out := m.Clone()
	out.Indices = StripToList(m.Indices)
	out.Topology = TriangleList
	return out
}

func checkGrid(row, column int) error {
	if row < 1 {
		return fmt.Errorf("mesh: %w: row must be >= 1, got %d", ErrInvalidArgument, row)
	}
	if column < 1 {
		return fmt.Errorf("mesh: %w: column must be >= 1, got %d", ErrInvalidArgument, column)
	}
	return nil
}

func checkRadius(name string, r float32) error {
	if !(r > 0) || math.IsInf(float64(r), 0) {
		return fmt.Errorf("mesh: %w: %s must be a positive finite number, got %v", ErrInvalidArgument, name, r)
	}
	return nil
}

func gridVertexCount(row, column int) int {
	return (row + 1) * (column + 1)
}
