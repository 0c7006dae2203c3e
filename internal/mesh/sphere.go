package mesh

import (
	"fmt"

	"github.com/chewxy/math32"

	"mesh-lab/internal/colorconv"
)

// SphereOptions describes a UV sphere. Row divides the polar angle (latitude bands),
// Column the azimuth (longitude).
type SphereOptions struct {
	Row    int
	Column int
	Radius float32
	// Color fixes every vertex color of a TriangleList sphere. Nil tints each latitude
	// band by hue. TriangleStrip spheres are always white.
	Color *[4]float32
	// Topology selects the generator: tinted triangle list or textured triangle strip.
	Topology Topology
	// UVRowDenominator makes a TriangleStrip sphere compute v = i/Row. By default
	// v = i/Column, which only spans [0,1] when Row == Column.
	UVRowDenominator bool
}

// DefaultSphereOptions returns the 32x32 unit sphere of the point-light sample.
func DefaultSphereOptions() SphereOptions {
	return SphereOptions{
		Row:    32,
		Column: 32,
		Radius: 1,
	}
}

// GenerateSphere builds the sphere variant selected by opts.Topology.
func GenerateSphere(opts SphereOptions) (*Mesh, error) {
	switch opts.Topology {
	case TriangleList:
		return GenerateSphereList(opts)
	case TriangleStrip:
		return GenerateSphereStrip(opts)
	}
	return nil, fmt.Errorf("mesh: %w: unknown topology %v", ErrInvalidArgument, opts.Topology)
}

func checkSphere(opts SphereOptions) error {
	if err := checkGrid(opts.Row, opts.Column); err != nil {
		return err
	}
	return checkRadius("radius", opts.Radius)
}

// GenerateSphereList builds a triangle-list sphere with position, normal and color.
// opts.Topology is ignored.
func GenerateSphereList(opts SphereOptions) (*Mesh, error) {
	if err := checkSphere(opts); err != nil {
		return nil, err
	}

	row, column := opts.Row, opts.Column
	n := gridVertexCount(row, column)
	m := &Mesh{
		Positions: make([]float32, 0, 3*n),
		Normals:   make([]float32, 0, 3*n),
		Colors:    make([]float32, 0, 4*n),
		Indices:   make([]uint32, 0, 6*row*column),
		Topology:  TriangleList,
	}

	polarStep := math32.Pi / float32(row)
	azimuthStep := 2 * math32.Pi / float32(column)
	for i := 0; i <= row; i++ {
		theta := float32(i) * polarStep
		ny := math32.Cos(theta)
		rr := math32.Sin(theta)

		var c [4]float32
		if opts.Color != nil {
			c = *opts.Color
		} else {
			c = colorconv.Sweep(i, row)
		}
		for j := 0; j <= column; j++ {
			tr := float32(j) * azimuthStep
			nx, nz := rr*math32.Cos(tr), rr*math32.Sin(tr)
			m.Positions = append(m.Positions, nx*opts.Radius, ny*opts.Radius, nz*opts.Radius)
			m.Normals = append(m.Normals, nx, ny, nz)
			m.Colors = append(m.Colors, c[:]...)
		}
	}

	stride := uint32(column + 1)
	for i := 0; i < row; i++ {
		for j := 0; j < column; j++ {
			base := stride*uint32(i) + uint32(j)
			m.Indices = append(m.Indices,
				base, base+1, base+stride+1,
				base, base+stride+1, base+stride,
			)
		}
	}
	return m, nil
}

// GenerateSphereStrip builds a white, textured sphere drawn as one triangle strip.
// Each longitude band is a strip segment; segments are joined by repeating their
// first and last index, so the extra triangles are degenerate.
// opts.Color and opts.Topology are ignored.
func GenerateSphereStrip(opts SphereOptions) (*Mesh, error) {
	if err := checkSphere(opts); err != nil {
		return nil, err
	}

	row, column := opts.Row, opts.Column
	n := gridVertexCount(row, column)
	m := &Mesh{
		Positions: make([]float32, 0, 3*n),
		Normals:   make([]float32, 0, 3*n),
		Colors:    make([]float32, 0, 4*n),
		TexCoords: make([]float32, 0, 2*n),
		Indices:   make([]uint32, 0, column*(2*row+4)),
		Topology:  TriangleStrip,
	}

	vDenominator := float32(column)
	if opts.UVRowDenominator {
		vDenominator = float32(row)
	}
	white := colorconv.White
	for i := 0; i <= row; i++ {
		theta := math32.Pi * (float32(i) / float32(row))
		ny := math32.Cos(theta)
		rr := math32.Sin(theta)
		for j := 0; j <= column; j++ {
			phi := 2 * math32.Pi * (float32(j) / float32(column))
			nx, nz := rr*math32.Sin(phi), rr*math32.Cos(phi)
			m.Positions = append(m.Positions, nx*opts.Radius, ny*opts.Radius, nz*opts.Radius)
			m.Normals = append(m.Normals, nx, ny, nz)
			m.Colors = append(m.Colors, white[:]...)
			m.TexCoords = append(m.TexCoords, float32(j)/float32(column), float32(i)/vDenominator)
		}
	}

	stride := uint32(column + 1)
	last := uint32(row) * stride
	for i := 0; i < column; i++ {
		band := uint32(i)
		if i != 0 {
			m.Indices = append(m.Indices, band)
		}
		m.Indices = append(m.Indices, band)
		for j := 0; j < row; j++ {
			m.Indices = append(m.Indices, uint32(j)*stride+band, uint32(j)*stride+band+1)
		}
		m.Indices = append(m.Indices, last+band)
		if i != column-1 {
			m.Indices = append(m.Indices, last+band)
		}
	}
	return m, nil
}
