package mesh

import (
	"github.com/chewxy/math32"

	"mesh-lab/internal/colorconv"
)

// TorusOptions describes a torus. Row divides the pipe cross-section, Column divides
// the ring. InnerRadius is the pipe radius, OuterRadius the distance from the torus
// center to the pipe center. A nil Color tints each ring position by hue.
type TorusOptions struct {
	Row         int
	Column      int
	InnerRadius float32
	OuterRadius float32
	Color       *[4]float32
}

// DefaultTorusOptions returns the torus of the ambient-light sample: 32x32, pipe 1, ring 2, hue tint.
func DefaultTorusOptions() TorusOptions {
	return TorusOptions{
		Row:         32,
		Column:      32,
		InnerRadius: 1,
		OuterRadius: 2,
	}
}

// GenerateTorus builds a triangle-list torus with (Row+1)*(Column+1) vertices.
// The first and last pipe and ring samples coincide so the seams carry their own vertices.
func GenerateTorus(opts TorusOptions) (*Mesh, error) {
	if err := checkGrid(opts.Row, opts.Column); err != nil {
		return nil, err
	}
	if err := checkRadius("inner radius", opts.InnerRadius); err != nil {
		return nil, err
	}
	if err := checkRadius("outer radius", opts.OuterRadius); err != nil {
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

	pipeStep := 2 * math32.Pi / float32(row)
	ringStep := 2 * math32.Pi / float32(column)
	for i := 0; i <= row; i++ {
		r := float32(i) * pipeStep
		rr := math32.Cos(r)
		ry := math32.Sin(r)
		for j := 0; j <= column; j++ {
			tr := float32(j) * ringStep
			ct, st := math32.Cos(tr), math32.Sin(tr)
			reach := rr*opts.InnerRadius + opts.OuterRadius
			m.Positions = append(m.Positions, reach*ct, ry*opts.InnerRadius, reach*st)
			m.Normals = append(m.Normals, rr*ct, ry, rr*st)

			var c [4]float32
			if opts.Color != nil {
				c = *opts.Color
			} else {
				c = colorconv.Sweep(j, column)
			}
			m.Colors = append(m.Colors, c[:]...)
		}
	}

	stride := uint32(column + 1)
	for i := 0; i < row; i++ {
		for j := 0; j < column; j++ {
			base := stride*uint32(i) + uint32(j)
			m.Indices = append(m.Indices,
				base, base+stride, base+1,
				base+stride, base+stride+1, base+1,
			)
		}
	}
	return m, nil
}
