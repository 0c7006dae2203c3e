package mesh

import "mesh-lab/internal/colorconv"

// Triangle returns the single colored triangle of the first samples: apex at (0,1,0),
// base from (-1,0,0) to (1,0,0), red/green/blue corners, facing +Z.
func Triangle() *Mesh {
	return &Mesh{
		Positions: []float32{
			0, 1, 0,
			-1, 0, 0,
			1, 0, 0,
		},
		Normals: []float32{
			0, 0, 1,
			0, 0, 1,
			0, 0, 1,
		},
		Colors: []float32{
			1, 0, 0, 1,
			0, 1, 0, 1,
			0, 0, 1, 1,
		},
		Indices:  []uint32{0, 1, 2},
		Topology: TriangleList,
	}
}

// Quad returns the textured 2x2 board of the texture sample as a four-index strip.
// UV (0,0) is the top-left corner.
func Quad() *Mesh {
	m := &Mesh{
		Positions: []float32{
			-1, 1, 0,
			1, 1, 0,
			-1, -1, 0,
			1, -1, 0,
		},
		Normals: []float32{
			0, 0, 1,
			0, 0, 1,
			0, 0, 1,
			0, 0, 1,
		},
		TexCoords: []float32{
			0, 0,
			1, 0,
			0, 1,
			1, 1,
		},
		Indices:  []uint32{0, 1, 2, 3},
		Topology: TriangleStrip,
	}
	for range 4 {
		m.Colors = append(m.Colors, colorconv.White[:]...)
	}
	return m
}
