package mesh

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mesh-lab/internal/colorconv"
)

func TestSphereListCounts(t *testing.T) {
	for _, tt := range []struct{ row, column int }{{1, 1}, {2, 3}, {8, 16}, {32, 32}} {
		m, err := GenerateSphereList(SphereOptions{Row: tt.row, Column: tt.column, Radius: 1.5})
		require.NoError(t, err)
		assert.Equal(t, (tt.row+1)*(tt.column+1), m.VertexCount())
		assert.Len(t, m.Positions, 3*(tt.row+1)*(tt.column+1))
		assert.Len(t, m.Indices, 6*tt.row*tt.column)
		assert.Empty(t, m.TexCoords)
		assert.Equal(t, TriangleList, m.Topology)
		assertUnitNormals(t, m)
		assertIndicesInRange(t, m)
		require.NoError(t, m.Validate())
	}
}

func TestSphereListGeometry(t *testing.T) {
	m, err := GenerateSphereList(SphereOptions{Row: 2, Column: 4, Radius: 3})
	require.NoError(t, err)

	// north pole
	assert.InDeltaSlice(t, []float32{0, 3, 0}, m.Positions[0:3], unitTol)
	// equator, azimuth 0 and 90 degrees
	v := 5
	assert.InDeltaSlice(t, []float32{3, 0, 0}, m.Positions[3*v:3*v+3], 1e-5)
	assert.InDeltaSlice(t, []float32{1, 0, 0}, m.Normals[3*v:3*v+3], unitTol)
	v = 6
	assert.InDeltaSlice(t, []float32{0, 0, 3}, m.Positions[3*v:3*v+3], 1e-5)
	// south pole
	v = 10
	assert.InDeltaSlice(t, []float32{0, -3, 0}, m.Positions[3*v:3*v+3], 1e-5)

	// position is the normal scaled by the radius
	for k := range m.Positions {
		assert.InDelta(t, 3*m.Normals[k], m.Positions[k], 1e-5)
	}
}

func TestSphereListIndexPattern(t *testing.T) {
	m, err := GenerateSphereList(SphereOptions{Row: 2, Column: 3, Radius: 1})
	require.NoError(t, err)
	assert.Equal(t, []uint32{0, 1, 5, 0, 5, 4}, m.Indices[:6])
	// quad i=1, j=2: base = 6
	assert.Equal(t, []uint32{6, 7, 11, 6, 11, 10}, m.Indices[30:36])
}

func TestSphereListColors(t *testing.T) {
	m, err := GenerateSphereList(SphereOptions{Row: 4, Column: 3, Radius: 1})
	require.NoError(t, err)
	// hue follows the latitude band, constant around it
	for i := 0; i <= 4; i++ {
		want := colorconv.HSVA(float32(i)*90, 1, 1, 1)
		for j := 0; j <= 3; j++ {
			k := 4 * (i*4 + j)
			assert.Equal(t, want, [4]float32(m.Colors[k:k+4]), "vertex %d,%d", i, j)
		}
	}

	fixed := [4]float32{0.25, 0.75, 0.75, 1}
	m, err = GenerateSphereList(SphereOptions{Row: 4, Column: 3, Radius: 1, Color: &fixed})
	require.NoError(t, err)
	for k := 0; k < len(m.Colors); k += 4 {
		assert.Equal(t, fixed, [4]float32(m.Colors[k:k+4]))
	}
}

func TestSphereStripVertices(t *testing.T) {
	fixed := [4]float32{1, 0, 0, 1}
	m, err := GenerateSphereStrip(SphereOptions{Row: 4, Column: 4, Radius: 5, Color: &fixed})
	require.NoError(t, err)
	assert.Equal(t, 25, m.VertexCount())
	assert.Len(t, m.TexCoords, 50)
	assert.Equal(t, TriangleStrip, m.Topology)
	assertUnitNormals(t, m)
	require.NoError(t, m.Validate())

	// always white, the fixed color is ignored
	for k := 0; k < len(m.Colors); k += 4 {
		assert.Equal(t, colorconv.White, [4]float32(m.Colors[k:k+4]))
	}

	// azimuth 0 lies on +Z, 90 degrees on +X
	v := 2*5 + 0
	assert.InDeltaSlice(t, []float32{0, 0, 5}, m.Positions[3*v:3*v+3], 1e-5)
	v = 2*5 + 1
	assert.InDeltaSlice(t, []float32{5, 0, 0}, m.Positions[3*v:3*v+3], 1e-5)
	assert.InDeltaSlice(t, []float32{1, 0, 0}, m.Normals[3*v:3*v+3], unitTol)
}

func TestSphereStripTexCoords(t *testing.T) {
	m, err := GenerateSphereStrip(SphereOptions{Row: 2, Column: 4, Radius: 1})
	require.NoError(t, err)
	// vertex i=2, j=3: u = 3/4, v = 2/column = 2/4
	v := 2*5 + 3
	assert.InDeltaSlice(t, []float32{0.75, 0.5}, m.TexCoords[2*v:2*v+2], unitTol)

	m, err = GenerateSphereStrip(SphereOptions{Row: 2, Column: 4, Radius: 1, UVRowDenominator: true})
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float32{0.75, 1}, m.TexCoords[2*v:2*v+2], unitTol)

	for k := 0; k < len(m.TexCoords); k++ {
		assert.GreaterOrEqual(t, m.TexCoords[k], float32(0))
		assert.LessOrEqual(t, m.TexCoords[k], float32(1))
	}
}

func TestSphereStripIndices(t *testing.T) {
	m, err := GenerateSphereStrip(SphereOptions{Row: 2, Column: 3, Radius: 1})
	require.NoError(t, err)
	want := []uint32{
		0, 0, 1, 4, 5, 8, 8,
		1, 1, 1, 2, 5, 6, 9, 9,
		2, 2, 2, 3, 6, 7, 10,
	}
	assert.Equal(t, want, m.Indices)
	assertIndicesInRange(t, m)

	for _, tt := range []struct{ row, column int }{{1, 1}, {5, 2}, {32, 32}, {3, 17}} {
		m, err := GenerateSphereStrip(SphereOptions{Row: tt.row, Column: tt.column, Radius: 1})
		require.NoError(t, err)
		assert.Len(t, m.Indices, tt.column*(2*tt.row+4)-2)
		assertIndicesInRange(t, m)
	}
}

func TestGenerateSphereDispatch(t *testing.T) {
	opts := SphereOptions{Row: 3, Column: 5, Radius: 2}
	list, err := GenerateSphere(opts)
	require.NoError(t, err)
	want, err := GenerateSphereList(opts)
	require.NoError(t, err)
	assert.Equal(t, want, list)

	opts.Topology = TriangleStrip
	strip, err := GenerateSphere(opts)
	require.NoError(t, err)
	want, err = GenerateSphereStrip(opts)
	require.NoError(t, err)
	assert.Equal(t, want, strip)
	assert.NotEqual(t, list.Indices, strip.Indices)
}
