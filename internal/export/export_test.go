package export

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mesh-lab/internal/mesh"
)

func TestJSONRoundTrip(t *testing.T) {
	m, err := mesh.GenerateSphereStrip(mesh.SphereOptions{Row: 3, Column: 4, Radius: 2})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, FormatJSON, "earth", m))
	assert.Contains(t, buf.String(), `"topology": "strip"`)
	assert.Contains(t, buf.String(), `"vertexCount": 20`)

	name, got, err := ReadJSON(&buf)
	require.NoError(t, err)
	assert.Equal(t, "earth", name)
	assert.Equal(t, m, got)
}

func TestJSONOmitsMissingTexcoords(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, "tri", mesh.Triangle()))
	assert.NotContains(t, buf.String(), "texcoords")
	assert.Contains(t, buf.String(), `"indexCount": 3`)
}

func TestReadJSONRejectsBadMesh(t *testing.T) {
	_, _, err := ReadJSON(strings.NewReader(`{"name":"x","topology":"list","positions":[0,0,0],"indices":[0,1,2]}`))
	assert.ErrorIs(t, err, mesh.ErrMalformed)

	_, _, err = ReadJSON(strings.NewReader(`{"topology":"fan","positions":[],"indices":[]}`))
	assert.ErrorIs(t, err, mesh.ErrInvalidArgument)

	_, _, err = ReadJSON(strings.NewReader(`{`))
	assert.Error(t, err)
}

func TestWriteOBJTriangle(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, FormatOBJ, "triangle", mesh.Triangle()))
	want := `# 3 vertices, 1 triangles
o triangle
v 0 1 0
v -1 0 0
v 1 0 0
vn 0 0 1
vn 0 0 1
vn 0 0 1
f 1//1 2//2 3//3
`
	assert.Equal(t, want, buf.String())
}

func TestWriteOBJStripWithUV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteOBJ(&buf, "quad", mesh.Quad()))
	out := buf.String()
	assert.Contains(t, out, "# 4 vertices, 2 triangles\n")
	assert.Contains(t, out, "vt 0 1\n")
	assert.Contains(t, out, "vt 1 0\n")
	assert.Contains(t, out, "f 1/1/1 2/2/2 3/3/3\n")
	assert.Contains(t, out, "f 3/3/3 2/2/2 4/4/4\n")
}

func TestWriteOBJCounts(t *testing.T) {
	m, err := mesh.GenerateTorus(mesh.TorusOptions{Row: 4, Column: 4, InnerRadius: 1, OuterRadius: 2})
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, WriteOBJ(&buf, "torus", m))

	counts := map[string]int{}
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		counts[strings.Fields(line)[0]]++
	}
	assert.Equal(t, 25, counts["v"])
	assert.Equal(t, 25, counts["vn"])
	assert.Equal(t, 0, counts["vt"])
	assert.Equal(t, 32, counts["f"])
}

func TestWriteUnknownFormat(t *testing.T) {
	err := Write(&bytes.Buffer{}, "stl", "x", mesh.Triangle())
	assert.Error(t, err)
}
