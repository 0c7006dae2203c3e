package presets

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mesh-lab/internal/mesh"
)

func TestDefaultsBuild(t *testing.T) {
	lib := NewLibrary(Defaults()...)
	want := map[string]struct {
		vertices int
		indices  int
		topology mesh.Topology
	}{
		"triangle":      {3, 3, mesh.TriangleList},
		"ambient-torus": {33 * 33, 6 * 32 * 32, mesh.TriangleList},
		"point-torus":   {33 * 33, 6 * 32 * 32, mesh.TriangleList},
		"point-sphere":  {33 * 33, 6 * 32 * 32, mesh.TriangleList},
		"texture-quad":  {4, 4, mesh.TriangleStrip},
		"earth":         {33 * 33, 32*(2*32+4) - 2, mesh.TriangleStrip},
	}
	assert.Len(t, lib.Names(), len(want))
	for name, w := range want {
		m, err := lib.Build(name)
		require.NoError(t, err, name)
		assert.Equal(t, w.vertices, m.VertexCount(), name)
		assert.Equal(t, w.indices, m.IndexCount(), name)
		assert.Equal(t, w.topology, m.Topology, name)
		assert.NoError(t, m.Validate(), name)
	}
}

func TestBuildColor(t *testing.T) {
	m, err := Preset{Name: "t", Kind: KindTorus, Row: 2, Column: 2, InnerRadius: 1, OuterRadius: 2, Color: []float32{0.1, 0.2, 0.3}}.Build()
	require.NoError(t, err)
	assert.Equal(t, []float32{0.1, 0.2, 0.3, 1}, m.Colors[:4])

	m, err = Preset{Name: "s", Kind: KindSphere, Row: 2, Column: 2, Radius: 1, Color: []float32{0.1, 0.2, 0.3, 0.4}}.Build()
	require.NoError(t, err)
	assert.Equal(t, []float32{0.1, 0.2, 0.3, 0.4}, m.Colors[len(m.Colors)-4:])

	_, err = Preset{Name: "bad", Kind: KindTorus, Row: 2, Column: 2, InnerRadius: 1, OuterRadius: 2, Color: []float32{1, 1}}.Build()
	assert.Error(t, err)
}

func TestBuildErrors(t *testing.T) {
	_, err := Preset{Name: "cone", Kind: "cone"}.Build()
	assert.ErrorIs(t, err, ErrUnknownKind)

	_, err = Preset{Name: "flat", Kind: KindTorus, Row: 0, Column: 4, InnerRadius: 1, OuterRadius: 2}.Build()
	assert.ErrorIs(t, err, mesh.ErrInvalidArgument)
	assert.Contains(t, err.Error(), "flat")

	_, err = Preset{Name: "fan", Kind: KindSphere, Topology: "fan", Row: 2, Column: 2, Radius: 1}.Build()
	assert.ErrorIs(t, err, mesh.ErrInvalidArgument)
}

func TestLibraryGetIsCopy(t *testing.T) {
	lib := NewLibrary(Defaults()...)
	p, err := lib.Get("point-torus")
	require.NoError(t, err)
	p.Color[0] = 0
	p.Row = 3

	again, err := lib.Get("point-torus")
	require.NoError(t, err)
	assert.Equal(t, float32(0.75), again.Color[0])
	assert.Equal(t, 32, again.Row)

	_, err = lib.Get("nope")
	assert.ErrorIs(t, err, ErrUnknownPreset)
	_, err = lib.Build("nope")
	assert.ErrorIs(t, err, ErrUnknownPreset)
}

func TestLoadOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "presets.yaml")
	content := `presets:
  - name: earth
    kind: sphere
    topology: strip
    row: 16
    column: 16
    radius: 2
    uv_row_denominator: true
  - name: donut
    kind: torus
    row: 8
    column: 24
    inner_radius: 0.25
    outer_radius: 1
    color: [1, 0.5, 0, 1]
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	lib, err := Load(path)
	require.NoError(t, err)
	assert.Contains(t, lib.Names(), "donut")
	assert.Contains(t, lib.Names(), "ambient-torus")

	earth, err := lib.Get("earth")
	require.NoError(t, err)
	assert.Equal(t, 16, earth.Row)
	assert.True(t, earth.UVRowDenominator)

	donut, err := lib.Build("donut")
	require.NoError(t, err)
	assert.Equal(t, 9*25, donut.VertexCount())
	assert.Equal(t, []float32{1, 0.5, 0, 1}, donut.Colors[:4])
}

func TestLoadMissingAndInvalid(t *testing.T) {
	dir := t.TempDir()
	lib, err := Load(filepath.Join(dir, "missing.yaml"))
	require.NoError(t, err)
	assert.Len(t, lib.Names(), len(Defaults()))

	lib, err = Load("")
	require.NoError(t, err)
	assert.Len(t, lib.Names(), len(Defaults()))

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("presets: [name: {"), 0644))
	_, err = Load(bad)
	assert.Error(t, err)

	unnamed := filepath.Join(dir, "unnamed.yaml")
	require.NoError(t, os.WriteFile(unnamed, []byte("presets:\n  - kind: quad\n"), 0644))
	_, err = Load(unnamed)
	assert.Error(t, err)
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "presets.yaml")
	require.NoError(t, Save(path, Defaults()))

	lib, err := Load(path)
	require.NoError(t, err)
	for _, want := range Defaults() {
		got, err := lib.Get(want.Name)
		require.NoError(t, err)
		assert.Equal(t, want.Kind, got.Kind)
		assert.Equal(t, want.Row, got.Row)
		assert.Equal(t, want.Radius, got.Radius)
		assert.Equal(t, len(want.Color), len(got.Color))
	}
}

func TestAllSorted(t *testing.T) {
	all := NewLibrary(Defaults()...).All()
	require.Len(t, all, len(Defaults()))
	for k := 1; k < len(all); k++ {
		assert.Less(t, all[k-1].Name, all[k].Name)
	}
}
