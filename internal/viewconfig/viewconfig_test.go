package viewconfig

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissing(t *testing.T) {
	p, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	require.NoError(t, err)
	assert.Equal(t, Default(), p)
}

func TestLoadInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "meshview.json")
	require.NoError(t, os.WriteFile(path, []byte("{"), 0644))
	p, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Default(), p)
}

func TestLoadPartialKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "meshview.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"show_fps": true, "sample": "014", "target_fps": 0}`), 0644))
	p, err := Load(path)
	require.NoError(t, err)
	assert.True(t, p.ShowFPS)
	assert.True(t, p.GridVisible)
	assert.Equal(t, "014", p.Sample)
	assert.Equal(t, 60, p.TargetFPS)
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config", "meshview.json")
	want := Prefs{ShowFPS: true, ShowStats: true, Wireframe: true, Sample: "012", TargetFPS: 30}
	require.NoError(t, Save(path, want))
	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
