package env

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	content := `# mesh-lab settings
MESHLAB_TEST_PRESETS="assets/presets.yaml"
export MESHLAB_TEST_LOG='logs/x.txt'

not a pair
MESHLAB_TEST_KEEP=from-file
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	t.Setenv("MESHLAB_TEST_PRESETS", "")
	os.Unsetenv("MESHLAB_TEST_PRESETS")
	t.Setenv("MESHLAB_TEST_LOG", "")
	os.Unsetenv("MESHLAB_TEST_LOG")
	t.Setenv("MESHLAB_TEST_KEEP", "from-env")

	require.NoError(t, Load(path))
	assert.Equal(t, "assets/presets.yaml", os.Getenv("MESHLAB_TEST_PRESETS"))
	assert.Equal(t, "logs/x.txt", os.Getenv("MESHLAB_TEST_LOG"))
	assert.Equal(t, "from-env", os.Getenv("MESHLAB_TEST_KEEP"))
}

func TestLoadMissingFile(t *testing.T) {
	assert.NoError(t, Load(filepath.Join(t.TempDir(), "missing.env")))
}

func TestString(t *testing.T) {
	t.Setenv("MESHLAB_TEST_STRING", "  value ")
	assert.Equal(t, "value", String("MESHLAB_TEST_STRING", "def"))
	t.Setenv("MESHLAB_TEST_STRING", " ")
	assert.Equal(t, "def", String("MESHLAB_TEST_STRING", "def"))
}

func TestInt(t *testing.T) {
	t.Setenv("MESHLAB_TEST_INT", "48")
	assert.Equal(t, 48, Int("MESHLAB_TEST_INT", 30))
	t.Setenv("MESHLAB_TEST_INT", "fast")
	assert.Equal(t, 30, Int("MESHLAB_TEST_INT", 30))
}
