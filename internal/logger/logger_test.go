package logger

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock() time.Time {
	return time.Date(2024, 3, 9, 14, 5, 7, 0, time.UTC)
}

func TestLogWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "out.txt")
	l := New(path)
	l.now = fixedClock

	l.Log("generated torus")
	l.Logf("vertices=%d indices=%d", 25, 96)

	want := []string{
		"[2024-03-09 14:05:07] generated torus",
		"[2024-03-09 14:05:07] vertices=25 indices=96",
	}
	assert.Equal(t, want, l.Lines())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, strings.Join(want, "\n")+"\n", string(data))
	assert.Equal(t, path, l.Path())
}

func TestMemoryLogger(t *testing.T) {
	l := Memory()
	l.Log("hello")
	assert.Len(t, l.Lines(), 1)
	assert.Empty(t, l.Path())
}

func TestLinesIsCopy(t *testing.T) {
	l := Memory()
	l.Log("a")
	lines := l.Lines()
	lines[0] = "changed"
	assert.NotEqual(t, "changed", l.Lines()[0])
}

func TestHistoryIsCapped(t *testing.T) {
	l := Memory()
	for k := 0; k < maxLines+20; k++ {
		l.Log(strconv.Itoa(k))
	}
	lines := l.Lines()
	require.Len(t, lines, maxLines)
	assert.True(t, strings.HasSuffix(lines[0], "] 20"))
	assert.True(t, strings.HasSuffix(lines[maxLines-1], "] "+strconv.Itoa(maxLines+19)))
}

func TestConcurrentLog(t *testing.T) {
	l := Memory()
	var wg sync.WaitGroup
	for k := 0; k < 16; k++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			l.Logf("worker %d", k)
		}()
	}
	wg.Wait()
	assert.Len(t, l.Lines(), 16)
}
