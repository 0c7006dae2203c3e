package debug

import (
	"fmt"
	"runtime"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	fpsFontSize   = 20
	fpsPadding    = 12
	fpsLineHeight = fpsFontSize + 4
	// updateInterval: only refresh FPS/Mem text every N frames to reduce allocations.
	updateInterval = 30
)

// Stats is what the scene reports for the stats overlay.
type Stats struct {
	Sample    string
	Frame     int
	Vertices  int
	Triangles int
}

// Debug holds runtime debugging overlays (FPS, memory, scene stats). All overlays are off by default.
type Debug struct {
	ShowFPS      bool
	ShowMemAlloc bool
	ShowStats    bool
	frameCount   uint32
	lastFpsText  string
	lastMemText  string
	lastMemStats runtime.MemStats
}

// New returns a Debug system with all overlays hidden.
func New() *Debug {
	return &Debug{}
}

// SetShowFPS sets whether the FPS counter is drawn (top-right, green).
func (d *Debug) SetShowFPS(show bool) {
	d.ShowFPS = show
}

// SetShowMemAlloc sets whether the memory allocation counter is drawn (top-right, under FPS).
func (d *Debug) SetShowMemAlloc(show bool) {
	d.ShowMemAlloc = show
}

// SetShowStats sets whether the sample/vertex/triangle counters are drawn (top-left).
func (d *Debug) SetShowStats(show bool) {
	d.ShowStats = show
}

// Draw renders any enabled debug overlays. Call after scene and terminal in the draw loop.
// FPS and memory are drawn top-right in green; text there is only recomputed every
// updateInterval frames to limit allocations. Stats are drawn top-left.
func (d *Debug) Draw(stats Stats) {
	d.frameCount++
	update := (d.frameCount % updateInterval) == 0
	if d.ShowFPS && d.lastFpsText == "" {
		update = true
	}
	if d.ShowMemAlloc && d.lastMemText == "" {
		update = true
	}

	screenW := int32(rl.GetScreenWidth())
	y := int32(fpsPadding)

	if d.ShowFPS {
		if update {
			d.lastFpsText = fmt.Sprintf("FPS: %d", rl.GetFPS())
		}
		drawRight(d.lastFpsText, screenW, y)
		y += fpsLineHeight
	}

	if d.ShowMemAlloc {
		if update {
			runtime.ReadMemStats(&d.lastMemStats)
			mb := float64(d.lastMemStats.Alloc) / (1024 * 1024)
			d.lastMemText = fmt.Sprintf("Mem: %.2f MiB", mb)
		}
		drawRight(d.lastMemText, screenW, y)
	}

	if d.ShowStats {
		lines := [...]string{
			"Sample: " + stats.Sample,
			fmt.Sprintf("Frame: %d", stats.Frame),
			fmt.Sprintf("Vertices: %d", stats.Vertices),
			fmt.Sprintf("Triangles: %d", stats.Triangles),
		}
		for k, line := range lines {
			rl.DrawText(line, fpsPadding, int32(fpsPadding+k*fpsLineHeight), fpsFontSize, rl.Green)
		}
	}
}

func drawRight(text string, screenW, y int32) {
	if text == "" {
		return
	}
	w := rl.MeasureText(text, fpsFontSize)
	rl.DrawText(text, screenW-w-fpsPadding, y, fpsFontSize, rl.Green)
}
