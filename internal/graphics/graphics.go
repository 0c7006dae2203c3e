package graphics

import rl "github.com/gen2brain/raylib-go/raylib"

// Options configures the window.
type Options struct {
	Title     string
	Width     int32 // 0 = monitor width, fullscreen
	Height    int32
	TargetFPS int32
	// Clear returns the background color for the frame; nil means black.
	Clear func() rl.Color
}

// Run opens the window and runs the main loop. Each frame it calls update (input, animation),
// then clears the screen and calls draw. When Width/Height are zero the window is fullscreen.
// ESC toggles the terminal, so the window is closed via the window button.
// shutdown, if non-nil, runs before the window closes so GPU resources can be released.
func Run(opts Options, update, draw, shutdown func()) {
	w, h := opts.Width, opts.Height
	if w == 0 || h == 0 {
		rl.SetConfigFlags(rl.FlagFullscreenMode | rl.FlagMsaa4xHint)
		rl.InitWindow(int32(rl.GetMonitorWidth(0)), int32(rl.GetMonitorHeight(0)), opts.Title)
	} else {
		rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
		rl.InitWindow(w, h, opts.Title)
	}
	defer rl.CloseWindow()

	rl.SetExitKey(rl.KeyNull) // ESC toggles the terminal
	fps := opts.TargetFPS
	if fps <= 0 {
		fps = 60
	}
	rl.SetTargetFPS(fps)

	for !rl.WindowShouldClose() {
		update()

		rl.BeginDrawing()
		bg := rl.Black
		if opts.Clear != nil {
			bg = opts.Clear()
		}
		rl.ClearBackground(bg)
		draw()
		rl.EndDrawing()
	}
	if shutdown != nil {
		shutdown()
	}
}
