package colorconv

import (
	"github.com/chewxy/math32"
)

// Black is returned for out-of-range HSV input.
var Black = [4]float32{0, 0, 0, 1}

// White is the untinted vertex color.
var White = [4]float32{1, 1, 1, 1}

// HSVA converts hue h (degrees, wrapped into [0,360)), saturation s, value v and alpha a
// to RGBA in [0,1]. s, v and a above 1 yield opaque Black instead of an error.
func HSVA(h, s, v, a float32) [4]float32 {
	if s > 1 || v > 1 || a > 1 {
		return Black
	}
	if s == 0 {
		return [4]float32{v, v, v, a}
	}
	th := math32.Mod(h, 360)
	if th < 0 {
		th += 360
	}
	sector := math32.Floor(th / 60)
	f := th/60 - sector
	i := int(sector)
	// NaN or rounding at the 360 boundary can land outside the table.
	if i < 0 || i > 5 {
		i = 0
	}
	m := v * (1 - s)
	n := v * (1 - s*f)
	k := v * (1 - s*(1-f))

	r := [6]float32{v, n, m, m, k, v}
	g := [6]float32{k, v, v, n, m, m}
	b := [6]float32{m, m, k, v, v, n}
	return [4]float32{r[i], g[i], b[i], a}
}

// Sweep returns the fully saturated hue for step of steps around the color wheel,
// the way the torus and sphere generators tint rings and latitude bands.
func Sweep(step, steps int) [4]float32 {
	return HSVA(float32(step)*(360/float32(steps)), 1, 1, 1)
}
