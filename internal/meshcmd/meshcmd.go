// Package meshcmd registers the mesh generation commands shared by the meshgen CLI
// and the meshview terminal.
package meshcmd

import (
	"flag"
	"fmt"
	"strconv"
	"strings"

	"mesh-lab/internal/colorconv"
	"mesh-lab/internal/commands"
	"mesh-lab/internal/mesh"
	"mesh-lab/internal/presets"
)

// Sink receives command output: generated meshes and plain text lines.
type Sink interface {
	Mesh(name string, m *mesh.Mesh) error
	Text(line string)
}

// Register adds torus, sphere, triangle, quad, preset, presets, hsv and help to reg.
func Register(reg *commands.Registry, sink Sink, lib *presets.Library) {
	registerTorus(reg, sink)
	registerSphere(reg, sink)

	reg.Register("triangle", "the RGB sample triangle", flag.NewFlagSet("triangle", flag.ContinueOnError), func() error {
		return sink.Mesh("triangle", mesh.Triangle())
	})
	reg.Register("quad", "the textured sample board (strip)", flag.NewFlagSet("quad", flag.ContinueOnError), func() error {
		return sink.Mesh("quad", mesh.Quad())
	})

	presetFS := flag.NewFlagSet("preset", flag.ContinueOnError)
	presetName := presetFS.String("name", "", "preset name (or first argument)")
	reg.Register("preset", "build a named preset", presetFS, func() error {
		name := *presetName
		if name == "" {
			name = presetFS.Arg(0)
		}
		if name == "" {
			return fmt.Errorf("preset: name required, one of %s", strings.Join(lib.Names(), ", "))
		}
		m, err := lib.Build(name)
		if err != nil {
			return err
		}
		return sink.Mesh(name, m)
	})

	reg.Register("presets", "list presets", flag.NewFlagSet("presets", flag.ContinueOnError), func() error {
		for _, p := range lib.All() {
			sink.Text(describePreset(p))
		}
		return nil
	})

	registerHSV(reg, sink)

	reg.Register("help", "list commands", flag.NewFlagSet("help", flag.ContinueOnError), func() error {
		for _, line := range reg.Help() {
			sink.Text(line)
		}
		return nil
	})
}

func registerTorus(reg *commands.Registry, sink Sink) {
	def := mesh.DefaultTorusOptions()
	fs := flag.NewFlagSet("torus", flag.ContinueOnError)
	row := fs.Int("row", def.Row, "segments around the pipe")
	column := fs.Int("column", def.Column, "segments around the ring")
	inner := fs.Float64("inner", float64(def.InnerRadius), "pipe radius")
	outer := fs.Float64("outer", float64(def.OuterRadius), "ring radius")
	name := fs.String("name", "torus", "mesh name")
	var color colorFlag
	fs.Var(&color, "color", "fixed RGBA color r,g,b[,a] (default hue sweep)")
	reg.Register("torus", "generate a torus", fs, func() error {
		m, err := mesh.GenerateTorus(mesh.TorusOptions{
			Row:         *row,
			Column:      *column,
			InnerRadius: float32(*inner),
			OuterRadius: float32(*outer),
			Color:       color.ptr(),
		})
		if err != nil {
			return err
		}
		return sink.Mesh(*name, m)
	})
}

func registerSphere(reg *commands.Registry, sink Sink) {
	def := mesh.DefaultSphereOptions()
	fs := flag.NewFlagSet("sphere", flag.ContinueOnError)
	row := fs.Int("row", def.Row, "latitude bands")
	column := fs.Int("column", def.Column, "longitude segments")
	radius := fs.Float64("radius", float64(def.Radius), "sphere radius")
	topology := fs.String("topology", "list", "list (tinted) or strip (textured)")
	uvRow := fs.Bool("uv-row", false, "strip only: v = i/row instead of i/column")
	name := fs.String("name", "sphere", "mesh name")
	var color colorFlag
	fs.Var(&color, "color", "fixed RGBA color r,g,b[,a] (default hue sweep)")
	reg.Register("sphere", "generate a sphere", fs, func() error {
		topo, err := mesh.ParseTopology(*topology)
		if err != nil {
			return err
		}
		m, err := mesh.GenerateSphere(mesh.SphereOptions{
			Row:              *row,
			Column:           *column,
			Radius:           float32(*radius),
			Color:            color.ptr(),
			Topology:         topo,
			UVRowDenominator: *uvRow,
		})
		if err != nil {
			return err
		}
		return sink.Mesh(*name, m)
	})
}

func registerHSV(reg *commands.Registry, sink Sink) {
	fs := flag.NewFlagSet("hsv", flag.ContinueOnError)
	h := fs.Float64("h", 0, "hue in degrees")
	s := fs.Float64("s", 1, "saturation [0,1]")
	v := fs.Float64("v", 1, "value [0,1]")
	a := fs.Float64("a", 1, "alpha [0,1]")
	steps := fs.Int("steps", 0, "print a hue sweep of this many steps instead")
	reg.Register("hsv", "convert HSV to RGBA", fs, func() error {
		if *steps > 0 {
			for k := 0; k < *steps; k++ {
				sink.Text(fmt.Sprintf("%d: %s", k, formatColor(colorconv.Sweep(k, *steps))))
			}
			return nil
		}
		sink.Text(formatColor(colorconv.HSVA(float32(*h), float32(*s), float32(*v), float32(*a))))
		return nil
	})
}

func describePreset(p presets.Preset) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: %s", p.Name, p.Kind)
	if p.Topology != "" {
		fmt.Fprintf(&b, " %s", p.Topology)
	}
	switch p.Kind {
	case presets.KindTorus:
		fmt.Fprintf(&b, " %dx%d r=%g R=%g", p.Row, p.Column, p.InnerRadius, p.OuterRadius)
	case presets.KindSphere:
		fmt.Fprintf(&b, " %dx%d r=%g", p.Row, p.Column, p.Radius)
	}
	if len(p.Color) > 0 {
		fmt.Fprintf(&b, " color=%v", p.Color)
	}
	return b.String()
}

func formatColor(c [4]float32) string {
	parts := make([]string, len(c))
	for k, f := range c {
		parts[k] = strconv.FormatFloat(float64(f), 'g', 4, 32)
	}
	return strings.Join(parts, ",")
}

// colorFlag parses "r,g,b" or "r,g,b,a". The empty string clears it.
type colorFlag struct {
	set bool
	c   [4]float32
}

func (f *colorFlag) String() string {
	if f == nil || !f.set {
		return ""
	}
	return formatColor(f.c)
}

func (f *colorFlag) Set(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		*f = colorFlag{}
		return nil
	}
	parts := strings.Split(s, ",")
	if len(parts) != 3 && len(parts) != 4 {
		return fmt.Errorf("color needs 3 or 4 components, got %d", len(parts))
	}
	c := [4]float32{0, 0, 0, 1}
	for k, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 32)
		if err != nil {
			return fmt.Errorf("color component %d: %w", k, err)
		}
		c[k] = float32(v)
	}
	*f = colorFlag{set: true, c: c}
	return nil
}

func (f *colorFlag) ptr() *[4]float32 {
	if !f.set {
		return nil
	}
	c := f.c
	return &c
}
