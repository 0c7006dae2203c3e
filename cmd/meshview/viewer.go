package main

import (
	"flag"
	"fmt"
	"strings"

	"mesh-lab/internal/commands"
	"mesh-lab/internal/debug"
	"mesh-lab/internal/logger"
	"mesh-lab/internal/mesh"
	"mesh-lab/internal/primitives"
	"mesh-lab/internal/samples"
	"mesh-lab/internal/scene"
	"mesh-lab/internal/viewconfig"
)

// viewer ties the scene, the mesh registry and the overlays together and receives
// command output from the terminal.
type viewer struct {
	log     *logger.Logger
	meshes  *primitives.Registry
	scn     *scene.Scene
	catalog []samples.Sample
	current int
	prefs   viewconfig.Prefs
	dbg     *debug.Debug
}

// Mesh uploads a generated mesh. A name used by the current sample replaces that object
// in place; any other name is shown on its own.
func (v *viewer) Mesh(name string, m *mesh.Mesh) error {
	if err := v.meshes.Put(name, m); err != nil {
		return err
	}
	vertices, triangles := v.meshes.Stats(name)
	v.log.Logf("%s: %s, %d vertices, %d triangles", name, m.Topology, vertices, triangles)
	for _, used := range v.scn.Sample().Presets() {
		if used == name {
			return nil
		}
	}
	v.scn.SetSample(samples.Inspect(name, m.Extent()))
	return nil
}

// Text writes a command's output line to the terminal log.
func (v *viewer) Text(line string) {
	v.log.Log(line)
}

func (v *viewer) cycle(step int) {
	n := len(v.catalog)
	v.current = ((v.current+step)%n + n) % n
	v.show(v.catalog[v.current])
}

func (v *viewer) show(s samples.Sample) {
	v.scn.SetSample(s)
	v.prefs.Sample = s.ID
	v.log.Logf("sample %s: %s", s.ID, s.Title)
}

func (v *viewer) applyPrefs() {
	v.scn.SetGridVisible(v.prefs.GridVisible)
	v.dbg.SetShowFPS(v.prefs.ShowFPS)
	v.dbg.SetShowMemAlloc(v.prefs.ShowFPS)
	v.dbg.SetShowStats(v.prefs.ShowStats)
}

// registerCommands adds the preview-only commands: sample, samples, grid, fps, stats,
// wireframe, pause and prefs.
func (v *viewer) registerCommands(reg *commands.Registry) {
	sampleFS := flag.NewFlagSet("sample", flag.ContinueOnError)
	sampleID := sampleFS.String("id", "", "sample id (or first argument); empty = next")
	reg.Register("sample", "switch sample scene", sampleFS, func() error {
		id := *sampleID
		if id == "" {
			id = sampleFS.Arg(0)
		}
		if id == "" {
			v.cycle(1)
			return nil
		}
		s, ok := samples.Find(id)
		if !ok {
			return fmt.Errorf("unknown sample %q", id)
		}
		v.current = samples.Index(id)
		v.show(s)
		return nil
	})

	reg.Register("samples", "list sample scenes", flag.NewFlagSet("samples", flag.ContinueOnError), func() error {
		for _, s := range v.catalog {
			v.log.Logf("%s: %s (%s, %s)", s.ID, s.Title, strings.Join(s.Presets(), " "), s.Lighting)
		}
		return nil
	})

	v.registerToggle(reg, "grid", "show the editor grid", &v.prefs.GridVisible)
	v.registerToggle(reg, "fps", "show FPS and memory", &v.prefs.ShowFPS)
	v.registerToggle(reg, "stats", "show sample and mesh counters", &v.prefs.ShowStats)
	v.registerToggle(reg, "wireframe", "draw meshes as wireframe", &v.prefs.Wireframe)
	v.registerToggle(reg, "pause", "freeze the animation", &v.scn.Paused)

	reg.Register("prefs", "print preferences", flag.NewFlagSet("prefs", flag.ContinueOnError), func() error {
		v.log.Logf("%+v", v.prefs)
		return nil
	})
}

// registerToggle adds a command flipping *target, or setting it with -on=true|false.
func (v *viewer) registerToggle(reg *commands.Registry, name, usage string, target *bool) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	on := fs.String("on", "", "true or false; empty toggles")
	reg.Register(name, usage, fs, func() error {
		switch *on {
		case "":
			*target = !*target
		case "true", "1":
			*target = true
		case "false", "0":
			*target = false
		default:
			return fmt.Errorf("%s: -on wants true or false, got %q", name, *on)
		}
		v.applyPrefs()
		v.log.Logf("%s: %v", name, *target)
		return nil
	})
}
