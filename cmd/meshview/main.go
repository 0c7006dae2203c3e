// Command meshview previews the generated meshes in the sample scenes.
//
// Tab cycles samples, ESC opens the command bar ("help" lists commands).
package main

import (
	"fmt"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"

	"mesh-lab/internal/commands"
	"mesh-lab/internal/debug"
	"mesh-lab/internal/env"
	"mesh-lab/internal/graphics"
	"mesh-lab/internal/logger"
	"mesh-lab/internal/meshcmd"
	"mesh-lab/internal/presets"
	"mesh-lab/internal/primitives"
	"mesh-lab/internal/samples"
	"mesh-lab/internal/scene"
	"mesh-lab/internal/terminal"
	"mesh-lab/internal/viewconfig"
)

func main() {
	if err := env.Load(".env"); err != nil {
		fmt.Fprintln(os.Stderr, err)
	}
	log := logger.New(env.String(env.LogKey, logger.DefaultPath))
	prefsPath := env.String(env.PrefsKey, viewconfig.DefaultPath)
	prefs, _ := viewconfig.Load(prefsPath)

	lib, err := presets.Load(env.String(env.PresetsKey, "assets/presets.yaml"))
	if err != nil {
		log.Log(err.Error())
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	meshes := primitives.NewRegistry()
	for _, name := range lib.Names() {
		m, err := lib.Build(name)
		if err == nil {
			err = meshes.Put(name, m)
		}
		if err != nil {
			log.Log(err.Error())
		}
	}

	catalog := samples.Catalog()
	v := &viewer{
		log:     log,
		meshes:  meshes,
		catalog: catalog,
		current: samples.Index(prefs.Sample),
		prefs:   prefs,
		dbg:     debug.New(),
	}
	v.scn = scene.New(meshes, catalog[v.current])
	v.applyPrefs()

	reg := commands.NewRegistry()
	meshcmd.Register(reg, v, lib)
	v.registerCommands(reg)
	term := terminal.New(log, reg)
	log.Logf("meshview: %d presets, sample %s", len(lib.Names()), catalog[v.current].ID)

	update := func() {
		term.Update()
		if !term.IsOpen() && rl.IsKeyPressed(rl.KeyTab) {
			v.cycle(1)
		}
		v.scn.Update(!term.IsOpen())
	}
	draw := func() {
		if v.prefs.Wireframe {
			rl.EnableWireMode()
		}
		v.scn.Draw()
		if v.prefs.Wireframe {
			rl.DisableWireMode()
		}
		term.Draw()
		vertices, triangles := v.scn.Stats()
		v.dbg.Draw(debug.Stats{
			Sample:    v.scn.Sample().ID + " " + v.scn.Sample().Title,
			Frame:     v.scn.Frame(),
			Vertices:  vertices,
			Triangles: triangles,
		})
	}
	shutdown := func() {
		meshes.Unload()
		if err := viewconfig.Save(prefsPath, v.prefs); err != nil {
			log.Log(err.Error())
		}
	}
	graphics.Run(graphics.Options{
		Title:     "mesh-lab",
		Width:     1280,
		Height:    720,
		TargetFPS: int32(prefs.TargetFPS),
		Clear:     v.scn.ClearColor,
	}, update, draw, shutdown)
}
