// Command meshgen generates the sample meshes and writes them as JSON or OBJ.
//
//	meshgen [-format json|obj] [-o file] [-presets file] <command> [flags]
//	meshgen torus -row 32 -column 32 -inner 1 -outer 2
//	meshgen -format obj -o earth.obj preset earth
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"mesh-lab/internal/commands"
	"mesh-lab/internal/env"
	"mesh-lab/internal/export"
	"mesh-lab/internal/logger"
	"mesh-lab/internal/mesh"
	"mesh-lab/internal/meshcmd"
	"mesh-lab/internal/presets"
)

func main() {
	if err := env.Load(".env"); err != nil {
		fmt.Fprintln(os.Stderr, err)
	}
	format := flag.String("format", export.FormatJSON, "output format: json or obj")
	out := flag.String("o", "", "output file (default stdout)")
	presetsPath := flag.String("presets", env.String(env.PresetsKey, "assets/presets.yaml"), "preset YAML file")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: meshgen [flags] <command> [command flags]\n\nflags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(flag.CommandLine.Output(), "\ncommands: run \"meshgen help\" for the list\n")
	}
	flag.Parse()

	log := logger.New(env.String(env.LogKey, logger.DefaultPath))
	lib, err := presets.Load(*presetsPath)
	if err != nil {
		log.Log(err.Error())
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	sink := &fileSink{format: *format, path: *out, stdout: os.Stdout, log: log}
	reg := commands.NewRegistry()
	meshcmd.Register(reg, sink, lib)

	if err := reg.Execute(flag.Args()); err != nil {
		log.Logf("meshgen %v: %v", flag.Args(), err)
		fmt.Fprintln(os.Stderr, err)
		if errors.Is(err, commands.ErrMissing) {
			flag.Usage()
		}
		os.Exit(1)
	}
}

// fileSink writes meshes to path (stdout when empty) and text lines to stdout.
type fileSink struct {
	format string
	path   string
	stdout io.Writer
	log    *logger.Logger
}

func (s *fileSink) Mesh(name string, m *mesh.Mesh) error {
	s.log.Logf("generated %s: %s, %d vertices, %d indices", name, m.Topology, m.VertexCount(), m.IndexCount())
	if s.path == "" {
		return export.Write(s.stdout, s.format, name, m)
	}
	f, err := os.Create(s.path)
	if err != nil {
		return err
	}
	if err := export.Write(f, s.format, name, m); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	s.log.Logf("wrote %s", s.path)
	return nil
}

func (s *fileSink) Text(line string) {
	fmt.Fprintln(s.stdout, line)
}
