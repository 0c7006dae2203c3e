package presets

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/jinzhu/copier"
	"gopkg.in/yaml.v3"

	"mesh-lab/internal/mesh"
)

// Preset kinds.
const (
	KindTorus    = "torus"
	KindSphere   = "sphere"
	KindTriangle = "triangle"
	KindQuad     = "quad"
)

var (
	// ErrUnknownPreset is returned by Library.Get for names that are not registered.
	ErrUnknownPreset = errors.New("unknown preset")
	// ErrUnknownKind is returned by Build for unsupported kinds.
	ErrUnknownKind = errors.New("unknown mesh kind")
)

// Preset is the YAML definition of one generated mesh (e.g. an entry of assets/presets.yaml).
// Unused fields for a kind are ignored: radius for spheres, inner/outer radius for tori.
type Preset struct {
	Name        string    `yaml:"name"`
	Kind        string    `yaml:"kind"`
	Topology    string    `yaml:"topology,omitempty"`
	Row         int       `yaml:"row,omitempty"`
	Column      int       `yaml:"column,omitempty"`
	Radius      float32   `yaml:"radius,omitempty"`
	InnerRadius float32   `yaml:"inner_radius,omitempty"`
	OuterRadius float32   `yaml:"outer_radius,omitempty"`
	Color       []float32 `yaml:"color,flow,omitempty"`
	// UVRowDenominator switches textured spheres to v = i/row.
	UVRowDenominator bool `yaml:"uv_row_denominator,omitempty"`
}

// file is the on-disk layout.
type file struct {
	Presets []Preset `yaml:"presets"`
}

// Defaults returns the meshes drawn by the sample scenes.
func Defaults() []Preset {
	return []Preset{
		{Name: "triangle", Kind: KindTriangle},
		{Name: "ambient-torus", Kind: KindTorus, Row: 32, Column: 32, InnerRadius: 1, OuterRadius: 2},
		{Name: "point-torus", Kind: KindTorus, Row: 32, Column: 32, InnerRadius: 0.5, OuterRadius: 1.5, Color: []float32{0.75, 0.25, 0.25, 1}},
		{Name: "point-sphere", Kind: KindSphere, Topology: "list", Row: 32, Column: 32, Radius: 1, Color: []float32{0.25, 0.75, 0.75, 1}},
		{Name: "texture-quad", Kind: KindQuad},
		{Name: "earth", Kind: KindSphere, Topology: "strip", Row: 32, Column: 32, Radius: 5},
	}
}

// Build generates the mesh the preset describes.
func (p Preset) Build() (*mesh.Mesh, error) {
	color, err := p.fixedColor()
	if err != nil {
		return nil, err
	}
	var m *mesh.Mesh
	switch p.Kind {
	case KindTorus:
		m, err = mesh.GenerateTorus(mesh.TorusOptions{
			Row:         p.Row,
			Column:      p.Column,
			InnerRadius: p.InnerRadius,
			OuterRadius: p.OuterRadius,
			Color:       color,
		})
	case KindSphere:
		var topo mesh.Topology
		topo, err = mesh.ParseTopology(p.Topology)
		if err != nil {
			break
		}
		m, err = mesh.GenerateSphere(mesh.SphereOptions{
			Row:              p.Row,
			Column:           p.Column,
			Radius:           p.Radius,
			Color:            color,
			Topology:         topo,
			UVRowDenominator: p.UVRowDenominator,
		})
	case KindTriangle:
		m = mesh.Triangle()
	case KindQuad:
		m = mesh.Quad()
	default:
		err = fmt.Errorf("%w %q", ErrUnknownKind, p.Kind)
	}
	if err != nil {
		return nil, fmt.Errorf("presets: %s: %w", p.Name, err)
	}
	return m, nil
}

func (p Preset) fixedColor() (*[4]float32, error) {
	switch len(p.Color) {
	case 0:
		return nil, nil
	case 3:
		return &[4]float32{p.Color[0], p.Color[1], p.Color[2], 1}, nil
	case 4:
		c := [4]float32(p.Color)
		return &c, nil
	}
	return nil, fmt.Errorf("presets: %s: color needs 3 or 4 components, got %d", p.Name, len(p.Color))
}

// Library is a named set of presets, safe for concurrent use.
type Library struct {
	mu      sync.RWMutex
	presets map[string]Preset
}

// NewLibrary returns a library holding the given presets. Later entries replace
// earlier ones with the same name.
func NewLibrary(presets ...Preset) *Library {
	l := &Library{presets: make(map[string]Preset, len(presets))}
	for _, p := range presets {
		l.Put(p)
	}
	return l
}

// Put adds or replaces a preset.
func (l *Library) Put(p Preset) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.presets[p.Name] = p
}

// Get returns a copy of the named preset; editing it does not change the library.
func (l *Library) Get(name string) (Preset, error) {
	l.mu.RLock()
	p, ok := l.presets[name]
	l.mu.RUnlock()
	if !ok {
		return Preset{}, fmt.Errorf("presets: %w %q", ErrUnknownPreset, name)
	}
	var out Preset
	if err := copier.CopyWithOption(&out, &p, copier.Option{DeepCopy: true}); err != nil {
		return Preset{}, fmt.Errorf("presets: %w", err)
	}
	return out, nil
}

// Names returns the preset names in sorted order.
func (l *Library) Names() []string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	names := make([]string, 0, len(l.presets))
	for name := range l.presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// All returns copies of every preset, sorted by name.
func (l *Library) All() []Preset {
	names := l.Names()
	out := make([]Preset, 0, len(names))
	for _, name := range names {
		if p, err := l.Get(name); err == nil {
			out = append(out, p)
		}
	}
	return out
}

// Build generates the named preset.
func (l *Library) Build(name string) (*mesh.Mesh, error) {
	p, err := l.Get(name)
	if err != nil {
		return nil, err
	}
	return p.Build()
}

// Load returns the default presets overlaid with the presets in the YAML file at path.
// A missing file yields just the defaults and no error; a file that does not parse is an error.
func Load(path string) (*Library, error) {
	lib := NewLibrary(Defaults()...)
	if path == "" {
		return lib, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return lib, nil
		}
		return nil, fmt.Errorf("presets: %w", err)
	}
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("presets: %s: %w", path, err)
	}
	for k, p := range f.Presets {
		if p.Name == "" {
			return nil, fmt.Errorf("presets: %s: entry %d has no name", path, k)
		}
		lib.Put(p)
	}
	return lib, nil
}

// Save writes presets to path as YAML, creating the directory if needed.
func Save(path string, presets []Preset) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("presets: %w", err)
	}
	data, err := yaml.Marshal(file{Presets: presets})
	if err != nil {
		return fmt.Errorf("presets: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}
