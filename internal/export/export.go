// Package export writes generated meshes in formats other tools can load:
// a JSON document mirroring the buffer layout, and Wavefront OBJ.
package export

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"mesh-lab/internal/mesh"
)

// Format names accepted by Write.
const (
	FormatJSON = "json"
	FormatOBJ  = "obj"
)

// Document is the JSON form of a mesh. Array layouts match mesh.Mesh.
type Document struct {
	Name        string    `json:"name"`
	Topology    string    `json:"topology"`
	VertexCount int       `json:"vertexCount"`
	IndexCount  int       `json:"indexCount"`
	Positions   []float32 `json:"positions"`
	Normals     []float32 `json:"normals,omitempty"`
	Colors      []float32 `json:"colors,omitempty"`
	TexCoords   []float32 `json:"texcoords,omitempty"`
	Indices     []uint32  `json:"indices"`
}

// NewDocument wraps m for JSON encoding.
func NewDocument(name string, m *mesh.Mesh) Document {
	return Document{
		Name:        name,
		Topology:    m.Topology.String(),
		VertexCount: m.VertexCount(),
		IndexCount:  m.IndexCount(),
		Positions:   m.Positions,
		Normals:     m.Normals,
		Colors:      m.Colors,
		TexCoords:   m.TexCoords,
		Indices:     m.Indices,
	}
}

// Mesh converts the document back into a mesh.
func (d Document) Mesh() (*mesh.Mesh, error) {
	topo, err := mesh.ParseTopology(d.Topology)
	if err != nil {
		return nil, fmt.Errorf("export: %w", err)
	}
	m := &mesh.Mesh{
		Positions: d.Positions,
		Normals:   d.Normals,
		Colors:    d.Colors,
		TexCoords: d.TexCoords,
		Indices:   d.Indices,
		Topology:  topo,
	}
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("export: %w", err)
	}
	return m, nil
}

// Write encodes m in the named format.
func Write(w io.Writer, format, name string, m *mesh.Mesh) error {
	switch format {
	case "", FormatJSON:
		return WriteJSON(w, name, m)
	case FormatOBJ:
		return WriteOBJ(w, name, m)
	}
	return fmt.Errorf("export: unknown format %q", format)
}

// WriteJSON writes m as an indented JSON Document.
func WriteJSON(w io.Writer, name string, m *mesh.Mesh) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "\t")
	if err := enc.Encode(NewDocument(name, m)); err != nil {
		return fmt.Errorf("export: %w", err)
	}
	return nil
}

// ReadJSON decodes a Document written by WriteJSON.
func ReadJSON(r io.Reader) (string, *mesh.Mesh, error) {
	var d Document
	if err := json.NewDecoder(r).Decode(&d); err != nil {
		return "", nil, fmt.Errorf("export: %w", err)
	}
	m, err := d.Mesh()
	if err != nil {
		return "", nil, err
	}
	return d.Name, m, nil
}

// WriteOBJ writes m as a Wavefront OBJ object. Strips are expanded to triangles;
// OBJ has no vertex colors so they are dropped.
func WriteOBJ(w io.Writer, name string, m *mesh.Mesh) error {
	if err := m.Validate(); err != nil {
		return fmt.Errorf("export: %w", err)
	}
	list := m.AsTriangleList()
	hasNormals := len(list.Normals) > 0
	hasUV := len(list.TexCoords) > 0

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "# %d vertices, %d triangles\n", list.VertexCount(), list.TriangleCount())
	fmt.Fprintf(bw, "o %s\n", name)
	for k := 0; k+2 < len(list.Positions); k += 3 {
		fmt.Fprintf(bw, "v %s %s %s\n", ff(list.Positions[k]), ff(list.Positions[k+1]), ff(list.Positions[k+2]))
	}
	if hasUV {
		for k := 0; k+1 < len(list.TexCoords); k += 2 {
			// OBJ puts v=0 at the bottom of the image.
			fmt.Fprintf(bw, "vt %s %s\n", ff(list.TexCoords[k]), ff(1-list.TexCoords[k+1]))
		}
	}
	if hasNormals {
		for k := 0; k+2 < len(list.Normals); k += 3 {
			fmt.Fprintf(bw, "vn %s %s %s\n", ff(list.Normals[k]), ff(list.Normals[k+1]), ff(list.Normals[k+2]))
		}
	}
	for k := 0; k+2 < len(list.Indices); k += 3 {
		bw.WriteString("f")
		for _, idx := range list.Indices[k : k+3] {
			bw.WriteString(" ")
			bw.WriteString(objRef(idx+1, hasUV, hasNormals))
		}
		bw.WriteString("\n")
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("export: %w", err)
	}
	return nil
}

func objRef(idx uint32, uv, normal bool) string {
	s := strconv.FormatUint(uint64(idx), 10)
	switch {
	case uv && normal:
		return s + "/" + s + "/" + s
	case uv:
		return s + "/" + s
	case normal:
		return s + "//" + s
	}
	return s
}

func ff(f float32) string {
	return strconv.FormatFloat(float64(f), 'g', -1, 32)
}
