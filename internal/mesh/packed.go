package mesh

// Packed is a mesh narrowed to what fixed-function style GPU buffers take:
// a triangle list with 16-bit indices and 8-bit RGBA colors.
type Packed struct {
	Positions []float32
	Normals   []float32
	TexCoords []float32
	Colors    []uint8
	Indices   []uint16
	Vertices  int
	Triangles int
}

// Pack validates m and converts it for upload. Strips are expanded to lists;
// meshes with more than 65536 vertices fail with ErrIndexOverflow.
func (m *Mesh) Pack() (*Packed, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	list := m.AsTriangleList()
	idx, err := list.Indices16()
	if err != nil {
		return nil, err
	}
	p := &Packed{
		Positions: list.Positions,
		Normals:   list.Normals,
		TexCoords: list.TexCoords,
		Indices:   idx,
		Vertices:  list.VertexCount(),
		Triangles: list.TriangleCount(),
	}
	if len(list.Colors) > 0 {
		p.Colors = list.ColorsRGBA8()
	}
	return p, nil
}
