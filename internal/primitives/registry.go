package primitives

import (
	"fmt"
	"unsafe"

	rl "github.com/gen2brain/raylib-go/raylib"

	"mesh-lab/internal/mesh"
	"mesh-lab/internal/samples"
)

// Light is the per-frame lighting setup shared by all lit meshes.
type Light struct {
	Vec     [3]float32 // direction to the light, or its position when Point is true
	Point   bool
	Ambient [4]float32
}

// cached holds the uploaded mesh and its materials. Meshes with UVs get the checker texture.
type cached struct {
	mesh      rl.Mesh
	mtl       rl.Material
	unlitMtl  rl.Material
	textured  bool
	vertices  int
	triangles int
}

// Registry maps mesh names to GPU meshes. Put only packs the data; the upload happens
// on first Draw so that GPU resources are allocated after the window/OpenGL context exists.
type Registry struct {
	cache        map[string]*cached
	pending      map[string]*mesh.Packed
	sources      map[string]*mesh.Mesh
	viewPos      [3]float32 // camera position, set each frame for lighting
	light        Light
	checker      rl.Texture2D
	litShader    rl.Shader
	litTexShader rl.Shader
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		cache:   make(map[string]*cached),
		pending: make(map[string]*mesh.Packed),
		sources: make(map[string]*mesh.Mesh),
		light: Light{
			Vec:     [3]float32{0.5, 1, 0.5},
			Ambient: [4]float32{0.2, 0.22, 0.26, 1.0},
		},
	}
}

// Put packs m for upload under name, replacing any mesh of the same name on the next Draw.
func (r *Registry) Put(name string, m *mesh.Mesh) error {
	p, err := m.Pack()
	if err != nil {
		return fmt.Errorf("primitives: %s: %w", name, err)
	}
	r.pending[name] = p
	r.sources[name] = m
	return nil
}

// Has reports whether a mesh is registered under name.
func (r *Registry) Has(name string) bool {
	if _, ok := r.pending[name]; ok {
		return true
	}
	_, ok := r.cache[name]
	return ok
}

// Stats returns vertex and triangle counts of the named mesh as uploaded (strips expanded).
func (r *Registry) Stats(name string) (vertices, triangles int) {
	if p, ok := r.pending[name]; ok {
		return p.Vertices, p.Triangles
	}
	if c, ok := r.cache[name]; ok {
		return c.vertices, c.triangles
	}
	return 0, 0
}

// Source returns the mesh registered under name, nil if unknown.
func (r *Registry) Source(name string) *mesh.Mesh {
	return r.sources[name]
}

// SetView sets camera position and lighting for this frame. Call once per frame
// before drawing objects so lit meshes get correct shading.
func (r *Registry) SetView(viewPos [3]float32, light Light) {
	r.viewPos = viewPos
	r.light = light
}

// ensure uploads the pending mesh for name, unloading any previous upload.
func (r *Registry) ensure(name string) *cached {
	p, ok := r.pending[name]
	if !ok {
		return r.cache[name]
	}
	delete(r.pending, name)
	if old, ok := r.cache[name]; ok {
		rl.UnloadMesh(&old.mesh)
	}
	r.ensureShared()

	gm := rl.Mesh{
		VertexCount:   int32(p.Vertices),
		TriangleCount: int32(p.Triangles),
		Vertices:      cFloats(p.Positions),
		Normals:       cFloats(p.Normals),
		Texcoords:     cFloats(p.TexCoords),
		Colors:        cBytes(p.Colors),
		Indices:       cShorts(p.Indices),
	}
	rl.UploadMesh(&gm, false)

	c := &cached{
		mesh:      gm,
		textured:  len(p.TexCoords) > 0,
		vertices:  p.Vertices,
		triangles: p.Triangles,
	}
	c.mtl = rl.LoadMaterialDefault()
	c.unlitMtl = rl.LoadMaterialDefault()
	if c.textured {
		if rl.IsShaderValid(r.litTexShader) {
			c.mtl.Shader = r.litTexShader
		}
		rl.SetMaterialTexture(&c.mtl, rl.MapAlbedo, r.checker)
		rl.SetMaterialTexture(&c.unlitMtl, rl.MapAlbedo, r.checker)
	} else if rl.IsShaderValid(r.litShader) {
		c.mtl.Shader = r.litShader
	}
	r.cache[name] = c
	return c
}

// ensureShared loads the shaders and the checker texture that stands in for image textures.
func (r *Registry) ensureShared() {
	if r.checker.ID != 0 {
		return
	}
	r.litShader = loadLitShader()
	r.litTexShader = loadLitTexturedShader()
	img := rl.GenImageChecked(256, 256, 32, 32, rl.NewColor(230, 230, 230, 255), rl.NewColor(40, 90, 160, 255))
	r.checker = rl.LoadTextureFromImage(img)
	rl.UnloadImage(img)
}

// Draw draws one instance of the named mesh with the given pose.
// Must be called between BeginMode3D and EndMode3D; SetView must be called earlier in the frame.
// Unknown names are skipped.
func (r *Registry) Draw(name string, pose samples.Pose, lighting samples.Lighting) {
	c := r.ensure(name)
	if c == nil {
		return
	}
	transform := poseMatrix(pose)
	if lighting == samples.Unlit {
		rl.DrawMesh(c.mesh, c.unlitMtl, transform)
		return
	}
	r.setLitShaderUniforms(c.mtl.Shader)
	rl.DrawMesh(c.mesh, c.mtl, transform)
}

// poseMatrix composes scale, then rotation about pose.Axis, then translation.
func poseMatrix(pose samples.Pose) rl.Matrix {
	scaleM := rl.MatrixScale(pose.Scale[0], pose.Scale[1], pose.Scale[2])
	transM := rl.MatrixTranslate(pose.Translate[0], pose.Translate[1], pose.Translate[2])
	if pose.Axis == [3]float32{} || pose.Angle == 0 {
		return rl.MatrixMultiply(scaleM, transM)
	}
	rotM := rl.MatrixRotate(rl.NewVector3(pose.Axis[0], pose.Axis[1], pose.Axis[2]), pose.Angle)
	return rl.MatrixMultiply(rl.MatrixMultiply(scaleM, rotM), transM)
}

// Unload releases every uploaded mesh and the shared texture and shaders.
// Call before the window closes.
func (r *Registry) Unload() {
	for name, c := range r.cache {
		rl.UnloadMesh(&c.mesh)
		delete(r.cache, name)
	}
	if r.checker.ID != 0 {
		rl.UnloadTexture(r.checker)
		rl.UnloadShader(r.litShader)
		rl.UnloadShader(r.litTexShader)
		r.checker = rl.Texture2D{}
	}
}

// The copies below live in raylib-allocated memory so that UnloadMesh can free them
// and no Go pointer is handed to C.

func cFloats(src []float32) *float32 {
	if len(src) == 0 {
		return nil
	}
	dst := unsafe.Slice((*float32)(rl.MemAlloc(uint32(len(src)*4))), len(src))
	copy(dst, src)
	return &dst[0]
}

func cShorts(src []uint16) *uint16 {
	if len(src) == 0 {
		return nil
	}
	dst := unsafe.Slice((*uint16)(rl.MemAlloc(uint32(len(src)*2))), len(src))
	copy(dst, src)
	return &dst[0]
}

func cBytes(src []uint8) *uint8 {
	if len(src) == 0 {
		return nil
	}
	dst := unsafe.Slice((*uint8)(rl.MemAlloc(uint32(len(src)))), len(src))
	copy(dst, src)
	return &dst[0]
}
