package lignum

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"
)

type AssetId string

func makeAssetId() AssetId {
	return AssetId(uuid.NewString())
}

// AssetServer owns the triangle-mesh assets referenced by scene nodes.
// Assets are opaque to the algorithms: only bounding-box queries and raw
// vertex iteration are exposed.
type AssetServer struct {
	meshes map[AssetId]MeshAsset
}

type AssetServerModule struct{}

func (m AssetServerModule) Install(app *App, cmd *Commands) {
	cmd.AddResources(NewAssetServer())
}

func NewAssetServer() *AssetServer {
	return &AssetServer{
		meshes: make(map[AssetId]MeshAsset),
	}
}

// MeshAsset is an immutable triangle mesh: local-space vertex positions,
// triangle indices and a precomputed local bounding box.
type MeshAsset struct {
	version   uint
	positions []mgl32.Vec3
	indices   []uint32
	localBox  AABB
}

// Positions returns the local-space vertex positions.
func (a MeshAsset) Positions() []mgl32.Vec3 {
	return a.positions
}

// Indices returns the triangle index list.
func (a MeshAsset) Indices() []uint32 {
	return a.indices
}

// Mesh looks up a mesh asset by id.
func (server *AssetServer) Mesh(id AssetId) (MeshAsset, bool) {
	mesh, ok := server.meshes[id]
	return mesh, ok
}

// LoadMesh registers an externally produced triangle mesh.
func (server *AssetServer) LoadMesh(positions []mgl32.Vec3, indices []uint32) (AssetId, error) {
	if len(positions) == 0 {
		return "", fmt.Errorf("mesh has no vertices")
	}
	if len(indices)%3 != 0 {
		return "", fmt.Errorf("index count %d is not a multiple of 3", len(indices))
	}
	id := makeAssetId()
	server.meshes[id] = MeshAsset{
		version:   0,
		positions: positions,
		indices:   indices,
		localBox:  boxFromPositions(positions),
	}
	return id, nil
}

// CreateBoxMesh builds an axis-aligned box of the given size, resting on
// y=0 and centered in X/Z. Only the 8 corners are emitted.
func (server *AssetServer) CreateBoxMesh(sizeX, sizeY, sizeZ float32) AssetId {
	positions, indices := boxGeometry(sizeX, sizeY, sizeZ, 1)
	id, _ := server.LoadMesh(positions, indices)
	return id
}

// CreatePanelMesh builds a facade panel: a box subdivided into `rows`
// horizontal plank bands, so every band boundary contributes a ring of
// vertices. The extra rings are what the section extractor picks up.
func (server *AssetServer) CreatePanelMesh(sizeX, sizeY, sizeZ float32, rows int) AssetId {
	if rows < 1 {
		rows = 1
	}
	positions, indices := boxGeometry(sizeX, sizeY, sizeZ, rows)
	id, _ := server.LoadMesh(positions, indices)
	return id
}

// CreateOutlineMesh builds a flat line-strip mesh at the given height
// from an ordered section polygon, closing the loop. Used for the
// section overlay node.
func (server *AssetServer) CreateOutlineMesh(points []mgl32.Vec2, height float32) (AssetId, bool) {
	if len(points) < 2 {
		return "", false
	}
	positions := make([]mgl32.Vec3, 0, len(points)+1)
	for _, p := range points {
		positions = append(positions, mgl32.Vec3{p.X(), height, p.Y()})
	}
	positions = append(positions, positions[0])
	id, err := server.LoadMesh(positions, nil)
	if err != nil {
		return "", false
	}
	return id, true
}

// boxGeometry emits a box resting on y=0, centered in X/Z, with rows+1
// vertex rings stacked bottom to top. Side faces are quads between
// consecutive rings; top and bottom are capped.
func boxGeometry(sizeX, sizeY, sizeZ float32, rows int) ([]mgl32.Vec3, []uint32) {
	hx, hz := sizeX/2, sizeZ/2
	var positions []mgl32.Vec3
	for r := 0; r <= rows; r++ {
		y := sizeY * float32(r) / float32(rows)
		positions = append(positions,
			mgl32.Vec3{-hx, y, -hz},
			mgl32.Vec3{hx, y, -hz},
			mgl32.Vec3{hx, y, hz},
			mgl32.Vec3{-hx, y, hz},
		)
	}

	var indices []uint32
	quad := func(a, b, c, d uint32) {
		indices = append(indices, a, b, c, a, c, d)
	}
	for r := 0; r < rows; r++ {
		lo := uint32(r * 4)
		hi := uint32((r + 1) * 4)
		for i := uint32(0); i < 4; i++ {
			j := (i + 1) % 4
			quad(lo+i, lo+j, hi+j, hi+i)
		}
	}
	top := uint32(rows * 4)
	quad(0, 3, 2, 1)
	quad(top, top+1, top+2, top+3)

	return positions, indices
}

// AABB is an axis-aligned bounding box in whatever space its inputs
// were in.
type AABB struct {
	Min, Max mgl32.Vec3
}

func (box AABB) Center() mgl32.Vec3 {
	return box.Min.Add(box.Max).Mul(0.5)
}

func (box AABB) Size() mgl32.Vec3 {
	return box.Max.Sub(box.Min)
}

// FootprintArea is the facade-relevant projected area: width times
// height in the two non-depth axes.
func (box AABB) FootprintArea() float32 {
	size := box.Size()
	return size.X() * size.Y()
}

func boxFromPositions(positions []mgl32.Vec3) AABB {
	box := AABB{Min: positions[0], Max: positions[0]}
	for _, p := range positions[1:] {
		box = box.extend(p)
	}
	return box
}

func (box AABB) extend(p mgl32.Vec3) AABB {
	for i := 0; i < 3; i++ {
		if p[i] < box.Min[i] {
			box.Min[i] = p[i]
		}
		if p[i] > box.Max[i] {
			box.Max[i] = p[i]
		}
	}
	return box
}

// WorldBox transforms the local bounding box into world space by
// running all 8 corners through the model matrix.
func (a MeshAsset) WorldBox(model mgl32.Mat4) AABB {
	local := a.localBox
	corners := [8]mgl32.Vec3{
		{local.Min.X(), local.Min.Y(), local.Min.Z()},
		{local.Max.X(), local.Min.Y(), local.Min.Z()},
		{local.Min.X(), local.Max.Y(), local.Min.Z()},
		{local.Max.X(), local.Max.Y(), local.Min.Z()},
		{local.Min.X(), local.Min.Y(), local.Max.Z()},
		{local.Max.X(), local.Min.Y(), local.Max.Z()},
		{local.Min.X(), local.Max.Y(), local.Max.Z()},
		{local.Max.X(), local.Max.Y(), local.Max.Z()},
	}
	first := model.Mul4x1(corners[0].Vec4(1)).Vec3()
	box := AABB{Min: first, Max: first}
	for _, c := range corners[1:] {
		box = box.extend(model.Mul4x1(c.Vec4(1)).Vec3())
	}
	return box
}

// EachWorldVertex visits every vertex position transformed to world
// space. Iteration order is the buffer order.
func (a MeshAsset) EachWorldVertex(model mgl32.Mat4, visit func(mgl32.Vec3)) {
	for _, p := range a.positions {
		visit(model.Mul4x1(p.Vec4(1)).Vec3())
	}
}
