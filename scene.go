package lignum

import (
	"github.com/go-gl/mathgl/mgl32"
)

type NodeId uint64

// TransformComponent places a node in world space.
type TransformComponent struct {
	Position mgl32.Vec3
	Rotation mgl32.Quat
	Scale    mgl32.Vec3
}

// Matrix composes translate * rotate * scale.
func (t TransformComponent) Matrix() mgl32.Mat4 {
	rot := t.Rotation
	if rot.Len() == 0 {
		rot = mgl32.QuatIdent()
	}
	scale := t.Scale
	if scale == (mgl32.Vec3{}) {
		scale = mgl32.Vec3{1, 1, 1}
	}
	return mgl32.Translate3D(t.Position.X(), t.Position.Y(), t.Position.Z()).
		Mul4(rot.Mat4()).
		Mul4(mgl32.Scale3D(scale.X(), scale.Y(), scale.Z()))
}

// MeshComponent references a mesh asset.
type MeshComponent struct {
	Mesh AssetId
}

type LightType int

const (
	LightDirectional LightType = iota
	LightPoint
)

// LightComponent is carried by non-renderable light nodes.
type LightComponent struct {
	Type      LightType
	Color     [3]float32
	Intensity float32
}

// Node is one entry of the owned scene representation. A node is
// renderable when it has both a mesh and a material and is not an
// overlay (overlays are visualization helpers like the section outline,
// excluded from selection and preset export).
type Node struct {
	Id        NodeId
	Name      string
	Transform TransformComponent
	Mesh      *MeshComponent
	Material  *MaterialComponent
	Light     *LightComponent
	Overlay   bool
	Visible   bool
}

// Scene is a flat store of nodes with stable ids. Traversal order is
// insertion order, which makes facade selection deterministic.
type Scene struct {
	nodes  []*Node
	byId   map[NodeId]*Node
	nextId NodeId
}

func NewScene() *Scene {
	return &Scene{
		byId:   make(map[NodeId]*Node),
		nextId: 1,
	}
}

// AddNode inserts a node and assigns its id.
func (s *Scene) AddNode(node *Node) NodeId {
	node.Id = s.nextId
	s.nextId++
	s.nodes = append(s.nodes, node)
	s.byId[node.Id] = node
	return node.Id
}

// RemoveNode deletes a node by id. Unknown ids are ignored.
func (s *Scene) RemoveNode(id NodeId) {
	if _, ok := s.byId[id]; !ok {
		return
	}
	delete(s.byId, id)
	for i, n := range s.nodes {
		if n.Id == id {
			s.nodes = append(s.nodes[:i], s.nodes[i+1:]...)
			break
		}
	}
}

// Node looks up a node by id.
func (s *Scene) Node(id NodeId) (*Node, bool) {
	n, ok := s.byId[id]
	return n, ok
}

// Clear removes every node. Used when the underlying model is swapped.
func (s *Scene) Clear() {
	s.nodes = s.nodes[:0]
	s.byId = make(map[NodeId]*Node)
}

// Len returns the node count.
func (s *Scene) Len() int {
	return len(s.nodes)
}

// ForEachRenderable visits every visible mesh-bearing non-overlay node
// in insertion order. Returning false stops the traversal.
func (s *Scene) ForEachRenderable(visit func(node *Node, mesh *MeshComponent, mat *MaterialComponent) bool) {
	for _, n := range s.nodes {
		if !n.Visible || n.Overlay || n.Mesh == nil || n.Material == nil {
			continue
		}
		if !visit(n, n.Mesh, n.Material) {
			return
		}
	}
}

// ForEachMaterial visits every material in the scene, overlays included.
// Clip-plane toggling must reach every material so no surface renders
// unclipped while sectioned.
func (s *Scene) ForEachMaterial(visit func(mat *MaterialComponent)) {
	for _, n := range s.nodes {
		if n.Material != nil {
			visit(n.Material)
		}
	}
}

// SceneDef declares the initial content of a scene.
type SceneDef struct {
	Panels []FacadePanelDef
	Lights []LightDef
}

// FacadePanelDef declares one facade panel instantiation.
type FacadePanelDef struct {
	Name     string
	Position mgl32.Vec3
	Rotation mgl32.Quat
	Scale    mgl32.Vec3

	// Panel dimensions in world units and the number of plank rows.
	SizeX, SizeY, SizeZ float32
	PlankRows           int
}

// LightDef declares a light instantiation.
type LightDef struct {
	Type      LightType
	Position  mgl32.Vec3
	Color     [3]float32
	Intensity float32
}

// LoadScene iterates through the SceneDef and spawns nodes.
func LoadScene(cmd *Commands, assets *AssetServer, def *SceneDef) []NodeId {
	var ids []NodeId
	for _, panel := range def.Panels {
		ids = append(ids, spawnFacadePanel(cmd, assets, panel))
	}
	for _, light := range def.Lights {
		ids = append(ids, spawnLight(cmd, light))
	}
	return ids
}

func spawnFacadePanel(cmd *Commands, assets *AssetServer, def FacadePanelDef) NodeId {
	rows := def.PlankRows
	if rows < 1 {
		rows = 1
	}
	mesh := assets.CreatePanelMesh(def.SizeX, def.SizeY, def.SizeZ, rows)

	shading := ComputeShading(SpruceFir, FinishSmooth, Untreated, MinAgeYears, nil)
	mat := &MaterialComponent{}
	mat.SetShading(shading)

	return cmd.AddNode(&Node{
		Name: def.Name,
		Transform: TransformComponent{
			Position: def.Position,
			Rotation: def.Rotation,
			Scale:    def.Scale,
		},
		Mesh:     &MeshComponent{Mesh: mesh},
		Material: mat,
		Visible:  true,
	})
}

func spawnLight(cmd *Commands, def LightDef) NodeId {
	return cmd.AddNode(&Node{
		Name: "light",
		Transform: TransformComponent{
			Position: def.Position,
		},
		Light: &LightComponent{
			Type:      def.Type,
			Color:     def.Color,
			Intensity: def.Intensity,
		},
		Visible: true,
	})
}
