package lignum

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Selection is the raw categorical input from the configuration UI.
// Unrecognized values resolve to defaults; the viewer always renders
// something.
type Selection struct {
	Species     string
	Finish      string
	Treatment   string
	FinishColor string
	AgeYears    int
}

// SectionView is what the section-overlay display receives.
type SectionView struct {
	Points  []mgl32.Vec2
	Visible bool
}

// SectionSink receives the section polygon whenever it changes. The
// overlay display registers one instead of sharing a mutable handle
// with the controller.
type SectionSink interface {
	PublishSection(view SectionView)
}

// SceneController orchestrates facade selection, shading, clipping and
// camera commands. Two states: idle (clipping off) and sectioned
// (clipping on). All three commands are idempotent within their state
// and run synchronously on the caller's goroutine.
type SceneController struct {
	scene  *Scene
	assets *AssetServer
	camera *CameraComponent
	log    Logger
	sink   SectionSink

	sectioned   bool
	clipHeight  float32
	section     []mgl32.Vec2
	overlayNode NodeId
}

func NewSceneController(scene *Scene, assets *AssetServer, camera *CameraComponent, log Logger) *SceneController {
	if log == nil {
		log = NewNopLogger()
	}
	return &SceneController{
		scene:  scene,
		assets: assets,
		camera: camera,
		log:    log,
	}
}

// SetSectionSink registers the overlay display. Passing nil detaches it.
func (c *SceneController) SetSectionSink(sink SectionSink) {
	c.sink = sink
}

// Sectioned reports whether the clipping state is active.
func (c *SceneController) Sectioned() bool {
	return c.sectioned
}

// Section returns a copy of the current section polygon. Empty while
// idle.
func (c *SceneController) Section() []mgl32.Vec2 {
	out := make([]mgl32.Vec2, len(c.section))
	copy(out, c.section)
	return out
}

// ClipHeight is only meaningful while sectioned.
func (c *SceneController) ClipHeight() float32 {
	return c.clipHeight
}

// Configure recomputes the shading state from the selection and applies
// it to every renderable material. The state is computed once and then
// assigned surface by surface in a single synchronous pass, so the
// renderer never sees a partially updated model. Clip planes are not
// touched: shading and clipping are independent axes.
func (c *SceneController) Configure(sel Selection) ShadingState {
	species := ResolveWoodSpecies(sel.Species)
	finish := ResolveSurfaceFinish(sel.Finish)
	treatment := ResolveTreatment(sel.Treatment)
	age := ClampAgeYears(sel.AgeYears)
	finishColor := ResolveFinishColor(treatment, sel.FinishColor)

	shading := ComputeShading(species, finish, treatment, age, finishColor)

	count := 0
	c.scene.ForEachRenderable(func(_ *Node, _ *MeshComponent, mat *MaterialComponent) bool {
		mat.SetShading(shading)
		count++
		return true
	})
	c.log.Debugf("applied shading to %d surfaces (age %d)", count, age)

	return shading
}

// Reset returns the camera to the default pose and, when sectioned,
// clears clip planes, removes the overlay and publishes an empty
// polygon. Valid and idempotent in any state.
func (c *SceneController) Reset() {
	ResetCamera(c.camera)
	if c.sectioned {
		c.disableSection()
	}
}

// ZoomToFit re-selects the facade and frames it. Clipping state is left
// alone. With no renderable geometry the camera falls back to the
// default pose.
func (c *SceneController) ZoomToFit() {
	_, box, ok := SelectFacade(c.scene, c.assets)
	if !ok {
		c.log.Debugf("zoom-to-fit: no facade mesh, resetting camera")
		ResetCamera(c.camera)
		return
	}
	FrameMesh(c.camera, box)
}

// ToggleSection flips between idle and sectioned. Toggling on always
// re-selects the facade and recomputes the clip height and polygon;
// nothing from a previous cut is reused, the model may have been
// swapped in between.
func (c *SceneController) ToggleSection() {
	if c.sectioned {
		c.disableSection()
		return
	}
	c.enableSection()
}

func (c *SceneController) enableSection() {
	node, box, ok := SelectFacade(c.scene, c.assets)
	if !ok {
		c.log.Debugf("toggle-section: no facade mesh, staying idle")
		return
	}

	mesh, found := c.assets.Mesh(node.Mesh.Mesh)
	if !found {
		c.log.Warnf("toggle-section: facade mesh asset %s missing", node.Mesh.Mesh)
		return
	}

	clipHeight := ClipHeightFor(box)
	polygon := ExtractSection(mesh, node.Transform.Matrix(), clipHeight, SectionTolerance)

	c.spawnOverlay(polygon, clipHeight)

	plane := SectionClipPlane(clipHeight)
	c.scene.ForEachMaterial(func(mat *MaterialComponent) {
		mat.SetClipPlanes([]ClipPlane{plane})
	})

	c.clipHeight = clipHeight
	c.section = polygon
	c.sectioned = true
	c.publish(SectionView{Points: c.Section(), Visible: true})
	c.log.Infof("section enabled at height %.3f with %d boundary points", clipHeight, len(polygon))
}

// disableSection restores every material's clip-plane list before the
// next frame renders; a partially clipped frame is never visible.
func (c *SceneController) disableSection() {
	c.removeOverlay()
	c.scene.ForEachMaterial(func(mat *MaterialComponent) {
		mat.ClearClipPlanes()
	})

	c.section = nil
	c.clipHeight = 0
	c.sectioned = false
	c.publish(SectionView{Visible: false})
	c.log.Infof("section disabled")
}

// spawnOverlay adds the section-outline visualization node. Degenerate
// polygons produce no overlay; the sink still learns about them.
func (c *SceneController) spawnOverlay(polygon []mgl32.Vec2, clipHeight float32) {
	c.removeOverlay()

	outline, ok := c.assets.CreateOutlineMesh(polygon, clipHeight)
	if !ok {
		return
	}
	c.overlayNode = c.scene.AddNode(&Node{
		Name:     "section-outline",
		Mesh:     &MeshComponent{Mesh: outline},
		Material: &MaterialComponent{Color: mgl32.Vec3{1, 0.25, 0.1}, ReflectionIntensity: 1},
		Overlay:  true,
		Visible:  true,
	})
}

func (c *SceneController) removeOverlay() {
	if c.overlayNode == 0 {
		return
	}
	c.scene.RemoveNode(c.overlayNode)
	c.overlayNode = 0
}

func (c *SceneController) publish(view SectionView) {
	if c.sink != nil {
		c.sink.PublishSection(view)
	}
}

// ConfiguratorModule wires the camera and scene controller as app
// resources. Install AssetServerModule (and optionally LoggingModule)
// first.
type ConfiguratorModule struct {
	FovDegrees float32
	Sink       SectionSink
}

func (m ConfiguratorModule) Install(app *App, cmd *Commands) {
	fov := m.FovDegrees
	if fov <= 0 {
		fov = 50
	}

	assets, ok := GetResource[AssetServer](app)
	if !ok {
		assets = NewAssetServer()
		cmd.AddResources(assets)
	}

	camera := NewCameraComponent(mgl32.DegToRad(fov))
	controller := NewSceneController(app.Scene(), assets, camera, app.Logger())
	if m.Sink != nil {
		controller.SetSectionSink(m.Sink)
	}
	cmd.AddResources(camera, controller)
}
