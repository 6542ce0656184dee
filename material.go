package lignum

import (
	"slices"

	"github.com/go-gl/mathgl/mgl32"
)

// ClipPlane is the plane equation handed to the renderer: points p with
// Normal·p + Offset < 0 are clipped away.
type ClipPlane struct {
	Normal mgl32.Vec3
	Offset float32
}

// SectionClipPlane builds the horizontal plane used for the section cut.
// The normal points down so geometry above clipHeight is removed.
func SectionClipPlane(clipHeight float32) ClipPlane {
	return ClipPlane{
		Normal: mgl32.Vec3{0, -1, 0},
		Offset: clipHeight,
	}
}

// MaterialComponent is the per-node shading state consumed by a renderer
// backend. Mutations bump a version counter exactly once per actual
// change; backends diff versions on their own update cycle instead of
// being poked every frame.
type MaterialComponent struct {
	Color               mgl32.Vec3
	Roughness           float32
	Metalness           float32
	ReflectionIntensity float32
	ClipPlanes          []ClipPlane

	version uint64
}

// Version returns the current change counter.
func (m *MaterialComponent) Version() uint64 {
	return m.version
}

// SetShading overwrites all four shading fields at once. Clip planes are
// untouched; shading and clipping are independent axes.
func (m *MaterialComponent) SetShading(s ShadingState) {
	if m.Color == s.Color &&
		m.Roughness == s.Roughness &&
		m.Metalness == s.Metalness &&
		m.ReflectionIntensity == s.ReflectionIntensity {
		return
	}
	m.Color = s.Color
	m.Roughness = s.Roughness
	m.Metalness = s.Metalness
	m.ReflectionIntensity = s.ReflectionIntensity
	m.version++
}

// Shading returns the current shading fields as a ShadingState.
func (m *MaterialComponent) Shading() ShadingState {
	return ShadingState{
		Color:               m.Color,
		Roughness:           m.Roughness,
		Metalness:           m.Metalness,
		ReflectionIntensity: m.ReflectionIntensity,
	}
}

// SetClipPlanes replaces the clip-plane list.
func (m *MaterialComponent) SetClipPlanes(planes []ClipPlane) {
	if slices.Equal(m.ClipPlanes, planes) {
		return
	}
	m.ClipPlanes = slices.Clone(planes)
	m.version++
}

// ClearClipPlanes removes all clip planes.
func (m *MaterialComponent) ClearClipPlanes() {
	if len(m.ClipPlanes) == 0 {
		return
	}
	m.ClipPlanes = nil
	m.version++
}
