package lignum

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractSection_PanelCrossSection(t *testing.T) {
	assets := NewAssetServer()
	// 2x1x0.5 panel with 4 plank rows: vertex rings at y = 0, 0.25,
	// 0.5, 0.75, 1. The cut at bottom+0.5 lands exactly on a ring.
	id := assets.CreatePanelMesh(2, 1, 0.5, 4)
	mesh, ok := assets.Mesh(id)
	require.True(t, ok)

	box := mesh.WorldBox(mgl32.Ident4())
	clipHeight := ClipHeightFor(box)
	assert.InDelta(t, 0.5, clipHeight, 1e-6)

	polygon := ExtractSection(mesh, mgl32.Ident4(), clipHeight, SectionTolerance)
	require.Len(t, polygon, 4, "box cross-section must have exactly 4 boundary points")

	// Nearest-neighbor chaining must walk the rectangle perimeter for
	// this convex case: no self-intersecting edges.
	expected := []mgl32.Vec2{
		{-1, -0.25},
		{-1, 0.25},
		{1, 0.25},
		{1, -0.25},
	}
	assert.Equal(t, expected, polygon)
	assert.False(t, selfIntersects(polygon))
}

func TestExtractSection_TransformedMesh(t *testing.T) {
	assets := NewAssetServer()
	id := assets.CreatePanelMesh(2, 1, 0.5, 2)
	mesh, _ := assets.Mesh(id)

	tr := TransformComponent{
		Position: mgl32.Vec3{10, 3, -2},
		Scale:    mgl32.Vec3{1, 1, 1},
	}
	box := mesh.WorldBox(tr.Matrix())
	assert.InDelta(t, 3, box.Min.Y(), 1e-5)

	clipHeight := ClipHeightFor(box)
	assert.InDelta(t, 3.5, clipHeight, 1e-5)

	polygon := ExtractSection(mesh, tr.Matrix(), clipHeight, SectionTolerance)
	require.Len(t, polygon, 4)
	for _, p := range polygon {
		assert.InDelta(t, 10, p.X(), 1.001)
		assert.InDelta(t, -2, p.Y(), 0.26)
	}
}

func TestExtractSection_MissesGeometry(t *testing.T) {
	assets := NewAssetServer()
	id := assets.CreateBoxMesh(2, 1, 0.5)
	mesh, _ := assets.Mesh(id)

	// Entirely below the cut.
	assert.Empty(t, ExtractSection(mesh, mgl32.Ident4(), 5.0, SectionTolerance))
	// Entirely above the cut.
	assert.Empty(t, ExtractSection(mesh, mgl32.Ident4(), -1.0, SectionTolerance))
	// A plain box has no vertex ring at mid-height at all.
	assert.Empty(t, ExtractSection(mesh, mgl32.Ident4(), 0.5, SectionTolerance))
}

func TestExtractSection_DegenerateSinglePoint(t *testing.T) {
	assets := NewAssetServer()
	id, err := assets.LoadMesh([]mgl32.Vec3{
		{0, 0.5, 0},
		{1, 0, 0},
		{0, 0, 1},
	}, []uint32{0, 1, 2})
	require.NoError(t, err)
	mesh, _ := assets.Mesh(id)

	polygon := ExtractSection(mesh, mgl32.Ident4(), 0.5, SectionTolerance)
	require.Len(t, polygon, 1)
	assert.Equal(t, mgl32.Vec2{0, 0}, polygon[0])
}

func TestExtractSection_DeduplicatesSharedVertices(t *testing.T) {
	assets := NewAssetServer()
	// Two triangles forming a quad at y=0.5 with the shared corners
	// duplicated in the position buffer, as produced by per-face
	// vertex layouts.
	id, err := assets.LoadMesh([]mgl32.Vec3{
		{0, 0.5, 0}, {1, 0.5, 0}, {1, 0.5, 1},
		{0, 0.5, 0}, {1, 0.5, 1}, {0, 0.5, 1},
	}, []uint32{0, 1, 2, 3, 4, 5})
	require.NoError(t, err)
	mesh, _ := assets.Mesh(id)

	polygon := ExtractSection(mesh, mgl32.Ident4(), 0.5, SectionTolerance)
	assert.Len(t, polygon, 4, "rounded duplicates must collapse to one boundary point each")
}

func TestExtractSection_ToleranceBand(t *testing.T) {
	assets := NewAssetServer()
	id, err := assets.LoadMesh([]mgl32.Vec3{
		{0, 0.505, 0}, // inside the band
		{1, 0.520, 0}, // outside
		{2, 0.495, 0}, // inside
	}, nil)
	require.NoError(t, err)
	mesh, _ := assets.Mesh(id)

	polygon := ExtractSection(mesh, mgl32.Ident4(), 0.5, SectionTolerance)
	assert.Len(t, polygon, 2)
}

// selfIntersects checks whether any two non-adjacent edges of the
// closed polygon cross.
func selfIntersects(polygon []mgl32.Vec2) bool {
	n := len(polygon)
	if n < 4 {
		return false
	}
	seg := func(i int) (mgl32.Vec2, mgl32.Vec2) {
		return polygon[i], polygon[(i+1)%n]
	}
	for i := 0; i < n; i++ {
		for j := i + 2; j < n; j++ {
			if i == 0 && j == n-1 {
				continue
			}
			a1, a2 := seg(i)
			b1, b2 := seg(j)
			if segmentsCross(a1, a2, b1, b2) {
				return true
			}
		}
	}
	return false
}

func segmentsCross(a1, a2, b1, b2 mgl32.Vec2) bool {
	d := func(p, q, r mgl32.Vec2) float32 {
		return (q.X()-p.X())*(r.Y()-p.Y()) - (q.Y()-p.Y())*(r.X()-p.X())
	}
	d1 := d(b1, b2, a1)
	d2 := d(b1, b2, a2)
	d3 := d(a1, a2, b1)
	d4 := d(a1, a2, b2)
	return ((d1 > 0 && d2 < 0) || (d1 < 0 && d2 > 0)) &&
		((d3 > 0 && d4 < 0) || (d3 < 0 && d4 > 0))
}
