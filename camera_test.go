package lignum

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFrameDistance_ClosedForm(t *testing.T) {
	box := AABB{Min: mgl32.Vec3{-1, 0, -0.1}, Max: mgl32.Vec3{1, 3, 0.1}}
	fov := mgl32.DegToRad(50)

	dist := FrameDistance(box, fov)

	want := float32(math.Abs(3.0/math.Sin(float64(fov)/2)) * 0.6)
	assert.InDelta(t, want, dist, 1e-4)
	// 2x3 box at 50 degrees: roughly 4.26 world units.
	assert.InDelta(t, 4.259, dist, 5e-3)
}

func TestFrameMesh_PreservesViewingDirection(t *testing.T) {
	cam := NewCameraComponent(mgl32.DegToRad(50))
	// Default pose looks down -Z, so the viewing offset is +Z.
	box := AABB{Min: mgl32.Vec3{1, 0, -1}, Max: mgl32.Vec3{3, 2, 1}}

	FrameMesh(cam, box)

	center := mgl32.Vec3{2, 1, 0}
	assert.Equal(t, center, cam.LookAt)

	offset := cam.Position.Sub(center)
	require.Greater(t, offset.Len(), float32(0))
	dir := offset.Normalize()
	assert.InDelta(t, 0, dir.X(), 1e-5)
	assert.InDelta(t, 0, dir.Y(), 1e-5)
	assert.InDelta(t, 1, dir.Z(), 1e-5)
	assert.InDelta(t, FrameDistance(box, cam.Fov), offset.Len(), 1e-4)
}

func TestFrameMesh_DegenerateDirectionFallsBack(t *testing.T) {
	cam := NewCameraComponent(mgl32.DegToRad(50))
	cam.Position = mgl32.Vec3{1, 1, 1}
	cam.LookAt = mgl32.Vec3{1, 1, 1}

	box := AABB{Min: mgl32.Vec3{-1, -1, -1}, Max: mgl32.Vec3{1, 1, 1}}
	FrameMesh(cam, box)

	offset := cam.Position.Sub(box.Center())
	assert.InDelta(t, 1, offset.Normalize().Z(), 1e-5)
}

func TestResetCamera(t *testing.T) {
	cam := NewCameraComponent(mgl32.DegToRad(50))
	cam.Position = mgl32.Vec3{9, 9, 9}
	cam.LookAt = mgl32.Vec3{1, 2, 3}

	ResetCamera(cam)

	assert.Equal(t, mgl32.Vec3{0, 0, 5}, cam.Position)
	assert.Equal(t, mgl32.Vec3{0, 0, 0}, cam.LookAt)
	assert.Equal(t, mgl32.Vec3{0, 1, 0}, cam.Up)
}
