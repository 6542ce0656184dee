package lignum

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// CameraComponent is the active viewpoint. Fov is the vertical field of
// view in radians.
type CameraComponent struct {
	Position mgl32.Vec3
	LookAt   mgl32.Vec3
	Up       mgl32.Vec3
	Fov      float32
}

var (
	defaultCameraPosition = mgl32.Vec3{0, 0, 5}
	defaultCameraTarget   = mgl32.Vec3{0, 0, 0}
)

func NewCameraComponent(fovRadians float32) *CameraComponent {
	return &CameraComponent{
		Position: defaultCameraPosition,
		LookAt:   defaultCameraTarget,
		Up:       mgl32.Vec3{0, 1, 0},
		Fov:      fovRadians,
	}
}

// ResetCamera returns the camera to the default pose. Also the fallback
// when no facade mesh exists to frame.
func ResetCamera(cam *CameraComponent) {
	cam.Position = defaultCameraPosition
	cam.LookAt = defaultCameraTarget
	cam.Up = mgl32.Vec3{0, 1, 0}
}

// framePadding pulls the camera closer than the exact fit distance.
const framePadding = 0.6

// FrameDistance is the camera-to-center distance that fits the given
// bounding box for a vertical field of view, after padding.
func FrameDistance(box AABB, fovRadians float32) float32 {
	size := box.Size()
	maxDim := size.X()
	if size.Y() > maxDim {
		maxDim = size.Y()
	}
	return float32(math.Abs(float64(maxDim)/math.Sin(float64(fovRadians)/2))) * framePadding
}

// FrameMesh repositions the camera to fit the bounding box: the viewing
// direction is preserved, the camera slides along it to FrameDistance
// from the box center, and the target becomes the center.
func FrameMesh(cam *CameraComponent, box AABB) {
	dir := cam.Position.Sub(cam.LookAt)
	if dir.LenSqr() == 0 {
		dir = mgl32.Vec3{0, 0, 1}
	}
	dir = dir.Normalize()

	center := box.Center()
	cam.Position = center.Add(dir.Mul(FrameDistance(box, cam.Fov)))
	cam.LookAt = center
}

// ViewMatrix builds the view matrix for the renderer.
func (c *CameraComponent) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position, c.LookAt, c.Up)
}
