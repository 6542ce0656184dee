package lignum

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// SectionTolerance is the vertical capture band around the clip height,
// in world units.
const SectionTolerance = 0.01

// sectionCutOffset is how far above the facade's bottom edge the
// section cut is taken.
const sectionCutOffset = 0.5

// ClipHeightFor derives the section cut height from a facade's world
// bounding box. It is recomputed on every toggle; the facade may have
// been swapped since the last cut.
func ClipHeightFor(box AABB) float32 {
	return box.Min.Y() + sectionCutOffset
}

// ExtractSection approximates the mesh's boundary at clipHeight as an
// ordered closed polygon in the XZ plane.
//
// Vertices within tolerance of the cut are projected to (X,Z),
// deduplicated by rounding to 4 decimals, then chained greedily by
// nearest neighbor. The chaining is a heuristic: concave or multi-loop
// cross sections can come back self-intersecting. That is acceptable
// for the extruded facade panels this viewer handles; exact plane/edge
// intersection would be needed for arbitrary meshes.
//
// Zero or one collected point is returned as-is: a degenerate polygon
// meaning the cut misses the visible geometry, not an error.
func ExtractSection(mesh MeshAsset, model mgl32.Mat4, clipHeight, tolerance float32) []mgl32.Vec2 {
	seen := make(map[[2]float64]struct{})
	var points []mgl32.Vec2

	mesh.EachWorldVertex(model, func(p mgl32.Vec3) {
		if float32(math.Abs(float64(p.Y()-clipHeight))) > tolerance {
			return
		}
		key := [2]float64{roundTo4(p.X()), roundTo4(p.Z())}
		if _, dup := seen[key]; dup {
			return
		}
		seen[key] = struct{}{}
		points = append(points, mgl32.Vec2{p.X(), p.Z()})
	})

	if len(points) <= 1 {
		return points
	}
	return chainNearestNeighbor(points)
}

// chainNearestNeighbor orders points into a closed loop: start at the
// first collected point, then repeatedly append the nearest unvisited
// point. Squared distances avoid the square root.
func chainNearestNeighbor(points []mgl32.Vec2) []mgl32.Vec2 {
	remaining := make([]mgl32.Vec2, len(points))
	copy(remaining, points)

	ordered := make([]mgl32.Vec2, 0, len(points))
	ordered = append(ordered, remaining[0])
	remaining = append(remaining[:0], remaining[1:]...)

	for len(remaining) > 0 {
		last := ordered[len(ordered)-1]
		best := 0
		bestDist := last.Sub(remaining[0]).LenSqr()
		for i := 1; i < len(remaining); i++ {
			d := last.Sub(remaining[i]).LenSqr()
			if d < bestDist {
				best = i
				bestDist = d
			}
		}
		ordered = append(ordered, remaining[best])
		remaining = append(remaining[:best], remaining[best+1:]...)
	}

	return ordered
}

func roundTo4(v float32) float64 {
	return math.Round(float64(v)*1e4) / 1e4
}
