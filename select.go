package lignum

// SelectFacade picks the facade mesh: the renderable node whose world
// bounding-box footprint (X width times Y height) is largest. Ties keep
// the first node in traversal order. ok is false when the scene holds
// no renderable geometry; callers treat that as a no-op, not an error.
func SelectFacade(scene *Scene, assets *AssetServer) (node *Node, box AABB, ok bool) {
	var bestArea float32

	scene.ForEachRenderable(func(n *Node, mc *MeshComponent, _ *MaterialComponent) bool {
		mesh, found := assets.Mesh(mc.Mesh)
		if !found {
			return true
		}
		worldBox := mesh.WorldBox(n.Transform.Matrix())
		area := worldBox.FootprintArea()
		if node == nil || area > bestArea {
			node = n
			box = worldBox
			bestArea = area
		}
		return true
	})

	return node, box, node != nil
}
