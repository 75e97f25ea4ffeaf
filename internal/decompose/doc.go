// Package decompose finds the separating triangles of an embedded planar
// graph, orders them canonically, and splits the graph along them into a
// tree of 4-connected components (a FourBlockTree), per spec.md §4.2.
//
// The pipeline inside Decompose is, in order:
//
//	1. ListSeparatingTriangles — Chiba-Nishizeki-style triangle listing,
//	   filtered to triangles that are not faces (§4.2.1).
//	2. dfsAnalyze — iterative DFS computing height/lowpoint/return-side for
//	   every edge (§4.2.2).
//	3. canonicalRotation — reorders each vertex's tree-child edges into the
//	   "onion" order the split surgery depends on (§4.2.3).
//	4. orderTriangles — walks the canonical rotation to stamp each triangle
//	   with a total order (§4.2.4).
//	5. split — performs the cyclist-based surgery for each triangle in order,
//	   producing designated-face markers (§4.2.5).
//	6. extractComponents — BFS-extracts the FourBlockTree from the split
//	   adjacency structure (§4.2.6).
package decompose
