// Package rectdual computes a regular (3,1)-canonical ordering of a
// 4-connected planar triangulation and sweeps it into a rectangular dual,
// per spec.md §4.3.
package rectdual
