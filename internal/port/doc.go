// Package port implements the PortAssigner of spec.md §4.5: given a
// FourBlockComponent and its RectDual, it fills the 2-bit port assignment
// (plus an "already assigned" guard bit) on every component edge not yet
// marked assigned, by classifying each vertex's four rotation arcs (one per
// geometric direction) into one of several canonical cases, postponing
// vertices whose case depends on a not-yet-resolved "extra rule"
// master/slave switch direction.
package port
