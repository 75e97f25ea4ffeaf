// Package drawing implements the DrawingAssembler of spec.md §4.4: it walks
// a FourBlockTree front-to-back, for each component subdivides the outer
// face with a dummy vertex to get a 4-connected quad, computes that
// component's rectangular dual, fixes the dummy's corner, realizes any
// designated virtual edges as degenerate tiles, and runs PortAssigner on
// the result. Once every component is processed every original edge carries
// a completed port assignment; the package then builds the x- and y-DAGs
// from the port bits, topologically sorts each via internal/topo, and
// emits the final LDrawing.
package drawing
