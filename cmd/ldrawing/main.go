// Command ldrawing reads a planar embedding on stdin and emits its
// rectangular dual or L-drawing (spec.md §6 "CLI").
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/Parranoh/ldrawing/internal/applog"
	"github.com/Parranoh/ldrawing/internal/decompose"
	"github.com/Parranoh/ldrawing/internal/drawing"
	"github.com/Parranoh/ldrawing/internal/embed"
	"github.com/Parranoh/ldrawing/internal/gio"
	"github.com/Parranoh/ldrawing/internal/rectdual"
	"github.com/Parranoh/ldrawing/internal/timing"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

type flags struct {
	rectDual   bool
	tikz       bool
	printDuals bool
	showTime   bool
	verbose    bool
}

func newRootCommand() *cobra.Command {
	var f flags

	cmd := &cobra.Command{
		Use:           "ldrawing",
		Short:         "Compute a rectangular dual and L-drawing of a planar embedding",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.OutOrStdout(), cmd.ErrOrStderr(), os.Stdin, f)
		},
	}

	cmd.Flags().BoolVar(&f.rectDual, "rect-dual", false, "emit the rectangular dual instead of the L-drawing")
	cmd.Flags().BoolVar(&f.tikz, "tikz", false, "emit TikZ instead of raw output")
	cmd.Flags().BoolVar(&f.printDuals, "print-duals", false, "with --tikz, also emit each component's rectangular dual")
	cmd.Flags().BoolVar(&f.showTime, "time", false, "print per-stage wall-clock seconds to stderr on exit")
	cmd.Flags().BoolVarP(&f.verbose, "verbose", "v", false, "enable debug logging")

	return cmd
}

// run drives the pipeline of spec.md §3's data flow: EmbeddedGraph →
// Decomposer → DrawingAssembler → output writer. 1) read, 2) decompose, 3)
// assemble, 4) write the selected output format.
func run(stdout, stderr io.Writer, stdin io.Reader, f flags) error {
	logger := applog.New(f.verbose)
	var acc timing.Accumulator
	if f.showTime {
		defer printTime(stderr, &acc)
	}

	// 1. read
	ioStart := time.Now()
	g, err := gio.ReadGraph(stdin)
	timing.Track(&acc.IO, ioStart)
	if err != nil {
		return reportFatal(stderr, logger, err)
	}
	applog.Assert(logger, "input graph invariants", g.Validate)

	// 2. decompose
	decomposeStart := time.Now()
	tree, err := decompose.Decompose(g)
	timing.Track(&acc.Decompose, decomposeStart)
	if err != nil {
		return reportFatal(stderr, logger, err)
	}

	// 3. assemble. The DrawingAssembler interleaves rect-dual computation
	// and port assignment per component (spec.md §4.4), so the combined
	// wall-clock time is split evenly between the two --time buckets.
	assembleStart := time.Now()
	ld, duals, err := drawing.Assemble(g, tree)
	elapsed := time.Since(assembleStart)
	acc.RectDual += elapsed / 2
	acc.PortAssign += elapsed / 2
	if err != nil {
		return reportFatal(stderr, logger, err)
	}

	// 4. write
	return writeOutput(stdout, g, tree, ld, duals, f)
}

func writeOutput(w io.Writer, g *embed.EmbeddedGraph, tree *decompose.FourBlockTree, ld *drawing.LDrawing, duals []*rectdual.Dual, f flags) error {
	if f.tikz {
		pictures := []string{gio.TikZDrawing(g, ld)}
		if f.printDuals {
			for i, comp := range tree.Components {
				pictures = append(pictures, gio.TikZRectDual(comp.Graph, duals[i]))
			}
		}
		return gio.WriteTikZDocument(w, pictures)
	}
	if f.rectDual {
		return gio.WriteRectDual(w, rootDualByOriginalVertex(g, tree, duals))
	}
	return gio.WriteLDrawing(w, ld)
}

// rootDualByOriginalVertex remaps the root component's dual from
// component-vertex-id order to original-vertex-id order, dropping any
// vertex the DrawingAssembler introduced (the dummy outer-face vertex or a
// virtual-edge leaf, both marked embed.DummyVertex in OriginalVertex). When
// the decomposition yields a single component this is the whole-graph
// rectangular dual; for a graph that splits into several components (one
// per separating triangle plus the root), --rect-dual shows only the
// root's tiles (a per-component artifact per spec.md §4.3) — use
// `--tikz --print-duals` to see every component.
func rootDualByOriginalVertex(g *embed.EmbeddedGraph, tree *decompose.FourBlockTree, duals []*rectdual.Dual) *rectdual.Dual {
	root := tree.Root()
	dual := duals[0]
	out := &rectdual.Dual{Rects: make([]rectdual.Rect, g.NumVertices())}
	for cv, origV := range root.OriginalVertex {
		if origV == embed.DummyVertex {
			continue
		}
		out.Rects[origV] = dual.Rects[cv]
	}
	return out
}

// reportFatal prints spec.md §7's error-kind message to stderr and returns
// the original error so main exits 1. ParseError gets the exact "Error
// reading input on line <N>" text §7 specifies; CycleDetected's sentinel
// already carries its required exact text verbatim (topo.ErrCycleDetected);
// every other structural sentinel prints its own descriptive message, which
// §7 leaves free-form ("a message").
func reportFatal(stderr io.Writer, logger zerolog.Logger, err error) error {
	logger.Debug().Err(err).Msg("pipeline failed")

	var parseErr *gio.ParseError
	if errors.As(err, &parseErr) {
		fmt.Fprintf(stderr, "Error reading input on line %d\n", parseErr.Line)
		return err
	}
	fmt.Fprintln(stderr, err)
	return err
}

func printTime(stderr io.Writer, acc *timing.Accumulator) {
	ioSec, decomposeSec, rectDualSec, portAssignSec := acc.Seconds()
	fmt.Fprintf(stderr, "%f %f %f %f\n", ioSec, decomposeSec, rectDualSec, portAssignSec)
}
