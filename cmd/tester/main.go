// Command tester reads a graph followed by a drawing of it on stdin and
// exits 0 if the drawing is planar by the strict-interior segment-crossing
// test, 1 otherwise (spec.md §6 "Tester CLI").
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/Parranoh/ldrawing/internal/gio"
	"github.com/Parranoh/ldrawing/internal/planarcheck"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	return &cobra.Command{
		Use:           "tester",
		Short:         "Check an L-drawing for strictly crossing segments",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(os.Stdin)
		},
	}
}

func run(stdin io.Reader) error {
	g, d, err := gio.ReadGraphAndDrawing(stdin)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return err
	}

	ok, err := planarcheck.Check(g, d)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return err
	}
	if !ok {
		return fmt.Errorf("crossing detected")
	}
	return nil
}
