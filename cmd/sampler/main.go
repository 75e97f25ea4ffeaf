// Command sampler emits a stacked maximal planar triangulation in spec.md
// §6's graph-input format, built by internal/sampler from a random
// Poulalhon–Schaeffer bitstring; the triangulation depends only on n.
package main

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/Parranoh/ldrawing/internal/gio"
	"github.com/Parranoh/ldrawing/internal/sampler"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var twoCycles bool

	cmd := &cobra.Command{
		Use:           "sampler [--2-cycles] n",
		Short:         "Emit a stacked maximal planar triangulation for n",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("sampler: n must be an integer, got %q", args[0])
			}
			return run(cmd.OutOrStdout(), n, twoCycles)
		},
	}

	cmd.Flags().BoolVar(&twoCycles, "2-cycles", false, "accepted; has no effect on the output")

	return cmd
}

func run(stdout io.Writer, n int, twoCycles bool) error {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	g, err := sampler.Sample(n, sampler.Options{Rand: rng, TwoCycles: twoCycles})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return err
	}
	return gio.WriteGraph(stdout, g)
}
