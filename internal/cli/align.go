// SPDX-License-Identifier: MIT

package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvalign/align"
)

// profileFlags are per-invocation overrides of the selected profile.
// Only flags set on the command line take effect.
type profileFlags struct {
	strategy  string
	match     int64
	mismatch  int64
	gap       int64
	window    int
	threshold int64
	backend   string
	dir       string
}

func (f *profileFlags) register(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.StringVarP(&f.strategy, "strategy", "s", "", "global, local or levenshtein")
	fs.Int64Var(&f.match, "match", 0, "cost of aligning equal elements")
	fs.Int64Var(&f.mismatch, "mismatch", 0, "cost of aligning different elements")
	fs.Int64Var(&f.gap, "gap", 0, "cost of a deletion or insertion")
	fs.IntVarP(&f.window, "window", "w", 0, "band half-width around the diagonal (-1 for none)")
	fs.Int64Var(&f.threshold, "threshold", 0, "highest pairwise cost still counted as a match")
	fs.StringVar(&f.backend, "backend", "", "matrix storage: dense or mapped")
	fs.StringVar(&f.dir, "dir", "", "directory for the mapped matrix file")
}

func (f *profileFlags) apply(cmd *cobra.Command, p Profile) (Profile, error) {
	fs := cmd.Flags()
	if fs.Changed("strategy") {
		p.Strategy = f.strategy
	}
	if fs.Changed("match") {
		p.Match = f.match
	}
	if fs.Changed("mismatch") {
		p.Mismatch = f.mismatch
	}
	if fs.Changed("gap") {
		p.Gap = f.gap
	}
	if fs.Changed("window") {
		p.Window = f.window
	}
	if fs.Changed("threshold") {
		p.Threshold = f.threshold
	}
	if fs.Changed("backend") {
		p.Backend = f.backend
	}
	if fs.Changed("dir") {
		p.Dir = f.dir
	}

	return p, p.validate()
}

func (c *CLI) alignCommand() *cobra.Command {
	var (
		flags      profileFlags
		limit      int
		asJSON     bool
		showMatrix bool
	)

	cmd := &cobra.Command{
		Use:   "align <x> <y>",
		Short: "Align two sequences",
		Long: `Align two sequences element by element and print every optimal alignment
up to --all, each as a three-line trace ('|' match, '.' mismatch, '-' gap).`,
		Example: `  seqalign align ACGTTGA ACTTGCA
  seqalign align -p local --all 0 GATTACA TTAC
  seqalign align --json kitten sitting -p levenshtein`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)

			p, err := c.resolveProfile(logger)
			if err != nil {
				return err
			}
			if p, err = flags.apply(cmd, p); err != nil {
				return err
			}
			strategy, err := p.strategy()
			if err != nil {
				return err
			}
			opts, err := p.storage()
			if err != nil {
				return err
			}
			opts = append(opts, align.WithLogger(c.engine))

			x, y := []byte(args[0]), []byte(args[1])
			watch := startStopwatch(logger)
			set, err := align.All(x, y, align.Equality[byte, int64](), strategy, opts...)
			if err != nil {
				return err
			}
			defer func() { err = errors.Join(err, set.Close()) }()
			watch.stop(fmt.Sprintf("Aligned %dx%d", len(x), len(y)), "backend", p.Backend)

			var found []align.Alignment[int64]
			it := set.Iter()
			for limit <= 0 || len(found) < limit {
				if err := ctx.Err(); err != nil {
					return err
				}
				al, ok := it.Next()
				if !ok {
					break
				}
				found = append(found, al)
			}
			if err := it.Err(); err != nil {
				return err
			}
			logger.Debug("backtrace complete", "alignments", len(found), "terminal", set.Cursor().String())

			out := cmd.OutOrStdout()
			if asJSON {
				reports := make([]align.Report[int64], 0, len(found))
				for _, al := range found {
					reports = append(reports, al.Report())
				}
				return writeJSON(out, reports)
			}

			printAlignments(out, x, y, found)
			if showMatrix {
				path := pathCells(align.Alignment[int64]{})
				if len(found) > 0 {
					path = pathCells(found[0])
				}
				table, err := renderMatrix(set.Matrix(), x, y, path)
				if err != nil {
					return err
				}
				fmt.Fprintln(out, table)
			}

			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().IntVarP(&limit, "all", "a", 1, "maximum number of optimal alignments to print (0 for all)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print alignment reports as JSON")
	cmd.Flags().BoolVarP(&showMatrix, "matrix", "m", false, "draw the filled matrix with the first path highlighted")

	return cmd
}

// printAlignments writes one titled trace per alignment.
func printAlignments(w io.Writer, x, y []byte, found []align.Alignment[int64]) {
	if len(found) == 0 {
		printInfo(w, "no alignment found")
		return
	}
	for i, al := range found {
		if i > 0 {
			fmt.Fprintln(w)
		}
		printTitle(w, "alignment %d", i+1)
		printKeyValue(w, "score", formatScore(al.Score))
		printKeyValue(w, "span", al.Origin.String()+" "+iconArrow+" "+al.Terminal.String())
		traceOf(x, y, al).render(w)
	}
}
