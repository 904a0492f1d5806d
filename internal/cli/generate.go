// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvalign/dnagen"
)

func (c *CLI) generateCommand() *cobra.Command {
	var (
		length  int
		seed    int64
		rate    float64
		uniform bool
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a synthetic DNA sequence",
		Long: `Generate a DNA sequence from a first-order Markov model. With --mutate, a
second line holds a copy with random deletions, insertions and substitutions,
which makes a ready-made input pair for the align command.`,
		Example: `  seqalign generate --length 80 --seed 7
  seqalign generate --length 40 --mutate 0.1`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			model := dnagen.DefaultModel()
			if uniform {
				model = dnagen.Uniform()
			}
			gen, err := dnagen.New(model, seed)
			if err != nil {
				return err
			}
			seq, err := gen.Generate(length)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, string(seq))
			logger.Debug("generated sequence", "length", len(seq), "seed", seed)

			if rate == 0 {
				return nil
			}
			mut, err := dnagen.NewMutator(rate, seed)
			if err != nil {
				return err
			}
			mutated := mut.Mutate(seq)
			fmt.Fprintln(out, string(mutated))
			logger.Debug("mutated sequence", "length", len(mutated), "rate", rate)

			return nil
		},
	}

	cmd.Flags().IntVarP(&length, "length", "n", 60, "number of nucleotides")
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed (0 uses a fixed default)")
	cmd.Flags().Float64Var(&rate, "mutate", 0, "also print a copy mutated with this per-nucleotide probability")
	cmd.Flags().BoolVar(&uniform, "uniform", false, "draw nucleotides uniformly instead of from the default model")

	return cmd
}
