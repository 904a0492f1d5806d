// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvalign/dtw"
)

// dtwResult is the JSON form of a DTW run. Distance is null when the
// corner is unreachable under the window.
type dtwResult struct {
	Distance *float64    `json:"distance"`
	Path     []dtw.Coord `json:"path,omitempty"`
}

func (c *CLI) dtwCommand() *cobra.Command {
	var (
		window    int
		slope     float64
		withPath  bool
		mappedDir string
		asJSON    bool
	)

	cmd := &cobra.Command{
		Use:   "dtw <a> <b>",
		Short: "Dynamic time warping distance between two series",
		Long: `Compute the dynamic time warping distance between two comma-separated
numeric series, optionally restricted to a band around the diagonal.`,
		Example: `  seqalign dtw 1,2,3,4 1,2,2,3,4
  seqalign dtw --window 2 --slope 0.5 --path 0,1,0 0,0,1,0`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			a, err := parseSeries(args[0])
			if err != nil {
				return err
			}
			b, err := parseSeries(args[1])
			if err != nil {
				return err
			}

			opts := dtw.DefaultOptions()
			opts.Window = window
			opts.SlopePenalty = slope
			opts.ReturnPath = withPath
			opts.Logger = c.engine
			if mappedDir != "" {
				opts.MemoryMode = dtw.MappedFile
				opts.Dir = mappedDir
			}

			watch := startStopwatch(logger)
			dist, path, err := dtw.DTW(a, b, &opts)
			if err != nil {
				return err
			}
			watch.stop(fmt.Sprintf("Warped %dx%d", len(a), len(b)), "window", window)

			out := cmd.OutOrStdout()
			if asJSON {
				res := dtwResult{Path: path}
				if !math.IsInf(dist, 1) {
					res.Distance = &dist
				}
				return writeJSON(out, res)
			}
			printDTW(out, dist, path, withPath)

			return nil
		},
	}

	cmd.Flags().IntVarP(&window, "window", "w", -1, "band half-width around the diagonal (-1 for none)")
	cmd.Flags().Float64Var(&slope, "slope", 0, "extra cost of every non-diagonal step")
	cmd.Flags().BoolVar(&withPath, "path", false, "also print the warping path")
	cmd.Flags().StringVar(&mappedDir, "mapped-dir", "", "keep the matrix in a memory-mapped file in this directory")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the result as JSON")

	return cmd
}

// parseSeries reads a comma-separated list of floats.
func parseSeries(s string) ([]float64, error) {
	fields := strings.Split(s, ",")
	out := make([]float64, 0, len(fields))
	for i, f := range fields {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, fmt.Errorf("series %q, value %d: %w", s, i, err)
		}
		out = append(out, v)
	}

	return out, nil
}

func printDTW(w io.Writer, dist float64, path []dtw.Coord, withPath bool) {
	value := strconv.FormatFloat(dist, 'g', -1, 64)
	if math.IsInf(dist, 1) {
		value = "∞ (unreachable under window)"
	}
	printKeyValue(w, "distance", value)
	if !withPath || path == nil {
		return
	}
	pairs := make([]string, len(path))
	for i, p := range path {
		pairs[i] = fmt.Sprintf("(%d,%d)", p.I, p.J)
	}
	printKeyValue(w, "path", strings.Join(pairs, " "))
}
