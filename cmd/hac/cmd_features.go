package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/TrevorS/hac"
	"github.com/TrevorS/hac/internal/csvload"
)

func newFeaturesCmd(st *cliState) *cobra.Command {
	return &cobra.Command{
		Use:   "features [file.csv]",
		Short: "Print the decay point of every region",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			series, err := csvload.LoadFile(args[0], csvload.Options{DateLayout: st.cfg.DateLayout})
			if err != nil {
				return err
			}
			st.logger.Info("loaded series", "file", args[0], "series", len(series))
			return writeFeatures(cmd.OutOrStdout(), series)
		},
	}
}

// writeFeatures prints one line per series followed by summary statistics
// over the usable points.
func writeFeatures(w io.Writer, series []hac.Series) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "REGION\tX\tY\tUSABLE")

	var xs, ys []float64
	for _, s := range series {
		fp := hac.ExtractFeatures(s)
		fmt.Fprintf(tw, "%s\t%s\t%s\t%t\n", s.Label(), fp.X, fp.Y, fp.Usable())
		if fp.Usable() {
			x, _ := fp.X.Value()
			y, _ := fp.Y.Value()
			xs = append(xs, float64(x))
			ys = append(ys, float64(y))
		}
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(w, "\nusable: %d of %d\n", len(xs), len(series))
	if len(xs) == 0 {
		return nil
	}
	for _, c := range []struct {
		name string
		vals []float64
	}{{"x", xs}, {"y", ys}} {
		mean, std := stat.MeanStdDev(c.vals, nil)
		if len(c.vals) < 2 {
			std = 0
		}
		fmt.Fprintf(w, "%s: mean=%.2f std=%.2f min=%g max=%g\n",
			c.name, mean, std, floats.Min(c.vals), floats.Max(c.vals))
	}
	return nil
}
