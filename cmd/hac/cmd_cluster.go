package main

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/TrevorS/hac"
	"github.com/TrevorS/hac/internal/csvload"
)

type clusterFlags struct {
	format   string
	verify   bool
	cut      float64
	clusters int
}

func newClusterCmd(st *cliState) *cobra.Command {
	var f clusterFlags

	cmd := &cobra.Command{
		Use:   "cluster [file.csv]",
		Short: "Cluster regions and print the linkage",
		Long: `Cluster regions with single linkage and print the merge record.
Each row joins two clusters at a distance; leaves are numbered from 0 in
file order after unusable regions are dropped, and the cluster formed by
row i has id m+i.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("format") {
				st.cfg.Format = f.format
			}
			if cmd.Flags().Changed("verify") {
				st.cfg.CrossCheck = f.verify
			}
			if cmd.Flags().Changed("cut") && cmd.Flags().Changed("clusters") {
				return fmt.Errorf("--cut and --clusters are mutually exclusive")
			}

			series, err := csvload.LoadFile(args[0], csvload.Options{DateLayout: st.cfg.DateLayout})
			if err != nil {
				return err
			}

			cfg := hac.DefaultConfig()
			cfg.CrossCheck = st.cfg.CrossCheck
			cfg.WarnPoints = st.cfg.WarnPoints
			cfg.Logger = st.logger

			result, err := hac.Cluster(series, cfg)
			if err != nil {
				return err
			}

			rep := clusterReport{
				RunID:   uuid.NewString(),
				Source:  args[0],
				Leaves:  result.Points.Labels(),
				Dropped: result.Dropped,
				Linkage: result.Linkage.Rows(),
			}
			m := result.Points.Len()
			switch {
			case cmd.Flags().Changed("cut"):
				rep.Flat, err = hac.CutDistance(result.Linkage, m, f.cut)
			case cmd.Flags().Changed("clusters"):
				rep.Flat, err = hac.CutCount(result.Linkage, m, f.clusters)
			}
			if err != nil {
				return err
			}
			st.logger.Info("cluster run", "run_id", rep.RunID, "leaves", m, "dropped", len(rep.Dropped))

			switch st.cfg.Format {
			case formatJSON:
				return writeReportJSON(cmd.OutOrStdout(), rep)
			case formatCSV:
				return writeReportCSV(cmd.OutOrStdout(), rep)
			default:
				return fmt.Errorf("unknown format %q", st.cfg.Format)
			}
		},
	}

	cmd.Flags().StringVar(&f.format, "format", formatJSON, "output format: json or csv")
	cmd.Flags().BoolVar(&f.verify, "verify", false, "cross-check merge heights against a minimum spanning tree")
	cmd.Flags().Float64Var(&f.cut, "cut", 0, "also assign flat clusters joining merges at or below this distance")
	cmd.Flags().IntVar(&f.clusters, "clusters", 0, "also assign this many flat clusters")
	return cmd
}
