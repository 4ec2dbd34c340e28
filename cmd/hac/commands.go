package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

// cliState is shared by all subcommands; PersistentPreRunE fills it.
type cliState struct {
	configPath string
	logLevel   string
	cfg        fileConfig
	logger     *slog.Logger
}

func newRootCmd() *cobra.Command {
	st := &cliState{}

	rootCmd := &cobra.Command{
		Use:   "hac",
		Short: "Cluster regions by how fast their cumulative counts decay",
		Long: `hac reduces each region's cumulative time series to a decay point
(days back to 10% of the latest count, then further days to 1%) and groups
the regions with single-linkage hierarchical clustering.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(st.configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("log-level") {
				cfg.LogLevel = st.logLevel
			}
			logger, err := newLogger(cfg.LogLevel, os.Stderr)
			if err != nil {
				return err
			}
			st.cfg = cfg
			st.logger = logger
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&st.configPath, "config", "", "path to a YAML config file")
	rootCmd.PersistentFlags().StringVar(&st.logLevel, "log-level", "warn", "log level: debug, info, warn or error")

	rootCmd.AddCommand(newFeaturesCmd(st), newClusterCmd(st))
	return rootCmd
}

func newLogger(level string, w io.Writer) (*slog.Logger, error) {
	var lvl slog.Level
	switch level {
	case "", "warn":
		lvl = slog.LevelWarn
	case "debug":
		lvl = slog.LevelDebug
	case "info":
		lvl = slog.LevelInfo
	case "error":
		lvl = slog.LevelError
	default:
		return nil, fmt.Errorf("unknown log level %q", level)
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})), nil
}
