// Command sssp generates graphs and runs the parallel Bellman-Ford engine on
// them from the command line.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Build-time variables set via ldflags.
var (
	version = "0.1.0"
	commit  = ""
)

var (
	flagFmt      string
	flagLogLevel string
)

func versionString() string {
	if commit != "" {
		return fmt.Sprintf("sssp version %s (commit: %s)", version, commit)
	}
	return fmt.Sprintf("sssp version %s-dev", version)
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "sssp",
		Short:        "Parallel single-source shortest paths with negative weights",
		Version:      versionString(),
		SilenceUsage: true,
	}
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	rootCmd.PersistentFlags().StringVar(&flagFmt, "format", formatJSON, "Output format: json|yaml")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warning", "Log level: trace|debug|info|warning|error")

	rootCmd.AddCommand(newRunCmd())
	rootCmd.AddCommand(newEstimateCmd())

	return rootCmd
}

// newLogger returns a text logger writing to w at the named level.
func newLogger(level string, w io.Writer) (*logrus.Logger, error) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	log := logrus.New()
	log.SetOutput(w)
	log.SetLevel(lvl)
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	return log, nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
