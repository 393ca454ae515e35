package main

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/gyaneshwarpardhi/ontocheck/internal/config"
	"github.com/gyaneshwarpardhi/ontocheck/internal/engine"
	"github.com/gyaneshwarpardhi/ontocheck/internal/ontology"
)

func newRootCmd(logger *slog.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "ontocheck",
		Short: "Report orphaned nodes in the Apollo ontology graph",
		Long: `ontocheck checks the Apollo knowledge graph compiled into this binary.

It lists nodes that no edge points at (roots excluded), grouped by ontology
layer, scans them for configuration, React-specific and entity identifiers,
checks every component of the 2FA flow for an incoming edge, and prints the
remediation recommendations.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), logger, cmd.OutOrStdout())
		},
	}
}

func run(ctx context.Context, logger *slog.Logger, w io.Writer) error {
	ds, err := config.Default()
	if err != nil {
		return err
	}
	_, err = engine.Default(logger).Run(ctx, ds, w)
	return err
}

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	if err := newRootCmd(logger).ExecuteContext(context.Background()); err != nil {
		var mk *ontology.MissingKeyError
		if errors.As(err, &mk) {
			slog.Error("node table lookup failed", "key", mk.Key, "err", err)
		} else {
			slog.Error("analysis failed", "err", err)
		}
		os.Exit(1)
	}
}
