package main

import (
	"context"
	"fmt"
	"quiz-forge/internal/app"
	"quiz-forge/internal/config"
	"quiz-forge/internal/logger"
	"quiz-forge/internal/service"

	"github.com/spf13/cobra"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "dev"

// serviceFactory builds the quiz pipeline for one CLI invocation. The
// returned cleanup func must be called when the command finishes.
type serviceFactory func(ctx context.Context, verbose bool) (service.QuizService, func(), error)

func defaultServiceFactory(ctx context.Context, verbose bool) (service.QuizService, func(), error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, nil, err
	}
	// Logs go to stdout, so they stay off unless asked for.
	if verbose {
		if err := logger.Initialize(cfg.Logger); err != nil {
			return nil, nil, err
		}
	}

	components, err := app.Build(ctx, cfg, logger.Get())
	if err != nil {
		return nil, nil, err
	}
	return components.QuizService, func() {
		_ = components.Close()
		_ = logger.Sync()
	}, nil
}

func newRootCmd(factory serviceFactory) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "quizctl",
		Short: "Generate property-industry training quizzes from the terminal",
		Long: `quizctl runs the quiz generation pipeline in-process, using the same
configuration (config.yaml, .env and environment) as the API server.`,
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "write structured logs to stdout")

	rootCmd.AddCommand(newGenerateCmd(factory))
	rootCmd.AddCommand(newVersionCmd())
	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the quizctl version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "quizctl %s\n", version)
		},
	}
}
