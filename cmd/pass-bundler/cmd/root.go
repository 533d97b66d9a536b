package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/oshokin/pass-bundler/internal/config"
	"github.com/oshokin/pass-bundler/internal/logger"
	"github.com/oshokin/pass-bundler/internal/service/bundler"
	"github.com/oshokin/pass-bundler/internal/version"
)

var (
	// configPath to the configuration YAML file.
	configPath string

	// outputName overrides the archive base filename.
	outputName string

	// logLevel sets the minimum log level for the run.
	logLevel string

	// rootCmd represents the base command for building pass bundles.
	rootCmd = &cobra.Command{
		Use:   "pass-bundler [pass-definition]",
		Short: "Assemble, sign and archive a wallet pass bundle",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			// Setup graceful shutdown handling.
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
			defer stop()

			if level, ok := logger.ParseLogLevel(logLevel); ok {
				logger.SetLevel(level)
			}

			options := &bundler.Options{
				ConfigPath:     configPath,
				DefinitionPath: args[0],
				OutputName:     outputName,
			}

			return bundler.Run(ctx, options)
		},
	}
)

// Execute runs the pass-bundler CLI and exits with non-zero status on error.
func Execute() {
	version.AttachCobraVersionCommand(rootCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	// Setup command flags with consistent naming and descriptions.
	rootCmd.Flags().StringVarP(&configPath, "config", "c", config.DefaultConfigFilename, "path to configuration file")
	rootCmd.Flags().StringVarP(&outputName, "output", "o", "", "archive base filename (defaults to the pass serial number)")
	rootCmd.Flags().StringVarP(&logLevel, "log-level", "l", "info", "minimum log level (debug, info, warn, error)")
}
