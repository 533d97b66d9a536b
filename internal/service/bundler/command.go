package bundler

import (
	"context"
	"fmt"

	"github.com/oshokin/pass-bundler/internal/config"
	"github.com/oshokin/pass-bundler/internal/logger"
	"github.com/oshokin/pass-bundler/internal/repository/definition"
)

// Options contains inputs for the bundler entry point.
type Options struct {
	// ConfigPath is an optional path to bundler settings (defaults to pass-bundler-settings.yaml).
	ConfigPath string
	// DefinitionPath is the YAML pass definition to build a bundle from.
	DefinitionPath string
	// OutputName optionally overrides the archive base filename
	// (defaults to the pass serial number).
	OutputName string
}

// Run executes the bundling workflow for the CLI.
func Run(ctx context.Context, opts *Options) error {
	// Set context with logger name for tracking.
	ctx = logger.WithName(ctx, "pass-bundler")

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return err
	}

	repo := definition.NewFileRepository(opts.DefinitionPath)

	p, err := repo.Load(ctx)
	if err != nil {
		return fmt.Errorf("load pass definition: %w", err)
	}

	path, err := New(cfg).Create(ctx, p, opts.OutputName)
	if err != nil {
		return fmt.Errorf("create pass bundle: %w", err)
	}

	logger.InfoKV(ctx, "Pass bundle created", "path", path)

	return nil
}
