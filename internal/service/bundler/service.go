package bundler

import (
	"context"
	"os"
	"path/filepath"

	"github.com/oshokin/pass-bundler/internal/config"
	"github.com/oshokin/pass-bundler/internal/domain/pass"
	"github.com/oshokin/pass-bundler/internal/logger"
	"github.com/oshokin/pass-bundler/internal/signature"
)

const (
	// BundleExtension is the archive extension denoting a wallet pass bundle.
	BundleExtension = ".pkpass"

	// ContentFilename is the pass content document inside the bundle.
	ContentFilename = "pass.json"

	// ManifestFilename is the content-hash manifest inside the bundle.
	ManifestFilename = "manifest.json"

	// stringsFilename holds a localization's translated display strings.
	stringsFilename = "pass.strings"

	// localizationDirSuffix names per-language bundle subdirectories.
	localizationDirSuffix = ".lproj"

	// dirPermissions is used for scratch and localization directories.
	dirPermissions os.FileMode = 0o755

	// filePermissions is used for materialized bundle files.
	filePermissions os.FileMode = 0o644
)

// Service assembles, signs and archives pass bundles.
// The configuration is read-only after construction, so one Service is
// safe to use from concurrent goroutines as long as callers serialize
// runs that share a serial number (each run owns a serial-keyed scratch tree).
type Service struct {
	// cfg holds directories and signing material paths. Never mutated.
	cfg *config.Config
}

// New creates a bundling service over the provided configuration.
func New(cfg *config.Config) *Service {
	return &Service{cfg: cfg}
}

// Create runs the full pipeline for one pass:
// validate -> materialize the scratch tree -> generate the manifest ->
// sign (or skip) -> archive -> remove the scratch tree.
// It returns the path of the produced archive. The first failing stage
// aborts the pipeline; the scratch tree is removed on every exit path.
func (s *Service) Create(ctx context.Context, p *pass.Pass, outputName string) (string, error) {
	ctx = logger.WithKV(ctx, "serial_number", p.SerialNumber())

	if err := p.Validate(); err != nil {
		return "", err
	}

	scratch := filepath.Join(s.cfg.TempDir, p.SerialNumber())

	logger.InfoKV(ctx, "Creating scratch directory", "path", scratch)

	if err := os.MkdirAll(scratch, dirPermissions); err != nil {
		return "", &DirectoryError{Path: scratch, Err: err}
	}

	defer removeQuietly(ctx, scratch)

	if err := s.assemble(ctx, p, scratch); err != nil {
		return "", err
	}

	logger.Info(ctx, "Generating manifest")

	if err := writeManifest(scratch); err != nil {
		return "", err
	}

	if s.cfg.SkipSignature {
		logger.Warn(ctx, "Signature generation is skipped, the bundle will not pass client verification")
	} else {
		logger.Info(ctx, "Signing manifest")

		signer := signature.NewSigner(s.cfg.CertificateFile, s.cfg.CertificatePassword, s.cfg.WWDRCertificateFile)
		if err := signer.SignFile(filepath.Join(scratch, ManifestFilename), filepath.Join(scratch, signature.Filename)); err != nil {
			return "", err
		}
	}

	name := outputName
	if name == "" {
		name = p.SerialNumber()
	}

	destination := filepath.Join(s.cfg.OutputDir, name+BundleExtension)

	logger.InfoKV(ctx, "Archiving bundle", "path", destination)

	if err := writeArchive(scratch, destination); err != nil {
		return "", err
	}

	return destination, nil
}

// removeQuietly deletes a scratch tree best-effort: a tree that is already
// gone (or cannot be removed) must never mask the pipeline's own result.
func removeQuietly(ctx context.Context, path string) {
	if err := os.RemoveAll(path); err != nil {
		logger.WarnKV(ctx, "Unable to remove scratch directory", "path", path, "error", err)
	}
}
