package bundler

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/oshokin/pass-bundler/internal/domain/pass"
	"github.com/oshokin/pass-bundler/internal/logger"
)

// assemble materializes the bundle file tree under the scratch root:
// the content document, every top-level image under its resolved name,
// and one <lang>.lproj directory per localization.
func (s *Service) assemble(ctx context.Context, p *pass.Pass, root string) error {
	logger.Info(ctx, "Writing pass content document")

	document, err := p.Document()
	if err != nil {
		return err
	}

	if err = os.WriteFile(filepath.Join(root, ContentFilename), document, filePermissions); err != nil {
		return fmt.Errorf("write %s: %w", ContentFilename, err)
	}

	for i := range p.Images {
		img := &p.Images[i]

		logger.DebugKV(ctx, "Copying image", "file", img.FileName())

		if err = copyFile(img.SourcePath, filepath.Join(root, img.FileName())); err != nil {
			return fmt.Errorf("copy image %s: %w", img.FileName(), err)
		}
	}

	for i := range p.Localizations {
		if err = writeLocalization(ctx, &p.Localizations[i], root); err != nil {
			return err
		}
	}

	return nil
}

// writeLocalization materializes one language directory:
// pass.strings plus any language-scoped images, copied by literal name.
func writeLocalization(ctx context.Context, loc *pass.Localization, root string) error {
	dir := filepath.Join(root, loc.Code+localizationDirSuffix)

	logger.DebugKV(ctx, "Writing localization", "language", loc.Code)

	if err := os.MkdirAll(dir, dirPermissions); err != nil {
		return &DirectoryError{Path: dir, Err: err}
	}

	if err := os.WriteFile(filepath.Join(dir, stringsFilename), loc.StringsFile(), filePermissions); err != nil {
		return fmt.Errorf("write %s strings: %w", loc.Code, err)
	}

	for i := range loc.Images {
		img := &loc.Images[i]
		if err := copyFile(img.SourcePath, filepath.Join(dir, img.LocalizedFileName())); err != nil {
			return fmt.Errorf("copy localized image %s: %w", img.LocalizedFileName(), err)
		}
	}

	return nil
}

// copyFile copies the source bytes verbatim to the destination.
func copyFile(source, destination string) error {
	in, err := os.Open(filepath.Clean(source))
	if err != nil {
		return err
	}

	//nolint:errcheck // Read-only handle, close error carries no information.
	defer in.Close()

	out, err := os.OpenFile(filepath.Clean(destination), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, filePermissions)
	if err != nil {
		return err
	}

	if _, err = io.Copy(out, in); err != nil {
		//nolint:errcheck // The copy error is the one worth reporting.
		out.Close()

		return err
	}

	return out.Close()
}
