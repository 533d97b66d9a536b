package bundler

import (
	"crypto/sha1" //nolint:gosec // The container format mandates SHA-1 manifest digests.
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// generateManifest walks the assembled scratch tree and maps every regular
// file's bundle-relative path (forward slashes) to the lowercase hex SHA-1
// of its exact bytes on disk. The manifest file itself is excluded: it does
// not exist yet at scan time, and must never hash itself.
func generateManifest(root string) (map[string]string, error) {
	manifest := make(map[string]string)

	err := filepath.WalkDir(root, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if entry.IsDir() {
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}

		rel = filepath.ToSlash(rel)
		if rel == ManifestFilename {
			return nil
		}

		contents, err := os.ReadFile(filepath.Clean(path))
		if err != nil {
			return err
		}

		digest := sha1.Sum(contents) //nolint:gosec // Format-mandated digest.
		manifest[rel] = hex.EncodeToString(digest[:])

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("hash bundle files: %w", err)
	}

	return manifest, nil
}

// writeManifest generates the manifest and writes it pretty-printed
// into the scratch root. It must run after assembly and before signing:
// the signature covers exactly these bytes.
func writeManifest(root string) error {
	manifest, err := generateManifest(root)
	if err != nil {
		return err
	}

	contents, err := json.MarshalIndent(manifest, "", "  ")
	if err != nil {
		return fmt.Errorf("encode manifest: %w", err)
	}

	if err = os.WriteFile(filepath.Join(root, ManifestFilename), contents, filePermissions); err != nil {
		return fmt.Errorf("write manifest: %w", err)
	}

	return nil
}
