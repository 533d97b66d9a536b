package bundler

import (
	"archive/zip"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// writeArchive walks the scratch tree root-first and produces a zip-format
// archive at the destination: every directory (including empty ones) gets
// an explicit entry, every regular file is stored under its bundle-relative
// forward-slash path with its on-disk bytes exactly.
func writeArchive(root, destination string) error {
	out, err := os.Create(filepath.Clean(destination))
	if err != nil {
		return &ArchiveError{Path: destination, Err: err}
	}

	writer := zip.NewWriter(out)

	err = filepath.WalkDir(root, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}

		if rel == "." {
			return nil
		}

		rel = filepath.ToSlash(rel)

		// WalkDir is depth-first lexical, so a directory's entry always
		// precedes its descendants.
		if entry.IsDir() {
			_, err = writer.Create(rel + "/")
			return err
		}

		return copyIntoArchive(writer, rel, path)
	})
	if err != nil {
		//nolint:errcheck // Preserve the walk error, the archive is discarded anyway.
		writer.Close()
		//nolint:errcheck // Same as above.
		out.Close()

		return &ArchiveError{Path: destination, Err: err}
	}

	if err = writer.Close(); err != nil {
		//nolint:errcheck // Preserve the archive error.
		out.Close()

		return &ArchiveError{Path: destination, Err: err}
	}

	if err = out.Close(); err != nil {
		return &ArchiveError{Path: destination, Err: err}
	}

	return nil
}

// copyIntoArchive streams one file's bytes into a zip entry.
func copyIntoArchive(writer *zip.Writer, name, path string) error {
	in, err := os.Open(filepath.Clean(path))
	if err != nil {
		return err
	}

	//nolint:errcheck // Read-only handle, close error carries no information.
	defer in.Close()

	entry, err := writer.Create(name)
	if err != nil {
		return err
	}

	_, err = io.Copy(entry, in)

	return err
}
