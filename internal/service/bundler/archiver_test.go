package bundler

import (
	"archive/zip"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestWriteArchive preserves relative paths, directory entries and file bytes.
func TestWriteArchive(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "pass.json"), []byte(`{"a":1}`), 0o600))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "de.lproj"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "de.lproj", "pass.strings"), []byte("x"), 0o600))
	// Empty directories still get explicit entries.
	require.NoError(t, os.MkdirAll(filepath.Join(root, "fr.lproj"), 0o755))

	destination := filepath.Join(t.TempDir(), "bundle"+BundleExtension)
	require.NoError(t, writeArchive(root, destination))

	reader, err := zip.OpenReader(destination)
	require.NoError(t, err)

	defer func() {
		require.NoError(t, reader.Close())
	}()

	names := make([]string, 0, len(reader.File))
	for _, entry := range reader.File {
		names = append(names, entry.Name)
	}

	require.Contains(t, names, "pass.json")
	require.Contains(t, names, "de.lproj/")
	require.Contains(t, names, "de.lproj/pass.strings")
	require.Contains(t, names, "fr.lproj/")

	// A directory's entry precedes its descendants.
	dirIdx, fileIdx := -1, -1

	for i, name := range names {
		switch name {
		case "de.lproj/":
			dirIdx = i
		case "de.lproj/pass.strings":
			fileIdx = i
		}
	}

	require.Less(t, dirIdx, fileIdx)
}

// TestWriteArchiveBadDestination surfaces an ArchiveError.
func TestWriteArchiveBadDestination(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	destination := filepath.Join(t.TempDir(), "missing", "bundle"+BundleExtension)

	err := writeArchive(root, destination)

	var archiveErr *ArchiveError

	require.ErrorAs(t, err, &archiveErr)
	require.Equal(t, destination, archiveErr.Path)
}
