package bundler

import (
	"crypto/sha1" //nolint:gosec // Format-mandated digest.
	"encoding/hex"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestGenerateManifest hashes files recursively with forward-slash relative paths.
func TestGenerateManifest(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "pass.json"), []byte(`{"a":1}`), 0o600))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "de.lproj"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "de.lproj", "pass.strings"), []byte(`"GATE" = "Tor";`+"\n"), 0o600))

	manifest, err := generateManifest(root)
	require.NoError(t, err)
	require.Len(t, manifest, 2)

	sum := sha1.Sum([]byte(`{"a":1}`)) //nolint:gosec // Format-mandated digest.
	require.Equal(t, hex.EncodeToString(sum[:]), manifest["pass.json"])
	require.Contains(t, manifest, "de.lproj/pass.strings")
}

// TestWriteManifestExcludesItself ensures manifest.json never hashes itself.
func TestWriteManifestExcludesItself(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "pass.json"), []byte("{}"), 0o600))

	require.NoError(t, writeManifest(root))

	contents, err := os.ReadFile(filepath.Join(root, ManifestFilename))
	require.NoError(t, err)

	var manifest map[string]string

	require.NoError(t, json.Unmarshal(contents, &manifest))
	require.NotContains(t, manifest, ManifestFilename)
	require.Contains(t, manifest, "pass.json")

	// Pretty-printed on disk.
	require.Contains(t, string(contents), "\n  ")

	// Re-running over a tree that already carries a manifest stays stable.
	require.NoError(t, writeManifest(root))

	again, err := os.ReadFile(filepath.Join(root, ManifestFilename))
	require.NoError(t, err)
	require.Equal(t, contents, again)
}

// TestGenerateManifestLowercaseHex pins the digest encoding.
func TestGenerateManifestLowercaseHex(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "icon.png"), []byte("png bytes"), 0o600))

	manifest, err := generateManifest(root)
	require.NoError(t, err)

	digest := manifest["icon.png"]
	require.Len(t, digest, hex.EncodedLen(sha1.Size))
	require.Equal(t, strings.ToLower(digest), digest)
}
