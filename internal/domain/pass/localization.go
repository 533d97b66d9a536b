package pass

import (
	"sort"
	"strings"
)

// Localization represents one language's overrides:
// translated display strings and optional language-specific images.
type Localization struct {
	// Code is the language/region code, e.g. "de" or "zh-Hans".
	// It names the <code>.lproj bundle subdirectory.
	Code string
	// Strings maps translation keys to localized values.
	Strings map[string]string
	// Images are language-scoped image overrides copied by literal name.
	Images []Image
}

// StringsFile renders the pass.strings content: one `"key" = "value";`
// assignment per line. Keys are emitted in sorted order so repeated runs
// of the bundler produce byte-identical files.
func (l *Localization) StringsFile() []byte {
	keys := make([]string, 0, len(l.Strings))
	for key := range l.Strings {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	var b strings.Builder
	for _, key := range keys {
		b.WriteString(`"` + escapeStringsValue(key) + `" = "` + escapeStringsValue(l.Strings[key]) + `";` + "\n")
	}

	return []byte(b.String())
}

// escapeStringsValue backslash-escapes embedded quotes and backslashes.
func escapeStringsValue(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)

	return strings.ReplaceAll(s, `"`, `\"`)
}
