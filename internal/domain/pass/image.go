package pass

import (
	"path/filepath"
	"strings"
)

// Image role names recognized by the validator.
const (
	roleIcon       = "icon"
	roleLogo       = "logo"
	roleStrip      = "strip"
	roleBackground = "background"
	roleThumbnail  = "thumbnail"
	roleFooter     = "footer"
)

// Scale suffixes marking higher-resolution variants of the same logical role.
const (
	suffix2x = "@2x"
	suffix3x = "@3x"
)

// Image represents one visual asset of the bundle.
type Image struct {
	// Role is the logical role name (icon, logo, strip, ...).
	Role string
	// Name optionally overrides the on-disk base name.
	Name string
	// Scale is the display-scale multiplier: 1, 2 or 3.
	// Scales above 1 produce an "@2x"/"@3x" filename suffix.
	Scale int
	// Extension is the file extension without the dot. Must be "png".
	Extension string
	// SourcePath is where the asset bytes are read from.
	SourcePath string
}

// EffectiveRole returns the role identity used for allow-list checks.
// Scale suffixes are stripped because 1x/2x/3x files represent one logical role.
func (i *Image) EffectiveRole() string {
	name := i.Role
	if i.Name != "" {
		name = i.Name
	}

	return stripScaleSuffix(name)
}

// FileName resolves the on-disk bundle filename:
// the explicit override (with the scale suffix appended for scales above 1)
// or the source file's own base name.
func (i *Image) FileName() string {
	if i.Name != "" {
		return i.Name + i.scaleSuffix() + "." + i.Extension
	}

	base := filepath.Base(i.SourcePath)

	return strings.TrimSuffix(base, filepath.Ext(base)) + "." + i.Extension
}

// LocalizedFileName resolves the filename of a language-scoped image.
// Localized images use literal names: no scale-suffix logic is applied.
func (i *Image) LocalizedFileName() string {
	if i.Name != "" {
		return i.Name + "." + i.Extension
	}

	return filepath.Base(i.SourcePath)
}

// scaleSuffix returns the filename suffix for the image's display scale.
func (i *Image) scaleSuffix() string {
	switch i.Scale {
	case 2: //nolint:mnd // Retina scale.
		return suffix2x
	case 3: //nolint:mnd // Super-retina scale.
		return suffix3x
	default:
		return ""
	}
}

// stripScaleSuffix removes a trailing "@2x"/"@3x" marker from a name.
func stripScaleSuffix(name string) string {
	name = strings.TrimSuffix(name, suffix2x)

	return strings.TrimSuffix(name, suffix3x)
}
