package definition

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/oshokin/pass-bundler/internal/domain/pass"
)

// Repository defines read operations for pass definitions.
type Repository interface {
	Load(ctx context.Context) (*pass.Pass, error)
}

// FileRepository reads a pass definition from a YAML file on disk.
type FileRepository struct {
	// path is the filesystem location of the definition file.
	path string
}

// ErrNotFound is returned when the definition file does not exist.
var ErrNotFound = errors.New("pass definition not found")

// formatVersion is the fixed content document format version.
const formatVersion = 1

// NewFileRepository creates a repository that reads YAML at the provided path.
func NewFileRepository(path string) *FileRepository {
	return &FileRepository{
		path: filepath.Clean(path),
	}
}

// file mirrors the YAML layout of a pass definition.
type file struct {
	Type               string              `yaml:"type"`
	SerialNumber       string              `yaml:"serial_number"`
	PassTypeIdentifier string              `yaml:"pass_type_identifier"`
	TeamIdentifier     string              `yaml:"team_identifier"`
	OrganizationName   string              `yaml:"organization_name"`
	Description        string              `yaml:"description"`
	LogoText           string              `yaml:"logo_text"`
	ForegroundColor    string              `yaml:"foreground_color"`
	BackgroundColor    string              `yaml:"background_color"`
	LabelColor         string              `yaml:"label_color"`
	RelevantDate       string              `yaml:"relevant_date"`
	ExpirationDate     string              `yaml:"expiration_date"`
	Barcode            *pass.Barcode       `yaml:"barcode"`
	Fields             pass.FieldSet       `yaml:"fields"`
	Images             []imageEntry        `yaml:"images"`
	Localizations      []localizationEntry `yaml:"localizations"`
}

// imageEntry describes one image asset in the definition file.
type imageEntry struct {
	Role  string `yaml:"role"`
	Name  string `yaml:"name"`
	Scale int    `yaml:"scale"`
	File  string `yaml:"file"`
}

// localizationEntry describes one language's overrides in the definition file.
type localizationEntry struct {
	Language string            `yaml:"language"`
	Strings  map[string]string `yaml:"strings"`
	Images   []imageEntry      `yaml:"images"`
}

// Load reads and converts the definition into the domain model.
func (r *FileRepository) Load(_ context.Context) (*pass.Pass, error) {
	contents, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrNotFound
		}

		return nil, fmt.Errorf("read definition file: %w", err)
	}

	var def file
	if err = yaml.Unmarshal(contents, &def); err != nil {
		return nil, fmt.Errorf("decode definition file: %w", err)
	}

	return toDomain(&def), nil
}

// toDomain converts the YAML definition into the caller-owned pass model.
func toDomain(def *file) *pass.Pass {
	p := &pass.Pass{
		Type: pass.Type(def.Type),
		Content: pass.Content{
			FormatVersion:      formatVersion,
			SerialNumber:       def.SerialNumber,
			PassTypeIdentifier: def.PassTypeIdentifier,
			TeamIdentifier:     def.TeamIdentifier,
			OrganizationName:   def.OrganizationName,
			Description:        def.Description,
			LogoText:           def.LogoText,
			ForegroundColor:    def.ForegroundColor,
			BackgroundColor:    def.BackgroundColor,
			LabelColor:         def.LabelColor,
			RelevantDate:       def.RelevantDate,
			ExpirationDate:     def.ExpirationDate,
			Barcode:            def.Barcode,
		},
		Fields: def.Fields,
		Images: toImages(def.Images),
	}

	for _, loc := range def.Localizations {
		p.Localizations = append(p.Localizations, pass.Localization{
			Code:    loc.Language,
			Strings: loc.Strings,
			Images:  toImages(loc.Images),
		})
	}

	return p
}

// toImages converts image entries, deriving extensions from file paths
// and defaulting the display scale to 1.
func toImages(entries []imageEntry) []pass.Image {
	if len(entries) == 0 {
		return nil
	}

	images := make([]pass.Image, 0, len(entries))

	for _, entry := range entries {
		scale := entry.Scale
		if scale == 0 {
			scale = 1
		}

		images = append(images, pass.Image{
			Role:       entry.Role,
			Name:       entry.Name,
			Scale:      scale,
			Extension:  strings.TrimPrefix(filepath.Ext(entry.File), "."),
			SourcePath: entry.File,
		})
	}

	return images
}
