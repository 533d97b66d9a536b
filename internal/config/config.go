package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds the signing material and directories used by the bundler.
type Config struct {
	// TempDir is the scratch-space root where bundle trees are materialized.
	TempDir string `yaml:"temp_dir"`
	// OutputDir is the directory where finished .pkpass archives are written.
	OutputDir string `yaml:"output_dir"`
	// CertificateFile is the path to the password-protected PKCS#12 container
	// holding the leaf certificate and private key.
	CertificateFile string `yaml:"certificate_file"`
	// CertificatePassword decrypts CertificateFile.
	CertificatePassword string `yaml:"certificate_password"`
	// WWDRCertificateFile is the path to the intermediate (trust-chain) certificate.
	WWDRCertificateFile string `yaml:"wwdr_certificate_file"`
	// SkipSignature disables the signing stage entirely.
	// Intended for development builds; the produced bundle has no signature file.
	SkipSignature bool `yaml:"skip_signature"`
}

const (
	// DefaultConfigFilename is the default filename for bundler settings.
	DefaultConfigFilename = "pass-bundler-settings.yaml"

	// DefaultOutputDir is used when no output directory is configured.
	DefaultOutputDir = "."

	// DefaultFilePermissions is the default file permission for config files.
	DefaultFilePermissions = 0o600
)

var (
	// errConfigIsNotSet is returned when a nil configuration is provided.
	errConfigIsNotSet = errors.New("configuration is not set")
	// errCertificateRequired is returned when signing is enabled without a certificate.
	errCertificateRequired = errors.New("certificate file must be provided unless signing is skipped")
	// errChainCertificateRequired is returned when signing is enabled without a trust-chain certificate.
	errChainCertificateRequired = errors.New("WWDR certificate file must be provided unless signing is skipped")
)

// Load reads configuration from the provided path and validates essential fields.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultConfigFilename
	}

	contents, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("read settings: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(contents, &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal settings: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Save writes the configuration to the provided path.
func Save(path string, cfg *Config) error {
	if cfg == nil {
		return errConfigIsNotSet
	}

	if path == "" {
		path = DefaultConfigFilename
	}

	if err := Validate(cfg); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}

	// Restrict permissions: the file may carry the certificate password.
	if err := os.WriteFile(filepath.Clean(path), data, DefaultFilePermissions); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}

	return nil
}

// Validate checks the provided settings for required fields and applies defaults.
func Validate(cfg *Config) error {
	if cfg == nil {
		return errConfigIsNotSet
	}

	// Set default scratch root if not specified.
	if cfg.TempDir == "" {
		cfg.TempDir = os.TempDir()
	}

	// Set default output directory if not specified.
	if cfg.OutputDir == "" {
		cfg.OutputDir = DefaultOutputDir
	}

	if cfg.SkipSignature {
		return nil
	}

	if cfg.CertificateFile == "" {
		return errCertificateRequired
	}

	if cfg.WWDRCertificateFile == "" {
		return errChainCertificateRequired
	}

	return nil
}
