// Package config defines bundler settings (scratch and output directories,
// signing material paths) and provides helpers to load, validate and save
// them in YAML format.
//
// The Config type is treated as immutable once loaded: services hold it
// read-only, which keeps concurrent bundle creation safe.
package config
