// Package definition loads caller-authored pass definitions from YAML
// files and converts them into the domain model consumed by the bundler.
package definition
