// Package bundler implements the pass bundle pipeline: validate the image
// set, materialize the bundle tree in a serial-keyed scratch directory,
// generate the SHA-1 content manifest, produce the detached signature and
// archive everything into a .pkpass container, removing the scratch tree
// on every exit path.
package bundler
