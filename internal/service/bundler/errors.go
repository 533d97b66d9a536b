package bundler

import "fmt"

// DirectoryError indicates a scratch or localization directory could not
// be created for a reason other than already existing. Fatal, never retried.
type DirectoryError struct {
	// Path is the directory that could not be created.
	Path string
	// Err is the underlying cause.
	Err error
}

// Error implements the error interface.
func (e *DirectoryError) Error() string {
	return fmt.Sprintf("create directory %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying cause.
func (e *DirectoryError) Unwrap() error {
	return e.Err
}

// ArchiveError indicates the destination archive could not be opened or written.
type ArchiveError struct {
	// Path is the destination archive file.
	Path string
	// Err is the underlying cause.
	Err error
}

// Error implements the error interface.
func (e *ArchiveError) Error() string {
	return fmt.Sprintf("write archive %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying cause.
func (e *ArchiveError) Unwrap() error {
	return e.Err
}
