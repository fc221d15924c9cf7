package service

import "io"

// MediaStorage stores uploaded images under opaque filenames.
type MediaStorage interface {
	// Save writes the upload and returns the generated bare filename.
	Save(fileData io.Reader, extension string) (string, error)

	// Read opens a stored upload given its bare filename.
	Read(filename string) (io.ReadCloser, error)

	// Delete removes a stored upload. Missing files are not an error.
	Delete(filename string) error
}
