package services

import "io"

// FileStore is the storage boundary for uploaded assets (member photos,
// evidence files, letter attachments). Store returns the path the row should
// reference; Delete removes a previously stored file; Resolve turns a stored
// path back into a servable filesystem location.
type FileStore interface {
	Store(namespace string, filename string, content io.Reader) (string, error)
	Delete(path string) error
	Resolve(path string) string
}
