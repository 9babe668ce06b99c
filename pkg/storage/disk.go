// Package storage is the durable client-side store behind shopdesk: it
// holds the serialized session record and uploaded product images.
//
// Two drivers are available:
//   - "local"  — local filesystem (default)
//   - "s3"     — S3-compatible object storage (AWS S3, MinIO, R2, Spaces)
//
// Quick start:
//
//	// boot once, at CLI startup:
//	storage.Connect()
//
//	// default disk
//	storage.Put("products/watch.jpg", data)
//	url := storage.URL("products/watch.jpg")
//
//	// named disk
//	storage.Use("s3").Put("products/watch.jpg", data)
package storage

import "io"

// Disk is the driver interface.
type Disk interface {
	// Put writes content to path, creating parent directories as needed.
	Put(path string, content []byte) error

	// PutStream writes from r to path.
	PutStream(path string, r io.Reader) error

	// Get returns the full content of the file at path.
	Get(path string) ([]byte, error)

	// Exists reports whether a file exists at path.
	Exists(path string) bool

	// Delete removes a file. Returns nil if the file did not exist.
	Delete(path string) error

	// URL returns the public URL for path.
	URL(path string) string
}
