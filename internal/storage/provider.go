// Package storage defines the content directory file-system abstraction.
package storage

import "github.com/i-asim/my-portfolio/internal/models"

// Extension is the fixed document extension. Every post file name
// passed through Provider must end with it.
const Extension = ".mdx"

// Provider is the interface for content file operations.
type Provider interface {
	// List returns metadata for every post file under dir (relative to the content root).
	List(dir string) ([]models.PostMeta, error)
	// Read returns the raw bytes of the file at path (relative to the content root).
	Read(path string) ([]byte, error)
	// Write atomically writes content to path (relative to the content root).
	Write(path string, content []byte) error
	// Delete removes the file at path (relative to the content root).
	Delete(path string) error
	// Move renames oldPath to newPath (both relative to the content root).
	Move(oldPath, newPath string) error
}
