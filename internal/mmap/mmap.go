// Package mmap provides read-only access to a byte window of a file.
//
// On unix systems the window is memory-mapped, so large documents are
// paged in on demand rather than materialized. Elsewhere the window is
// read into memory.
package mmap

// A File is a byte window of an underlying file.
type File struct {
	data []byte // the window visible to the caller
	full []byte // page-aligned mapping; nil when the window was read
}

// Data returns the window's bytes. The slice is valid until Close.
func (f *File) Data() []byte {
	return f.data
}
