//go:build !unix

package mmap

import (
	"io"
	"os"
)

// Map reads length bytes of f starting at offset into memory.
func Map(f *os.File, offset, length int64) (*File, error) {
	data := make([]byte, length)
	if _, err := io.ReadFull(io.NewSectionReader(f, offset, length), data); err != nil {
		return nil, err
	}
	return &File{data: data}, nil
}

// Close releases the window.
func (f *File) Close() error {
	f.data = nil
	return nil
}
