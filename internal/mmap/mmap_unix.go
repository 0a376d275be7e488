//go:build unix

package mmap

import (
	"os"

	"golang.org/x/sys/unix"
)

// Map maps length bytes of f starting at offset. The mapping stays
// valid after f is closed; release it with Close. The offset need not
// be page-aligned.
func Map(f *os.File, offset, length int64) (*File, error) {
	if length == 0 {
		return &File{}, nil
	}
	align := offset % int64(unix.Getpagesize())
	b, err := unix.Mmap(int(f.Fd()), offset-align, int(length+align), unix.PROT_READ, unix.MAP_SHARED)
	if err != nil {
		return nil, err
	}
	return &File{data: b[align : align+length], full: b}, nil
}

// Close releases the mapping. The slice returned by Data must not be
// used afterward.
func (f *File) Close() error {
	if f.full == nil {
		return nil
	}
	err := unix.Munmap(f.full)
	f.full, f.data = nil, nil
	return err
}
