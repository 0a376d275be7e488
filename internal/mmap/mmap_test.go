package mmap

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func TestMapWindow(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data")
	content := []byte("0123456789abcdefghij")
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatal(err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	// An unaligned offset exercises the page-alignment handling.
	m, err := Map(f, 3, 7)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(m.Data(), content[3:10]) {
		t.Errorf("Data() = %q, want %q", m.Data(), content[3:10])
	}
	if err := m.Close(); err != nil {
		t.Errorf("Close: %v", err)
	}
	if err := m.Close(); err != nil {
		t.Errorf("second Close: %v", err)
	}
}

func TestMapEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty")
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	m, err := Map(f, 0, 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(m.Data()) != 0 {
		t.Errorf("Data() = %q, want empty", m.Data())
	}
	if err := m.Close(); err != nil {
		t.Errorf("Close: %v", err)
	}
}
