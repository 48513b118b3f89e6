// Package storage provides the text read/write primitives handed to the
// config loader. Every operation takes an explicit path; nothing here
// depends on the working directory.
package storage

import (
	"path/filepath"

	"github.com/spf13/afero"
)

// TextReader produces the full text stored under id.
type TextReader interface {
	ReadText(id string) (string, error)
}

// TextWriter replaces the text stored under id.
type TextWriter interface {
	WriteText(id, text string) error
}

// TextStore can both read and write.
type TextStore interface {
	TextReader
	TextWriter
}

var _ TextStore = (*FileStore)(nil)

// FileStore reads and writes whole files on an afero filesystem.
type FileStore struct {
	fs afero.Fs
}

// NewFileStore creates a FileStore on top of fs.
func NewFileStore(fs afero.Fs) *FileStore {
	return &FileStore{fs: fs}
}

// NewOSFileStore creates a FileStore backed by the real filesystem.
func NewOSFileStore() *FileStore {
	return NewFileStore(afero.NewOsFs())
}

// NewMemFileStore creates a FileStore backed by an in-memory filesystem.
func NewMemFileStore() *FileStore {
	return NewFileStore(afero.NewMemMapFs())
}

// ReadText returns the content of the file at path. Errors from the
// filesystem are returned as is.
func (s *FileStore) ReadText(path string) (string, error) {
	data, err := afero.ReadFile(s.fs, path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// WriteText writes text to path, creating parent directories as needed.
func (s *FileStore) WriteText(path, text string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := s.fs.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	return afero.WriteFile(s.fs, path, []byte(text), 0644)
}

// Exists reports whether a file or directory exists at path.
func (s *FileStore) Exists(path string) (bool, error) {
	return afero.Exists(s.fs, path)
}
