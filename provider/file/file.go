package file

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	pr "github.com/unkn0wn-root/jsoncache/provider"
)

const (
	DefaultMode = 0o644
	tmpSuffix   = ".tmp"
)

// File stores the document in a single file.
//
// Put writes the whole document to "<path>.tmp" and renames it onto path.
// The parent directory must already exist.
// A crash before the rename leaves path untouched; the temp file may be left behind.
type File struct {
	path string
	mode fs.FileMode
}

var _ pr.Provider = (*File)(nil)

// New returns a file provider for path. mode 0 means DefaultMode.
func New(path string, mode fs.FileMode) *File {
	if mode == 0 {
		mode = DefaultMode
	}
	return &File{path: path, mode: mode}
}

func (f *File) Location() string { return f.path }

// TempPath is where Put stages the next document.
func (f *File) TempPath() string { return f.path + tmpSuffix }

func (f *File) Get(_ context.Context) ([]byte, bool, error) {
	b, err := os.ReadFile(f.path)
	if err != nil {
		if IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return b, true, nil
}

func (f *File) Put(_ context.Context, doc []byte) error {
	tmp := f.TempPath()
	out, err := os.OpenFile(tmp, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, f.mode)
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	if _, err := out.Write(doc); err != nil {
		_ = out.Close()
		_ = os.Remove(tmp)
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := out.Sync(); err != nil {
		_ = out.Close()
		_ = os.Remove(tmp)
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err := out.Close(); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmp, f.path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}

// IsNotExist reports whether err means the file is absent.
func IsNotExist(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}
