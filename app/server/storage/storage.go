// Package storage is the filesystem collaborator of the server.
package storage

import (
	"errors"
	"io"
	"io/fs"
	"os"

	"github.com/ydb-platform/httpcore/app/server/utils"
	"golang.org/x/xerrors"
)

type Storage interface {
	// Exists reports whether a regular file is present at path
	Exists(path string) bool
	// Size returns the file size in bytes; a missing file yields utils.ErrResourceNotFound
	Size(path string) (uint64, error)
	// OpenForWrite creates the file or truncates an existing one
	OpenForWrite(path string) (io.WriteCloser, error)
}

var _ Storage = (*Local)(nil)

// Local serves paths from the local filesystem as they are given.
type Local struct{}

func (Local) Exists(path string) bool {
	if path == "" {
		return false
	}

	info, err := os.Stat(path)
	if err != nil {
		return false
	}

	return info.Mode().IsRegular()
}

func (Local) Size(path string) (uint64, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return 0, xerrors.Errorf("stat '%s': %w", path, utils.ErrResourceNotFound)
		}

		return 0, xerrors.Errorf("stat '%s': %w", path, err)
	}

	if info.IsDir() {
		return 0, xerrors.Errorf("path '%s' is a directory: %w", path, utils.ErrResourceNotFound)
	}

	return uint64(info.Size()), nil
}

const filePerm = 0o644

func (Local) OpenForWrite(path string) (io.WriteCloser, error) {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, filePerm)
	if err != nil {
		return nil, xerrors.Errorf("open file '%s': %w", path, err)
	}

	return f, nil
}

func NewLocal() *Local {
	return &Local{}
}
