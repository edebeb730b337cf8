package fileio

import (
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
	"gitlab.com/tozd/go/errors"
	"vincit.fi/image-triage/api"
	"vincit.fi/image-triage/common/logger"
)

const (
	dirPermission  = 0o755
	filePermission = 0o644
)

type FileSystem struct {
	fs afero.Fs

	api.FileSystem
}

func NewFileSystem(fs afero.Fs) *FileSystem {
	return &FileSystem{fs: fs}
}

func NewOsFileSystem() *FileSystem {
	return NewFileSystem(afero.NewOsFs())
}

func (s *FileSystem) Fs() afero.Fs {
	return s.fs
}

// Move renames the file and falls back to copy and delete when the rename
// is not possible, e.g. across devices.
func (s *FileSystem) Move(src string, dst string) error {
	logger.Debug.Printf("Moving '%s' to '%s'", src, dst)
	renameErr := s.fs.Rename(src, dst)
	if renameErr == nil {
		return nil
	}

	if info, err := s.fs.Stat(src); err != nil || !info.Mode().IsRegular() {
		return errors.Errorf("move '%s': %w", src, renameErr)
	}

	logger.Debug.Printf("Rename failed (%s), copying '%s' instead", renameErr, src)
	if err := s.copyFile(src, dst); err != nil {
		return errors.Errorf("move '%s': %w", src, err)
	}
	if err := s.fs.Remove(src); err != nil {
		_ = s.fs.Remove(dst)
		return errors.Errorf("move '%s': %w", src, err)
	}
	return nil
}

func (s *FileSystem) copyFile(src string, dst string) error {
	source, err := s.fs.Open(src)
	if err != nil {
		return err
	}
	defer source.Close()

	destination, err := s.fs.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, filePermission)
	if err != nil {
		return err
	}
	if _, err := io.Copy(destination, source); err != nil {
		destination.Close()
		_ = s.fs.Remove(dst)
		return err
	}
	return destination.Close()
}

func (s *FileSystem) Delete(path string) error {
	logger.Debug.Printf("Deleting '%s'", path)
	if err := s.fs.Remove(path); err != nil {
		return errors.Errorf("delete '%s': %w", path, err)
	}
	return nil
}

// Write replaces the file with the data. A failed write leaves no partial
// file behind. When the file can not be opened it is left untouched.
func (s *FileSystem) Write(path string, data []byte) error {
	logger.Debug.Printf("Writing %d bytes to '%s'", len(data), path)
	f, err := s.fs.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, filePermission)
	if err != nil {
		return errors.Errorf("write '%s': %w", path, err)
	}
	_, err = f.Write(data)
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		_ = s.fs.Remove(path)
		return errors.Errorf("write '%s': %w", path, err)
	}
	return nil
}

func (s *FileSystem) Read(path string) ([]byte, error) {
	data, err := afero.ReadFile(s.fs, path)
	if err != nil {
		return nil, errors.Errorf("read '%s': %w", path, err)
	}
	return data, nil
}

func (s *FileSystem) EnsureDir(path string) error {
	if err := s.fs.MkdirAll(path, dirPermission); err != nil {
		return errors.Errorf("create directory '%s': %w", path, err)
	}
	return nil
}

func (s *FileSystem) ListDir(path string) ([]string, error) {
	files, err := afero.ReadDir(s.fs, path)
	if err != nil {
		return nil, errors.Errorf("list '%s': %w", path, err)
	}

	logger.Debug.Printf("Scanning directory '%s'", path)
	var names []string
	for _, file := range files {
		if file.Mode().IsRegular() {
			names = append(names, file.Name())
		}
	}
	return names, nil
}

func (s *FileSystem) Exists(path string) bool {
	exists, err := afero.Exists(s.fs, path)
	return err == nil && exists
}

func (s *FileSystem) IsDir(path string) bool {
	isDir, err := afero.IsDir(s.fs, path)
	return err == nil && isDir
}

// SameDir tells whether two paths point to the same directory after
// cleaning.
func SameDir(a string, b string) bool {
	absA, errA := filepath.Abs(a)
	absB, errB := filepath.Abs(b)
	if errA != nil || errB != nil {
		return filepath.Clean(a) == filepath.Clean(b)
	}
	return absA == absB
}
