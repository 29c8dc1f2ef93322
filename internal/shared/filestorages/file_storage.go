package filestorages

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

var (
	ErrFileAlreadyExists = errors.New("file already exists")
	ErrInvalidKey        = errors.New("invalid file key")
	ErrInvalidRootDir    = errors.New("invalid root directory")
)

type PutResult struct {
	FileKey string
}

type PutOptions struct {
	AllowOverwrite bool
}

// FileStorage publishes whole files under a root directory. A reader of the root never
// observes a partially written file: content lands in a temp file first and is then
// renamed (overwrite) or hard-linked (create-if-not-exists) into place.
//
//go:generate mockgen -source=file_storage.go -destination=./mocks/file_storage_mock.go -package=mocks
type FileStorage interface {
	Put(ctx context.Context, key string, r io.Reader, opts PutOptions) (*PutResult, error)
	Exists(ctx context.Context, key string) (bool, error)
}

type fileStorage struct {
	dir string
}

func NewFileStorage(rootDir string) (FileStorage, error) {
	if rootDir == "" {
		return nil, fmt.Errorf("%w: root directory cannot be empty", ErrInvalidRootDir)
	}

	absRootDir, err := filepath.Abs(rootDir)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to resolve absolute path: %w", ErrInvalidRootDir, err)
	}

	return &fileStorage{dir: absRootDir}, nil
}

// SplitPath turns a file path into the root directory and key a FileStorage needs to write it.
func SplitPath(path string) (rootDir string, key string, err error) {
	if strings.TrimSpace(path) == "" {
		return "", "", fmt.Errorf("%w: empty path", ErrInvalidKey)
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", "", fmt.Errorf("%w: failed to resolve absolute path: %w", ErrInvalidKey, err)
	}
	return filepath.Dir(absPath), filepath.Base(absPath), nil
}

func (s *fileStorage) Put(ctx context.Context, key string, r io.Reader, opts PutOptions) (*PutResult, error) {
	if err := s.validateKey(key); err != nil {
		return nil, err
	}

	finalPath := filepath.Join(s.dir, filepath.Clean(key))
	dir := filepath.Dir(finalPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}

	tmp, err := os.CreateTemp(dir, ".tmp-*")
	if err != nil {
		return nil, err
	}
	tmpPath := tmp.Name()
	defer func() { _ = tmp.Close(); _ = os.Remove(tmpPath) }()

	if _, err := io.Copy(tmp, r); err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, err
	}
	if err := tmp.Sync(); err != nil {
		return nil, err
	}
	if err := tmp.Close(); err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if opts.AllowOverwrite {
		// Atomic replace (POSIX)
		if err := os.Rename(tmpPath, finalPath); err != nil {
			return nil, err
		}
		return &PutResult{FileKey: key}, nil
	}

	// Atomic publish-if-not-exists; the deferred remove drops the temp name only.
	if err := os.Link(tmpPath, finalPath); err != nil {
		if errors.Is(err, os.ErrExist) {
			return nil, ErrFileAlreadyExists
		}
		return nil, err
	}
	return &PutResult{FileKey: key}, nil
}

func (s *fileStorage) Exists(ctx context.Context, key string) (bool, error) {
	if err := s.validateKey(key); err != nil {
		return false, err
	}
	if err := ctx.Err(); err != nil {
		return false, err
	}

	_, err := os.Stat(filepath.Join(s.dir, filepath.Clean(key)))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, os.ErrNotExist):
		return false, nil
	default:
		return false, err
	}
}

func (s *fileStorage) validateKey(key string) error {
	if key == "" || filepath.IsAbs(key) {
		return ErrInvalidKey
	}
	cleanPath := filepath.Clean(key)
	if cleanPath == "." || cleanPath == ".." || strings.HasPrefix(cleanPath, ".."+string(filepath.Separator)) {
		return ErrInvalidKey
	}
	// the resolved path must stay within the root directory
	rel, err := filepath.Rel(s.dir, filepath.Join(s.dir, cleanPath))
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return ErrInvalidKey
	}
	return nil
}
