package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Backend stores the uploaded source files of each project. Every project
// owns one directory named after its slug.
type Backend interface {
	// Save writes data under a generated name and returns that name
	Save(ctx context.Context, slug, originalName string, data io.Reader) (StoredFile, error)

	// Delete removes one stored file; a missing file is not an error
	Delete(ctx context.Context, slug, filename string) error

	// RemoveProject removes the whole storage area of a project
	RemoveProject(ctx context.Context, slug string) error

	// Dir returns the storage area path of a project
	Dir(slug string) string
}

// StoredFile describes a file written by Save
type StoredFile struct {
	Filename string
	Path     string
	Size     int64
}

// FilesystemStorage implements Backend on the local filesystem
type FilesystemStorage struct {
	basePath string
	now      func() time.Time

	mu   sync.Mutex
	last int64
}

// NewFilesystemStorage creates the base directory if needed
func NewFilesystemStorage(basePath string) (*FilesystemStorage, error) {
	if err := os.MkdirAll(basePath, 0755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}
	return &FilesystemStorage{basePath: basePath, now: time.Now}, nil
}

// Dir returns <basePath>/<slug>
func (fs *FilesystemStorage) Dir(slug string) string {
	return filepath.Join(fs.basePath, slug)
}

// Save writes the upload as <unix-nanos>_<uuid><ext>. Names sort in upload
// order, which is the order the catalog reads them in.
func (fs *FilesystemStorage) Save(ctx context.Context, slug, originalName string, data io.Reader) (StoredFile, error) {
	if err := checkSegment(slug); err != nil {
		return StoredFile{}, err
	}
	if err := ctx.Err(); err != nil {
		return StoredFile{}, err
	}

	dir := fs.Dir(slug)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return StoredFile{}, fmt.Errorf("failed to create directory: %w", err)
	}

	name := fs.generateName(originalName)
	fullPath := filepath.Join(dir, name)
	tempPath := filepath.Join(dir, TempName(name))

	// Readers skip dotfiles, so a partial upload is never part of the catalog
	file, err := os.Create(tempPath)
	if err != nil {
		return StoredFile{}, fmt.Errorf("failed to create file: %w", err)
	}

	n, err := io.Copy(file, data)
	if err == nil {
		err = file.Close()
	} else {
		file.Close()
	}
	if err != nil {
		os.Remove(tempPath)
		return StoredFile{}, fmt.Errorf("failed to write file: %w", err)
	}

	if err := os.Rename(tempPath, fullPath); err != nil {
		os.Remove(tempPath)
		return StoredFile{}, fmt.Errorf("failed to store file: %w", err)
	}

	return StoredFile{Filename: name, Path: fullPath, Size: n}, nil
}

// Delete removes a stored file
func (fs *FilesystemStorage) Delete(ctx context.Context, slug, filename string) error {
	if err := checkSegment(slug); err != nil {
		return err
	}
	if err := checkSegment(filename); err != nil {
		return err
	}
	if err := os.Remove(filepath.Join(fs.Dir(slug), filename)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}

// RemoveProject deletes the project directory and everything in it
func (fs *FilesystemStorage) RemoveProject(ctx context.Context, slug string) error {
	if err := checkSegment(slug); err != nil {
		return err
	}
	if err := os.RemoveAll(fs.Dir(slug)); err != nil {
		return fmt.Errorf("failed to remove project storage: %w", err)
	}
	return nil
}

func (fs *FilesystemStorage) generateName(originalName string) string {
	ext := strings.ToLower(filepath.Ext(originalName))

	fs.mu.Lock()
	stamp := fs.now().UnixNano()
	if stamp <= fs.last {
		stamp = fs.last + 1
	}
	fs.last = stamp
	fs.mu.Unlock()

	return fmt.Sprintf("%020d_%s%s", stamp, uuid.New().String(), ext)
}

// checkSegment rejects names that would escape the storage area
func checkSegment(name string) error {
	if name == "" || name == "." || name == ".." || strings.ContainsAny(name, `/\`) {
		return fmt.Errorf("invalid storage name %q", name)
	}
	return nil
}

// TempSuffix marks an upload that is still being written
const TempSuffix = ".part"

// TempName returns the in-progress name for a stored file
func TempName(name string) string {
	return "." + name + TempSuffix
}

// IsTempName reports whether name is an in-progress upload
func IsTempName(name string) bool {
	return strings.HasPrefix(name, ".") && strings.HasSuffix(name, TempSuffix)
}

// SupportedExtension reports whether a file can be read as a catalog source
func SupportedExtension(filename string) bool {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".csv", ".xlsx":
		return true
	default:
		return false
	}
}
