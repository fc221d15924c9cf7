package fs

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/lacentralbaja/archivo/internal/service"
)

// Storage keeps uploads in a single flat directory. The store persists only
// the bare filename; the read API turns it into /uploads/<name>.
type Storage struct {
	rootPath string
}

// Ensure Storage implements the interface at compile time.
var _ service.MediaStorage = (*Storage)(nil)

func New(rootPath string) (*Storage, error) {
	// Use filepath.Clean to prevent path traversal issues like "uploads/../"
	p := filepath.Clean(rootPath)

	if err := os.MkdirAll(p, 0755); err != nil {
		return nil, fmt.Errorf("failed to create uploads directory %s: %w", p, err)
	}

	return &Storage{rootPath: p}, nil
}

// Root returns the uploads directory, for mounting a file server.
func (s *Storage) Root() string {
	return s.rootPath
}

// Save writes the upload under a generated <unix-ms>-<random> name with the
// (already capped) extension appended, and returns the bare filename.
func (s *Storage) Save(fileData io.Reader, extension string) (string, error) {
	ext := filepath.Clean(extension)
	if ext == "." {
		ext = ""
	}
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:10]
	filename := fmt.Sprintf("%d-%s%s", time.Now().UnixMilli(), suffix, ext)

	fullPath := filepath.Join(s.rootPath, filename)
	dst, err := os.Create(fullPath)
	if err != nil {
		return "", fmt.Errorf("failed to create destination file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, fileData); err != nil {
		// If the copy fails, clean up the partial file. Best effort.
		os.Remove(fullPath)
		return "", fmt.Errorf("failed to copy file data: %w", err)
	}

	return filename, nil
}

// Read opens a stored upload for reading.
func (s *Storage) Read(filename string) (io.ReadCloser, error) {
	fullPath := filepath.Join(s.rootPath, filepath.Base(filename))

	file, err := os.Open(fullPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("upload not found: %w", err)
		}
		return nil, fmt.Errorf("failed to open file: %w", err)
	}

	return file, nil
}

// Delete removes a stored upload. A missing file is not an error.
func (s *Storage) Delete(filename string) error {
	fullPath := filepath.Join(s.rootPath, filepath.Base(filename))

	err := os.Remove(fullPath)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}
