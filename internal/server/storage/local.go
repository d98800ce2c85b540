package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/dmitrijs2005/scindn/internal/common"
	"github.com/dmitrijs2005/scindn/internal/server/models"
)

// LocalStore keeps buckets as directories under a static root, one per
// project UUID.
type LocalStore struct {
	root string
}

// NewLocalStore resolves root to an absolute path and creates it if needed.
func NewLocalStore(root string) (*LocalStore, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve static root: %w", err)
	}
	if err := os.MkdirAll(abs, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create static root: %w", err)
	}
	return &LocalStore{root: abs}, nil
}

// Root returns the absolute static root; the REST layer serves files from it.
func (s *LocalStore) Root() string {
	return s.root
}

func (s *LocalStore) CreateBucket(_ context.Context, projectUUID string) error {
	if err := os.MkdirAll(filepath.Join(s.root, projectUUID), 0o755); err != nil {
		return fmt.Errorf("failed to create bucket: %w", err)
	}
	return nil
}

func (s *LocalStore) Store(_ context.Context, projectUUID string, file models.IngestedFile) (*models.StoredFile, error) {
	name, err := objectName(file)
	if err != nil {
		return nil, err
	}

	dest := filepath.Join(s.root, projectUUID, name)
	if err := moveFile(file.TempPath, dest); err != nil {
		return nil, fmt.Errorf("failed to move file into bucket: %w", err)
	}

	return &models.StoredFile{
		Bytes:            file.Size,
		OriginalFilename: file.OriginalFilename,
		Link:             "/" + projectUUID + "/" + name,
	}, nil
}

func (s *LocalStore) Delete(_ context.Context, projectUUID, filename string) error {
	sanitized := sanitizeFilename(filename)
	if sanitized == "" {
		return common.ErrorNotFound
	}
	resolved := filepath.Join(s.root, projectUUID, sanitized)

	// Containment check: the resolved path must stay under the static root.
	if !strings.HasPrefix(resolved, s.root+string(filepath.Separator)) {
		return common.ErrorInternal
	}

	err := os.Remove(resolved)
	if errors.Is(err, os.ErrNotExist) {
		return common.ErrorNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}

// moveFile renames src to dest, falling back to copy-then-remove when the
// temp directory lives on a different filesystem.
func moveFile(src, dest string) error {
	if err := os.Rename(src, dest); err == nil {
		return nil
	}

	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dest)
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		_ = os.Remove(dest)
		return err
	}
	if err := out.Close(); err != nil {
		_ = os.Remove(dest)
		return err
	}

	return os.Remove(src)
}
