// Package storage persists ingested files into per-project buckets and
// deletes them on request. Two backends exist: the local static root and an
// S3-compatible object store.
package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/scindn/internal/common"
	"github.com/dmitrijs2005/scindn/internal/mimex"
	"github.com/dmitrijs2005/scindn/internal/server/models"
	"github.com/dmitrijs2005/scindn/internal/shared"
)

// ErrUnknownMimeType marks a file whose declared MIME type has no extension
// mapping. Callers skip such files instead of failing the request.
var ErrUnknownMimeType = errors.New("unrecognized mime type")

// FileStore moves ingested files into a project's bucket and removes stored
// files by name.
type FileStore interface {
	// CreateBucket prepares the project's bucket; called once at project
	// creation.
	CreateBucket(ctx context.Context, projectUUID string) error

	// Store persists one ingested file under a generated slug and the
	// extension derived from its MIME type. Files with an unknown or absent
	// MIME type yield ErrUnknownMimeType and leave nothing behind.
	Store(ctx context.Context, projectUUID string, file models.IngestedFile) (*models.StoredFile, error)

	// Delete removes one stored file from the project's bucket. The filename
	// is sanitized and the resolved location must stay inside the bucket;
	// violations surface as common.ErrorInternal without touching anything.
	Delete(ctx context.Context, projectUUID, filename string) error
}

// objectName derives the stored filename for an ingested file: a fresh
// random slug plus the extension the classifier assigns to the declared
// MIME type.
func objectName(file models.IngestedFile) (string, error) {
	ext, ok := mimex.Lookup(file.MimeType)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownMimeType, file.MimeType)
	}

	slug, err := shared.MakeRandString(common.SlugLength)
	if err != nil {
		return "", err
	}

	return slug + "." + ext, nil
}

// sanitizeFilename strips path separators as the first defense layer before
// the containment check.
var filenameSanitizer = strings.NewReplacer("/", "", "\\", "")

func sanitizeFilename(name string) string {
	return filenameSanitizer.Replace(name)
}
