// Package ingest parses multipart upload bodies. Each file part of the
// "files" field is streamed to its own temporary file, so memory use stays
// bounded regardless of upload size.
package ingest

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"

	"github.com/dmitrijs2005/scindn/internal/common"
	"github.com/dmitrijs2005/scindn/internal/server/models"
)

// FieldName is the multipart field that must carry the file parts.
const FieldName = "files"

var (
	ErrMissingFilesField = fmt.Errorf("%w: no %q field found in body", common.ErrorValidation, FieldName)
	ErrFilesNotFileParts = fmt.Errorf("%w: %q field is not a set of file parts", common.ErrorValidation, FieldName)
)

// Parse reads the request's multipart body and spills every "files" part to
// a temporary file. It returns the ingested files and a cleanup function
// that removes all of them; callers must always invoke cleanup once the
// files have been moved (or the request failed).
//
// Failure is atomic: on any parse or I/O error the already-written temporary
// files are removed and no partial result is returned. A body without a
// "files" file part (including one where "files" appears only as an
// ordinary value) is rejected before anything is written downstream.
func Parse(r *http.Request) ([]models.IngestedFile, func(), error) {
	mr, err := r.MultipartReader()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open multipart body: %w", err)
	}

	var files []models.IngestedFile
	cleanup := func() {
		for _, f := range files {
			_ = os.Remove(f.TempPath)
		}
	}

	sawValueField := false

	for {
		part, err := mr.NextPart()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			cleanup()
			return nil, nil, fmt.Errorf("failed to parse multipart body: %w", err)
		}

		if part.FormName() != FieldName {
			_ = part.Close()
			continue
		}

		if part.FileName() == "" {
			// "files" sent as a plain value, not a file part.
			sawValueField = true
			_ = part.Close()
			continue
		}

		ingested, err := spill(part)
		_ = part.Close()
		if err != nil {
			cleanup()
			return nil, nil, err
		}
		files = append(files, *ingested)
	}

	if len(files) == 0 {
		cleanup()
		if sawValueField {
			return nil, nil, ErrFilesNotFileParts
		}
		return nil, nil, ErrMissingFilesField
	}

	return files, cleanup, nil
}

// spill streams one part to a fresh temporary file.
func spill(part *multipart.Part) (*models.IngestedFile, error) {
	tmp, err := os.CreateTemp("", "scindn-upload-*")
	if err != nil {
		return nil, fmt.Errorf("failed to create temp file: %w", err)
	}

	size, err := io.Copy(tmp, part)
	closeErr := tmp.Close()
	if err != nil || closeErr != nil {
		_ = os.Remove(tmp.Name())
		if err == nil {
			err = closeErr
		}
		return nil, fmt.Errorf("failed to spool file part: %w", err)
	}

	return &models.IngestedFile{
		TempPath:         tmp.Name(),
		MimeType:         part.Header.Get("Content-Type"),
		Size:             size,
		OriginalFilename: part.FileName(),
	}, nil
}
