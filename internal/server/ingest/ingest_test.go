package ingest

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"os"
	"testing"

	"github.com/dmitrijs2005/scindn/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func multipartRequest(t *testing.T, build func(w *multipart.Writer)) *http.Request {
	t.Helper()

	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	build(w)
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPut, "/upload/tok", body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

func addFilePart(t *testing.T, w *multipart.Writer, field, filename, contentType string, data []byte) {
	t.Helper()

	h := textproto.MIMEHeader{}
	h.Set("Content-Disposition", `form-data; name="`+field+`"; filename="`+filename+`"`)
	if contentType != "" {
		h.Set("Content-Type", contentType)
	}
	part, err := w.CreatePart(h)
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
}

func TestParse_SpillsFileParts(t *testing.T) {
	payload := bytes.Repeat([]byte("x"), 1024)
	req := multipartRequest(t, func(w *multipart.Writer) {
		addFilePart(t, w, FieldName, "photo.png", "image/png", payload)
		addFilePart(t, w, FieldName, "notes.txt", "text/plain", []byte("hello"))
	})

	files, cleanup, err := Parse(req)
	require.NoError(t, err)
	defer cleanup()

	require.Len(t, files, 2)

	assert.Equal(t, "photo.png", files[0].OriginalFilename)
	assert.Equal(t, "image/png", files[0].MimeType)
	assert.Equal(t, int64(1024), files[0].Size)

	data, err := os.ReadFile(files[0].TempPath)
	require.NoError(t, err)
	assert.Equal(t, payload, data)

	assert.Equal(t, "text/plain", files[1].MimeType)
	assert.Equal(t, int64(5), files[1].Size)
}

func TestParse_CleanupRemovesTempFiles(t *testing.T) {
	req := multipartRequest(t, func(w *multipart.Writer) {
		addFilePart(t, w, FieldName, "a.txt", "text/plain", []byte("a"))
	})

	files, cleanup, err := Parse(req)
	require.NoError(t, err)
	require.Len(t, files, 1)

	cleanup()

	_, err = os.Stat(files[0].TempPath)
	assert.True(t, os.IsNotExist(err))
}

func TestParse_MissingFilesField(t *testing.T) {
	req := multipartRequest(t, func(w *multipart.Writer) {
		addFilePart(t, w, "attachment", "a.txt", "text/plain", []byte("a"))
	})

	_, _, err := Parse(req)
	assert.ErrorIs(t, err, common.ErrorValidation)
}

func TestParse_FilesAsPlainValue(t *testing.T) {
	req := multipartRequest(t, func(w *multipart.Writer) {
		require.NoError(t, w.WriteField(FieldName, "not-a-file"))
	})

	_, _, err := Parse(req)
	assert.ErrorIs(t, err, common.ErrorValidation)
}

func TestParse_NotMultipart(t *testing.T) {
	req := httptest.NewRequest(http.MethodPut, "/upload/tok", bytes.NewBufferString("{}"))
	req.Header.Set("Content-Type", "application/json")

	_, _, err := Parse(req)
	assert.Error(t, err)
}

func TestParse_IgnoresUnrelatedParts(t *testing.T) {
	req := multipartRequest(t, func(w *multipart.Writer) {
		require.NoError(t, w.WriteField("meta", "whatever"))
		addFilePart(t, w, FieldName, "a.txt", "text/plain", []byte("a"))
	})

	files, cleanup, err := Parse(req)
	require.NoError(t, err)
	defer cleanup()
	assert.Len(t, files, 1)
}
