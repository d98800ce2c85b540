package models

// IngestedFile describes one multipart file part spilled to temporary
// storage. It lives only for the duration of the upload request.
type IngestedFile struct {
	// TempPath is the temporary file holding the part's bytes.
	TempPath string
	// MimeType is the Content-Type declared for the part; may be empty.
	MimeType string
	// Size is the number of bytes written to TempPath.
	Size int64
	// OriginalFilename is the client-supplied filename, used only for the
	// manifest (stored names are generated slugs).
	OriginalFilename string
}

// StoredFile is one manifest entry for a persisted upload.
type StoredFile struct {
	Bytes            int64  `json:"bytes"`
	OriginalFilename string `json:"originalFilename"`
	// Link is the bucket-relative path "/<projectUUID>/<slug>.<ext>".
	Link string `json:"link"`
}

// Manifest is the record of one upload request, returned to the client
// encrypted with the project's response key.
type Manifest struct {
	// SignedAt is the response timestamp in Unix milliseconds.
	SignedAt int64        `json:"signedAt"`
	Files    []StoredFile `json:"files"`
}
