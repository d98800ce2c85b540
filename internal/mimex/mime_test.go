package mimex

import "testing"

func TestLookup_KnownTypes(t *testing.T) {
	tests := []struct {
		mime string
		ext  string
	}{
		{"image/png", "png"},
		{"image/jpeg", "jpg"},
		{"application/pdf", "pdf"},
		{"text/plain", "txt"},
		{"application/zip", "zip"},
		{"application/octet-stream", "exe"},
	}

	for _, tt := range tests {
		ext, ok := Lookup(tt.mime)
		if !ok {
			t.Errorf("expected %q to be known", tt.mime)
			continue
		}
		if ext != tt.ext {
			t.Errorf("Lookup(%q) = %q, want %q", tt.mime, ext, tt.ext)
		}
	}
}

func TestLookup_UnknownTypes(t *testing.T) {
	for _, mime := range []string{"", "application/x-no-such-thing", "image/PNG"} {
		if _, ok := Lookup(mime); ok {
			t.Errorf("expected %q to be unknown", mime)
		}
	}
}
