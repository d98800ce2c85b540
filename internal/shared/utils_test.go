package shared

import (
	"strings"
	"testing"
)

// ---------- MakeRandString ----------

func TestMakeRandString_LengthAndAlphabet(t *testing.T) {
	const n = 128
	s, err := MakeRandString(n)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(s) != n {
		t.Fatalf("expected length %d, got %d", n, len(s))
	}
	for _, r := range s {
		if !strings.ContainsRune(alphanumeric, r) {
			t.Fatalf("unexpected character %q in result", r)
		}
	}
}

func TestMakeRandString_ZeroLength(t *testing.T) {
	s, err := MakeRandString(0)
	if err != nil {
		t.Fatalf("unexpected error for length=0: %v", err)
	}
	if s != "" {
		t.Fatalf("expected empty string for length=0, got %q", s)
	}
}

func TestMakeRandString_EntropyHint(t *testing.T) {
	a, err := MakeRandString(40)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := MakeRandString(40)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if a == b {
		t.Logf("warning: two MakeRandString(40) results are identical; extremely unlikely")
	}
}

// ---------- WipeByteArray ----------

func TestWipeByteArray_ZerosBuffer(t *testing.T) {
	buf := []byte{1, 2, 3, 4, 5}
	WipeByteArray(buf)
	for i, v := range buf {
		if v != 0 {
			t.Fatalf("expected buf[%d]==0, got %d", i, v)
		}
	}
}

func TestWipeByteArray_NilSafe(t *testing.T) {
	WipeByteArray(nil)
}
