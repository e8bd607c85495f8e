package charset

import (
	"io"
	"strings"
	"testing"
)

func TestNewReaderLatin1(t *testing.T) {
	// "café" in ISO 8859-1
	raw := string([]byte{'c', 'a', 'f', 0xe9})
	r, err := NewReader(strings.NewReader(raw), "iso-8859-1")
	if err != nil {
		t.Fatalf("NewReader failed: %v", err)
	}
	decoded, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if string(decoded) != "café" {
		t.Errorf("decoded = %q, want %q", decoded, "café")
	}
}

func TestNewReaderDefaultsToUTF8(t *testing.T) {
	r, err := NewReader(strings.NewReader("héllo"), "")
	if err != nil {
		t.Fatalf("NewReader failed: %v", err)
	}
	decoded, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if string(decoded) != "héllo" {
		t.Errorf("decoded = %q, want %q", decoded, "héllo")
	}
}

func TestNewReaderUnknownCharset(t *testing.T) {
	if _, err := NewReader(strings.NewReader(""), "no-such-charset"); err == nil {
		t.Errorf("expected an error for an unknown charset")
	}
}

func TestDetect(t *testing.T) {
	if got := Detect(nil); got != "" {
		t.Errorf("Detect(nil) = %q, want empty", got)
	}

	sample := []byte("1\n00:00:00,123 --> 00:00:03,456\nこんにちは、世界。字幕のテストです。\n")
	if got := Detect(sample); got != "UTF-8" {
		t.Errorf("Detect(utf-8 sample) = %q, want UTF-8", got)
	}
}
