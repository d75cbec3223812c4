package charset

import (
	"errors"
	"testing"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

func defaultOptions() Options {
	return Options{
		Fallbacks:     []string{"utf-8", "windows-1252", "iso-8859-1"},
		Detect:        false,
		MinConfidence: 50,
	}
}

func TestDecodeUTF8(t *testing.T) {
	result, err := Decode([]byte("Grüße ♪"), defaultOptions())
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if result.Text != "Grüße ♪" || result.Encoding != "utf-8" || result.Source != SourceUTF8 {
		t.Fatalf("unexpected result: %+v", result)
	}
}

func TestDecodeUTF8BOM(t *testing.T) {
	result, err := Decode([]byte("\xef\xbb\xbf1\nHello"), defaultOptions())
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if result.Text != "1\nHello" || result.Source != SourceBOM {
		t.Fatalf("unexpected result: %+v", result)
	}
}

func TestDecodeUTF16LEWithBOM(t *testing.T) {
	encoded, err := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewEncoder().String("Hallo Welt")
	if err != nil {
		t.Fatal(err)
	}
	result, err := Decode([]byte(encoded), defaultOptions())
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if result.Text != "Hallo Welt" || result.Encoding != "utf-16le" {
		t.Fatalf("unexpected result: %+v", result)
	}
}

func TestDecodeFallsBackToWindows1252(t *testing.T) {
	encoded, err := charmap.Windows1252.NewEncoder().String("Café “quoted”")
	if err != nil {
		t.Fatal(err)
	}
	result, err := Decode([]byte(encoded), defaultOptions())
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if result.Text != "Café “quoted”" {
		t.Fatalf("unexpected text %q", result.Text)
	}
	if result.Encoding != "windows-1252" || result.Source != SourceFallback {
		t.Fatalf("unexpected result: %+v", result)
	}
}

func TestDecodeUndecodable(t *testing.T) {
	opts := Options{Fallbacks: []string{"utf-8"}}
	_, err := Decode([]byte{0x80, 0x81, 'a'}, opts)
	if !errors.Is(err, ErrUndecodable) {
		t.Fatalf("expected ErrUndecodable, got %v", err)
	}
}

func TestDecodeRejectsNUL(t *testing.T) {
	opts := Options{Fallbacks: []string{"windows-1252"}}
	_, err := Decode([]byte{'a', 0x00, 0xe9}, opts)
	if !errors.Is(err, ErrUndecodable) {
		t.Fatalf("expected ErrUndecodable, got %v", err)
	}
}

func TestLookup(t *testing.T) {
	for _, name := range []string{"UTF-8", "windows-1252", "ISO-8859-1", "Shift_JIS", "GB-18030", "big5"} {
		if _, err := Lookup(name); err != nil {
			t.Fatalf("Lookup(%q): %v", name, err)
		}
	}
	if _, err := Lookup("klingon"); !errors.Is(err, ErrUnknownEncoding) {
		t.Fatalf("expected ErrUnknownEncoding, got %v", err)
	}
}
