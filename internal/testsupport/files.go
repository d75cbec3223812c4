package testsupport

import (
	"os"
	"path/filepath"
	"testing"
)

// SampleSRT is a small caption file with one SDH-only block, a blacklisted
// line and a wrapped caption.
const SampleSRT = `1
00:00:01,000 --> 00:00:02,000
[DOOR CREAKS]

2
00:00:03,000 --> 00:00:04,500
Where are you going ?
I'll be back.

3
00:00:05,000 --> 00:00:06,000
Subtitles by www.example-subs.com
`

// WriteSubtitle writes content to name under dir and returns the full path.
func WriteSubtitle(t testing.TB, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	WriteBytes(t, path, []byte(content))
	return path
}

// WriteBytes writes raw bytes to path, creating parent directories.
func WriteBytes(t testing.TB, path string, data []byte) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

// ReadFile returns the content of path.
func ReadFile(t testing.TB, path string) string {
	t.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return string(data)
}
