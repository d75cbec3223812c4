// Package charset turns raw subtitle bytes into UTF-8 text.
//
// Decoding tries, in order: a byte-order mark, plain UTF-8, the encoding
// guessed by a statistical detector (when enabled and confident enough), and
// finally each configured fallback. A candidate is accepted only when the
// decoded text holds no replacement or NUL characters.
package charset

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/dimchansky/utfbom"
	"github.com/saintfish/chardet"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/encoding/unicode/utf32"
	"golang.org/x/text/transform"
)

// ErrUndecodable marks input that no candidate encoding decodes cleanly.
var ErrUndecodable = errors.New("undecodable input")

// ErrUnknownEncoding marks an encoding name that cannot be resolved.
var ErrUnknownEncoding = errors.New("unknown encoding")

// Source records how the encoding was chosen.
type Source string

const (
	SourceBOM      Source = "bom"
	SourceUTF8     Source = "utf-8"
	SourceDetected Source = "detected"
	SourceFallback Source = "fallback"
)

// Options configures Decode.
type Options struct {
	Fallbacks     []string
	Detect        bool
	MinConfidence int
}

// Result is decoded text plus the encoding that produced it.
type Result struct {
	Text     string
	Encoding string
	Source   Source
}

// detector names that htmlindex does not know under the same spelling.
var detectorAliases = map[string]string{
	"gb-18030": "gb18030",
}

// Lookup resolves an encoding by WHATWG label, case-insensitively.
func Lookup(name string) (encoding.Encoding, error) {
	label := strings.ToLower(strings.TrimSpace(name))
	if alias, ok := detectorAliases[label]; ok {
		label = alias
	}
	enc, err := htmlindex.Get(label)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownEncoding, name)
	}
	return enc, nil
}

// Decode converts data to text.
func Decode(data []byte, opts Options) (Result, error) {
	if result, ok, err := decodeWithBOM(data); ok || err != nil {
		return result, err
	}
	if utf8.Valid(data) {
		return Result{Text: string(data), Encoding: "utf-8", Source: SourceUTF8}, nil
	}

	tried := make([]string, 0, len(opts.Fallbacks)+1)
	if opts.Detect {
		if name, ok := detect(data, opts.MinConfidence); ok {
			if enc, err := Lookup(name); err == nil {
				tried = append(tried, name)
				if text, ok := decodeClean(data, enc); ok {
					return Result{Text: text, Encoding: canonicalName(enc, name), Source: SourceDetected}, nil
				}
			}
		}
	}
	for _, name := range opts.Fallbacks {
		enc, err := Lookup(name)
		if err != nil {
			return Result{}, err
		}
		tried = append(tried, name)
		if text, ok := decodeClean(data, enc); ok {
			return Result{Text: text, Encoding: canonicalName(enc, name), Source: SourceFallback}, nil
		}
	}
	return Result{}, fmt.Errorf("%w: tried %s", ErrUndecodable, strings.Join(tried, ", "))
}

func decodeWithBOM(data []byte) (Result, bool, error) {
	reader, bom := utfbom.Skip(bytes.NewReader(data))
	if bom == utfbom.Unknown {
		return Result{}, false, nil
	}
	body, err := io.ReadAll(reader)
	if err != nil {
		return Result{}, true, fmt.Errorf("read input: %w", err)
	}
	var (
		enc  encoding.Encoding
		name string
	)
	switch bom {
	case utfbom.UTF8:
		enc, name = unicode.UTF8, "utf-8"
	case utfbom.UTF16BigEndian:
		enc, name = unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM), "utf-16be"
	case utfbom.UTF16LittleEndian:
		enc, name = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM), "utf-16le"
	case utfbom.UTF32BigEndian:
		enc, name = utf32.UTF32(utf32.BigEndian, utf32.IgnoreBOM), "utf-32be"
	case utfbom.UTF32LittleEndian:
		enc, name = utf32.UTF32(utf32.LittleEndian, utf32.IgnoreBOM), "utf-32le"
	default:
		return Result{}, false, nil
	}
	text, ok := decodeClean(body, enc)
	if !ok {
		return Result{}, true, fmt.Errorf("%w: invalid %s after byte-order mark", ErrUndecodable, name)
	}
	return Result{Text: text, Encoding: name, Source: SourceBOM}, true, nil
}

func detect(data []byte, minConfidence int) (string, bool) {
	best, err := chardet.NewTextDetector().DetectBest(data)
	if err != nil || best == nil {
		return "", false
	}
	if best.Confidence < minConfidence {
		return "", false
	}
	return best.Charset, true
}

func decodeClean(data []byte, enc encoding.Encoding) (string, bool) {
	decoded, _, err := transform.Bytes(enc.NewDecoder(), data)
	if err != nil {
		return "", false
	}
	if bytes.ContainsRune(decoded, utf8.RuneError) || bytes.IndexByte(decoded, 0) >= 0 {
		return "", false
	}
	return string(decoded), true
}

func canonicalName(enc encoding.Encoding, fallback string) string {
	if name, err := htmlindex.Name(enc); err == nil {
		return name
	}
	return strings.ToLower(fallback)
}
