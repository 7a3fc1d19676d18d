// Package gymbook loads semicolon-separated CSV exports of the GymBook iOS
// app, in German or English and in the character sets the app has used.
package gymbook

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/claude/liftlog/internal/ingest"
	"github.com/claude/liftlog/internal/table"
)

// TimeLayouts are tried in order against Datum + " " + Zeit.
var TimeLayouts = []string{"02.01.2006 15:04", "02.01.2006 15:04:05", "2006-01-02 15:04", "2006-01-02 15:04:05"}

// Required lists the columns the harmonizer reads.
var Required = []string{ColDate, ColTime, ColExercise, ColReps, ColWeight}

// Supported encodings.
const (
	EncodingUTF8        = "utf-8"
	EncodingWindows1252 = "windows-1252"
	EncodingUTF16       = "utf-16"
)

// Options controls loading.
type Options struct {
	// Encoding is one of the Encoding* names. Empty means UTF-8.
	Encoding string
}

func decoder(name string) (encoding.Encoding, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", EncodingUTF8, "utf8":
		return unicode.UTF8BOM, nil
	case EncodingWindows1252, "cp1252", "latin1", "iso-8859-1":
		return charmap.Windows1252, nil
	case EncodingUTF16, "utf16":
		return unicode.UTF16(unicode.LittleEndian, unicode.UseBOM), nil
	}
	return nil, fmt.Errorf("unsupported encoding %q", name)
}

// ValidEncoding reports whether name is a supported encoding.
func ValidEncoding(name string) bool {
	_, err := decoder(name)
	return err == nil
}

// Load reads the export at path and returns it with German column names.
func Load(path string, opts Options) (*table.Table, error) {
	enc, err := decoder(opts.Encoding)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening gymbook export: %w", err)
	}
	defer f.Close()

	data, err := io.ReadAll(transform.NewReader(f, enc.NewDecoder()))
	if err != nil {
		return nil, fmt.Errorf("decoding %s as %s: %w", path, opts.Encoding, err)
	}
	data = bytes.TrimPrefix(data, []byte("\ufeff"))
	data = stripSeparatorHint(data)

	t, err := ingest.ReadTable(bytes.NewReader(data), path, ';')
	if err != nil {
		return nil, err
	}
	rename := make(map[string]string, len(t.Header))
	for _, h := range t.Header {
		if canonical, ok := NormalizeHeader(h); ok {
			rename[h] = canonical
		}
	}
	t = t.Rename(rename)
	if err := ingest.RequireColumns(t, path, Required...); err != nil {
		return nil, err
	}
	return t, nil
}

// stripSeparatorHint drops a leading Excel "sep=;" line.
func stripSeparatorHint(data []byte) []byte {
	line, rest, found := bytes.Cut(data, []byte("\n"))
	if !found {
		return data
	}
	if strings.HasPrefix(strings.ToLower(strings.TrimSpace(string(line))), "sep=") {
		return rest
	}
	return data
}
