package datfile

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"

	"github.com/cwbudde/algo-tprofile/profile"
)

var utf16Fallback = unicode.UTF16(unicode.LittleEndian, unicode.UseBOM)

// Read decodes a tab-delimited table from r. Each line becomes one row of
// fields split on single tab characters; the first line is dropped when
// hasHeader is set. A final empty line is ignored.
func Read(r io.Reader, hasHeader bool) ([][]string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("datfile: read: %w", err)
	}

	text, err := decode(data)
	if err != nil {
		return nil, err
	}

	lines := strings.Split(text, "\n")
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	rows := make([][]string, 0, len(lines))
	for i, line := range lines {
		if hasHeader && i == 0 {
			continue
		}
		line = strings.TrimSuffix(line, "\r")
		rows = append(rows, strings.Split(line, "\t"))
	}

	return rows, nil
}

// ReadFile reads the table at path, decompressing by file extension.
func ReadFile(path string, hasHeader bool) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	rc, err := NewReader(f, path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	return Read(rc, hasHeader)
}

// decode interprets data as UTF-8, falling back to UTF-16. Data starting
// with a UTF-16 byte order mark skips the UTF-8 attempt, since UTF-16 ASCII
// text is also valid UTF-8.
func decode(data []byte) (string, error) {
	if !hasUTF16BOM(data) && utf8.Valid(data) {
		return strings.TrimPrefix(string(data), "\ufeff"), nil
	}

	if len(data)%2 != 0 {
		return "", fmt.Errorf("%w: %d bytes are neither UTF-8 nor whole UTF-16 code units", profile.ErrDecode, len(data))
	}

	out, err := utf16Fallback.NewDecoder().Bytes(data)
	if err != nil {
		return "", fmt.Errorf("%w: %w", profile.ErrDecode, err)
	}
	if bytes.ContainsRune(out, utf8.RuneError) {
		return "", fmt.Errorf("%w: unpaired UTF-16 surrogate", profile.ErrDecode)
	}

	return strings.TrimPrefix(string(out), "\ufeff"), nil
}

func hasUTF16BOM(data []byte) bool {
	return len(data) >= 2 &&
		((data[0] == 0xFF && data[1] == 0xFE) || (data[0] == 0xFE && data[1] == 0xFF))
}
