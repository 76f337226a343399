package datfile

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/s2"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Codec wraps streams for one compression format.
type Codec struct {
	Name      string
	Extension string
	NewReader func(io.Reader) (io.ReadCloser, error)
	NewWriter func(io.Writer) (io.WriteCloser, error)
}

var codecs = []Codec{
	{
		Name:      "gzip",
		Extension: ".gz",
		NewReader: func(r io.Reader) (io.ReadCloser, error) {
			return gzip.NewReader(r)
		},
		NewWriter: func(w io.Writer) (io.WriteCloser, error) {
			return gzip.NewWriter(w), nil
		},
	},
	{
		Name:      "zstd",
		Extension: ".zst",
		NewReader: func(r io.Reader) (io.ReadCloser, error) {
			d, err := zstd.NewReader(r, zstd.WithDecoderConcurrency(1))
			if err != nil {
				return nil, err
			}
			return d.IOReadCloser(), nil
		},
		NewWriter: func(w io.Writer) (io.WriteCloser, error) {
			return zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedDefault))
		},
	},
	{
		Name:      "s2",
		Extension: ".s2",
		NewReader: func(r io.Reader) (io.ReadCloser, error) {
			return io.NopCloser(s2.NewReader(r)), nil
		},
		NewWriter: func(w io.Writer) (io.WriteCloser, error) {
			return s2.NewWriter(w), nil
		},
	},
	{
		Name:      "lz4",
		Extension: ".lz4",
		NewReader: func(r io.Reader) (io.ReadCloser, error) {
			return io.NopCloser(lz4.NewReader(r)), nil
		},
		NewWriter: func(w io.Writer) (io.WriteCloser, error) {
			return lz4.NewWriter(w), nil
		},
	},
}

// CodecByName returns the codec called name ("gzip", "zstd", "s2", "lz4").
func CodecByName(name string) (Codec, bool) {
	for _, c := range codecs {
		if c.Name == name {
			return c, true
		}
	}
	return Codec{}, false
}

// CodecForPath returns the codec matching the extension of path.
func CodecForPath(path string) (Codec, bool) {
	ext := strings.ToLower(filepath.Ext(path))
	for _, c := range codecs {
		if c.Extension == ext {
			return c, true
		}
	}
	return Codec{}, false
}

// NewReader returns r decompressed according to the extension of name.
// Uncompressed names get r back unchanged.
func NewReader(r io.Reader, name string) (io.ReadCloser, error) {
	c, ok := CodecForPath(name)
	if !ok {
		return io.NopCloser(r), nil
	}
	rc, err := c.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("datfile: opening %s stream: %w", c.Name, err)
	}
	return rc, nil
}

type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }

// NewWriter returns w compressed according to the extension of name. The
// returned writer must be closed to flush compressed output; closing it does
// not close w.
func NewWriter(w io.Writer, name string) (io.WriteCloser, error) {
	c, ok := CodecForPath(name)
	if !ok {
		return nopWriteCloser{w}, nil
	}
	wc, err := c.NewWriter(w)
	if err != nil {
		return nil, fmt.Errorf("datfile: opening %s stream: %w", c.Name, err)
	}
	return wc, nil
}
