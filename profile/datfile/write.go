package datfile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// Write serialises rows as tab-delimited text, one newline-terminated line
// per row. A nil header writes no header line.
func Write(w io.Writer, header []string, rows [][]string) error {
	bw := bufio.NewWriter(w)

	if header != nil {
		if err := writeLine(bw, header); err != nil {
			return err
		}
	}
	for _, row := range rows {
		if err := writeLine(bw, row); err != nil {
			return err
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("datfile: write: %w", err)
	}
	return nil
}

func writeLine(bw *bufio.Writer, fields []string) error {
	if _, err := bw.WriteString(strings.Join(fields, "\t")); err != nil {
		return fmt.Errorf("datfile: write: %w", err)
	}
	if err := bw.WriteByte('\n'); err != nil {
		return fmt.Errorf("datfile: write: %w", err)
	}
	return nil
}

// WriteFile writes the table to path, compressing by file extension. The
// file is created or truncated.
func WriteFile(path string, header []string, rows [][]string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, f.Close())
	}()

	wc, err := NewWriter(f, path)
	if err != nil {
		return err
	}

	if err := Write(wc, header, rows); err != nil {
		_ = wc.Close()
		return err
	}

	return wc.Close()
}
