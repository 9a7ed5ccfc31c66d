package component

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

type Format int

const (
	Unsupported Format = iota // unknown extension and header
	CSV                       // comma-separated table with a header row
	SQLite                    // SQLite database holding a components table
)

func (f Format) String() string {
	switch f {
	case CSV:
		return "csv"
	case SQLite:
		return "sqlite"
	default:
		return "unsupported"
	}
}

var sqliteMagic = []byte("SQLite format 3\x00")

// DetectFormat returns the table format of path.
//
// The extension decides when it is known; otherwise the first 16 bytes are
// compared with the SQLite header, and any other readable text file is
// treated as CSV.
func DetectFormat(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return CSV, nil
	case ".db", ".sqlite", ".sqlite3":
		return SQLite, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return Unsupported, fmt.Errorf("open table: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()

	head := make([]byte, len(sqliteMagic))
	n, err := io.ReadFull(f, head)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return Unsupported, fmt.Errorf("read table header: %w", err)
	}
	head = head[:n]

	switch {
	case bytes.Equal(head, sqliteMagic):
		return SQLite, nil
	case n > 0 && bytes.IndexByte(head, 0) < 0:
		return CSV, nil
	default:
		return Unsupported, nil
	}
}
