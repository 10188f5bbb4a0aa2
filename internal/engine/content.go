package engine

import (
	"bytes"
	"io/fs"
	"os"
	"strings"

	"golang.org/x/text/encoding/unicode"
)

// BinarySniffBytes is how much of a file is inspected for a NUL byte.
const BinarySniffBytes = 8192

// FileSystem gives the content pass access to candidate files.
type FileSystem interface {
	Stat(name string) (fs.FileInfo, error)
	ReadFile(name string) ([]byte, error)
}

// OSFileSystem reads from the local disk. Stat follows symlinks.
type OSFileSystem struct{}

func (OSFileSystem) Stat(name string) (fs.FileInfo, error) { return os.Stat(name) }
func (OSFileSystem) ReadFile(name string) ([]byte, error)  { return os.ReadFile(name) }

func looksBinary(b []byte) bool {
	n := len(b)
	if n > BinarySniffBytes {
		n = BinarySniffBytes
	}
	return bytes.IndexByte(b[:n], 0) >= 0
}

// decodeText decodes b as UTF-8, replacing every invalid byte with U+FFFD.
func decodeText(b []byte) string {
	out, err := unicode.UTF8.NewDecoder().Bytes(b)
	if err != nil {
		return strings.ToValidUTF8(string(b), "�")
	}
	return string(out)
}

// splitLines splits on \n, \r\n and lone \r. A trailing line terminator does
// not produce an extra empty line.
func splitLines(s string) []string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	s = strings.TrimSuffix(s, "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}
