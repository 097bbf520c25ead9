package storage

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"time"
)

// GenerateFileName generates a disk-unique file name for an upload.
// The format is <field>-<unix millis>-<random integer><extension>.
func GenerateFileName(field, extension string) string {
	return generateFileName(field, extension, time.Now(), rand.Int64N(1e9))
}

func generateFileName(field, extension string, now time.Time, suffix int64) string {
	if field == "" {
		field = "file"
	}
	// Ensure extension starts with a dot if it doesn't already
	if extension != "" && !strings.HasPrefix(extension, ".") {
		extension = "." + extension
	}
	return fmt.Sprintf("%s-%d-%d%s", field, now.UnixMilli(), suffix, extension)
}

// FormatSize renders a byte count the way the catalog displays it, e.g. "15.20 MB"
func FormatSize(bytes int64) string {
	return fmt.Sprintf("%.2f MB", float64(bytes)/1024/1024)
}

// SizeWriter wraps a writer and tracks the total number of bytes written
type sizeWriter struct {
	size int64
}

// Write implements io.Writer interface
// It tracks the size of data written and returns the length and nil error
func (sw *sizeWriter) Write(p []byte) (int, error) {
	n := len(p)
	sw.size += int64(n)
	return n, nil
}

// Size returns the total number of bytes written
func (sw *sizeWriter) Size() int64 {
	return sw.size
}

// NewSizeWriter creates a new SizeWriter instance
func NewSizeWriter() *sizeWriter {
	return &sizeWriter{
		size: 0,
	}
}
