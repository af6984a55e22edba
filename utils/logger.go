package utils

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"
)

// OpenLogFile opens (or creates) dir/app-<date>.log for appending.
func OpenLogFile(dir string, now time.Time) (*os.File, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}
	name := filepath.Join(dir, fmt.Sprintf("app-%s.log", now.Format("2006-01-02")))
	return os.OpenFile(name, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
}

// TeeStandardLog sends the standard logger to stderr and a dated file in dir.
// An empty dir leaves logging untouched.
func TeeStandardLog(dir string) (io.Closer, error) {
	if dir == "" {
		return io.NopCloser(nil), nil
	}
	f, err := OpenLogFile(dir, time.Now())
	if err != nil {
		return nil, err
	}
	log.SetOutput(io.MultiWriter(os.Stderr, f))
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	return f, nil
}
