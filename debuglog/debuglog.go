// Package debuglog routes the standard logger to a file when debugging is
// enabled. Frontends own the terminal or window, so log output never goes
// to stdout or stderr.
package debuglog

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"
)

const (
	// DefaultDir is relative to the working directory.
	DefaultDir = "logs"
	FileName   = "mandelzoom.log"

	// MaxSize is the size past which an existing log is rotated aside.
	MaxSize = 10 * 1024 * 1024
)

// Setup discards all log output when enabled is false and returns nil.
// Otherwise it opens dir/FileName for appending, rotating an oversized
// file first, and points the standard logger at it. The caller closes
// the returned file.
func Setup(dir string, enabled bool) (*os.File, error) {
	if !enabled {
		log.SetOutput(io.Discard)
		return nil, nil
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		log.SetOutput(io.Discard)
		return nil, fmt.Errorf("create log dir: %w", err)
	}

	path := filepath.Join(dir, FileName)
	if err := rotate(path); err != nil {
		log.SetOutput(io.Discard)
		return nil, err
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		log.SetOutput(io.Discard)
		return nil, fmt.Errorf("open log file: %w", err)
	}

	log.SetOutput(f)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	log.Printf("=== session started, pid %d ===", os.Getpid())
	return f, nil
}

func rotate(path string) error {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("stat log file: %w", err)
	}
	if info.Size() <= MaxSize {
		return nil
	}

	ext := filepath.Ext(path)
	rotated := fmt.Sprintf("%s.%s%s", path[:len(path)-len(ext)], time.Now().Format("20060102-150405"), ext)
	if err := os.Rename(path, rotated); err != nil {
		return fmt.Errorf("rotate log file: %w", err)
	}
	return nil
}
