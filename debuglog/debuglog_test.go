package debuglog

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"testing"
)

func TestSetup_DisabledDiscards(t *testing.T) {
	dir := t.TempDir()
	f, err := Setup(dir, false)
	if err != nil {
		t.Fatalf("Setup: %v", err)
	}
	if f != nil {
		f.Close()
		t.Fatal("expected nil file when disabled")
	}
	if log.Writer() != io.Discard {
		t.Errorf("log output = %v, want io.Discard", log.Writer())
	}
	if _, err := os.Stat(filepath.Join(dir, FileName)); !os.IsNotExist(err) {
		t.Error("log file created while disabled")
	}
}

func TestSetup_EnabledWritesFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", DefaultDir)
	f, err := Setup(dir, true)
	if err != nil {
		t.Fatalf("Setup: %v", err)
	}
	defer func() {
		log.SetOutput(io.Discard)
		f.Close()
	}()

	if w := log.Writer(); w == os.Stdout || w == os.Stderr {
		t.Error("log output must not be stdout or stderr")
	}

	log.Println("zoom test message")
	info, err := os.Stat(filepath.Join(dir, FileName))
	if err != nil {
		t.Fatalf("stat log file: %v", err)
	}
	if info.Size() == 0 {
		t.Error("log file is empty")
	}
}

func TestSetup_RotatesLargeFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, FileName)
	if err := os.WriteFile(path, make([]byte, MaxSize+1), 0o644); err != nil {
		t.Fatalf("write large log: %v", err)
	}

	f, err := Setup(dir, true)
	if err != nil {
		t.Fatalf("Setup: %v", err)
	}
	defer func() {
		log.SetOutput(io.Discard)
		f.Close()
	}()

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}
	rotated := false
	for _, e := range entries {
		if e.Name() != FileName && filepath.Ext(e.Name()) == ".log" {
			rotated = true
		}
	}
	if !rotated {
		t.Error("expected a rotated log file")
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat new log: %v", err)
	}
	if info.Size() > MaxSize {
		t.Errorf("new log size = %d, want <= %d", info.Size(), MaxSize)
	}
}
