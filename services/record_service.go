package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// RecordStore reads and writes line-delimited JSON record files under a
// base directory. One JSON object per line; mutations rewrite the whole
// file. A mutex per file serializes read-modify-write cycles, so the
// last-write-wins race of concurrent rewriters cannot occur in-process.
type RecordStore struct {
	Dir string

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewRecordStore creates a store rooted at dir.
func NewRecordStore(dir string) *RecordStore {
	return &RecordStore{Dir: dir, locks: make(map[string]*sync.Mutex)}
}

func (rs *RecordStore) path(file string) string {
	return filepath.Join(rs.Dir, file)
}

func (rs *RecordStore) fileLock(file string) *sync.Mutex {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	l, ok := rs.locks[file]
	if !ok {
		l = &sync.Mutex{}
		rs.locks[file] = l
	}
	return l
}

// ReadAll parses one record per non-empty line of file. A missing file
// yields an empty result, not an error. Malformed lines are skipped.
func ReadAll[T any](rs *RecordStore, file string) ([]T, error) {
	data, err := os.ReadFile(rs.path(file))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", file, err)
	}

	var records []T
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		var rec T
		if err := json.Unmarshal([]byte(line), &rec); err != nil {
			log.Printf("Skipping malformed line in %s: %v", file, err)
			continue
		}
		records = append(records, rec)
	}
	return records, nil
}

// AppendOne serializes rec and appends it as one line, creating the file
// and its parent directories as needed.
func AppendOne[T any](rs *RecordStore, file string, rec T) error {
	lock := rs.fileLock(file)
	lock.Lock()
	defer lock.Unlock()

	line, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("failed to marshal record for %s: %w", file, err)
	}
	path := rs.path(file)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", file, err)
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", file, err)
	}
	defer f.Close()
	if _, err := f.Write(append(line, '\n')); err != nil {
		return fmt.Errorf("failed to append to %s: %w", file, err)
	}
	return nil
}

// WriteAll overwrites file with one record per line. The content is
// written to a temp file and renamed into place so a crash mid-write
// never leaves a partial line behind.
func WriteAll[T any](rs *RecordStore, file string, records []T) error {
	lock := rs.fileLock(file)
	lock.Lock()
	defer lock.Unlock()
	return writeAllLocked(rs, file, records)
}

// Mutate runs fn on the full record set of file and rewrites the file
// with fn's result, holding the file lock across the whole cycle. fn
// returning an error aborts the rewrite.
func Mutate[T any](rs *RecordStore, file string, fn func([]T) ([]T, error)) error {
	lock := rs.fileLock(file)
	lock.Lock()
	defer lock.Unlock()

	records, err := ReadAll[T](rs, file)
	if err != nil {
		return err
	}
	updated, err := fn(records)
	if err != nil {
		return err
	}
	return writeAllLocked(rs, file, updated)
}

func writeAllLocked[T any](rs *RecordStore, file string, records []T) error {
	var b strings.Builder
	for _, rec := range records {
		line, err := json.Marshal(rec)
		if err != nil {
			return fmt.Errorf("failed to marshal record for %s: %w", file, err)
		}
		b.Write(line)
		b.WriteByte('\n')
	}

	path := rs.path(file)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", file, err)
	}
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file for %s: %w", file, err)
	}
	if _, err := tmp.WriteString(b.String()); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to write %s: %w", file, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to close temp file for %s: %w", file, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to replace %s: %w", file, err)
	}
	return nil
}
