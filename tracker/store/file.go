package store

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Compile-time checks to ensure the file stores implement their interfaces
var _ RecordLog = (*FileRecordLog)(nil)
var _ CounterStore = (*FileCounterStore)(nil)

// FileRecordLog appends completed task records to a flat file, one line per
// record: id,name,start_unix_seconds,end_unix_seconds. The file is created on
// first append. Commas in the task name are not escaped; a name containing a
// comma corrupts the field layout.
type FileRecordLog struct {
	path string
}

// NewFileRecordLog creates a record log backed by the file at path.
func NewFileRecordLog(path string) *FileRecordLog {
	return &FileRecordLog{path: path}
}

// Append writes one record line to the end of the save file.
func (l *FileRecordLog) Append(rec Record) error {
	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open save file %s: %w", l.path, err)
	}

	_, writeErr := fmt.Fprintf(f, "%d,%s,%d,%d\n", rec.ID, rec.Name, rec.Start.Unix(), rec.End.Unix())
	closeErr := f.Close()

	if writeErr != nil {
		return fmt.Errorf("append to save file %s: %w", l.path, writeErr)
	}
	return closeErr
}

// Clear removes the save file. A missing file is not an error.
func (l *FileRecordLog) Clear() error {
	if err := os.Remove(l.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove save file %s: %w", l.path, err)
	}
	return nil
}

// FileCounterStore persists the next task id as a single decimal line.
// Saves go through a temp file and a rename so a crash mid-write cannot
// leave a truncated counter behind.
type FileCounterStore struct {
	path string
}

// NewFileCounterStore creates a counter store backed by the file at path.
func NewFileCounterStore(path string) *FileCounterStore {
	return &FileCounterStore{path: path}
}

// Load reads the persisted counter. A missing file means no counter has been
// saved yet and yields 0; unparseable contents are an error.
func (s *FileCounterStore) Load() (uint32, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("read cache file %s: %w", s.path, err)
	}

	value, err := strconv.ParseUint(strings.TrimSpace(string(data)), 10, 32)
	if err != nil {
		return 0, fmt.Errorf("parse cache file %s: %w", s.path, err)
	}
	return uint32(value), nil
}

// Save atomically replaces the counter file with the new value.
func (s *FileCounterStore) Save(next uint32) error {
	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp cache file in %s: %w", dir, err)
	}

	_, writeErr := fmt.Fprintf(tmp, "%d\n", next)
	closeErr := tmp.Close()
	if writeErr != nil || closeErr != nil {
		os.Remove(tmp.Name())
		if writeErr != nil {
			return fmt.Errorf("write temp cache file: %w", writeErr)
		}
		return closeErr
	}

	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("replace cache file %s: %w", s.path, err)
	}
	return nil
}

// Clear removes the cache file. A missing file is not an error.
func (s *FileCounterStore) Clear() error {
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove cache file %s: %w", s.path, err)
	}
	return nil
}
