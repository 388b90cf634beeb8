// Package store persists the cycle state between invocations
package store

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"pomobar/internal/cycle"
	"pomobar/internal/osutil"
)

// FileStore reads and writes the cycle state as a single JSON file.
// The file is replaced whole on every write so a racing invocation
// never observes a partial record. No locking beyond that: a lost
// update between two concurrent invocations costs at most one
// mis-rendered tick.
type FileStore struct {
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (f *FileStore) Path() string {
	return f.path
}

// Load returns the persisted state, or a fresh one when the file is
// missing, unreadable, or malformed. Stale state must never take the
// bar down.
func (f *FileStore) Load(now time.Time) cycle.State {
	b, err := os.ReadFile(f.path)
	if err != nil {
		return cycle.NewState(now)
	}

	var st cycle.State

	if err := json.Unmarshal(b, &st); err != nil {
		return cycle.NewState(now)
	}

	return st
}

// Save overwrites the state file through a write-to-temp-then-rename.
func (f *FileStore) Save(st cycle.State) error {
	b, err := json.Marshal(st)
	if err != nil {
		return err
	}

	dir := filepath.Dir(f.path)

	err = os.MkdirAll(dir, osutil.DirPermission)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(f.path)+".*")
	if err != nil {
		return err
	}

	_, err = tmp.Write(b)
	if err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())

		return err
	}

	err = tmp.Close()
	if err != nil {
		_ = os.Remove(tmp.Name())

		return err
	}

	return os.Rename(tmp.Name(), f.path)
}
