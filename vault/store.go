// Package vault manages a task file on disk.
//
// Every operation re-reads the file, applies its change, and writes the
// whole list back. With locking enabled the cycle runs under an exclusive
// lock on a sibling "<file>.lock", so concurrent taskvault processes do not
// lose each other's writes.
//
// Records the codec drops while reading are not part of the list, so any
// write (a mutation or Rewrite) removes their text from the file. The load
// warnings name each dropped record; run "taskvault check" before editing a
// file that may hold unreadable records.
package vault

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/amonks/taskvault/internal/taskjson"
	"github.com/amonks/taskvault/task"
	"github.com/charmbracelet/log"
	"github.com/rogpeppe/go-internal/lockedfile"
)

// lockSuffix is appended to the task file path to name its lock file.
const lockSuffix = ".lock"

// Options configures how the store is opened.
type Options struct {
	// Lock serializes read-modify-write cycles across processes.
	Lock bool

	// Completion is passed to the codec on every load.
	Completion taskjson.CompletionPolicy

	// Logger, if set, receives load warnings.
	Logger *log.Logger

	// Now supplies the current time. Defaults to time.Now.
	Now func() time.Time
}

// Store provides access to one task file.
type Store struct {
	path     string
	opts     Options
	mu       *lockedfile.Mutex
	warnings []taskjson.Warning
}

// Open returns a store for the task file at path. An empty path means
// taskjson.DefaultPath. The file does not need to exist yet.
func Open(path string, opts Options) (*Store, error) {
	if path == "" {
		path = taskjson.DefaultPath
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	info, err := os.Stat(path)
	if err == nil && info.IsDir() {
		return nil, fmt.Errorf("open task file %s: is a directory", path)
	}

	s := &Store{path: path, opts: opts}
	if opts.Lock {
		s.mu = lockedfile.MutexAt(path + lockSuffix)
	}
	return s, nil
}

// Path returns the task file path.
func (s *Store) Path() string {
	return s.path
}

// Warnings returns the warnings from the most recent load.
func (s *Store) Warnings() []taskjson.Warning {
	return s.warnings
}

func (s *Store) loadOptions() taskjson.Options {
	return taskjson.Options{
		Now:        s.opts.Now,
		Completion: s.opts.Completion,
		Logger:     s.opts.Logger,
	}
}

func (s *Store) today() task.Date {
	return task.DateOf(s.opts.Now())
}

// withLock executes fn while holding the store's lock, if it has one.
func (s *Store) withLock(fn func() error) error {
	if s.mu == nil {
		return fn()
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create parent dir: %w", err)
	}
	unlock, err := s.mu.Lock()
	if err != nil {
		return fmt.Errorf("acquire lock: %w", err)
	}
	defer unlock()

	return fn()
}

// read loads the task file and remembers its warnings.
func (s *Store) read() (*taskjson.Result, error) {
	result, err := taskjson.Load(s.path, s.loadOptions())
	if err != nil {
		return nil, err
	}
	s.warnings = result.Warnings
	return result, nil
}

// write replaces the task file, going through a temporary file so a failed
// write leaves the previous contents in place.
func (s *Store) write(tasks []task.Task) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create parent dir: %w", err)
	}
	return writeFileAtomic(s.path, taskjson.Marshal(tasks))
}

func writeFileAtomic(path string, data []byte) error {
	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o644); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}

// modify runs a locked read-modify-write cycle. fn edits tasks in place
// or returns a replacement slice.
func (s *Store) modify(fn func(tasks []task.Task) ([]task.Task, error)) error {
	return s.withLock(func() error {
		result, err := s.read()
		if err != nil {
			return err
		}
		tasks, err := fn(result.Tasks)
		if err != nil {
			return err
		}
		if err := s.write(tasks); err != nil {
			return fmt.Errorf("write tasks: %w", err)
		}
		return nil
	})
}

// Load reads the task file and returns the full codec result, warnings
// included.
func (s *Store) Load() (*taskjson.Result, error) {
	var result *taskjson.Result
	err := s.withLock(func() error {
		var err error
		result, err = s.read()
		return err
	})
	return result, err
}

// Rewrite loads the task file and writes it back in canonical form.
func (s *Store) Rewrite() (*taskjson.Result, error) {
	var result *taskjson.Result
	err := s.withLock(func() error {
		var err error
		result, err = s.read()
		if err != nil {
			return err
		}
		if err := s.write(result.Tasks); err != nil {
			return fmt.Errorf("write tasks: %w", err)
		}
		return nil
	})
	return result, err
}
