package store

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/afero"

	"github.com/shutteritch/TaskManager/internal/logging"
	"github.com/shutteritch/TaskManager/models"
	"github.com/shutteritch/TaskManager/types"
)

// FileTaskStore implements TaskStore over a delimited text file, one task
// per line. There is no file lock: concurrent safety comes entirely from
// the optimistic value match in CompareAndUpdate.
type FileTaskStore struct {
	fs   afero.Fs
	path string
	log  logging.Logger
}

// NewFileTaskStore creates a task store backed by the file at path.
func NewFileTaskStore(fs afero.Fs, path string, log logging.Logger) *FileTaskStore {
	return &FileTaskStore{fs: fs, path: path, log: log}
}

func (s *FileTaskStore) List() ([]models.Task, error) {
	lines, err := readLines(s.fs, s.path)
	if err != nil {
		return nil, err
	}
	tasks := make([]models.Task, 0, len(lines))
	for _, line := range lines {
		t, err := models.ParseTask(line)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	s.log.Debug(context.Background(), "tasks loaded", "path", s.path, "count", len(tasks))
	return tasks, nil
}

func (s *FileTaskStore) Append(t models.Task) error {
	return appendLine(s.fs, s.path, t.Line())
}

func (s *FileTaskStore) CompareAndUpdate(oldLine string, t models.Task) error {
	current, err := s.List()
	if err != nil {
		return err
	}
	candidate := make([]string, len(current))
	changed := false
	for i, rec := range current {
		line := rec.Line()
		if line == oldLine {
			candidate[i] = t.Line()
			changed = true
		} else {
			candidate[i] = line
		}
	}
	// An unchanged candidate means no line matched the caller's token:
	// the record was already altered by another writer.
	if !changed {
		s.log.Debug(context.Background(), "compare-and-update lost race", "path", s.path)
		return &types.ConflictError{Line: oldLine}
	}
	return writeLines(s.fs, s.path, candidate)
}

// FileUserStore implements UserStore over a delimited text file, one user
// per line.
type FileUserStore struct {
	fs   afero.Fs
	path string
	log  logging.Logger
}

// NewFileUserStore creates a user store backed by the file at path.
func NewFileUserStore(fs afero.Fs, path string, log logging.Logger) *FileUserStore {
	return &FileUserStore{fs: fs, path: path, log: log}
}

func (s *FileUserStore) List() ([]models.User, error) {
	lines, err := readLines(s.fs, s.path)
	if err != nil {
		return nil, err
	}
	users := make([]models.User, 0, len(lines))
	for _, line := range lines {
		u, err := models.ParseUser(line)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	s.log.Debug(context.Background(), "users loaded", "path", s.path, "count", len(users))
	return users, nil
}

func (s *FileUserStore) Append(u models.User) error {
	return appendLine(s.fs, s.path, u.Line())
}

func (s *FileUserStore) CompareAndUpdate(oldLine string, u models.User) error {
	current, err := s.List()
	if err != nil {
		return err
	}
	candidate := make([]string, len(current))
	changed := false
	for i, rec := range current {
		line := rec.Line()
		if line == oldLine {
			candidate[i] = u.Line()
			changed = true
		} else {
			candidate[i] = line
		}
	}
	if !changed {
		return &types.ConflictError{Line: oldLine}
	}
	return writeLines(s.fs, s.path, candidate)
}

// Bootstrap ensures the backing user file exists, creating it with the
// given default account when absent. An existing file is left untouched.
func (s *FileUserStore) Bootstrap(admin models.User) error {
	exists, err := afero.Exists(s.fs, s.path)
	if err != nil {
		return fmt.Errorf("failed to check user file %s: %w", s.path, err)
	}
	if exists {
		return nil
	}
	s.log.Info(context.Background(), "creating user file with default admin", "path", s.path)
	return afero.WriteFile(s.fs, s.path, []byte(admin.Line()), 0o644)
}

// readLines returns the non-blank lines of the file in order. A missing
// file reads as empty; blank lines are framing, not records, and a
// trailing blank line is tolerated.
func readLines(fs afero.Fs, path string) ([]string, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	var lines []string
	for _, line := range strings.Split(string(data), "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines, nil
}

// appendLine writes line as a new trailing record without reading the
// existing content. The on-disk framing carries no trailing newline, so a
// non-empty file gets a separator first.
func appendLine(fs afero.Fs, path, line string) error {
	payload := line
	if info, err := fs.Stat(path); err == nil && info.Size() > 0 {
		payload = "\n" + line
	} else if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to stat %s: %w", path, err)
	}

	f, err := fs.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open %s for append: %w", path, err)
	}
	if _, err := f.WriteString(payload); err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to append to %s: %w", path, err)
	}
	return f.Close()
}

// writeLines overwrites the file with the given lines in a single commit.
// The content goes to a temp file first and is renamed into place, so a
// reader never observes a partially written state.
func writeLines(fs afero.Fs, path string, lines []string) error {
	tmp := path + ".tmp"
	if err := afero.WriteFile(fs, tmp, []byte(strings.Join(lines, "\n")), 0o644); err != nil {
		return fmt.Errorf("failed to write temporary file %s: %w", tmp, err)
	}
	if err := fs.Rename(tmp, path); err != nil {
		_ = fs.Remove(tmp)
		return fmt.Errorf("failed to replace %s: %w", path, err)
	}
	return nil
}
