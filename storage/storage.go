// Package storage persists the board's four logical records - tasks,
// activity log, auth flag, remember-me flag - as one serialized file per
// record under a data directory.
//
// Every operation fails soft: corrupted or missing data degrades to an
// empty default and is logged, never returned as an error. When the data
// directory is unusable the rest of the application keeps running in
// memory-only mode for the session.
package storage

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"syscall"

	"github.com/natefinch/atomic"

	"github.com/TechieBelle/taskboard/task"
)

// File names for the four logical records.
const (
	TasksFile      = "tasks.json"
	ActivityFile   = "activity.json"
	AuthFile       = "auth.json"
	RememberFile   = "remember"
	probeFile      = ".probe"
	lockFile       = "storage.lock"
	maxPayloadSize = 5 * 1024 * 1024
)

// MaxStoredActivity is the number of activity entries kept on disk.
// The in-memory cap is lower (task.MaxActivityEntries); the larger disk
// cap keeps history across sessions without unbounded growth.
const MaxStoredActivity = 500

// AuthRecord is the persisted authentication flag.
type AuthRecord struct {
	IsAuthenticated bool `json:"isAuthenticated"`
}

// Store reads and writes board records under a single directory.
type Store struct {
	dir    string
	logger *slog.Logger
}

// New creates a store rooted at dir. A nil logger falls back to
// slog.Default.
func New(dir string, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{dir: dir, logger: logger}
}

// Dir returns the data directory the store persists into.
func (s *Store) Dir() string {
	return s.dir
}

// Available probes whether the data directory is usable by writing and
// removing a sentinel file. When it returns false, reads return defaults
// and writes are skipped for the current call.
func (s *Store) Available() bool {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		s.logger.Warn("storage unavailable, persistence disabled", "dir", s.dir, "error", err)
		return false
	}
	probe := filepath.Join(s.dir, probeFile)
	if err := os.WriteFile(probe, []byte("ok"), 0o644); err != nil {
		s.logger.Warn("storage unavailable, persistence disabled", "dir", s.dir, "error", err)
		return false
	}
	if err := os.Remove(probe); err != nil {
		s.logger.Warn("storage probe cleanup failed", "dir", s.dir, "error", err)
	}
	return true
}

// withLock executes fn while holding an exclusive lock on the store's
// lock file. Cross-process writers are serialized, but there is no
// change notification between processes: last write wins.
func (s *Store) withLock(fn func() error) error {
	f, err := os.OpenFile(filepath.Join(s.dir, lockFile), os.O_CREATE|os.O_RDWR, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := syscall.Flock(int(f.Fd()), syscall.LOCK_EX); err != nil {
		return err
	}
	defer syscall.Flock(int(f.Fd()), syscall.LOCK_UN)

	return fn()
}

func (s *Store) path(name string) string {
	return filepath.Join(s.dir, name)
}

// readRecord returns the raw bytes for a record, or nil when the record
// is absent or unreadable.
func (s *Store) readRecord(name string) []byte {
	data, err := os.ReadFile(s.path(name))
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		s.logger.Error("failed to read record", "record", name, "error", err)
		return nil
	}
	return data
}

// writeRecord atomically replaces a record's file with data.
func (s *Store) writeRecord(name string, data []byte) {
	if len(data) > maxPayloadSize {
		s.logger.Warn("record exceeds 5MB, storage quota may be hit", "record", name, "bytes", len(data))
	}
	err := s.withLock(func() error {
		return atomic.WriteFile(s.path(name), bytes.NewReader(data))
	})
	if err != nil {
		s.logger.Error("failed to save record", "record", name, "error", err)
	}
}

// removeRecord deletes a record's file, tolerating absence.
func (s *Store) removeRecord(name string) {
	if err := os.Remove(s.path(name)); err != nil && !os.IsNotExist(err) {
		s.logger.Warn("failed to remove record", "record", name, "error", err)
	}
}

// Tasks returns the persisted task list. Absent, unparsable, or
// non-array data yields an empty list; shape-invalid elements are
// dropped and the cleaned list is re-saved to self-heal the record.
func (s *Store) Tasks() []task.Task {
	if !s.Available() {
		return nil
	}
	data := s.readRecord(TasksFile)
	if data == nil {
		return nil
	}

	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		s.logger.Warn("stored tasks are not a valid array, resetting", "error", err)
		return nil
	}

	tasks := make([]task.Task, 0, len(raw))
	dropped := 0
	for i, element := range raw {
		t, ok := decodeTask(element)
		if !ok {
			s.logger.Warn("dropping invalid stored task", "index", i)
			dropped++
			continue
		}
		tasks = append(tasks, t)
	}

	if dropped > 0 {
		s.SaveTasks(tasks)
	}
	return tasks
}

// SaveTasks persists the task list, dropping shape-invalid entries.
func (s *Store) SaveTasks(tasks []task.Task) {
	if !s.Available() {
		s.logger.Warn("cannot save tasks, storage unavailable")
		return
	}
	valid := make([]task.Task, 0, len(tasks))
	for i, t := range tasks {
		if !validTaskShape(t) {
			s.logger.Warn("excluding invalid task from save", "index", i)
			continue
		}
		valid = append(valid, t)
	}
	data, err := json.Marshal(valid)
	if err != nil {
		s.logger.Error("failed to encode tasks", "error", err)
		return
	}
	s.writeRecord(TasksFile, data)
}

// Activity returns the persisted activity log with the same
// validate-and-self-heal behavior as Tasks.
func (s *Store) Activity() []task.ActivityEntry {
	if !s.Available() {
		return nil
	}
	data := s.readRecord(ActivityFile)
	if data == nil {
		return nil
	}

	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		s.logger.Warn("stored activity is not a valid array, resetting", "error", err)
		return nil
	}

	entries := make([]task.ActivityEntry, 0, len(raw))
	dropped := 0
	for i, element := range raw {
		entry, ok := decodeActivityEntry(element)
		if !ok {
			s.logger.Warn("dropping invalid stored activity entry", "index", i)
			dropped++
			continue
		}
		entries = append(entries, entry)
	}

	if dropped > 0 {
		s.SaveActivity(entries)
	}
	return entries
}

// SaveActivity persists the activity log, dropping shape-invalid entries
// and keeping only the MaxStoredActivity most recent ones. Callers pass
// entries newest first, so the head of the slice is kept.
func (s *Store) SaveActivity(entries []task.ActivityEntry) {
	if !s.Available() {
		s.logger.Warn("cannot save activity, storage unavailable")
		return
	}
	valid := make([]task.ActivityEntry, 0, len(entries))
	for i, entry := range entries {
		if !validActivityShape(entry) {
			s.logger.Warn("excluding invalid activity entry from save", "index", i)
			continue
		}
		valid = append(valid, entry)
	}
	if len(valid) > MaxStoredActivity {
		valid = valid[:MaxStoredActivity]
	}
	data, err := json.Marshal(valid)
	if err != nil {
		s.logger.Error("failed to encode activity", "error", err)
		return
	}
	s.writeRecord(ActivityFile, data)
}

// Auth returns the persisted auth record, or nil when it is absent,
// unparsable, or missing the boolean flag.
func (s *Store) Auth() *AuthRecord {
	if !s.Available() {
		return nil
	}
	data := s.readRecord(AuthFile)
	if data == nil {
		return nil
	}

	var shape struct {
		IsAuthenticated *bool `json:"isAuthenticated"`
	}
	if err := json.Unmarshal(data, &shape); err != nil || shape.IsAuthenticated == nil {
		s.logger.Warn("invalid auth record, resetting")
		return nil
	}
	return &AuthRecord{IsAuthenticated: *shape.IsAuthenticated}
}

// SaveAuth persists the authentication flag.
func (s *Store) SaveAuth(isAuthenticated bool) {
	if !s.Available() {
		s.logger.Warn("cannot save auth, storage unavailable")
		return
	}
	data, err := json.Marshal(AuthRecord{IsAuthenticated: isAuthenticated})
	if err != nil {
		s.logger.Error("failed to encode auth record", "error", err)
		return
	}
	s.writeRecord(AuthFile, data)
}

// ClearAuth removes the persisted auth record.
func (s *Store) ClearAuth() {
	if !s.Available() {
		s.logger.Warn("cannot clear auth, storage unavailable")
		return
	}
	s.removeRecord(AuthFile)
}

// RememberMe returns the persisted remember-me preference, defaulting to
// false.
func (s *Store) RememberMe() bool {
	if !s.Available() {
		return false
	}
	return string(s.readRecord(RememberFile)) == "true"
}

// SaveRememberMe persists the remember-me preference as its string
// representation.
func (s *Store) SaveRememberMe(remember bool) {
	if !s.Available() {
		s.logger.Warn("cannot save remember-me preference, storage unavailable")
		return
	}
	value := "false"
	if remember {
		value = "true"
	}
	s.writeRecord(RememberFile, []byte(value))
}

// ClearAll removes all four records. Each removal is attempted
// independently so one failure doesn't abort the others.
func (s *Store) ClearAll() {
	if !s.Available() {
		s.logger.Warn("cannot clear records, storage unavailable")
		return
	}
	for _, name := range []string{TasksFile, ActivityFile, AuthFile, RememberFile} {
		s.removeRecord(name)
	}
}

// decodeTask structurally decodes one stored element. The element must
// be an object with string id, title, column, and createdAt fields;
// anything else is rejected rather than patched up.
func decodeTask(data json.RawMessage) (task.Task, bool) {
	var shape struct {
		ID        *string `json:"id"`
		Title     *string `json:"title"`
		Column    *string `json:"column"`
		CreatedAt *string `json:"createdAt"`
	}
	if err := json.Unmarshal(data, &shape); err != nil {
		return task.Task{}, false
	}
	if shape.ID == nil || shape.Title == nil || shape.Column == nil || shape.CreatedAt == nil {
		return task.Task{}, false
	}
	var t task.Task
	if err := json.Unmarshal(data, &t); err != nil {
		return task.Task{}, false
	}
	return t, true
}

func validTaskShape(t task.Task) bool {
	return t.ID != "" && t.Column != "" && t.CreatedAt != ""
}

func decodeActivityEntry(data json.RawMessage) (task.ActivityEntry, bool) {
	var shape struct {
		ID        *string `json:"id"`
		Action    *string `json:"action"`
		TaskTitle *string `json:"taskTitle"`
		Timestamp *string `json:"timestamp"`
	}
	if err := json.Unmarshal(data, &shape); err != nil {
		return task.ActivityEntry{}, false
	}
	if shape.ID == nil || shape.Action == nil || shape.TaskTitle == nil || shape.Timestamp == nil {
		return task.ActivityEntry{}, false
	}
	var entry task.ActivityEntry
	if err := json.Unmarshal(data, &entry); err != nil {
		return task.ActivityEntry{}, false
	}
	return entry, true
}

func validActivityShape(entry task.ActivityEntry) bool {
	return entry.ID != "" && entry.Action != "" && entry.Timestamp != ""
}
