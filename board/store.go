// Package board implements the application state store: the single
// source of truth for tasks, the bounded activity log, the demo login
// session, and search/priority filters.
//
// A Store is constructed once per process and initialized exactly once
// from durable storage. Every mutation updates memory first and is
// synchronously mirrored to storage; a persistence failure is logged by
// the storage layer but never rolls back the in-memory change. The Store
// is not safe for concurrent use: all operations run synchronously on a
// single goroutine, matching the board's single-user execution model.
package board

import (
	"time"

	"github.com/google/uuid"

	"github.com/TechieBelle/taskboard/storage"
	"github.com/TechieBelle/taskboard/task"
)

// Demo credentials for the single hardcoded login. This is intentionally
// not a security boundary: the board is a single-user local application.
const (
	DemoEmail    = "intern@demo.com"
	DemoPassword = "intern123"
)

// Store holds the in-session board state and mirrors every mutation to
// durable storage.
type Store struct {
	storage *storage.Store

	tasks           []task.Task
	activity        []task.ActivityEntry
	isAuthenticated bool
	initialized     bool
	searchQuery     string
	priorityFilter  task.PriorityFilter

	subscribers map[int]func()
	nextSubID   int
}

// New creates a Store backed by the given durable storage. The returned
// store is empty until Initialize is called.
func New(st *storage.Store) *Store {
	return &Store{
		storage:        st,
		priorityFilter: task.FilterAll,
		subscribers:    make(map[int]func()),
	}
}

// Initialize loads tasks, activity, and session flags from durable
// storage. It is idempotent: the second and later calls are no-ops.
//
// An already-authenticated in-memory session is never downgraded here; a
// fresh session is restored as authenticated only when both the
// remember-me preference and the persisted auth flag agree.
func (s *Store) Initialize() {
	if s.initialized {
		return
	}

	s.tasks = s.storage.Tasks()
	s.activity = s.storage.Activity()

	auth := s.storage.Auth()
	rememberMe := s.storage.RememberMe()
	restored := rememberMe && auth != nil && auth.IsAuthenticated
	s.isAuthenticated = s.isAuthenticated || restored

	s.initialized = true
	s.notify()
}

// Subscribe registers fn to run after every state change. The returned
// function removes the subscription.
func (s *Store) Subscribe(fn func()) func() {
	id := s.nextSubID
	s.nextSubID++
	s.subscribers[id] = fn
	return func() {
		delete(s.subscribers, id)
	}
}

func (s *Store) notify() {
	for _, fn := range s.subscribers {
		fn()
	}
}

// Tasks returns a copy of the full task list in insertion order.
func (s *Store) Tasks() []task.Task {
	out := make([]task.Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

// ActivityLog returns a copy of the activity log, newest first.
func (s *Store) ActivityLog() []task.ActivityEntry {
	out := make([]task.ActivityEntry, len(s.activity))
	copy(out, s.activity)
	return out
}

// Authenticated reports whether the session is logged in.
func (s *Store) Authenticated() bool {
	return s.isAuthenticated
}

// Initialized reports whether Initialize has run.
func (s *Store) Initialized() bool {
	return s.initialized
}

// SearchQuery returns the current free-text search filter.
func (s *Store) SearchQuery() string {
	return s.searchQuery
}

// PriorityFilter returns the current priority filter.
func (s *Store) PriorityFilter() task.PriorityFilter {
	return s.priorityFilter
}

// Task returns the task with the given ID, or false when absent.
func (s *Store) Task(id string) (task.Task, bool) {
	for _, t := range s.tasks {
		if t.ID == id {
			return t, true
		}
	}
	return task.Task{}, false
}

func newID() string {
	return uuid.NewString()
}

func timestamp() string {
	return time.Now().UTC().Format(time.RFC3339)
}
