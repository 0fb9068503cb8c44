package store

import (
	"sync"

	"github.com/GoSim-25-26J-441/project-board/internal/projects/domain"
	"github.com/GoSim-25-26J-441/project-board/internal/state"
	"github.com/google/uuid"
)

// Observer receives a snapshot of every project after each visible change.
type Observer = state.Listener[domain.Project]

// ProjectStore is the single source of truth for the board. All operations
// hold one lock, so a snapshot is always announced before the mutating call
// returns and no caller sees a change that has not been delivered yet.
//
// Observers run under that lock and must not call any store method, reads
// included; they get the full snapshot instead. Observers that do I/O
// should hand the snapshot off to their own goroutine.
type ProjectStore struct {
	mu        sync.RWMutex
	projects  []domain.Project
	index     map[string]int // id -> position in projects
	observers state.Listeners[domain.Project]
	newID     func() string
}

// Option configures a ProjectStore.
type Option func(*ProjectStore)

// maxIDAttempts bounds how often a custom generator may collide before
// Create falls back to random UUIDs.
const maxIDAttempts = 8

// WithIDGenerator replaces the UUID generator. Generated ids that already
// exist in the store are discarded and regenerated; after maxIDAttempts
// collisions a random UUID is used instead.
func WithIDGenerator(fn func() string) Option {
	return func(s *ProjectStore) {
		if fn != nil {
			s.newID = fn
		}
	}
}

// New creates an empty store.
func New(opts ...Option) *ProjectStore {
	s := &ProjectStore{
		index: make(map[string]int),
		newID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Create appends a new active project and notifies observers. Input is
// trusted; callers validate before getting here.
func (s *ProjectStore) Create(title, description string, people int) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.freeID()

	s.index[id] = len(s.projects)
	s.projects = append(s.projects, domain.Project{
		ID:          id,
		Title:       title,
		Description: description,
		People:      people,
		Status:      domain.StatusActive,
	})

	s.notify()
	return id
}

// MoveStatus sets the status of project id. It returns false without
// notifying when the id is unknown or the project already has that status.
func (s *ProjectStore) MoveStatus(id string, status domain.Status) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.index[id]
	if !ok || !status.Valid() || s.projects[i].Status == status {
		return false
	}

	s.projects[i].Status = status
	s.notify()
	return true
}

// Subscribe registers fn for all future notifications. There is no way to
// unsubscribe; past changes are not replayed.
func (s *ProjectStore) Subscribe(fn Observer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.observers.Add(fn)
}

// Get returns a copy of project id.
func (s *ProjectStore) Get(id string) (domain.Project, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i, ok := s.index[id]
	if !ok {
		return domain.Project{}, false
	}
	return s.projects[i], true
}

// Snapshot returns an ordered copy of every project.
func (s *ProjectStore) Snapshot() []domain.Project {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return state.Copy(s.projects)
}

// Len returns the number of projects.
func (s *ProjectStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.projects)
}

// freeID must be called with mu held.
func (s *ProjectStore) freeID() string {
	gen := s.newID
	for attempt := 0; ; attempt++ {
		if attempt == maxIDAttempts {
			gen = uuid.NewString
		}
		id := gen()
		if _, taken := s.index[id]; !taken {
			return id
		}
	}
}

// notify must be called with mu held.
func (s *ProjectStore) notify() {
	s.observers.Notify(s.projects)
}
